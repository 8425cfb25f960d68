package schema

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Clone returns a deep copy of e: its attributes, text, children and
// plugins. The copy has no parent.
func Clone(e Element) Element {
	if isNil(e) {
		return nil
	}
	n, c := e.Core(), e.Class()
	dup := c.New(n.ns)
	if dup == nil {
		return nil
	}
	copyFields(dup, e)
	dn := dup.Core()
	dn.line, dn.column = n.line, n.column
	for _, b := range c.children {
		for _, child := range b.Items(e) {
			if cc := Clone(child); cc != nil {
				b.Attach(dup, cc)
			}
		}
	}
	for _, p := range n.plugins {
		if pc := Clone(p); pc != nil {
			pc.Core().parent = dup
			dn.plugins = append(dn.plugins, pc)
		}
	}
	return dup
}

// rejecter is implemented by fields keeping the token a Parse rejected.
type rejecter interface {
	IsInvalid() bool
	Raw() string
}

func copyFields(dst, src Element) {
	c := src.Class()
	for _, b := range c.attrs {
		f, to := b.Field(src), b.Field(dst)
		switch r, ok := f.(rejecter); {
		case f.IsSet():
			if err := to.Assign(f.Value()); err != nil {
				glog.Errorf("clone %s: copy %s: %v", c, b.Name, err)
			}
		case ok && r.IsInvalid():
			if err := to.Parse(r.Raw()); !errors.Is(err, attr.ErrInvalidToken) {
				glog.Errorf("clone %s: copy rejected %s %q: %v", c, b.Name, r.Raw(), err)
			}
		}
	}
	if t := c.Text(src); t != nil && t.IsSet() {
		c.Text(dst).Set(t.Get())
	}
}
