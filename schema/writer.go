package schema

import (
	"encoding/xml"
	"io"

	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Writer writes schema elements as XML.
type Writer struct {
	enc      *xml.Encoder
	prefixes xmlutil.PrefixMap
	depth    int
}

// WriterOption is a Writer option function
type WriterOption func(*Writer)

// WithIndent indents the output, as xml.Encoder.Indent.
func WithIndent(prefix, indent string) WriterOption {
	return func(w *Writer) { w.enc.Indent(prefix, indent) }
}

// WithPrefixes declares the prefixes of pm on the document element, so
// that the prefixes of a document read are preserved when it is written.
func WithPrefixes(pm xmlutil.PrefixMap) WriterOption {
	return func(w *Writer) {
		for k, v := range pm {
			w.prefixes[k] = v
		}
	}
}

// NewWriter returns a Writer writing to output.
func NewWriter(output io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{enc: xml.NewEncoder(output), prefixes: xmlutil.PrefixMap{}}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteHeader writes the XML declaration. It must be called before any
// element is written.
func (w *Writer) WriteHeader() error {
	return errors.WithStack(w.enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="UTF-8"`)}))
}

// WriteElement writes e and its descendants as a document element,
// declaring the namespaces of the tree on e's start tag.
func (w *Writer) WriteElement(e Element) error {
	if isNil(e) {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	if err := w.writeElement(e, w.declare(e)); err != nil {
		return err
	}
	return errors.WithStack(w.enc.Flush())
}

// declare binds a prefix for every namespace used by root's tree, root's
// own namespace preferring the default namespace, and returns the
// declarations not yet written.
func (w *Writer) declare(root Element) []xml.Attr {
	w.prefixes.Bind(root.Core().ns.URI(), "")
	bindAll := func(e Element) {
		n := e.Core()
		w.prefixes.Bind(n.ns.URI(), n.ns.DefaultPrefix())
		if e.Class().Prefixed {
			w.prefixes.BindAttr(n.ns.URI(), n.ns.Package)
		}
		for _, p := range n.plugins {
			if hasSetAttributes(p) {
				pns := p.Core().ns
				w.prefixes.BindAttr(pns.URI(), pns.Package)
			}
		}
	}
	bindAll(root)
	for _, e := range AllElements(root) {
		bindAll(e)
	}
	return w.prefixes.Attr()
}

func hasSetAttributes(e Element) bool {
	for _, b := range e.Class().AttributesAt(e.Core().ns) {
		if b.Field(e).IsSet() {
			return true
		}
	}
	return false
}

// bind returns the prefix for uri, declaring it on start if it was not
// yet bound.
func (w *Writer) bind(start *xml.StartElement, uri, want string, attr bool) string {
	before := len(w.prefixes)
	var pfx string
	if attr {
		pfx = w.prefixes.BindAttr(uri, want)
	} else {
		pfx = w.prefixes.Bind(uri, want)
	}
	if len(w.prefixes) != before {
		name := xmlutil.RawName("xmlns", pfx)
		if pfx == "" {
			name = xml.Name{Local: "xmlns"}
		}
		start.Attr = append(start.Attr, xml.Attr{Name: name, Value: uri})
	}
	return pfx
}

func (w *Writer) writeElement(e Element, decl []xml.Attr) error {
	n, c := e.Core(), e.Class()
	uri := n.ns.URI()
	start := xml.StartElement{Attr: decl}
	start.Name = xmlutil.RawName(w.bind(&start, uri, n.ns.DefaultPrefix(), false), c.Name)
	if glog.V(2) {
		glog.Infof("write <%s> at depth %d", start.Name.Local, w.depth)
	}

	for _, b := range c.AttributesAt(n.ns) {
		f := b.Field(e)
		if c.Binding(b.Name, n.ns) != b || !f.IsSet() {
			continue
		}
		name := xml.Name{Local: b.Name}
		if c.Prefixed && !b.core {
			name = xmlutil.RawName(w.bind(&start, uri, n.ns.Package, true), b.Name)
		}
		start.Attr = append(start.Attr, xml.Attr{Name: name, Value: f.Format()})
	}
	for _, p := range n.plugins {
		pc, pns := p.Class(), p.Core().ns
		for _, b := range pc.AttributesAt(pns) {
			f := b.Field(p)
			if pc.Binding(b.Name, pns) != b || !f.IsSet() {
				continue
			}
			pfx := w.bind(&start, pns.URI(), pns.Package, true)
			start.Attr = append(start.Attr, xml.Attr{Name: xmlutil.RawName(pfx, b.Name), Value: f.Format()})
		}
	}

	if err := w.enc.EncodeToken(start); err != nil {
		return errors.Wrapf(err, "write %s", c)
	}
	w.depth++
	for _, b := range c.ChildrenAt(n.ns) {
		for _, child := range b.Items(e) {
			if l, ok := child.(interface{ Len() int }); ok && l.Len() == 0 && b.Cardinality != ExactlyOne {
				continue
			}
			if err := w.writeElement(child, nil); err != nil {
				return err
			}
		}
	}
	if t := c.Text(e); t != nil && t.IsSet() {
		if err := w.enc.EncodeToken(xml.CharData(t.Get())); err != nil {
			return errors.Wrapf(err, "write %s", c)
		}
	}
	w.depth--
	return errors.Wrapf(w.enc.EncodeToken(start.End()), "write %s", c)
}
