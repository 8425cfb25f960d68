package schema

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/pkg/errors"
)

// lookupAttr returns the element (e or one of its plugins) and binding
// for attribute name valid at the element's namespaces.
func lookupAttr(e Element, name string) (Element, *AttrBinding, error) {
	if isNil(e) {
		return nil, nil, errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	n := e.Core()
	if b := e.Class().Binding(name, n.ns); b != nil {
		return e, b, nil
	}
	for _, p := range n.plugins {
		if b := p.Class().Binding(name, p.Core().ns); b != nil {
			return p, b, nil
		}
	}
	return nil, nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "%s has no attribute %q", e.Class(), name)
}

// GetAttribute returns the value of attribute name. An unset attribute
// with a declared default returns the default.
func GetAttribute(e Element, name string) (attr.Value, error) {
	owner, b, err := lookupAttr(e, name)
	if err != nil {
		return attr.Value{}, err
	}
	f := b.Field(owner)
	if !f.IsSet() && b.Default().IsValid() {
		return b.Default(), nil
	}
	return f.Value(), nil
}

// SetAttribute sets attribute name to v, with the validation of the
// attribute's typed setter.
func SetAttribute(e Element, name string, v attr.Value) error {
	owner, b, err := lookupAttr(e, name)
	if err != nil {
		return err
	}
	if err := b.Field(owner).Assign(v); err != nil {
		return errors.Wrapf(err, "set %s on %s", name, e.Class())
	}
	return nil
}

// IsSetAttribute returns true if attribute name is set. Unknown names
// and nil elements are never set.
func IsSetAttribute(e Element, name string) bool {
	owner, b, err := lookupAttr(e, name)
	if err != nil {
		return false
	}
	return b.Field(owner).IsSet()
}

// UnsetAttribute unsets attribute name. Unsetting an attribute that is
// not set succeeds.
func UnsetAttribute(e Element, name string) error {
	owner, b, err := lookupAttr(e, name)
	if err != nil {
		return err
	}
	b.Field(owner).Unset()
	return nil
}

// HasRequiredAttributes returns true if every required attribute valid at
// e's namespaces, and at its plugins' namespaces, is set.
func HasRequiredAttributes(e Element) bool {
	if isNil(e) {
		return false
	}
	if !requiredSet(e) {
		return false
	}
	for _, p := range e.Core().plugins {
		if !requiredSet(p) {
			return false
		}
	}
	return true
}

func requiredSet(e Element) bool {
	for _, b := range e.Class().AttributesAt(e.Core().ns) {
		if b.Required() && !b.Field(e).IsSet() {
			return false
		}
	}
	return true
}

// HasRequiredElements returns true if every ExactlyOne child valid at e's
// namespaces is present.
func HasRequiredElements(e Element) bool {
	if isNil(e) {
		return false
	}
	for _, b := range e.Class().ChildrenAt(e.Core().ns) {
		if b.Cardinality == ExactlyOne && !b.IsSet(e) {
			return false
		}
	}
	return true
}
