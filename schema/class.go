package schema

import (
	"fmt"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Trait is a named group of attribute and child bindings, the unit of
// class composition. Core traits hold the attributes of a family's base
// class (for SBML, those of SBase).
type Trait struct {
	Name     string
	Core     bool
	Attrs    []*AttrBinding
	Children []*ChildBinding
}

// NewTrait returns a trait holding members, in order.
func NewTrait(name string, members ...Member) *Trait {
	t := &Trait{Name: name}
	for _, m := range members {
		m.addTo(t)
	}
	return t
}

// NewCoreTrait returns a core trait holding members, in order.
func NewCoreTrait(name string, members ...Member) *Trait {
	t := &Trait{Name: name, Core: true}
	for _, m := range members {
		m.addTo(t)
	}
	return t
}

// Codes are the class-specific diagnostic codes logged by the reader.
// Zero codes fall back as described on each field.
type Codes struct {
	// AllowedAttributes replaces UnknownPackageAttribute diagnostics, and
	// is logged for missing required attributes
	AllowedAttributes sbmlerr.Code
	// AllowedCoreAttributes replaces UnknownCoreAttribute diagnostics
	// (falls back to AllowedAttributes)
	AllowedCoreAttributes sbmlerr.Code
	// AllowedElements is logged for unknown, duplicate and missing
	// children (falls back to UnrecognizedElement)
	AllowedElements sbmlerr.Code
	// RequiredAttributes is logged for missing required attributes
	// (falls back to AllowedAttributes)
	RequiredAttributes sbmlerr.Code
}

func (c Codes) reclassify(from sbmlerr.Code) sbmlerr.Code {
	switch from {
	case sbmlerr.UnknownCoreAttribute:
		return firstCode(c.AllowedCoreAttributes, c.AllowedAttributes)
	case sbmlerr.UnknownPackageAttribute:
		return firstCode(c.AllowedAttributes, c.AllowedCoreAttributes)
	}
	return 0
}

func (c Codes) missingAttribute() sbmlerr.Code {
	return firstCode(c.RequiredAttributes, c.AllowedAttributes, sbmlerr.NotSchemaConformant)
}

func (c Codes) elements() sbmlerr.Code { return firstCode(c.AllowedElements, sbmlerr.UnrecognizedElement) }

func firstCode(codes ...sbmlerr.Code) sbmlerr.Code {
	for _, c := range codes {
		if c != 0 {
			return c
		}
	}
	return 0
}

// Factory creates a new, empty element of class c at ns.
type Factory func(c *Class, ns xmlutil.Namespaces) Element

// Class describes an element type.
type Class struct {
	// Package is the package (or family base, see xmlutil) the class
	// belongs to
	Package string
	// Name is the XML local name of the element
	Name     string
	TypeCode int
	Codes    Codes
	// Prefixed is set for classes whose package attributes are qualified
	// with the package namespace, as in fbc version 1.
	Prefixed bool

	traits   []*Trait
	attrs    []*AttrBinding
	children []*ChildBinding
	byName   map[string][]*AttrBinding
	baseName map[string]bool
	text     func(Element) *attr.String
	factory  Factory
}

// ClassOption is a Class option function
type ClassOption func(*Class)

// Traits appends traits to the class composition, base first.
func Traits(traits ...*Trait) ClassOption {
	return func(c *Class) { c.traits = append(c.traits, traits...) }
}

// WithCodes sets the class's diagnostic codes.
func WithCodes(codes Codes) ClassOption { return func(c *Class) { c.Codes = codes } }

// WithText stores the element's character data in the field returned by
// get.
func WithText(get func(Element) *attr.String) ClassOption { return func(c *Class) { c.text = get } }

// WithFactory sets the function creating new elements of the class.
func WithFactory(f Factory) ClassOption { return func(c *Class) { c.factory = f } }

// PrefixedAttributes marks the class's package attributes as qualified.
func PrefixedAttributes() ClassOption { return func(c *Class) { c.Prefixed = true } }

// NewClass returns the class of the element pkg:name. Duplicate attribute
// names are permitted only where the bindings' version gates differ; the
// last binding valid at an element's namespaces is used.
func NewClass(pkg, name string, typeCode int, opts ...ClassOption) *Class {
	c := &Class{
		Package:  pkg,
		Name:     name,
		TypeCode: typeCode,
		byName:   map[string][]*AttrBinding{},
		baseName: map[string]bool{},
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, t := range c.traits {
		for _, b := range t.Attrs {
			c.attrs = append(c.attrs, b)
			c.byName[b.Name] = append(c.byName[b.Name], b)
			if b.core {
				c.baseName[b.Name] = true
			}
		}
		c.children = append(c.children, t.Children...)
	}
	return c
}

func (c *Class) String() string { return fmt.Sprintf("%s:%s", c.Package, c.Name) }

// New returns a new, empty element of the class at ns, or nil if the class
// has no factory.
func (c *Class) New(ns xmlutil.Namespaces) Element {
	if c.factory == nil {
		return nil
	}
	return c.factory(c, ns)
}

// Traits returns the class composition, base first.
func (c *Class) Traits() []*Trait { return append([]*Trait(nil), c.traits...) }

// Attributes returns every attribute binding, in declaration order.
func (c *Class) Attributes() []*AttrBinding { return append([]*AttrBinding(nil), c.attrs...) }

// Children returns every child binding, in declaration order.
func (c *Class) Children() []*ChildBinding { return append([]*ChildBinding(nil), c.children...) }

// HasText returns true if the class stores character data.
func (c *Class) HasText() bool { return c.text != nil }

// Text returns e's character data field, or nil.
func (c *Class) Text(e Element) *attr.String {
	if c.text == nil {
		return nil
	}
	return c.text(e)
}

// AttributesAt returns the attribute bindings valid at ns, in order.
func (c *Class) AttributesAt(ns xmlutil.Namespaces) (out []*AttrBinding) {
	for _, b := range c.attrs {
		if b.ValidAt(ns) {
			out = append(out, b)
		}
	}
	return out
}

// ChildrenAt returns the child bindings valid at ns, in order.
func (c *Class) ChildrenAt(ns xmlutil.Namespaces) (out []*ChildBinding) {
	for _, b := range c.children {
		if b.ValidAt(ns) {
			out = append(out, b)
		}
	}
	return out
}

// ExpectedAttributes returns the names of the attributes the class
// accepts at ns, base traits first. Names of bindings not valid at ns
// never appear.
func (c *Class) ExpectedAttributes(ns xmlutil.Namespaces) []string {
	var names []string
	seen := map[string]bool{}
	for _, b := range c.AttributesAt(ns) {
		if !seen[b.Name] {
			seen[b.Name] = true
			names = append(names, b.Name)
		}
	}
	return names
}

// Binding returns the binding of attribute name valid at ns, or nil.
func (c *Class) Binding(name string, ns xmlutil.Namespaces) *AttrBinding {
	bs := c.byName[name]
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i].ValidAt(ns) {
			return bs[i]
		}
	}
	return nil
}

// Child returns the child binding for element name valid at ns, or nil.
func (c *Class) Child(name string, ns xmlutil.Namespaces) *ChildBinding {
	for i := len(c.children) - 1; i >= 0; i-- {
		if b := c.children[i]; b.Name == name && b.ValidAt(ns) {
			return b
		}
	}
	return nil
}

// isBaseName returns true if name is declared by a core trait of the
// class, at any namespaces.
func (c *Class) isBaseName(name string) bool { return c.baseName[name] }
