package schema

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Gate selects the namespaces a binding is valid at.
type Gate func(ns xmlutil.Namespaces) bool

// Cardinality is the number of occurrences permitted for a child element
type Cardinality int

const (
	ZeroOrOne Cardinality = iota
	ExactlyOne
	ZeroOrMany
)

func (c Cardinality) String() string {
	switch c {
	case ZeroOrOne:
		return "0..1"
	case ExactlyOne:
		return "1"
	case ZeroOrMany:
		return "0..*"
	}
	return "?"
}

type options struct {
	required bool
	nonEmpty bool
	def      attr.Value
	code     sbmlerr.Code
	gates    []Gate
}

// Option is a binding option
type Option func(*options)

// Required marks an attribute as required, or a child as ExactlyOne.
func Required() Option { return func(o *options) { o.required = true } }

// NonEmpty marks a string attribute whose value must not be empty.
func NonEmpty() Option { return func(o *options) { o.nonEmpty = true } }

// Default declares the value of an attribute when it is not set.
func Default(v attr.Value) Option { return func(o *options) { o.def = v } }

// Code sets the diagnostic code logged for a malformed attribute value,
// or for a missing or duplicate child element.
func Code(c sbmlerr.Code) Option { return func(o *options) { o.code = c } }

// When restricts the binding to namespaces accepted by g.
func When(g Gate) Option { return func(o *options) { o.gates = append(o.gates, g) } }

// Only restricts the binding to level/version.
func Only(level, version uint) Option {
	return When(func(ns xmlutil.Namespaces) bool { return ns.Is(level, version) })
}

// Since restricts the binding to level/version and later.
func Since(level, version uint) Option {
	return When(func(ns xmlutil.Namespaces) bool {
		return ns.Level > level || (ns.Level == level && ns.Version >= version)
	})
}

// PackageVersions restricts the binding to the listed package versions.
func PackageVersions(versions ...uint) Option {
	return When(func(ns xmlutil.Namespaces) bool {
		for _, v := range versions {
			if ns.PackageVersion == v {
				return true
			}
		}
		return false
	})
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) valid(ns xmlutil.Namespaces) bool {
	for _, g := range o.gates {
		if !g(ns) {
			return false
		}
	}
	return true
}

// Member is a trait member: an *AttrBinding or a *ChildBinding.
type Member interface {
	addTo(t *Trait)
}

// AttrBinding binds an XML attribute to a typed field.
type AttrBinding struct {
	Name string
	Kind attr.Kind

	enum  func() *attr.EnumTable
	core  bool
	opts  options
	field func(Element) attr.Field
}

// Attr returns a binding for the attribute name, stored in the field
// returned by get. F is a pointer to a field type of package attr (or any
// other attr.Field whose Kind method accepts a nil receiver).
func Attr[F attr.Field](name string, get func(Element) F, opts ...Option) *AttrBinding {
	var zero F
	b := &AttrBinding{
		Name:  name,
		Kind:  zero.Kind(),
		opts:  newOptions(opts),
		field: func(e Element) attr.Field { return get(e) },
	}
	if et, ok := any(zero).(interface{ Table() *attr.EnumTable }); ok {
		b.enum = et.Table
	}
	return b
}

func (b *AttrBinding) addTo(t *Trait) {
	b.core = t.Core
	t.Attrs = append(t.Attrs, b)
}

// Enum returns the token table of an enumerated attribute, or nil.
func (b *AttrBinding) Enum() *attr.EnumTable {
	if b.enum == nil {
		return nil
	}
	return b.enum()
}

// Field returns e's field for the attribute.
func (b *AttrBinding) Field(e Element) attr.Field { return b.field(e) }

// ValidAt returns true if the attribute is valid at ns.
func (b *AttrBinding) ValidAt(ns xmlutil.Namespaces) bool { return b.opts.valid(ns) }

func (b *AttrBinding) Required() bool        { return b.opts.required }
func (b *AttrBinding) NonEmpty() bool        { return b.opts.nonEmpty }
func (b *AttrBinding) Default() attr.Value   { return b.opts.def }
func (b *AttrBinding) Code() sbmlerr.Code    { return b.opts.code }
func (b *AttrBinding) IsCoreAttribute() bool { return b.core }

// ChildBinding binds a child element name to the slot storing it.
type ChildBinding struct {
	Name        string
	Cardinality Cardinality

	opts   options
	items  func(parent Element) []Element
	create func(ns xmlutil.Namespaces) Element
	attach func(parent, child Element)
	clear  func(parent Element)
}

// Child returns a binding for a singleton child element stored in the slot
// returned by slot. create makes a new, empty child for reading. The
// child is ExactlyOne when the Required option is given, ZeroOrOne
// otherwise.
func Child[T interface {
	Element
	comparable
}](name string, slot func(Element) *T, create func(xmlutil.Namespaces) T, opts ...Option) *ChildBinding {
	var zero T
	b := &ChildBinding{Name: name, Cardinality: ZeroOrOne, opts: newOptions(opts)}
	if b.opts.required {
		b.Cardinality = ExactlyOne
	}
	b.items = func(p Element) []Element {
		if c := *slot(p); c != zero {
			return []Element{c}
		}
		return nil
	}
	b.create = func(ns xmlutil.Namespaces) Element { return create(ns) }
	b.attach = func(p, c Element) {
		s := slot(p)
		if old := *s; old != zero && Element(old) != c {
			old.Core().parent = nil
		}
		*s = c.(T)
		c.Core().parent = p
	}
	b.clear = func(p Element) {
		s := slot(p)
		if old := *s; old != zero {
			old.Core().parent = nil
		}
		*s = zero
	}
	return b
}

// Many returns a binding for a repeated child element stored in the slice
// returned by slot.
func Many[T Element](name string, slot func(Element) *[]T, create func(xmlutil.Namespaces) T, opts ...Option) *ChildBinding {
	b := &ChildBinding{Name: name, Cardinality: ZeroOrMany, opts: newOptions(opts)}
	b.items = func(p Element) []Element {
		items := *slot(p)
		out := make([]Element, len(items))
		for i, c := range items {
			out[i] = c
		}
		return out
	}
	b.create = func(ns xmlutil.Namespaces) Element { return create(ns) }
	b.attach = func(p, c Element) {
		s := slot(p)
		*s = append(*s, c.(T))
		c.Core().parent = p
	}
	b.clear = func(p Element) {
		s := slot(p)
		for _, c := range *s {
			c.Core().parent = nil
		}
		*s = nil
	}
	return b
}

func (b *ChildBinding) addTo(t *Trait) { t.Children = append(t.Children, b) }

// ValidAt returns true if the child is valid at ns.
func (b *ChildBinding) ValidAt(ns xmlutil.Namespaces) bool { return b.opts.valid(ns) }

// Code returns the diagnostic code for a missing or duplicate child.
func (b *ChildBinding) Code() sbmlerr.Code { return b.opts.code }

// Items returns parent's children for the binding.
func (b *ChildBinding) Items(parent Element) []Element { return b.items(parent) }

// IsSet returns true if parent has at least one child for the binding.
func (b *ChildBinding) IsSet(parent Element) bool { return len(b.items(parent)) > 0 }

// Create returns a new child element for the binding at ns.
func (b *ChildBinding) Create(ns xmlutil.Namespaces) Element { return b.create(ns) }

// Attach installs child in parent, replacing a singleton child or
// appending to a repeated one, and sets the child's parent.
func (b *ChildBinding) Attach(parent, child Element) { b.attach(parent, child) }

// Clear removes parent's children for the binding, detaching them.
func (b *ChildBinding) Clear(parent Element) { b.clear(parent) }
