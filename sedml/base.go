package sedml

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
)

// Namespaces is SED-ML Level 1 Version 3.
var Namespaces = xmlutil.SEDML(1, 3)

// Base is the state every SED-ML element has: the SedBase attributes.
type Base struct {
	schema.Node
	metaid attr.ID
	id     attr.SId
	name   attr.String
}

// SedBaser is implemented by every SED-ML element.
type SedBaser interface {
	schema.Element
	SedBase() *Base
}

// SedBase returns b.
func (b *Base) SedBase() *Base { return b }

func base(e schema.Element) *Base { return e.(SedBaser).SedBase() }

// NewSedBase returns the SedBase trait; idOpts apply to its id binding.
func NewSedBase(idOpts ...schema.Option) *schema.Trait {
	idOpts = append([]schema.Option{schema.Code(sbmlerr.SedmlIdSyntaxRule)}, idOpts...)
	return schema.NewCoreTrait("SedBase",
		schema.Attr("metaid", func(e schema.Element) *attr.ID { return &base(e).metaid },
			schema.Code(sbmlerr.SedmlInvalidMetaidSyntax)),
		schema.Attr("id", func(e schema.Element) *attr.SId { return &base(e).id }, idOpts...),
		schema.Attr("name", func(e schema.Element) *attr.String { return &base(e).name }))
}

// SedBase holds the attributes common to SED-ML elements.
var SedBase = NewSedBase()

func (b *Base) MetaId() string { return b.metaid.Get() }

func (b *Base) IsSetMetaId() bool {
	if b == nil {
		return false
	}
	return b.metaid.IsSet()
}

func (b *Base) SetMetaId(id string) error { return b.metaid.Set(id) }
func (b *Base) UnsetMetaId() error        { b.metaid.Unset(); return nil }

func (b *Base) Id() string { return b.id.Get() }

func (b *Base) IsSetId() bool {
	if b == nil {
		return false
	}
	return b.id.IsSet()
}

func (b *Base) SetId(id string) error { return b.id.Set(id) }
func (b *Base) UnsetId() error        { b.id.Unset(); return nil }

func (b *Base) Name() string        { return b.name.Get() }
func (b *Base) IsSetName() bool     { return b != nil && b.name.IsSet() }
func (b *Base) SetName(name string) { b.name.Set(name) }
func (b *Base) UnsetName() error    { b.name.Unset(); return nil }

// Item is implemented by the elements a SedListOf holds.
type Item interface {
	SedBaser
	comparable
}

// SedListOf is a SED-ML list holding elements of type T.
type SedListOf[T Item] struct {
	Base
	class   *schema.Class
	newItem func(xmlutil.Namespaces) T
	items   []T
}

type lister[T Item] interface{ List() *SedListOf[T] }

// ListOfClass returns the class of the list element name holding
// elements item, created with newItem.
func ListOfClass[T Item](name string, typeCode int, item string, newItem func(xmlutil.Namespaces) T, opts ...schema.ClassOption) *schema.Class {
	items := schema.NewTrait("SedListOf",
		schema.Many(item, func(e schema.Element) *[]T { return &e.(lister[T]).List().items }, newItem))
	all := []schema.ClassOption{
		schema.Traits(SedBase, items),
		schema.WithFactory(func(c *schema.Class, ns xmlutil.Namespaces) schema.Element {
			return NewListOf(c, ns, newItem)
		}),
	}
	return schema.NewClass(xmlutil.PackageSedML, name, typeCode, append(all, opts...)...)
}

// NewListOf returns an empty list of class c at ns.
func NewListOf[T Item](c *schema.Class, ns xmlutil.Namespaces, newItem func(xmlutil.Namespaces) T) *SedListOf[T] {
	l := &SedListOf[T]{class: c, newItem: newItem}
	l.Init(l, ns)
	return l
}

func (l *SedListOf[T]) Class() *schema.Class { return l.class }

// List returns l.
func (l *SedListOf[T]) List() *SedListOf[T] { return l }

// Len returns the number of items.
func (l *SedListOf[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns the items, borrowed.
func (l *SedListOf[T]) Items() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Get returns the i'th item, or the zero T.
func (l *SedListOf[T]) Get(i int) T {
	var zero T
	if i < 0 || i >= l.Len() {
		return zero
	}
	return l.items[i]
}

// GetBySId returns the item with the given id, or the zero T.
func (l *SedListOf[T]) GetBySId(id string) T {
	var zero T
	for _, item := range l.Items() {
		if item.SedBase().IsSetId() && item.SedBase().Id() == id {
			return item
		}
	}
	return zero
}

// Append adds item to the list, taking ownership of it. Item ids must be
// unique within the list.
func (l *SedListOf[T]) Append(item T) error {
	var zero T
	if item == zero {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	if item.SedBase().IsSetId() && l.GetBySId(item.SedBase().Id()) != zero {
		return errors.Wrapf(sbmlerr.ErrDuplicateObjectID, "id %q", item.SedBase().Id())
	}
	if err := schema.Adopt(l, item); err != nil {
		return err
	}
	l.items = append(l.items, item)
	return nil
}

// Create appends a new item and returns it.
func (l *SedListOf[T]) Create() T {
	item := l.newItem(l.Namespaces())
	_ = schema.Adopt(l, item)
	l.items = append(l.items, item)
	return item
}

// Remove removes the i'th item and returns it, detached, or the zero T.
func (l *SedListOf[T]) Remove(i int) T {
	var zero T
	if i < 0 || i >= l.Len() {
		return zero
	}
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	schema.Release(item)
	return item
}
