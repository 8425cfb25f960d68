package sbml

import (
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
)

// Item is implemented by the elements a ListOf holds.
type Item interface {
	SBaser
	comparable
}

// ListOf is an SBML ListOf container holding elements of type T. Types
// adding attributes to a ListOf embed it and call InitList.
type ListOf[T Item] struct {
	Base
	class   *schema.Class
	newItem func(xmlutil.Namespaces) T
	items   []T
}

type lister[T Item] interface{ List() *ListOf[T] }

// ListOfClass returns the class of the ListOf element name holding
// elements item, created with newItem. Further options may add traits
// after the ListOf's own, or replace its factory.
func ListOfClass[T Item](pkg, name string, typeCode int, item string, newItem func(xmlutil.Namespaces) T, opts ...schema.ClassOption) *schema.Class {
	items := schema.NewTrait("ListOf",
		schema.Many(item, func(e schema.Element) *[]T { return &e.(lister[T]).List().items }, newItem))
	all := []schema.ClassOption{
		schema.Traits(SBase, items),
		schema.WithFactory(func(c *schema.Class, ns xmlutil.Namespaces) schema.Element {
			return NewListOf(c, ns, newItem)
		}),
	}
	return schema.NewClass(pkg, name, typeCode, append(all, opts...)...)
}

// NewListOf returns an empty ListOf of class c at ns.
func NewListOf[T Item](c *schema.Class, ns xmlutil.Namespaces, newItem func(xmlutil.Namespaces) T) *ListOf[T] {
	l := &ListOf[T]{}
	l.InitList(l, c, ns, newItem)
	return l
}

// InitList initializes l as the list part of element self.
func (l *ListOf[T]) InitList(self schema.Element, c *schema.Class, ns xmlutil.Namespaces, newItem func(xmlutil.Namespaces) T) {
	*l = ListOf[T]{class: c, newItem: newItem}
	l.Init(self, ns)
}

func (l *ListOf[T]) Class() *schema.Class { return l.class }

// List returns l.
func (l *ListOf[T]) List() *ListOf[T] { return l }

// Len returns the number of items.
func (l *ListOf[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Items returns the items, borrowed.
func (l *ListOf[T]) Items() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

// Get returns the i'th item, or the zero T if i is out of range.
func (l *ListOf[T]) Get(i int) T {
	var zero T
	if i < 0 || i >= l.Len() {
		return zero
	}
	return l.items[i]
}

// GetBySId returns the item with the given id, or the zero T.
func (l *ListOf[T]) GetBySId(id string) T {
	var zero T
	if l == nil {
		return zero
	}
	for _, item := range l.items {
		if item.SBase().IsSetId() && item.SBase().Id() == id {
			return item
		}
	}
	return zero
}

// Append adds item to the end of the list, taking ownership of it.
func (l *ListOf[T]) Append(item T) error {
	var zero T
	if item == zero {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	if err := schema.Adopt(l.Self(), item); err != nil {
		return err
	}
	if item.SBase().IsSetId() {
		if other := l.GetBySId(item.SBase().Id()); other != zero {
			schema.Release(item)
			return errors.Wrapf(sbmlerr.ErrDuplicateObjectID, "id %q", item.SBase().Id())
		}
	}
	l.items = append(l.items, item)
	return nil
}

// Create appends a new item at the list's namespaces and returns it.
func (l *ListOf[T]) Create() T {
	item := l.newItem(l.Namespaces())
	_ = schema.Adopt(l.Self(), item)
	l.items = append(l.items, item)
	return item
}

// Remove removes the i'th item and returns it, detached, or the zero T
// if i is out of range.
func (l *ListOf[T]) Remove(i int) T {
	var zero T
	if i < 0 || i >= l.Len() {
		return zero
	}
	item := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	schema.Release(item)
	return item
}

// RemoveBySId removes the item with the given id and returns it, or the
// zero T.
func (l *ListOf[T]) RemoveBySId(id string) T {
	for i, item := range l.items {
		if item.SBase().IsSetId() && item.SBase().Id() == id {
			return l.Remove(i)
		}
	}
	var zero T
	return zero
}
