package schema

import (
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/pkg/errors"
)

// CheckCompatible returns an error if child may not be owned by parent:
// their levels and versions must match, as must the package versions of
// elements of the same package.
func CheckCompatible(parent, child Element) error {
	if isNil(parent) || isNil(child) {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	p, c := parent.Core().ns, child.Core().ns
	switch {
	case p.Family() != c.Family():
		return errors.Wrapf(sbmlerr.ErrOperationFailed, "cannot add a %s element to a %s element", c, p)
	case p.Level != c.Level:
		return errors.Wrapf(sbmlerr.ErrLevelMismatch, "cannot add a %s element to a %s element", c, p)
	case p.Version != c.Version:
		return errors.Wrapf(sbmlerr.ErrVersionMismatch, "cannot add a %s element to a %s element", c, p)
	case p.PackageName() == c.PackageName() && p.PackageVersion != c.PackageVersion:
		return errors.Wrapf(sbmlerr.ErrPkgVersionMismatch, "cannot add a %s element to a %s element", c, p)
	}
	return nil
}

// Adopt makes parent the owner of child. child must be detached and
// compatible with parent.
func Adopt(parent, child Element) error {
	if err := CheckCompatible(parent, child); err != nil {
		return err
	}
	if owner := child.Core().parent; owner != nil && owner != parent {
		return errors.Wrapf(sbmlerr.ErrOperationFailed, "%s already has a parent", child.Class())
	}
	child.Core().parent = parent
	return nil
}

// Release detaches child from its parent. The parent's slot is left
// untouched.
func Release(child Element) {
	if !isNil(child) {
		child.Core().parent = nil
	}
}

func childBinding(parent Element, name string) (*ChildBinding, error) {
	if isNil(parent) {
		return nil, errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	b := parent.Class().Child(name, parent.Core().ns)
	if b == nil {
		return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "%s has no child %q", parent.Class(), name)
	}
	return b, nil
}

// SetChild installs child as parent's singleton child name, transferring
// ownership. A nil child clears the slot.
func SetChild(parent Element, name string, child Element) error {
	b, err := childBinding(parent, name)
	if err != nil {
		return err
	}
	if isNil(child) {
		b.Clear(parent)
		return nil
	}
	if child.Class().Name != name {
		return errors.Wrapf(sbmlerr.ErrInvalidObject, "cannot set %s as <%s>", child.Class(), name)
	}
	if err := Adopt(parent, child); err != nil {
		return err
	}
	if b.Cardinality == ZeroOrMany {
		b.Clear(parent)
	}
	b.Attach(parent, child)
	return nil
}

// AddChild appends child to parent's children named name, transferring
// ownership.
func AddChild(parent Element, name string, child Element) error {
	b, err := childBinding(parent, name)
	if err != nil {
		return err
	}
	if isNil(child) {
		return errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	if child.Class().Name != name {
		return errors.Wrapf(sbmlerr.ErrInvalidObject, "cannot add %s as <%s>", child.Class(), name)
	}
	if err := Adopt(parent, child); err != nil {
		return err
	}
	b.Attach(parent, child)
	return nil
}

// CreateChild creates a child named name at parent's namespaces and
// installs it, replacing any singleton child.
func CreateChild(parent Element, name string) (Element, error) {
	b, err := childBinding(parent, name)
	if err != nil {
		return nil, err
	}
	child := b.Create(parent.Core().ns)
	b.Attach(parent, child)
	return child, nil
}

// RemoveChild removes parent's singleton child name and returns it,
// detached, or nil if it is not set.
func RemoveChild(parent Element, name string) Element {
	b, err := childBinding(parent, name)
	if err != nil {
		return nil
	}
	items := b.Items(parent)
	if len(items) == 0 {
		return nil
	}
	b.Clear(parent)
	return items[0]
}
