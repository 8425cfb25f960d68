package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
)

// PluginSpec describes a plugin: a class whose attributes extend
// elements of other packages, written in the plugin package's namespace.
type PluginSpec struct {
	Class *Class
	// Extends returns true for the classes the plugin extends
	Extends func(target *Class) bool
}

type classKey struct{ pkg, name string }

type registry struct {
	mu       sync.RWMutex
	classes  map[classKey]*Class
	byCode   map[int]*Class
	plugins  []*PluginSpec
	packages map[string]bool
}

var classes = &registry{
	classes:  map[classKey]*Class{},
	byCode:   map[int]*Class{},
	packages: map[string]bool{},
}

// Register adds classes to the class registry, making them available to
// document readers. It panics if a package already has a class of the same
// name or type code.
func Register(cs ...*Class) {
	classes.mu.Lock()
	defer classes.mu.Unlock()
	for _, c := range cs {
		key := classKey{c.Package, c.Name}
		if _, dup := classes.classes[key]; dup {
			panic(fmt.Sprintf("schema: class %s registered twice", c))
		}
		if other, dup := classes.byCode[c.TypeCode]; dup {
			panic(fmt.Sprintf("schema: class %s reuses type code %d of %s", c, c.TypeCode, other))
		}
		classes.classes[key] = c
		classes.byCode[c.TypeCode] = c
		classes.packages[c.Package] = true
	}
}

// RegisterPlugin adds a plugin to the registry.
func RegisterPlugin(p *PluginSpec) {
	classes.mu.Lock()
	defer classes.mu.Unlock()
	classes.plugins = append(classes.plugins, p)
	classes.packages[p.Class.Package] = true
}

// Lookup returns the class registered for element name of package pkg.
func Lookup(pkg, name string) (*Class, bool) {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	c, ok := classes.classes[classKey{pkg, name}]
	return c, ok
}

// LookupTypeCode returns the class registered with the type code.
func LookupTypeCode(code int) (*Class, bool) {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	c, ok := classes.byCode[code]
	return c, ok
}

// Classes returns the registered classes, sorted by package and name.
func Classes() []*Class {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	out := make([]*Class, 0, len(classes.classes))
	for _, c := range classes.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Package != out[j].Package {
			return out[i].Package < out[j].Package
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// KnownPackage returns true if any class or plugin of pkg is registered.
func KnownPackage(pkg string) bool {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	return classes.packages[pkg]
}

// PluginFor returns the plugin of package pkg extending class target.
func PluginFor(pkg string, target *Class) (*PluginSpec, bool) {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	for _, p := range classes.plugins {
		if p.Class.Package == pkg && p.Extends(target) {
			return p, true
		}
	}
	return nil, false
}

// EnablePlugin returns e's plugin of package pkg, creating it at the
// package version pkgVersion if e has none. It fails with
// ErrOperationFailed if no such plugin extends e's class.
func EnablePlugin(e Element, pkg string, pkgVersion uint) (Element, error) {
	if isNil(e) {
		return nil, errors.WithStack(sbmlerr.ErrInvalidObject)
	}
	n := e.Core()
	if p := n.Plugin(pkg); p != nil {
		return p, nil
	}
	spec, ok := PluginFor(pkg, e.Class())
	if !ok {
		return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "no %s plugin extends %s", pkg, e.Class())
	}
	ns := n.ns.WithPackage(pkg, pkgVersion)
	p := spec.Class.New(ns)
	if p == nil {
		return nil, errors.Wrapf(sbmlerr.ErrOperationFailed, "plugin class %s has no factory", spec.Class)
	}
	p.Core().parent = e
	n.plugins = append(n.plugins, p)
	return p, nil
}

// DisablePlugin removes e's plugin of package pkg, if any.
func DisablePlugin(e Element, pkg string) {
	if isNil(e) {
		return
	}
	n := e.Core()
	for i, p := range n.plugins {
		if p.Class().Package == pkg {
			p.Core().parent = nil
			n.plugins = append(n.plugins[:i], n.plugins[i+1:]...)
			return
		}
	}
}

// classFor returns the registered class for the element name in ns.
func classFor(ns xmlutil.Namespaces, local string) (*Class, bool) {
	if c, ok := Lookup(ns.PackageName(), local); ok {
		return c, true
	}
	return nil, false
}
