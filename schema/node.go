package schema

import (
	"reflect"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Element is implemented by every schema element type. Element types
// embed a Node (directly or through a family base type) and return their
// class from Class.
type Element interface {
	Class() *Class
	Core() *Node
}

// Node is the state common to all elements: the namespaces the element
// was created for, its (non-owning) parent, its source position and its
// plugins.
type Node struct {
	self    Element
	ns      xmlutil.Namespaces
	parent  Element
	line    int
	column  int
	plugins []Element
}

// Init initializes n as the node of self, at ns. Element constructors
// must call Init before the element is used.
func (n *Node) Init(self Element, ns xmlutil.Namespaces) {
	*n = Node{self: self, ns: ns}
}

// Core returns n
func (n *Node) Core() *Node { return n }

// Self returns the element n belongs to.
func (n *Node) Self() Element { return n.self }

func (n *Node) Namespaces() xmlutil.Namespaces { return n.ns }
func (n *Node) Level() uint                    { return n.ns.Level }
func (n *Node) Version() uint                  { return n.ns.Version }
func (n *Node) PackageVersion() uint           { return n.ns.PackageVersion }

// Parent returns the element owning n, or nil for a detached element.
func (n *Node) Parent() Element { return n.parent }

// Line returns the source line of the element's start tag, or 0.
func (n *Node) Line() int { return n.line }

// Column returns the source column of the element's start tag, or 0.
func (n *Node) Column() int { return n.column }

// SetPosition records the element's source position.
func (n *Node) SetPosition(line, column int) { n.line, n.column = line, column }

// Plugins returns the plugins extending the element.
func (n *Node) Plugins() []Element { return append([]Element(nil), n.plugins...) }

// Plugin returns the plugin of package pkg, or nil.
func (n *Node) Plugin(pkg string) Element {
	for _, p := range n.plugins {
		if p.Class().Package == pkg {
			return p
		}
	}
	return nil
}

// ElementName returns the XML local name of the element.
func (n *Node) ElementName() string { return n.self.Class().Name }

// TypeCode returns the element's type code.
func (n *Node) TypeCode() int { return n.self.Class().TypeCode }

// PackageName returns the name of the package defining the element.
func (n *Node) PackageName() string { return n.self.Class().Package }

func (n *Node) HasRequiredAttributes() bool { return HasRequiredAttributes(n.self) }
func (n *Node) HasRequiredElements() bool   { return HasRequiredElements(n.self) }

func (n *Node) GetAttribute(name string) (attr.Value, error) { return GetAttribute(n.self, name) }
func (n *Node) SetAttribute(name string, v attr.Value) error { return SetAttribute(n.self, name, v) }
func (n *Node) IsSetAttribute(name string) bool              { return IsSetAttribute(n.self, name) }
func (n *Node) UnsetAttribute(name string) error             { return UnsetAttribute(n.self, name) }

// AllElements returns the element's descendants, depth first.
func (n *Node) AllElements() []Element { return AllElements(n.self) }

// ElementBySId returns the descendant with the given id, or nil.
func (n *Node) ElementBySId(id string) Element { return ElementBySId(n.self, id) }

// ElementByMetaId returns the descendant with the given metaid, or nil.
func (n *Node) ElementByMetaId(metaid string) Element { return ElementByMetaId(n.self, metaid) }

// isNil returns true for nil interfaces and typed nil pointers.
func isNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
