package testpkg

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// PackageName is the name of the test package.
const PackageName = "test"

// Type codes of the test package's elements.
const (
	TypeCategory = 9001 + iota
	TypeValue
	TypeClassThree
	TypeSBasePlugin
)

// NewNamespaces returns the test package namespaces.
func NewNamespaces(level, version, pkgVersion uint) xmlutil.Namespaces {
	return xmlutil.SBMLPackage(PackageName, level, version, pkgVersion)
}

// Namespaces is the test package version 1 on SBML L3V1.
var Namespaces = NewNamespaces(3, 1, 1)

var (
	classThreeClass = schema.NewClass(PackageName, "classThree", TypeClassThree,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(schema.Code(sbmlerr.TestClassThreeNameMustBeString)),
			schema.NewTrait("ClassThree",
				schema.Attr("number", func(e schema.Element) *attr.Enum[Number] { return &e.(*ClassThree).number },
					schema.Required(), schema.Code(sbmlerr.TestClassThreeNumberMustBeNumberEnum)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.TestClassThreeAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.TestClassThreeAllowedCoreAttributes,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewClassThree(ns) }))

	categoryClass = schema.NewClass(PackageName, "category", TypeCategory,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(schema.Code(sbmlerr.TestCategoryNameMustBeString)),
			schema.NewTrait("Category",
				schema.Attr("rank", func(e schema.Element) *attr.UInt { return &e.(*Category).rank },
					schema.Required(), schema.Code(sbmlerr.TestCategoryRankMustBeNonNegativeInteger)),
				schema.Child("value", func(e schema.Element) **Value { return &e.(*Category).value }, NewValue,
					schema.Required(), schema.Code(sbmlerr.TestCategoryAllowedElements)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.TestCategoryAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.TestCategoryAllowedCoreAttributes,
			AllowedElements:       sbmlerr.TestCategoryAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewCategory(ns) }))

	valueClass = schema.NewClass(PackageName, "value", TypeValue,
		schema.Traits(sbml.SBase),
		schema.WithText(func(e schema.Element) *attr.String { return &e.(*Value).text }),
		schema.WithCodes(schema.Codes{
			AllowedCoreAttributes: sbmlerr.TestValueAllowedCoreAttributes,
			AllowedElements:       sbmlerr.TestValueAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewValue(ns) }))

	sbasePluginClass = schema.NewClass(PackageName, "SBasePlugin", TypeSBasePlugin,
		schema.Traits(schema.NewTrait("SBasePlugin",
			schema.Attr("id", func(e schema.Element) *attr.SId { return &e.(*SBasePlugin).id },
				schema.Only(3, 1), schema.Code(sbmlerr.TestIdSyntaxRule)),
			schema.Attr("plugAtt", func(e schema.Element) *attr.String { return &e.(*SBasePlugin).plugAtt },
				schema.Code(sbmlerr.TestSBasePluginPlugAttMustBeString)))),
		schema.WithCodes(schema.Codes{AllowedAttributes: sbmlerr.TestSBasePluginAllowedAttributes}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewSBasePlugin(ns) }))
)

func init() {
	schema.Register(classThreeClass, categoryClass, valueClass)
	schema.RegisterPlugin(&schema.PluginSpec{
		Class:   sbasePluginClass,
		Extends: isSBML,
	})
}

func isSBML(c *schema.Class) bool {
	return xmlutil.Namespaces{Package: c.Package}.Family() == xmlutil.FamilySBML
}

// ClassThree is the classThree element.
type ClassThree struct {
	sbml.Base
	number attr.Enum[Number]
}

// NewClassThree returns a new classThree element at ns.
func NewClassThree(ns xmlutil.Namespaces) *ClassThree {
	c := &ClassThree{}
	c.Init(c, ns)
	return c
}

func (c *ClassThree) Class() *schema.Class { return classThreeClass }

// Clone returns a deep copy of c.
func (c *ClassThree) Clone() *ClassThree { return schema.Clone(c).(*ClassThree) }

// Number returns the number, or NumberInvalid.
func (c *ClassThree) Number() Number           { return c.number.Get() }
func (c *ClassThree) IsSetNumber() bool        { return c.number.IsSet() }
func (c *ClassThree) SetNumber(n Number) error { return c.number.Set(n) }
func (c *ClassThree) UnsetNumber() error       { c.number.Unset(); return nil }

// SetNumberString sets the number from its token.
func (c *ClassThree) SetNumberString(s string) error { return c.number.Assign(attr.StringValue(s)) }

// Category is the category element.
type Category struct {
	sbml.Base
	rank  attr.UInt
	value *Value
}

// NewCategory returns a new category element at ns.
func NewCategory(ns xmlutil.Namespaces) *Category {
	c := &Category{}
	c.Init(c, ns)
	return c
}

func (c *Category) Class() *schema.Class { return categoryClass }

// Clone returns a deep copy of c.
func (c *Category) Clone() *Category { return schema.Clone(c).(*Category) }

func (c *Category) Rank() uint       { return c.rank.Get() }
func (c *Category) IsSetRank() bool  { return c.rank.IsSet() }
func (c *Category) SetRank(r uint)   { c.rank.Set(r) }
func (c *Category) UnsetRank() error { c.rank.Unset(); return nil }

// Value returns the value child, or nil.
func (c *Category) Value() *Value { return c.value }

func (c *Category) IsSetValue() bool { return c.value != nil }

// SetValue installs v as the value child, taking ownership of it. A nil v
// unsets the child.
func (c *Category) SetValue(v *Value) error { return schema.SetChild(c, "value", v) }

// CreateValue installs a new value child and returns it.
func (c *Category) CreateValue() *Value {
	v, _ := schema.CreateChild(c, "value")
	return v.(*Value)
}

// RemoveValue removes the value child and returns it, or nil.
func (c *Category) RemoveValue() *Value {
	v, _ := schema.RemoveChild(c, "value").(*Value)
	return v
}

func (c *Category) UnsetValue() error { return schema.SetChild(c, "value", nil) }

// Value is the value element, holding character data.
type Value struct {
	sbml.Base
	text attr.String
}

// NewValue returns a new value element at ns.
func NewValue(ns xmlutil.Namespaces) *Value {
	v := &Value{}
	v.Init(v, ns)
	return v
}

func (v *Value) Class() *schema.Class { return valueClass }

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value { return schema.Clone(v).(*Value) }

func (v *Value) Text() string     { return v.text.Get() }
func (v *Value) IsSetText() bool  { return v.text.IsSet() }
func (v *Value) SetText(s string) { v.text.Set(s) }
func (v *Value) UnsetText() error { v.text.Unset(); return nil }

// SBasePlugin extends SBML elements with the test package's plugAtt
// attribute, and in L3V1 with an id.
type SBasePlugin struct {
	schema.Node
	id      attr.SId
	plugAtt attr.String
}

// NewSBasePlugin returns a new plugin at ns.
func NewSBasePlugin(ns xmlutil.Namespaces) *SBasePlugin {
	p := &SBasePlugin{}
	p.Init(p, ns)
	return p
}

func (p *SBasePlugin) Class() *schema.Class { return sbasePluginClass }

// PluginOf returns e's test plugin, creating it if needed.
func PluginOf(e schema.Element) (*SBasePlugin, error) {
	p, err := schema.EnablePlugin(e, PackageName, 1)
	if err != nil {
		return nil, err
	}
	return p.(*SBasePlugin), nil
}

func (p *SBasePlugin) Id() string     { return p.id.Get() }
func (p *SBasePlugin) IsSetId() bool  { return p.id.IsSet() }
func (p *SBasePlugin) UnsetId() error { p.id.Unset(); return nil }

// SetId sets the plugin id, which exists only in L3V1.
func (p *SBasePlugin) SetId(id string) error { return p.SetAttribute("id", attr.StringValue(id)) }

func (p *SBasePlugin) PlugAtt() string     { return p.plugAtt.Get() }
func (p *SBasePlugin) IsSetPlugAtt() bool  { return p.plugAtt.IsSet() }
func (p *SBasePlugin) SetPlugAtt(s string) { p.plugAtt.Set(s) }
func (p *SBasePlugin) UnsetPlugAtt() error { p.plugAtt.Unset(); return nil }
