package sedml

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Type codes of the SED-ML elements.
const (
	TypeModel = 3001 + iota
	TypeChangeAttribute
	TypeListOfChanges
)

var (
	changeAttributeClass = schema.NewClass(xmlutil.PackageSedML, "changeAttribute", TypeChangeAttribute,
		schema.Traits(SedBase, schema.NewTrait("ChangeAttribute",
			schema.Attr("target", func(e schema.Element) *attr.String { return &e.(*ChangeAttribute).target },
				schema.Required(), schema.NonEmpty(), schema.Code(sbmlerr.SedmlChangeAttributeTargetMustBeString)),
			schema.Attr("newValue", func(e schema.Element) *attr.String { return &e.(*ChangeAttribute).newValue },
				schema.Required(), schema.Code(sbmlerr.SedmlChangeAttributeNewValueMustBeString)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.SedmlChangeAttributeAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.SedmlChangeAttributeAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SedmlChangeAttributeAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewChangeAttribute(ns) }))

	listOfChangesClass = ListOfClass("listOfChanges", TypeListOfChanges, "changeAttribute", NewChangeAttribute,
		schema.WithCodes(schema.Codes{
			AllowedCoreAttributes: sbmlerr.SedmlSedModelLOChangesAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SedmlSedModelLOChangesAllowedCoreElements,
		}))

	modelClass = schema.NewClass(xmlutil.PackageSedML, "model", TypeModel,
		schema.Traits(NewSedBase(schema.Required()), schema.NewTrait("SedModel",
			schema.Attr("language", func(e schema.Element) *attr.String { return &e.(*Model).language },
				schema.Code(sbmlerr.SedmlSedModelLanguageMustBeString)),
			schema.Attr("source", func(e schema.Element) *attr.String { return &e.(*Model).source },
				schema.Required(), schema.NonEmpty(), schema.Code(sbmlerr.SedmlSedModelSourceMustBeString)),
			schema.Child("listOfChanges", func(e schema.Element) **SedListOf[*ChangeAttribute] { return &e.(*Model).changes },
				NewListOfChanges))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.SedmlSedModelAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.SedmlSedModelAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SedmlSedModelAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewModel(ns) }))
)

func init() { schema.Register(modelClass, changeAttributeClass, listOfChangesClass) }

// Model is a model to simulate: where to find it, in which language, and
// the changes to apply to it first.
type Model struct {
	Base
	language attr.String
	source   attr.String
	changes  *SedListOf[*ChangeAttribute]
}

// NewModel returns a new model at ns.
func NewModel(ns xmlutil.Namespaces) *Model {
	m := &Model{}
	m.Init(m, ns)
	return m
}

func (m *Model) Class() *schema.Class { return modelClass }
func (m *Model) Clone() *Model        { return schema.Clone(m).(*Model) }

// Language returns the model's language URN, e.g. urn:sedml:language:sbml.
func (m *Model) Language() string       { return m.language.Get() }
func (m *Model) IsSetLanguage() bool    { return m.language.IsSet() }
func (m *Model) SetLanguage(urn string) { m.language.Set(urn) }
func (m *Model) UnsetLanguage() error   { m.language.Unset(); return nil }

// Source returns the location of the model: a URI, or the id of another
// model.
func (m *Model) Source() string       { return m.source.Get() }
func (m *Model) IsSetSource() bool    { return m.source.IsSet() }
func (m *Model) SetSource(src string) { m.source.Set(src) }
func (m *Model) UnsetSource() error   { m.source.Unset(); return nil }

// Changes returns the model's changes, or nil.
func (m *Model) Changes() *SedListOf[*ChangeAttribute] { return m.changes }

// CreateChangeAttribute appends a new changeAttribute, creating the
// listOfChanges if needed.
func (m *Model) CreateChangeAttribute() *ChangeAttribute {
	if m.changes == nil {
		_ = schema.SetChild(m, "listOfChanges", NewListOfChanges(m.Namespaces()))
	}
	return m.changes.Create()
}

// NewListOfChanges returns a new, empty listOfChanges at ns.
func NewListOfChanges(ns xmlutil.Namespaces) *SedListOf[*ChangeAttribute] {
	return NewListOf(listOfChangesClass, ns, NewChangeAttribute)
}

// ChangeAttribute replaces the value of the model attribute addressed by
// an XPath target.
type ChangeAttribute struct {
	Base
	target   attr.String
	newValue attr.String
}

// NewChangeAttribute returns a new changeAttribute at ns.
func NewChangeAttribute(ns xmlutil.Namespaces) *ChangeAttribute {
	c := &ChangeAttribute{}
	c.Init(c, ns)
	return c
}

func (c *ChangeAttribute) Class() *schema.Class { return changeAttributeClass }
func (c *ChangeAttribute) Clone() *ChangeAttribute {
	return schema.Clone(c).(*ChangeAttribute)
}

func (c *ChangeAttribute) Target() string         { return c.target.Get() }
func (c *ChangeAttribute) IsSetTarget() bool      { return c.target.IsSet() }
func (c *ChangeAttribute) SetTarget(xpath string) { c.target.Set(xpath) }
func (c *ChangeAttribute) UnsetTarget() error     { c.target.Unset(); return nil }

func (c *ChangeAttribute) NewValue() string     { return c.newValue.Get() }
func (c *ChangeAttribute) IsSetNewValue() bool  { return c.newValue.IsSet() }
func (c *ChangeAttribute) SetNewValue(v string) { c.newValue.Set(v) }
func (c *ChangeAttribute) UnsetNewValue() error { c.newValue.Unset(); return nil }
