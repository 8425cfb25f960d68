package fbc

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
)

// PackageName is the name of the fbc package.
const PackageName = "fbc"

// Type codes of the fbc package's elements.
const (
	TypeFluxBound = 2001 + iota
	TypeFluxObjective
	TypeObjective
	TypeListOfFluxBounds
	TypeListOfFluxObjectives
	TypeListOfObjectives
)

// NewNamespaces returns the fbc package namespaces.
func NewNamespaces(level, version, pkgVersion uint) xmlutil.Namespaces {
	return xmlutil.SBMLPackage(PackageName, level, version, pkgVersion)
}

// Namespaces is fbc version 1 on SBML L3V1.
var Namespaces = NewNamespaces(3, 1, 1)

var (
	fluxBoundClass = schema.NewClass(PackageName, "fluxBound", TypeFluxBound,
		schema.Traits(sbml.SBase,
			sbml.IDL3V1(schema.Code(sbmlerr.FbcSBMLSIdSyntax)),
			sbml.NameL3V1(schema.Code(sbmlerr.FbcFluxBoundNameMustBeString)),
			schema.NewTrait("FluxBound",
				schema.Attr("reaction", func(e schema.Element) *attr.SId { return &e.(*FluxBound).reaction },
					schema.Required(), schema.Code(sbmlerr.FbcFluxBoundReactionMustBeSIdRef)),
				schema.Attr("operation", func(e schema.Element) *attr.Enum[FluxBoundOperation] { return &e.(*FluxBound).operation },
					schema.Required(), schema.Code(sbmlerr.FbcFluxBoundOperationMustBeEnum)),
				schema.Attr("value", func(e schema.Element) *attr.Double { return &e.(*FluxBound).value },
					schema.Required(), schema.Code(sbmlerr.FbcFluxBoundValueMustBeDouble)))),
		schema.PrefixedAttributes(),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:  sbmlerr.FbcFluxBoundAllowedL3Attributes,
			AllowedElements:    sbmlerr.FbcFluxBoundAllowedElements,
			RequiredAttributes: sbmlerr.FbcFluxBoundRequiredAttributes,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewFluxBound(ns) }))

	fluxObjectiveClass = schema.NewClass(PackageName, "fluxObjective", TypeFluxObjective,
		schema.Traits(sbml.SBase,
			sbml.IDL3V1(schema.Code(sbmlerr.FbcSBMLSIdSyntax)),
			sbml.NameL3V1(schema.Code(sbmlerr.FbcFluxObjectNameMustBeString)),
			schema.NewTrait("FluxObjective",
				schema.Attr("reaction", func(e schema.Element) *attr.SId { return &e.(*FluxObjective).reaction },
					schema.Required(), schema.Code(sbmlerr.FbcFluxObjectReactionMustBeSIdRef)),
				schema.Attr("coefficient", func(e schema.Element) *attr.Double { return &e.(*FluxObjective).coefficient },
					schema.Required(), schema.Code(sbmlerr.FbcFluxObjectCoefficientMustBeDouble)))),
		schema.PrefixedAttributes(),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:  sbmlerr.FbcFluxObjectAllowedL3Attributes,
			AllowedElements:    sbmlerr.FbcFluxObjectAllowedElements,
			RequiredAttributes: sbmlerr.FbcFluxObjectRequiredAttributes,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewFluxObjective(ns) }))

	listOfFluxObjectivesClass = sbml.ListOfClass(PackageName, "listOfFluxObjectives", TypeListOfFluxObjectives,
		"fluxObjective", NewFluxObjective,
		schema.WithCodes(schema.Codes{AllowedElements: sbmlerr.FbcObjectiveLOFluxObjOnlyFluxObj}))

	objectiveClass = schema.NewClass(PackageName, "objective", TypeObjective,
		schema.Traits(sbml.SBase,
			sbml.IDL3V1(schema.Required(), schema.Code(sbmlerr.FbcSBMLSIdSyntax)),
			sbml.NameL3V1(schema.Code(sbmlerr.FbcObjectiveNameMustBeString)),
			schema.NewTrait("Objective",
				schema.Attr("type", func(e schema.Element) *attr.Enum[ObjectiveType] { return &e.(*Objective).typ },
					schema.Required(), schema.Code(sbmlerr.FbcObjectiveTypeMustBeEnum)),
				schema.Child("listOfFluxObjectives",
					func(e schema.Element) **sbml.ListOf[*FluxObjective] { return &e.(*Objective).fluxObjectives },
					NewListOfFluxObjectives,
					schema.Required(), schema.Code(sbmlerr.FbcObjectiveOneListOfObjectives)))),
		schema.PrefixedAttributes(),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:  sbmlerr.FbcObjectiveAllowedL3Attributes,
			AllowedElements:    sbmlerr.FbcObjectiveAllowedElements,
			RequiredAttributes: sbmlerr.FbcObjectiveRequiredAttributes,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewObjective(ns) }))

	listOfFluxBoundsClass = sbml.ListOfClass(PackageName, "listOfFluxBounds", TypeListOfFluxBounds,
		"fluxBound", NewFluxBound,
		schema.WithCodes(schema.Codes{
			AllowedCoreAttributes: sbmlerr.FbcListOfFluxBoundsAllowedCoreAttributes,
			AllowedElements:       sbmlerr.FbcListOfFluxBoundsAllowedElements,
		}))

	listOfObjectivesClass = sbml.ListOfClass(PackageName, "listOfObjectives", TypeListOfObjectives,
		"objective", NewObjective,
		schema.Traits(schema.NewTrait("ListOfObjectives",
			schema.Attr("activeObjective", func(e schema.Element) *attr.SId { return &e.(*ListOfObjectives).active },
				schema.Required(), schema.Code(sbmlerr.FbcActiveObjectiveSyntax)))),
		schema.PrefixedAttributes(),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.FbcListOfObjectivesAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.FbcListOfObjectivesAllowedCoreAttributes,
			AllowedElements:       sbmlerr.FbcListOfObjectivesAllowedElements,
		}),
		schema.WithFactory(func(c *schema.Class, ns xmlutil.Namespaces) schema.Element { return newListOfObjectives(c, ns) }))
)

func init() {
	schema.Register(fluxBoundClass, fluxObjectiveClass, objectiveClass,
		listOfFluxBoundsClass, listOfFluxObjectivesClass, listOfObjectivesClass)
}

// FluxBound bounds the flux of a reaction.
type FluxBound struct {
	sbml.Base
	reaction  attr.SId
	operation attr.Enum[FluxBoundOperation]
	value     attr.Double
}

// NewFluxBound returns a new fluxBound at ns.
func NewFluxBound(ns xmlutil.Namespaces) *FluxBound {
	b := &FluxBound{}
	b.Init(b, ns)
	return b
}

func (b *FluxBound) Class() *schema.Class { return fluxBoundClass }
func (b *FluxBound) Clone() *FluxBound    { return schema.Clone(b).(*FluxBound) }

func (b *FluxBound) Reaction() string            { return b.reaction.Get() }
func (b *FluxBound) IsSetReaction() bool         { return b.reaction.IsSet() }
func (b *FluxBound) SetReaction(id string) error { return b.reaction.Set(id) }
func (b *FluxBound) UnsetReaction() error        { b.reaction.Unset(); return nil }

// Operation returns the bound's operation, FluxBoundOperationInvalid when
// unset.
func (b *FluxBound) Operation() FluxBoundOperation            { return b.operation.Get() }
func (b *FluxBound) IsSetOperation() bool                     { return b.operation.IsSet() }
func (b *FluxBound) SetOperation(op FluxBoundOperation) error { return b.operation.Set(op) }
func (b *FluxBound) SetOperationString(s string) error        { return b.operation.Parse(s) }
func (b *FluxBound) UnsetOperation() error                    { b.operation.Unset(); return nil }

func (b *FluxBound) Value() float64     { return b.value.Get() }
func (b *FluxBound) IsSetValue() bool   { return b.value.IsSet() }
func (b *FluxBound) SetValue(v float64) { b.value.Set(v) }
func (b *FluxBound) UnsetValue() error  { b.value.Unset(); return nil }

// FluxObjective is a reaction's weighted contribution to an objective.
type FluxObjective struct {
	sbml.Base
	reaction    attr.SId
	coefficient attr.Double
}

// NewFluxObjective returns a new fluxObjective at ns.
func NewFluxObjective(ns xmlutil.Namespaces) *FluxObjective {
	o := &FluxObjective{}
	o.Init(o, ns)
	return o
}

func (o *FluxObjective) Class() *schema.Class  { return fluxObjectiveClass }
func (o *FluxObjective) Clone() *FluxObjective { return schema.Clone(o).(*FluxObjective) }

func (o *FluxObjective) Reaction() string            { return o.reaction.Get() }
func (o *FluxObjective) IsSetReaction() bool         { return o.reaction.IsSet() }
func (o *FluxObjective) SetReaction(id string) error { return o.reaction.Set(id) }
func (o *FluxObjective) UnsetReaction() error        { o.reaction.Unset(); return nil }

func (o *FluxObjective) Coefficient() float64     { return o.coefficient.Get() }
func (o *FluxObjective) IsSetCoefficient() bool   { return o.coefficient.IsSet() }
func (o *FluxObjective) SetCoefficient(v float64) { o.coefficient.Set(v) }
func (o *FluxObjective) UnsetCoefficient() error  { o.coefficient.Unset(); return nil }

// NewListOfFluxObjectives returns a new, empty listOfFluxObjectives at ns.
func NewListOfFluxObjectives(ns xmlutil.Namespaces) *sbml.ListOf[*FluxObjective] {
	return sbml.NewListOf(listOfFluxObjectivesClass, ns, NewFluxObjective)
}

// Objective is an objective function: the flux objectives to maximize or
// minimize.
type Objective struct {
	sbml.Base
	typ            attr.Enum[ObjectiveType]
	fluxObjectives *sbml.ListOf[*FluxObjective]
}

// NewObjective returns a new objective at ns.
func NewObjective(ns xmlutil.Namespaces) *Objective {
	o := &Objective{}
	o.Init(o, ns)
	return o
}

func (o *Objective) Class() *schema.Class { return objectiveClass }
func (o *Objective) Clone() *Objective    { return schema.Clone(o).(*Objective) }

func (o *Objective) Type() ObjectiveType           { return o.typ.Get() }
func (o *Objective) IsSetType() bool               { return o.typ.IsSet() }
func (o *Objective) SetType(t ObjectiveType) error { return o.typ.Set(t) }
func (o *Objective) SetTypeString(s string) error  { return o.typ.Parse(s) }
func (o *Objective) UnsetType() error              { o.typ.Unset(); return nil }

// FluxObjectives returns the objective's flux objectives, or nil if it has
// no listOfFluxObjectives.
func (o *Objective) FluxObjectives() *sbml.ListOf[*FluxObjective] { return o.fluxObjectives }

// CreateFluxObjective appends a new flux objective, creating the
// listOfFluxObjectives if needed.
func (o *Objective) CreateFluxObjective() *FluxObjective {
	if o.fluxObjectives == nil {
		_ = schema.SetChild(o, "listOfFluxObjectives", NewListOfFluxObjectives(o.Namespaces()))
	}
	return o.fluxObjectives.Create()
}

// AddFluxObjective appends fo, creating the listOfFluxObjectives if needed.
func (o *Objective) AddFluxObjective(fo *FluxObjective) error {
	if o.fluxObjectives == nil {
		if err := schema.SetChild(o, "listOfFluxObjectives", NewListOfFluxObjectives(o.Namespaces())); err != nil {
			return err
		}
	}
	return o.fluxObjectives.Append(fo)
}

// NewListOfFluxBounds returns a new, empty listOfFluxBounds at ns.
func NewListOfFluxBounds(ns xmlutil.Namespaces) *sbml.ListOf[*FluxBound] {
	return sbml.NewListOf(listOfFluxBoundsClass, ns, NewFluxBound)
}

// ListOfObjectives holds a model's objectives and names the active one.
type ListOfObjectives struct {
	sbml.ListOf[*Objective]
	active attr.SId
}

// NewListOfObjectives returns a new, empty listOfObjectives at ns.
func NewListOfObjectives(ns xmlutil.Namespaces) *ListOfObjectives {
	return newListOfObjectives(listOfObjectivesClass, ns)
}

func newListOfObjectives(c *schema.Class, ns xmlutil.Namespaces) *ListOfObjectives {
	l := &ListOfObjectives{}
	l.InitList(l, c, ns, NewObjective)
	return l
}

func (l *ListOfObjectives) Clone() *ListOfObjectives { return schema.Clone(l).(*ListOfObjectives) }

// ActiveObjective returns the id of the active objective.
func (l *ListOfObjectives) ActiveObjective() string            { return l.active.Get() }
func (l *ListOfObjectives) IsSetActiveObjective() bool         { return l.active.IsSet() }
func (l *ListOfObjectives) SetActiveObjective(id string) error { return l.active.Set(id) }
func (l *ListOfObjectives) UnsetActiveObjective() error        { l.active.Unset(); return nil }

// Active returns the objective named by activeObjective. It fails when
// activeObjective is unset or names no objective in the list.
func (l *ListOfObjectives) Active() (*Objective, error) {
	if !l.active.IsSet() {
		return nil, errors.Wrap(sbmlerr.ErrInvalidObject, "activeObjective is not set")
	}
	o := l.GetBySId(l.active.Get())
	if o == nil {
		return nil, errors.Wrapf(sbmlerr.ErrInvalidObject, "activeObjective %q refers to no objective", l.active.Get())
	}
	return o, nil
}
