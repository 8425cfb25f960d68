package distrib

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// PackageName is the name of the distrib package.
const PackageName = "distrib"

// Type codes of the distrib package's elements.
const (
	TypeNumberOfTrials = 1501 + iota
	TypeProbabilityOfSuccess
	TypeTruncationLowerBound
	TypeTruncationUpperBound
	TypeBinomialDistribution
	TypeBernoulliDistribution
)

// NewNamespaces returns the distrib package namespaces.
func NewNamespaces(level, version, pkgVersion uint) xmlutil.Namespaces {
	return xmlutil.SBMLPackage(PackageName, level, version, pkgVersion)
}

// Namespaces is the distrib package version 1 on SBML L3V1.
var Namespaces = NewNamespaces(3, 1, 1)

// UncertValue is a value, or a reference to the SBML element holding one,
// with optional units. One type serves every element with this content,
// each element name having its own class.
type UncertValue struct {
	sbml.Base
	class  *schema.Class
	value  attr.Double
	varRef attr.SId
	units  attr.SId
}

// UncertBound is an UncertValue bounding a distribution.
type UncertBound struct {
	UncertValue
	inclusive attr.Bool
}

type uncertValuer interface{ uncertValue() *UncertValue }

func (u *UncertValue) uncertValue() *UncertValue { return u }

func uv(e schema.Element) *UncertValue { return e.(uncertValuer).uncertValue() }

var uncertValueTrait = schema.NewTrait("UncertValue",
	schema.Attr("value", func(e schema.Element) *attr.Double { return &uv(e).value },
		schema.Code(sbmlerr.DistribUncertValueValueMustBeDouble)),
	schema.Attr("var", func(e schema.Element) *attr.SId { return &uv(e).varRef },
		schema.Code(sbmlerr.DistribUncertValueVarMustBeSBase)),
	schema.Attr("units", func(e schema.Element) *attr.SId { return &uv(e).units },
		schema.Code(sbmlerr.DistribUncertValueUnitsMustBeUnitSId)))

var uncertBoundTrait = schema.NewTrait("UncertBound",
	schema.Attr("inclusive", func(e schema.Element) *attr.Bool { return &e.(*UncertBound).inclusive },
		schema.Required(), schema.Code(sbmlerr.DistribUncertBoundInclusiveMustBeBoolean)))

var (
	uncertValueCodes = schema.Codes{
		AllowedAttributes:     sbmlerr.DistribUncertValueAllowedAttributes,
		AllowedCoreAttributes: sbmlerr.DistribUncertValueAllowedCoreAttributes,
		AllowedElements:       sbmlerr.DistribUncertValueAllowedElements,
	}
	uncertBoundCodes = schema.Codes{
		AllowedAttributes:     sbmlerr.DistribUncertBoundAllowedAttributes,
		AllowedCoreAttributes: sbmlerr.DistribUncertBoundAllowedCoreAttributes,
		AllowedElements:       sbmlerr.DistribUncertValueAllowedElements,
	}
)

func uncertValueClass(name string, typeCode int) *schema.Class {
	return schema.NewClass(PackageName, name, typeCode,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(), uncertValueTrait),
		schema.WithCodes(uncertValueCodes),
		schema.WithFactory(func(c *schema.Class, ns xmlutil.Namespaces) schema.Element { return newUncertValue(c, ns) }))
}

func uncertBoundClass(name string, typeCode int) *schema.Class {
	return schema.NewClass(PackageName, name, typeCode,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(), uncertValueTrait, uncertBoundTrait),
		schema.WithCodes(uncertBoundCodes),
		schema.WithFactory(func(c *schema.Class, ns xmlutil.Namespaces) schema.Element { return newUncertBound(c, ns) }))
}

var (
	numberOfTrialsClass       = uncertValueClass("numberOfTrials", TypeNumberOfTrials)
	probabilityOfSuccessClass = uncertValueClass("probabilityOfSuccess", TypeProbabilityOfSuccess)
	truncationLowerBoundClass = uncertBoundClass("truncationLowerBound", TypeTruncationLowerBound)
	truncationUpperBoundClass = uncertBoundClass("truncationUpperBound", TypeTruncationUpperBound)
)

func newUncertValue(c *schema.Class, ns xmlutil.Namespaces) *UncertValue {
	u := &UncertValue{class: c}
	u.Init(u, ns)
	return u
}

func newUncertBound(c *schema.Class, ns xmlutil.Namespaces) *UncertBound {
	b := &UncertBound{}
	b.class = c
	b.Init(b, ns)
	return b
}

// NewNumberOfTrials returns a new numberOfTrials element at ns.
func NewNumberOfTrials(ns xmlutil.Namespaces) *UncertValue {
	return newUncertValue(numberOfTrialsClass, ns)
}

// NewProbabilityOfSuccess returns a new probabilityOfSuccess element at ns.
func NewProbabilityOfSuccess(ns xmlutil.Namespaces) *UncertValue {
	return newUncertValue(probabilityOfSuccessClass, ns)
}

// NewTruncationLowerBound returns a new truncationLowerBound element at ns.
func NewTruncationLowerBound(ns xmlutil.Namespaces) *UncertBound {
	return newUncertBound(truncationLowerBoundClass, ns)
}

// NewTruncationUpperBound returns a new truncationUpperBound element at ns.
func NewTruncationUpperBound(ns xmlutil.Namespaces) *UncertBound {
	return newUncertBound(truncationUpperBoundClass, ns)
}

func (u *UncertValue) Class() *schema.Class { return u.class }
func (u *UncertValue) Clone() *UncertValue  { return schema.Clone(u).(*UncertValue) }
func (b *UncertBound) Clone() *UncertBound  { return schema.Clone(b).(*UncertBound) }

func (u *UncertValue) Value() float64     { return u.value.Get() }
func (u *UncertValue) IsSetValue() bool   { return u.value.IsSet() }
func (u *UncertValue) SetValue(v float64) { u.value.Set(v) }
func (u *UncertValue) UnsetValue() error  { u.value.Unset(); return nil }

// Var returns the id of the element holding the value.
func (u *UncertValue) Var() string            { return u.varRef.Get() }
func (u *UncertValue) IsSetVar() bool         { return u.varRef.IsSet() }
func (u *UncertValue) SetVar(id string) error { return u.varRef.Set(id) }
func (u *UncertValue) UnsetVar() error        { u.varRef.Unset(); return nil }

func (u *UncertValue) Units() string            { return u.units.Get() }
func (u *UncertValue) IsSetUnits() bool         { return u.units.IsSet() }
func (u *UncertValue) SetUnits(id string) error { return u.units.Set(id) }
func (u *UncertValue) UnsetUnits() error        { u.units.Unset(); return nil }

func (b *UncertBound) Inclusive() bool       { return b.inclusive.Get() }
func (b *UncertBound) IsSetInclusive() bool  { return b.inclusive.IsSet() }
func (b *UncertBound) SetInclusive(v bool)   { b.inclusive.Set(v) }
func (b *UncertBound) UnsetInclusive() error { b.inclusive.Unset(); return nil }
