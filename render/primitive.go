package render

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// PackageName is the name of the render package.
const PackageName = "render"

// Type codes of the render package's elements.
const (
	TypeRectangle = 1301 + iota
	TypeEllipse
	TypePoint
	TypeDefaultValues
)

// NewNamespaces returns the render package namespaces.
func NewNamespaces(level, version, pkgVersion uint) xmlutil.Namespaces {
	return xmlutil.SBMLPackage(PackageName, level, version, pkgVersion)
}

// Namespaces is the render package version 1 on SBML L3V1.
var Namespaces = NewNamespaces(3, 1, 1)

// GraphicalPrimitive1D is the state of elements drawn with a stroke.
type GraphicalPrimitive1D struct {
	sbml.Base
	stroke      attr.String
	strokeWidth attr.Double
	dashArray   DashArray
}

// GraphicalPrimitive2D is the state of elements drawn with a stroke and
// a fill.
type GraphicalPrimitive2D struct {
	GraphicalPrimitive1D
	fill     attr.String
	fillRule attr.Enum[FillRule]
}

type primitive1D interface{ primitive1D() *GraphicalPrimitive1D }
type primitive2D interface{ primitive2D() *GraphicalPrimitive2D }

func (g *GraphicalPrimitive1D) primitive1D() *GraphicalPrimitive1D { return g }
func (g *GraphicalPrimitive2D) primitive2D() *GraphicalPrimitive2D { return g }

func gp1(e schema.Element) *GraphicalPrimitive1D { return e.(primitive1D).primitive1D() }
func gp2(e schema.Element) *GraphicalPrimitive2D { return e.(primitive2D).primitive2D() }

var (
	graphicalPrimitive1D = schema.NewTrait("GraphicalPrimitive1D",
		schema.Attr("stroke", func(e schema.Element) *attr.String { return &gp1(e).stroke },
			schema.Code(sbmlerr.RenderGraphicalPrimitive1DStrokeMustBeString)),
		schema.Attr("stroke-width", func(e schema.Element) *attr.Double { return &gp1(e).strokeWidth },
			schema.Code(sbmlerr.RenderGraphicalPrimitive1DStrokeWidthMustBeDouble)),
		schema.Attr("stroke-dasharray", func(e schema.Element) *DashArray { return &gp1(e).dashArray },
			schema.Code(sbmlerr.RenderGraphicalPrimitive1DStrokeDashArrayMustBeString)))

	graphicalPrimitive2D = schema.NewTrait("GraphicalPrimitive2D",
		schema.Attr("fill", func(e schema.Element) *attr.String { return &gp2(e).fill },
			schema.Code(sbmlerr.RenderGraphicalPrimitive2DFillMustBeString)),
		schema.Attr("fill-rule", func(e schema.Element) *attr.Enum[FillRule] { return &gp2(e).fillRule },
			schema.Code(sbmlerr.RenderGraphicalPrimitive2DFillRuleMustBeFillRuleEnum)))
)

// primitive2DTraits is the composition of GraphicalPrimitive2D: SBase,
// the L3V1 id and name, then the stroke and fill attributes.
func primitive2DTraits() schema.ClassOption {
	return schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(), graphicalPrimitive1D, graphicalPrimitive2D)
}

func (g *GraphicalPrimitive1D) Stroke() string           { return g.stroke.Get() }
func (g *GraphicalPrimitive1D) IsSetStroke() bool        { return g.stroke.IsSet() }
func (g *GraphicalPrimitive1D) SetStroke(s string)       { g.stroke.Set(s) }
func (g *GraphicalPrimitive1D) UnsetStroke() error       { g.stroke.Unset(); return nil }
func (g *GraphicalPrimitive1D) StrokeWidth() float64     { return g.strokeWidth.Get() }
func (g *GraphicalPrimitive1D) IsSetStrokeWidth() bool   { return g.strokeWidth.IsSet() }
func (g *GraphicalPrimitive1D) SetStrokeWidth(w float64) { g.strokeWidth.Set(w) }
func (g *GraphicalPrimitive1D) UnsetStrokeWidth() error  { g.strokeWidth.Unset(); return nil }

// StrokeDashArray returns the dash and gap lengths of the stroke.
func (g *GraphicalPrimitive1D) StrokeDashArray() []uint     { return g.dashArray.Get() }
func (g *GraphicalPrimitive1D) IsSetStrokeDashArray() bool  { return g.dashArray.IsSet() }
func (g *GraphicalPrimitive1D) SetStrokeDashArray(d []uint) { g.dashArray.Set(d) }
func (g *GraphicalPrimitive1D) UnsetStrokeDashArray() error { g.dashArray.Unset(); return nil }

func (g *GraphicalPrimitive2D) Fill() string                 { return g.fill.Get() }
func (g *GraphicalPrimitive2D) IsSetFill() bool              { return g.fill.IsSet() }
func (g *GraphicalPrimitive2D) SetFill(s string)             { g.fill.Set(s) }
func (g *GraphicalPrimitive2D) UnsetFill() error             { g.fill.Unset(); return nil }
func (g *GraphicalPrimitive2D) FillRule() FillRule           { return g.fillRule.Get() }
func (g *GraphicalPrimitive2D) IsSetFillRule() bool          { return g.fillRule.IsSet() }
func (g *GraphicalPrimitive2D) SetFillRule(r FillRule) error { return g.fillRule.Set(r) }
func (g *GraphicalPrimitive2D) UnsetFillRule() error         { g.fillRule.Unset(); return nil }
