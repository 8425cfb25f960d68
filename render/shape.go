package render

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

func vector(name string, get func(schema.Element) *RelAbsVector, code sbmlerr.Code, opts ...schema.Option) *schema.AttrBinding {
	return schema.Attr(name, get, append([]schema.Option{schema.Code(code)}, opts...)...)
}

var (
	rectangleClass = schema.NewClass(PackageName, "rectangle", TypeRectangle,
		primitive2DTraits(),
		schema.Traits(schema.NewTrait("Rectangle",
			vector("x", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).x },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Required()),
			vector("y", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).y },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Required()),
			vector("z", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).z },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Default(attr.StringValue("0"))),
			vector("width", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).width },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Required()),
			vector("height", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).height },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Required()),
			vector("rx", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).rx },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Default(attr.StringValue("0"))),
			vector("ry", func(e schema.Element) *RelAbsVector { return &e.(*Rectangle).ry },
				sbmlerr.RenderRectangleShapeMustBeRelAbsVector, schema.Default(attr.StringValue("0"))),
			schema.Attr("ratio", func(e schema.Element) *attr.Double { return &e.(*Rectangle).ratio },
				schema.Code(sbmlerr.RenderRectangleRatioMustBeDouble)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.RenderRectangleAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.RenderRectangleAllowedCoreAttributes,
			AllowedElements:       sbmlerr.RenderRectangleAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewRectangle(ns) }))

	ellipseClass = schema.NewClass(PackageName, "ellipse", TypeEllipse,
		primitive2DTraits(),
		schema.Traits(schema.NewTrait("Ellipse",
			vector("cx", func(e schema.Element) *RelAbsVector { return &e.(*Ellipse).cx },
				sbmlerr.RenderEllipseShapeMustBeRelAbsVector, schema.Required()),
			vector("cy", func(e schema.Element) *RelAbsVector { return &e.(*Ellipse).cy },
				sbmlerr.RenderEllipseShapeMustBeRelAbsVector, schema.Required()),
			vector("cz", func(e schema.Element) *RelAbsVector { return &e.(*Ellipse).cz },
				sbmlerr.RenderEllipseShapeMustBeRelAbsVector, schema.Default(attr.StringValue("0"))),
			vector("rx", func(e schema.Element) *RelAbsVector { return &e.(*Ellipse).rx },
				sbmlerr.RenderEllipseShapeMustBeRelAbsVector, schema.Required()),
			vector("ry", func(e schema.Element) *RelAbsVector { return &e.(*Ellipse).ry },
				sbmlerr.RenderEllipseShapeMustBeRelAbsVector),
			schema.Attr("ratio", func(e schema.Element) *attr.Double { return &e.(*Ellipse).ratio },
				schema.Code(sbmlerr.RenderEllipseRatioMustBeDouble)))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.RenderEllipseAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.RenderEllipseAllowedCoreAttributes,
			AllowedElements:       sbmlerr.RenderEllipseAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewEllipse(ns) }))

	pointClass = schema.NewClass(PackageName, "point", TypePoint,
		schema.Traits(sbml.SBase, sbml.IDL3V1(), sbml.NameL3V1(),
			schema.NewTrait("RenderPoint",
				vector("x", func(e schema.Element) *RelAbsVector { return &e.(*Point).x },
					sbmlerr.RenderPointCoordinateMustBeDouble, schema.Required()),
				vector("y", func(e schema.Element) *RelAbsVector { return &e.(*Point).y },
					sbmlerr.RenderPointCoordinateMustBeDouble, schema.Required()),
				vector("z", func(e schema.Element) *RelAbsVector { return &e.(*Point).z },
					sbmlerr.RenderPointCoordinateMustBeDouble, schema.Default(attr.StringValue("0"))))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.RenderPointAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.RenderPointAllowedCoreAttributes,
			AllowedElements:       sbmlerr.RenderPointAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewPoint(ns) }))
)

func init() { schema.Register(rectangleClass, ellipseClass, pointClass, defaultValuesClass) }

// Rectangle is a rectangle, optionally with rounded corners.
type Rectangle struct {
	GraphicalPrimitive2D
	x, y, z, width, height, rx, ry RelAbsVector
	ratio                          attr.Double
}

// NewRectangle returns a new rectangle at ns.
func NewRectangle(ns xmlutil.Namespaces) *Rectangle {
	r := &Rectangle{}
	r.Init(r, ns)
	return r
}

func (r *Rectangle) Class() *schema.Class { return rectangleClass }
func (r *Rectangle) Clone() *Rectangle    { return schema.Clone(r).(*Rectangle) }

func (r *Rectangle) X() *RelAbsVector      { return &r.x }
func (r *Rectangle) Y() *RelAbsVector      { return &r.y }
func (r *Rectangle) Z() *RelAbsVector      { return &r.z }
func (r *Rectangle) Width() *RelAbsVector  { return &r.width }
func (r *Rectangle) Height() *RelAbsVector { return &r.height }
func (r *Rectangle) RX() *RelAbsVector     { return &r.rx }
func (r *Rectangle) RY() *RelAbsVector     { return &r.ry }

// SetCoordinates sets the absolute x, y and z of the rectangle.
func (r *Rectangle) SetCoordinates(x, y, z float64) {
	r.x.Set(x, 0)
	r.y.Set(y, 0)
	r.z.Set(z, 0)
}

// SetSize sets the absolute width and height of the rectangle.
func (r *Rectangle) SetSize(width, height float64) {
	r.width.Set(width, 0)
	r.height.Set(height, 0)
}

func (r *Rectangle) Ratio() float64     { return r.ratio.Get() }
func (r *Rectangle) IsSetRatio() bool   { return r.ratio.IsSet() }
func (r *Rectangle) SetRatio(v float64) { r.ratio.Set(v) }
func (r *Rectangle) UnsetRatio() error  { r.ratio.Unset(); return nil }

// Ellipse is an ellipse centred on (cx, cy, cz).
type Ellipse struct {
	GraphicalPrimitive2D
	cx, cy, cz, rx, ry RelAbsVector
	ratio              attr.Double
}

// NewEllipse returns a new ellipse at ns.
func NewEllipse(ns xmlutil.Namespaces) *Ellipse {
	e := &Ellipse{}
	e.Init(e, ns)
	return e
}

func (e *Ellipse) Class() *schema.Class { return ellipseClass }
func (e *Ellipse) Clone() *Ellipse      { return schema.Clone(e).(*Ellipse) }

func (e *Ellipse) CX() *RelAbsVector { return &e.cx }
func (e *Ellipse) CY() *RelAbsVector { return &e.cy }
func (e *Ellipse) CZ() *RelAbsVector { return &e.cz }
func (e *Ellipse) RX() *RelAbsVector { return &e.rx }

// RY returns the y radius. An ellipse without one is a circle of radius
// RX.
func (e *Ellipse) RY() *RelAbsVector {
	if !e.ry.IsSet() {
		return &e.rx
	}
	return &e.ry
}

func (e *Ellipse) IsSetRY() bool      { return e.ry.IsSet() }
func (e *Ellipse) Ratio() float64     { return e.ratio.Get() }
func (e *Ellipse) IsSetRatio() bool   { return e.ratio.IsSet() }
func (e *Ellipse) SetRatio(v float64) { e.ratio.Set(v) }
func (e *Ellipse) UnsetRatio() error  { e.ratio.Unset(); return nil }

// Point is a point of a render curve or polygon.
type Point struct {
	sbml.Base
	x, y, z RelAbsVector
}

// NewPoint returns a new point at ns.
func NewPoint(ns xmlutil.Namespaces) *Point {
	p := &Point{}
	p.Init(p, ns)
	return p
}

func (p *Point) Class() *schema.Class { return pointClass }
func (p *Point) Clone() *Point        { return schema.Clone(p).(*Point) }

func (p *Point) X() *RelAbsVector { return &p.x }
func (p *Point) Y() *RelAbsVector { return &p.y }
func (p *Point) Z() *RelAbsVector { return &p.z }
