package render

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbml"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Values of defaultValues attributes that are not set.
const (
	DefaultBackgroundColor = "#FFFFFFFF"
	DefaultFill            = "none"
	DefaultStroke          = "none"
	DefaultFontFamily      = "sans-serif"
)

// DefaultValues holds the values a render information object uses for
// attributes its styles leave unset.
type DefaultValues struct {
	sbml.Base
	backgroundColor         attr.String
	spreadMethod            attr.Enum[SpreadMethod]
	linearGradientX1        RelAbsVector
	linearGradientY1        RelAbsVector
	linearGradientX2        RelAbsVector
	linearGradientY2        RelAbsVector
	radialGradientCX        RelAbsVector
	radialGradientCY        RelAbsVector
	radialGradientR         RelAbsVector
	fill                    attr.String
	fillRule                attr.Enum[FillRule]
	defaultZ                RelAbsVector
	stroke                  attr.String
	strokeWidth             attr.Double
	fontFamily              attr.String
	fontSize                RelAbsVector
	fontWeight              attr.Enum[FontWeight]
	fontStyle               attr.Enum[FontStyle]
	textAnchor              attr.Enum[HTextAnchor]
	vtextAnchor             attr.Enum[VTextAnchor]
	startHead               attr.SId
	endHead                 attr.SId
	enableRotationalMapping attr.Bool
}

func dv(e schema.Element) *DefaultValues { return e.(*DefaultValues) }

func gradient(name string, get func(*DefaultValues) *RelAbsVector, def string) *schema.AttrBinding {
	return schema.Attr(name, func(e schema.Element) *RelAbsVector { return get(dv(e)) },
		schema.Default(attr.StringValue(def)), schema.Code(sbmlerr.RenderDefaultValuesAllowedAttributes))
}

var defaultValuesClass = schema.NewClass(PackageName, "defaultValues", TypeDefaultValues,
	schema.Traits(sbml.SBase, schema.NewTrait("DefaultValues",
		schema.Attr("backgroundColor", func(e schema.Element) *attr.String { return &dv(e).backgroundColor },
			schema.Default(attr.StringValue(DefaultBackgroundColor)),
			schema.Code(sbmlerr.RenderDefaultValuesBackgroundColorMustBeString)),
		schema.Attr("spreadMethod", func(e schema.Element) *attr.Enum[SpreadMethod] { return &dv(e).spreadMethod },
			schema.Default(attr.EnumValue(int(SpreadMethodPad), "pad")),
			schema.Code(sbmlerr.RenderDefaultValuesSpreadMethodMustBeEnum)),
		gradient("linearGradient_x1", func(d *DefaultValues) *RelAbsVector { return &d.linearGradientX1 }, "0%"),
		gradient("linearGradient_y1", func(d *DefaultValues) *RelAbsVector { return &d.linearGradientY1 }, "0%"),
		gradient("linearGradient_x2", func(d *DefaultValues) *RelAbsVector { return &d.linearGradientX2 }, "100%"),
		gradient("linearGradient_y2", func(d *DefaultValues) *RelAbsVector { return &d.linearGradientY2 }, "100%"),
		gradient("radialGradient_cx", func(d *DefaultValues) *RelAbsVector { return &d.radialGradientCX }, "50%"),
		gradient("radialGradient_cy", func(d *DefaultValues) *RelAbsVector { return &d.radialGradientCY }, "50%"),
		gradient("radialGradient_r", func(d *DefaultValues) *RelAbsVector { return &d.radialGradientR }, "50%"),
		schema.Attr("fill", func(e schema.Element) *attr.String { return &dv(e).fill },
			schema.Default(attr.StringValue(DefaultFill))),
		schema.Attr("fill-rule", func(e schema.Element) *attr.Enum[FillRule] { return &dv(e).fillRule },
			schema.Default(attr.EnumValue(int(FillRuleNonZero), "nonzero")),
			schema.Code(sbmlerr.RenderDefaultValuesFillRuleMustBeFillRuleEnum)),
		schema.Attr("default_z", func(e schema.Element) *RelAbsVector { return &dv(e).defaultZ },
			schema.Default(attr.StringValue("0"))),
		schema.Attr("stroke", func(e schema.Element) *attr.String { return &dv(e).stroke },
			schema.Default(attr.StringValue(DefaultStroke))),
		schema.Attr("stroke-width", func(e schema.Element) *attr.Double { return &dv(e).strokeWidth },
			schema.Default(attr.DoubleValue(0)),
			schema.Code(sbmlerr.RenderDefaultValuesStrokeWidthMustBeDouble)),
		schema.Attr("font-family", func(e schema.Element) *attr.String { return &dv(e).fontFamily },
			schema.Default(attr.StringValue(DefaultFontFamily))),
		schema.Attr("font-size", func(e schema.Element) *RelAbsVector { return &dv(e).fontSize },
			schema.Default(attr.StringValue("0")),
			schema.Code(sbmlerr.RenderDefaultValuesFontSizeMustBeRelAbsVector)),
		schema.Attr("font-weight", func(e schema.Element) *attr.Enum[FontWeight] { return &dv(e).fontWeight },
			schema.Default(attr.EnumValue(int(FontWeightNormal), "normal")),
			schema.Code(sbmlerr.RenderDefaultValuesFontWeightMustBeFontWeightEnum)),
		schema.Attr("font-style", func(e schema.Element) *attr.Enum[FontStyle] { return &dv(e).fontStyle },
			schema.Default(attr.EnumValue(int(FontStyleNormal), "normal")),
			schema.Code(sbmlerr.RenderDefaultValuesFontStyleMustBeFontStyleEnum)),
		schema.Attr("text-anchor", func(e schema.Element) *attr.Enum[HTextAnchor] { return &dv(e).textAnchor },
			schema.Default(attr.EnumValue(int(HTextAnchorStart), "start")),
			schema.Code(sbmlerr.RenderDefaultValuesTextAnchorMustBeHTextAnchorEnum)),
		schema.Attr("vtext-anchor", func(e schema.Element) *attr.Enum[VTextAnchor] { return &dv(e).vtextAnchor },
			schema.Default(attr.EnumValue(int(VTextAnchorTop), "top")),
			schema.Code(sbmlerr.RenderDefaultValuesVTextAnchorMustBeVTextAnchorEnum)),
		schema.Attr("startHead", func(e schema.Element) *attr.SId { return &dv(e).startHead }),
		schema.Attr("endHead", func(e schema.Element) *attr.SId { return &dv(e).endHead }),
		schema.Attr("enableRotationalMapping", func(e schema.Element) *attr.Bool { return &dv(e).enableRotationalMapping },
			schema.Default(attr.BoolValue(true))))),
	schema.WithCodes(schema.Codes{
		AllowedAttributes:     sbmlerr.RenderDefaultValuesAllowedAttributes,
		AllowedCoreAttributes: sbmlerr.RenderDefaultValuesAllowedCoreAttributes,
		AllowedElements:       sbmlerr.RenderDefaultValuesAllowedElements,
	}),
	schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewDefaultValues(ns) }))

// NewDefaultValues returns a new defaultValues element at ns.
func NewDefaultValues(ns xmlutil.Namespaces) *DefaultValues {
	d := &DefaultValues{}
	d.Init(d, ns)
	return d
}

func (d *DefaultValues) Class() *schema.Class  { return defaultValuesClass }
func (d *DefaultValues) Clone() *DefaultValues { return schema.Clone(d).(*DefaultValues) }

func stringOr(f *attr.String, def string) string {
	if !f.IsSet() {
		return def
	}
	return f.Get()
}

func enumOr[E attr.EnumType](f *attr.Enum[E], def E) E {
	if !f.IsSet() {
		return def
	}
	return f.Get()
}

// BackgroundColor returns the background color, or
// DefaultBackgroundColor.
func (d *DefaultValues) BackgroundColor() string { return stringOr(&d.backgroundColor, DefaultBackgroundColor) }

func (d *DefaultValues) IsSetBackgroundColor() bool  { return d.backgroundColor.IsSet() }
func (d *DefaultValues) SetBackgroundColor(c string) { d.backgroundColor.Set(c) }
func (d *DefaultValues) UnsetBackgroundColor() error { d.backgroundColor.Unset(); return nil }

func (d *DefaultValues) SpreadMethod() SpreadMethod           { return enumOr(&d.spreadMethod, SpreadMethodPad) }
func (d *DefaultValues) IsSetSpreadMethod() bool              { return d.spreadMethod.IsSet() }
func (d *DefaultValues) SetSpreadMethod(m SpreadMethod) error { return d.spreadMethod.Set(m) }
func (d *DefaultValues) UnsetSpreadMethod() error             { d.spreadMethod.Unset(); return nil }

func (d *DefaultValues) Fill() string     { return stringOr(&d.fill, DefaultFill) }
func (d *DefaultValues) IsSetFill() bool  { return d.fill.IsSet() }
func (d *DefaultValues) SetFill(s string) { d.fill.Set(s) }
func (d *DefaultValues) UnsetFill() error { d.fill.Unset(); return nil }

func (d *DefaultValues) FillRule() FillRule           { return enumOr(&d.fillRule, FillRuleNonZero) }
func (d *DefaultValues) IsSetFillRule() bool          { return d.fillRule.IsSet() }
func (d *DefaultValues) SetFillRule(r FillRule) error { return d.fillRule.Set(r) }
func (d *DefaultValues) UnsetFillRule() error         { d.fillRule.Unset(); return nil }

func (d *DefaultValues) Stroke() string     { return stringOr(&d.stroke, DefaultStroke) }
func (d *DefaultValues) IsSetStroke() bool  { return d.stroke.IsSet() }
func (d *DefaultValues) SetStroke(s string) { d.stroke.Set(s) }
func (d *DefaultValues) UnsetStroke() error { d.stroke.Unset(); return nil }

func (d *DefaultValues) StrokeWidth() float64     { return d.strokeWidth.Get() }
func (d *DefaultValues) IsSetStrokeWidth() bool   { return d.strokeWidth.IsSet() }
func (d *DefaultValues) SetStrokeWidth(w float64) { d.strokeWidth.Set(w) }
func (d *DefaultValues) UnsetStrokeWidth() error  { d.strokeWidth.Unset(); return nil }

func (d *DefaultValues) FontFamily() string     { return stringOr(&d.fontFamily, DefaultFontFamily) }
func (d *DefaultValues) IsSetFontFamily() bool  { return d.fontFamily.IsSet() }
func (d *DefaultValues) SetFontFamily(s string) { d.fontFamily.Set(s) }
func (d *DefaultValues) UnsetFontFamily() error { d.fontFamily.Unset(); return nil }

func (d *DefaultValues) FontSize() *RelAbsVector { return &d.fontSize }
func (d *DefaultValues) DefaultZ() *RelAbsVector { return &d.defaultZ }

func (d *DefaultValues) FontWeight() FontWeight             { return enumOr(&d.fontWeight, FontWeightNormal) }
func (d *DefaultValues) IsSetFontWeight() bool              { return d.fontWeight.IsSet() }
func (d *DefaultValues) SetFontWeight(w FontWeight) error   { return d.fontWeight.Set(w) }
func (d *DefaultValues) UnsetFontWeight() error             { d.fontWeight.Unset(); return nil }
func (d *DefaultValues) FontStyle() FontStyle               { return enumOr(&d.fontStyle, FontStyleNormal) }
func (d *DefaultValues) IsSetFontStyle() bool               { return d.fontStyle.IsSet() }
func (d *DefaultValues) SetFontStyle(s FontStyle) error     { return d.fontStyle.Set(s) }
func (d *DefaultValues) UnsetFontStyle() error              { d.fontStyle.Unset(); return nil }
func (d *DefaultValues) TextAnchor() HTextAnchor            { return enumOr(&d.textAnchor, HTextAnchorStart) }
func (d *DefaultValues) IsSetTextAnchor() bool              { return d.textAnchor.IsSet() }
func (d *DefaultValues) SetTextAnchor(a HTextAnchor) error  { return d.textAnchor.Set(a) }
func (d *DefaultValues) UnsetTextAnchor() error             { d.textAnchor.Unset(); return nil }
func (d *DefaultValues) VTextAnchor() VTextAnchor           { return enumOr(&d.vtextAnchor, VTextAnchorTop) }
func (d *DefaultValues) IsSetVTextAnchor() bool             { return d.vtextAnchor.IsSet() }
func (d *DefaultValues) SetVTextAnchor(a VTextAnchor) error { return d.vtextAnchor.Set(a) }
func (d *DefaultValues) UnsetVTextAnchor() error            { d.vtextAnchor.Unset(); return nil }

func (d *DefaultValues) StartHead() string            { return d.startHead.Get() }
func (d *DefaultValues) SetStartHead(id string) error { return d.startHead.Set(id) }
func (d *DefaultValues) EndHead() string              { return d.endHead.Get() }
func (d *DefaultValues) SetEndHead(id string) error   { return d.endHead.Set(id) }

// EnableRotationalMapping returns true unless rotational mapping was
// disabled.
func (d *DefaultValues) EnableRotationalMapping() bool {
	return !d.enableRotationalMapping.IsSet() || d.enableRotationalMapping.Get()
}

func (d *DefaultValues) SetEnableRotationalMapping(b bool) { d.enableRotationalMapping.Set(b) }
