package sbgn

import (
	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/andaru/sbmlbind/xmlutil"
)

// Namespaces is SBGN-ML 0.3.
var Namespaces = xmlutil.SBGN(3)

// Type codes of the SBGN-ML elements.
const (
	TypeGlyph = 4001 + iota
	TypeLabel
	TypeBbox
)

// Base is the state every SBGN-ML element has.
type Base struct {
	schema.Node
}

// SbgnBase is the trait of every SBGN-ML element. It declares no
// attributes of its own.
var SbgnBase = schema.NewCoreTrait("SbgnBase")

func bboxAttr(name string, get func(*Bbox) *attr.Double) *schema.AttrBinding {
	return schema.Attr(name, func(e schema.Element) *attr.Double { return get(e.(*Bbox)) },
		schema.Required(), schema.Code(sbmlerr.SbgnBboxAttributeMustBeDouble))
}

var (
	bboxClass = schema.NewClass(xmlutil.PackageSBGN, "bbox", TypeBbox,
		schema.Traits(SbgnBase, schema.NewTrait("Bbox",
			bboxAttr("x", func(b *Bbox) *attr.Double { return &b.x }),
			bboxAttr("y", func(b *Bbox) *attr.Double { return &b.y }),
			bboxAttr("w", func(b *Bbox) *attr.Double { return &b.w }),
			bboxAttr("h", func(b *Bbox) *attr.Double { return &b.h }))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.SbgnBboxAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.SbgnBboxAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SbgnBboxAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewBbox(ns) }))

	labelClass = schema.NewClass(xmlutil.PackageSBGN, "label", TypeLabel,
		schema.Traits(SbgnBase, schema.NewTrait("Label",
			schema.Attr("text", func(e schema.Element) *attr.String { return &e.(*Label).text },
				schema.Required(), schema.Code(sbmlerr.SbgnLabelTextMustBeString)),
			schema.Child("bbox", func(e schema.Element) **Bbox { return &e.(*Label).bbox }, NewBbox))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.SbgnLabelAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.SbgnLabelAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SbgnLabelAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewLabel(ns) }))

	glyphClass = schema.NewClass(xmlutil.PackageSBGN, "glyph", TypeGlyph,
		schema.Traits(SbgnBase, schema.NewTrait("Glyph",
			schema.Attr("id", func(e schema.Element) *attr.ID { return &e.(*Glyph).id },
				schema.Required(), schema.Code(sbmlerr.SbgnIdSyntaxRule)),
			schema.Attr("class", func(e schema.Element) *attr.Enum[GlyphClass] { return &e.(*Glyph).class },
				schema.Required(), schema.Code(sbmlerr.SbgnGlyphClassMustBeGlyphClassEnum)),
			schema.Attr("orientation", func(e schema.Element) *attr.Enum[Orientation] { return &e.(*Glyph).orientation },
				schema.Default(attr.EnumValue(int(OrientationHorizontal), "horizontal")),
				schema.Code(sbmlerr.SbgnGlyphOrientationMustBeOrientationEnum)),
			schema.Child("label", func(e schema.Element) **Label { return &e.(*Glyph).label }, NewLabel),
			schema.Child("bbox", func(e schema.Element) **Bbox { return &e.(*Glyph).bbox }, NewBbox,
				schema.Required(), schema.Code(sbmlerr.SbgnGlyphOneBbox)),
			schema.Many("glyph", func(e schema.Element) *[]*Glyph { return &e.(*Glyph).glyphs }, NewGlyph))),
		schema.WithCodes(schema.Codes{
			AllowedAttributes:     sbmlerr.SbgnGlyphAllowedAttributes,
			AllowedCoreAttributes: sbmlerr.SbgnGlyphAllowedCoreAttributes,
			AllowedElements:       sbmlerr.SbgnGlyphAllowedElements,
		}),
		schema.WithFactory(func(_ *schema.Class, ns xmlutil.Namespaces) schema.Element { return NewGlyph(ns) }))
)

func init() { schema.Register(glyphClass, labelClass, bboxClass) }

// Glyph is a node of an SBGN map. Glyphs nest: a complex holds its
// components, a macromolecule its state variables.
type Glyph struct {
	Base
	id          attr.ID
	class       attr.Enum[GlyphClass]
	orientation attr.Enum[Orientation]
	label       *Label
	bbox        *Bbox
	glyphs      []*Glyph
}

// NewGlyph returns a new glyph at ns.
func NewGlyph(ns xmlutil.Namespaces) *Glyph {
	g := &Glyph{}
	g.Init(g, ns)
	return g
}

func (g *Glyph) Class() *schema.Class { return glyphClass }
func (g *Glyph) Clone() *Glyph        { return schema.Clone(g).(*Glyph) }

func (g *Glyph) Id() string            { return g.id.Get() }
func (g *Glyph) IsSetId() bool         { return g.id.IsSet() }
func (g *Glyph) SetId(id string) error { return g.id.Set(id) }
func (g *Glyph) UnsetId() error        { g.id.Unset(); return nil }

// GlyphClass returns the glyph's class, GlyphClassInvalid when unset.
func (g *Glyph) GlyphClass() GlyphClass           { return g.class.Get() }
func (g *Glyph) IsSetGlyphClass() bool            { return g.class.IsSet() }
func (g *Glyph) SetGlyphClass(c GlyphClass) error { return g.class.Set(c) }
func (g *Glyph) UnsetGlyphClass() error           { g.class.Unset(); return nil }

// Orientation returns the glyph's orientation, horizontal when unset.
func (g *Glyph) Orientation() Orientation {
	if !g.orientation.IsSet() {
		return OrientationHorizontal
	}
	return g.orientation.Get()
}

func (g *Glyph) IsSetOrientation() bool             { return g.orientation.IsSet() }
func (g *Glyph) SetOrientation(o Orientation) error { return g.orientation.Set(o) }
func (g *Glyph) UnsetOrientation() error            { g.orientation.Unset(); return nil }

func (g *Glyph) Label() *Label { return g.label }
func (g *Glyph) Bbox() *Bbox   { return g.bbox }

// SetLabel sets the glyph's label. A nil label removes it.
func (g *Glyph) SetLabel(l *Label) error { return schema.SetChild(g, "label", l) }

// SetBbox sets the glyph's bounding box. A nil box removes it.
func (g *Glyph) SetBbox(b *Bbox) error { return schema.SetChild(g, "bbox", b) }

// Glyphs returns the nested glyphs, borrowed.
func (g *Glyph) Glyphs() []*Glyph { return append([]*Glyph(nil), g.glyphs...) }

// AddGlyph nests child in g, taking ownership of it.
func (g *Glyph) AddGlyph(child *Glyph) error { return schema.AddChild(g, "glyph", child) }

// CreateGlyph nests a new glyph in g and returns it.
func (g *Glyph) CreateGlyph() *Glyph {
	child := NewGlyph(g.Namespaces())
	_ = g.AddGlyph(child)
	return child
}

// Label is the text of a glyph.
type Label struct {
	Base
	text attr.String
	bbox *Bbox
}

// NewLabel returns a new label at ns.
func NewLabel(ns xmlutil.Namespaces) *Label {
	l := &Label{}
	l.Init(l, ns)
	return l
}

func (l *Label) Class() *schema.Class { return labelClass }

func (l *Label) Text() string     { return l.text.Get() }
func (l *Label) IsSetText() bool  { return l.text.IsSet() }
func (l *Label) SetText(s string) { l.text.Set(s) }
func (l *Label) UnsetText() error { l.text.Unset(); return nil }

// Bbox returns the box the label is drawn in, or nil.
func (l *Label) Bbox() *Bbox           { return l.bbox }
func (l *Label) SetBbox(b *Bbox) error { return schema.SetChild(l, "bbox", b) }

// Bbox is a bounding box.
type Bbox struct {
	Base
	x, y, w, h attr.Double
}

// NewBbox returns a new bbox at ns.
func NewBbox(ns xmlutil.Namespaces) *Bbox {
	b := &Bbox{}
	b.Init(b, ns)
	return b
}

// NewBboxAt returns a new bbox at ns with its origin at (x, y) and size
// w by h.
func NewBboxAt(ns xmlutil.Namespaces, x, y, w, h float64) *Bbox {
	b := NewBbox(ns)
	b.x.Set(x)
	b.y.Set(y)
	b.w.Set(w)
	b.h.Set(h)
	return b
}

func (b *Bbox) Class() *schema.Class { return bboxClass }

func (b *Bbox) X() float64 { return b.x.Get() }
func (b *Bbox) Y() float64 { return b.y.Get() }
func (b *Bbox) W() float64 { return b.w.Get() }
func (b *Bbox) H() float64 { return b.h.Get() }
