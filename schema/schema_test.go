package schema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const coreURI = "http://www.sbml.org/sbml/level3/version1/core"

type gizmo struct {
	Node
	metaid attr.ID
	id     attr.SId
	size   attr.UInt
	ratio  attr.Double
	label  *label
	gizmos []*gizmo
}

func newGizmo(ns xmlutil.Namespaces) *gizmo {
	g := &gizmo{}
	g.Init(g, ns)
	return g
}

func (g *gizmo) Class() *Class { return gizmoClass }

type label struct {
	Node
	text attr.String
}

func newLabel(ns xmlutil.Namespaces) *label {
	l := &label{}
	l.Init(l, ns)
	return l
}

func (l *label) Class() *Class { return labelClass }

var (
	gizmoBase = NewCoreTrait("GizmoBase",
		Attr("metaid", func(e Element) *attr.ID { return &e.(*gizmo).metaid }))

	gizmoClass = NewClass(xmlutil.PackageCore, "gizmo", 990201,
		Traits(gizmoBase, NewTrait("Gizmo",
			Attr("id", func(e Element) *attr.SId { return &e.(*gizmo).id }, Required()),
			Attr("size", func(e Element) *attr.UInt { return &e.(*gizmo).size }, Default(attr.UIntValue(1))),
			Attr("ratio", func(e Element) *attr.Double { return &e.(*gizmo).ratio }, Since(3, 2)),
			Child("label", func(e Element) **label { return &e.(*gizmo).label }, newLabel, Required()),
			Many("gizmo", func(e Element) *[]*gizmo { return &e.(*gizmo).gizmos }, newGizmo))),
		WithFactory(func(_ *Class, ns xmlutil.Namespaces) Element { return newGizmo(ns) }))

	labelClass = NewClass(xmlutil.PackageCore, "label", 990202,
		WithText(func(e Element) *attr.String { return &e.(*label).text }),
		WithFactory(func(_ *Class, ns xmlutil.Namespaces) Element { return newLabel(ns) }))
)

func init() {
	Register(gizmoClass, labelClass)
}

func readGizmo(t *testing.T, doc string) (*gizmo, *sbmlerr.Log) {
	t.Helper()
	r := NewReader(strings.NewReader(doc))
	e, err := r.ReadRoot(xmlutil.SBML(3, 1))
	if err != nil {
		t.Fatalf("read %q: %v", doc, err)
	}
	g, ok := e.(*gizmo)
	if !ok {
		t.Fatalf("read %q: got %T", doc, e)
	}
	return g, r.Log()
}

func TestExpectedAttributes(t *testing.T) {
	for _, tc := range []struct {
		ns   xmlutil.Namespaces
		want []string
	}{
		{xmlutil.SBML(3, 1), []string{"metaid", "id", "size"}},
		{xmlutil.SBML(3, 2), []string{"metaid", "id", "size", "ratio"}},
		{xmlutil.SBML(2, 4), []string{"metaid", "id", "size"}},
	} {
		t.Run(tc.ns.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, gizmoClass.ExpectedAttributes(tc.ns))
		})
	}
}

func TestReadGizmo(t *testing.T) {
	check := assert.New(t)
	g, log := readGizmo(t, `<gizmo xmlns="`+coreURI+`" metaid="_m1" id="g1" size="3" ratio="0.5" bogus="x">`+
		`<label>hi</label><gizmo id="g2"><label>two</label></gizmo><junk><deep/></junk></gizmo>`)

	check.Equal(2, log.Count(sbmlerr.UnknownPackageAttribute))
	check.Equal(1, log.Count(sbmlerr.UnrecognizedElement))
	check.Equal(3, log.Len())
	for _, d := range log.Errors() {
		check.Equal(1, d.Line)
	}

	check.Equal("g1", g.id.Get())
	check.Equal(uint(3), g.size.Get())
	check.False(g.ratio.IsSet())
	if check.NotNil(g.label) {
		check.Equal("hi", g.label.text.Get())
		check.Equal(Element(g), g.label.Parent())
	}
	if check.Len(g.gizmos, 1) {
		check.Equal("two", g.gizmos[0].label.text.Get())
	}
	check.True(g.HasRequiredAttributes())
	check.True(g.HasRequiredElements())
	check.Len(g.AllElements(), 3)
	check.Equal(Element(g.gizmos[0]), g.ElementBySId("g2"))
	check.Equal(Element(g), g.ElementByMetaId("_m1"))
	check.Nil(g.ElementBySId("g3"))
}

func TestReadDiagnostics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		doc   string
		codes []sbmlerr.Code
	}{
		{"valid", `<gizmo id="a"><label/></gizmo>`, nil},
		{"missing id", `<gizmo><label/></gizmo>`, []sbmlerr.Code{sbmlerr.NotSchemaConformant}},
		{"missing label", `<gizmo id="a"/>`, []sbmlerr.Code{sbmlerr.UnrecognizedElement}},
		{"duplicate label", `<gizmo id="a"><label/><label/></gizmo>`, []sbmlerr.Code{sbmlerr.UnrecognizedElement}},
		{"bad size", `<gizmo id="a" size="-1"><label/></gizmo>`, []sbmlerr.Code{sbmlerr.NotSchemaConformant}},
		{"empty id", `<gizmo id=""><label/></gizmo>`, []sbmlerr.Code{sbmlerr.NotSchemaConformant}},
		{"stray text", `<gizmo id="a">text<label/></gizmo>`, []sbmlerr.Code{sbmlerr.NotSchemaConformant}},
		{"core attribute", `<gizmo xmlns:c="` + coreURI + `" id="a" c:metaid="_x" c:size="2"><label/></gizmo>`,
			[]sbmlerr.Code{sbmlerr.UnknownCoreAttribute}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, log := readGizmo(t, tc.doc)
			var got []sbmlerr.Code
			for _, d := range log.Errors() {
				got = append(got, d.Code)
			}
			assert.Equal(t, tc.codes, got)
		})
	}
}

func TestReadLastChildWins(t *testing.T) {
	check := assert.New(t)
	g, _ := readGizmo(t, `<gizmo id="a"><label>first</label><label>second</label></gizmo>`)
	if check.NotNil(g.label) {
		check.Equal("second", g.label.text.Get())
	}
}

func TestReadBadlyFormed(t *testing.T) {
	check := assert.New(t)
	r := NewReader(strings.NewReader(`<gizmo id="a"><label>`))
	e, err := r.ReadRoot(xmlutil.SBML(3, 1))
	check.Error(err)
	check.NotNil(e)
	check.True(r.Log().Contains(sbmlerr.BadlyFormedXML))

	r = NewReader(strings.NewReader(`<widget/>`))
	e, err = r.ReadRoot(xmlutil.SBML(3, 1))
	check.Nil(e)
	check.True(errors.Is(err, sbmlerr.ErrOperationFailed))
	check.True(r.Log().Contains(sbmlerr.UnrecognizedElement))
}

func TestWrite(t *testing.T) {
	check := assert.New(t)
	doc := `<gizmo xmlns="` + coreURI + `" metaid="_m1" id="g1" size="3">` +
		`<label>hi</label><gizmo id="g2"><label></label></gizmo></gizmo>`
	g, log := readGizmo(t, doc)
	check.Equal(0, log.Len())

	var buf bytes.Buffer
	check.NoError(NewWriter(&buf).WriteElement(g))
	check.Equal(`<gizmo xmlns="`+coreURI+`" metaid="_m1" id="g1" size="3">`+
		`<label>hi</label><gizmo id="g2"><label></label></gizmo></gizmo>`, buf.String())

	check.True(errors.Is(NewWriter(&buf).WriteElement(nil), sbmlerr.ErrInvalidObject))
}

func TestFacade(t *testing.T) {
	check := assert.New(t)
	g := newGizmo(xmlutil.SBML(3, 1))

	v, err := g.GetAttribute("size")
	check.NoError(err)
	check.Equal(attr.UIntValue(1), v)
	check.False(g.IsSetAttribute("size"))

	check.NoError(g.SetAttribute("id", attr.StringValue("x1")))
	check.Equal("x1", g.id.Get())
	check.Error(g.SetAttribute("id", attr.StringValue("1bad")))
	check.Error(g.SetAttribute("size", attr.StringValue("3")))

	check.True(errors.Is(g.SetAttribute("ratio", attr.DoubleValue(1)), sbmlerr.ErrOperationFailed))
	check.False(g.IsSetAttribute("nothing"))
	_, err = GetAttribute(nil, "id")
	check.True(errors.Is(err, sbmlerr.ErrInvalidObject))

	check.NoError(g.UnsetAttribute("id"))
	check.NoError(g.UnsetAttribute("id"))
	check.False(g.HasRequiredAttributes())
	check.False(g.HasRequiredElements())
}

func TestTree(t *testing.T) {
	check := assert.New(t)
	g := newGizmo(xmlutil.SBML(3, 1))

	l := newLabel(xmlutil.SBML(3, 1))
	check.NoError(SetChild(g, "label", l))
	check.Equal(l, g.label)
	check.Equal(Element(g), l.Parent())

	check.True(errors.Is(SetChild(g, "label", newGizmo(xmlutil.SBML(3, 1))), sbmlerr.ErrInvalidObject))
	check.True(errors.Is(SetChild(g, "nothing", l), sbmlerr.ErrOperationFailed))
	check.True(errors.Is(AddChild(g, "gizmo", newGizmo(xmlutil.SBML(3, 2))), sbmlerr.ErrVersionMismatch))
	check.True(errors.Is(AddChild(g, "gizmo", newGizmo(xmlutil.SBML(2, 4))), sbmlerr.ErrLevelMismatch))
	check.True(errors.Is(AddChild(g, "gizmo", newGizmo(xmlutil.SEDML(3, 1))), sbmlerr.ErrOperationFailed))

	other := newGizmo(xmlutil.SBML(3, 1))
	check.True(errors.Is(SetChild(other, "label", l), sbmlerr.ErrOperationFailed))

	child := newGizmo(xmlutil.SBML(3, 1))
	check.NoError(AddChild(g, "gizmo", child))
	check.Equal([]Element{l, child}, Children(g))

	removed := RemoveChild(g, "label")
	check.Equal(Element(l), removed)
	check.Nil(g.label)
	check.Nil(l.Parent())
	check.Nil(RemoveChild(g, "label"))

	created, err := CreateChild(g, "label")
	check.NoError(err)
	check.Equal(Element(g.label), created)

	check.NoError(SetChild(g, "label", (*label)(nil)))
	check.Nil(g.label)
}

func TestClone(t *testing.T) {
	check := assert.New(t)
	g, _ := readGizmo(t, `<gizmo id="g1" size="4"><label>hi</label><gizmo id="g2"><label/></gizmo></gizmo>`)

	dup, ok := Clone(g).(*gizmo)
	if !check.True(ok) {
		return
	}
	check.Nil(dup.Parent())
	check.Equal("g1", dup.id.Get())
	check.Equal(uint(4), dup.size.Get())
	check.Equal("hi", dup.label.text.Get())
	check.NotSame(g.label, dup.label)
	check.Equal(Element(dup), dup.label.Parent())
	if check.Len(dup.gizmos, 1) {
		check.Equal("g2", dup.gizmos[0].id.Get())
		check.NotSame(g.gizmos[0], dup.gizmos[0])
	}
	check.Equal(g.Line(), dup.Line())

	check.NoError(dup.id.Set("g9"))
	check.Equal("g1", g.id.Get())
	check.Nil(Clone(nil))
}

func TestRegistry(t *testing.T) {
	check := assert.New(t)
	c, ok := Lookup(xmlutil.PackageCore, "gizmo")
	check.True(ok)
	check.Equal(gizmoClass, c)
	c, ok = LookupTypeCode(990202)
	check.True(ok)
	check.Equal(labelClass, c)
	_, ok = Lookup(xmlutil.PackageCore, "nothing")
	check.False(ok)
	check.True(KnownPackage(xmlutil.PackageCore))
	check.Panics(func() { Register(gizmoClass) })
}
