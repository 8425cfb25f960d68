package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andaru/sbmlbind/attr"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/andaru/sbmlbind/schema"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const renderURI = "http://www.sbml.org/sbml/level3/version1/render/version1"

func TestRelAbsVector(t *testing.T) {
	for _, tc := range []struct {
		in       string
		abs, rel float64
		out      string
		err      error
	}{
		{in: "10", abs: 10, out: "10"},
		{in: "50%", rel: 50, out: "50%"},
		{in: "10+50%", abs: 10, rel: 50, out: "10+50%"},
		{in: " 10 - 5% ", abs: 10, rel: -5, out: "10-5%"},
		{in: "-5%", rel: -5, out: "-5%"},
		{in: "1e2+1e-1%", abs: 100, rel: 0.1, out: "100+0.1%"},
		{in: "", err: attr.ErrEmpty},
		{in: "ten", err: attr.ErrSyntax},
		{in: "10+x%", err: attr.ErrSyntax},
	} {
		t.Run(tc.in, func(t *testing.T) {
			check := assert.New(t)
			var v RelAbsVector
			err := v.Parse(tc.in)
			if tc.err != nil {
				check.True(errors.Is(err, tc.err), "got %v", err)
				check.False(v.IsSet())
				return
			}
			check.NoError(err)
			check.Equal(tc.abs, v.Abs())
			check.Equal(tc.rel, v.Rel())
			check.Equal(tc.out, v.Format())
		})
	}
}

func TestDashArray(t *testing.T) {
	check := assert.New(t)
	var d DashArray
	check.NoError(d.Parse("5, 3,1"))
	check.Equal([]uint{5, 3, 1}, d.Get())
	check.Equal("5,3,1", d.Format())
	check.True(errors.Is(d.Parse("5,-3"), attr.ErrSyntax))
	check.False(d.IsSet())
	check.True(errors.Is(d.Parse(" "), attr.ErrEmpty))
}

func TestRectangleRoundTrip(t *testing.T) {
	check := assert.New(t)
	r := NewRectangle(Namespaces)
	check.NoError(r.SetId("r1"))
	r.SetStroke("black")
	r.SetStrokeDashArray([]uint{4, 2})
	r.SetFill("#FF0000")
	check.NoError(r.SetFillRule(FillRuleEvenOdd))
	r.SetCoordinates(10, 20, 0)
	r.Width().Set(0, 100)
	r.Height().Set(5, 50)
	check.True(r.HasRequiredAttributes())

	var buf bytes.Buffer
	check.NoError(schema.NewWriter(&buf).WriteElement(r))
	want := `<rectangle xmlns="` + renderURI + `" id="r1" stroke="black" stroke-dasharray="4,2" fill="#FF0000" fill-rule="evenodd" x="10" y="20" z="0" width="100%" height="5+50%"></rectangle>`
	check.Equal(want, buf.String())

	rd := schema.NewReader(strings.NewReader(buf.String()))
	e, err := rd.ReadRoot(Namespaces)
	check.NoError(err)
	check.Equal(0, rd.Log().Len())
	got := e.(*Rectangle)
	check.Equal(FillRuleEvenOdd, got.FillRule())
	check.Equal([]uint{4, 2}, got.StrokeDashArray())
	check.Equal(50.0, got.Height().Rel())
	check.False(got.RX().IsSet())

	v, err := got.GetAttribute("rx")
	check.NoError(err)
	check.Equal(attr.StringValue("0"), v)

	dup := got.Clone()
	check.Equal("5+50%", dup.Height().Format())
	check.Equal("black", dup.Stroke())
}

func TestShapeDiagnostics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		doc   string
		codes []sbmlerr.Code
	}{
		{
			name:  "bad fill rule",
			doc:   `<ellipse cx="1" cy="1" rx="2" fill-rule="sideways"/>`,
			codes: []sbmlerr.Code{sbmlerr.RenderGraphicalPrimitive2DFillRuleMustBeFillRuleEnum},
		},
		{
			name:  "unknown attribute",
			doc:   `<rectangle x="0" y="0" width="1" height="1" colour="red"/>`,
			codes: []sbmlerr.Code{sbmlerr.RenderRectangleAllowedAttributes},
		},
		{
			name:  "bad vector",
			doc:   `<rectangle x="0" y="zero" width="1" height="1"/>`,
			codes: []sbmlerr.Code{sbmlerr.RenderRectangleShapeMustBeRelAbsVector},
		},
		{
			name:  "missing y",
			doc:   `<point x="1"/>`,
			codes: []sbmlerr.Code{sbmlerr.RenderPointAllowedAttributes},
		},
		{
			name:  "child element",
			doc:   `<point x="1" y="2"><point x="1" y="2"/></point>`,
			codes: []sbmlerr.Code{sbmlerr.RenderPointAllowedElements},
		},
		{
			name:  "stroke width",
			doc:   `<ellipse cx="1" cy="1" rx="2" stroke-width="thick"/>`,
			codes: []sbmlerr.Code{sbmlerr.RenderGraphicalPrimitive1DStrokeWidthMustBeDouble},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			rd := schema.NewReader(strings.NewReader(tc.doc))
			_, err := rd.ReadRoot(Namespaces)
			check.NoError(err)
			var got []sbmlerr.Code
			for _, e := range rd.Log().Errors() {
				got = append(got, e.Code)
			}
			check.Equal(tc.codes, got)
		})
	}
}

func TestEllipseCircle(t *testing.T) {
	check := assert.New(t)
	e := NewEllipse(Namespaces)
	e.RX().Set(4, 0)
	check.False(e.IsSetRY())
	check.Equal(4.0, e.RY().Abs())
	check.False(e.HasRequiredAttributes())
	e.CX().Set(0, 50)
	e.CY().Set(0, 50)
	check.True(e.HasRequiredAttributes())
}

func TestDefaultValues(t *testing.T) {
	check := assert.New(t)
	d := NewDefaultValues(Namespaces)
	check.Equal(DefaultBackgroundColor, d.BackgroundColor())
	check.False(d.IsSetBackgroundColor())
	check.Equal(FillRuleNonZero, d.FillRule())
	check.Equal(FontWeightNormal, d.FontWeight())
	check.Equal(VTextAnchorTop, d.VTextAnchor())
	check.True(d.EnableRotationalMapping())

	for name, want := range map[string]attr.Value{
		"backgroundColor":         attr.StringValue("#FFFFFFFF"),
		"spreadMethod":            attr.EnumValue(0, "pad"),
		"linearGradient_x2":       attr.StringValue("100%"),
		"fill-rule":               attr.EnumValue(0, "nonzero"),
		"font-family":             attr.StringValue("sans-serif"),
		"text-anchor":             attr.EnumValue(0, "start"),
		"enableRotationalMapping": attr.BoolValue(true),
	} {
		v, err := schema.GetAttribute(d, name)
		check.NoError(err, name)
		check.Equal(want, v, name)
		check.False(schema.IsSetAttribute(d, name), name)
	}

	rd := schema.NewReader(strings.NewReader(`<defaultValues xmlns="` + renderURI + `" font-weight="bold" text-anchor="middle" enableRotationalMapping="false" font-size="12"/>`))
	e, err := rd.ReadRoot(Namespaces)
	check.NoError(err)
	check.Equal(0, rd.Log().Len())
	got := e.(*DefaultValues)
	check.Equal(FontWeightBold, got.FontWeight())
	check.Equal(HTextAnchorMiddle, got.TextAnchor())
	check.False(got.EnableRotationalMapping())
	check.Equal(12.0, got.FontSize().Abs())

	var buf bytes.Buffer
	check.NoError(schema.NewWriter(&buf).WriteElement(got))
	check.Equal(`<defaultValues xmlns="`+renderURI+`" font-size="12" font-weight="bold" text-anchor="middle" enableRotationalMapping="false"></defaultValues>`, buf.String())
}

func TestEnumTokens(t *testing.T) {
	check := assert.New(t)
	for _, table := range []*attr.EnumTable{fillRuleTable, fontWeightTable, fontStyleTable, hTextAnchorTable, vTextAnchorTable, spreadMethodTable} {
		for _, tok := range table.Tokens() {
			check.Equal(tok, table.ToString(table.FromString(tok)))
		}
	}
	check.Equal("evenodd", FillRuleEvenOdd.String())
	check.Equal("baseline", VTextAnchorBaseline.String())
	check.Equal(int(FillRuleInvalid), fillRuleTable.Invalid())
	check.Equal(int(SpreadMethodInvalid), spreadMethodTable.Invalid())
}
