package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

type strPair struct{ a, b string }

func TestPrefixMap(t *testing.T) {
	for _, tc := range []struct {
		attrs     []xml.Attr
		nsTest    []strPair
		pfxTest   []strPair
		sortAttrs []xml.Attr
	}{
		// test number #00: identity check (no tests to run and an empty sortAttrs is expected)
		{},

		// #01
		{
			attrs: []xml.Attr{
				{Name: XMLName("pfx-b", "xmlns"), Value: "val-b"},
				{Name: XMLName("pfx-a", "xmlns"), Value: "val-a"},
				{Name: XMLName("pfx-c", "xmlns"), Value: "val-c"},
				{Name: XMLName("id"), Value: "not-a-declaration"},
			},
			nsTest: []strPair{
				{a: "pfx-a", b: "val-a"},
				{a: "pfx-b", b: "val-b"},
				{a: "pfx-c", b: "val-c"},
			},
			pfxTest: []strPair{
				{b: "pfx-a", a: "val-a"},
				{b: "pfx-b", a: "val-b"},
				{b: "pfx-c", a: "val-c"},
			},
			sortAttrs: []xml.Attr{
				{Name: XMLName("xmlns:pfx-a"), Value: "val-a"},
				{Name: XMLName("xmlns:pfx-b"), Value: "val-b"},
				{Name: XMLName("xmlns:pfx-c"), Value: "val-c"},
			},
		},

		// #02: default namespace
		{
			attrs: []xml.Attr{
				{Name: XMLName("fbc", "xmlns"), Value: "val-fbc"},
				{Name: XMLName("xmlns"), Value: "val-core"},
			},
			nsTest:  []strPair{{a: "", b: "val-core"}, {a: "fbc", b: "val-fbc"}},
			pfxTest: []strPair{{a: "val-core", b: ""}},
			sortAttrs: []xml.Attr{
				{Name: XMLName("xmlns"), Value: "val-core"},
				{Name: XMLName("xmlns:fbc"), Value: "val-fbc"},
			},
		},
	} {
		t.Run("", func(t *testing.T) {
			a := assert.New(t)
			pmap := NewPrefixMap(tc.attrs...)
			for _, tt := range tc.nsTest {
				a.Equal(tt.b, pmap.Namespace(tt.a))
			}
			for _, tt := range tc.pfxTest {
				var pfx string
				if pfxes := pmap.Prefix(tt.a); pfxes != nil {
					pfx = pfxes[0]
				}
				a.Equal(tt.b, pfx)
			}
			a.Equal(tc.sortAttrs, pmap.Attr())
		})
	}
}

func TestPrefixMapBind(t *testing.T) {
	check := assert.New(t)
	pmap := NewPrefixMap(xml.Attr{Name: XMLName("xmlns"), Value: "core"})

	check.Equal("", pmap.Bind("core", ""))
	check.Equal("ns", pmap.BindAttr("core", ""))
	check.Equal("fbc", pmap.Bind("fbc-v1", "fbc"))
	check.Equal("fbc", pmap.BindAttr("fbc-v1", "fbc"))
	check.Equal("fbc1", pmap.Bind("fbc-v2", "fbc"))
	check.Equal("ns1", pmap.Bind("other", ""))
	check.Equal("fbc-v2", pmap.Namespace("fbc1"))
}
