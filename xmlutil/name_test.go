package xmlutil

import (
	"encoding/xml"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXMLName(t *testing.T) {
	for _, tc := range []struct {
		local  string
		spaces []string
		want   xml.Name
	}{
		{local: "foo", want: xml.Name{Local: "foo"}},
		{local: "foo", spaces: []string{"bar"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{local: "foo", spaces: []string{"bar", "baz"}, want: xml.Name{Local: "foo", Space: "bar"}},
		{want: xml.Name{}},
	} {
		t.Run(fmt.Sprintf("%v", tc.want), func(t *testing.T) { assert.New(t).Equal(tc.want, XMLName(tc.local, tc.spaces...)) })
	}
}

func TestQualifiedNames(t *testing.T) {
	for _, tc := range []struct {
		qname  string
		prefix string
		local  string
	}{
		{qname: "fbc:fluxBound", prefix: "fbc", local: "fluxBound"},
		{qname: "category", local: "category"},
		{qname: ":odd", local: "odd"},
		{qname: "a:b:c", prefix: "a", local: "b:c"},
	} {
		t.Run(tc.qname, func(t *testing.T) {
			check := assert.New(t)
			prefix, local := SplitQName(tc.qname)
			check.Equal(tc.prefix, prefix)
			check.Equal(tc.local, local)
			if tc.prefix != "" {
				check.Equal(xml.Name{Local: tc.qname}, RawName(prefix, local))
			}
		})
	}
	assert.Equal(t, xml.Name{Local: "value"}, RawName("", "value"))
}

func TestIsXMLNS(t *testing.T) {
	for _, tc := range []struct {
		name xml.Name
		want bool
	}{
		{name: xml.Name{Local: "xmlns"}, want: true},
		{name: xml.Name{Space: "xmlns", Local: "fbc"}, want: true},
		{name: xml.Name{Space: "urn:example", Local: "xmlns"}},
		{name: xml.Name{Local: "id"}},
		{name: xml.Name{Space: "fbc", Local: "id"}},
	} {
		t.Run(fmt.Sprintf("%v", tc.name), func(t *testing.T) {
			assert.New(t).Equal(tc.want, IsXMLNS(xml.Attr{Name: tc.name, Value: "urn:x"}))
		})
	}
}
