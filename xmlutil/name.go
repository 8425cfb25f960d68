package xmlutil

import (
	"encoding/xml"
	"strings"
)

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// RawName returns an xml.Name whose local part is the qualified name
// prefix:local (or just local for the empty prefix). The encoder writes
// such names verbatim, which keeps prefixes chosen by the document intact.
func RawName(prefix, local string) xml.Name {
	if prefix == "" {
		return xml.Name{Local: local}
	}
	return xml.Name{Local: prefix + ":" + local}
}

// SplitQName splits a qualified name into its prefix and local part.
func SplitQName(qname string) (prefix, local string) {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[:i], qname[i+1:]
	}
	return "", qname
}

// IsXMLNS returns true if the attribute declares a namespace prefix or the
// default namespace.
func IsXMLNS(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}
