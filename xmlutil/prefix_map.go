package xmlutil

import (
	"encoding/xml"
	"sort"
	"strconv"
)

// PrefixMap is a prefix to namespace URI map. The empty prefix holds the
// default namespace.
type PrefixMap map[string]string

// NewPrefixMap returns a PrefixMap, containing the namespace declarations
// found in the passed XML attributes
func NewPrefixMap(attrs ...xml.Attr) PrefixMap {
	pmap := PrefixMap{}
	pmap.Add(attrs...)
	return pmap
}

// Add records the namespace declarations found in attrs.
func (m PrefixMap) Add(attrs ...xml.Attr) {
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "xmlns":
			m[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			m[""] = attr.Value
		}
	}
}

// Attr returns the prefix map contents as a series of raw xmlns and
// xmlns:<prefix> attributes, sorted lexically by prefix (the default
// namespace first).
func (m PrefixMap) Attr() (a []xml.Attr) {
	for k, v := range m {
		a = append(a, xml.Attr{Name: RawName("xmlns", k), Value: v})
		if k == "" {
			a[len(a)-1].Name = xml.Name{Local: "xmlns"}
		}
	}
	if len(a) > 0 {
		// sort lexically by prefix
		sort.Slice(a, func(i int, j int) bool { return a[i].Name.Local < a[j].Name.Local })
	}
	return a
}

// Namespace returns the namespace URI for the given prefix
func (m PrefixMap) Namespace(prefix string) string { return m[prefix] }

// Prefix returns any prefixes found for the namespace URI, sorted
func (m PrefixMap) Prefix(nsURI string) (pfxes []string) {
	for k, v := range m {
		if nsURI == v {
			pfxes = append(pfxes, k)
		}
	}
	sort.Strings(pfxes)
	return pfxes
}

// Bind returns the prefix bound to nsURI, declaring it as want (or a
// numbered variant of want, if that prefix is taken) when it is missing.
func (m PrefixMap) Bind(nsURI, want string) string { return m.bind(nsURI, want, true) }

// BindAttr is like Bind, but never returns the default namespace's empty
// prefix, since unprefixed attributes are in no namespace.
func (m PrefixMap) BindAttr(nsURI, want string) string { return m.bind(nsURI, want, false) }

func (m PrefixMap) bind(nsURI, want string, allowDefault bool) string {
	for _, pfx := range m.Prefix(nsURI) {
		if pfx != "" || allowDefault {
			return pfx
		}
	}
	base := want
	if base == "" && !allowDefault {
		base = "ns"
	}
	pfx := base
	for i := 1; ; i++ {
		if _, taken := m[pfx]; !taken {
			break
		}
		if base == "" {
			base = "ns"
		}
		pfx = base + strconv.Itoa(i)
	}
	m[pfx] = nsURI
	return pfx
}
