package xmlutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacesURI(t *testing.T) {
	for _, tc := range []struct {
		ns     Namespaces
		uri    string
		prefix string
		family Family
	}{
		{ns: SBML(3, 1), uri: "http://www.sbml.org/sbml/level3/version1/core", family: FamilySBML},
		{ns: SBML(3, 2), uri: "http://www.sbml.org/sbml/level3/version2/core", family: FamilySBML},
		{ns: SBMLPackage("fbc", 3, 1, 1), uri: "http://www.sbml.org/sbml/level3/version1/fbc/version1", prefix: "fbc", family: FamilySBML},
		{ns: SBMLPackage("test", 3, 2, 1), uri: "http://www.sbml.org/sbml/level3/version2/test/version1", prefix: "test", family: FamilySBML},
		{ns: SEDML(1, 3), uri: "http://sed-ml.org/sed-ml/level1/version3", family: FamilySEDML},
		{ns: SBGN(3), uri: "http://sbgn.org/libsbgn/0.3", family: FamilySBGN},
	} {
		t.Run(tc.uri, func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.uri, tc.ns.URI())
			check.Equal(tc.prefix, tc.ns.DefaultPrefix())
			check.Equal(tc.family, tc.ns.Family())

			back, ok := ParseURI(tc.uri)
			check.True(ok)
			check.Equal(tc.ns, back)
		})
	}
}

func TestParseURIRejects(t *testing.T) {
	check := assert.New(t)
	for _, uri := range []string{
		"",
		"urn:ietf:params:xml:ns:netconf:base:1.0",
		"http://www.sbml.org/sbml/level3/version1",
		"http://www.sbml.org/sbml/level3/version1/fbc",
		"http://sbgn.org/libsbgn/1.0",
	} {
		_, ok := ParseURI(uri)
		check.False(ok, uri)
	}
	// SED-ML level 1 version 1 used a shorter URI
	ns, ok := ParseURI("http://sed-ml.org/level1/version1")
	check.True(ok)
	check.Equal(SEDML(1, 1), ns)
}

func TestNamespacesCore(t *testing.T) {
	check := assert.New(t)
	fbc := SBMLPackage("fbc", 3, 1, 2)
	check.False(fbc.IsCore())
	check.Equal(SBML(3, 1), fbc.Core())
	check.Equal(SBML(3, 2), Namespaces{Level: 3, Version: 2}.Core())
	check.Equal(SEDML(1, 2), SEDML(1, 2).Core())
	check.Equal(fbc, SBML(3, 1).WithPackage("fbc", 2))
	check.Equal("fbc L3V1 v2", fbc.String())
	check.Equal("core", Namespaces{}.PackageName())
	check.True(fbc.Is(3, 1))
}
