package sbmlerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesInBlock(t *testing.T) {
	check := assert.New(t)
	for _, def := range tables {
		for _, e := range def.entries {
			check.NoError(checkBlock(def.pkg, e.Code), "%s code %d", def.pkg, e.Code)
			check.NotEmpty(e.ShortMessage, "code %d", e.Code)
			check.Equal(def.pkg, PackageOf(e.Code), "code %d", e.Code)
		}
	}
}

func TestCheckBlock(t *testing.T) {
	for _, tc := range []struct {
		pkg  string
		code Code
		ok   bool
	}{
		{PackageCore, 10102, true},
		{PackageCore, 99995, true},
		{PackageCore, 100000, false},
		{PackageFbc, 2010100, true},
		{PackageFbc, 2000001, false},
		{PackageFbc, 2100000, false},
		{PackageTest, 9020202, true},
		{PackageRender, 2010100, false},
		{"nosuchpackage", 4010100, false},
		{PackageSedML, 0, false},
	} {
		err := checkBlock(tc.pkg, tc.code)
		if tc.ok {
			assert.NoError(t, err, "%s %d", tc.pkg, tc.code)
		} else {
			assert.Error(t, err, "%s %d", tc.pkg, tc.code)
		}
	}
}

func TestBuildTablePanics(t *testing.T) {
	check := assert.New(t)
	e := entry(FbcUnknown, CategoryInternal, SeverityError, "a", "b")
	check.Panics(func() { buildTable([]tableDef{{PackageFbc, []Entry{e, e}}}) })
	check.Panics(func() { buildTable([]tableDef{{PackageRender, []Entry{e}}}) })
	check.NotPanics(func() { buildTable([]tableDef{{PackageFbc, []Entry{e}}}) })
}

func TestLookup(t *testing.T) {
	check := assert.New(t)

	e, ok := Lookup(TestClassThreeAllowedAttributes)
	check.True(ok)
	check.Equal(TestClassThreeAllowedAttributes, e.Code)
	check.Equal(PackageTest, e.Package)
	check.Equal(CategorySchema, e.Category)
	check.Equal(SeverityError, e.Severity)
	check.Equal([]string{testRef + " Section 3.4"}, e.References)

	// the table is immutable through the returned copy
	e.References[0] = "changed"
	again, _ := Lookup(TestClassThreeAllowedAttributes)
	check.Equal(testRef+" Section 3.4", again.References[0])

	_, ok = Lookup(12345678)
	check.False(ok)
	check.Panics(func() { MustLookup(12345678) })

	bad := MustLookup(BadlyFormedXML)
	check.Equal(SeverityFatal, bad.Severity)
	check.Equal(PackageCore, bad.Package)
}

func TestEntriesSorted(t *testing.T) {
	check := assert.New(t)
	all := Entries()
	check.Len(all, len(table))
	for i := 1; i < len(all); i++ {
		check.Less(uint32(all[i-1].Code), uint32(all[i].Code))
	}
}

func TestPackageOf(t *testing.T) {
	check := assert.New(t)
	check.Equal(PackageCore, PackageOf(UnknownCoreAttribute))
	check.Equal(PackageRender, PackageOf(RenderPointAllowedAttributes))
	check.Equal(PackageDistrib, PackageOf(DistribUncertBoundInclusiveMustBeBoolean))
	check.Equal(PackageSedML, PackageOf(SedmlSedModelAllowedAttributes))
	check.Equal(PackageSBGN, PackageOf(SbgnGlyphAllowedAttributes))
	check.Equal("", PackageOf(150000))
	check.True(IsApplicationCode(150000))
	check.False(IsApplicationCode(FbcUnknown))

	off, ok := PackageOffset(PackageFbc)
	check.True(ok)
	check.Equal(Code(2000000), off)
}
