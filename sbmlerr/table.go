package sbmlerr

import (
	"fmt"
	"sort"
)

// Code is a numeric diagnostic code
type Code uint32

const (
	// ApplicationBase is the first code of the application-specific range.
	ApplicationBase Code = 100000
	// PackageBase is the smallest permitted package offset.
	PackageBase Code = 1000000
	// BlockSize is the size of the code block owned by one package.
	BlockSize Code = 100000

	// packageFirst is the first code of a block a package may define.
	packageFirst Code = 10000
)

// Package names used for diagnostic blocks and schema packages.
const (
	PackageCore    = "core"
	PackageRender  = "render"
	PackageDistrib = "distrib"
	PackageFbc     = "fbc"
	PackageTest    = "test"
	PackageSedML   = "sedml"
	PackageSBGN    = "sbgn"
)

var packageOffsets = map[string]Code{
	PackageCore:    0,
	PackageRender:  1300000,
	PackageDistrib: 1500000,
	PackageFbc:     2000000,
	PackageTest:    9000000,
	PackageSedML:   20000000,
	PackageSBGN:    30000000,
}

// PackageOffset returns the code offset allocated to the named package.
func PackageOffset(pkg string) (Code, bool) {
	off, ok := packageOffsets[pkg]
	return off, ok
}

// PackageOf returns the package owning code's block, or the empty string
// for application-specific and unallocated codes.
func PackageOf(code Code) string {
	if code < ApplicationBase {
		return PackageCore
	}
	for pkg, off := range packageOffsets {
		if off >= PackageBase && code >= off && code < off+BlockSize {
			return pkg
		}
	}
	return ""
}

// IsApplicationCode returns true if code lies in the range reserved for
// application-specific extensions.
func IsApplicationCode(code Code) bool { return code >= ApplicationBase && code < PackageBase }

// Entry is the static metadata describing a diagnostic code.
type Entry struct {
	Code         Code     `json:"code" yaml:"code"`
	Package      string   `json:"package" yaml:"package"`
	ShortMessage string   `json:"short-message" yaml:"short-message"`
	Category     Category `json:"category" yaml:"category"`
	Severity     Severity `json:"severity" yaml:"severity"`
	LongMessage  string   `json:"long-message,omitempty" yaml:"long-message,omitempty"`
	References   []string `json:"references,omitempty" yaml:"references,omitempty"`
}

type tableDef struct {
	pkg     string
	entries []Entry
}

var tables = []tableDef{
	{PackageCore, coreTable},
	{PackageRender, renderTable},
	{PackageDistrib, distribTable},
	{PackageFbc, fbcTable},
	{PackageTest, testTable},
	{PackageSedML, sedmlTable},
	{PackageSBGN, sbgnTable},
}

var table = buildTable(tables)

func buildTable(defs []tableDef) map[Code]Entry {
	m := map[Code]Entry{}
	for _, def := range defs {
		for _, e := range def.entries {
			if err := checkBlock(def.pkg, e.Code); err != nil {
				panic(err)
			}
			if _, dup := m[e.Code]; dup {
				panic(fmt.Errorf("sbmlerr: duplicate diagnostic code %d", e.Code))
			}
			e.Package = def.pkg
			m[e.Code] = e
		}
	}
	return m
}

func checkBlock(pkg string, code Code) error {
	off, ok := packageOffsets[pkg]
	switch {
	case !ok:
		return fmt.Errorf("sbmlerr: no code block allocated to package %q", pkg)
	case code == 0:
		return fmt.Errorf("sbmlerr: package %q defines code 0", pkg)
	case off == 0:
		if code >= ApplicationBase {
			return fmt.Errorf("sbmlerr: core code %d outside the core block", code)
		}
	case off < PackageBase || off%BlockSize != 0:
		return fmt.Errorf("sbmlerr: package %q has misaligned offset %d", pkg, off)
	case code < off+packageFirst || code >= off+BlockSize:
		return fmt.Errorf("sbmlerr: code %d outside the %s block [%d, %d)", code, pkg, off+packageFirst, off+BlockSize)
	}
	return nil
}

// Lookup returns the table entry for code.
func Lookup(code Code) (Entry, bool) {
	e, ok := table[code]
	if ok && e.References != nil {
		e.References = append([]string(nil), e.References...)
	}
	return e, ok
}

// MustLookup is like Lookup but panics if code is not in any table.
func MustLookup(code Code) Entry {
	e, ok := Lookup(code)
	if !ok {
		panic(fmt.Sprintf("sbmlerr: unknown diagnostic code %d", code))
	}
	return e
}

// Entries returns every table entry, sorted by code.
func Entries() []Entry {
	out := make([]Entry, 0, len(table))
	for code := range table {
		e, _ := Lookup(code)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
