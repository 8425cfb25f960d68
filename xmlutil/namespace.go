package xmlutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// Family names the document family a namespace belongs to.
type Family int

const (
	FamilySBML Family = iota
	FamilySEDML
	FamilySBGN
)

func (f Family) String() string {
	switch f {
	case FamilySBML:
		return "sbml"
	case FamilySEDML:
		return "sedml"
	case FamilySBGN:
		return "sbgn"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Package names that are families of their own rather than SBML packages.
const (
	PackageCore  = "core"
	PackageSedML = "sedml"
	PackageSBGN  = "sbgn"
)

const (
	coreURIFormat    = "http://www.sbml.org/sbml/level%d/version%d/core"
	packageURIFormat = "http://www.sbml.org/sbml/level%d/version%d/%s/version%d"
	sedmlURIFormat   = "http://sed-ml.org/sed-ml/level%d/version%d"
	sbgnURIFormat    = "http://sbgn.org/libsbgn/0.%d"
)

var (
	sbmlURI  = regexp.MustCompile(`^http://www\.sbml\.org/sbml/level(\d+)/version(\d+)/(?:core|([A-Za-z][A-Za-z0-9_]*)/version(\d+))$`)
	sedmlURI = regexp.MustCompile(`^http://sed-ml\.org/(?:sed-ml/)?level(\d+)/version(\d+)$`)
	sbgnURI  = regexp.MustCompile(`^http://sbgn\.org/libsbgn/0\.(\d+)$`)
)

// Namespaces identifies the schema an element belongs to: the package
// (PackageCore or the empty string for SBML core), the core level and
// version, and the package version.
type Namespaces struct {
	Package        string
	Level          uint
	Version        uint
	PackageVersion uint
}

// SBML returns the SBML core namespaces for level and version.
func SBML(level, version uint) Namespaces {
	return Namespaces{Package: PackageCore, Level: level, Version: version}
}

// SBMLPackage returns the namespaces of an SBML Level 3 package.
func SBMLPackage(pkg string, level, version, pkgVersion uint) Namespaces {
	return Namespaces{Package: pkg, Level: level, Version: version, PackageVersion: pkgVersion}
}

// SEDML returns the SED-ML namespaces for level and version.
func SEDML(level, version uint) Namespaces {
	return Namespaces{Package: PackageSedML, Level: level, Version: version}
}

// SBGN returns the SBGN-ML namespaces for the 0.<version> schema.
func SBGN(version uint) Namespaces {
	return Namespaces{Package: PackageSBGN, Version: version}
}

// Family returns the document family of ns.
func (ns Namespaces) Family() Family {
	switch ns.Package {
	case PackageSedML:
		return FamilySEDML
	case PackageSBGN:
		return FamilySBGN
	default:
		return FamilySBML
	}
}

// IsCore returns true for the base namespace of a family: SBML core,
// SED-ML or SBGN-ML.
func (ns Namespaces) IsCore() bool {
	switch ns.Package {
	case "", PackageCore, PackageSedML, PackageSBGN:
		return true
	}
	return false
}

// PackageName returns the package name, mapping the empty package to
// PackageCore.
func (ns Namespaces) PackageName() string {
	if ns.Package == "" {
		return PackageCore
	}
	return ns.Package
}

// Core returns the base namespaces of ns's family at the same level and
// version.
func (ns Namespaces) Core() Namespaces {
	if ns.IsCore() {
		ns.PackageVersion = 0
		if ns.Package == "" {
			ns.Package = PackageCore
		}
		return ns
	}
	return SBML(ns.Level, ns.Version)
}

// WithPackage returns ns rebased on pkg at pkgVersion, keeping the level
// and version.
func (ns Namespaces) WithPackage(pkg string, pkgVersion uint) Namespaces {
	ns.Package, ns.PackageVersion = pkg, pkgVersion
	return ns
}

// Is returns true if ns is exactly level/version (any package).
func (ns Namespaces) Is(level, version uint) bool { return ns.Level == level && ns.Version == version }

// URI returns the namespace URI of ns.
func (ns Namespaces) URI() string {
	switch ns.Package {
	case "", PackageCore:
		return fmt.Sprintf(coreURIFormat, ns.Level, ns.Version)
	case PackageSedML:
		return fmt.Sprintf(sedmlURIFormat, ns.Level, ns.Version)
	case PackageSBGN:
		return fmt.Sprintf(sbgnURIFormat, ns.Version)
	default:
		return fmt.Sprintf(packageURIFormat, ns.Level, ns.Version, ns.Package, ns.PackageVersion)
	}
}

// DefaultPrefix returns the prefix conventionally bound to ns's URI. Base
// namespaces are the default namespace of their documents.
func (ns Namespaces) DefaultPrefix() string {
	if ns.IsCore() {
		return ""
	}
	return ns.Package
}

func (ns Namespaces) String() string {
	switch ns.Family() {
	case FamilySBGN:
		return fmt.Sprintf("sbgn 0.%d", ns.Version)
	case FamilySEDML:
		return fmt.Sprintf("sedml L%dV%d", ns.Level, ns.Version)
	}
	if ns.IsCore() {
		return fmt.Sprintf("core L%dV%d", ns.Level, ns.Version)
	}
	return fmt.Sprintf("%s L%dV%d v%d", ns.Package, ns.Level, ns.Version, ns.PackageVersion)
}

// ParseURI returns the namespaces identified by uri.
func ParseURI(uri string) (ns Namespaces, ok bool) {
	if m := sbmlURI.FindStringSubmatch(uri); m != nil {
		ns.Level, ns.Version = atou(m[1]), atou(m[2])
		ns.Package = PackageCore
		if m[3] != "" {
			ns.Package, ns.PackageVersion = m[3], atou(m[4])
		}
		return ns, true
	}
	if m := sedmlURI.FindStringSubmatch(uri); m != nil {
		return SEDML(atou(m[1]), atou(m[2])), true
	}
	if m := sbgnURI.FindStringSubmatch(uri); m != nil {
		return SBGN(atou(m[1])), true
	}
	return ns, false
}

func atou(s string) uint {
	u, _ := strconv.ParseUint(s, 10, 32)
	return uint(u)
}
