// Package config holds the settings of the sbmlbind command, loaded from
// a TOML file.
package config

import (
	"bytes"
	"os"

	"github.com/andaru/sbmlbind/xmlutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the sbmlbind command configuration.
type Config struct {
	// Level, Version, Package and PackageVersion select the namespaces
	// unqualified document elements are read at.
	Level          uint   `toml:"level"`
	Version        uint   `toml:"version"`
	Package        string `toml:"package"`
	PackageVersion uint   `toml:"package_version"`

	// Format is the diagnostic output format: text, json or yaml.
	Format string `toml:"format"`

	// Verbosity is the glog verbosity level.
	Verbosity int `toml:"verbosity"`
}

// Default returns the default configuration: SBML L3V1 core, text output.
func Default() Config {
	return Config{
		Level:   3,
		Version: 1,
		Package: xmlutil.PackageCore,
		Format:  FormatText,
	}
}

// Parse returns the default configuration updated by the TOML document
// data. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return c, c.Validate()
}

// Load reads the configuration file name.
func Load(name string) (Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	c, err := Parse(data)
	return c, errors.Wrap(err, name)
}

// Validate checks the configuration's values.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	ns := c.Namespaces()
	if ns.Family() == xmlutil.FamilySBML && ns.Level != 3 {
		return errors.Errorf("unsupported SBML level %d", c.Level)
	}
	if !ns.IsCore() && c.PackageVersion == 0 {
		return errors.Errorf("package %s needs a package version", c.Package)
	}
	return nil
}

// Namespaces returns the namespaces selected by the configuration.
func (c Config) Namespaces() xmlutil.Namespaces {
	switch c.Package {
	case "", xmlutil.PackageCore:
		return xmlutil.SBML(c.Level, c.Version)
	case xmlutil.PackageSedML:
		return xmlutil.SEDML(c.Level, c.Version)
	case xmlutil.PackageSBGN:
		return xmlutil.SBGN(c.Version)
	}
	return xmlutil.SBMLPackage(c.Package, c.Level, c.Version, c.PackageVersion)
}
