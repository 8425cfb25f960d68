package main

import (
	"encoding/json"
	"flag"
	"io"
	"strconv"

	"github.com/andaru/sbmlbind/config"
	"github.com/andaru/sbmlbind/document"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	// element classes
	_ "github.com/andaru/sbmlbind/distrib"
	_ "github.com/andaru/sbmlbind/fbc"
	_ "github.com/andaru/sbmlbind/render"
	_ "github.com/andaru/sbmlbind/sbgn"
	_ "github.com/andaru/sbmlbind/sedml"
	_ "github.com/andaru/sbmlbind/testpkg"
)

// errDiagnostics is returned by commands that printed severe diagnostics.
var errDiagnostics = errors.New("documents have errors")

var (
	configFile string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "sbmlbind",
	Short:         "Read, check and write SBML-family documents",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "TOML configuration file")
	pf.StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json or yaml")
	pf.UintVar(&cfg.Level, "level", cfg.Level, "level of unqualified document elements")
	pf.UintVar(&cfg.Version, "version", cfg.Version, "version of unqualified document elements")
	pf.StringVar(&cfg.Package, "package", cfg.Package, "package of unqualified document elements")
	pf.UintVar(&cfg.PackageVersion, "package-version", cfg.PackageVersion, "package version of unqualified document elements")
	pf.AddGoFlagSet(flag.CommandLine)
}

// loadConfig applies the configuration file, then any flags given on the
// command line over it.
func loadConfig(cmd *cobra.Command) error {
	if configFile != "" {
		fromFile, err := config.Load(configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("format") {
			cfg.Format = fromFile.Format
		}
		if !flags.Changed("level") {
			cfg.Level = fromFile.Level
		}
		if !flags.Changed("version") {
			cfg.Version = fromFile.Version
		}
		if !flags.Changed("package") {
			cfg.Package = fromFile.Package
		}
		if !flags.Changed("package-version") {
			cfg.PackageVersion = fromFile.PackageVersion
		}
		if !flags.Changed("v") && fromFile.Verbosity > 0 {
			if err := flag.Set("v", strconv.Itoa(fromFile.Verbosity)); err != nil {
				return errors.WithStack(err)
			}
		}
	}
	glog.V(1).Infof("configuration: %+v", cfg)
	return cfg.Validate()
}

func readOptions() []document.Option {
	return []document.Option{document.WithNamespaces(cfg.Namespaces())}
}

// encode writes v to w as JSON or YAML, per the configured format.
func encode(w io.Writer, v interface{}) error {
	if cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.WithStack(enc.Encode(v))
}
