package main

import (
	"fmt"
	"strings"

	"github.com/andaru/sbmlbind/config"
	"github.com/andaru/sbmlbind/schema"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type attrInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Core     bool     `json:"core,omitempty" yaml:"core,omitempty"`
	Default  string   `json:"default,omitempty" yaml:"default,omitempty"`
	Tokens   []string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

type childInfo struct {
	Name        string `json:"name" yaml:"name"`
	Cardinality string `json:"cardinality" yaml:"cardinality"`
}

type classInfo struct {
	Package    string      `json:"package" yaml:"package"`
	Name       string      `json:"name" yaml:"name"`
	TypeCode   int         `json:"type-code" yaml:"type-code"`
	Namespace  string      `json:"namespace" yaml:"namespace"`
	Expected   []string    `json:"expected" yaml:"expected"`
	Attributes []attrInfo  `json:"attributes" yaml:"attributes"`
	Children   []childInfo `json:"children,omitempty" yaml:"children,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe PACKAGE ELEMENT",
	Short: "Print the attributes and children of an element class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := schema.Lookup(args[0], args[1])
		if !ok {
			return errors.Errorf("no element %q in package %q", args[1], args[0])
		}
		info := describe(c)
		w := cmd.OutOrStdout()
		if cfg.Format != config.FormatText {
			return encode(w, info)
		}
		fmt.Fprintf(w, "%s:%s (type %d) at %s\n", info.Package, info.Name, info.TypeCode, info.Namespace)
		fmt.Fprintf(w, "  expected: %s\n", strings.Join(info.Expected, " "))
		for _, a := range info.Attributes {
			var flags []string
			if a.Required {
				flags = append(flags, "required")
			}
			if a.Core {
				flags = append(flags, "core")
			}
			if a.Default != "" {
				flags = append(flags, "default="+a.Default)
			}
			fmt.Fprintf(w, "  @%s %s %s", a.Name, a.Kind, strings.Join(flags, ","))
			if len(a.Tokens) > 0 {
				fmt.Fprintf(w, " {%s}", strings.Join(a.Tokens, "|"))
			}
			fmt.Fprintln(w)
		}
		for _, ch := range info.Children {
			fmt.Fprintf(w, "  <%s> %s\n", ch.Name, ch.Cardinality)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

// describe summarizes the bindings of c valid at the configured namespaces.
func describe(c *schema.Class) classInfo {
	ns := cfg.Namespaces()
	info := classInfo{
		Package:   c.Package,
		Name:      c.Name,
		TypeCode:  c.TypeCode,
		Namespace: ns.URI(),
		Expected:  c.ExpectedAttributes(ns),
	}
	for _, b := range c.AttributesAt(ns) {
		a := attrInfo{
			Name:     b.Name,
			Kind:     b.Kind.String(),
			Required: b.Required(),
			Core:     b.IsCoreAttribute(),
		}
		if d := b.Default(); d.IsValid() {
			a.Default = d.String()
		}
		if t := b.Enum(); t != nil {
			a.Tokens = t.Tokens()
		}
		info.Attributes = append(info.Attributes, a)
	}
	for _, b := range c.ChildrenAt(ns) {
		info.Children = append(info.Children, childInfo{Name: b.Name, Cardinality: b.Cardinality.String()})
	}
	return info
}
