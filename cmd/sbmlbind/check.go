package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/andaru/sbmlbind/config"
	"github.com/andaru/sbmlbind/document"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkResult is the outcome of reading one file.
type checkResult struct {
	File        string           `json:"file" yaml:"file"`
	Element     string           `json:"element,omitempty" yaml:"element,omitempty"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
	Diagnostics []*sbmlerr.Error `json:"diagnostics" yaml:"diagnostics"`
}

func (r checkResult) failed() bool {
	if r.Error != "" {
		return true
	}
	for _, d := range r.Diagnostics {
		if d.IsSevere() {
			return true
		}
	}
	return false
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Read documents and print their diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := checkFiles(cmd, args)
		if err := printResults(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		for _, r := range results {
			if r.failed() {
				return errDiagnostics
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkFiles reads files concurrently. Each result is stored at its file's
// index, so results are in argument order.
func checkFiles(cmd *cobra.Command, files []string) []checkResult {
	results := make([]checkResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	opts := readOptions()
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := checkResult{File: name}
			d, err := document.ReadFile(name, opts...)
			if err != nil {
				r.Error = err.Error()
			}
			if d != nil {
				r.Element = d.ElementName()
				r.Diagnostics = d.Log().Errors()
			}
			glog.V(1).Infof("checked %s: %d diagnostics", name, len(r.Diagnostics))
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		glog.Errorf("check: %v", err)
	}
	return results
}

func printResults(w io.Writer, results []checkResult) error {
	if cfg.Format != config.FormatText {
		return encode(w, results)
	}
	for _, r := range results {
		for _, d := range r.Diagnostics {
			fmt.Fprintf(w, "%s:%d:%d: %s [%s] %d: %s\n",
				r.File, d.Line, d.Column, d.Severity, d.Category, d.Code, message(d))
		}
		if r.Error != "" {
			fmt.Fprintf(w, "%s: %s\n", r.File, r.Error)
		}
	}
	return nil
}

func message(d *sbmlerr.Error) string {
	if d.Message != "" {
		return d.Message
	}
	return d.ShortMessage
}
