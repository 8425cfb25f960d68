package main

import (
	"fmt"
	"strconv"

	"github.com/andaru/sbmlbind/config"
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes [CODE...]",
	Short: "Print diagnostic table entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := lookupCodes(args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if cfg.Format != config.FormatText {
			return encode(w, entries)
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.Code, e.Package, e.Severity, e.Category, e.ShortMessage)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

// lookupCodes returns the entries of the codes args, or every entry.
func lookupCodes(args []string) ([]sbmlerr.Entry, error) {
	if len(args) == 0 {
		return sbmlerr.Entries(), nil
	}
	entries := make([]sbmlerr.Entry, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "code %q", arg)
		}
		e, ok := sbmlerr.Lookup(sbmlerr.Code(n))
		if !ok {
			return nil, errors.Errorf("unknown code %d", n)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
