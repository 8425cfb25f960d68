package main

import (
	"fmt"

	"github.com/andaru/sbmlbind/document"
	"github.com/spf13/cobra"
)

var roundtripIndent string

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip FILE",
	Short: "Read a document and write it to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := document.ReadFile(args[0], readOptions()...)
		if err != nil {
			return err
		}
		if n := d.Log().Len(); n > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d diagnostics\n", args[0], n)
		}
		var opts []document.Option
		if roundtripIndent != "" {
			opts = append(opts, document.WithIndent(roundtripIndent))
		}
		return d.Write(cmd.OutOrStdout(), opts...)
	},
}

func init() {
	roundtripCmd.Flags().StringVar(&roundtripIndent, "indent", "", "indent output by this string per level")
	rootCmd.AddCommand(roundtripCmd)
}
