package main

import (
	"fmt"

	"github.com/andaru/sbmlbind/config"
	"github.com/andaru/sbmlbind/document"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query FILE XPATH",
	Short: "Evaluate an XPath expression against a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := document.ReadFile(args[0], readOptions()...)
		if err != nil {
			return err
		}
		v, err := d.Evaluate(args[1])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if cfg.Format != config.FormatText {
			return encode(w, v)
		}
		if values, ok := v.([]string); ok {
			for _, s := range values {
				fmt.Fprintln(w, s)
			}
			return nil
		}
		fmt.Fprintln(w, v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
