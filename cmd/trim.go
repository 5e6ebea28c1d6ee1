package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/paper"
	"github.com/itsmostafa/papersum/internal/pdf"
	"github.com/itsmostafa/papersum/internal/summarize"
)

var trimOutput string

var trimCmd = &cobra.Command{
	Use:   "trim <pdf-path>",
	Short: "Write a copy of a PDF without its references section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		doc, err := pdf.Extract(src)
		if err != nil {
			return err
		}

		body, result, err := paper.Body(doc)
		if err != nil {
			return err
		}
		summarize.FormatBoundary(cmd.OutOrStdout(), result, doc.PageCount())
		if body == doc {
			return nil
		}

		out := trimOutput
		if out == "" {
			out = strings.TrimSuffix(src, filepath.Ext(src)) + "_body.pdf"
		}
		if err := pdf.WritePrefix(src, out, body.PageCount()); err != nil {
			return err
		}
		written, err := pdf.PageCount(out)
		if err != nil {
			return err
		}
		if written != body.PageCount() {
			return fmt.Errorf("wrote %d pages to %s, expected %d", written, out, body.PageCount())
		}
		summarize.FormatStatus(cmd.OutOrStdout(), fmt.Sprintf("Wrote %d of %d pages to %s", written, doc.PageCount(), out))
		return nil
	},
}

func init() {
	trimCmd.Flags().StringVarP(&trimOutput, "output", "o", "", "Output path (default <input>_body.pdf)")
	rootCmd.AddCommand(trimCmd)
}
