package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/paper"
	"github.com/itsmostafa/papersum/internal/pdf"
	"github.com/itsmostafa/papersum/internal/summarize"
)

var (
	detectHeaders     []string
	detectNoNumbering bool
)

var detectCmd = &cobra.Command{
	Use:   "detect <pdf-path>",
	Short: "Report the page where the references section starts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := pdf.Extract(args[0])
		if err != nil {
			return err
		}

		pattern := detectPattern()
		summarize.FormatStatus(cmd.OutOrStdout(), describePattern(pattern))

		result := paper.NewDetector(pattern).Detect(doc)
		summarize.FormatBoundary(cmd.OutOrStdout(), result, doc.PageCount())
		if result.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result.PageIndex)
		}
		return nil
	},
}

// detectPattern builds the header pattern from the detect flags.
func detectPattern() *paper.HeaderPattern {
	names := paper.DefaultSectionNames
	if len(detectHeaders) > 0 {
		names = detectHeaders
	}
	return paper.NewHeaderPattern(names, !detectNoNumbering)
}

func describePattern(p *paper.HeaderPattern) string {
	msg := "Headers: " + strings.Join(p.Names(), ", ")
	if p.AllowsNumbering() {
		msg += " (numbered allowed)"
	}
	return msg
}

func init() {
	detectCmd.Flags().StringSliceVar(&detectHeaders, "header", nil, "Section header to look for (repeatable, default references, bibliography, works cited, literature cited)")
	detectCmd.Flags().BoolVar(&detectNoNumbering, "no-numbering", false, "Do not accept a leading section number")
	rootCmd.AddCommand(detectCmd)
}
