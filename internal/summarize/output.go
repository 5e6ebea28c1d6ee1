package summarize

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/papersum/internal/paper"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for fallbacks the user should notice
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the report box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)

	// headerBoxStyle for the header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// FormatHeader renders the run header
func FormatHeader(w io.Writer, input, agentName, model string) {
	content := fmt.Sprintf("%s %s\n%s %s  %s %s",
		dimStyle.Render("Paper:"), titleStyle.Render(input),
		dimStyle.Render("Agent:"), titleStyle.Render(agentName),
		dimStyle.Render("Model:"), model,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatBoundary renders the detection outcome for a document of total
// pages.
func FormatBoundary(w io.Writer, result paper.BoundaryResult, total int) {
	last, ok := result.CutIndex()
	if !ok {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(
			"References not found or start at page 0. Using original PDF (%d pages).", total)))
		return
	}
	fmt.Fprintf(w, "%s Found references at page %d. Extracting pages 0 to %d...\n",
		successStyle.Render("✓"), result.PageIndex, last)
}

// FormatStatus writes a dim progress line
func FormatStatus(w io.Writer, msg string) {
	fmt.Fprintln(w, dimStyle.Render(msg))
}

// FormatReport renders the final summary box
func FormatReport(w io.Writer, r *Report) {
	saved := 0
	if r.TokensBefore > 0 {
		saved = (r.TokensBefore - r.TokensAfter) * 100 / r.TokensBefore
	}

	line1 := fmt.Sprintf("%s %d of %d  %s %s",
		dimStyle.Render("Pages:"), r.PagesKept, r.PagesTotal,
		dimStyle.Render("References:"), r.Boundary.String(),
	)
	line2 := fmt.Sprintf("%s ~%s %s ~%s (%d%% saved)  %s %.1fs",
		dimStyle.Render("Tokens:"), formatNumber(r.TokensBefore),
		dimStyle.Render("->"), formatNumber(r.TokensAfter), saved,
		dimStyle.Render("Agent:"), r.AgentDuration.Seconds(),
	)
	line3 := fmt.Sprintf("%s %s", dimStyle.Render("Summary saved to:"), successStyle.Render(r.OutputPath))

	content := titleStyle.Render("Summary Complete") + "\n" + line1 + "\n" + line2 + "\n" + line3
	if r.TrimmedPath != "" {
		content += fmt.Sprintf("\n%s %s", dimStyle.Render("Trimmed PDF:"), r.TrimmedPath)
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}

// formatNumber adds commas to large numbers for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}
