package cmd

import (
	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/logger"
	"github.com/itsmostafa/papersum/internal/summarize"
)

var summarizeFlags = map[string]string{
	"dir":          "output_dir",
	"agent":        "agent",
	"model":        "model",
	"keep-trimmed": "keep_trimmed",
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <pdf-path|arxiv-url>",
	Short: "Summarize a paper excluding its references",
	Long: `Summarize a PDF paper, or an arXiv abstract/PDF link, excluding the references
section. The summary is written to <dir>/summary_<name>.md.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, summarizeFlags)
		if err != nil {
			return err
		}

		log := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
		s, err := summarize.New(cfg, cmd.OutOrStdout(), log)
		if err != nil {
			return err
		}

		_, err = s.Run(cmd.Context(), args[0])
		return err
	},
}

func init() {
	summarizeCmd.Flags().String("dir", "", "Output directory (default ~/Documents/papers/summaries/)")
	summarizeCmd.Flags().String("agent", "", "Agent CLI to use (gemini, claude, codex; default gemini)")
	summarizeCmd.Flags().String("model", "", "Model passed to the agent (default depends on agent, gemini-2.5-flash for gemini)")
	summarizeCmd.Flags().Bool("keep-trimmed", false, "Save the trimmed PDF next to the summary")

	rootCmd.AddCommand(summarizeCmd)
}
