package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/config"
	"github.com/itsmostafa/papersum/internal/version"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "papersum",
	Short: "Summarize academic papers without their references",
	Long: `papersum finds the references section of an academic PDF, strips it to cut
token cost and noise, and asks an agent CLI (gemini, claude or codex) for a
structured Markdown summary of what remains.

Settings can also be given as PAPERSUM_* environment variables, for example
PAPERSUM_OUTPUT_DIR or PAPERSUM_AGENT.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("papersum %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadConfig merges defaults, environment and any flags the user set.
func loadConfig(cmd *cobra.Command, flagKeys map[string]string) (*config.Config, error) {
	overrides := make(map[string]any)
	if logLevel != "" {
		overrides["log_level"] = logLevel
	}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		overrides[key] = f.Value.String()
	}
	return config.Load(overrides)
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
