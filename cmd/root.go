package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/certquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "certquiz",
	Short: "Terminal quiz for certification practice",
	Long:  "CertQuiz: answer multiple-choice certification questions from a single question bank in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path or URL of the question bank (overrides CERTQUIZ_BANK env var)")
	rootCmd.PersistentFlags().Bool("no-feedback", false, "Start with instant feedback off (overrides CERTQUIZ_FEEDBACK env var)")
	rootCmd.PersistentFlags().String("event-log", "", "Also export quiz events as JSON lines to this file (overrides CERTQUIZ_EVENT_LOG env var)")
	rootCmd.PersistentFlags().String("event-db", "", "Path to the SQLite event store (overrides CERTQUIZ_EVENT_DB env var)")
	rootCmd.PersistentFlags().Bool("no-event-db", false, "Do not record quiz events (overrides CERTQUIZ_RECORD_EVENTS env var)")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the configuration with flags taking priority over
// environment variables, then defaults.
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	flags := cmd.Flags()

	if p, _ := flags.GetString("bank"); p != "" {
		cfg.BankSource = p
	}
	if off, _ := flags.GetBool("no-feedback"); off {
		cfg.InstantFeedback = false
	}
	if p, _ := flags.GetString("event-log"); p != "" {
		cfg.EventLogPath = p
	}
	if p, _ := flags.GetString("event-db"); p != "" {
		cfg.EventDBPath = p
	}
	if off, _ := flags.GetBool("no-event-db"); off {
		cfg.RecordEvents = false
	}
	return cfg
}
