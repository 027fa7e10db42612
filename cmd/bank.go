package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/certquiz/internal/bank"
	"github.com/abhisek/certquiz/internal/quiz"
)

// errInvalidBank makes `bank validate` exit non-zero after printing the
// issues itself.
var errInvalidBank = errors.New("question bank has errors")

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		qs, err := bank.Load(cmd.Context(), cfg.BankSource)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-12s  %-20s  %6s  %-10s  %s\n",
			"ID", "Domain", "Choose", "Answer", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, q := range qs {
			fmt.Fprintf(out, "%-12s  %-20s  %6d  %-10s  %s\n",
				truncate(q.ID.String(), 12), truncate(dash(q.Domain), 20), q.Required(),
				truncate(quiz.JoinLetters(quiz.Normalize(q.Answer)), 10), truncate(q.Question, 44))
		}

		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the bank against the schema and for unanswerable questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		qs, err := bank.Load(cmd.Context(), cfg.BankSource)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		issues := bank.Lint(qs)
		for _, is := range issues {
			fmt.Fprintln(out, is)
		}

		if bank.HasErrors(issues) {
			return errInvalidBank
		}
		fmt.Fprintf(out, "%s: %d questions, %d warnings\n", cfg.BankSource, len(qs), len(issues))
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
