package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/certquiz/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Summarize the recorded quiz events",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		st, err := openEventStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		counts, err := st.EventRepo().Counts(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		total := 0
		for _, kind := range store.EventKinds {
			fmt.Fprintf(out, "%-8s  %6d\n", kind, counts[kind])
			total += counts[kind]
		}
		fmt.Fprintf(out, "\n%d events\n", total)
		return nil
	},
}
