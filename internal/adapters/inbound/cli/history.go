package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemspell/gemspell/internal/adapters/outbound/history"
	"github.com/gemspell/gemspell/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show recorded lint runs",
		Long:  "Show the lint runs recorded under the project's .gemspell directory, oldest first.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			entries, err := history.New().Load(dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N runs")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the history as JSON")

	return cmd
}
