package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemspell/gemspell/internal/application"
	"github.com/gemspell/gemspell/internal/domain"
	"github.com/gemspell/gemspell/internal/domain/spell"
)

func newSuggestCmd() *cobra.Command {
	var (
		sources     bool
		jsonOutput  bool
		maxDistance int
		configFile  string
	)

	cmd := &cobra.Command{
		Use:   "suggest <name>",
		Short: "Suggest known-good spellings for a gem name or source URI",
		Long:  "Rank the vocabulary entries within edit distance of the given name, closest first. An exact match yields no suggestions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			cfg, err := loadConfig(configFile, ".")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-distance") {
				cfg.MaxDistance = maxDistance
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			vocabs, err := application.BuildVocabularies(wordSource(cfg), cfg)
			if err != nil {
				return err
			}

			vocab := vocabs.Dependencies
			if sources {
				vocab = vocabs.Sources
				query = domain.NormalizeSourceURI(query)
			}

			suggestions := spell.Suggest(vocab, query, cfg.MaxDistance)

			if jsonOutput {
				report := struct {
					Query       string   `json:"query"`
					Exact       bool     `json:"exact"`
					Suggestions []string `json:"suggestions"`
				}{
					Query:       query,
					Exact:       vocab.Contains(query),
					Suggestions: suggestions,
				}
				if report.Suggestions == nil {
					report.Suggestions = []string{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			switch {
			case vocab.Contains(query):
				fmt.Fprintf(cmd.OutOrStdout(), "%q is spelled correctly\n", query)
			case len(suggestions) == 0:
				fmt.Fprintf(cmd.OutOrStdout(), "no suggestions for %q within distance %d\n", query, cfg.MaxDistance)
			default:
				for _, s := range suggestions {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sources, "sources", false, "Check against the source vocabulary instead of gem names")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().IntVar(&maxDistance, "max-distance", 0, "Maximum edit distance for suggestions (1-5)")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a gemspell config file")

	return cmd
}
