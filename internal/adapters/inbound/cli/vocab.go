package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gemspell/gemspell/internal/adapters/outbound/tui"
	"github.com/gemspell/gemspell/internal/application"
)

func newVocabCmd() *cobra.Command {
	var (
		jsonOutput bool
		words      bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the loaded vocabularies",
		Long:  "Show the vocabularies the linter would check against, including extra entries from the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile, ".")
			if err != nil {
				return err
			}

			vocabs, err := application.BuildVocabularies(wordSource(cfg), cfg)
			if err != nil {
				return err
			}

			if jsonOutput {
				report := struct {
					Dependencies int      `json:"dependencies"`
					Sources      int      `json:"sources"`
					Words        []string `json:"words,omitempty"`
					SourceURIs   []string `json:"source_uris,omitempty"`
				}{
					Dependencies: vocabs.Dependencies.Len(),
					Sources:      vocabs.Sources.Len(),
				}
				if words {
					report.Words = vocabs.Dependencies.Words()
					report.SourceURIs = vocabs.Sources.Words()
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if words {
				for _, w := range vocabs.Dependencies.Words() {
					fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}

			tui.WriteVocabTable(cmd.OutOrStdout(), vocabs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the vocabularies as JSON")
	cmd.Flags().BoolVar(&words, "words", false, "Print every dependency word, one per line")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a gemspell config file")

	return cmd
}
