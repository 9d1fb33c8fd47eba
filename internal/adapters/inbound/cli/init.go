package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gemspell/gemspell/internal/adapters/outbound/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .gemspell.yaml configuration file",
		Long:  "Create a .gemspell.yaml with the default settings and commented examples for the optional ones.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(configTemplate), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .gemspell.yaml")

	return cmd
}

const configTemplate = `# gemspell configuration

# Maximum edit distance for suggestions (1-5).
max_distance: 2

# Maximum suggestions per misspelled gem.
max_suggestions: 5

# Manifests are checked in parallel when above 1.
jobs: 1

# Gems that are spelled correctly even though the word list
# does not know them, e.g. private gems.
# extra_gems:
#   - our-internal-gem

# Additional known-good source URIs.
# extra_sources:
#   - https://gems.example.com

# A newline-separated word list merged into the gem vocabulary.
# wordlist: .gemspell-words.txt
`
