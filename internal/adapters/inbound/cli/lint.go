package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gemspell/gemspell/internal/adapters/outbound/bundler"
	"github.com/gemspell/gemspell/internal/adapters/outbound/config"
	"github.com/gemspell/gemspell/internal/adapters/outbound/gitinfo"
	"github.com/gemspell/gemspell/internal/adapters/outbound/history"
	"github.com/gemspell/gemspell/internal/adapters/outbound/scanner"
	"github.com/gemspell/gemspell/internal/adapters/outbound/tui"
	"github.com/gemspell/gemspell/internal/adapters/outbound/wordlist"
	"github.com/gemspell/gemspell/internal/application"
	"github.com/gemspell/gemspell/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		jsonOutput  bool
		summary     bool
		quiet       bool
		verbose     bool
		jobs        int
		maxDistance int
		configFile  string
	)

	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Spell-check Bundler manifests",
		Long:  "Check every gem and source declaration in the given manifests (or all manifests under the given directories) against the known-good vocabularies. Exits non-zero when offenses are found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, rootDir, err := resolvePaths(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No manifests found.")
				return nil
			}

			cfg, err := loadConfig(configFile, rootDir)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("max-distance") {
				cfg.MaxDistance = maxDistance
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.New(slog.DiscardHandler)
			if verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			vocabs, err := application.BuildVocabularies(wordSource(cfg), cfg)
			if err != nil {
				return err
			}
			logger.Debug("vocabularies built",
				"dependencies", vocabs.Dependencies.Len(),
				"sources", vocabs.Sources.Len(),
			)

			var sink domain.ProgressSink = tui.Discard{}
			var progress *tui.Progress
			if !quiet && !jsonOutput && !summary {
				progress = tui.NewProgress(cmd.OutOrStdout())
				sink = progress
			}

			svc := application.NewLintService(bundler.New(), vocabs, cfg, sink, logger)
			result, err := svc.Lint(cmd.Context(), paths)
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}
			if progress != nil {
				progress.Finish()
			}

			// Record the run, with the commit hash if available
			entry := domain.RunEntry{
				Timestamp: time.Now().UTC(),
				Paths:     paths,
				Checked:   result.Checked(),
				Offenses:  len(result.Offenses),
				Pass:      result.Pass(),
			}
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(rootDir); err == nil {
				entry.Commit = hash
			}
			_ = history.New().Save(rootDir, entry) // best-effort

			switch {
			case jsonOutput:
				if err := renderLintJSON(cmd, result); err != nil {
					return err
				}
			case summary:
				tui.WriteSummaryTable(cmd.OutOrStdout(), result.Stats)
			case quiet:
				// offenses drive the exit code only
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(result))
			}

			if !result.Pass() {
				return fmt.Errorf("%d offense(s) found", len(result.Offenses))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&summary, "summary", false, "Output a per-manifest summary table")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output, report through the exit code")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Number of manifests to check in parallel")
	cmd.Flags().IntVar(&maxDistance, "max-distance", 0, "Maximum edit distance for suggestions (1-5)")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a gemspell config file")

	return cmd
}

// resolvePaths expands directory arguments into the manifests beneath them
// and passes file arguments through untouched. Unreadable file arguments
// stay in the list; the session reports them as invalid manifests instead
// of aborting the run. rootDir is where config and history live.
func resolvePaths(args []string) ([]string, string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	rootDir := "."
	if info, err := os.Stat(args[0]); err == nil {
		if info.IsDir() {
			rootDir = args[0]
		} else {
			rootDir = filepath.Dir(args[0])
		}
	}

	finder := scanner.New()
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			found, err := finder.FindManifests(arg)
			if err != nil {
				return nil, "", fmt.Errorf("scanning %s: %w", arg, err)
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, rootDir, nil
}

func loadConfig(configFile, rootDir string) (domain.Config, error) {
	loader := config.New()
	if configFile != "" {
		return loader.LoadFile(configFile)
	}
	return loader.Load(rootDir)
}

func wordSource(cfg domain.Config) *wordlist.Source {
	if cfg.Wordlist != "" {
		return wordlist.New(cfg.Wordlist)
	}
	return wordlist.New()
}

func renderLintJSON(cmd *cobra.Command, result *domain.LintResult) error {
	report := struct {
		Pass      bool                   `json:"pass"`
		Checked   int                    `json:"checked"`
		Manifests []domain.PathStat      `json:"manifests"`
		Offenses  []domain.OffenseRecord `json:"offenses"`
	}{
		Pass:      result.Pass(),
		Checked:   result.Checked(),
		Manifests: result.Stats,
		Offenses:  result.Records(),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
