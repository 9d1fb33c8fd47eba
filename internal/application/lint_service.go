package application

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gemspell/gemspell/internal/domain"
	"github.com/gemspell/gemspell/internal/domain/lint"
)

// LintService orchestrates a session:
// evaluate each manifest -> generate offenses -> reassemble in path order.
type LintService struct {
	evaluator domain.ManifestEvaluator
	gen       *lint.Generator
	jobs      int
	logger    *slog.Logger
}

// NewLintService wires a session. The vocabularies must already be built.
// progress may be nil when no feedback is wanted; logger may be nil.
func NewLintService(
	evaluator domain.ManifestEvaluator,
	vocabs domain.Vocabularies,
	cfg domain.Config,
	progress domain.ProgressSink,
	logger *slog.Logger,
) *LintService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	jobs := cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}
	return &LintService{
		evaluator: evaluator,
		gen:       lint.NewGenerator(vocabs, cfg, progress),
		jobs:      jobs,
		logger:    logger,
	}
}

// pathResult carries one manifest's contribution before reassembly.
type pathResult struct {
	offenses []domain.Offense
	stat     domain.PathStat
}

// Lint checks every path in the order given and aggregates the offenses.
// A manifest that fails to evaluate contributes its single offense and
// the session keeps going; only context cancellation aborts. With jobs
// above one, paths are checked concurrently and results are written back
// by index, so the aggregate matches a sequential run.
func (s *LintService) Lint(ctx context.Context, paths []string) (*domain.LintResult, error) {
	start := time.Now()
	results := make([]pathResult, len(paths))

	if s.jobs == 1 || len(paths) < 2 {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = s.lintPath(path)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(s.jobs, len(paths)))
		for i, path := range paths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = s.lintPath(path)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	result := &domain.LintResult{}
	for _, r := range results {
		result.Offenses = append(result.Offenses, r.offenses...)
		result.Stats = append(result.Stats, r.stat)
	}

	s.logger.Debug("lint finished",
		"paths", len(paths),
		"checked", result.Checked(),
		"offenses", len(result.Offenses),
		"elapsed", time.Since(start),
	)
	return result, nil
}

func (s *LintService) lintPath(path string) pathResult {
	m, err := s.evaluator.Evaluate(path)
	if err != nil {
		s.logger.Debug("manifest evaluation failed", "path", path, "error", err)
	}
	offenses := s.gen.OffensesFor(path, m, err)

	stat := domain.PathStat{Path: path, Offenses: len(offenses)}
	if m != nil {
		stat.Dependencies = len(m.Dependencies)
		stat.Sources = len(m.Sources)
	}
	return pathResult{offenses: offenses, stat: stat}
}
