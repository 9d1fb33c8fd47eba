package lint

import (
	"github.com/gemspell/gemspell/internal/domain"
	"github.com/gemspell/gemspell/internal/domain/spell"
)

// Generator turns evaluated manifests into offenses. It holds the
// vocabularies and limits for a whole session; both are fixed at
// construction so every manifest in a run is judged the same way.
type Generator struct {
	vocabs         domain.Vocabularies
	maxDistance    int
	maxSuggestions int
	progress       domain.ProgressSink
}

func NewGenerator(vocabs domain.Vocabularies, cfg domain.Config, progress domain.ProgressSink) *Generator {
	g := &Generator{
		vocabs:         vocabs,
		maxDistance:    cfg.MaxDistance,
		maxSuggestions: cfg.MaxSuggestions,
		progress:       progress,
	}
	if g.maxDistance <= 0 {
		g.maxDistance = spell.DefaultMaxDistance
	}
	if g.maxSuggestions <= 0 {
		g.maxSuggestions = domain.DefaultMaxSuggestions
	}
	if g.progress == nil {
		g.progress = noSink{}
	}
	return g
}

// OffensesFor returns the offenses for one manifest. A failed evaluation
// yields exactly one InvalidManifest and nothing else. Otherwise every
// dependency is checked in declaration order, then every source, and each
// check emits one progress event whether or not it offended.
func (g *Generator) OffensesFor(path string, m *domain.Manifest, evalErr error) []domain.Offense {
	if evalErr != nil {
		return []domain.Offense{domain.InvalidManifest{Manifest: path, Reason: evalErr.Error()}}
	}

	var offenses []domain.Offense

	for _, name := range m.Dependencies {
		suggestions := spell.Suggest(g.vocabs.Dependencies, name, g.maxDistance)
		if len(suggestions) > 0 {
			if len(suggestions) > g.maxSuggestions {
				suggestions = suggestions[:g.maxSuggestions]
			}
			offenses = append(offenses, domain.MisspelledDependency{
				Manifest:    path,
				Name:        name,
				Suggestions: suggestions,
			})
		}
		g.progress.Checked(domain.CheckEvent{
			Path:  path,
			Kind:  domain.DeclDependency,
			Value: name,
			OK:    len(suggestions) == 0,
		})
	}

	for _, uri := range m.Sources {
		suggestions := spell.Suggest(g.vocabs.Sources, uri, g.maxDistance)
		if len(suggestions) > 0 {
			offenses = append(offenses, domain.MisspelledSource{
				Manifest:    path,
				URI:         uri,
				Suggestions: suggestions,
			})
		}
		g.progress.Checked(domain.CheckEvent{
			Path:  path,
			Kind:  domain.DeclSource,
			Value: uri,
			OK:    len(suggestions) == 0,
		})
	}

	return offenses
}

type noSink struct{}

func (noSink) Checked(domain.CheckEvent) {}
