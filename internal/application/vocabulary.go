package application

import (
	"fmt"

	"github.com/gemspell/gemspell/internal/domain"
	"github.com/gemspell/gemspell/internal/domain/spell"
)

// BuildVocabularies assembles the session vocabularies eagerly: the word
// list behind the source port plus the configured extra entries. Failure
// here is fatal for the whole run; linting against an empty or half-built
// vocabulary would silently suppress every offense.
func BuildVocabularies(words domain.WordListSource, cfg domain.Config) (domain.Vocabularies, error) {
	names, err := words.GemNames()
	if err != nil {
		return domain.Vocabularies{}, fmt.Errorf("loading gem word list: %w", err)
	}
	names = append(names, cfg.ExtraGems...)

	deps := spell.New(names...)
	if deps.Len() == 0 {
		return domain.Vocabularies{}, fmt.Errorf("dependency vocabulary is empty")
	}

	sources := make([]string, 0, 1+len(cfg.ExtraSources))
	sources = append(sources, domain.DefaultSourceURI)
	for _, s := range cfg.ExtraSources {
		sources = append(sources, domain.NormalizeSourceURI(s))
	}

	return domain.Vocabularies{
		Dependencies: deps,
		Sources:      spell.New(sources...),
	}, nil
}
