package domain

import (
	"strings"

	"github.com/gemspell/gemspell/internal/domain/spell"
)

// DefaultSourceURI is the one source remote known to be good out of the
// box. The trailing slash matters: declared remotes are normalized to
// this form before comparison, so an unmodified declaration is an exact
// match and never offends.
const DefaultSourceURI = "https://rubygems.org/"

// Vocabularies bundles the two reference vocabularies a session lints
// against. Built once at session start and passed into constructors,
// never loaded lazily mid-run.
type Vocabularies struct {
	Dependencies spell.Vocabulary
	Sources      spell.Vocabulary
}

// NormalizeSourceURI puts a source remote into the trailing-slash form
// the source vocabulary uses. Both declared remotes and configured extra
// sources go through this before any comparison.
func NormalizeSourceURI(uri string) string {
	if uri == "" || strings.HasSuffix(uri, "/") {
		return uri
	}
	return uri + "/"
}
