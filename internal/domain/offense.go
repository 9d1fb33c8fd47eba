package domain

import (
	"fmt"
	"strings"
)

// Offense is the closed set of findings a lint run can produce. Exactly
// three kinds exist. Consumers switch over the concrete types and panic
// on anything else, so a new kind cannot slip past a consumption site
// unnoticed.
type Offense interface {
	// Path returns the manifest the offense belongs to.
	Path() string
	// Message returns the human-readable description without styling.
	Message() string

	offense()
}

// MisspelledDependency reports a declared gem name that is close to, but
// not exactly, a known-good name. Suggestions are ranked closest first
// and capped by the session's max_suggestions setting.
type MisspelledDependency struct {
	Manifest    string
	Name        string
	Suggestions []string
}

func (o MisspelledDependency) Path() string { return o.Manifest }

func (o MisspelledDependency) Message() string {
	return fmt.Sprintf("gem %q is possibly misspelled, did you mean %s?", o.Name, quoteJoin(o.Suggestions))
}

func (MisspelledDependency) offense() {}

// MisspelledSource reports a declared source URI that is close to, but
// not exactly, a known-good remote. Suggestions are ranked and uncapped.
type MisspelledSource struct {
	Manifest    string
	URI         string
	Suggestions []string
}

func (o MisspelledSource) Path() string { return o.Manifest }

func (o MisspelledSource) Message() string {
	return fmt.Sprintf("source %q is possibly misspelled, did you mean %s?", o.URI, quoteJoin(o.Suggestions))
}

func (MisspelledSource) offense() {}

// InvalidManifest reports a manifest that could not be evaluated at all.
// Reason carries the evaluation error for display.
type InvalidManifest struct {
	Manifest string
	Reason   string
}

func (o InvalidManifest) Path() string { return o.Manifest }

func (o InvalidManifest) Message() string {
	if o.Reason == "" {
		return "manifest could not be evaluated"
	}
	return "manifest could not be evaluated: " + o.Reason
}

func (InvalidManifest) offense() {}

// Offense kind names used in serialized records.
const (
	KindMisspelledDependency = "misspelled_dependency"
	KindMisspelledSource     = "misspelled_source"
	KindInvalidManifest      = "invalid_manifest"
)

// OffenseRecord is the flat wire form of an Offense, shared by JSON
// output, the MCP tools and the history store.
type OffenseRecord struct {
	Kind        string   `json:"kind"`
	Path        string   `json:"path"`
	Name        string   `json:"name,omitempty"`
	URI         string   `json:"uri,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Message     string   `json:"message"`
}

// RecordOf flattens an offense for serialization.
func RecordOf(o Offense) OffenseRecord {
	switch o := o.(type) {
	case MisspelledDependency:
		return OffenseRecord{
			Kind:        KindMisspelledDependency,
			Path:        o.Manifest,
			Name:        o.Name,
			Suggestions: o.Suggestions,
			Message:     o.Message(),
		}
	case MisspelledSource:
		return OffenseRecord{
			Kind:        KindMisspelledSource,
			Path:        o.Manifest,
			URI:         o.URI,
			Suggestions: o.Suggestions,
			Message:     o.Message(),
		}
	case InvalidManifest:
		return OffenseRecord{
			Kind:    KindInvalidManifest,
			Path:    o.Manifest,
			Message: o.Message(),
		}
	default:
		panic(fmt.Sprintf("unhandled offense kind %T", o))
	}
}

func quoteJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, ", ")
}
