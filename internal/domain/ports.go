package domain

// ManifestEvaluator turns a manifest file into its declared dependency
// names and source URIs. An error means the manifest could not be
// evaluated; the session maps that to a single InvalidManifest offense
// and keeps going.
type ManifestEvaluator interface {
	Evaluate(path string) (*Manifest, error)
}

// WordListSource supplies the known-good gem names behind the dependency
// vocabulary.
type WordListSource interface {
	GemNames() ([]string, error)
}

// ManifestFinder discovers manifest files under a directory, in a
// deterministic order.
type ManifestFinder interface {
	FindManifests(root string) ([]string, error)
}

// DeclKind tags a progress event with the kind of declaration checked.
type DeclKind string

const (
	DeclDependency DeclKind = "dependency"
	DeclSource     DeclKind = "source"
)

// CheckEvent describes one declaration check: the manifest it came from,
// what was checked, and whether it passed.
type CheckEvent struct {
	Path  string
	Kind  DeclKind
	Value string
	OK    bool
}

// ProgressSink receives exactly one event per declaration checked.
// Implementations must be safe for concurrent use; events from different
// manifests may interleave when paths are linted in parallel.
type ProgressSink interface {
	Checked(ev CheckEvent)
}

// RunHistory persists lint run summaries under a project directory.
type RunHistory interface {
	Save(dir string, entry RunEntry) error
	Load(dir string) ([]RunEntry, error)
}

// GitInfo resolves version-control metadata for history entries.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
