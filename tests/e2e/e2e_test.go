package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "gemspell-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "gemspell")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/gemspell")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/manifests", name))
	return abs
}

func cleanupRuns(name string) {
	_ = os.RemoveAll(filepath.Join(fixturePath(name), ".gemspell"))
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

type lintJSON struct {
	Pass      bool `json:"pass"`
	Checked   int  `json:"checked"`
	Manifests []struct {
		Path         string `json:"path"`
		Dependencies int    `json:"dependencies"`
		Sources      int    `json:"sources"`
		Offenses     int    `json:"offenses"`
	} `json:"manifests"`
	Offenses []struct {
		Kind        string   `json:"kind"`
		Path        string   `json:"path"`
		Name        string   `json:"name"`
		URI         string   `json:"uri"`
		Suggestions []string `json:"suggestions"`
		Message     string   `json:"message"`
	} `json:"offenses"`
}

func lintFixture(t *testing.T, name string, extra ...string) (lintJSON, int) {
	t.Helper()
	args := append([]string{"lint", fixturePath(name), "--json"}, extra...)
	out, code := run(t, args...)

	// CombinedOutput interleaves the stderr summary line; the JSON
	// document starts at the first brace and the decoder stops at its end.
	idx := strings.Index(out, "{")
	require.GreaterOrEqual(t, idx, 0, "no JSON in output: %s", out)

	var result lintJSON
	dec := json.NewDecoder(strings.NewReader(out[idx:]))
	require.NoError(t, dec.Decode(&result), "output should be valid JSON: %s", out)
	return result, code
}

// --- Lint Tests ---

func TestE2E_LintCleanManifest(t *testing.T) {
	defer cleanupRuns("clean")

	out, code := run(t, "lint", fixturePath("clean"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "pass")
}

func TestE2E_LintMisspelledGem(t *testing.T) {
	defer cleanupRuns("typo")

	out, code := run(t, "lint", fixturePath("typo"))
	assert.Equal(t, 1, code, "offenses should exit non-zero")
	assert.Contains(t, out, `gem "sqlte3" is possibly misspelled, did you mean "sqlite3"?`)
}

func TestE2E_LintUnmodifiedSourceNotFlagged(t *testing.T) {
	defer cleanupRuns("typo")

	result, code := lintFixture(t, "typo")
	assert.Equal(t, 1, code)
	require.Len(t, result.Offenses, 1, "the canonical source must not be flagged")
	assert.Equal(t, "misspelled_dependency", result.Offenses[0].Kind)
	assert.Equal(t, "sqlte3", result.Offenses[0].Name)
	assert.Equal(t, []string{"sqlite3"}, result.Offenses[0].Suggestions)
}

func TestE2E_LintMisspelledSource(t *testing.T) {
	defer cleanupRuns("sources")

	result, code := lintFixture(t, "sources")
	assert.Equal(t, 1, code)
	require.Len(t, result.Offenses, 1)
	assert.Equal(t, "misspelled_source", result.Offenses[0].Kind)
	assert.Equal(t, "https://rubygemsz.org/", result.Offenses[0].URI)
	assert.Equal(t, []string{"https://rubygems.org/"}, result.Offenses[0].Suggestions)
}

func TestE2E_LintInvalidManifest(t *testing.T) {
	defer cleanupRuns("invalid")

	result, code := lintFixture(t, "invalid")
	assert.Equal(t, 1, code)
	require.Len(t, result.Offenses, 1, "an unevaluable manifest yields exactly one offense")
	assert.Equal(t, "invalid_manifest", result.Offenses[0].Kind)
	assert.Contains(t, result.Offenses[0].Message, "manifest could not be evaluated")
}

func TestE2E_LintMultipleManifestsInPathOrder(t *testing.T) {
	defer cleanupRuns("multi")

	result, code := lintFixture(t, "multi")
	assert.Equal(t, 1, code)
	assert.False(t, result.Pass)

	require.Len(t, result.Manifests, 3)
	assert.True(t, strings.HasSuffix(result.Manifests[0].Path, "Gemfile"))
	assert.True(t, strings.HasSuffix(result.Manifests[1].Path, filepath.Join("api", "Gemfile")))
	assert.True(t, strings.HasSuffix(result.Manifests[2].Path, filepath.Join("engines", "billing.gemfile")))

	require.Len(t, result.Offenses, 2)
	assert.Equal(t, "railz", result.Offenses[0].Name)
	assert.Equal(t, "nokogirl", result.Offenses[1].Name)
}

func TestE2E_LintParallelKeepsOrder(t *testing.T) {
	defer cleanupRuns("multi")

	sequential, _ := lintFixture(t, "multi", "--jobs", "1")
	parallel, _ := lintFixture(t, "multi", "--jobs", "4")
	assert.Equal(t, sequential, parallel)
}

// --- Other Commands ---

func TestE2E_Suggest(t *testing.T) {
	out, code := run(t, "suggest", "sqlte3")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "sqlite3")
}

func TestE2E_Vocab(t *testing.T) {
	out, code := run(t, "vocab")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "dependencies")
}

func TestE2E_History(t *testing.T) {
	defer cleanupRuns("clean")

	_, code := run(t, "lint", fixturePath("clean"))
	require.Equal(t, 0, code)

	out, code := run(t, "history", fixturePath("clean"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Lint History")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "gemspell")
}
