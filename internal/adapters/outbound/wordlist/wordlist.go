package wordlist

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed gems.txt
var bundled string

// Source supplies the dependency vocabulary: the gem names bundled into
// the binary plus any extra word files given at construction.
type Source struct {
	extraFiles []string
}

// New creates a word list source. Extra files are newline-delimited, one
// name per line; blank lines and # comments are skipped.
func New(extraFiles ...string) *Source {
	return &Source{extraFiles: extraFiles}
}

// GemNames returns the known-good names in list order: the bundled list
// first, then each extra file in the order given.
func (s *Source) GemNames() ([]string, error) {
	names := parseWords(bundled)
	if len(names) == 0 {
		return nil, errors.New("bundled gem word list is empty")
	}

	for _, path := range s.extraFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading word list %s: %w", path, err)
		}
		names = append(names, parseWords(string(data))...)
	}
	return names, nil
}

func parseWords(content string) []string {
	var words []string
	for _, line := range strings.Split(content, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	return words
}
