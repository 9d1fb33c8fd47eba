package bundler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gemspell/gemspell/internal/domain"
)

// Evaluator implements domain.ManifestEvaluator for Gemfiles. It reads
// the declarative subset: global source calls, gem declarations with
// their options, and block forms such as group or source do...end.
// Ruby beyond that subset is skipped, never executed.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

// Evaluate parses the manifest at path into its declared dependency
// names and source URIs, in declaration order. Source URIs include
// per-gem source: options and are normalized to the trailing-slash
// remote form, deduplicated on first appearance.
func (e *Evaluator) Evaluate(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(path, string(data))
}

func parse(path, content string) (*domain.Manifest, error) {
	m := &domain.Manifest{Path: path}
	seen := make(map[string]bool)
	addSource := func(uri string) {
		uri = domain.NormalizeSourceURI(uri)
		if !seen[uri] {
			seen[uri] = true
			m.Sources = append(m.Sources, uri)
		}
	}

	depth := 0
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		keyword, rest := splitKeyword(line)
		switch keyword {
		case "source":
			uri, err := firstStringArg(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: source %w", i+1, err)
			}
			addSource(uri)
			if opensBlock(line) {
				depth++
			}

		case "gem":
			name, err := firstStringArg(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: gem %w", i+1, err)
			}
			m.Dependencies = append(m.Dependencies, name)
			if uri, ok := sourceOption(rest); ok {
				addSource(uri)
			}

		case "group", "platforms", "platform", "install_if":
			if opensBlock(line) {
				depth++
			}

		case "if", "unless", "case", "begin", "while", "until", "def", "class", "module":
			depth++

		case "end":
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("line %d: unexpected end", i+1)
			}

		default:
			// Unrecognized Ruby is fine as long as its blocks balance.
			if opensBlock(line) {
				depth++
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unbalanced blocks: %d missing end", depth)
	}
	return m, nil
}

// stripComment drops a trailing # comment, leaving # inside string
// literals alone.
func stripComment(line string) string {
	inSingle, inDouble := false, false
	for i, r := range line {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return line[:i]
			}
		}
	}
	return line
}

// splitKeyword separates the leading word of a statement from its
// arguments, tolerating the parenthesized call form.
func splitKeyword(line string) (string, string) {
	idx := strings.IndexAny(line, " \t(")
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimLeft(line[idx:], " \t(")
}

// firstStringArg extracts the leading quoted literal of an argument
// list. Declarations whose first argument is not a string literal fail:
// the linter cannot know what a variable or expression resolves to.
func firstStringArg(rest string) (string, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", errors.New("declaration is missing its argument")
	}
	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return "", fmt.Errorf("argument %q is not a string literal", firstToken(rest))
	}
	end := strings.IndexByte(rest[1:], quote)
	if end < 0 {
		return "", errors.New("argument has an unterminated string")
	}
	val := rest[1 : 1+end]
	if val == "" {
		return "", errors.New("argument is an empty string")
	}
	return val, nil
}

func firstToken(s string) string {
	if idx := strings.IndexAny(s, " \t,)"); idx >= 0 {
		return s[:idx]
	}
	return s
}

// sourceOption finds a per-gem source: "uri" (or :source => "uri")
// option in the argument list. Options that do not parse are ignored;
// only the primary argument decides whether a declaration is valid.
func sourceOption(rest string) (string, bool) {
	for _, marker := range []string{"source:", ":source =>", ":source=>"} {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			continue
		}
		after := strings.TrimSpace(rest[idx+len(marker):])
		if after == "" || (after[0] != '"' && after[0] != '\'') {
			continue
		}
		end := strings.IndexByte(after[1:], after[0])
		if end < 1 {
			continue
		}
		return after[1 : 1+end], true
	}
	return "", false
}

// opensBlock reports whether a statement opens a do...end block.
func opensBlock(line string) bool {
	return line == "do" || strings.HasSuffix(line, " do") || strings.Contains(line, " do |")
}
