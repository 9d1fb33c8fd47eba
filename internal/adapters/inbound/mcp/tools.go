package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gemspell/gemspell/internal/adapters/outbound/bundler"
	"github.com/gemspell/gemspell/internal/adapters/outbound/config"
	"github.com/gemspell/gemspell/internal/adapters/outbound/scanner"
	"github.com/gemspell/gemspell/internal/adapters/outbound/wordlist"
	"github.com/gemspell/gemspell/internal/application"
	"github.com/gemspell/gemspell/internal/domain"
	"github.com/gemspell/gemspell/internal/domain/spell"
)

// registerTools registers all gemspell MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. gemspell_lint
	s.AddTool(
		mcplib.NewTool("gemspell_lint",
			mcplib.WithDescription("Spell-check the Bundler manifests under the project path and return every offense as JSON"),
			mcplib.WithString("paths",
				mcplib.Description("Comma-separated manifest paths relative to the project root (default: every manifest found)"),
			),
			mcplib.WithNumber("max_distance",
				mcplib.Description("Maximum edit distance for suggestions (1-5)"),
			),
		),
		handleLint(projectPath),
	)

	// 2. gemspell_suggest
	s.AddTool(
		mcplib.NewTool("gemspell_suggest",
			mcplib.WithDescription("Rank the known-good spellings within edit distance of a gem name or source URI, closest first"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("The gem name or source URI to check"),
			),
			mcplib.WithBoolean("sources",
				mcplib.Description("Check against the source vocabulary instead of gem names"),
			),
			mcplib.WithNumber("max_distance",
				mcplib.Description("Maximum edit distance for suggestions (1-5)"),
			),
		),
		handleSuggest(projectPath),
	)
}

// newSession loads the project config and builds the session vocabularies.
func newSession(projectPath string) (domain.Config, domain.Vocabularies, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return domain.Config{}, domain.Vocabularies{}, fmt.Errorf("loading config: %w", err)
	}

	words := wordlist.New()
	if cfg.Wordlist != "" {
		words = wordlist.New(cfg.Wordlist)
	}

	vocabs, err := application.BuildVocabularies(words, cfg)
	if err != nil {
		return domain.Config{}, domain.Vocabularies{}, err
	}
	return cfg, vocabs, nil
}

func handleLint(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, vocabs, err := newSession(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		if md, ok := args["max_distance"].(float64); ok && md > 0 {
			cfg.MaxDistance = int(md)
			if err := cfg.Validate(); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		var paths []string
		if pathsStr, ok := args["paths"].(string); ok && pathsStr != "" {
			for _, p := range splitAndTrim(pathsStr) {
				paths = append(paths, filepath.Join(projectPath, p))
			}
		} else {
			paths, err = scanner.New().FindManifests(projectPath)
			if err != nil {
				return errorResult(fmt.Sprintf("scanning manifests: %v", err)), nil
			}
		}

		svc := application.NewLintService(bundler.New(), vocabs, cfg, nil, nil)
		result, err := svc.Lint(ctx, paths)
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}

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
		return jsonResult(report)
	}
}

func handleSuggest(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, vocabs, err := newSession(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		if md, ok := args["max_distance"].(float64); ok && md > 0 {
			cfg.MaxDistance = int(md)
			if err := cfg.Validate(); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		useSources, _ := args["sources"].(bool)
		vocab := vocabs.Dependencies
		query := name
		if useSources {
			vocab = vocabs.Sources
			query = domain.NormalizeSourceURI(name)
		}

		suggestions := spell.Suggest(vocab, query, cfg.MaxDistance)
		if suggestions == nil {
			suggestions = []string{}
		}

		report := struct {
			Query       string   `json:"query"`
			Exact       bool     `json:"exact"`
			Suggestions []string `json:"suggestions"`
		}{
			Query:       query,
			Exact:       vocab.Contains(query),
			Suggestions: suggestions,
		}
		return jsonResult(report)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
