package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gemspell/gemspell/internal/adapters/outbound/bundler"
	"github.com/gemspell/gemspell/internal/adapters/outbound/config"
	"github.com/gemspell/gemspell/internal/adapters/outbound/history"
)

// registerResources registers all gemspell MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. gemspell://vocabulary/dependencies - the gem name vocabulary
	s.AddResource(
		mcplib.NewResource(
			"gemspell://vocabulary/dependencies",
			"Dependency Vocabulary",
			mcplib.WithResourceDescription("Every known-good gem name the linter checks against"),
			mcplib.WithMIMEType("application/json"),
		),
		handleDependencyVocabulary(projectPath),
	)

	// 2. gemspell://vocabulary/sources - the source URI vocabulary
	s.AddResource(
		mcplib.NewResource(
			"gemspell://vocabulary/sources",
			"Source Vocabulary",
			mcplib.WithResourceDescription("Every known-good source URI the linter checks against"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSourceVocabulary(projectPath),
	)

	// 3. gemspell://config - resolved configuration
	s.AddResource(
		mcplib.NewResource(
			"gemspell://config",
			"Configuration",
			mcplib.WithResourceDescription("The resolved gemspell configuration for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 4. gemspell://history - recorded lint runs
	s.AddResource(
		mcplib.NewResource(
			"gemspell://history",
			"Lint History",
			mcplib.WithResourceDescription("The lint runs recorded for the project, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)

	// 5. gemspell://manifest/{path} - declarations of one manifest (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"gemspell://manifest/{path}",
			"Manifest Declarations",
			mcplib.WithTemplateDescription("The gem and source declarations of a single manifest"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleManifestResource(projectPath),
	)
}

func handleDependencyVocabulary(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, vocabs, err := newSession(projectPath)
		if err != nil {
			return nil, err
		}
		return vocabularyContents("gemspell://vocabulary/dependencies", vocabs.Dependencies.Words())
	}
}

func handleSourceVocabulary(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		_, vocabs, err := newSession(projectPath)
		if err != nil {
			return nil, err
		}
		return vocabularyContents("gemspell://vocabulary/sources", vocabs.Sources.Words())
	}
}

func vocabularyContents(uri string, words []string) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling vocabulary: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "gemspell://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "gemspell://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleManifestResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract the manifest path from the arguments (populated by template matching)
		manifestPath, ok := request.Params.Arguments["path"].(string)
		if !ok || manifestPath == "" {
			return nil, fmt.Errorf("manifest path is required")
		}

		m, err := bundler.New().Evaluate(filepath.Join(projectPath, manifestPath))
		if err != nil {
			return nil, fmt.Errorf("evaluating manifest: %w", err)
		}

		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling manifest: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
