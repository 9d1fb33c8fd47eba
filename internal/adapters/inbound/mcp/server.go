package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewGemspellMCPServer creates a new MCP server with all gemspell tools and
// resources registered. The projectPath is the root directory holding the
// manifests to check.
func NewGemspellMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"gemspell",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
