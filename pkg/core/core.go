// Package core provides identity and logging plumbing shared by the server.
package core

// Version returns the current version of the MCP server.
func Version() string {
	return "1.0.0"
}

// Name returns the server name announced to MCP clients.
func Name() string {
	return "github-mcp"
}
