package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/types"

	"github.com/eddyv73/github-mcp/internal/logger"
)

// ServerWrapper provides a wrapper around server.MCPServer to handle type assertions
type ServerWrapper struct {
	mcpServer *server.MCPServer
}

// NewServerWrapper creates a new ServerWrapper
func NewServerWrapper(mcpServer *server.MCPServer) *ServerWrapper {
	return &ServerWrapper{
		mcpServer: mcpServer,
	}
}

// AddTool adds a tool to the server
func (sw *ServerWrapper) AddTool(ctx context.Context, tool interface{}, handler func(ctx context.Context, request server.ToolCallRequest) (interface{}, error)) error {
	logger.Debug("Adding tool: %T", tool)

	typedTool, ok := tool.(*types.Tool)
	if !ok {
		logger.Warn("Tool is not of type *types.Tool: %T", tool)
		return nil
	}

	return sw.mcpServer.AddTool(ctx, typedTool, handler)
}
