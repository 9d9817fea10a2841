package mcp

import (
	"context"
	"fmt"

	"github.com/FreePeak/cortex/pkg/server"

	"github.com/eddyv73/github-mcp/internal/domain"
	"github.com/eddyv73/github-mcp/internal/logger"
	"github.com/eddyv73/github-mcp/pkg/jsonrpc"
)

// ToolRegistry structure to handle tool registration
type ToolRegistry struct {
	server        *ServerWrapper
	mcpServer     *server.MCPServer
	githubUseCase UseCaseProvider
	factory       *ToolTypeFactory
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	factory := NewToolTypeFactory()
	return &ToolRegistry{
		server:    NewServerWrapper(mcpServer),
		mcpServer: mcpServer,
		factory:   factory,
	}
}

// RegisterAllTools registers all tools with the server
func (tr *ToolRegistry) RegisterAllTools(ctx context.Context, useCase UseCaseProvider) error {
	tr.githubUseCase = useCase

	registrationErrors := 0
	for _, toolType := range tr.factory.GetAllToolTypes() {
		if err := tr.registerTool(ctx, toolType); err != nil {
			logger.Error("Error registering tool %s: %v", toolType.GetName(), err)
			registrationErrors++
		} else {
			logger.Info("Registered tool %s", toolType.GetName())
		}
	}

	if registrationErrors > 0 {
		return fmt.Errorf("errors occurred while registering %d tools", registrationErrors)
	}
	return nil
}

// registerTool registers a tool with the server
func (tr *ToolRegistry) registerTool(ctx context.Context, toolType ToolType) error {
	tool := toolType.CreateTool()

	return tr.server.AddTool(ctx, tool, func(ctx context.Context, request server.ToolCallRequest) (interface{}, error) {
		response, err := toolType.HandleRequest(ctx, request, tr.githubUseCase)
		if err != nil {
			return nil, mapError(err)
		}
		return FormatResponse(response, nil)
	})
}

// mapError converts a domain error into the protocol's error envelope. This
// is the single place where error kinds meet JSON-RPC codes.
func mapError(err error) *jsonrpc.Error {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return jsonrpc.InvalidParamsError(err.Error())
	case domain.KindNotImplemented:
		return jsonrpc.MethodNotFoundError(err.Error())
	default:
		return jsonrpc.InternalError(err.Error())
	}
}
