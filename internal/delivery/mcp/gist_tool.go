package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"

	"github.com/eddyv73/github-mcp/internal/domain"
)

var gistActions = []string{"list", "create"}

// GistTool handles gist operations
type GistTool struct {
	BaseToolType
}

// NewGistTool creates a new gist tool type
func NewGistTool() *GistTool {
	return &GistTool{
		BaseToolType: BaseToolType{
			name:        "gh_gist",
			description: "Manage gists of the authenticated user: list and create",
		},
	}
}

// CreateTool declares the gist tool
func (t *GistTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, create)"),
			tools.Required(),
		),
		tools.WithObject("files",
			tools.Description("Files of the gist, file name to content (required for create)"),
		),
		tools.WithString("description",
			tools.Description("Gist description (for create)"),
		),
		tools.WithBoolean("isPublic",
			tools.Description("Whether the created gist is public (default false)"),
		),
	)
}

// HandleRequest handles gist tool requests
func (t *GistTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, gistActions)
	if err != nil {
		return nil, err
	}

	var result string
	switch action {
	case "list":
		result, err = useCase.ListGists(ctx)

	case "create":
		var gist domain.NewGist
		if gist.Files, err = stringMapParam(request.Parameters, "files"); err != nil {
			return nil, err
		}
		if len(gist.Files) == 0 {
			return nil, domain.ValidationError("files parameter is required for action %q", action)
		}
		if gist.Description, err = stringParamDefault(request.Parameters, "description", ""); err != nil {
			return nil, err
		}
		if gist.Public, err = boolParamDefault(request.Parameters, "isPublic", false); err != nil {
			return nil, err
		}
		result, err = useCase.CreateGist(ctx, gist)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}
