package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"

	"github.com/eddyv73/github-mcp/internal/domain"
)

var repoActions = []string{"list", "create", "clone", "view", "delete", "fork"}

// RepositoryTool handles repository operations
type RepositoryTool struct {
	BaseToolType
}

// NewRepositoryTool creates a new repository tool type
func NewRepositoryTool() *RepositoryTool {
	return &RepositoryTool{
		BaseToolType: BaseToolType{
			name:        "gh_repo",
			description: "Manage GitHub repositories: list, create, view, delete and fork",
		},
	}
}

// CreateTool declares the repository tool
func (t *RepositoryTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, create, clone, view, delete, fork)"),
			tools.Required(),
		),
		tools.WithString("name",
			tools.Description("Repository name, owner/repo or bare name (required for create, clone, view, delete, fork)"),
		),
		tools.WithString("description",
			tools.Description("Repository description (for create)"),
		),
		tools.WithBoolean("isPublic",
			tools.Description("Whether the created repository is public (default true)"),
		),
		tools.WithString("org",
			tools.Description("Organization to create or fork into (defaults to the authenticated user)"),
		),
		tools.WithString("path",
			tools.Description("Local destination path (for clone)"),
		),
	)
}

// HandleRequest handles repository tool requests
func (t *RepositoryTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, repoActions)
	if err != nil {
		return nil, err
	}

	var result string
	switch action {
	case "list":
		result, err = useCase.ListRepositories(ctx)

	case "create":
		var name, description, org string
		var isPublic bool
		if name, err = requiredString(request.Parameters, "name", action); err != nil {
			return nil, err
		}
		if description, err = stringParamDefault(request.Parameters, "description", ""); err != nil {
			return nil, err
		}
		if org, err = stringParamDefault(request.Parameters, "org", ""); err != nil {
			return nil, err
		}
		if isPublic, err = boolParamDefault(request.Parameters, "isPublic", true); err != nil {
			return nil, err
		}
		result, err = useCase.CreateRepository(ctx, name, description, org, isPublic)

	case "view":
		var name string
		if name, err = requiredString(request.Parameters, "name", action); err != nil {
			return nil, err
		}
		result, err = useCase.ViewRepository(ctx, name)

	case "delete":
		var name string
		if name, err = requiredString(request.Parameters, "name", action); err != nil {
			return nil, err
		}
		result, err = useCase.DeleteRepository(ctx, name)

	case "fork":
		var name, org string
		if name, err = requiredString(request.Parameters, "name", action); err != nil {
			return nil, err
		}
		if org, err = stringParamDefault(request.Parameters, "org", ""); err != nil {
			return nil, err
		}
		result, err = useCase.ForkRepository(ctx, name, org)

	case "clone":
		// Cloning needs local git and filesystem access the server does not
		// have; the action is declared but deliberately fails as such.
		if _, err = requiredString(request.Parameters, "name", action); err != nil {
			return nil, err
		}
		return nil, domain.NotImplementedError(t.name, action)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}
