package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"

	"github.com/eddyv73/github-mcp/internal/domain"
)

var releaseActions = []string{"list", "latest", "create"}

// ReleaseTool handles release operations
type ReleaseTool struct {
	BaseToolType
}

// NewReleaseTool creates a new release tool type
func NewReleaseTool() *ReleaseTool {
	return &ReleaseTool{
		BaseToolType: BaseToolType{
			name:        "gh_release",
			description: "Manage GitHub releases: list, view the latest and create",
		},
	}
}

// CreateTool declares the release tool
func (t *ReleaseTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, latest, create)"),
			tools.Required(),
		),
		tools.WithString("repo",
			tools.Description("Repository, owner/repo or bare name"),
			tools.Required(),
		),
		tools.WithString("tag",
			tools.Description("Tag of the release (required for create)"),
		),
		tools.WithString("title",
			tools.Description("Release title (for create)"),
		),
		tools.WithString("notes",
			tools.Description("Release notes (for create)"),
		),
		tools.WithBoolean("draft",
			tools.Description("Create the release as a draft"),
		),
		tools.WithBoolean("prerelease",
			tools.Description("Mark the release as a prerelease"),
		),
		tools.WithNumber("limit",
			tools.Description("Maximum number of results for list (default 30)"),
		),
	)
}

// HandleRequest handles release tool requests
func (t *ReleaseTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, releaseActions)
	if err != nil {
		return nil, err
	}

	repo, err := requiredString(request.Parameters, "repo", action)
	if err != nil {
		return nil, err
	}

	var result string
	switch action {
	case "list":
		var limit int
		if limit, err = intParamDefault(request.Parameters, "limit", 30); err != nil {
			return nil, err
		}
		result, err = useCase.ListReleases(ctx, repo, limit)

	case "latest":
		result, err = useCase.LatestRelease(ctx, repo)

	case "create":
		var rel domain.NewRelease
		if rel.Tag, err = requiredString(request.Parameters, "tag", action); err != nil {
			return nil, err
		}
		if rel.Name, err = stringParamDefault(request.Parameters, "title", ""); err != nil {
			return nil, err
		}
		if rel.Notes, err = stringParamDefault(request.Parameters, "notes", ""); err != nil {
			return nil, err
		}
		if rel.Draft, err = boolParamDefault(request.Parameters, "draft", false); err != nil {
			return nil, err
		}
		if rel.Prerelease, err = boolParamDefault(request.Parameters, "prerelease", false); err != nil {
			return nil, err
		}
		result, err = useCase.CreateRelease(ctx, repo, rel)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}
