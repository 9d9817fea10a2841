package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"

	"github.com/eddyv73/github-mcp/internal/domain"
)

var (
	prActions    = []string{"list", "view", "create", "merge", "close"}
	prStates     = []string{"open", "closed", "all"}
	mergeMethods = []string{"merge", "squash", "rebase"}
)

// PullRequestTool handles pull request operations
type PullRequestTool struct {
	BaseToolType
}

// NewPullRequestTool creates a new pull request tool type
func NewPullRequestTool() *PullRequestTool {
	return &PullRequestTool{
		BaseToolType: BaseToolType{
			name:        "gh_pr",
			description: "Manage GitHub pull requests: list, view, create, merge and close",
		},
	}
}

// CreateTool declares the pull request tool
func (t *PullRequestTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, view, create, merge, close)"),
			tools.Required(),
		),
		tools.WithString("repo",
			tools.Description("Repository, owner/repo or bare name"),
			tools.Required(),
		),
		tools.WithNumber("number",
			tools.Description("Pull request number (required for view, merge, close)"),
		),
		tools.WithString("state",
			tools.Description("Filter for list (open, closed, all; default open)"),
		),
		tools.WithString("title",
			tools.Description("Pull request title (required for create)"),
		),
		tools.WithString("body",
			tools.Description("Pull request body (for create)"),
		),
		tools.WithString("head",
			tools.Description("Branch with the changes (required for create)"),
		),
		tools.WithString("base",
			tools.Description("Branch to merge into (required for create)"),
		),
		tools.WithBoolean("draft",
			tools.Description("Open the pull request as a draft (for create)"),
		),
		tools.WithString("method",
			tools.Description("Merge method (merge, squash, rebase; default merge)"),
		),
		tools.WithNumber("limit",
			tools.Description("Maximum number of results for list (default 30)"),
		),
	)
}

// HandleRequest handles pull request tool requests
func (t *PullRequestTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, prActions)
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
		var state string
		var limit int
		if state, err = stringParamDefault(request.Parameters, "state", "open"); err != nil {
			return nil, err
		}
		if !contains(prStates, state) {
			return nil, domain.ValidationError("state %q is not one of %v", state, prStates)
		}
		if limit, err = intParamDefault(request.Parameters, "limit", 30); err != nil {
			return nil, err
		}
		result, err = useCase.ListPullRequests(ctx, repo, state, limit)

	case "view":
		var number int
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		result, err = useCase.ViewPullRequest(ctx, repo, number)

	case "create":
		var pr domain.NewPullRequest
		if pr.Title, err = requiredString(request.Parameters, "title", action); err != nil {
			return nil, err
		}
		if pr.Head, err = requiredString(request.Parameters, "head", action); err != nil {
			return nil, err
		}
		if pr.Base, err = requiredString(request.Parameters, "base", action); err != nil {
			return nil, err
		}
		if pr.Body, err = stringParamDefault(request.Parameters, "body", ""); err != nil {
			return nil, err
		}
		if pr.Draft, err = boolParamDefault(request.Parameters, "draft", false); err != nil {
			return nil, err
		}
		result, err = useCase.CreatePullRequest(ctx, repo, pr)

	case "merge":
		var number int
		var method string
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		if method, err = stringParamDefault(request.Parameters, "method", "merge"); err != nil {
			return nil, err
		}
		if !contains(mergeMethods, method) {
			return nil, domain.ValidationError("method %q is not one of %v", method, mergeMethods)
		}
		result, err = useCase.MergePullRequest(ctx, repo, number, method)

	case "close":
		var number int
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		result, err = useCase.ClosePullRequest(ctx, repo, number)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
