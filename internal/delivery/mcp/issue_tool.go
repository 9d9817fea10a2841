package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"

	"github.com/eddyv73/github-mcp/internal/domain"
)

var (
	issueActions = []string{"list", "view", "create", "comment", "close", "reopen"}
	issueStates  = []string{"open", "closed", "all"}
)

// IssueTool handles issue operations
type IssueTool struct {
	BaseToolType
}

// NewIssueTool creates a new issue tool type
func NewIssueTool() *IssueTool {
	return &IssueTool{
		BaseToolType: BaseToolType{
			name:        "gh_issue",
			description: "Manage GitHub issues: list, view, create, comment, close and reopen",
		},
	}
}

// CreateTool declares the issue tool
func (t *IssueTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, view, create, comment, close, reopen)"),
			tools.Required(),
		),
		tools.WithString("repo",
			tools.Description("Repository, owner/repo or bare name"),
			tools.Required(),
		),
		tools.WithNumber("number",
			tools.Description("Issue number (required for view, comment, close, reopen)"),
		),
		tools.WithString("state",
			tools.Description("Filter for list (open, closed, all; default open)"),
		),
		tools.WithString("title",
			tools.Description("Issue title (required for create)"),
		),
		tools.WithString("body",
			tools.Description("Issue or comment body (required for comment)"),
		),
		tools.WithArray("labels",
			tools.Description("Labels to filter by (list) or apply (create)"),
			tools.Items(map[string]interface{}{"type": "string"}),
		),
		tools.WithArray("assignees",
			tools.Description("Logins to assign (for create)"),
			tools.Items(map[string]interface{}{"type": "string"}),
		),
		tools.WithNumber("limit",
			tools.Description("Maximum number of results for list (default 30)"),
		),
	)
}

// HandleRequest handles issue tool requests
func (t *IssueTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, issueActions)
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
		var labels []string
		var limit int
		if state, err = stringParamDefault(request.Parameters, "state", "open"); err != nil {
			return nil, err
		}
		if !contains(issueStates, state) {
			return nil, domain.ValidationError("state %q is not one of %v", state, issueStates)
		}
		if labels, err = stringSliceParam(request.Parameters, "labels"); err != nil {
			return nil, err
		}
		if limit, err = intParamDefault(request.Parameters, "limit", 30); err != nil {
			return nil, err
		}
		result, err = useCase.ListIssues(ctx, repo, state, labels, limit)

	case "view":
		var number int
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		result, err = useCase.ViewIssue(ctx, repo, number)

	case "create":
		var issue domain.NewIssue
		if issue.Title, err = requiredString(request.Parameters, "title", action); err != nil {
			return nil, err
		}
		if issue.Body, err = stringParamDefault(request.Parameters, "body", ""); err != nil {
			return nil, err
		}
		if issue.Labels, err = stringSliceParam(request.Parameters, "labels"); err != nil {
			return nil, err
		}
		if issue.Assignees, err = stringSliceParam(request.Parameters, "assignees"); err != nil {
			return nil, err
		}
		result, err = useCase.CreateIssue(ctx, repo, issue)

	case "comment":
		var number int
		var body string
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		if body, err = requiredString(request.Parameters, "body", action); err != nil {
			return nil, err
		}
		result, err = useCase.CommentOnIssue(ctx, repo, number, body)

	case "close":
		var number int
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		result, err = useCase.CloseIssue(ctx, repo, number)

	case "reopen":
		var number int
		if number, err = requiredInt(request.Parameters, "number", action); err != nil {
			return nil, err
		}
		result, err = useCase.ReopenIssue(ctx, repo, number)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}
