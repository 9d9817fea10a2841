package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/FreePeak/cortex/pkg/tools"
)

var workflowActions = []string{"list", "runs", "run"}

// WorkflowTool handles GitHub Actions workflow operations
type WorkflowTool struct {
	BaseToolType
}

// NewWorkflowTool creates a new workflow tool type
func NewWorkflowTool() *WorkflowTool {
	return &WorkflowTool{
		BaseToolType: BaseToolType{
			name:        "gh_workflow",
			description: "Manage GitHub Actions workflows: list workflows, list runs and trigger a run",
		},
	}
}

// CreateTool declares the workflow tool
func (t *WorkflowTool) CreateTool() interface{} {
	return tools.NewTool(
		t.name,
		tools.WithDescription(t.description),
		tools.WithString("action",
			tools.Description("Action to perform (list, runs, run)"),
			tools.Required(),
		),
		tools.WithString("repo",
			tools.Description("Repository, owner/repo or bare name"),
			tools.Required(),
		),
		tools.WithString("workflow",
			tools.Description("Workflow file name, e.g. ci.yml (required for run, optional for runs)"),
		),
		tools.WithString("ref",
			tools.Description("Git ref to run the workflow on (required for run)"),
		),
		tools.WithObject("inputs",
			tools.Description("Workflow dispatch inputs (for run)"),
		),
		tools.WithNumber("limit",
			tools.Description("Maximum number of runs to return (default 30)"),
		),
	)
}

// HandleRequest handles workflow tool requests
func (t *WorkflowTool) HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error) {
	action, err := actionParam(request.Parameters, workflowActions)
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
		result, err = useCase.ListWorkflows(ctx, repo)

	case "runs":
		var workflow string
		var limit int
		if workflow, err = stringParamDefault(request.Parameters, "workflow", ""); err != nil {
			return nil, err
		}
		if limit, err = intParamDefault(request.Parameters, "limit", 30); err != nil {
			return nil, err
		}
		result, err = useCase.ListWorkflowRuns(ctx, repo, workflow, limit)

	case "run":
		var workflow, ref string
		var inputs map[string]interface{}
		if workflow, err = requiredString(request.Parameters, "workflow", action); err != nil {
			return nil, err
		}
		if ref, err = requiredString(request.Parameters, "ref", action); err != nil {
			return nil, err
		}
		if inputs, err = objectParam(request.Parameters, "inputs"); err != nil {
			return nil, err
		}
		result, err = useCase.RunWorkflow(ctx, repo, workflow, ref, inputs)
	}

	if err != nil {
		return nil, err
	}
	return createTextResponse(result), nil
}
