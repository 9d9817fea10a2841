package mcp

import (
	"context"

	"github.com/FreePeak/cortex/pkg/server"

	"github.com/eddyv73/github-mcp/internal/domain"
)

// createTextResponse creates a simple response with a text content
func createTextResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": text,
			},
		},
	}
}

// ToolType interface defines the structure for the GitHub tools
type ToolType interface {
	// GetName returns the tool name exposed in the catalog (e.g. "gh_repo")
	GetName() string

	// GetDescription returns the human-readable description for the catalog
	GetDescription() string

	// CreateTool declares the tool with its parameter schema.
	// The returned tool must be compatible with server.MCPServer.AddTool's first parameter
	CreateTool() interface{}

	// HandleRequest validates the arguments and dispatches on the action field
	HandleRequest(ctx context.Context, request server.ToolCallRequest, useCase UseCaseProvider) (interface{}, error)
}

// UseCaseProvider interface abstracts the GitHub operations behind the tools
type UseCaseProvider interface {
	ListRepositories(ctx context.Context) (string, error)
	CreateRepository(ctx context.Context, name, description, org string, isPublic bool) (string, error)
	ViewRepository(ctx context.Context, name string) (string, error)
	DeleteRepository(ctx context.Context, name string) (string, error)
	ForkRepository(ctx context.Context, name, org string) (string, error)

	ListPullRequests(ctx context.Context, name, state string, limit int) (string, error)
	ViewPullRequest(ctx context.Context, name string, number int) (string, error)
	CreatePullRequest(ctx context.Context, name string, pr domain.NewPullRequest) (string, error)
	MergePullRequest(ctx context.Context, name string, number int, method string) (string, error)
	ClosePullRequest(ctx context.Context, name string, number int) (string, error)

	ListIssues(ctx context.Context, name, state string, labels []string, limit int) (string, error)
	ViewIssue(ctx context.Context, name string, number int) (string, error)
	CreateIssue(ctx context.Context, name string, issue domain.NewIssue) (string, error)
	CommentOnIssue(ctx context.Context, name string, number int, body string) (string, error)
	CloseIssue(ctx context.Context, name string, number int) (string, error)
	ReopenIssue(ctx context.Context, name string, number int) (string, error)

	ListWorkflows(ctx context.Context, name string) (string, error)
	ListWorkflowRuns(ctx context.Context, name, workflow string, limit int) (string, error)
	RunWorkflow(ctx context.Context, name, workflow, ref string, inputs map[string]interface{}) (string, error)

	ListReleases(ctx context.Context, name string, limit int) (string, error)
	LatestRelease(ctx context.Context, name string) (string, error)
	CreateRelease(ctx context.Context, name string, rel domain.NewRelease) (string, error)

	ListGists(ctx context.Context) (string, error)
	CreateGist(ctx context.Context, gist domain.NewGist) (string, error)
}

// BaseToolType provides common functionality for tool types
type BaseToolType struct {
	name        string
	description string
}

// GetName returns the name of the tool type
func (b *BaseToolType) GetName() string {
	return b.name
}

// GetDescription returns the description of the tool type
func (b *BaseToolType) GetDescription() string {
	return b.description
}

//------------------------------------------------------------------------------
// ToolTypeFactory provides a factory for creating tool types
//------------------------------------------------------------------------------

// ToolTypeFactory creates and manages tool types
type ToolTypeFactory struct {
	toolTypes map[string]ToolType
}

// NewToolTypeFactory creates a new tool type factory with all registered tool types
func NewToolTypeFactory() *ToolTypeFactory {
	factory := &ToolTypeFactory{
		toolTypes: make(map[string]ToolType),
	}

	factory.Register(NewRepositoryTool())
	factory.Register(NewPullRequestTool())
	factory.Register(NewIssueTool())
	factory.Register(NewWorkflowTool())
	factory.Register(NewReleaseTool())
	factory.Register(NewGistTool())

	return factory
}

// Register adds a tool type to the factory
func (f *ToolTypeFactory) Register(toolType ToolType) {
	f.toolTypes[toolType.GetName()] = toolType
}

// GetToolType returns a tool type by name
func (f *ToolTypeFactory) GetToolType(name string) (ToolType, bool) {
	toolType, ok := f.toolTypes[name]
	return toolType, ok
}

// GetAllToolTypes returns all registered tool types
func (f *ToolTypeFactory) GetAllToolTypes() []ToolType {
	types := make([]ToolType, 0, len(f.toolTypes))
	for _, toolType := range f.toolTypes {
		types = append(types, toolType)
	}
	return types
}
