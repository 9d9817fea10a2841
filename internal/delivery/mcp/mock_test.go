package mcp

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eddyv73/github-mcp/internal/domain"
)

// MockGitHubUseCase is a mock implementation of the GitHub use case
type MockGitHubUseCase struct {
	mock.Mock
}

func (m *MockGitHubUseCase) ListRepositories(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CreateRepository(ctx context.Context, name, description, org string, isPublic bool) (string, error) {
	args := m.Called(ctx, name, description, org, isPublic)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ViewRepository(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) DeleteRepository(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ForkRepository(ctx context.Context, name, org string) (string, error) {
	args := m.Called(ctx, name, org)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListPullRequests(ctx context.Context, name, state string, limit int) (string, error) {
	args := m.Called(ctx, name, state, limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ViewPullRequest(ctx context.Context, name string, number int) (string, error) {
	args := m.Called(ctx, name, number)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CreatePullRequest(ctx context.Context, name string, pr domain.NewPullRequest) (string, error) {
	args := m.Called(ctx, name, pr)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) MergePullRequest(ctx context.Context, name string, number int, method string) (string, error) {
	args := m.Called(ctx, name, number, method)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ClosePullRequest(ctx context.Context, name string, number int) (string, error) {
	args := m.Called(ctx, name, number)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListIssues(ctx context.Context, name, state string, labels []string, limit int) (string, error) {
	args := m.Called(ctx, name, state, labels, limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ViewIssue(ctx context.Context, name string, number int) (string, error) {
	args := m.Called(ctx, name, number)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CreateIssue(ctx context.Context, name string, issue domain.NewIssue) (string, error) {
	args := m.Called(ctx, name, issue)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CommentOnIssue(ctx context.Context, name string, number int, body string) (string, error) {
	args := m.Called(ctx, name, number, body)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CloseIssue(ctx context.Context, name string, number int) (string, error) {
	args := m.Called(ctx, name, number)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ReopenIssue(ctx context.Context, name string, number int) (string, error) {
	args := m.Called(ctx, name, number)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListWorkflows(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListWorkflowRuns(ctx context.Context, name, workflow string, limit int) (string, error) {
	args := m.Called(ctx, name, workflow, limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) RunWorkflow(ctx context.Context, name, workflow, ref string, inputs map[string]interface{}) (string, error) {
	args := m.Called(ctx, name, workflow, ref, inputs)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListReleases(ctx context.Context, name string, limit int) (string, error) {
	args := m.Called(ctx, name, limit)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) LatestRelease(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CreateRelease(ctx context.Context, name string, rel domain.NewRelease) (string, error) {
	args := m.Called(ctx, name, rel)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) ListGists(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitHubUseCase) CreateGist(ctx context.Context, gist domain.NewGist) (string, error) {
	args := m.Called(ctx, gist)
	return args.String(0), args.Error(1)
}
