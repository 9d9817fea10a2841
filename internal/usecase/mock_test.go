package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/eddyv73/github-mcp/internal/domain"
)

// MockGateway is a mock implementation of domain.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) AuthenticatedLogin(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) ListRepositories(ctx context.Context, limit int) ([]domain.Repository, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func (m *MockGateway) CreateRepository(ctx context.Context, repo domain.NewRepository) (*domain.Repository, error) {
	args := m.Called(ctx, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func (m *MockGateway) GetRepository(ctx context.Context, owner, name string) (*domain.RepositoryDetail, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepositoryDetail), args.Error(1)
}

func (m *MockGateway) DeleteRepository(ctx context.Context, owner, name string) error {
	args := m.Called(ctx, owner, name)
	return args.Error(0)
}

func (m *MockGateway) ForkRepository(ctx context.Context, owner, name, org string) (*domain.Repository, error) {
	args := m.Called(ctx, owner, name, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repository), args.Error(1)
}

func (m *MockGateway) ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]domain.PullRequest, error) {
	args := m.Called(ctx, owner, repo, state, limit)
	return args.Get(0).([]domain.PullRequest), args.Error(1)
}

func (m *MockGateway) GetPullRequest(ctx context.Context, owner, repo string, number int) (*domain.PullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *MockGateway) CreatePullRequest(ctx context.Context, owner, repo string, pr domain.NewPullRequest) (*domain.PullRequest, error) {
	args := m.Called(ctx, owner, repo, pr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *MockGateway) MergePullRequest(ctx context.Context, owner, repo string, number int, method string) (string, error) {
	args := m.Called(ctx, owner, repo, number, method)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) ClosePullRequest(ctx context.Context, owner, repo string, number int) (*domain.PullRequest, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PullRequest), args.Error(1)
}

func (m *MockGateway) ListIssues(ctx context.Context, owner, repo, state string, labels []string, limit int) ([]domain.Issue, error) {
	args := m.Called(ctx, owner, repo, state, labels, limit)
	return args.Get(0).([]domain.Issue), args.Error(1)
}

func (m *MockGateway) GetIssue(ctx context.Context, owner, repo string, number int) (*domain.Issue, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockGateway) CreateIssue(ctx context.Context, owner, repo string, issue domain.NewIssue) (*domain.Issue, error) {
	args := m.Called(ctx, owner, repo, issue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockGateway) CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) (string, error) {
	args := m.Called(ctx, owner, repo, number, body)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) SetIssueState(ctx context.Context, owner, repo string, number int, state string) (*domain.Issue, error) {
	args := m.Called(ctx, owner, repo, number, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Issue), args.Error(1)
}

func (m *MockGateway) ListWorkflows(ctx context.Context, owner, repo string) ([]domain.Workflow, error) {
	args := m.Called(ctx, owner, repo)
	return args.Get(0).([]domain.Workflow), args.Error(1)
}

func (m *MockGateway) ListWorkflowRuns(ctx context.Context, owner, repo, workflowFile string, limit int) ([]domain.WorkflowRun, error) {
	args := m.Called(ctx, owner, repo, workflowFile, limit)
	return args.Get(0).([]domain.WorkflowRun), args.Error(1)
}

func (m *MockGateway) DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]interface{}) error {
	args := m.Called(ctx, owner, repo, workflowFile, ref, inputs)
	return args.Error(0)
}

func (m *MockGateway) ListReleases(ctx context.Context, owner, repo string, limit int) ([]domain.Release, error) {
	args := m.Called(ctx, owner, repo, limit)
	return args.Get(0).([]domain.Release), args.Error(1)
}

func (m *MockGateway) LatestRelease(ctx context.Context, owner, repo string) (*domain.Release, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

func (m *MockGateway) CreateRelease(ctx context.Context, owner, repo string, rel domain.NewRelease) (*domain.Release, error) {
	args := m.Called(ctx, owner, repo, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Release), args.Error(1)
}

func (m *MockGateway) ListGists(ctx context.Context, limit int) ([]domain.Gist, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Gist), args.Error(1)
}

func (m *MockGateway) CreateGist(ctx context.Context, gist domain.NewGist) (*domain.Gist, error) {
	args := m.Called(ctx, gist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gist), args.Error(1)
}
