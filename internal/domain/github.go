package domain

import (
	"context"
)

// Repository is the summary shape returned by repository listings.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	URL         string `json:"url"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// RepositoryDetail is the expanded shape returned by a repository view.
type RepositoryDetail struct {
	Repository
	Forks         int      `json:"forks"`
	OpenIssues    int      `json:"open_issues"`
	DefaultBranch string   `json:"default_branch,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// PullRequest is the shape returned by pull request operations.
type PullRequest struct {
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	Author    string `json:"author,omitempty"`
	Head      string `json:"head,omitempty"`
	Base      string `json:"base,omitempty"`
	Body      string `json:"body,omitempty"`
	URL       string `json:"url"`
	Draft     bool   `json:"draft,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Issue is the shape returned by issue operations.
type Issue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	Author    string   `json:"author,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Body      string   `json:"body,omitempty"`
	URL       string   `json:"url"`
	Comments  int      `json:"comments"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// Workflow is one GitHub Actions workflow of a repository.
type Workflow struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	State string `json:"state"`
}

// WorkflowRun is one execution of a workflow.
type WorkflowRun struct {
	ID         int64  `json:"id"`
	Name       string `json:"name,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Event      string `json:"event,omitempty"`
	Status     string `json:"status"`
	Conclusion string `json:"conclusion,omitempty"`
	URL        string `json:"url"`
	StartedAt  string `json:"started_at,omitempty"`
}

// Release is one repository release.
type Release struct {
	Tag        string `json:"tag"`
	Name       string `json:"name,omitempty"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	URL        string `json:"url"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Gist is one gist of the authenticated user.
type Gist struct {
	ID          string   `json:"id"`
	Description string   `json:"description,omitempty"`
	Public      bool     `json:"public"`
	Files       []string `json:"files"`
	URL         string   `json:"url"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// NewRepository carries the fields of a repository create call.
type NewRepository struct {
	Name        string
	Description string
	Org         string
	Private     bool
	AutoInit    bool
}

// NewPullRequest carries the fields of a pull request create call.
type NewPullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// NewIssue carries the fields of an issue create call.
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

// NewRelease carries the fields of a release create call.
type NewRelease struct {
	Tag        string
	Name       string
	Notes      string
	Draft      bool
	Prerelease bool
}

// NewGist carries the fields of a gist create call.
type NewGist struct {
	Description string
	Public      bool
	Files       map[string]string
}

// Gateway is the port to the GitHub REST API. One implementation wraps the
// real client; tests substitute their own. Every method issues at most one
// HTTP call; failures come back as domain errors with KindRemote.
type Gateway interface {
	// AuthenticatedLogin resolves the login of the token's owner.
	AuthenticatedLogin(ctx context.Context) (string, error)

	ListRepositories(ctx context.Context, limit int) ([]Repository, error)
	CreateRepository(ctx context.Context, repo NewRepository) (*Repository, error)
	GetRepository(ctx context.Context, owner, name string) (*RepositoryDetail, error)
	DeleteRepository(ctx context.Context, owner, name string) error
	ForkRepository(ctx context.Context, owner, name, org string) (*Repository, error)

	ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]PullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)
	CreatePullRequest(ctx context.Context, owner, repo string, pr NewPullRequest) (*PullRequest, error)
	MergePullRequest(ctx context.Context, owner, repo string, number int, method string) (string, error)
	ClosePullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)

	ListIssues(ctx context.Context, owner, repo, state string, labels []string, limit int) ([]Issue, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error)
	CreateIssue(ctx context.Context, owner, repo string, issue NewIssue) (*Issue, error)
	CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) (string, error)
	SetIssueState(ctx context.Context, owner, repo string, number int, state string) (*Issue, error)

	ListWorkflows(ctx context.Context, owner, repo string) ([]Workflow, error)
	ListWorkflowRuns(ctx context.Context, owner, repo, workflowFile string, limit int) ([]WorkflowRun, error)
	DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]interface{}) error

	ListReleases(ctx context.Context, owner, repo string, limit int) ([]Release, error)
	LatestRelease(ctx context.Context, owner, repo string) (*Release, error)
	CreateRelease(ctx context.Context, owner, repo string, rel NewRelease) (*Release, error)

	ListGists(ctx context.Context, limit int) ([]Gist, error)
	CreateGist(ctx context.Context, gist NewGist) (*Gist, error)
}
