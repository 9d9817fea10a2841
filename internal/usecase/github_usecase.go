package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eddyv73/github-mcp/internal/domain"
	"github.com/eddyv73/github-mcp/internal/logger"
)

// Single-page listing caps. The server never aggregates pages.
const (
	repoPageSize    = 100
	defaultPageSize = 30
)

// GitHubUseCase implements the operations behind every tool. The gateway is
// injected so tests can substitute a double and count collaborator calls.
type GitHubUseCase struct {
	gateway domain.Gateway
}

// NewGitHubUseCase creates a use case backed by the given gateway.
func NewGitHubUseCase(gateway domain.Gateway) *GitHubUseCase {
	return &GitHubUseCase{gateway: gateway}
}

// resolveRepo splits an owner-qualified name, or resolves the owner to the
// authenticated user with one extra lookup for a bare name.
func (uc *GitHubUseCase) resolveRepo(ctx context.Context, name string) (string, string, error) {
	if strings.Contains(name, "/") {
		parts := strings.SplitN(name, "/", 2)
		if parts[0] == "" || parts[1] == "" {
			return "", "", domain.ValidationError("repository name %q is not in owner/repo form", name)
		}
		return parts[0], parts[1], nil
	}

	owner, err := uc.gateway.AuthenticatedLogin(ctx)
	if err != nil {
		return "", "", err
	}
	logger.Debug("resolved bare repository name %q to %s/%s", name, owner, name)
	return owner, name, nil
}

// ListRepositories returns the first page of the authenticated user's
// repositories as indented JSON, most recently updated first.
func (uc *GitHubUseCase) ListRepositories(ctx context.Context) (string, error) {
	repos, err := uc.gateway.ListRepositories(ctx, repoPageSize)
	if err != nil {
		return "", err
	}
	return toJSON(repos)
}

// CreateRepository creates a repository. isPublic inverts into the API's
// private flag; auto-init is a fixed policy so new repositories always have
// a default branch.
func (uc *GitHubUseCase) CreateRepository(ctx context.Context, name, description, org string, isPublic bool) (string, error) {
	repo, err := uc.gateway.CreateRepository(ctx, domain.NewRepository{
		Name:        name,
		Description: description,
		Org:         org,
		Private:     !isPublic,
		AutoInit:    true,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created repository %s at %s", repo.Name, repo.URL), nil
}

// ViewRepository returns the expanded JSON summary of a repository.
func (uc *GitHubUseCase) ViewRepository(ctx context.Context, name string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	detail, err := uc.gateway.GetRepository(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return toJSON(detail)
}

// DeleteRepository deletes a repository.
func (uc *GitHubUseCase) DeleteRepository(ctx context.Context, name string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if err := uc.gateway.DeleteRepository(ctx, owner, repo); err != nil {
		return "", err
	}
	return fmt.Sprintf("Deleted repository %s/%s", owner, repo), nil
}

// ForkRepository forks a repository, optionally into an organization.
func (uc *GitHubUseCase) ForkRepository(ctx context.Context, name, org string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	fork, err := uc.gateway.ForkRepository(ctx, owner, repo, org)
	if err != nil {
		return "", err
	}
	if fork.URL == "" {
		return fmt.Sprintf("Forking %s/%s; the fork is being created asynchronously", owner, repo), nil
	}
	return fmt.Sprintf("Forked %s/%s to %s at %s", owner, repo, fork.Name, fork.URL), nil
}

// ListPullRequests returns the first page of pull requests.
func (uc *GitHubUseCase) ListPullRequests(ctx context.Context, name, state string, limit int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	prs, err := uc.gateway.ListPullRequests(ctx, owner, repo, state, limit)
	if err != nil {
		return "", err
	}
	return toJSON(prs)
}

// ViewPullRequest returns one pull request as indented JSON.
func (uc *GitHubUseCase) ViewPullRequest(ctx context.Context, name string, number int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	pr, err := uc.gateway.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return "", err
	}
	return toJSON(pr)
}

// CreatePullRequest opens a pull request.
func (uc *GitHubUseCase) CreatePullRequest(ctx context.Context, name string, pr domain.NewPullRequest) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	created, err := uc.gateway.CreatePullRequest(ctx, owner, repo, pr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created pull request #%d at %s", created.Number, created.URL), nil
}

// MergePullRequest merges a pull request with the given method.
func (uc *GitHubUseCase) MergePullRequest(ctx context.Context, name string, number int, method string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	sha, err := uc.gateway.MergePullRequest(ctx, owner, repo, number, method)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Merged pull request #%d (merge commit %s)", number, sha), nil
}

// ClosePullRequest closes a pull request without merging.
func (uc *GitHubUseCase) ClosePullRequest(ctx context.Context, name string, number int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	pr, err := uc.gateway.ClosePullRequest(ctx, owner, repo, number)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Closed pull request #%d at %s", pr.Number, pr.URL), nil
}

// ListIssues returns the first page of issues.
func (uc *GitHubUseCase) ListIssues(ctx context.Context, name, state string, labels []string, limit int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	issues, err := uc.gateway.ListIssues(ctx, owner, repo, state, labels, limit)
	if err != nil {
		return "", err
	}
	return toJSON(issues)
}

// ViewIssue returns one issue as indented JSON.
func (uc *GitHubUseCase) ViewIssue(ctx context.Context, name string, number int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	issue, err := uc.gateway.GetIssue(ctx, owner, repo, number)
	if err != nil {
		return "", err
	}
	return toJSON(issue)
}

// CreateIssue opens an issue.
func (uc *GitHubUseCase) CreateIssue(ctx context.Context, name string, issue domain.NewIssue) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	created, err := uc.gateway.CreateIssue(ctx, owner, repo, issue)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created issue #%d at %s", created.Number, created.URL), nil
}

// CommentOnIssue comments on an issue or pull request.
func (uc *GitHubUseCase) CommentOnIssue(ctx context.Context, name string, number int, body string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	url, err := uc.gateway.CommentOnIssue(ctx, owner, repo, number, body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added comment to issue #%d at %s", number, url), nil
}

// CloseIssue closes an issue.
func (uc *GitHubUseCase) CloseIssue(ctx context.Context, name string, number int) (string, error) {
	return uc.setIssueState(ctx, name, number, "closed")
}

// ReopenIssue reopens a closed issue.
func (uc *GitHubUseCase) ReopenIssue(ctx context.Context, name string, number int) (string, error) {
	return uc.setIssueState(ctx, name, number, "open")
}

func (uc *GitHubUseCase) setIssueState(ctx context.Context, name string, number int, state string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	issue, err := uc.gateway.SetIssueState(ctx, owner, repo, number, state)
	if err != nil {
		return "", err
	}

	verb := "Closed"
	if state == "open" {
		verb = "Reopened"
	}
	return fmt.Sprintf("%s issue #%d at %s", verb, issue.Number, issue.URL), nil
}

// ListWorkflows returns the workflows of a repository.
func (uc *GitHubUseCase) ListWorkflows(ctx context.Context, name string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	workflows, err := uc.gateway.ListWorkflows(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return toJSON(workflows)
}

// ListWorkflowRuns returns recent workflow runs, optionally scoped to one
// workflow file.
func (uc *GitHubUseCase) ListWorkflowRuns(ctx context.Context, name, workflow string, limit int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	runs, err := uc.gateway.ListWorkflowRuns(ctx, owner, repo, workflow, limit)
	if err != nil {
		return "", err
	}
	return toJSON(runs)
}

// RunWorkflow dispatches a workflow on the given ref.
func (uc *GitHubUseCase) RunWorkflow(ctx context.Context, name, workflow, ref string, inputs map[string]interface{}) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if err := uc.gateway.DispatchWorkflow(ctx, owner, repo, workflow, ref, inputs); err != nil {
		return "", err
	}
	return fmt.Sprintf("Triggered workflow %s on %s in %s/%s", workflow, ref, owner, repo), nil
}

// ListReleases returns the first page of releases.
func (uc *GitHubUseCase) ListReleases(ctx context.Context, name string, limit int) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	releases, err := uc.gateway.ListReleases(ctx, owner, repo, limit)
	if err != nil {
		return "", err
	}
	return toJSON(releases)
}

// LatestRelease returns the latest published release.
func (uc *GitHubUseCase) LatestRelease(ctx context.Context, name string) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	release, err := uc.gateway.LatestRelease(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	return toJSON(release)
}

// CreateRelease creates a release.
func (uc *GitHubUseCase) CreateRelease(ctx context.Context, name string, rel domain.NewRelease) (string, error) {
	owner, repo, err := uc.resolveRepo(ctx, name)
	if err != nil {
		return "", err
	}

	created, err := uc.gateway.CreateRelease(ctx, owner, repo, rel)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created release %s at %s", created.Tag, created.URL), nil
}

// ListGists returns the first page of the authenticated user's gists.
func (uc *GitHubUseCase) ListGists(ctx context.Context) (string, error) {
	gists, err := uc.gateway.ListGists(ctx, defaultPageSize)
	if err != nil {
		return "", err
	}
	return toJSON(gists)
}

// CreateGist creates a gist.
func (uc *GitHubUseCase) CreateGist(ctx context.Context, gist domain.NewGist) (string, error) {
	created, err := uc.gateway.CreateGist(ctx, gist)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Created gist %s at %s", created.ID, created.URL), nil
}

// toJSON renders a value as indented JSON so the calling agent can read the
// result directly.
func toJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.RemoteError(err)
	}
	return string(data), nil
}
