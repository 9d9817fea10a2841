package repository

import (
	"context"
	"time"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/eddyv73/github-mcp/internal/config"
	"github.com/eddyv73/github-mcp/internal/domain"
)

// GitHubGateway implements domain.Gateway on top of the go-github client.
// It is constructed once at startup and shared read-only by all handlers.
type GitHubGateway struct {
	client *github.Client
}

// NewGitHubGateway creates a gateway authenticated with the given config.
// A non-empty BaseURL points the client at a GitHub Enterprise instance.
func NewGitHubGateway(ctx context.Context, cfg config.GitHubConfig) (*GitHubGateway, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	return &GitHubGateway{client: client}, nil
}

// AuthenticatedLogin resolves the login of the token's owner.
func (g *GitHubGateway) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := g.client.Users.Get(ctx, "")
	if err != nil {
		return "", domain.RemoteError(err)
	}
	return user.GetLogin(), nil
}

// ListRepositories returns the first page of the authenticated user's
// repositories, most recently updated first.
func (g *GitHubGateway) ListRepositories(ctx context.Context, limit int) ([]domain.Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	repos, _, err := g.client.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		result = append(result, repositorySummary(r))
	}
	return result, nil
}

// CreateRepository creates a repository for the authenticated user, or
// under an organization when repo.Org is set.
func (g *GitHubGateway) CreateRepository(ctx context.Context, repo domain.NewRepository) (*domain.Repository, error) {
	req := &github.Repository{
		Name:     github.String(repo.Name),
		Private:  github.Bool(repo.Private),
		AutoInit: github.Bool(repo.AutoInit),
	}
	if repo.Description != "" {
		req.Description = github.String(repo.Description)
	}

	created, _, err := g.client.Repositories.Create(ctx, repo.Org, req)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := repositorySummary(created)
	return &summary, nil
}

// GetRepository returns the expanded view of a single repository.
func (g *GitHubGateway) GetRepository(ctx context.Context, owner, name string) (*domain.RepositoryDetail, error) {
	repo, _, err := g.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	return &domain.RepositoryDetail{
		Repository:    repositorySummary(repo),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		DefaultBranch: repo.GetDefaultBranch(),
		Topics:        repo.Topics,
		CreatedAt:     formatTimestamp(repo.GetCreatedAt()),
	}, nil
}

// DeleteRepository deletes a repository.
func (g *GitHubGateway) DeleteRepository(ctx context.Context, owner, name string) error {
	if _, err := g.client.Repositories.Delete(ctx, owner, name); err != nil {
		return domain.RemoteError(err)
	}
	return nil
}

// ForkRepository forks a repository for the authenticated user, or into an
// organization when org is set. Forking is asynchronous on the API side;
// the accepted-but-pending answer counts as success.
func (g *GitHubGateway) ForkRepository(ctx context.Context, owner, name, org string) (*domain.Repository, error) {
	opts := &github.RepositoryCreateForkOptions{Organization: org}
	fork, _, err := g.client.Repositories.CreateFork(ctx, owner, name, opts)
	if err != nil {
		if _, accepted := err.(*github.AcceptedError); !accepted {
			return nil, domain.RemoteError(err)
		}
	}
	if fork == nil {
		return &domain.Repository{Name: owner + "/" + name}, nil
	}

	summary := repositorySummary(fork)
	return &summary, nil
}

// ListPullRequests returns the first page of pull requests in a state.
func (g *GitHubGateway) ListPullRequests(ctx context.Context, owner, repo, state string, limit int) ([]domain.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: limit},
	}
	prs, _, err := g.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		result = append(result, pullRequestSummary(pr))
	}
	return result, nil
}

// GetPullRequest returns one pull request by number.
func (g *GitHubGateway) GetPullRequest(ctx context.Context, owner, repo string, number int) (*domain.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := pullRequestSummary(pr)
	return &summary, nil
}

// CreatePullRequest opens a pull request.
func (g *GitHubGateway) CreatePullRequest(ctx context.Context, owner, repo string, pr domain.NewPullRequest) (*domain.PullRequest, error) {
	req := &github.NewPullRequest{
		Title: github.String(pr.Title),
		Head:  github.String(pr.Head),
		Base:  github.String(pr.Base),
		Draft: github.Bool(pr.Draft),
	}
	if pr.Body != "" {
		req.Body = github.String(pr.Body)
	}

	created, _, err := g.client.PullRequests.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := pullRequestSummary(created)
	return &summary, nil
}

// MergePullRequest merges a pull request and returns the merge commit SHA.
func (g *GitHubGateway) MergePullRequest(ctx context.Context, owner, repo string, number int, method string) (string, error) {
	opts := &github.PullRequestOptions{MergeMethod: method}
	result, _, err := g.client.PullRequests.Merge(ctx, owner, repo, number, "", opts)
	if err != nil {
		return "", domain.RemoteError(err)
	}
	return result.GetSHA(), nil
}

// ClosePullRequest closes a pull request without merging.
func (g *GitHubGateway) ClosePullRequest(ctx context.Context, owner, repo string, number int) (*domain.PullRequest, error) {
	pr, _, err := g.client.PullRequests.Edit(ctx, owner, repo, number, &github.PullRequest{
		State: github.String("closed"),
	})
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := pullRequestSummary(pr)
	return &summary, nil
}

// ListIssues returns the first page of issues. Pull requests surfaced by
// the issues endpoint are filtered out.
func (g *GitHubGateway) ListIssues(ctx context.Context, owner, repo, state string, labels []string, limit int) ([]domain.Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       state,
		Labels:      labels,
		ListOptions: github.ListOptions{PerPage: limit},
	}
	issues, _, err := g.client.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.IsPullRequest() {
			continue
		}
		result = append(result, issueSummary(issue))
	}
	return result, nil
}

// GetIssue returns one issue by number.
func (g *GitHubGateway) GetIssue(ctx context.Context, owner, repo string, number int) (*domain.Issue, error) {
	issue, _, err := g.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := issueSummary(issue)
	return &summary, nil
}

// CreateIssue opens an issue.
func (g *GitHubGateway) CreateIssue(ctx context.Context, owner, repo string, issue domain.NewIssue) (*domain.Issue, error) {
	req := &github.IssueRequest{
		Title: github.String(issue.Title),
	}
	if issue.Body != "" {
		req.Body = github.String(issue.Body)
	}
	if len(issue.Labels) > 0 {
		req.Labels = &issue.Labels
	}
	if len(issue.Assignees) > 0 {
		req.Assignees = &issue.Assignees
	}

	created, _, err := g.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := issueSummary(created)
	return &summary, nil
}

// CommentOnIssue adds a comment and returns its URL.
func (g *GitHubGateway) CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) (string, error) {
	comment, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return "", domain.RemoteError(err)
	}
	return comment.GetHTMLURL(), nil
}

// SetIssueState closes or reopens an issue.
func (g *GitHubGateway) SetIssueState(ctx context.Context, owner, repo string, number int, state string) (*domain.Issue, error) {
	issue, _, err := g.client.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		State: github.String(state),
	})
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := issueSummary(issue)
	return &summary, nil
}

// ListWorkflows returns the workflows of a repository.
func (g *GitHubGateway) ListWorkflows(ctx context.Context, owner, repo string) ([]domain.Workflow, error) {
	workflows, _, err := g.client.Actions.ListWorkflows(ctx, owner, repo, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.Workflow, 0, len(workflows.Workflows))
	for _, wf := range workflows.Workflows {
		result = append(result, domain.Workflow{
			ID:    wf.GetID(),
			Name:  wf.GetName(),
			Path:  wf.GetPath(),
			State: wf.GetState(),
		})
	}
	return result, nil
}

// ListWorkflowRuns returns recent runs, optionally scoped to one workflow
// file.
func (g *GitHubGateway) ListWorkflowRuns(ctx context.Context, owner, repo, workflowFile string, limit int) ([]domain.WorkflowRun, error) {
	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	}

	var runs *github.WorkflowRuns
	var err error
	if workflowFile != "" {
		runs, _, err = g.client.Actions.ListWorkflowRunsByFileName(ctx, owner, repo, workflowFile, opts)
	} else {
		runs, _, err = g.client.Actions.ListRepositoryWorkflowRuns(ctx, owner, repo, opts)
	}
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, domain.WorkflowRun{
			ID:         run.GetID(),
			Name:       run.GetName(),
			Branch:     run.GetHeadBranch(),
			Event:      run.GetEvent(),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
			URL:        run.GetHTMLURL(),
			StartedAt:  formatTimestamp(run.GetRunStartedAt()),
		})
	}
	return result, nil
}

// DispatchWorkflow triggers a workflow_dispatch event on the given ref.
func (g *GitHubGateway) DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]interface{}) error {
	req := github.CreateWorkflowDispatchEventRequest{
		Ref:    ref,
		Inputs: inputs,
	}
	if _, err := g.client.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflowFile, req); err != nil {
		return domain.RemoteError(err)
	}
	return nil
}

// ListReleases returns the first page of releases.
func (g *GitHubGateway) ListReleases(ctx context.Context, owner, repo string, limit int) ([]domain.Release, error) {
	releases, _, err := g.client.Repositories.ListReleases(ctx, owner, repo, &github.ListOptions{PerPage: limit})
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.Release, 0, len(releases))
	for _, rel := range releases {
		result = append(result, releaseSummary(rel))
	}
	return result, nil
}

// LatestRelease returns the latest published release.
func (g *GitHubGateway) LatestRelease(ctx context.Context, owner, repo string) (*domain.Release, error) {
	rel, _, err := g.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := releaseSummary(rel)
	return &summary, nil
}

// CreateRelease creates a release for an existing tag or a new one.
func (g *GitHubGateway) CreateRelease(ctx context.Context, owner, repo string, rel domain.NewRelease) (*domain.Release, error) {
	req := &github.RepositoryRelease{
		TagName:    github.String(rel.Tag),
		Draft:      github.Bool(rel.Draft),
		Prerelease: github.Bool(rel.Prerelease),
	}
	if rel.Name != "" {
		req.Name = github.String(rel.Name)
	}
	if rel.Notes != "" {
		req.Body = github.String(rel.Notes)
	}

	created, _, err := g.client.Repositories.CreateRelease(ctx, owner, repo, req)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := releaseSummary(created)
	return &summary, nil
}

// ListGists returns the first page of the authenticated user's gists.
func (g *GitHubGateway) ListGists(ctx context.Context, limit int) ([]domain.Gist, error) {
	opts := &github.GistListOptions{ListOptions: github.ListOptions{PerPage: limit}}
	gists, _, err := g.client.Gists.List(ctx, "", opts)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	result := make([]domain.Gist, 0, len(gists))
	for _, gist := range gists {
		result = append(result, gistSummary(gist))
	}
	return result, nil
}

// CreateGist creates a gist with the given files.
func (g *GitHubGateway) CreateGist(ctx context.Context, gist domain.NewGist) (*domain.Gist, error) {
	files := make(map[github.GistFilename]github.GistFile, len(gist.Files))
	for name, content := range gist.Files {
		files[github.GistFilename(name)] = github.GistFile{Content: github.String(content)}
	}

	req := &github.Gist{
		Public: github.Bool(gist.Public),
		Files:  files,
	}
	if gist.Description != "" {
		req.Description = github.String(gist.Description)
	}

	created, _, err := g.client.Gists.Create(ctx, req)
	if err != nil {
		return nil, domain.RemoteError(err)
	}

	summary := gistSummary(created)
	return &summary, nil
}

func repositorySummary(r *github.Repository) domain.Repository {
	return domain.Repository{
		Name:        r.GetFullName(),
		Description: r.GetDescription(),
		Private:     r.GetPrivate(),
		URL:         r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		UpdatedAt:   formatTimestamp(r.GetUpdatedAt()),
	}
}

func pullRequestSummary(pr *github.PullRequest) domain.PullRequest {
	return domain.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		Author:    pr.GetUser().GetLogin(),
		Head:      pr.GetHead().GetRef(),
		Base:      pr.GetBase().GetRef(),
		Body:      pr.GetBody(),
		URL:       pr.GetHTMLURL(),
		Draft:     pr.GetDraft(),
		CreatedAt: formatTimestamp(pr.GetCreatedAt()),
	}
}

func issueSummary(issue *github.Issue) domain.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	assignees := make([]string, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		assignees = append(assignees, assignee.GetLogin())
	}

	return domain.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		State:     issue.GetState(),
		Author:    issue.GetUser().GetLogin(),
		Labels:    labels,
		Assignees: assignees,
		Body:      issue.GetBody(),
		URL:       issue.GetHTMLURL(),
		Comments:  issue.GetComments(),
		CreatedAt: formatTimestamp(issue.GetCreatedAt()),
	}
}

func releaseSummary(rel *github.RepositoryRelease) domain.Release {
	return domain.Release{
		Tag:        rel.GetTagName(),
		Name:       rel.GetName(),
		Draft:      rel.GetDraft(),
		Prerelease: rel.GetPrerelease(),
		URL:        rel.GetHTMLURL(),
		Notes:      rel.GetBody(),
		CreatedAt:  formatTimestamp(rel.GetCreatedAt()),
	}
}

func gistSummary(gist *github.Gist) domain.Gist {
	files := make([]string, 0, len(gist.Files))
	for name := range gist.Files {
		files = append(files, string(name))
	}

	updated := ""
	if gist.UpdatedAt != nil {
		updated = gist.UpdatedAt.Format(time.RFC3339)
	}

	return domain.Gist{
		ID:          gist.GetID(),
		Description: gist.GetDescription(),
		Public:      gist.GetPublic(),
		Files:       files,
		URL:         gist.GetHTMLURL(),
		UpdatedAt:   updated,
	}
}

func formatTimestamp(t github.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
