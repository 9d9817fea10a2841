package mcp

import (
	"context"
	"testing"

	"github.com/FreePeak/cortex/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eddyv73/github-mcp/internal/domain"
)

func TestHandleReleaseLatest(t *testing.T) {
	mockUseCase := new(MockGitHubUseCase)
	mockUseCase.On("LatestRelease", mock.Anything, "octocat/hello-world").
		Return(`{"tag":"v1.2.0"}`, nil)

	releaseTool := NewReleaseTool()
	request := server.ToolCallRequest{
		Name: "gh_release",
		Parameters: map[string]interface{}{
			"action": "latest",
			"repo":   "octocat/hello-world",
		},
	}

	result, err := releaseTool.HandleRequest(context.Background(), request, mockUseCase)

	assert.NoError(t, err)
	assertTextContent(t, result, "v1.2.0")
	mockUseCase.AssertExpectations(t)
}

func TestHandleReleaseCreate(t *testing.T) {
	mockUseCase := new(MockGitHubUseCase)
	mockUseCase.On("CreateRelease", mock.Anything, "octocat/hello-world", mock.MatchedBy(func(rel domain.NewRelease) bool {
		return rel.Tag == "v2.0.0" && rel.Prerelease
	})).Return("Created release v2.0.0 at https://github.com/octocat/hello-world/releases/tag/v2.0.0", nil)

	releaseTool := NewReleaseTool()
	request := server.ToolCallRequest{
		Name: "gh_release",
		Parameters: map[string]interface{}{
			"action":     "create",
			"repo":       "octocat/hello-world",
			"tag":        "v2.0.0",
			"prerelease": true,
		},
	}

	result, err := releaseTool.HandleRequest(context.Background(), request, mockUseCase)

	assert.NoError(t, err)
	assertTextContent(t, result, "v2.0.0")
	mockUseCase.AssertExpectations(t)
}

func TestHandleReleaseCreateRequiresTag(t *testing.T) {
	mockUseCase := new(MockGitHubUseCase)

	releaseTool := NewReleaseTool()
	request := server.ToolCallRequest{
		Name: "gh_release",
		Parameters: map[string]interface{}{
			"action": "create",
			"repo":   "octocat/hello-world",
		},
	}

	_, err := releaseTool.HandleRequest(context.Background(), request, mockUseCase)

	assert.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	mockUseCase.AssertNotCalled(t, "CreateRelease", mock.Anything, mock.Anything, mock.Anything)
}
