package provider

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/appforge/appforge/internal/naming"
)

// GitHubServiceName is the conventional registration name of the GitHub tool
// provider.
const GitHubServiceName = "github-service"

// GitHubOrg is the synthetic organization repositories are fabricated under.
const GitHubOrg = "appforge"

const ciWorkflowTemplate = `name: CI

on:
  push:
    branches: [{{.Branch}}]
  pull_request:

jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - name: Build {{.Repo}}
        run: echo "build placeholder"
      - name: Test {{.Repo}}
        run: echo "test placeholder"
`

// GitHubProvider fabricates repository, commit and workflow responses. No
// network call is ever made.
type GitHubProvider struct {
	lifecycle
	engine *Engine
}

// NewGitHubProvider creates the GitHub tool provider.
func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{engine: NewEngine()}
}

// Name returns the provider's registration name.
func (p *GitHubProvider) Name() string {
	return GitHubServiceName
}

// Operations returns the provider's fixed operation menu.
func (p *GitHubProvider) Operations() map[string]Operation {
	return map[string]Operation{
		"create-repository": p.createRepository,
		"commit-code":       p.commitCode,
		"create-branch":     p.createBranch,
		"setup-workflows":   p.setupWorkflows,
	}
}

func (p *GitHubProvider) createRepository(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	name, err := stringInput(input, "name")
	if err != nil {
		return nil, err
	}

	repo := fmt.Sprintf("%s/%s", GitHubOrg, naming.KebabCase(name))
	return Output{
		"repository":     repo,
		"url":            "https://github.com/" + repo,
		"default_branch": "main",
	}, nil
}

func (p *GitHubProvider) commitCode(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	repo, err := stringInput(input, "repository")
	if err != nil {
		return nil, err
	}
	files, err := filesInput(input)
	if err != nil {
		return nil, err
	}
	message, err := stringInput(input, "message")
	if err != nil {
		return nil, err
	}

	return Output{
		"repository":      repo,
		"commit":          fakeCommitSHA(repo, message, files),
		"files_committed": len(files),
	}, nil
}

func (p *GitHubProvider) createBranch(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	repo, err := stringInput(input, "repository")
	if err != nil {
		return nil, err
	}
	branch, err := stringInput(input, "branch")
	if err != nil {
		return nil, err
	}

	return Output{
		"repository": repo,
		"branch":     branch,
		"ref":        "refs/heads/" + branch,
	}, nil
}

func (p *GitHubProvider) setupWorkflows(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	repo, err := stringInput(input, "repository")
	if err != nil {
		return nil, err
	}

	workflow, err := p.engine.Render(ciWorkflowTemplate, map[string]string{
		"Repo":   repo,
		"Branch": "main",
	})
	if err != nil {
		return nil, err
	}

	return Output{
		"repository": repo,
		"workflows":  []string{".github/workflows/ci.yml"},
		"ci":         workflow,
		"status":     "configured",
	}, nil
}

// fakeCommitSHA derives a deterministic commit id from the commit contents so
// repeated runs over the same input report the same id.
func fakeCommitSHA(repo, message string, files map[string]string) string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	h := sha1.New()
	fmt.Fprint(h, repo, "\n", message, "\n")
	for _, path := range paths {
		fmt.Fprint(h, path, "\n", files[path], "\n")
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}

// filesInput extracts a required path→content mapping from an operation input.
func filesInput(input Input) (map[string]string, error) {
	v, ok := input["files"]
	if !ok {
		return nil, fmt.Errorf("missing input field %q", "files")
	}
	files, ok := v.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("input field %q must be a path to content mapping", "files")
	}
	return files, nil
}
