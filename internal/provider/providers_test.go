package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/appforge/internal/spec"
)

func initialized(t *testing.T, p Provider) Provider {
	t.Helper()
	require.NoError(t, p.Initialize(context.Background()))
	return p
}

func invoke(t *testing.T, p Provider, op string, input Input) Output {
	t.Helper()
	f, ok := p.Operations()[op]
	require.True(t, ok, "operation %q not found", op)
	out, err := f(context.Background(), input)
	require.NoError(t, err)
	return out
}

func TestProviderLifecycleGating(t *testing.T) {
	ctx := context.Background()

	for name, factory := range DefaultSet {
		p := factory()
		assert.False(t, p.Healthy(), "%s must be unhealthy before Initialize", name)

		for opName, op := range p.Operations() {
			_, err := op(ctx, Input{})
			assert.ErrorIs(t, err, ErrNotInitialized, "%s.%s must fail before Initialize", name, opName)
		}

		require.NoError(t, p.Initialize(ctx))
		assert.True(t, p.Healthy(), "%s must be healthy after Initialize", name)

		require.NoError(t, p.Shutdown(ctx))
		assert.False(t, p.Healthy(), "%s must be unhealthy after Shutdown", name)

		for opName, op := range p.Operations() {
			_, err := op(ctx, Input{})
			assert.ErrorIs(t, err, ErrNotInitialized, "%s.%s must fail after Shutdown", name, opName)
		}
	}
}

func TestDatabaseCreateTable(t *testing.T) {
	p := initialized(t, NewDatabaseProvider())

	table := spec.TableDefinition{
		Name: "BlogPosts",
		Columns: []spec.ColumnDefinition{
			{Name: "title", Type: spec.ColumnString, Required: true},
			{Name: "views", Type: spec.ColumnNumber},
			{Name: "slug", Type: spec.ColumnString, Unique: true},
			{Name: "meta", Type: spec.ColumnJSON},
		},
	}
	out := invoke(t, p, "create-table", Input{"table": table})

	assert.Equal(t, "blog_posts", out["table"])
	sql, _ := out["sql"].(string)
	assert.Contains(t, sql, "CREATE TABLE blog_posts (")
	assert.Contains(t, sql, "id SERIAL PRIMARY KEY")
	assert.Contains(t, sql, "title VARCHAR(255) NOT NULL")
	assert.Contains(t, sql, "views NUMERIC")
	assert.Contains(t, sql, "slug VARCHAR(255) UNIQUE")
	assert.Contains(t, sql, "meta JSONB")
	assert.Contains(t, sql, "created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
}

func TestDatabaseSetupMigrations(t *testing.T) {
	p := initialized(t, NewDatabaseProvider())

	tables := []spec.TableDefinition{
		{Name: "users", Columns: []spec.ColumnDefinition{{Name: "email", Type: spec.ColumnString}}},
		{Name: "posts", Columns: []spec.ColumnDefinition{{Name: "title", Type: spec.ColumnString}}},
	}
	out := invoke(t, p, "setup-migrations", Input{"app": "blog", "tables": tables})

	assert.Equal(t, "001", out["version"])
	migration, _ := out["migration"].(string)
	assert.Contains(t, migration, "CREATE TABLE users")
	assert.Contains(t, migration, "CREATE TABLE posts")
}

func TestDatabaseMissingInput(t *testing.T) {
	p := initialized(t, NewDatabaseProvider())

	op := p.Operations()["create-table"]
	_, err := op(context.Background(), Input{})
	assert.ErrorContains(t, err, `missing input field "table"`)
}

func TestBackendCreateEndpoint(t *testing.T) {
	p := initialized(t, NewBackendProvider())

	ep := spec.APIEndpointDefinition{
		Path:        "/api/posts",
		Method:      "GET",
		Description: "List posts",
	}
	out := invoke(t, p, "create-endpoint", Input{"endpoint": ep})

	assert.Equal(t, "get_api_posts", out["handler"])
	code, _ := out["code"].(string)
	assert.Contains(t, code, "func GetApiPosts(")
	assert.Contains(t, code, "GET /api/posts")
	assert.Contains(t, code, "List posts")
}

func TestBackendGenerateAPI(t *testing.T) {
	p := initialized(t, NewBackendProvider())

	out := invoke(t, p, "generate-api", Input{"app": "My Shop"})

	assert.Equal(t, "main.go", out["entry"])
	code, _ := out["code"].(string)
	assert.Contains(t, code, "package main")
	assert.Contains(t, code, "my-shop listening")
}

func TestBackendDeploy(t *testing.T) {
	p := initialized(t, NewBackendProvider())

	out := invoke(t, p, "deploy-backend", Input{"app": "My Shop"})
	assert.Equal(t, "https://api.my-shop.example.com", out["url"])
	assert.Equal(t, "deployed", out["status"])
}

func TestFrontendGenerateComponent(t *testing.T) {
	p := initialized(t, NewFrontendProvider())

	c := spec.UIComponentDefinition{
		Name:      "UserList",
		Type:      spec.ComponentList,
		Endpoints: []string{"/api/users"},
	}
	out := invoke(t, p, "generate-component", Input{"component": c})

	assert.Equal(t, "UserList", out["component"])
	code, _ := out["code"].(string)
	assert.Contains(t, code, "export function UserList()")
	assert.Contains(t, code, `className="user-list"`)
	assert.Contains(t, code, "/api/users")
}

func TestFrontendCreatePage(t *testing.T) {
	p := initialized(t, NewFrontendProvider())

	c := spec.UIComponentDefinition{Name: "Home", Type: spec.ComponentPage}
	out := invoke(t, p, "create-page", Input{"component": c})

	code, _ := out["code"].(string)
	assert.Contains(t, code, "export function Home()")
	assert.Contains(t, code, "<main")
}

func TestGitHubCreateRepository(t *testing.T) {
	p := initialized(t, NewGitHubProvider())

	out := invoke(t, p, "create-repository", Input{"name": "My Blog", "description": "a blog"})

	assert.Equal(t, "appforge/my-blog", out["repository"])
	assert.Equal(t, "https://github.com/appforge/my-blog", out["url"])
	assert.Equal(t, "main", out["default_branch"])
}

func TestGitHubCommitCode(t *testing.T) {
	p := initialized(t, NewGitHubProvider())

	files := map[string]string{
		"backend/main.go":  "package main",
		"frontend/app.jsx": "export {}",
	}
	input := Input{"repository": "appforge/my-blog", "files": files, "message": "initial commit"}

	out := invoke(t, p, "commit-code", input)
	assert.Equal(t, 2, out["files_committed"])

	// Same input, same fabricated commit id.
	again := invoke(t, p, "commit-code", input)
	assert.Equal(t, out["commit"], again["commit"])

	files["backend/other.go"] = "package main"
	changed := invoke(t, p, "commit-code", input)
	assert.NotEqual(t, out["commit"], changed["commit"])
}

func TestGitHubCreateBranch(t *testing.T) {
	p := initialized(t, NewGitHubProvider())

	out := invoke(t, p, "create-branch", Input{"repository": "appforge/x", "branch": "develop"})
	assert.Equal(t, "refs/heads/develop", out["ref"])
}

func TestGitHubSetupWorkflows(t *testing.T) {
	p := initialized(t, NewGitHubProvider())

	out := invoke(t, p, "setup-workflows", Input{"repository": "appforge/my-blog"})

	assert.Equal(t, "configured", out["status"])
	assert.Equal(t, []string{".github/workflows/ci.yml"}, out["workflows"])
	ci, _ := out["ci"].(string)
	assert.Contains(t, ci, "name: CI")
	assert.Contains(t, ci, "appforge/my-blog")
}
