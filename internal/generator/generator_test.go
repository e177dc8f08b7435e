package generator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/appforge/internal/provider"
	"github.com/appforge/appforge/internal/spec"
)

func newTestRegistry(t *testing.T) *provider.Registry {
	t.Helper()
	r := provider.NewRegistry(nil)
	require.NoError(t, provider.RegisterDefaults(context.Background(), r))
	return r
}

func blogRequirement() *spec.AppRequirement {
	return &spec.AppRequirement{
		Name:        "Blog",
		Description: "A blog",
		Features:    []string{"posts"},
		Tables: []spec.TableDefinition{
			{Name: "posts", Columns: []spec.ColumnDefinition{{Name: "title", Type: spec.ColumnString}}},
			{Name: "comments", Columns: []spec.ColumnDefinition{{Name: "body", Type: spec.ColumnText}}},
		},
		Endpoints: []spec.APIEndpointDefinition{
			{Path: "/api/posts", Method: "GET", Description: "List posts"},
			{Path: "/api/posts", Method: "POST", Description: "Create post"},
			{Path: "/api/comments", Method: "GET", Description: "List comments"},
		},
		Components: []spec.UIComponentDefinition{
			{Name: "PostList", Type: spec.ComponentList, Endpoints: []string{"/api/posts"}},
			{Name: "Home", Type: spec.ComponentPage},
		},
	}
}

func TestDatabaseGeneratorBundle(t *testing.T) {
	g := NewDatabaseGenerator(newTestRegistry(t))

	bundle, err := g.Generate(context.Background(), blogRequirement())
	require.NoError(t, err)

	// One schema file per table + migration + README.
	require.Len(t, bundle, 4)
	assert.Contains(t, bundle, "schema/posts.sql")
	assert.Contains(t, bundle, "schema/comments.sql")
	assert.Contains(t, bundle, "migrations/001_init.sql")
	assert.Contains(t, bundle, "schema/README.md")
	assert.Contains(t, bundle["schema/posts.sql"], "CREATE TABLE posts")
}

func TestBackendGeneratorFileCountIsDeterministic(t *testing.T) {
	registry := newTestRegistry(t)
	g := NewBackendGenerator(registry)

	for n := 1; n <= 5; n++ {
		req := &spec.AppRequirement{Name: "App", Description: "d", Features: []string{"f"}}
		for i := 0; i < n; i++ {
			req.Endpoints = append(req.Endpoints, spec.APIEndpointDefinition{
				Path:        fmt.Sprintf("/api/r%d", i),
				Method:      "GET",
				Description: "route",
			})
		}

		bundle, err := g.Generate(context.Background(), req)
		require.NoError(t, err)

		// Exactly N endpoint files plus entry point and manifest.
		assert.Len(t, bundle, n+2, "N=%d", n)
		assert.Contains(t, bundle, "src/main.go")
		assert.Contains(t, bundle, "go.mod")
	}
}

func TestBackendGeneratorRouteFiles(t *testing.T) {
	g := NewBackendGenerator(newTestRegistry(t))

	bundle, err := g.Generate(context.Background(), blogRequirement())
	require.NoError(t, err)

	assert.Contains(t, bundle, "src/routes/get_api_posts.go")
	assert.Contains(t, bundle, "src/routes/post_api_posts.go")
	assert.Contains(t, bundle, "src/routes/get_api_comments.go")
	assert.Contains(t, bundle["src/routes/get_api_posts.go"], "GET /api/posts")
}

func TestBackendGeneratorKeepsCollidingRouteFilesApart(t *testing.T) {
	g := NewBackendGenerator(newTestRegistry(t))

	// Both paths normalize to the handler name get_api_users.
	req := &spec.AppRequirement{
		Name: "App", Description: "d", Features: []string{"f"},
		Endpoints: []spec.APIEndpointDefinition{
			{Path: "/api/users", Method: "GET", Description: "list"},
			{Path: "/api-users", Method: "GET", Description: "legacy alias"},
		},
	}
	require.NoError(t, spec.ValidateEndpoints(req.Endpoints))

	bundle, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, bundle, 4)
	assert.Contains(t, bundle, "src/routes/get_api_users.go")
	assert.Contains(t, bundle, "src/routes/get_api_users_2.go")
	assert.Contains(t, bundle["src/routes/get_api_users.go"], "GET /api/users")
	assert.Contains(t, bundle["src/routes/get_api_users_2.go"], "GET /api-users")
}

func TestFrontendGeneratorRoutesComponentsByType(t *testing.T) {
	g := NewFrontendGenerator(newTestRegistry(t))

	bundle, err := g.Generate(context.Background(), blogRequirement())
	require.NoError(t, err)

	// list component under components/, page under pages/, plus entry+manifest.
	require.Len(t, bundle, 4)
	assert.Contains(t, bundle, "src/components/PostList.jsx")
	assert.Contains(t, bundle, "src/pages/Home.jsx")
	assert.Contains(t, bundle, "src/index.jsx")
	assert.Contains(t, bundle, "package.json")
}

func TestGeneratorsFailWithoutProviders(t *testing.T) {
	empty := provider.NewRegistry(nil)
	req := ApplyDefaults(blogRequirement())
	ctx := context.Background()

	_, err := NewDatabaseGenerator(empty).Generate(ctx, req)
	assert.ErrorIs(t, err, provider.ErrProviderNotFound)

	_, err = NewBackendGenerator(empty).Generate(ctx, req)
	assert.ErrorIs(t, err, provider.ErrProviderNotFound)

	_, err = NewFrontendGenerator(empty).Generate(ctx, req)
	assert.ErrorIs(t, err, provider.ErrProviderNotFound)
}

func TestGeneratorAbortsOnUnhealthyProvider(t *testing.T) {
	registry := provider.NewRegistry(nil)
	db := provider.NewDatabaseProvider()
	require.NoError(t, registry.Register(context.Background(), db))
	require.NoError(t, db.Shutdown(context.Background()))

	g := NewDatabaseGenerator(registry)
	_, err := g.Generate(context.Background(), blogRequirement())
	assert.True(t, errors.Is(err, provider.ErrProviderUnhealthy))
}

func TestApplyDefaults(t *testing.T) {
	bare := &spec.AppRequirement{Name: "Blog", Description: "A blog", Features: []string{"posts"}}

	got := ApplyDefaults(bare)

	require.Len(t, got.Tables, 1)
	assert.Equal(t, "users", got.Tables[0].Name)
	require.Len(t, got.Endpoints, 2)
	assert.Equal(t, "/api/users", got.Endpoints[0].Path)
	require.Len(t, got.Components, 2)
	assert.Equal(t, "UserList", got.Components[0].Name)

	// The original requirement is never mutated.
	assert.Empty(t, bare.Tables)
	assert.Empty(t, bare.Endpoints)
	assert.Empty(t, bare.Components)
}

func TestApplyDefaultsKeepsExplicitDefinitions(t *testing.T) {
	req := blogRequirement()
	got := ApplyDefaults(req)

	assert.Equal(t, req.Tables, got.Tables)
	assert.Equal(t, req.Endpoints, got.Endpoints)
	assert.Equal(t, req.Components, got.Components)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	registry := newTestRegistry(t)

	first := NewDatabaseGenerator(registry)
	second := NewDatabaseGenerator(registry)

	r.Register(first)
	r.Register(second)

	got, ok := r.Get("database")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []string{"database"}, r.List())
}
