package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequirement() *AppRequirement {
	return &AppRequirement{
		Name:        "Blog",
		Description: "A blog",
		Features:    []string{"posts"},
	}
}

func TestValidateRequirementOK(t *testing.T) {
	assert.Empty(t, ValidateRequirement(validRequirement()))
}

func TestValidateRequirementAccumulates(t *testing.T) {
	req := &AppRequirement{Name: "  ", Description: "", Features: nil}

	errs := ValidateRequirement(req)

	// One distinct message per missing field, never combined.
	require.Len(t, errs, 3)
	assert.Contains(t, errs, "app name is required")
	assert.Contains(t, errs, "app description is required")
	assert.Contains(t, errs, "at least one feature is required")
}

func TestValidateRequirementPartial(t *testing.T) {
	req := &AppRequirement{Name: "Blog", Features: []string{"posts"}}

	errs := ValidateRequirement(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "app description is required", errs[0])
}

func TestValidateTables(t *testing.T) {
	ok := []TableDefinition{{
		Name: "posts",
		Columns: []ColumnDefinition{
			{Name: "title", Type: ColumnString, Required: true},
			{Name: "body", Type: ColumnText},
		},
	}}
	assert.NoError(t, ValidateTables(ok))

	badType := []TableDefinition{{
		Name:    "posts",
		Columns: []ColumnDefinition{{Name: "title", Type: "varchar"}},
	}}
	assert.ErrorContains(t, ValidateTables(badType), "invalid type")

	noName := []TableDefinition{{Columns: nil}}
	assert.ErrorContains(t, ValidateTables(noName), "table name is required")
}

func TestValidateEndpoints(t *testing.T) {
	ok := []APIEndpointDefinition{
		{Path: "/api/posts", Method: "GET", Description: "List posts"},
		{Path: "/api/posts", Method: "POST", Description: "Create post"},
	}
	assert.NoError(t, ValidateEndpoints(ok))

	dup := append(ok, APIEndpointDefinition{Path: "/api/posts", Method: "GET", Description: "again"})
	assert.ErrorContains(t, ValidateEndpoints(dup), "duplicate endpoint GET /api/posts")

	badPath := []APIEndpointDefinition{{Path: "api/posts", Method: "GET", Description: "x"}}
	assert.ErrorContains(t, ValidateEndpoints(badPath), "must start with /")

	badMethod := []APIEndpointDefinition{{Path: "/x", Method: "FETCH", Description: "x"}}
	assert.ErrorContains(t, ValidateEndpoints(badMethod), "invalid method")

	noDesc := []APIEndpointDefinition{{Path: "/x", Method: "GET"}}
	assert.ErrorContains(t, ValidateEndpoints(noDesc), "description is required")
}

func TestValidateComponents(t *testing.T) {
	ok := []UIComponentDefinition{
		{Name: "PostList", Type: ComponentList, Endpoints: []string{"/api/posts"}},
		{Name: "Home", Type: ComponentPage},
		{Name: "Stats", Type: ComponentDashboard},
	}
	assert.NoError(t, ValidateComponents(ok))

	badName := []UIComponentDefinition{{Name: "postList", Type: ComponentList, Endpoints: []string{"/x"}}}
	assert.ErrorContains(t, ValidateComponents(badName), "capitalized identifier")

	badType := []UIComponentDefinition{{Name: "PostList", Type: "widget"}}
	assert.ErrorContains(t, ValidateComponents(badType), "invalid type")

	missingEndpoints := []UIComponentDefinition{{Name: "PostForm", Type: ComponentForm}}
	assert.ErrorContains(t, ValidateComponents(missingEndpoints), "at least one endpoint")
}
