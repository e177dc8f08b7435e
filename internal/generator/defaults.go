package generator

import "github.com/appforge/appforge/internal/spec"

// DefaultTables returns the synthetic table assumed when a requirement
// defines none.
func DefaultTables() []spec.TableDefinition {
	return []spec.TableDefinition{{
		Name: "users",
		Columns: []spec.ColumnDefinition{
			{Name: "email", Type: spec.ColumnString, Required: true, Unique: true},
			{Name: "name", Type: spec.ColumnString, Required: true},
			{Name: "active", Type: spec.ColumnBoolean},
		},
	}}
}

// DefaultEndpoints returns the synthetic endpoints assumed when a requirement
// defines none.
func DefaultEndpoints() []spec.APIEndpointDefinition {
	return []spec.APIEndpointDefinition{
		{Path: "/api/users", Method: "GET", Description: "List users"},
		{Path: "/api/users", Method: "POST", Description: "Create a user"},
	}
}

// DefaultComponents returns the synthetic UI components assumed when a
// requirement defines none.
func DefaultComponents() []spec.UIComponentDefinition {
	return []spec.UIComponentDefinition{
		{Name: "UserList", Type: spec.ComponentList, Endpoints: []string{"/api/users"}},
		{Name: "UserForm", Type: spec.ComponentForm, Endpoints: []string{"/api/users"}},
	}
}

// ApplyDefaults returns a copy of the requirement with the synthetic
// fallbacks filled in for every empty definition list. Defaulting happens
// here, as one explicit step, so the generators stay pure over the
// requirement they are handed.
func ApplyDefaults(req *spec.AppRequirement) *spec.AppRequirement {
	out := *req
	if len(out.Tables) == 0 {
		out.Tables = DefaultTables()
	}
	if len(out.Endpoints) == 0 {
		out.Endpoints = DefaultEndpoints()
	}
	if len(out.Components) == 0 {
		out.Components = DefaultComponents()
	}
	return &out
}
