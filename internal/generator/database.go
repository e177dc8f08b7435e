package generator

import (
	"context"
	"fmt"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/provider"
	"github.com/appforge/appforge/internal/spec"
)

const schemaReadme = `# Database

Generated schema and migrations. Apply migrations in numeric order.
`

// DatabaseGenerator produces the database bundle: one schema file per table,
// an initial migration, and fixed boilerplate.
type DatabaseGenerator struct {
	registry *provider.Registry
}

// NewDatabaseGenerator creates a new database generator.
func NewDatabaseGenerator(registry *provider.Registry) *DatabaseGenerator {
	return &DatabaseGenerator{registry: registry}
}

// Name returns the generator name.
func (g *DatabaseGenerator) Name() string {
	return "database"
}

// Description returns the generator description.
func (g *DatabaseGenerator) Description() string {
	return "Generate SQL schema and migrations for the app's tables"
}

// Generate produces the database bundle. Any single provider-call failure
// aborts the whole run.
func (g *DatabaseGenerator) Generate(ctx context.Context, req *spec.AppRequirement) (Bundle, error) {
	bundle := make(Bundle)

	for _, table := range req.Tables {
		out, err := g.registry.Invoke(ctx, provider.DatabaseServiceName, "create-table",
			provider.Input{"table": table})
		if err != nil {
			return nil, fmt.Errorf("failed to generate table %q: %w", table.Name, err)
		}

		sql, ok := out["sql"].(string)
		if !ok {
			return nil, fmt.Errorf("create-table returned no sql for table %q", table.Name)
		}
		bundle[fmt.Sprintf("schema/%s.sql", naming.SnakeCase(table.Name))] = sql
	}

	out, err := g.registry.Invoke(ctx, provider.DatabaseServiceName, "setup-migrations",
		provider.Input{"app": req.Name, "tables": req.Tables})
	if err != nil {
		return nil, fmt.Errorf("failed to generate migrations: %w", err)
	}

	migration, ok := out["migration"].(string)
	if !ok {
		return nil, fmt.Errorf("setup-migrations returned no migration")
	}
	bundle["migrations/001_init.sql"] = migration

	bundle["schema/README.md"] = schemaReadme
	return bundle, nil
}
