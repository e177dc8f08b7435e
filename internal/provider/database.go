package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/spec"
)

// DatabaseServiceName is the conventional registration name of the database
// tool provider.
const DatabaseServiceName = "database-service"

// DatabaseProvider synthesizes SQL schema and migration text.
type DatabaseProvider struct {
	lifecycle
}

// NewDatabaseProvider creates the database tool provider.
func NewDatabaseProvider() *DatabaseProvider {
	return &DatabaseProvider{}
}

// Name returns the provider's registration name.
func (p *DatabaseProvider) Name() string {
	return DatabaseServiceName
}

// Operations returns the provider's fixed operation menu.
func (p *DatabaseProvider) Operations() map[string]Operation {
	return map[string]Operation{
		"generate-schema":  p.generateSchema,
		"create-table":     p.createTable,
		"setup-migrations": p.setupMigrations,
	}
}

func (p *DatabaseProvider) generateSchema(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	app, err := stringInput(input, "app")
	if err != nil {
		return nil, err
	}
	tables, err := tablesInput(input)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Schema for %s\n", app)
	for _, t := range tables {
		fmt.Fprintf(&b, "-- table: %s\n", naming.SnakeCase(t.Name))
	}

	return Output{"schema": b.String(), "tables": len(tables)}, nil
}

func (p *DatabaseProvider) createTable(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	table, err := tableInput(input)
	if err != nil {
		return nil, err
	}

	sql, err := renderTable(table)
	if err != nil {
		return nil, err
	}

	return Output{"sql": sql, "table": naming.SnakeCase(table.Name)}, nil
}

func (p *DatabaseProvider) setupMigrations(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	app, err := stringInput(input, "app")
	if err != nil {
		return nil, err
	}
	tables, err := tablesInput(input)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- Migration 001: initial schema for %s\n\n", app)
	for _, t := range tables {
		sql, err := renderTable(t)
		if err != nil {
			return nil, err
		}
		b.WriteString(sql)
		b.WriteString("\n")
	}

	return Output{"migration": b.String(), "version": "001"}, nil
}

// renderTable turns one table definition into a CREATE TABLE statement.
func renderTable(table spec.TableDefinition) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", naming.SnakeCase(table.Name))
	b.WriteString("    id SERIAL PRIMARY KEY")

	for _, col := range table.Columns {
		b.WriteString(",\n")
		fmt.Fprintf(&b, "    %s %s", naming.SnakeCase(col.Name), sqlType(col.Type))
		if col.Required {
			b.WriteString(" NOT NULL")
		}
		if col.Unique {
			b.WriteString(" UNIQUE")
		}
	}

	b.WriteString(",\n    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP\n);\n")
	return b.String(), nil
}

func sqlType(t spec.ColumnType) string {
	switch t {
	case spec.ColumnNumber:
		return "NUMERIC"
	case spec.ColumnBoolean:
		return "BOOLEAN"
	case spec.ColumnDate:
		return "TIMESTAMP"
	case spec.ColumnText:
		return "TEXT"
	case spec.ColumnJSON:
		return "JSONB"
	default:
		return "VARCHAR(255)"
	}
}

// tableInput extracts a required table definition from an operation input.
func tableInput(input Input) (spec.TableDefinition, error) {
	v, ok := input["table"]
	if !ok {
		return spec.TableDefinition{}, fmt.Errorf("missing input field %q", "table")
	}
	table, ok := v.(spec.TableDefinition)
	if !ok {
		return spec.TableDefinition{}, fmt.Errorf("input field %q must be a table definition", "table")
	}
	return table, nil
}

// tablesInput extracts a required table-definition list from an operation input.
func tablesInput(input Input) ([]spec.TableDefinition, error) {
	v, ok := input["tables"]
	if !ok {
		return nil, fmt.Errorf("missing input field %q", "tables")
	}
	tables, ok := v.([]spec.TableDefinition)
	if !ok {
		return nil, fmt.Errorf("input field %q must be a table definition list", "tables")
	}
	return tables, nil
}
