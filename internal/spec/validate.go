package spec

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// componentNamePattern matches capitalized identifiers (PascalCase).
	componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// ValidateRequirement runs every requirement-level check and returns one
// distinct message per failed check. It never short-circuits; a requirement
// missing both name and description yields two messages.
func ValidateRequirement(req *AppRequirement) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "app name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		errs = append(errs, "app description is required")
	}
	if len(req.Features) == 0 {
		errs = append(errs, "at least one feature is required")
	}

	return errs
}

// ValidateTables checks every table definition.
func ValidateTables(tables []TableDefinition) error {
	for _, table := range tables {
		if strings.TrimSpace(table.Name) == "" {
			return fmt.Errorf("table name is required")
		}
		for _, col := range table.Columns {
			if strings.TrimSpace(col.Name) == "" {
				return fmt.Errorf("table %q: column name is required", table.Name)
			}
			if !validColumnType(col.Type) {
				return fmt.Errorf("table %q: column %q has invalid type %q", table.Name, col.Name, col.Type)
			}
		}
	}
	return nil
}

// ValidateEndpoints checks every endpoint definition and enforces
// (method, path) uniqueness within the requirement.
func ValidateEndpoints(endpoints []APIEndpointDefinition) error {
	seen := make(map[string]bool, len(endpoints))

	for _, ep := range endpoints {
		if !strings.HasPrefix(ep.Path, "/") {
			return fmt.Errorf("endpoint path %q must start with /", ep.Path)
		}
		if !validMethod(ep.Method) {
			return fmt.Errorf("endpoint %s: invalid method %q", ep.Path, ep.Method)
		}
		if strings.TrimSpace(ep.Description) == "" {
			return fmt.Errorf("endpoint %s %s: description is required", ep.Method, ep.Path)
		}

		key := ep.Method + " " + ep.Path
		if seen[key] {
			return fmt.Errorf("duplicate endpoint %s", key)
		}
		seen[key] = true
	}
	return nil
}

// ValidateComponents checks every UI component definition. Components other
// than pages and dashboards must reference at least one endpoint.
func ValidateComponents(components []UIComponentDefinition) error {
	for _, c := range components {
		if !componentNamePattern.MatchString(c.Name) {
			return fmt.Errorf("component name %q must be a capitalized identifier", c.Name)
		}
		if !validComponentType(c.Type) {
			return fmt.Errorf("component %q: invalid type %q", c.Name, c.Type)
		}
		if c.Type != ComponentDashboard && c.Type != ComponentPage && len(c.Endpoints) == 0 {
			return fmt.Errorf("component %q of type %s must reference at least one endpoint", c.Name, c.Type)
		}
	}
	return nil
}

// ValidateDefinitions checks tables, endpoints and components in one pass,
// returning the first structural problem found.
func ValidateDefinitions(req *AppRequirement) error {
	if err := ValidateTables(req.Tables); err != nil {
		return err
	}
	if err := ValidateEndpoints(req.Endpoints); err != nil {
		return err
	}
	return ValidateComponents(req.Components)
}

func validColumnType(t ColumnType) bool {
	for _, ct := range ColumnTypes {
		if t == ct {
			return true
		}
	}
	return false
}

func validMethod(m string) bool {
	for _, method := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

func validComponentType(t ComponentType) bool {
	for _, ct := range ComponentTypes {
		if t == ct {
			return true
		}
	}
	return false
}
