// Package spec defines the application requirement model consumed by the
// generators and the orchestrator, along with parsing and validation for it.
package spec

// ColumnType is the semantic type of a table column.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnNumber  ColumnType = "number"
	ColumnBoolean ColumnType = "boolean"
	ColumnDate    ColumnType = "date"
	ColumnText    ColumnType = "text"
	ColumnJSON    ColumnType = "json"
)

// ColumnTypes lists every valid column type.
var ColumnTypes = []ColumnType{
	ColumnString, ColumnNumber, ColumnBoolean, ColumnDate, ColumnText, ColumnJSON,
}

// ComponentType is the kind of UI component to generate.
type ComponentType string

const (
	ComponentPage      ComponentType = "page"
	ComponentForm      ComponentType = "form"
	ComponentList      ComponentType = "list"
	ComponentDetail    ComponentType = "detail"
	ComponentDashboard ComponentType = "dashboard"
)

// ComponentTypes lists every valid component type.
var ComponentTypes = []ComponentType{
	ComponentPage, ComponentForm, ComponentList, ComponentDetail, ComponentDashboard,
}

// Methods lists the HTTP methods an endpoint definition may use.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// ColumnDefinition describes a single column of a table.
type ColumnDefinition struct {
	Name     string     `yaml:"name" json:"name"`
	Type     ColumnType `yaml:"type" json:"type"`
	Required bool       `yaml:"required,omitempty" json:"required,omitempty"`
	Unique   bool       `yaml:"unique,omitempty" json:"unique,omitempty"`
}

// TableDefinition describes a flat database table. There is no relation or
// foreign-key model.
type TableDefinition struct {
	Name    string             `yaml:"name" json:"name"`
	Columns []ColumnDefinition `yaml:"columns" json:"columns"`
}

// APIEndpointDefinition describes one HTTP endpoint of the generated backend.
type APIEndpointDefinition struct {
	Path        string         `yaml:"path" json:"path"`
	Method      string         `yaml:"method" json:"method"`
	Description string         `yaml:"description" json:"description"`
	Request     map[string]any `yaml:"request,omitempty" json:"request,omitempty"`
	Response    map[string]any `yaml:"response,omitempty" json:"response,omitempty"`
}

// UIComponentDefinition describes one frontend component.
type UIComponentDefinition struct {
	Name      string        `yaml:"name" json:"name"`
	Type      ComponentType `yaml:"type" json:"type"`
	Endpoints []string      `yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
	Fields    []string      `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// AppRequirement is the user-supplied intent for one application. It is
// treated as immutable once parsed; generators never mutate it.
type AppRequirement struct {
	Name        string                  `yaml:"name" json:"name"`
	Description string                  `yaml:"description" json:"description"`
	Features    []string                `yaml:"features" json:"features"`
	Tables      []TableDefinition       `yaml:"tables,omitempty" json:"tables,omitempty"`
	Endpoints   []APIEndpointDefinition `yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
	Components  []UIComponentDefinition `yaml:"components,omitempty" json:"components,omitempty"`
}
