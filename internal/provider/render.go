package provider

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/appforge/appforge/internal/naming"
)

// Engine renders the template strings the provider stubs synthesize their
// output from.
type Engine struct {
	funcMap template.FuncMap
}

// NewEngine creates a template engine with the naming helpers installed.
func NewEngine() *Engine {
	return &Engine{
		funcMap: template.FuncMap{
			"dasherize":   naming.Dasherize,
			"camelize":    naming.Camelize,
			"pascalize":   naming.Pascalize,
			"underscore":  naming.Underscore,
			"kebabCase":   naming.KebabCase,
			"snakeCase":   naming.SnakeCase,
			"pluralize":   naming.Pluralize,
			"singularize": naming.Singularize,
			"sanitize":    naming.SanitizeIdentifier,
			"upper":       strings.ToUpper,
			"lower":       strings.ToLower,
			"title":       naming.Title,
		},
	}
}

// Render renders a template string with the given data.
func (e *Engine) Render(templateStr string, data any) (string, error) {
	tmpl, err := template.New("template").Funcs(e.funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
