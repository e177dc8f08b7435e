package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/spec"
)

// FrontendServiceName is the conventional registration name of the frontend
// tool provider.
const FrontendServiceName = "frontend-service"

const frontendComponentTemplate = `import React from 'react';

// {{.Name}} ({{.Type}})
export function {{.Name}}() {
  return (
    <div className="{{.ClassName}}">
      <h2>{{.Title}}</h2>{{range .Endpoints}}
      {/* data source: {{.}} */}{{end}}
    </div>
  );
}

export default {{.Name}};
`

const frontendPageTemplate = `import React from 'react';

// {{.Name}} page
export function {{.Name}}() {
  return (
    <main className="{{.ClassName}}">
      <h1>{{.Title}}</h1>
    </main>
  );
}

export default {{.Name}};
`

// FrontendProvider synthesizes UI component text.
type FrontendProvider struct {
	lifecycle
	engine *Engine
}

// NewFrontendProvider creates the frontend tool provider.
func NewFrontendProvider() *FrontendProvider {
	return &FrontendProvider{engine: NewEngine()}
}

// Name returns the provider's registration name.
func (p *FrontendProvider) Name() string {
	return FrontendServiceName
}

// Operations returns the provider's fixed operation menu.
func (p *FrontendProvider) Operations() map[string]Operation {
	return map[string]Operation{
		"generate-component": p.generateComponent,
		"create-page":        p.createPage,
		"deploy-frontend":    p.deployFrontend,
	}
}

func (p *FrontendProvider) generateComponent(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	c, err := componentInput(input)
	if err != nil {
		return nil, err
	}

	code, err := p.engine.Render(frontendComponentTemplate, map[string]any{
		"Name":      c.Name,
		"Type":      string(c.Type),
		"ClassName": naming.KebabCase(c.Name),
		"Title":     strings.Join(splitPascal(c.Name), " "),
		"Endpoints": c.Endpoints,
	})
	if err != nil {
		return nil, err
	}

	return Output{"code": code, "component": c.Name}, nil
}

func (p *FrontendProvider) createPage(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	c, err := componentInput(input)
	if err != nil {
		return nil, err
	}

	code, err := p.engine.Render(frontendPageTemplate, map[string]any{
		"Name":      c.Name,
		"ClassName": naming.KebabCase(c.Name),
		"Title":     strings.Join(splitPascal(c.Name), " "),
	})
	if err != nil {
		return nil, err
	}

	return Output{"code": code, "component": c.Name}, nil
}

func (p *FrontendProvider) deployFrontend(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	app, err := stringInput(input, "app")
	if err != nil {
		return nil, err
	}

	return Output{
		"url":    fmt.Sprintf("https://%s.example.com", naming.KebabCase(app)),
		"status": "deployed",
	}, nil
}

// splitPascal splits a PascalCase name into its words for display text.
func splitPascal(s string) []string {
	return strings.Split(naming.KebabCase(s), "-")
}

// componentInput extracts a required component definition from an operation input.
func componentInput(input Input) (spec.UIComponentDefinition, error) {
	v, ok := input["component"]
	if !ok {
		return spec.UIComponentDefinition{}, fmt.Errorf("missing input field %q", "component")
	}
	c, ok := v.(spec.UIComponentDefinition)
	if !ok {
		return spec.UIComponentDefinition{}, fmt.Errorf("input field %q must be a component definition", "component")
	}
	return c, nil
}
