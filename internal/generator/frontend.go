package generator

import (
	"context"
	"fmt"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/provider"
	"github.com/appforge/appforge/internal/spec"
)

const frontendEntry = `import React from 'react';
import { createRoot } from 'react-dom/client';
import App from './App';

createRoot(document.getElementById('root')).render(<App />);
`

const frontendManifestTemplate = `{
  "name": "%s",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "react": "^18.0.0",
    "react-dom": "^18.0.0"
  }
}
`

// FrontendGenerator produces the frontend bundle: one file per UI component,
// an entry point, and the package manifest.
type FrontendGenerator struct {
	registry *provider.Registry
}

// NewFrontendGenerator creates a new frontend generator.
func NewFrontendGenerator(registry *provider.Registry) *FrontendGenerator {
	return &FrontendGenerator{registry: registry}
}

// Name returns the generator name.
func (g *FrontendGenerator) Name() string {
	return "frontend"
}

// Description returns the generator description.
func (g *FrontendGenerator) Description() string {
	return "Generate UI components and pages"
}

// Generate produces the frontend bundle. Pages and dashboards go through
// create-page, everything else through generate-component. Any single
// provider-call failure aborts the whole run.
func (g *FrontendGenerator) Generate(ctx context.Context, req *spec.AppRequirement) (Bundle, error) {
	bundle := make(Bundle)

	for _, c := range req.Components {
		operation := "generate-component"
		dir := "src/components"
		if c.Type == spec.ComponentPage || c.Type == spec.ComponentDashboard {
			operation = "create-page"
			dir = "src/pages"
		}

		out, err := g.registry.Invoke(ctx, provider.FrontendServiceName, operation,
			provider.Input{"component": c, "app": req.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to generate component %q: %w", c.Name, err)
		}

		code, ok := out["code"].(string)
		if !ok {
			return nil, fmt.Errorf("%s returned no code for component %q", operation, c.Name)
		}
		bundle[fmt.Sprintf("%s/%s.jsx", dir, c.Name)] = code
	}

	bundle["src/index.jsx"] = frontendEntry
	bundle["package.json"] = fmt.Sprintf(frontendManifestTemplate, naming.KebabCase(req.Name))
	return bundle, nil
}
