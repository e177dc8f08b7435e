package generator

import (
	"context"
	"fmt"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/provider"
	"github.com/appforge/appforge/internal/spec"
)

const backendManifestTemplate = `module %s

go 1.25
`

// BackendGenerator produces the backend bundle: one route file per endpoint,
// an entry point, and a package manifest. For a requirement with N endpoints
// the bundle holds exactly N+2 files.
type BackendGenerator struct {
	registry *provider.Registry
}

// NewBackendGenerator creates a new backend generator.
func NewBackendGenerator(registry *provider.Registry) *BackendGenerator {
	return &BackendGenerator{registry: registry}
}

// Name returns the generator name.
func (g *BackendGenerator) Name() string {
	return "backend"
}

// Description returns the generator description.
func (g *BackendGenerator) Description() string {
	return "Generate an API server with one route per endpoint"
}

// Generate produces the backend bundle. Any single provider-call failure
// aborts the whole run.
func (g *BackendGenerator) Generate(ctx context.Context, req *spec.AppRequirement) (Bundle, error) {
	bundle := make(Bundle)

	for _, ep := range req.Endpoints {
		out, err := g.registry.Invoke(ctx, provider.BackendServiceName, "create-endpoint",
			provider.Input{"endpoint": ep, "app": req.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to generate endpoint %s %s: %w", ep.Method, ep.Path, err)
		}

		code, ok := out["code"].(string)
		if !ok {
			return nil, fmt.Errorf("create-endpoint returned no code for %s %s", ep.Method, ep.Path)
		}
		handler, _ := out["handler"].(string)
		if handler == "" {
			handler = provider.HandlerName(ep)
		}

		// Distinct endpoints can normalize to the same handler name
		// ("/api/users" and "/api-users" both yield get_api_users); suffix a
		// counter so every endpoint keeps its own route file.
		path := fmt.Sprintf("src/routes/%s.go", handler)
		for n := 2; ; n++ {
			if _, taken := bundle[path]; !taken {
				break
			}
			path = fmt.Sprintf("src/routes/%s_%d.go", handler, n)
		}
		bundle[path] = code
	}

	out, err := g.registry.Invoke(ctx, provider.BackendServiceName, "generate-api",
		provider.Input{"app": req.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to generate API entry point: %w", err)
	}

	entry, ok := out["code"].(string)
	if !ok {
		return nil, fmt.Errorf("generate-api returned no code")
	}
	bundle["src/main.go"] = entry

	bundle["go.mod"] = fmt.Sprintf(backendManifestTemplate, "example.com/"+naming.KebabCase(req.Name))
	return bundle, nil
}
