package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/spec"
)

// BackendServiceName is the conventional registration name of the backend
// tool provider.
const BackendServiceName = "backend-service"

const backendMainTemplate = `package main

import (
	"log"
	"net/http"
)

// {{.AppPascal}} API server.
func main() {
	mux := http.NewServeMux()
	registerRoutes(mux)

	log.Printf("{{.App}} listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", mux))
}
`

const backendHandlerTemplate = `package routes

import (
	"encoding/json"
	"net/http"
)

// {{.HandlerPascal}} handles {{.Method}} {{.Path}}.
// {{.Description}}
func {{.HandlerPascal}}(w http.ResponseWriter, r *http.Request) {
	if r.Method != "{{.Method}}" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"endpoint": "{{.Path}}",
		"status":   "ok",
	})
}
`

// BackendProvider synthesizes API server and route handler text.
type BackendProvider struct {
	lifecycle
	engine *Engine
}

// NewBackendProvider creates the backend tool provider.
func NewBackendProvider() *BackendProvider {
	return &BackendProvider{engine: NewEngine()}
}

// Name returns the provider's registration name.
func (p *BackendProvider) Name() string {
	return BackendServiceName
}

// Operations returns the provider's fixed operation menu.
func (p *BackendProvider) Operations() map[string]Operation {
	return map[string]Operation{
		"generate-api":    p.generateAPI,
		"create-endpoint": p.createEndpoint,
		"deploy-backend":  p.deployBackend,
	}
}

func (p *BackendProvider) generateAPI(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	app, err := stringInput(input, "app")
	if err != nil {
		return nil, err
	}

	code, err := p.engine.Render(backendMainTemplate, map[string]string{
		"App":       naming.KebabCase(app),
		"AppPascal": naming.Pascalize(app),
	})
	if err != nil {
		return nil, err
	}

	return Output{"code": code, "entry": "main.go"}, nil
}

func (p *BackendProvider) createEndpoint(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	ep, err := endpointInput(input)
	if err != nil {
		return nil, err
	}

	handler := HandlerName(ep)
	code, err := p.engine.Render(backendHandlerTemplate, map[string]string{
		"HandlerPascal": naming.Pascalize(handler),
		"Method":        ep.Method,
		"Path":          ep.Path,
		"Description":   ep.Description,
	})
	if err != nil {
		return nil, err
	}

	return Output{"code": code, "handler": handler}, nil
}

func (p *BackendProvider) deployBackend(ctx context.Context, input Input) (Output, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	app, err := stringInput(input, "app")
	if err != nil {
		return nil, err
	}

	return Output{
		"url":    fmt.Sprintf("https://api.%s.example.com", naming.KebabCase(app)),
		"status": "deployed",
	}, nil
}

// HandlerName derives a stable handler identifier from an endpoint, e.g.
// GET /api/posts -> get_api_posts.
func HandlerName(ep spec.APIEndpointDefinition) string {
	path := strings.NewReplacer("/", " ", ":", " ", "{", " ", "}", " ").Replace(ep.Path)
	return naming.SanitizeIdentifier(naming.SnakeCase(ep.Method + " " + path))
}

// endpointInput extracts a required endpoint definition from an operation input.
func endpointInput(input Input) (spec.APIEndpointDefinition, error) {
	v, ok := input["endpoint"]
	if !ok {
		return spec.APIEndpointDefinition{}, fmt.Errorf("missing input field %q", "endpoint")
	}
	ep, ok := v.(spec.APIEndpointDefinition)
	if !ok {
		return spec.APIEndpointDefinition{}, fmt.Errorf("input field %q must be an endpoint definition", "endpoint")
	}
	return ep, nil
}
