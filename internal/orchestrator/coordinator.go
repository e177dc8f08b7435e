package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/appforge/appforge/internal/generator"
	"github.com/appforge/appforge/internal/naming"
	"github.com/appforge/appforge/internal/provider"
	"github.com/appforge/appforge/internal/spec"
)

// Coordinator is the orchestration facade. It owns the context store and the
// three domain generators, and brokers all provider work through the injected
// registry.
type Coordinator struct {
	registry   *provider.Registry
	store      *ContextStore
	database   generator.Generator
	backend    generator.Generator
	frontend   generator.Generator
	extensions *generator.Registry
	logger     *slog.Logger
}

// NewCoordinator creates a coordinator using the given provider registry.
func NewCoordinator(registry *provider.Registry, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		registry:   registry,
		store:      NewContextStore(),
		database:   generator.NewDatabaseGenerator(registry),
		backend:    generator.NewBackendGenerator(registry),
		frontend:   generator.NewFrontendGenerator(registry),
		extensions: generator.NewRegistry(),
		logger:     logger,
	}
}

// Plan allocates a fresh app id, registers a tracking context, and validates
// the requirement. Every validation check runs; all applicable error messages
// accumulate on the returned context. Planning itself never fails - callers
// must inspect the context's Errors.
func (c *Coordinator) Plan(req *spec.AppRequirement) *OrchestrationContext {
	octx := &OrchestrationContext{
		AppID:       uuid.NewString(),
		Requirement: req,
		Phase:       PhasePlanning,
	}
	c.store.Put(octx)

	for _, msg := range spec.ValidateRequirement(req) {
		octx.appendError(msg)
	}

	c.logger.Debug("planned app", "appId", octx.AppID, "errors", len(octx.Errors))
	return octx
}

// Generate plans the requirement and, when planning is clean, runs the
// database, backend and frontend generators strictly in sequence. The first
// generator failure aborts the rest, is recorded on the context, and is
// returned; no partial GeneratedApp is ever produced. The returned app
// carries the same id the tracking context was registered under.
func (c *Coordinator) Generate(ctx context.Context, req *spec.AppRequirement) (*GeneratedApp, error) {
	octx := c.Plan(req)
	if len(octx.Errors) > 0 {
		return nil, &PlanningError{AppID: octx.AppID, Messages: octx.Errors}
	}

	octx.advance(PhaseGenerating)
	effective := generator.ApplyDefaults(req)

	run := func(g generator.Generator) (generator.Bundle, error) {
		bundle, err := g.Generate(ctx, effective)
		if err != nil {
			octx.appendError(err.Error())
			return nil, &GenerationError{Stage: g.Name(), Err: err}
		}
		return bundle, nil
	}

	database, err := run(c.database)
	if err != nil {
		return nil, err
	}
	backend, err := run(c.backend)
	if err != nil {
		return nil, err
	}
	frontend, err := run(c.frontend)
	if err != nil {
		return nil, err
	}

	app := &GeneratedApp{
		ID:          octx.AppID,
		Name:        req.Name,
		Requirement: req,
		Frontend:    frontend,
		Backend:     backend,
		Database:    database,
		CreatedAt:   time.Now(),
		Status:      StatusGenerated,
	}
	octx.GeneratedApp = app

	c.logger.Info("app generated", "appId", app.ID, "name", app.Name,
		"files", len(frontend)+len(backend)+len(database))
	return app, nil
}

// Orchestrate runs the full pipeline: planning and generation (via Generate,
// which aborts on any planning error), then deployment. On deploy success the
// app's status becomes deployed, the repository URL is recorded, and the
// context's phase advances to deploying. No stage's failure triggers partial
// cleanup.
func (c *Coordinator) Orchestrate(ctx context.Context, req *spec.AppRequirement) (*GeneratedApp, error) {
	app, err := c.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	repoURL, err := c.Deploy(ctx, app)
	if err != nil {
		if octx, ok := c.store.Get(app.ID); ok {
			octx.appendError(err.Error())
		}
		return nil, err
	}

	app.Status = StatusDeployed
	app.Deployment = Deployment{RepoURL: repoURL, Branch: "main"}
	if octx, ok := c.store.Get(app.ID); ok {
		octx.advance(PhaseDeploying)
	}

	c.logger.Info("app deployed", "appId", app.ID, "repo", repoURL)
	return app, nil
}

// Deploy pushes a generated app through the github provider: repository
// creation, a single commit carrying every file of all three bundles, then
// workflow setup. The first failing step aborts and propagates; completed
// steps are not undone. The returned URL is synthesized locally rather than
// echoed from the provider.
func (c *Coordinator) Deploy(ctx context.Context, app *GeneratedApp) (string, error) {
	out, err := c.registry.Invoke(ctx, provider.GitHubServiceName, "create-repository",
		provider.Input{"name": app.Name, "description": describe(app)})
	if err != nil {
		return "", &DeploymentError{Step: "create-repository", Err: err}
	}
	repo, _ := out["repository"].(string)
	if repo == "" {
		return "", &DeploymentError{Step: "create-repository", Err: fmt.Errorf("provider returned no repository name")}
	}

	_, err = c.registry.Invoke(ctx, provider.GitHubServiceName, "commit-code", provider.Input{
		"repository": repo,
		"files":      DeployFiles(app),
		"message":    "Initial commit",
	})
	if err != nil {
		return "", &DeploymentError{Step: "commit-code", Err: err}
	}

	_, err = c.registry.Invoke(ctx, provider.GitHubServiceName, "setup-workflows",
		provider.Input{"repository": repo})
	if err != nil {
		return "", &DeploymentError{Step: "setup-workflows", Err: err}
	}

	return fmt.Sprintf("https://github.com/%s/%s", provider.GitHubOrg, naming.KebabCase(app.Name)), nil
}

// DeployFiles flattens an app's three bundles into the single path→content
// mapping committed on deploy. Paths keep their bundle prefix: frontend/,
// backend/, and database/ (whose bundle paths already begin with schema/ or
// migrations/).
func DeployFiles(app *GeneratedApp) map[string]string {
	files := make(map[string]string, len(app.Frontend)+len(app.Backend)+len(app.Database))
	for path, content := range app.Frontend {
		files["frontend/"+path] = content
	}
	for path, content := range app.Backend {
		files["backend/"+path] = content
	}
	for path, content := range app.Database {
		files["database/"+path] = content
	}
	return files
}

// Status looks up the tracked context for an app id.
func (c *Coordinator) Status(appID string) (*OrchestrationContext, error) {
	octx, ok := c.store.Get(appID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAppNotFound, appID)
	}
	return octx, nil
}

// ListAll returns every tracked context in insertion order.
func (c *Coordinator) ListAll() []*OrchestrationContext {
	return c.store.List()
}

// Cancel removes the tracked context for an app id. Unknown ids are a
// warn-level no-op. Cancellation only drops bookkeeping state; it cannot
// interrupt work already in flight and has no provider-side effects to undo.
func (c *Coordinator) Cancel(appID string) {
	if !c.store.Delete(appID) {
		c.logger.Warn("cancel of unknown app", "appId", appID)
		return
	}
	c.logger.Info("app cancelled", "appId", appID)
}

// RegisterGenerator adds a generator to the coordinator's extension registry.
// The last registration under a name wins. Nothing dispatches through the
// extension registry yet.
func (c *Coordinator) RegisterGenerator(g generator.Generator) {
	c.extensions.Register(g)
}

// Generators lists the names registered in the extension registry.
func (c *Coordinator) Generators() []string {
	return c.extensions.List()
}

// describe returns the requirement description used for repository metadata.
func describe(app *GeneratedApp) string {
	if app.Requirement != nil {
		return app.Requirement.Description
	}
	return ""
}
