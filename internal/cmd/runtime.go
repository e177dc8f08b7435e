package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/appforge/appforge/internal/logging"
	"github.com/appforge/appforge/internal/orchestrator"
	"github.com/appforge/appforge/internal/provider"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()("✓")
	failureMark = color.New(color.FgRed).SprintFunc()("✗")
	warnColor   = color.New(color.FgYellow).SprintFunc()
)

// newCoordinator builds the per-invocation runtime: a logger, a provider
// registry populated with the default provider lineup, and a coordinator on
// top of it. The caller owns registry teardown.
func newCoordinator(ctx context.Context) (*orchestrator.Coordinator, *provider.Registry, error) {
	logger := logging.New()

	registry := provider.NewRegistry(logger)
	if err := provider.RegisterDefaults(ctx, registry); err != nil {
		return nil, nil, fmt.Errorf("failed to set up providers: %w", err)
	}

	return orchestrator.NewCoordinator(registry, logger), registry, nil
}
