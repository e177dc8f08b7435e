package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Registry owns the set of registered providers and brokers named-operation
// calls to them. Providers never reference each other; all cross-provider
// coordination happens above the registry.
type Registry struct {
	mu        sync.Mutex
	providers map[string]Provider
	order     []string
	logger    *slog.Logger
}

// NewRegistry creates an empty provider registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		providers: make(map[string]Provider),
		logger:    logger,
	}
}

// Register initializes the provider and adds it under its name. Reusing a
// name overwrites the previous registration after shutting it down. If
// Initialize fails nothing is registered and the failure propagates.
func (r *Registry) Register(ctx context.Context, p Provider) error {
	name := p.Name()

	if err := p.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize provider %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, exists := r.providers[name]; exists {
		if err := prev.Shutdown(ctx); err != nil {
			r.logger.Warn("shutdown of replaced provider failed", "provider", name, "error", err)
		}
	} else {
		r.order = append(r.order, name)
	}

	r.providers[name] = p
	r.logger.Debug("provider registered", "provider", name)
	return nil
}

// Unregister shuts the named provider down and removes it. Unknown names are
// a warn-level no-op.
func (r *Registry) Unregister(ctx context.Context, name string) error {
	r.mu.Lock()
	p, exists := r.providers[name]
	if exists {
		delete(r.providers, name)
		for i, n := range r.order {
			if n == name {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if !exists {
		r.logger.Warn("unregister of unknown provider", "provider", name)
		return nil
	}

	if err := p.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down provider %q: %w", name, err)
	}
	return nil
}

// Invoke calls the named operation on the named provider and returns its
// output verbatim. It fails with ErrProviderNotFound for unknown providers,
// ErrProviderUnhealthy when the liveness check reports false, and
// ErrOperationNotFound when the provider does not expose the operation.
func (r *Registry) Invoke(ctx context.Context, providerName, operationName string, input Input) (Output, error) {
	r.mu.Lock()
	p, exists := r.providers[providerName]
	r.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, providerName)
	}
	if !p.Healthy() {
		return nil, fmt.Errorf("%w: %q", ErrProviderUnhealthy, providerName)
	}

	op, ok := p.Operations()[operationName]
	if !ok {
		return nil, fmt.Errorf("%w: %q on provider %q", ErrOperationNotFound, operationName, providerName)
	}

	r.logger.Debug("invoking operation", "provider", providerName, "operation", operationName)
	out, err := op(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("operation %q on provider %q failed: %w", operationName, providerName, err)
	}
	return out, nil
}

// HealthCheckAll probes every registered provider and returns a name→healthy
// mapping. A probe that panics is recorded as unhealthy rather than
// propagated.
func (r *Registry) HealthCheckAll() map[string]bool {
	r.mu.Lock()
	providers := make(map[string]Provider, len(r.providers))
	for name, p := range r.providers {
		providers[name] = p
	}
	r.mu.Unlock()

	result := make(map[string]bool, len(providers))
	for name, p := range providers {
		result[name] = probe(p)
	}
	return result
}

// probe isolates a single liveness check so a misbehaving provider cannot
// take down the health sweep.
func probe(p Provider) (healthy bool) {
	defer func() {
		if recover() != nil {
			healthy = false
		}
	}()
	return p.Healthy()
}

// Get returns the registered provider under the given name.
func (r *Registry) Get(name string) (Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, exists := r.providers[name]
	return p, exists
}

// ListProviders returns the registered provider names in registration order.
func (r *Registry) ListProviders() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// ShutdownAll shuts every provider down and clears the registry. The first
// shutdown failure is returned after all providers have been attempted.
func (r *Registry) ShutdownAll(ctx context.Context) error {
	r.mu.Lock()
	providers := make([]Provider, 0, len(r.providers))
	for _, name := range r.order {
		providers = append(providers, r.providers[name])
	}
	r.providers = make(map[string]Provider)
	r.order = nil
	r.mu.Unlock()

	var firstErr error
	for _, p := range providers {
		if err := p.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to shut down provider %q: %w", p.Name(), err)
		}
	}
	return firstErr
}
