// Package provider implements the tool-provider framework: named in-process
// service stubs exposing fixed operation menus, and the registry that brokers
// calls to them.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Input is the loosely-typed request mapping passed to an operation.
type Input map[string]any

// Output is the loosely-typed response mapping returned by an operation.
type Output map[string]any

// Operation is a named unit of work on a provider.
type Operation func(ctx context.Context, input Input) (Output, error)

// Sentinel errors returned by the registry and by provider lifecycles.
var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrProviderUnhealthy = errors.New("provider is unhealthy")
	ErrOperationNotFound = errors.New("operation not found")
	ErrNotInitialized    = errors.New("provider not initialized")
)

// Provider is a registered named service stub. Initialize must be called
// before any operation succeeds; Healthy reports false before Initialize and
// after Shutdown. Operations never mutate provider state beyond what
// Initialize and Shutdown set.
type Provider interface {
	// Name returns the provider's registration name.
	Name() string

	// Initialize prepares the provider for use.
	Initialize(ctx context.Context) error

	// Shutdown tears the provider down. Operations fail afterwards.
	Shutdown(ctx context.Context) error

	// Healthy reports whether the provider can currently serve operations.
	Healthy() bool

	// Operations returns the fixed operation menu keyed by operation name.
	Operations() map[string]Operation
}

// lifecycle tracks the initialized/healthy pair every provider carries. It is
// settable only through Initialize and Shutdown.
type lifecycle struct {
	initialized bool
	healthy     bool
}

func (l *lifecycle) Initialize(ctx context.Context) error {
	l.initialized = true
	l.healthy = true
	return nil
}

func (l *lifecycle) Shutdown(ctx context.Context) error {
	l.initialized = false
	l.healthy = false
	return nil
}

func (l *lifecycle) Healthy() bool {
	return l.initialized && l.healthy
}

// ready guards the top of every operation.
func (l *lifecycle) ready() error {
	if !l.initialized {
		return ErrNotInitialized
	}
	return nil
}

// stringInput extracts a required string field from an operation input.
func stringInput(input Input, key string) (string, error) {
	v, ok := input[key]
	if !ok {
		return "", fmt.Errorf("missing input field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("input field %q must be a string", key)
	}
	return s, nil
}
