package provider

import "context"

// DefaultSet lists the factories for the conventional provider lineup.
var DefaultSet = map[string]func() Provider{
	DatabaseServiceName: func() Provider { return NewDatabaseProvider() },
	BackendServiceName:  func() Provider { return NewBackendProvider() },
	FrontendServiceName: func() Provider { return NewFrontendProvider() },
	GitHubServiceName:   func() Provider { return NewGitHubProvider() },
}

// RegisterDefaults constructs and registers the conventional provider lineup
// into the registry. The first initialization failure aborts and propagates.
func RegisterDefaults(ctx context.Context, r *Registry) error {
	for _, name := range []string{
		DatabaseServiceName,
		BackendServiceName,
		FrontendServiceName,
		GitHubServiceName,
	} {
		if err := r.Register(ctx, DefaultSet[name]()); err != nil {
			return err
		}
	}
	return nil
}
