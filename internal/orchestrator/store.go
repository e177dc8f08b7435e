package orchestrator

import "sync"

// ContextStore holds the tracked orchestration contexts in insertion order.
// It is owned by a single Coordinator; there is no process-wide instance.
type ContextStore struct {
	mu    sync.Mutex
	items map[string]*OrchestrationContext
	order []string
}

// NewContextStore creates an empty context store.
func NewContextStore() *ContextStore {
	return &ContextStore{
		items: make(map[string]*OrchestrationContext),
	}
}

// Put registers a context under its app id.
func (s *ContextStore) Put(ctx *OrchestrationContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[ctx.AppID]; !exists {
		s.order = append(s.order, ctx.AppID)
	}
	s.items[ctx.AppID] = ctx
}

// Get returns the context for an app id.
func (s *ContextStore) Get(appID string) (*OrchestrationContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.items[appID]
	return ctx, ok
}

// Delete removes the context for an app id, reporting whether it existed.
func (s *ContextStore) Delete(appID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[appID]; !exists {
		return false
	}
	delete(s.items, appID)
	for i, id := range s.order {
		if id == appID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns every tracked context in insertion order.
func (s *ContextStore) List() []*OrchestrationContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*OrchestrationContext, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of tracked contexts.
func (s *ContextStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
