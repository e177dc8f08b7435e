package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStoreOrderSurvivesDeletes(t *testing.T) {
	s := NewContextStore()
	for _, id := range []string{"a", "b", "c"} {
		s.Put(&OrchestrationContext{AppID: id})
	}

	require.True(t, s.Delete("b"))
	assert.False(t, s.Delete("b"), "second delete reports absence")

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].AppID)
	assert.Equal(t, "c", got[1].AppID)
	assert.Equal(t, 2, s.Len())
}

func TestContextStorePutSameIDKeepsPosition(t *testing.T) {
	s := NewContextStore()
	s.Put(&OrchestrationContext{AppID: "a"})
	s.Put(&OrchestrationContext{AppID: "b"})

	replacement := &OrchestrationContext{AppID: "a", Phase: PhaseGenerating}
	s.Put(replacement)

	got := s.List()
	require.Len(t, got, 2)
	assert.Same(t, replacement, got[0])
}
