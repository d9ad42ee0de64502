package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()

	assert.Equal(t, "llm-1", a.NextID("llm"))
	assert.Equal(t, "llm-2", a.NextID("llm"))
	assert.Equal(t, "llm-3", a.NextID("llm"))

	// Counters are per type.
	assert.Equal(t, "customInput-1", a.NextID("customInput"))
	assert.Equal(t, "llm-4", a.NextID("llm"))
}
