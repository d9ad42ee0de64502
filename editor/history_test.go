package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meikuraledutech/pipeline"
)

func graphWith(ids ...string) pipeline.Graph {
	g := pipeline.Graph{}
	for _, id := range ids {
		g.Nodes = append(g.Nodes, pipeline.Node{ID: id})
	}
	return g
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History
	empty := pipeline.Graph{}
	one := graphWith("a")
	two := graphWith("a", "b")

	// Mutations: empty -> one -> two, checkpointing the pre-state.
	h.Checkpoint(empty)
	h.Checkpoint(one)
	require.Equal(t, 2, h.Depth())

	restored, ok := h.Undo(two)
	require.True(t, ok)
	assert.Equal(t, one, restored)
	assert.True(t, h.CanRedo())

	restored, ok = h.Undo(restored)
	require.True(t, ok)
	assert.Equal(t, empty, restored)
	assert.False(t, h.CanUndo())

	// Redo walks forward in the same order.
	restored, ok = h.Redo(restored)
	require.True(t, ok)
	assert.Equal(t, one, restored)

	restored, ok = h.Redo(restored)
	require.True(t, ok)
	assert.Equal(t, two, restored)
	assert.False(t, h.CanRedo())
}

func TestHistoryEmptyStacksAreNoOps(t *testing.T) {
	var h History

	_, ok := h.Undo(graphWith("a"))
	assert.False(t, ok)

	_, ok = h.Redo(graphWith("a"))
	assert.False(t, ok)
	assert.Equal(t, 0, h.Depth())
}

func TestHistoryCheckpointClearsFuture(t *testing.T) {
	var h History
	h.Checkpoint(pipeline.Graph{})

	_, ok := h.Undo(graphWith("a"))
	require.True(t, ok)
	require.True(t, h.CanRedo())

	h.Checkpoint(graphWith("b"))
	assert.False(t, h.CanRedo(), "a committed action invalidates redo history")
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	var h History
	live := pipeline.Graph{Nodes: []pipeline.Node{{
		ID:   "a",
		Data: map[string]any{"text": "before"},
	}}}

	h.Checkpoint(live)
	live.Nodes[0].Data["text"] = "after"

	restored, ok := h.Undo(live)
	require.True(t, ok)
	assert.Equal(t, "before", restored.Nodes[0].Data["text"],
		"checkpointed snapshot must not alias the live data map")
}
