package editor

import "github.com/meikuraledutech/pipeline"

// History holds snapshot-based undo/redo state. The live graph itself
// is never stored in either stack; callers pass it in when navigating
// so the stacks always hold only non-current states.
type History struct {
	past   []pipeline.Graph // oldest first
	future []pipeline.Graph // nearest redo first
}

// Checkpoint pushes a copy of the current live graph onto the past
// stack and invalidates any redo history.
func (h *History) Checkpoint(current pipeline.Graph) {
	h.past = append(h.past, current.Clone())
	h.future = nil
}

// Undo exchanges the live graph for the most recent checkpoint.
// Returns false (and leaves everything untouched) when there is
// nothing to undo.
func (h *History) Undo(current pipeline.Graph) (pipeline.Graph, bool) {
	if len(h.past) == 0 {
		return pipeline.Graph{}, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]pipeline.Graph{current.Clone()}, h.future...)
	return restored, true
}

// Redo exchanges the live graph for the nearest undone state. Returns
// false when there is nothing to redo.
func (h *History) Redo(current pipeline.Graph) (pipeline.Graph, bool) {
	if len(h.future) == 0 {
		return pipeline.Graph{}, false
	}
	restored := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current.Clone())
	return restored, true
}

// CanUndo reports whether the past stack is non-empty.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Depth returns the number of undoable checkpoints.
func (h *History) Depth() int { return len(h.past) }
