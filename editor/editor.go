// Package editor implements the in-memory graph state engine behind the
// pipeline builder: the canonical node/edge collections, the mutation
// operations that keep them consistent, and snapshot-based undo/redo.
//
// The editor is single-threaded by design. It is owned by one caller
// (the UI event loop) which serializes all calls, so there is no
// internal locking.
package editor

import (
	"fmt"

	"github.com/meikuraledutech/pipeline"
)

// ConnectionRequest names the endpoints of a proposed edge.
type ConnectionRequest struct {
	Source       string
	SourceHandle string
	Target       string
	TargetHandle string
}

// ChangeKind discriminates transient change entries.
type ChangeKind int

const (
	// ChangeMove updates a node's canvas position.
	ChangeMove ChangeKind = iota
	// ChangeSelect updates a node's selection flag.
	ChangeSelect
	// ChangeRemoveEdge deletes an edge through the transient channel
	// (the user's delete gesture on an edge).
	ChangeRemoveEdge
)

// Change is one entry in a transient change batch. Which fields are
// meaningful depends on Kind.
type Change struct {
	Kind     ChangeKind
	NodeID   string
	EdgeID   string
	Position pipeline.Position
	Selected bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithOnChange registers a hook invoked after every committed change to
// the live graph, structural or transient. Used to drive the debounced
// autosave signal.
func WithOnChange(fn func()) Option {
	return func(e *Editor) { e.onChange = fn }
}

// Editor owns the authoritative graph state. All mutations go through
// it; structural mutations checkpoint the history first, transient ones
// never do.
type Editor struct {
	graph    pipeline.Graph
	history  History
	ids      *IDAllocator
	onChange func()
}

// NewEditor returns an empty editor.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{ids: NewIDAllocator()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}

// Graph returns a deep copy of the live state.
func (e *Editor) Graph() pipeline.Graph {
	return e.graph.Clone()
}

// Export serializes the live state together with a caller-supplied
// pipeline name.
func (e *Editor) Export(name string) pipeline.Pipeline {
	g := e.graph.Clone()
	return pipeline.Pipeline{Name: name, Nodes: g.Nodes, Edges: g.Edges}
}

// NodeCount returns the number of live nodes.
func (e *Editor) NodeCount() int { return len(e.graph.Nodes) }

// EdgeCount returns the number of live edges.
func (e *Editor) EdgeCount() int { return len(e.graph.Edges) }

// Node returns a copy of the node with the given id.
func (e *Editor) Node(id string) (pipeline.Node, bool) {
	for _, n := range e.graph.Nodes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return pipeline.Node{}, false
}

// History exposes undo/redo introspection (CanUndo, CanRedo, Depth).
func (e *Editor) History() *History { return &e.history }

// Add allocates an id for typeTag, appends a node of that type at the
// given position and returns it. The type tag is not validated against
// a closed set; whatever the toolbar supplies is accepted.
func (e *Editor) Add(typeTag string, pos pipeline.Position) pipeline.Node {
	n := pipeline.Node{
		ID:       e.ids.NextID(typeTag),
		Type:     typeTag,
		Position: pos,
		Data:     map[string]any{},
	}
	e.AddNode(n)
	return n
}

// AddNode appends a pre-built node. The id must not already be present;
// a duplicate is a programming error, not a recoverable condition, and
// panics.
func (e *Editor) AddNode(n pipeline.Node) {
	for _, existing := range e.graph.Nodes {
		if existing.ID == n.ID {
			panic(fmt.Sprintf("editor: duplicate node id %q", n.ID))
		}
	}
	e.history.Checkpoint(e.graph)
	e.graph.Nodes = append(e.graph.Nodes, n.Clone())
	e.notify()
}

// RemoveNode deletes the node with the given id and every edge touching
// it, atomically. Removing an absent id is a no-op and does not
// checkpoint.
func (e *Editor) RemoveNode(id string) {
	idx := -1
	for i, n := range e.graph.Nodes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	e.history.Checkpoint(e.graph)
	e.graph.Nodes = append(e.graph.Nodes[:idx], e.graph.Nodes[idx+1:]...)

	kept := e.graph.Edges[:0]
	for _, edge := range e.graph.Edges {
		if edge.Source != id && edge.Target != id {
			kept = append(kept, edge)
		}
	}
	e.graph.Edges = kept
	e.notify()
}

// UpdateField sets data[field] on the matching node. The node gets a
// fresh data map (copy-on-write) so snapshots holding the old map stay
// valid. Field edits are keystroke-level noise and are deliberately not
// checkpointed. Unknown node ids are ignored.
func (e *Editor) UpdateField(nodeID, field string, value any) {
	for i, n := range e.graph.Nodes {
		if n.ID != nodeID {
			continue
		}
		data := make(map[string]any, len(n.Data)+1)
		for k, v := range n.Data {
			data[k] = v
		}
		data[field] = value
		e.graph.Nodes[i].Data = data
		e.notify()
		return
	}
}

// Connect creates the edge described by the request. The edge id is
// derived from the endpoint tuple, so proposing an existing connection
// is a silent no-op and the call is idempotent. Both endpoints must be
// live nodes (every edge references existing node ids at all times);
// a request naming an unknown node is also a silent no-op. Endpoint
// compatibility is classified, never enforced: a mismatched edge is
// stored with Compatible=false and a diagnostic label. Self-loops are
// permitted here; cycle detection is the validator's concern, not a
// structural constraint.
//
// Returns the resulting edge and whether it was newly added.
func (e *Editor) Connect(req ConnectionRequest) (pipeline.Edge, bool) {
	id := pipeline.EdgeID(req.Source, req.SourceHandle, req.Target, req.TargetHandle)
	for _, existing := range e.graph.Edges {
		if existing.ID == id {
			return existing, false
		}
	}

	source, ok := e.Node(req.Source)
	if !ok {
		return pipeline.Edge{}, false
	}
	target, ok := e.Node(req.Target)
	if !ok {
		return pipeline.Edge{}, false
	}
	verdict := pipeline.Classify(source, target)

	edge := pipeline.Edge{
		ID:           id,
		Source:       req.Source,
		SourceHandle: req.SourceHandle,
		Target:       req.Target,
		TargetHandle: req.TargetHandle,
		Compatible:   verdict.Compatible,
		RenderHint:   verdict.RenderHint(),
		Label:        verdict.Label,
	}

	e.history.Checkpoint(e.graph)
	e.graph.Edges = append(e.graph.Edges, edge)
	e.notify()
	return edge, true
}

// RemoveEdge deletes the edge with the given id. A no-op, without a
// checkpoint, when absent.
func (e *Editor) RemoveEdge(id string) {
	for i, edge := range e.graph.Edges {
		if edge.ID == id {
			e.history.Checkpoint(e.graph)
			e.graph.Edges = append(e.graph.Edges[:i], e.graph.Edges[i+1:]...)
			e.notify()
			return
		}
	}
}

// ApplyChanges applies a batched set of transient changes. Position and
// selection updates never checkpoint history. An explicit delete-edge
// change is structural and checkpoints once for the whole batch before
// anything is applied.
func (e *Editor) ApplyChanges(changes []Change) {
	if len(changes) == 0 {
		return
	}

	for _, c := range changes {
		if c.Kind == ChangeRemoveEdge && e.hasEdge(c.EdgeID) {
			e.history.Checkpoint(e.graph)
			break
		}
	}

	for _, c := range changes {
		switch c.Kind {
		case ChangeMove:
			for i := range e.graph.Nodes {
				if e.graph.Nodes[i].ID == c.NodeID {
					e.graph.Nodes[i].Position = c.Position
				}
			}
		case ChangeSelect:
			for i := range e.graph.Nodes {
				if e.graph.Nodes[i].ID == c.NodeID {
					e.graph.Nodes[i].Selected = c.Selected
				}
			}
		case ChangeRemoveEdge:
			for i, edge := range e.graph.Edges {
				if edge.ID == c.EdgeID {
					e.graph.Edges = append(e.graph.Edges[:i], e.graph.Edges[i+1:]...)
					break
				}
			}
		}
	}
	e.notify()
}

func (e *Editor) hasEdge(id string) bool {
	for _, edge := range e.graph.Edges {
		if edge.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the graph. A checkpoint is taken first so the wipe is
// undoable. Clearing an already-empty graph is a no-op.
func (e *Editor) Clear() {
	if len(e.graph.Nodes) == 0 && len(e.graph.Edges) == 0 {
		return
	}
	e.history.Checkpoint(e.graph)
	e.graph = pipeline.Graph{}
	e.notify()
}

// Undo replaces the live state with the most recent checkpoint.
// Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	restored, ok := e.history.Undo(e.graph)
	if !ok {
		return false
	}
	e.graph = restored
	e.notify()
	return true
}

// Redo replaces the live state with the nearest undone state. Returns
// false when there is nothing to redo.
func (e *Editor) Redo() bool {
	restored, ok := e.history.Redo(e.graph)
	if !ok {
		return false
	}
	e.graph = restored
	e.notify()
	return true
}

// Validate runs the acyclicity check over the live state.
func (e *Editor) Validate() pipeline.Report {
	return pipeline.Validate(e.graph.Nodes, e.graph.Edges)
}
