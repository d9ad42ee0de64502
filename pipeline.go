package pipeline

import "fmt"

// Position is a node's placement on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node represents a typed processing step in a pipeline.
// ID is globally unique and immutable once assigned. Data is an open
// field bag whose schema belongs to the node's configuration layer;
// the engine only reads and writes arbitrary keys.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position Position       `json:"position"`
	Selected bool           `json:"selected,omitempty"`
	Data     map[string]any `json:"data"`
}

// Render hints for an edge, derived from its classification.
const (
	RenderCompatible = "compatible"
	RenderMismatched = "mismatched"
)

// Edge represents a directed connection between two node handles.
// Its identity is derived from the endpoint tuple, so at most one edge
// can exist between the same pair of handles.
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	Target       string `json:"target"`
	TargetHandle string `json:"targetHandle,omitempty"`
	Compatible   bool   `json:"compatible"`
	RenderHint   string `json:"renderHint,omitempty"`
	Label        string `json:"label,omitempty"`
}

// EdgeID derives the deterministic identifier for a connection between
// two handles. Proposing the same connection twice yields the same id.
func EdgeID(source, sourceHandle, target, targetHandle string) string {
	return fmt.Sprintf("e-%s.%s-%s.%s", source, sourceHandle, target, targetHandle)
}

// Graph is the full node/edge state at one point in time. Both slices
// keep insertion order.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a deep copy of the graph. Node data maps are copied so
// the clone shares no mutable state with the original.
func (g Graph) Clone() Graph {
	out := Graph{}
	if g.Nodes != nil {
		out.Nodes = make([]Node, len(g.Nodes))
		for i, n := range g.Nodes {
			out.Nodes[i] = n.Clone()
		}
	}
	if g.Edges != nil {
		out.Edges = make([]Edge, len(g.Edges))
		copy(out.Edges, g.Edges)
	}
	return out
}

// Clone returns a copy of the node with its own data map.
func (n Node) Clone() Node {
	if n.Data != nil {
		data := make(map[string]any, len(n.Data))
		for k, v := range n.Data {
			data[k] = v
		}
		n.Data = data
	}
	return n
}

// Pipeline is the persisted/exported form of a graph: the serialized
// node and edge state plus a caller-supplied label.
type Pipeline struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"pipelineName"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
