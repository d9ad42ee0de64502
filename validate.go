package pipeline

// Report summarizes a validated graph.
type Report struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

// Validate counts the given nodes and edges and checks whether the graph
// is a directed acyclic graph using Kahn's algorithm. The input is
// treated as read-only and any syntactically valid pair produces a
// verdict: edges referencing unknown node ids are skipped, duplicate
// edges each contribute an in-degree, and a self-loop pins its node's
// in-degree above zero so the graph can never be a DAG.
func Validate(nodes []Node, edges []Edge) Report {
	r := Report{NumNodes: len(nodes), NumEdges: len(edges)}

	if len(nodes) == 0 {
		r.IsDAG = true
		return r
	}

	// Adjacency and in-degree, keyed by node id. The ids slice keeps
	// payload order so the traversal is deterministic.
	ids := make([]string, 0, len(nodes))
	inDegree := make(map[string]int, len(nodes))
	adjacency := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		if _, ok := inDegree[n.ID]; !ok {
			ids = append(ids, n.ID)
			inDegree[n.ID] = 0
		}
	}

	for _, e := range edges {
		if _, ok := inDegree[e.Source]; !ok {
			continue
		}
		if _, ok := inDegree[e.Target]; !ok {
			continue
		}
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		inDegree[e.Target]++
	}

	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		visited++

		for _, next := range adjacency[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Every node dequeued exactly once iff no cycle held one back.
	r.IsDAG = visited == len(ids)
	return r
}
