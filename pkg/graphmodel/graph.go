// Package graphmodel provides a generic arena of nodes joined by directed,
// labeled edges. Node order is stable and doubles as paint order: the last
// node is the topmost. Edges describe dependencies from a source node to the
// nodes derived from it.
package graphmodel

// Node wraps a user-supplied data value with an integer ID.
type Node[N any] struct {
	ID   int
	Data N
}

// Edge connects two nodes with a user-supplied label/data. The edge points
// from the source node to the node that depends on it.
type Edge[E any] struct {
	FromID int
	ToID   int
	Data   E
}

// Graph is a generic spatial graph with stable, reorderable iteration.
type Graph[N, E any] struct {
	nodes    map[int]*Node[N]
	edges    []Edge[E]
	nextID   int
	orderIDs []int // iteration order, last = topmost
}

// New creates an empty graph.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: make(map[int]*Node[N]),
	}
}

// ── Node operations ──

// NextID returns the ID the next AddNode call will assign.
func (g *Graph[N, E]) NextID() int {
	return g.nextID
}

// AddNode inserts a node at the top of the order and returns its ID.
func (g *Graph[N, E]) AddNode(data N) int {
	id := g.nextID
	g.nextID++
	g.nodes[id] = &Node[N]{ID: id, Data: data}
	g.orderIDs = append(g.orderIDs, id)
	return id
}

// Node returns a pointer to the node with the given ID, or nil.
func (g *Graph[N, E]) Node(id int) *Node[N] {
	return g.nodes[id]
}

// Nodes returns all nodes in order, bottom first.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	result := make([]*Node[N], 0, len(g.orderIDs))
	for _, id := range g.orderIDs {
		if n, ok := g.nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// RemoveNode deletes the node and all connected edges.
func (g *Graph[N, E]) RemoveNode(id int) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	g.dropOrder(id)

	// Remove all connected edges
	filtered := g.edges[:0]
	for _, e := range g.edges {
		if e.FromID != id && e.ToID != id {
			filtered = append(filtered, e)
		}
	}
	g.edges = filtered
}

// Raise moves the node to the top of the order. Unknown IDs are ignored.
func (g *Graph[N, E]) Raise(id int) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	g.dropOrder(id)
	g.orderIDs = append(g.orderIDs, id)
}

func (g *Graph[N, E]) dropOrder(id int) {
	for i, oid := range g.orderIDs {
		if oid == id {
			g.orderIDs = append(g.orderIDs[:i], g.orderIDs[i+1:]...)
			return
		}
	}
}

// ── Edge operations ──

// AddEdge adds an edge between two nodes. Duplicate (fromID, toID) pairs
// are silently ignored.
func (g *Graph[N, E]) AddEdge(fromID, toID int, data E) {
	if g.HasEdge(fromID, toID) {
		return
	}
	g.edges = append(g.edges, Edge[E]{FromID: fromID, ToID: toID, Data: data})
}

// HasEdge reports whether an edge (fromID, toID) exists.
func (g *Graph[N, E]) HasEdge(fromID, toID int) bool {
	for _, e := range g.edges {
		if e.FromID == fromID && e.ToID == toID {
			return true
		}
	}
	return false
}

// RemoveEdge removes the first edge matching (fromID, toID).
func (g *Graph[N, E]) RemoveEdge(fromID, toID int) {
	for i, e := range g.edges {
		if e.FromID == fromID && e.ToID == toID {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

// OutEdges returns edges originating from the given node.
func (g *Graph[N, E]) OutEdges(fromID int) []Edge[E] {
	var result []Edge[E]
	for _, e := range g.edges {
		if e.FromID == fromID {
			result = append(result, e)
		}
	}
	return result
}

// Reachable reports whether to can be reached from from by following
// edges. A node reaches itself.
func (g *Graph[N, E]) Reachable(from, to int) bool {
	seen := map[int]bool{}
	stack := []int{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == to {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		for _, e := range g.edges {
			if e.FromID == id && !seen[e.ToID] {
				stack = append(stack, e.ToID)
			}
		}
	}
	return false
}

// ── Queries ──

// Find returns the first node for which match reports true, scanning from
// the top of the order when topFirst is set and from the bottom otherwise.
func (g *Graph[N, E]) Find(topFirst bool, match func(N) bool) *Node[N] {
	if topFirst {
		for i := len(g.orderIDs) - 1; i >= 0; i-- {
			if n := g.nodes[g.orderIDs[i]]; n != nil && match(n.Data) {
				return n
			}
		}
		return nil
	}
	for _, id := range g.orderIDs {
		if n := g.nodes[id]; n != nil && match(n.Data) {
			return n
		}
	}
	return nil
}
