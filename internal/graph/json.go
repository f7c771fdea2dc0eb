package graph

import "encoding/json"

// SchemaVersion is recorded on every serialized Graph (spec.md §6).
const SchemaVersion = "1.0"

// wireNode/wireEdge/wireGraph mirror spec.md §6's exact JSON shape:
// {schema_version, root_id, nodes:[{node_id,kind,attrs}], edges:[{source,target,edge_type,order}]}.
type wireNode struct {
	NodeID NodeID         `json:"node_id"`
	Kind   string         `json:"kind"`
	Attrs  map[string]any `json:"attrs"`
}

type wireEdge struct {
	Source   NodeID   `json:"source"`
	Target   NodeID   `json:"target"`
	EdgeType EdgeRole `json:"edge_type"`
	Order    *int     `json:"order"`
}

type wireGraph struct {
	SchemaVersion string     `json:"schema_version"`
	RootID        NodeID     `json:"root_id"`
	Nodes         []wireNode `json:"nodes"`
	Edges         []wireEdge `json:"edges"`
}

// ToJSON serializes g into the wire shape, with nodes sorted by id and
// edges sorted lexicographically so output is deterministic.
func ToJSON(g *Graph) ([]byte, error) {
	ids := make([]NodeID, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sortNodeIDs(ids)

	nodes := make([]wireNode, 0, len(ids))
	for _, id := range ids {
		n := g.Nodes[id]
		nodes = append(nodes, wireNode{NodeID: n.ID, Kind: n.Kind, Attrs: n.Attrs})
	}

	edges := make([]IntentEdge, len(g.Edges))
	copy(edges, g.Edges)
	sortEdges(edges)

	wireEdges := make([]wireEdge, 0, len(edges))
	for _, e := range edges {
		wireEdges = append(wireEdges, wireEdge{Source: e.Source, Target: e.Target, EdgeType: e.Role, Order: e.Order})
	}

	return json.Marshal(wireGraph{
		SchemaVersion: SchemaVersion,
		RootID:        g.RootID,
		Nodes:         nodes,
		Edges:         wireEdges,
	})
}

// FromJSON parses the wire shape ToJSON produces, such that
// FromJSON(ToJSON(g)) is equal to g up to map/slice ordering.
func FromJSON(data []byte) (*Graph, error) {
	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	nodes := make(map[NodeID]IntentNode, len(w.Nodes))
	for _, n := range w.Nodes {
		nodes[n.NodeID] = IntentNode{ID: n.NodeID, Kind: n.Kind, Attrs: n.Attrs}
	}
	edges := make([]IntentEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		edges = append(edges, IntentEdge{Source: e.Source, Target: e.Target, Role: e.EdgeType, Order: e.Order})
	}
	return &Graph{RootID: w.RootID, Nodes: nodes, Edges: edges}, nil
}
