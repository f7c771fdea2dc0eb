package graph

import (
	"reflect"
	"sort"
)

// Diff computes (added_nodes, removed_nodes, changed_nodes, added_edges,
// removed_edges) between before and after (spec.md §4.8). Node lists sort
// by id; edge lists sort lexicographically as (source, target, edge_type,
// order).
type Diff struct {
	AddedNodes   []NodeID
	RemovedNodes []NodeID
	ChangedNodes []NodeID
	AddedEdges   []IntentEdge
	RemovedEdges []IntentEdge
}

func Compute(before, after *Graph) Diff {
	var d Diff
	for id := range after.Nodes {
		if _, ok := before.Nodes[id]; !ok {
			d.AddedNodes = append(d.AddedNodes, id)
		}
	}
	for id := range before.Nodes {
		if _, ok := after.Nodes[id]; !ok {
			d.RemovedNodes = append(d.RemovedNodes, id)
		}
	}
	for id, b := range before.Nodes {
		a, ok := after.Nodes[id]
		if !ok {
			continue
		}
		if a.Kind != b.Kind || !reflect.DeepEqual(a.Attrs, b.Attrs) {
			d.ChangedNodes = append(d.ChangedNodes, id)
		}
	}

	beforeEdges := edgeSet(before.Edges)
	afterEdges := edgeSet(after.Edges)
	for key, e := range afterEdges {
		if _, ok := beforeEdges[key]; !ok {
			d.AddedEdges = append(d.AddedEdges, e)
		}
	}
	for key, e := range beforeEdges {
		if _, ok := afterEdges[key]; !ok {
			d.RemovedEdges = append(d.RemovedEdges, e)
		}
	}

	sortNodeIDs(d.AddedNodes)
	sortNodeIDs(d.RemovedNodes)
	sortNodeIDs(d.ChangedNodes)
	sortEdges(d.AddedEdges)
	sortEdges(d.RemovedEdges)
	return d
}

type edgeKey struct {
	source, target, role string
	order                int
	hasOrder             bool
}

func edgeSet(edges []IntentEdge) map[edgeKey]IntentEdge {
	out := make(map[edgeKey]IntentEdge, len(edges))
	for _, e := range edges {
		out[keyOf(e)] = e
	}
	return out
}

func keyOf(e IntentEdge) edgeKey {
	k := edgeKey{source: string(e.Source), target: string(e.Target), role: string(e.Role)}
	if e.Order != nil {
		k.order = *e.Order
		k.hasOrder = true
	}
	return k
}

func sortNodeIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortEdges(edges []IntentEdge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		return orderLess(a, b)
	})
}
