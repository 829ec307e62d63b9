package sheet

import (
	"testing"

	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

func ss(strand, id int) substrand.SubStrand { return substrand.SubStrand{Strand: strand, ID: id} }

func TestCollapseReverse_KeepsStrongerDirection(t *testing.T) {
	a, b := ss(0, 0), ss(1, 0)
	edges := map[zone.PairKey]*zone.PairNode{
		{S0: a, S1: b}: {Direction: zone.Parallel, ResiduePairs: 1},
		{S0: b, S1: a}: {Direction: zone.Parallel, ResiduePairs: 3},
	}
	collapseReverse(edges, a, b)
	if _, ok := edges[zone.PairKey{S0: a, S1: b}]; ok {
		t.Errorf("expected weaker a->b edge to be dropped")
	}
	if _, ok := edges[zone.PairKey{S0: b, S1: a}]; !ok {
		t.Errorf("expected stronger b->a edge to survive")
	}

	// A lone direction is left untouched.
	c := ss(2, 0)
	edges2 := map[zone.PairKey]*zone.PairNode{
		{S0: a, S1: c}: {Direction: zone.Parallel, ResiduePairs: 1},
	}
	collapseReverse(edges2, a, c)
	if len(edges2) != 1 {
		t.Errorf("expected one-directional edge to survive untouched, got %d entries", len(edges2))
	}
}

func TestReseed_RecomputesKeysUndirectedAndSize(t *testing.T) {
	p, q, r := ss(0, 0), ss(1, 0), ss(2, 0)
	edges := map[zone.PairKey]*zone.PairNode{
		{S0: p, S1: q}: {Direction: zone.Parallel, ResiduePairs: 2},
		{S0: q, S1: p}: {Direction: zone.Parallel, ResiduePairs: 2},
		{S0: r, S1: q}: {Direction: zone.AntiParallel, ResiduePairs: 1},
	}
	s := &Sheet{
		Members: []substrand.SubStrand{p, q, r},
		Cycles:  [][]substrand.SubStrand{{p, q}},
	}
	reseed(s, edges)

	if !s.Undirected {
		t.Errorf("expected sheet to remain undirected: p<->q reverse pair still present")
	}
	if len(s.Keys) != 3 {
		t.Errorf("expected 3 keys after reseed, got %d: %v", len(s.Keys), s.Keys)
	}
	for _, k := range s.Keys {
		if _, ok := edges[k]; !ok {
			t.Errorf("reseeded key %+v is not present in edges", k)
		}
	}
	if s.Size < 2 {
		t.Errorf("size = %d, want at least the 2-cycle length", s.Size)
	}
}

func TestReseed_DropsKeysForRemovedEdges(t *testing.T) {
	p, q, r := ss(0, 0), ss(1, 0), ss(2, 0)
	edges := map[zone.PairKey]*zone.PairNode{
		{S0: p, S1: q}: {Direction: zone.Parallel, ResiduePairs: 2},
		{S0: q, S1: p}: {Direction: zone.Parallel, ResiduePairs: 2},
	}
	s := &Sheet{
		Members: []substrand.SubStrand{p, q, r},
		Cycles:  [][]substrand.SubStrand{{p, q}},
		Keys: []zone.PairKey{
			{S0: p, S1: q}, {S0: q, S1: p}, {S0: r, S1: q}, {S0: q, S1: r},
		},
		Undirected: true,
	}
	// Simulate PruneUndirectedBranches having already removed r's edges.
	reseed(s, edges)

	for _, k := range s.Keys {
		if k.S0 == r || k.S1 == r {
			t.Errorf("expected every key touching the pruned member r to be gone, found %+v", k)
		}
	}
	if len(s.Keys) != 2 {
		t.Errorf("expected 2 surviving keys, got %d: %v", len(s.Keys), s.Keys)
	}
}
