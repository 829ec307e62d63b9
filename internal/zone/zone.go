package zone

import (
	"sheettopo/internal/hbond"
	"sheettopo/internal/pairs"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
)

// Result is everything the strict-zone engine (C4) hands downstream: the
// finished sub-strand index, the directed pair adjacency keyed by final
// sub-strand handles, and a reverse index from a sub-strand to every pair
// key that mentions it.
type Result struct {
	Range      *substrand.Range
	Edges      map[PairKey]*PairNode
	ByStrand   map[substrand.SubStrand][]PairKey
	Undirected map[UndirectedKey]UndirectedEdge
	Infos      map[ZoneResidue]*Info
	Sides      *SideAdjacency
}

// Build runs the full strict-zone pipeline: per-strand involved pairs,
// undirected strand-pair voting, bridge seeding, the colouring BFS, and
// sub-strand finalisation, remapping every discovered edge onto the
// resulting dense sub-strand IDs.
func Build(sses *sse.Collection, bonds []hbond.Bond) (*Result, error) {
	involved := pairs.InvolvedPairs(sses, bonds)

	undirected, err := buildUndirectedSide(involved, sses)
	if err != nil {
		return nil, err
	}

	dirOf := func(a, b int) (bool, bool) {
		edge, ok := undirected[NewUndirectedKey(a, b)]
		return edge.Direction == Parallel, ok
	}
	resorted := pairs.Resort(involved, sses, dirOf)

	seed, err := seedZones(resorted, sses)
	if err != nil {
		return nil, err
	}

	st := runBFS(seed, undirected)
	rng, remap := st.builder.Finish()

	edges := make(map[PairKey]*PairNode)
	byStrand := make(map[substrand.SubStrand][]PairKey)
	fallbackEdges := make(map[PairKey]bool)
	for key, node := range st.edges {
		s0, ok0 := remap[key.S0]
		s1, ok1 := remap[key.S1]
		if !ok0 || !ok1 || s0 == s1 {
			continue
		}
		finalKey := PairKey{S0: s0, S1: s1}
		if st.fallbackEdges[key] {
			fallbackEdges[finalKey] = true
		}
		if existing, ok := edges[finalKey]; ok {
			existing.ResiduePairs += node.ResiduePairs
			continue
		}
		cp := *node
		edges[finalKey] = &cp
	}

	if err := compactReverseEdges(edges, fallbackEdges); err != nil {
		return nil, err
	}
	computeDeltas(edges, rng, st.infos)

	for key := range edges {
		byStrand[key.S0] = append(byStrand[key.S0], key)
		byStrand[key.S1] = append(byStrand[key.S1], key)
	}

	sides := buildSideAdjacency(st.sideRaw, remap)

	return &Result{Range: rng, Edges: edges, ByStrand: byStrand, Undirected: undirected, Infos: st.infos, Sides: sides}, nil
}
