package sheet

import (
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// PruneUndirectedBranches implements the §4.3 undirected-path-pruning pass:
// for each undirected sheet, it keeps only the cycle members as genuinely
// undirected structure, converting everything hanging off a cycle member
// into a strictly directed dangling branch. Pruning removes both the
// side-registration and the now-redundant reverse PairKey from edges, then
// re-seeds the sheet's Keys/Undirected/Size from the pruned adjacency, so
// every downstream consumer of edges (the attribute cache, STRAND_PAIR
// rows, graphviz dir=none edges) sees the conversion.
func PruneUndirectedBranches(s *Sheet, sides *zone.SideAdjacency, edges map[zone.PairKey]*zone.PairNode) {
	if !s.Undirected {
		return
	}
	inCycle := make(map[substrand.SubStrand]bool)
	for _, c := range s.Cycles {
		for _, ss := range c {
			inCycle[ss] = true
		}
	}
	if len(inCycle) == 0 {
		return
	}

	visited := make(map[substrand.SubStrand]bool)
	for ss := range inCycle {
		for slot := 0; slot < 2; slot++ {
			nb, ok := sides.Get(ss, slot)
			if !ok || inCycle[nb] {
				continue
			}
			sides.Remove(ss, slot)
			collapseReverse(edges, ss, nb)
			pruneBranch(nb, ss, sides, edges, inCycle, visited)
		}
	}

	reseed(s, edges)
}

// pruneBranch walks a dangling branch outward from start (not itself a
// cycle member), severing every side-registration and collapsing the
// corresponding reverse edge as it goes. from is the neighbour the walk
// arrived from, so the walk doesn't double back along the edge it just
// cut; whichever of start's remaining registered neighbours isn't from is
// further out the branch.
func pruneBranch(start, from substrand.SubStrand, sides *zone.SideAdjacency, edges map[zone.PairKey]*zone.PairNode, inCycle, visited map[substrand.SubStrand]bool) {
	if visited[start] || inCycle[start] {
		return
	}
	visited[start] = true
	for slot := 0; slot < 2; slot++ {
		nb, ok := sides.Get(start, slot)
		if !ok || nb == from {
			continue
		}
		sides.Remove(start, slot)
		collapseReverse(edges, start, nb)
		pruneBranch(nb, start, sides, edges, inCycle, visited)
	}
}

// collapseReverse turns a dangling branch's duplicated pair of reverse
// edges (a->b and b->a, both present because the component fell back to
// undirected) into a single ordinary directed edge, keeping whichever
// direction carries the larger residue-pair count -- the same tie-break
// §4.2's reverse-edge compaction uses -- and dropping the other. If only
// one direction is present, the branch is already directed and nothing
// changes.
func collapseReverse(edges map[zone.PairKey]*zone.PairNode, a, b substrand.SubStrand) {
	fwd := zone.PairKey{S0: a, S1: b}
	rev := zone.PairKey{S0: b, S1: a}
	fwdNode, hasFwd := edges[fwd]
	revNode, hasRev := edges[rev]
	if !hasFwd || !hasRev {
		return
	}
	if fwdNode.ResiduePairs >= revNode.ResiduePairs {
		delete(edges, rev)
	} else {
		delete(edges, fwd)
	}
}

// reseed recomputes a sheet's internal pair keys, undirected flag, and
// size from the now-pruned adjacency (§4.3's "re-seed substr_pair_keys for
// every sheet from the pruned adjacency"). Cycles are untouched: pruning
// only ever removes edges with at least one endpoint outside every cycle,
// so it cannot add or remove a cycle.
func reseed(s *Sheet, edges map[zone.PairKey]*zone.PairNode) {
	memberSet := make(map[substrand.SubStrand]bool, len(s.Members))
	for _, m := range s.Members {
		memberSet[m] = true
	}

	var keys []zone.PairKey
	undirected := false
	for key := range edges {
		if !memberSet[key.S0] || !memberSet[key.S1] {
			continue
		}
		keys = append(keys, key)
		if _, ok := edges[key.Reverse()]; ok {
			undirected = true
		}
	}

	s.Keys = keys
	s.Undirected = undirected
	longestJump := longestPath(s.Members, keys, edges)
	size := longestJump + 2
	maxCycleLen := 0
	for _, c := range s.Cycles {
		if len(c) > maxCycleLen {
			maxCycleLen = len(c)
		}
	}
	if maxCycleLen > size {
		size = maxCycleLen
	}
	s.Size = size
}
