package zone

import (
	"sheettopo/internal/substrand"
)

// bfsState carries the mutable pieces the strict-zone BFS writes into as
// it walks every coloured residue exactly once.
type bfsState struct {
	infos   map[ZoneResidue]*Info
	builder *substrand.Builder
	handle  map[ZoneResidue]substrand.SubStrand
	edges   map[PairKey]*PairNode
	visited map[ZoneResidue]bool

	// fallbackEdges marks every edge key that belongs to a component whose
	// relative-direction assignment was inconsistent (§4.2 step 1): these
	// are exempt from the post-BFS reverse-edge compaction pass, since the
	// duplicated reverse edge is the whole point of the fallback.
	fallbackEdges map[PairKey]bool

	// current component scratch state, reset by walkComponent.
	componentFallback bool
	componentKeys     []PairKey

	// sideRaw records the auxiliary side-keyed adjacency (§4.3): for each
	// bridge residue's slot, the provisional sub-strand it points at. Slot
	// 0 is non-hbonded, slot 1 is hbonded -- the same convention as Slot.
	sideRaw []sideEdge
}

type sideEdge struct {
	From, To substrand.SubStrand
	Slot     int
}

// runBFS colours every residue reachable from the seed set into connected
// sub-strands, resolving a consistent relative direction per strand and
// deriving the directed sub-strand adjacency (§4.2). undirected supplies
// the voted parallel/anti-parallel relation between whole strands, used to
// resolve each bridge's relative direction.
func runBFS(seed *seedResult, undirected map[UndirectedKey]UndirectedEdge) *bfsState {
	st := &bfsState{
		infos:         seed.infos,
		builder:       substrand.NewBuilder(),
		handle:        make(map[ZoneResidue]substrand.SubStrand),
		edges:         make(map[PairKey]*PairNode),
		visited:       make(map[ZoneResidue]bool),
		fallbackEdges: make(map[PairKey]bool),
	}

	// Stable iteration order: strand then residue number.
	var order []ZoneResidue
	for zr := range seed.infos {
		if seed.infos[zr].Colored {
			order = append(order, zr)
		}
	}
	sortZoneResidues(order)

	relativeDir := make(map[int]Direction)
	resolvedDir := make(map[int]bool)

	for _, start := range order {
		if st.visited[start] {
			continue
		}
		st.walkComponent(start, undirected, relativeDir, resolvedDir)
	}
	return st
}

func sortZoneResidues(zs []ZoneResidue) {
	for i := 1; i < len(zs); i++ {
		for j := i; j > 0 && less(zs[j], zs[j-1]); j-- {
			zs[j], zs[j-1] = zs[j-1], zs[j]
		}
	}
}

func less(a, b ZoneResidue) bool {
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	return a.ResNum < b.ResNum
}

// walkComponent runs a queue-driven BFS starting at start, touching every
// residue connected to it either by bridge-partner pointers (AdjRes) or by
// backbone adjacency on the same strand, assigning each a Side, resolving a
// relative direction per strand, and growing the sub-strand Builder as it
// goes (§4.2).
func (st *bfsState) walkComponent(start ZoneResidue, undirected map[UndirectedKey]UndirectedEdge, relativeDir map[int]Direction, resolvedDir map[int]bool) {
	st.componentFallback = false
	st.componentKeys = nil

	queue := []ZoneResidue{start}
	st.visited[start] = true
	st.infos[start].Side = Upper
	st.handle[start] = st.builder.Extend(start.Strand, start.ResNum)
	relativeDir[start.Strand] = Parallel
	resolvedDir[start.Strand] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curInfo := st.infos[cur]
		curSide := curInfo.Side

		for slot := 0; slot < 2; slot++ {
			if !curInfo.AdjSet[slot] {
				continue
			}
			adj := curInfo.AdjRes[slot]
			adjInfo, ok := st.infos[adj]
			if !ok || !adjInfo.Colored {
				continue
			}

			dirToA := st.relativeDirection(cur.Strand, adj.Strand, undirected)
			resolved := dirToA
			if relativeDir[cur.Strand] == AntiParallel {
				resolved = dirToA.Flip()
			}

			if !st.visited[adj] {
				st.visited[adj] = true
				adjInfo.Side = curSide
				st.handle[adj] = st.builder.Extend(adj.Strand, adj.ResNum)
				queue = append(queue, adj)
			}
			if resolvedDir[adj.Strand] && relativeDir[adj.Strand] != resolved {
				st.componentFallback = true
			}
			relativeDir[adj.Strand] = resolved
			resolvedDir[adj.Strand] = true

			st.recordEdge(cur, adj, dirToA, relativeDir[cur.Strand], slot == int(Hbonded))
		}

		for _, delta := range [2]int{-1, 1} {
			nb := ZoneResidue{Strand: cur.Strand, ResNum: cur.ResNum + delta}
			info, ok := st.infos[nb]
			if !ok || !info.Colored || st.visited[nb] {
				continue
			}

			if st.refuseContinuation(cur, nb, curInfo, info) {
				lower := cur.ResNum
				if nb.ResNum < lower {
					lower = nb.ResNum
				}
				st.builder.Barrier(cur.Strand, lower)
			}

			st.visited[nb] = true
			info.Side = curSide.Opposite()
			st.handle[nb] = st.builder.Extend(nb.Strand, nb.ResNum)
			queue = append(queue, nb)
		}
	}

	if st.componentFallback {
		for _, key := range st.componentKeys {
			st.fallbackEdges[key] = true
			rev := key.Reverse()
			if node, ok := st.edges[key]; ok {
				if _, exists := st.edges[rev]; !exists {
					st.edges[rev] = &PairNode{Direction: node.Direction, ResiduePairs: node.ResiduePairs}
				}
				st.fallbackEdges[rev] = true
			}
		}
	}
}

// refuseContinuation reports whether the backbone step cur->nb should be
// refused: consecutive residues witnessing bridges of the same kind to the
// same partner strand, on the same slot, would blur two distinct
// sub-strands into one if merged (§4.2 step 3).
func (st *bfsState) refuseContinuation(cur, nb ZoneResidue, curInfo, nbInfo *Info) bool {
	for slot := 0; slot < 2; slot++ {
		if !curInfo.AdjSet[slot] || !nbInfo.AdjSet[slot] {
			continue
		}
		if curInfo.BridgeType[slot] == NoBridge || curInfo.BridgeType[slot] != nbInfo.BridgeType[slot] {
			continue
		}
		if curInfo.AdjRes[slot].Strand == nbInfo.AdjRes[slot].Strand {
			return true
		}
	}
	return false
}

// relativeDirection returns the parallel/anti-parallel relation between two
// strand serials from the undirected vote, falling back to AntiParallel --
// the more common case for an isolated bridge -- when the two strands share
// too few hbonds to have been voted on (§4.2).
func (st *bfsState) relativeDirection(a, b int, undirected map[UndirectedKey]UndirectedEdge) Direction {
	if edge, ok := undirected[NewUndirectedKey(a, b)]; ok {
		return edge.Direction
	}
	return AntiParallel
}

// recordEdge derives the directed sub-strand edge for one bridge endpoint:
// ss_a is to the right of ss_t iff relative_dir(strand(t)) == (side(t) ==
// hbonded), where side(t) here names the bridge slot the bond was found on,
// not the upper/lower residue label (§4.2 step 2). edgeDir is the relation
// stored on the edge itself (the voted strand-pair direction); relDirT is
// relative_dir(strand(t)), used only to decide which way the key points.
func (st *bfsState) recordEdge(cur, adj ZoneResidue, edgeDir, relDirT Direction, hbondedSlot bool) {
	curSS, okA := st.handle[cur]
	adjSS, okB := st.handle[adj]
	if !okA || !okB {
		return
	}
	curSS = st.builder.Resolve(curSS)
	adjSS = st.builder.Resolve(adjSS)
	if curSS == adjSS {
		return
	}

	slot := 0
	if hbondedSlot {
		slot = 1
	}
	st.sideRaw = append(st.sideRaw, sideEdge{From: curSS, To: adjSS, Slot: slot})

	rightOfT := (relDirT == Parallel) == hbondedSlot

	var key PairKey
	if rightOfT {
		key = PairKey{S0: curSS, S1: adjSS}
	} else {
		key = PairKey{S0: adjSS, S1: curSS}
	}

	node, ok := st.edges[key]
	if !ok {
		node = &PairNode{Direction: edgeDir}
		st.edges[key] = node
		st.componentKeys = append(st.componentKeys, key)
	}
	node.ResiduePairs++
}
