// Package sheet assembles sub-strands into sheets (C7): connected
// components of the directed adjacency, each carrying its enumerated
// cycles, an undirectedness flag, and a size metric, plus the
// undirected-path pruning pass described in §4.3.
package sheet

import (
	"sort"

	"sheettopo/internal/cycle"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// Sheet is one connected component of sub-strands under the directed (or
// fallback-undirected) adjacency.
type Sheet struct {
	Members    []substrand.SubStrand
	Cycles     [][]substrand.SubStrand
	HasCycle   bool
	Undirected bool
	Size       int
	Keys       []zone.PairKey // directed pair keys internal to this sheet
}

// unionFind is a tiny disjoint-set over sub-strands, used to merge sheets
// sharing a member as edges are folded in.
type unionFind struct {
	parent map[substrand.SubStrand]substrand.SubStrand
}

func newUnionFind() *unionFind { return &unionFind{parent: make(map[substrand.SubStrand]substrand.SubStrand)} }

func (u *unionFind) find(x substrand.SubStrand) substrand.SubStrand {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b substrand.SubStrand) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// Assemble partitions every sub-strand in rng into sheets by connectivity
// under edges (in either direction), finds each sheet's simple cycles,
// classifies it as undirected when a reverse-edge pair survives inside it,
// and computes its size.
func Assemble(rng *substrand.Range, edges map[zone.PairKey]*zone.PairNode) []*Sheet {
	uf := newUnionFind()
	all := rng.All()
	for _, ss := range all {
		uf.find(ss)
	}
	for key := range edges {
		uf.union(key.S0, key.S1)
	}

	byRoot := make(map[substrand.SubStrand][]substrand.SubStrand)
	for _, ss := range all {
		root := uf.find(ss)
		byRoot[root] = append(byRoot[root], ss)
	}

	var sheets []*Sheet
	for _, members := range byRoot {
		sort.Slice(members, func(i, j int) bool { return lessSS(members[i], members[j]) })
		s := buildSheet(members, edges)
		sheets = append(sheets, s)
	}
	sort.Slice(sheets, func(i, j int) bool {
		return lessSS(sheets[i].Members[0], sheets[j].Members[0])
	})
	return sheets
}

func lessSS(a, b substrand.SubStrand) bool {
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	return a.ID < b.ID
}

func buildSheet(members []substrand.SubStrand, edges map[zone.PairKey]*zone.PairNode) *Sheet {
	memberSet := make(map[substrand.SubStrand]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}

	var keys []zone.PairKey
	for key := range edges {
		if memberSet[key.S0] && memberSet[key.S1] {
			keys = append(keys, key)
		}
	}

	undirected := false
	for _, key := range keys {
		if _, ok := edges[key.Reverse()]; ok {
			undirected = true
			break
		}
	}

	ids := make(map[substrand.SubStrand]int, len(members))
	for i, m := range members {
		ids[m] = i
	}
	var cEdges []cycle.Edge
	for _, key := range keys {
		cEdges = append(cEdges, cycle.Edge{From: ids[key.S0], To: ids[key.S1]})
	}
	nodeIDs := make([]int, len(members))
	for i := range members {
		nodeIDs[i] = i
	}
	rawCycles := cycle.FindAll(nodeIDs, cEdges)

	var cycles [][]substrand.SubStrand
	maxCycleLen := 0
	for _, rc := range rawCycles {
		ssCycle := make([]substrand.SubStrand, len(rc))
		for i, id := range rc {
			ssCycle[i] = members[id]
		}
		cycles = append(cycles, ssCycle)
		if len(rc) > maxCycleLen {
			maxCycleLen = len(rc)
		}
	}

	longestJump := longestPath(members, keys, edges)
	size := longestJump + 2
	if maxCycleLen > size {
		size = maxCycleLen
	}

	return &Sheet{
		Members:    members,
		Cycles:     cycles,
		HasCycle:   len(cycles) > 0,
		Undirected: undirected,
		Size:       size,
		Keys:       keys,
	}
}

// longestPath returns the longest shortest-path jump (edges traversed − 1)
// between any two reachable members, using plain BFS from every member.
func longestPath(members []substrand.SubStrand, keys []zone.PairKey, edges map[zone.PairKey]*zone.PairNode) int {
	adj := make(map[substrand.SubStrand][]substrand.SubStrand)
	for _, key := range keys {
		adj[key.S0] = append(adj[key.S0], key.S1)
	}

	best := -1
	for _, src := range members {
		dist := map[substrand.SubStrand]int{src: 0}
		queue := []substrand.SubStrand{src}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if _, ok := dist[next]; ok {
					continue
				}
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
		for node, d := range dist {
			if node == src {
				continue
			}
			jump := d - 1
			if jump > best {
				best = jump
			}
		}
	}
	if best < 0 {
		return -2 // no reachable pairs at all; size defaults to 0 via +2 below
	}
	return best
}
