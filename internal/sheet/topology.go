package sheet

import (
	"fmt"
	"sort"
	"strings"

	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// LateralOrder walks the sheet's directed adjacency from its
// lowest-keyed member, following whichever unvisited neighbour is nearest,
// to produce a linear left-to-right ordering of members. Branching sheets
// collapse onto a single walk by always preferring the lowest-keyed
// unvisited neighbour, the same tie-break Assemble uses elsewhere.
func LateralOrder(s *Sheet) []substrand.SubStrand {
	adj := make(map[substrand.SubStrand][]substrand.SubStrand)
	for _, key := range s.Keys {
		adj[key.S0] = append(adj[key.S0], key.S1)
		adj[key.S1] = append(adj[key.S1], key.S0)
	}
	for ss := range adj {
		nbs := adj[ss]
		sort.Slice(nbs, func(i, j int) bool { return lessSS(nbs[i], nbs[j]) })
		adj[ss] = nbs
	}

	visited := make(map[substrand.SubStrand]bool)
	var order []substrand.SubStrand
	start := s.Members[0]
	queue := []substrand.SubStrand{start}
	visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	for _, m := range s.Members {
		if !visited[m] {
			order = append(order, m)
		}
	}
	return order
}

func edgeBetween(edges map[zone.PairKey]*zone.PairNode, a, b substrand.SubStrand) (*zone.PairNode, bool, bool) {
	if node, ok := edges[zone.PairKey{S0: a, S1: b}]; ok {
		return node, true, false
	}
	if node, ok := edges[zone.PairKey{S0: b, S1: a}]; ok {
		return node, true, true
	}
	return nil, false, false
}

// Richardson renders the pair-style topology string `[+-]<int>[x]…`: one
// sign-and-jump token per consecutive pair in lateral order, '+' for
// parallel and '-' for anti-parallel, an 'x' suffix marking a parallel
// junction.
func Richardson(s *Sheet, order []substrand.SubStrand, edges map[zone.PairKey]*zone.PairNode) string {
	var b strings.Builder
	for i := 1; i < len(order); i++ {
		node, ok, _ := edgeBetween(edges, order[i-1], order[i])
		sign := "-"
		parallel := false
		if ok {
			if node.Direction == zone.Parallel {
				sign = "+"
				parallel = true
			}
		}
		fmt.Fprintf(&b, "%s%d", sign, i)
		if parallel {
			b.WriteString("x")
		}
	}
	return b.String()
}

// Cohen renders the position-style topology string `[+-]_<seq>,…`: one
// sign-and-sequence-index token per member in lateral position order.
func Cohen(order []substrand.SubStrand, edges map[zone.PairKey]*zone.PairNode) string {
	var parts []string
	for i, m := range order {
		sign := "+"
		if i > 0 {
			if node, ok, _ := edgeBetween(edges, order[i-1], order[i]); ok && node.Direction == zone.AntiParallel {
				sign = "-"
			}
		}
		parts = append(parts, fmt.Sprintf("%s_%d", sign, m.Strand))
	}
	return strings.Join(parts, ",")
}
