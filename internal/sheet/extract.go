package sheet

import (
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// Chain is one linear run of sub-strands connected by directed edges,
// returned by ExtractChains.
type Chain struct {
	Members []substrand.SubStrand
}

// ExtractChains implements the `-e N` CLI mode: starting from every
// sub-strand, follow directed edges outward up to n hops, collecting every
// simple linear chain of length exactly n+1 sub-strands. This surfaces the
// same "adjacent sub-strand" runs the original tool's seq_bab_pattern
// search walked one hop at a time.
func ExtractChains(all []substrand.SubStrand, edges map[zone.PairKey]*zone.PairNode, n int) []Chain {
	adj := make(map[substrand.SubStrand][]substrand.SubStrand)
	for key := range edges {
		adj[key.S0] = append(adj[key.S0], key.S1)
	}

	var chains []Chain
	var walk func(path []substrand.SubStrand, onPath map[substrand.SubStrand]bool)
	walk = func(path []substrand.SubStrand, onPath map[substrand.SubStrand]bool) {
		if len(path) == n+1 {
			chains = append(chains, Chain{Members: append([]substrand.SubStrand(nil), path...)})
			return
		}
		last := path[len(path)-1]
		for _, next := range adj[last] {
			if onPath[next] {
				continue
			}
			onPath[next] = true
			walk(append(path, next), onPath)
			delete(onPath, next)
		}
	}

	for _, start := range all {
		onPath := map[substrand.SubStrand]bool{start: true}
		walk([]substrand.SubStrand{start}, onPath)
	}
	return chains
}
