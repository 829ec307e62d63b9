// Package attr caches all-pairs reachability over the directed sub-strand
// adjacency (C8): for every ordered pair of distinct sub-strands, whether
// one reaches the other, how many sub-strands lie strictly between them,
// and the accumulated parallel/anti-parallel relation along that path.
package attr

import (
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// UnreachableJump is the sentinel "jump" value the text report uses for a
// pair known to sit in the same sheet but with no directed path between
// them (§6). It is never a genuine path length.
const UnreachableJump = 100

// Attribute is the cached BFS result for one ordered sub-strand pair.
type Attribute struct {
	Reachable     bool
	Jump          int
	Direction     zone.Direction
	JumpedSubstrs []substrand.SubStrand
}

// Cache holds one Attribute per ordered pair of sub-strands that is
// actually reachable; unreachable pairs are simply absent.
type Cache struct {
	entries map[[2]substrand.SubStrand]Attribute
}

// Build runs a BFS from every sub-strand over the directed adjacency in
// edges, filling the all-pairs cache.
func Build(all []substrand.SubStrand, edges map[zone.PairKey]*zone.PairNode) *Cache {
	adj := make(map[substrand.SubStrand][]zone.PairKey)
	for key := range edges {
		adj[key.S0] = append(adj[key.S0], key)
	}

	c := &Cache{entries: make(map[[2]substrand.SubStrand]Attribute)}
	for _, src := range all {
		c.bfsFrom(src, adj, edges)
	}
	return c
}

type queueItem struct {
	node      substrand.SubStrand
	jump      int
	dir       zone.Direction
	path      []substrand.SubStrand
}

func (c *Cache) bfsFrom(src substrand.SubStrand, adj map[substrand.SubStrand][]zone.PairKey, edges map[zone.PairKey]*zone.PairNode) {
	visited := map[substrand.SubStrand]bool{src: true}
	queue := []queueItem{{node: src, jump: -1, dir: zone.Parallel}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, key := range adj[cur.node] {
			next := key.S1
			if visited[next] {
				continue
			}
			visited[next] = true
			node := edges[key]
			dir := cur.dir
			if node.Direction == zone.AntiParallel {
				dir = dir.Flip()
			}
			path := append(append([]substrand.SubStrand(nil), cur.path...), cur.node)

			jump := cur.jump + 1
			if next != src {
				var jumped []substrand.SubStrand
				if cur.jump >= 0 {
					jumped = append(jumped, path[1:]...)
				}
				c.entries[[2]substrand.SubStrand{src, next}] = Attribute{
					Reachable:     true,
					Jump:          jump,
					Direction:     dir,
					JumpedSubstrs: reverseCopy(jumped),
				}
			}
			queue = append(queue, queueItem{node: next, jump: jump, dir: dir, path: path})
		}
	}
}

func reverseCopy(in []substrand.SubStrand) []substrand.SubStrand {
	out := make([]substrand.SubStrand, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// Get returns the cached Attribute in whichever of (s0,s1) or (s1,s0) is
// reachable -- preferring (s0,s1) when both are, mirroring the direct
// lookup the original convention describes.
func (c *Cache) Get(s0, s1 substrand.SubStrand) (Attribute, bool) {
	if a, ok := c.entries[[2]substrand.SubStrand{s0, s1}]; ok {
		return a, true
	}
	if a, ok := c.entries[[2]substrand.SubStrand{s1, s0}]; ok {
		return a, true
	}
	return Attribute{}, false
}
