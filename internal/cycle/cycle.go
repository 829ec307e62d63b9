// Package cycle enumerates simple cycles in a directed multigraph of
// sub-strands (C6), used by the sheet assembler to classify a sheet's
// topology (§4.4). The graph is interned to small integer ids first so the
// DFS walks plain index arithmetic rather than comparing SubStrand structs
// on every step, the same arena-style trick the teacher uses for residue
// indices in cmd/construct_boundary.
package cycle

import "sort"

// Edge is one directed arc, named by interned node ids.
type Edge struct {
	From, To int
}

// Cycle is a simple cycle: a sequence of node ids where consecutive
// entries (and the last back to the first) are connected by an edge in the
// input graph, normalised so the smallest id comes first and only one of a
// cycle/its reverse is kept.
type Cycle []int

// key returns a canonical, comparable form of a normalised cycle for
// deduplication.
func (c Cycle) key() string {
	b := make([]byte, 0, len(c)*4)
	for _, n := range c {
		b = append(b, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
	return string(b)
}

// normalize rotates c so its minimum element leads, then returns whichever
// of {c, reverse(c)} is lexicographically smaller.
func normalize(c []int) Cycle {
	n := len(c)
	minIdx := 0
	for i, v := range c {
		if v < c[minIdx] {
			minIdx = i
		}
	}
	rot := make([]int, n)
	for i := 0; i < n; i++ {
		rot[i] = c[(minIdx+i)%n]
	}
	rev := make([]int, n)
	rev[0] = rot[0]
	for i := 1; i < n; i++ {
		rev[i] = rot[n-i]
	}
	if lexLess(rev, rot) {
		return Cycle(rev)
	}
	return Cycle(rot)
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// FindAll enumerates every simple cycle of length >= 3 in the directed
// multigraph described by edges, restricted to the node set in nodes.
// Parallel edges between the same pair of nodes do not produce distinct
// cycles.
func FindAll(nodes []int, edges []Edge) []Cycle {
	adj := make(map[int][]int)
	seenEdge := make(map[[2]int]bool)
	for _, e := range edges {
		k := [2]int{e.From, e.To}
		if seenEdge[k] {
			continue
		}
		seenEdge[k] = true
		adj[e.From] = append(adj[e.From], e.To)
	}
	for from := range adj {
		sort.Ints(adj[from])
	}

	nodeSet := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = true
	}

	found := make(map[string]Cycle)
	sortedNodes := append([]int(nil), nodes...)
	sort.Ints(sortedNodes)

	for _, root := range sortedNodes {
		var path []int
		onPath := make(map[int]bool)
		var dfs func(node int)
		dfs = func(node int) {
			path = append(path, node)
			onPath[node] = true
			for _, next := range adj[node] {
				if !nodeSet[next] {
					continue
				}
				if next == root && len(path) >= 3 {
					cyc := normalize(append([]int(nil), path...))
					found[cyc.key()] = cyc
					continue
				}
				if onPath[next] || next < root {
					continue
				}
				dfs(next)
			}
			path = path[:len(path)-1]
			onPath[node] = false
		}
		dfs(root)
	}

	out := make([]Cycle, 0, len(found))
	for _, c := range found {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return lexLess(out[i], out[j]) })
	return out
}
