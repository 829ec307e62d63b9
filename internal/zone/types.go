// Package zone implements the strict-zone engine (C4): the undirected
// strand-pair classifier, the BFS that colours residues and derives a
// directed sub-strand adjacency with consistent orientation, and the
// delta/compaction passes that finish it off. This is the heart of the
// specification (§4.2), grounded on the same breadth-first, queue-driven
// style the teacher uses for its own boundary/region scans
// (cmd/construct_boundary's disorder/ordered-region sweeps) generalised to
// a graph BFS over residues instead of a flat array scan.
package zone

import "sheettopo/internal/substrand"

// Direction is the parallel/anti-parallel relation between two strands or
// sub-strands.
type Direction bool

const (
	AntiParallel Direction = false
	Parallel     Direction = true
)

func (d Direction) Flip() Direction { return !d }

func (d Direction) String() string {
	if d == Parallel {
		return "parallel"
	}
	return "anti-parallel"
}

// Side is the upper/lower label assigned to a residue during the BFS.
type Side int

const (
	Undefined Side = iota - 1
	Lower
	Upper
)

func (s Side) String() string {
	switch s {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "undefined"
	}
}

func (s Side) Opposite() Side {
	switch s {
	case Upper:
		return Lower
	case Lower:
		return Upper
	default:
		return Undefined
	}
}

// Slot distinguishes a residue's two bridge-partner pointers.
type Slot int

const (
	NonHbonded Slot = 0
	Hbonded    Slot = 1
)

// BridgeKind classifies the consecutive-hbond pattern that produced a
// bridge partner pointer.
type BridgeKind int

const (
	NoBridge BridgeKind = iota
	ParallelHbonds
	ParallelNoHbonds
	SmallRing
	LargeRing
)

// Slot reports which bridge-partner slot a kind occupies, per §4.2:
// ParallelHbonds and SmallRing ladder through the hbonded slot;
// ParallelNoHbonds and LargeRing ladder through the non-hbonded slot.
func (k BridgeKind) Slot() Slot {
	switch k {
	case ParallelHbonds, SmallRing:
		return Hbonded
	default:
		return NonHbonded
	}
}

func (k BridgeKind) String() string {
	switch k {
	case ParallelHbonds:
		return "parallel_hbonds"
	case ParallelNoHbonds:
		return "parallel_no_hbonds"
	case SmallRing:
		return "small_ring"
	case LargeRing:
		return "large_ring"
	default:
		return "none"
	}
}

// ZoneResidue names one residue by its strand serial and PDB residue
// number.
type ZoneResidue struct {
	Strand int
	ResNum int
}

// Info is the per-residue zone record: coloured flag, side label, and up
// to two bridge-partner pointers (one per Slot), each tagged with the
// bridge kind that produced it.
type Info struct {
	Colored bool
	Side    Side

	AdjRes     [2]ZoneResidue
	AdjSet     [2]bool
	BridgeType [2]BridgeKind
}

// UndirectedKey is an unordered strand-serial pair, normalised so A<=B.
type UndirectedKey struct {
	A, B int
}

func NewUndirectedKey(a, b int) UndirectedKey {
	if a > b {
		a, b = b, a
	}
	return UndirectedKey{a, b}
}

// UndirectedEdge is the voted relation between two strands that share at
// least 2 hbonds.
type UndirectedEdge struct {
	Count     int
	Direction Direction
}

// PairKey is a directed ordered pair of sub-strands.
type PairKey struct {
	S0, S1 substrand.SubStrand
}

func (k PairKey) Reverse() PairKey { return PairKey{k.S1, k.S0} }

// PairNode is the directed-edge payload: relation, how many residues on S0
// participate, and the signed terminal offsets.
type PairNode struct {
	Direction    Direction
	ResiduePairs int
	Delta1       int
	Delta2       int
}
