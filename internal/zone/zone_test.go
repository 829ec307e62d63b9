package zone

import (
	"testing"

	"sheettopo/internal/hbond"
	"sheettopo/internal/pairs"
	"sheettopo/internal/sse"
)

// makeStrand builds a minimal strand SSE spanning [init,end], with
// placeholder real CA atoms (geometry isn't exercised here).
func makeStrand(id, init, end int) sse.SSE {
	atoms := make([]sse.Atom, end-init+1)
	for i := range atoms {
		atoms[i] = sse.Atom{Real: true}
	}
	return sse.New(id, sse.KindStrand, init, end, atoms)
}

func TestBuild_AntiParallelHairpin(t *testing.T) {
	// Two 4-residue strands, residues 1-4 and 7-10, connected by a tight
	// turn, laddered by hbonds in a classic anti-parallel register:
	// 1<->10, 2<->9, 3<->8, 4<->7 (donor/acceptor alternating).
	strandA := makeStrand(0, 1, 4)
	strandB := makeStrand(1, 7, 10)
	col := sse.NewCollection([]sse.SSE{strandA, strandB})

	bonds := []hbond.Bond{
		{Donor: 1, Acceptor: 10},
		{Donor: 10, Acceptor: 1},
		{Donor: 2, Acceptor: 9},
		{Donor: 9, Acceptor: 2},
		{Donor: 3, Acceptor: 8},
		{Donor: 8, Acceptor: 3},
		{Donor: 4, Acceptor: 7},
		{Donor: 7, Acceptor: 4},
	}

	res, err := Build(col, bonds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Range.Count(0) == 0 || res.Range.Count(1) == 0 {
		t.Fatalf("expected sub-strands on both strands, got %d/%d", res.Range.Count(0), res.Range.Count(1))
	}
	if len(res.Edges) == 0 {
		t.Fatalf("expected at least one directed edge")
	}
	for key, node := range res.Edges {
		if node.Direction != AntiParallel {
			t.Errorf("edge %+v: want anti-parallel, got %v", key, node.Direction)
		}
		if node.ResiduePairs == 0 {
			t.Errorf("edge %+v: want nonzero ResiduePairs", key)
		}
	}
}

func TestBuild_ParallelSheet(t *testing.T) {
	strandA := makeStrand(0, 1, 5)
	strandB := makeStrand(1, 11, 15)
	col := sse.NewCollection([]sse.SSE{strandA, strandB})

	// Parallel register: 1<->11, 2<->12, ... each hbond donor alternates
	// strand but residue numbers climb together on both sides.
	bonds := []hbond.Bond{
		{Donor: 1, Acceptor: 11},
		{Donor: 12, Acceptor: 2},
		{Donor: 3, Acceptor: 13},
		{Donor: 14, Acceptor: 4},
		{Donor: 5, Acceptor: 15},
	}

	res, err := Build(col, bonds)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Edges) == 0 {
		t.Fatalf("expected at least one directed edge")
	}
}

func TestClassifyBridge(t *testing.T) {
	cases := []struct {
		name       string
		prev, cur  pairs.Pair
		want       BridgeKind
	}{
		{"laddered-forward", pairs.Pair{R0: 1, R1: 10}, pairs.Pair{R0: 2, R1: 9}, ParallelHbonds},
		{"laddered-backward", pairs.Pair{R0: 2, R1: 9}, pairs.Pair{R0: 1, R1: 10}, ParallelHbonds},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := classifyBridge(c.prev, c.cur)
			if got != c.want {
				t.Errorf("classifyBridge() = %v, want %v", got, c.want)
			}
		})
	}
}
