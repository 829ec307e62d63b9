package handed

import (
	"math"
	"testing"

	"sheettopo/internal/attr"
	"sheettopo/internal/geom"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

func strandAtoms(xs ...float64) []sse.Atom {
	atoms := make([]sse.Atom, len(xs))
	for i, x := range xs {
		atoms[i] = sse.Atom{XYZ: geom.Point{X: x, Y: 0, Z: 0}, Real: true}
	}
	return atoms
}

// TestBuildSides_LeftHandedProbe mirrors spec scenario 5: two parallel
// strands A and B running along the X axis, offset along Y, with a helix
// entirely on one side (Z = +10) of every triangle formed by
// consecutive CA of A and the corresponding opposite atom on B.
func TestBuildSides_LeftHandedProbe(t *testing.T) {
	a := sse.New(0, sse.KindStrand, 1, 4, []sse.Atom{
		{XYZ: geom.Point{X: 0, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 1, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 2, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 3, Y: 0, Z: 0}, Real: true},
	})
	b := sse.New(1, sse.KindStrand, 20, 23, []sse.Atom{
		{XYZ: geom.Point{X: 0, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 1, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 2, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 3, Y: 5, Z: 0}, Real: true},
	})

	sides := BuildSides(&a, &b)
	if len(sides) == 0 {
		t.Fatalf("expected non-empty Sides vector")
	}
	for _, s := range sides {
		if s.NFwd.Norm() == 0 {
			t.Errorf("zero normal vector for side %+v", s)
		}
	}

	ss0 := substrand.SubStrand{Strand: 0, ID: 0}
	ss1 := substrand.SubStrand{Strand: 1, ID: 0}
	edges := map[zone.PairKey]*zone.PairNode{
		{S0: ss0, S1: ss1}: {Direction: zone.Parallel, ResiduePairs: 3},
	}
	cache := attr.Build([]substrand.SubStrand{ss0, ss1}, edges)

	helixAtoms := strandAtoms(0.5, 1, 1.5, 2, 2.5)
	for i := range helixAtoms {
		helixAtoms[i].XYZ.Y = 2.5
		helixAtoms[i].XYZ.Z = 10
	}
	cand := Candidate{
		SS0: ss0, SS1: ss1,
		Intervening: []Segment{{Kind: SegmentHelix, Atoms: helixAtoms}},
	}

	res := Evaluate(cand, cache, sides, nil, false, false, DefaultConfig())
	if !res.Success {
		t.Fatalf("expected success, got reject reason %d", res.RejectReason)
	}
	if math.Abs(res.LeftScore-1.0) > 1e-9 {
		t.Errorf("left_score = %v, want 1.0", res.LeftScore)
	}
	if res.ConnectionType&1 == 0 {
		t.Errorf("expected helix bit set in connection_type, got %d", res.ConnectionType)
	}
	if res.ConnectionType&(1<<1) != 0 || res.ConnectionType&(1<<2) != 0 {
		t.Errorf("expected only helix bit set, got %d", res.ConnectionType)
	}
	if !IsLeftHanded(res, DefaultConfig()) {
		t.Errorf("expected left-handed verdict")
	}

	// Reversing both flanking strands leaves the apparent direction (and
	// so the verdict) unchanged; reversing exactly one flips gate 3 to
	// reject, since the pair's real relation is parallel.
	revBoth := Evaluate(cand, cache, sides, nil, true, true, DefaultConfig())
	if !revBoth.Success || math.Abs(revBoth.LeftScore-res.LeftScore) > 1e-9 {
		t.Errorf("reversing both strands: got %+v, want unchanged result %+v", revBoth, res)
	}
	revOne := Evaluate(cand, cache, sides, nil, true, false, DefaultConfig())
	if revOne.Success {
		t.Errorf("reversing exactly one strand: expected gate-3 rejection, got success %+v", revOne)
	}
	if revOne.RejectReason != RejectNotReachableOrNotParallel {
		t.Errorf("reversing exactly one strand: got reason %d, want %d", revOne.RejectReason, RejectNotReachableOrNotParallel)
	}
}

func TestEvaluate_RejectReasons(t *testing.T) {
	ss0 := substrand.SubStrand{Strand: 0, ID: 0}
	ss1 := substrand.SubStrand{Strand: 0, ID: 0}
	if r := Evaluate(Candidate{SS0: ss0, SS1: ss1}, attr.Build(nil, nil), nil, nil, false, false, DefaultConfig()); r.RejectReason != RejectEndpointsNotStrands {
		t.Errorf("same-substrand candidate: got reason %d, want %d", r.RejectReason, RejectEndpointsNotStrands)
	}

	ss1b := substrand.SubStrand{Strand: 1, ID: 0}
	if r := Evaluate(Candidate{SS0: ss0, SS1: ss1b}, attr.Build(nil, nil), nil, nil, false, false, DefaultConfig()); r.RejectReason != RejectNoInterveningSSE {
		t.Errorf("no intervening segment: got reason %d, want %d", r.RejectReason, RejectNoInterveningSSE)
	}

	cand := Candidate{SS0: ss0, SS1: ss1b, Intervening: []Segment{{Kind: SegmentLoop, Atoms: strandAtoms(0)}}}
	if r := Evaluate(cand, attr.Build(nil, nil), nil, nil, false, false, DefaultConfig()); r.RejectReason != RejectNotReachableOrNotParallel {
		t.Errorf("unreachable pair: got reason %d, want %d", r.RejectReason, RejectNotReachableOrNotParallel)
	}
}

func TestApparentParallel_XORInvariance(t *testing.T) {
	for _, base := range []bool{true, false} {
		if ApparentParallel(base, false, false) != base {
			t.Errorf("base=%v: reversing neither should leave apparent_parallel unchanged", base)
		}
		if ApparentParallel(base, true, true) != base {
			t.Errorf("base=%v: reversing both should leave apparent_parallel unchanged", base)
		}
		if ApparentParallel(base, true, false) == base {
			t.Errorf("base=%v: reversing exactly one should flip apparent_parallel", base)
		}
		if ApparentParallel(base, false, true) == base {
			t.Errorf("base=%v: reversing exactly one should flip apparent_parallel", base)
		}
	}
}
