package attr

import (
	"testing"

	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

func TestBuild_DirectAndJump(t *testing.T) {
	a := substrand.SubStrand{Strand: 0, ID: 0}
	b := substrand.SubStrand{Strand: 1, ID: 0}
	c := substrand.SubStrand{Strand: 2, ID: 0}

	edges := map[zone.PairKey]*zone.PairNode{
		{S0: a, S1: b}: {Direction: zone.Parallel, ResiduePairs: 3},
		{S0: b, S1: c}: {Direction: zone.AntiParallel, ResiduePairs: 2},
	}

	cache := Build([]substrand.SubStrand{a, b, c}, edges)

	attrAB, ok := cache.Get(a, b)
	if !ok || attrAB.Jump != 0 || attrAB.Direction != zone.Parallel {
		t.Fatalf("a->b: got %+v ok=%v", attrAB, ok)
	}

	attrAC, ok := cache.Get(a, c)
	if !ok {
		t.Fatalf("a->c should be reachable")
	}
	if attrAC.Jump != 1 {
		t.Errorf("a->c jump = %d, want 1", attrAC.Jump)
	}
	if attrAC.Direction != zone.AntiParallel {
		t.Errorf("a->c direction = %v, want anti-parallel", attrAC.Direction)
	}
	if len(attrAC.JumpedSubstrs) != 1 || attrAC.JumpedSubstrs[0] != b {
		t.Errorf("a->c jumped = %v, want [b]", attrAC.JumpedSubstrs)
	}
}

func TestGet_UnreachablePair(t *testing.T) {
	a := substrand.SubStrand{Strand: 0, ID: 0}
	b := substrand.SubStrand{Strand: 1, ID: 0}
	cache := Build([]substrand.SubStrand{a, b}, map[zone.PairKey]*zone.PairNode{})
	if _, ok := cache.Get(a, b); ok {
		t.Errorf("expected unreachable pair with no edges")
	}
}
