package handed

import (
	"testing"

	"sheettopo/internal/attr"
	"sheettopo/internal/geom"
	"sheettopo/internal/hbond"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// buildBABStructure constructs two parallel strands flanking a helix, the
// same shape as spec scenario 5, end to end through zone.Build.
func buildBABStructure(t *testing.T) (*sse.Collection, *zone.Result) {
	strandA := sse.New(0, sse.KindStrand, 1, 4, []sse.Atom{
		{XYZ: geom.Point{X: 0, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 1, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 2, Y: 0, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 3, Y: 0, Z: 0}, Real: true},
	})
	helix := sse.New(1, sse.KindHelix, 8, 16, make([]sse.Atom, 9))
	for i := range helix.Atoms {
		helix.Atoms[i] = sse.Atom{XYZ: geom.Point{X: float64(i) * 0.3, Y: 2.5, Z: 10}, Real: true}
	}
	strandB := sse.New(2, sse.KindStrand, 20, 23, []sse.Atom{
		{XYZ: geom.Point{X: 0, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 1, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 2, Y: 5, Z: 0}, Real: true},
		{XYZ: geom.Point{X: 3, Y: 5, Z: 0}, Real: true},
	})
	col := sse.NewCollection([]sse.SSE{strandA, helix, strandB})

	bonds := []hbond.Bond{
		{Donor: 1, Acceptor: 20},
		{Donor: 21, Acceptor: 2},
		{Donor: 3, Acceptor: 22},
		{Donor: 23, Acceptor: 4},
	}
	res, err := zone.Build(col, bonds)
	if err != nil {
		t.Fatalf("zone.Build: %v", err)
	}
	return col, res
}

func TestBuildCandidates_FindsInterveningHelix(t *testing.T) {
	col, res := buildBABStructure(t)
	sheetOf := make(map[substrand.SubStrand]int)
	for _, ss := range res.Range.All() {
		sheetOf[ss] = 0
	}
	allAtoms := map[int]geom.Point{}

	cands := BuildCandidates(col, res.Range, sheetOf, allAtoms)
	if len(cands) == 0 {
		t.Fatalf("expected at least one candidate spanning the helix")
	}
	found := false
	for _, c := range cands {
		for _, seg := range c.Intervening {
			if seg.Kind == SegmentHelix {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected a candidate with a helix segment, got %+v", cands)
	}
}

func TestEvaluateAll_MatchesCandidateOrder(t *testing.T) {
	col, res := buildBABStructure(t)
	sheetOf := make(map[substrand.SubStrand]int)
	for _, ss := range res.Range.All() {
		sheetOf[ss] = 0
	}
	cands := BuildCandidates(col, res.Range, sheetOf, map[int]geom.Point{})
	cache := attr.Build(res.Range.All(), res.Edges)
	results := EvaluateAll(col, res.Range, cands, cache, nil, DefaultConfig())
	if len(results) != len(cands) {
		t.Fatalf("got %d results for %d candidates", len(results), len(cands))
	}
}
