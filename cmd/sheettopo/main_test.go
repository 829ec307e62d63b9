package main

import (
	"testing"

	"sheettopo/internal/zone"
)

func TestBridgeDirection(t *testing.T) {
	cases := []struct {
		kind zone.BridgeKind
		want zone.Direction
	}{
		{zone.ParallelHbonds, zone.Parallel},
		{zone.ParallelNoHbonds, zone.Parallel},
		{zone.SmallRing, zone.AntiParallel},
		{zone.LargeRing, zone.AntiParallel},
	}
	for _, c := range cases {
		if got := bridgeDirection(c.kind); got != c.want {
			t.Errorf("bridgeDirection(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestResiduePairRecords_DedupsReverseEndpoint(t *testing.T) {
	infos := map[zone.ZoneResidue]*zone.Info{
		{Strand: 0, ResNum: 1}: {
			Colored:    true,
			Side:       zone.Upper,
			AdjRes:     [2]zone.ZoneResidue{{Strand: 1, ResNum: 10}},
			AdjSet:     [2]bool{true, false},
			BridgeType: [2]zone.BridgeKind{zone.ParallelHbonds},
		},
		{Strand: 1, ResNum: 10}: {
			Colored:    true,
			Side:       zone.Lower,
			AdjRes:     [2]zone.ZoneResidue{{Strand: 0, ResNum: 1}},
			AdjSet:     [2]bool{true, false},
			BridgeType: [2]zone.BridgeKind{zone.ParallelHbonds},
		},
	}

	records := residuePairRecords(nil, infos)
	if len(records) != 1 {
		t.Fatalf("want 1 deduped record, got %d: %+v", len(records), records)
	}
}
