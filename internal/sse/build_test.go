package sse

import (
	"testing"

	"sheettopo/internal/geom"
	"sheettopo/internal/pdbio"
)

func TestFromRaw_MissingResidueMarkedNotReal(t *testing.T) {
	headers := []pdbio.RawSSE{{Kind: 'E', Init: 1, End: 4}}
	atoms := []pdbio.RawAtom{
		{ResNum: 1, XYZ: geom.Point{X: 0}},
		{ResNum: 2, XYZ: geom.Point{X: 1}},
		// residue 3 missing
		{ResNum: 4, XYZ: geom.Point{X: 3}},
	}

	sses, err := FromRaw(headers, atoms)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if len(sses) != 1 {
		t.Fatalf("want 1 SSE, got %d", len(sses))
	}
	s := sses[0]
	if s.Kind != KindStrand || s.Init != 1 || s.End != 4 {
		t.Fatalf("unexpected SSE: %+v", s)
	}
	if len(s.Atoms) != 4 {
		t.Fatalf("want 4 atom slots, got %d", len(s.Atoms))
	}
	if !s.Atoms[0].Real || !s.Atoms[1].Real || !s.Atoms[3].Real {
		t.Errorf("residues 1,2,4 should be real")
	}
	if s.Atoms[2].Real {
		t.Errorf("residue 3 should be marked not real")
	}
	if s.AllReal() {
		t.Errorf("AllReal() should be false with a missing residue")
	}
	if _, ok := s.RepAtom(); ok {
		t.Errorf("RepAtom should be unavailable when a residue is missing")
	}
}

func TestFromRaw_InvertedRangeIsFatal(t *testing.T) {
	headers := []pdbio.RawSSE{{Kind: 'E', Init: 10, End: 5}}
	if _, err := FromRaw(headers, nil); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestFromRaw_UnknownKindIsFatal(t *testing.T) {
	headers := []pdbio.RawSSE{{Kind: 'X', Init: 1, End: 4}}
	if _, err := FromRaw(headers, nil); err == nil {
		t.Fatalf("expected error for unknown SSE kind")
	}
}
