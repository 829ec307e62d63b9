package handed

import (
	"sheettopo/internal/attr"
	"sheettopo/internal/geom"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
)

// subStrandView returns a synthetic SSE-shaped atom range for one
// sub-strand: owner's Atoms sliced to span, everything else about the
// owning strand discarded. BuildSides only looks at Init/End/Atoms, so
// this is enough to reuse it against a sub-strand rather than a whole
// strand.
func subStrandView(owner *sse.SSE, span substrand.Span) sse.SSE {
	lo := span.Init - owner.Init
	hi := span.End - owner.Init + 1
	return sse.SSE{ID: owner.ID, Kind: owner.Kind, Init: span.Init, End: span.End, Atoms: owner.Atoms[lo:hi]}
}

// BuildCandidates enumerates every β–α–β-shaped candidate (§4.6): ordered
// pairs of sub-strands on different strands with at least one intervening
// segment: an SSE lying strictly between their owning strands in sequence
// order, or loop residues (with a CA in allAtoms) in the gaps. A pair whose
// strands are sequence neighbours therefore qualifies when the loop between
// them has atoms. allAtoms supplies CA coordinates for
// residues that may not belong to any SSE (plain loop).
func BuildCandidates(sses *sse.Collection, rng *substrand.Range, sheetOf map[substrand.SubStrand]int, allAtoms map[int]geom.Point) []Candidate {
	all := rng.All()
	var out []Candidate
	for _, ss0 := range all {
		for _, ss1 := range all {
			if ss0 == ss1 || ss0.Strand == ss1.Strand {
				continue
			}
			idx0 := sses.StrandIndex[ss0.Strand]
			idx1 := sses.StrandIndex[ss1.Strand]
			if idx0 >= idx1 {
				continue
			}
			segs, sameSheetMid := intervening(sses, rng, sheetOf, ss0, idx0, idx1, allAtoms)
			if len(segs) == 0 {
				continue
			}
			out = append(out, Candidate{SS0: ss0, SS1: ss1, Intervening: segs, SameSheetMid: sameSheetMid})
		}
	}
	return out
}

// intervening collects every SSE strictly between sequence index idx0 and
// idx1 as a Segment, plus loop residues filling the gaps between them
// (and at the two boundaries, up to the flanking strands' own ranges),
// and counts how many of those intervening SSEs are strands sharing ss0's
// sheet (§4.6 step 4, gate 5; Open Question (iii): counted from ss0 only).
func intervening(sses *sse.Collection, rng *substrand.Range, sheetOf map[substrand.SubStrand]int, ss0 substrand.SubStrand, idx0, idx1 int, allAtoms map[int]geom.Point) ([]Segment, int) {
	var segs []Segment
	sameSheetMid := 0

	prevEnd := sses.Data[idx0].End
	for i := idx0 + 1; i < idx1; i++ {
		s := &sses.Data[i]
		if gap := loopSegment(prevEnd+1, s.Init-1, allAtoms); gap != nil {
			segs = append(segs, *gap)
		}
		prevEnd = s.End

		switch s.Kind {
		case sse.KindHelix:
			segs = append(segs, Segment{Kind: SegmentHelix, Atoms: s.Atoms})
		case sse.KindStrand:
			segs = append(segs, Segment{Kind: SegmentStrand, Atoms: s.Atoms})
			serial := sses.StrandSerial[i]
			if sharesSheet(rng, sheetOf, ss0, serial) {
				sameSheetMid++
			}
		}
	}
	if gap := loopSegment(prevEnd+1, sses.Data[idx1].Init-1, allAtoms); gap != nil {
		segs = append(segs, *gap)
	}
	return segs, sameSheetMid
}

func loopSegment(lo, hi int, allAtoms map[int]geom.Point) *Segment {
	if hi < lo {
		return nil
	}
	var atoms []sse.Atom
	for r := lo; r <= hi; r++ {
		if xyz, ok := allAtoms[r]; ok {
			atoms = append(atoms, sse.Atom{XYZ: xyz, Real: true})
		}
	}
	if len(atoms) == 0 {
		return nil
	}
	return &Segment{Kind: SegmentLoop, Atoms: atoms}
}

func sharesSheet(rng *substrand.Range, sheetOf map[substrand.SubStrand]int, ss0 substrand.SubStrand, strandSerial int) bool {
	for id := 0; id < rng.Count(strandSerial); id++ {
		cand := substrand.SubStrand{Strand: strandSerial, ID: id}
		if sheetOf[cand] == sheetOf[ss0] {
			return true
		}
	}
	return false
}

// Sides computes the BuildSides() vectors for both directions of a
// candidate pair, restricted to each sub-strand's own residue range.
func Sides(sses *sse.Collection, rng *substrand.Range, ss0, ss1 substrand.SubStrand) (sides01, sides10 []Side) {
	v0 := subStrandView(sses.Strand(ss0.Strand), rng.Span(ss0))
	v1 := subStrandView(sses.Strand(ss1.Strand), rng.Span(ss1))
	return BuildSides(&v0, &v1), BuildSides(&v1, &v0)
}

// EvaluateAll runs Evaluate for every candidate against the supplied
// attribute cache, returning one Result per candidate in the same order
// (including rejected candidates, so callers can zip by index). reverse
// supplies each candidate's two flanking strands' virtual-reversal bits,
// keyed by SSE id (§4.6 "Reverse flags"); pass nil (or an empty
// ReverseFlags) to evaluate every candidate at its base orientation.
func EvaluateAll(sses *sse.Collection, rng *substrand.Range, cands []Candidate, cache *attr.Cache, reverse ReverseFlags, cfg Config) []Result {
	var out []Result
	for _, c := range cands {
		sides01, sides10 := Sides(sses, rng, c.SS0, c.SS1)
		revS0 := reverse[sses.Strand(c.SS0.Strand).ID]
		revS1 := reverse[sses.Strand(c.SS1.Strand).ID]
		out = append(out, Evaluate(c, cache, sides01, sides10, revS0, revS1, cfg))
	}
	return out
}
