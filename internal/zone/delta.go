package zone

import "sheettopo/internal/substrand"

// computeDeltas fills in Delta1/Delta2 for every directed edge by walking
// residues exactly as §4.4 describes: from each terminus of s0, count
// coloured residues until a bridge partner on s1 turns up, then count
// onward from that partner to the matching terminus of s1, and take the
// difference.
func computeDeltas(edges map[PairKey]*PairNode, rng *substrand.Range, infos map[ZoneResidue]*Info) {
	for key, node := range edges {
		span0 := rng.Span(key.S0)
		span1 := rng.Span(key.S1)
		node.Delta1 = walkDelta(key.S0, span0, key.S1, span1, infos, node.Direction, true)
		node.Delta2 = walkDelta(key.S0, span0, key.S1, span1, infos, node.Direction, false)
	}
}

// walkDelta computes one of the two deltas. atNTerm selects which end of s0
// to start from (true: N-term toward C; false: C-term toward N).
func walkDelta(s0 substrand.SubStrand, span0 substrand.Span, s1 substrand.SubStrand, span1 substrand.Span, infos map[ZoneResidue]*Info, dir Direction, atNTerm bool) int {
	step := 1
	start := span0.Init
	if !atNTerm {
		step = -1
		start = span0.End
	}

	base := 0
	var partner int
	found := false
	for r := start; r >= span0.Init && r <= span0.End; r += step {
		zr := ZoneResidue{Strand: s0.Strand, ResNum: r}
		info, ok := infos[zr]
		if !ok || !info.Colored {
			continue
		}
		base++
		if p, ok := bridgePartnerOn(info, s1, span1); ok {
			partner = p
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	// Toward s1's N-term when (parallel and at N-term) or (anti-parallel
	// and at C-term); toward C-term otherwise.
	towardNTerm := (dir == Parallel) == atNTerm
	adjStep := -1
	adjEnd := span1.Init
	if !towardNTerm {
		adjStep = 1
		adjEnd = span1.End
	}

	adj := 0
	for r := partner; (adjStep > 0 && r <= adjEnd) || (adjStep < 0 && r >= adjEnd); r += adjStep {
		zr := ZoneResidue{Strand: s1.Strand, ResNum: r}
		if info, ok := infos[zr]; ok && info.Colored {
			adj++
		}
	}

	if atNTerm {
		return base - adj
	}
	return adj - base
}

// bridgePartnerOn reports whether info has a bridge partner pointer landing
// inside s1's residue span, and the partner's residue number.
func bridgePartnerOn(info *Info, s1 substrand.SubStrand, span1 substrand.Span) (int, bool) {
	for slot := 0; slot < 2; slot++ {
		if !info.AdjSet[slot] {
			continue
		}
		adj := info.AdjRes[slot]
		if adj.Strand == s1.Strand && adj.ResNum >= span1.Init && adj.ResNum <= span1.End {
			return adj.ResNum, true
		}
	}
	return 0, false
}
