package zone

import (
	"fmt"

	"sheettopo/internal/pairs"
	"sheettopo/internal/sheeterr"
	"sheettopo/internal/sse"
)

// microSignature infers the parallel/anti-parallel direction implied by two
// consecutive hbonds (p then q) to the same partner strand, per the table
// in §4.2. ok is false when the consecutive pair carries no directional
// evidence.
func microSignature(p, q pairs.Pair) (dir Direction, ok bool) {
	switch {
	case q.R1 > p.R1 && q.R0 == p.R0:
		return Parallel, true
	case q.R1 == p.R1 && q.R0 == p.R0:
		return AntiParallel, true
	case q.R1 < p.R1 && q.R0 == p.R0:
		return AntiParallel, true
	case q.R1 > p.R1 && q.R0 > p.R0:
		return Parallel, true
	case q.R1 == p.R1 && q.R0 > p.R0 && p.Side && !q.Side:
		return Parallel, true
	case q.R1 == p.R1 && q.R0 > p.R0 && !p.Side && q.Side:
		return AntiParallel, true
	case q.R1 < p.R1 && q.R0 > p.R0:
		return AntiParallel, true
	default:
		return false, false
	}
}

// votes tallies directional evidence for strand e's hbonds to strand p,
// walking e's involved-pairs list restricted to partner p in original sort
// order.
func votes(involved []pairs.Pair, sses *sse.Collection, partner int) (parallel, anti int) {
	var filtered []pairs.Pair
	for _, pr := range involved {
		if s, ok := sses.StrandContaining(pr.R1); ok && s == partner {
			filtered = append(filtered, pr)
		}
	}
	for i := 1; i < len(filtered); i++ {
		dir, ok := microSignature(filtered[i-1], filtered[i])
		if !ok {
			continue
		}
		if dir == Parallel {
			parallel++
		} else {
			anti++
		}
	}
	return
}

// buildUndirectedSide computes, for every strand e, its per-partner
// direction vote purely from e's own involved-pairs list.
func buildUndirectedSide(involved [][]pairs.Pair, sses *sse.Collection) (map[UndirectedKey]UndirectedEdge, error) {
	fromE := make(map[int]map[int]Direction)
	sharedCount := make(map[UndirectedKey]int)

	for e, ps := range involved {
		partners := map[int]bool{}
		for _, pr := range ps {
			if s, ok := sses.StrandContaining(pr.R1); ok && s != e {
				partners[s] = true
			}
		}
		for p := range partners {
			key := NewUndirectedKey(e, p)
			if sharedCount[key] == 0 {
				cnt := 0
				for _, pr := range ps {
					if s, ok := sses.StrandContaining(pr.R1); ok && s == p {
						cnt++
					}
				}
				sharedCount[key] = cnt
			}
			par, anti := votes(ps, sses, p)
			total := par + anti
			if total == 0 {
				continue
			}
			minority := anti
			dir := Parallel
			if anti > par {
				minority = par
				dir = AntiParallel
			}
			if float64(minority)/float64(total) >= 0.5 {
				return nil, fmt.Errorf("%w: strands %d/%d (%d/%d votes)", sheeterr.ErrDirectionUnresolvable, e, p, minority, total)
			}
			if fromE[e] == nil {
				fromE[e] = make(map[int]Direction)
			}
			fromE[e][p] = dir
		}
	}

	result := make(map[UndirectedKey]UndirectedEdge)
	for e, m := range fromE {
		for p, dir := range m {
			if sharedCount[NewUndirectedKey(e, p)] < 2 {
				continue
			}
			other, ok := fromE[p][e]
			if !ok {
				return nil, fmt.Errorf("%w: strand %d has no reverse entry for strand %d", sheeterr.ErrNonSymmetric, p, e)
			}
			if other != dir {
				return nil, fmt.Errorf("%w: strands %d/%d disagree on direction", sheeterr.ErrNonSymmetric, e, p)
			}
			key := NewUndirectedKey(e, p)
			result[key] = UndirectedEdge{Count: sharedCount[key], Direction: dir}
		}
	}
	return result, nil
}
