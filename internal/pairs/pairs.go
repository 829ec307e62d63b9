// Package pairs implements the pair classifier (C3): for every strand, the
// ordered list of hydrogen-bond pairs that strand participates in, ready
// for the strict-zone engine (C4) to walk.
package pairs

import (
	"sort"

	"sheettopo/internal/hbond"
	"sheettopo/internal/sse"
)

// Pair is one hydrogen-bond endpoint pair normalised onto a target strand:
// R0 is the residue belonging to that strand, R1 its bonded partner. Side
// is true when R0 was the bond's donor (backbone N-H -> R1's C=O) and false
// when R0 was the acceptor -- this is what lets the direction
// micro-signature table in §4.2 tell a donor-shift from an acceptor-shift.
type Pair struct {
	R0, R1 int
	Side   bool
}

// InvolvedPairs returns, indexed by strand serial, the hbond pairs that
// touch each strand -- any bond with an endpoint inside
// [strand.Init-1, strand.End+1] -- normalised so R0 is on that strand, and
// stable-sorted by (R0, Side, R1).
func InvolvedPairs(sses *sse.Collection, bonds []hbond.Bond) [][]Pair {
	out := make([][]Pair, sses.NumStrands())
	for _, b := range bonds {
		if serial, ok := sses.StrandContaining(b.Donor); ok {
			out[serial] = append(out[serial], Pair{R0: b.Donor, R1: b.Acceptor, Side: true})
		}
		if serial, ok := sses.StrandContaining(b.Acceptor); ok {
			out[serial] = append(out[serial], Pair{R0: b.Acceptor, R1: b.Donor, Side: false})
		}
	}
	for i := range out {
		ps := out[i]
		sort.SliceStable(ps, func(a, b int) bool {
			if ps[a].R0 != ps[b].R0 {
				return ps[a].R0 < ps[b].R0
			}
			if ps[a].Side != ps[b].Side {
				return !ps[a].Side && ps[b].Side
			}
			return ps[a].R1 < ps[b].R1
		})
	}
	return out
}

// PartnerDirFunc resolves the voted parallel/anti-parallel relation
// between two strand serials, as decided by the undirected-adjacency pass
// of the strict-zone engine (C4). ok is false if the two strands share no
// hbonds.
type PartnerDirFunc func(strandA, strandB int) (parallel bool, ok bool)

// Resort re-sorts each strand's involved pairs by bonded-partner strand and
// then by the pairing direction to that partner, using an already-built
// undirected adjacency. This is the order the strict-zone BFS (C4)
// consumes to walk consecutive hbonds one partner strand at a time.
func Resort(involved [][]Pair, sses *sse.Collection, dirOf PartnerDirFunc) [][]Pair {
	out := make([][]Pair, len(involved))
	for e, ps := range involved {
		cp := append([]Pair(nil), ps...)
		sort.SliceStable(cp, func(i, j int) bool {
			pi, pj := cp[i], cp[j]
			si, _ := sses.StrandContaining(pi.R1)
			sj, _ := sses.StrandContaining(pj.R1)
			if si != sj {
				return si < sj
			}
			di, oki := dirOf(e, si)
			dj, okj := dirOf(e, sj)
			if oki && okj && di != dj {
				return di && !dj
			}
			return pi.R1 < pj.R1
		})
		out[e] = cp
	}
	return out
}
