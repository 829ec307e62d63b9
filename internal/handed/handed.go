// Package handed implements the triangle-side handedness filter (C9): for
// a candidate β–α–β unit spanned by two strands, it scores the flanking
// helix/loop/strand atoms against triangulated CA-atom "sides" built from
// the two strands, and reports whether the connection is left-handed.
package handed

import (
	"sheettopo/internal/attr"
	"sheettopo/internal/geom"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// Defaults mirror spec §4.6.
const (
	DefaultMaxMidResidues   = 60
	DefaultMaxMidStrands    = 1
	DefaultCutoffLeftScore  = 0.6
	DefaultMinSideDist      = 1.0
)

// RejectReason is the non-zero non_bab_reason code for a failed candidate.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectEndpointsNotStrands
	RejectNoInterveningSSE
	RejectNotReachableOrNotParallel
	RejectTooManyMidResidues
	RejectTooManyMidStrands
)

// Side is one triangulated reference plane built from a consecutive CA
// pair (a0, a1) on ss0 and the opposite-maximizing atom on ss1. Base0/NFwd
// is the forward plane (base a0); Base1/NRev is the reverse plane (base
// a1) used when the owning strand is virtually reversed -- reversing a
// strand swaps n_fwd<->n_rev and its base point a0<->a1 (§4.6).
type Side struct {
	Base0 geom.Point
	Base1 geom.Point
	NFwd  geom.Point
	NRev  geom.Point
	Angle float64
}

// plane returns the (base, normal) pair to test against, selecting the
// reverse plane when the side's owning strand is virtually reversed.
func (s Side) plane(reversed bool) (geom.Point, geom.Point) {
	if reversed {
		return s.Base1, s.NRev
	}
	return s.Base0, s.NFwd
}

// Config holds the filter's tunable thresholds.
type Config struct {
	MaxMidResidues  int
	MaxMidStrands   int
	CutoffLeftScore float64
	MinSideDist     float64
}

// DefaultConfig returns the spec's default thresholds.
func DefaultConfig() Config {
	return Config{
		MaxMidResidues:  DefaultMaxMidResidues,
		MaxMidStrands:   DefaultMaxMidStrands,
		CutoffLeftScore: DefaultCutoffLeftScore,
		MinSideDist:     DefaultMinSideDist,
	}
}

// BuildSides computes the Sides vector for the ordered sub-strand pair
// (ss0, ss1), per §4.6 step 1-2: for each consecutive CA pair on ss0, the
// atom on ss1 maximising the triangle angle, truncated to the shorter
// strand's length by descending angle.
func BuildSides(ss0, ss1 *sse.SSE) []Side {
	if ss0.Length() < 2 || ss1.Length() < 1 {
		return nil
	}
	var sides []Side
	for i := 0; i+1 < len(ss0.Atoms); i++ {
		a0, a1 := ss0.Atoms[i], ss0.Atoms[i+1]
		if !a0.Real || !a1.Real {
			continue
		}
		bestAngle := -1.0
		var bestOpp geom.Point
		found := false
		for _, opp := range ss1.Atoms {
			if !opp.Real {
				continue
			}
			angle := geom.Angle(a0.XYZ, a1.XYZ, opp.XYZ)
			if angle > bestAngle {
				bestAngle = angle
				bestOpp = opp.XYZ
				found = true
			}
		}
		if !found {
			continue
		}
		nFwd := bestOpp.Sub(a0.XYZ).Cross(a1.XYZ.Sub(a0.XYZ)).Normalized()
		nRev := bestOpp.Sub(a1.XYZ).Cross(a0.XYZ.Sub(a1.XYZ)).Normalized()
		sides = append(sides, Side{Base0: a0.XYZ, Base1: a1.XYZ, NFwd: nFwd, NRev: nRev, Angle: bestAngle})
	}

	minLen := ss0.Length()
	if ss1.Length() < minLen {
		minLen = ss1.Length()
	}
	if len(sides) > minLen {
		// keep top-minLen by descending angle
		sortSidesDesc(sides)
		sides = sides[:minLen]
	}
	return sides
}

func sortSidesDesc(s []Side) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j].Angle > s[j-1].Angle; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// classify reports left/right/too-close for point v against side, flipping
// the sense when mySide is true (the side belongs to the candidate's
// second strand), and selecting the reverse triangulation plane when the
// side's owning strand is virtually reversed (§4.6 "Reverse flags").
func classify(side Side, v geom.Point, mySide, reversed bool, minDist float64) (isLeft bool, counted bool) {
	base, n := side.plane(reversed)
	d := n.Dot(v.Sub(base))
	if mySide {
		d = -d
	}
	if d < -minDist {
		return true, true
	}
	if d > minDist {
		return false, true
	}
	return false, false
}

// ReverseFlags is a bitset, indexed by SSE id, of strands treated as
// virtually reversed for this query.
type ReverseFlags map[int]bool

// ApparentParallel applies the XOR rule from §4.6: reversing both flanking
// strands leaves the apparent direction unchanged; reversing exactly one
// flips it.
func ApparentParallel(baseParallel bool, revS0, revS1 bool) bool {
	return baseParallel == (revS0 == revS1)
}

// SegmentKind distinguishes the three kinds of material that can sit
// between the flanking strands of a candidate.
type SegmentKind int

const (
	SegmentHelix SegmentKind = iota
	SegmentLoop
	SegmentStrand
)

// Segment is one run of residues strictly between the candidate's two
// flanking strands: either an SSE (helix or strand) or a loop stretch with
// no assigned secondary structure.
type Segment struct {
	Kind  SegmentKind
	Atoms []sse.Atom
}

// Candidate is a β–α–β (or related) unit: two flanking sub-strands plus
// the segments spanned between them.
type Candidate struct {
	SS0, SS1     substrand.SubStrand
	Intervening  []Segment // helices/loops/strands strictly between e_first and e_last
	SameSheetMid int       // intervening strands reachable from ss0 that share its sheet
}

// Result is the filter's verdict for one candidate.
type Result struct {
	Success        bool
	RejectReason   RejectReason
	LeftScore      float64
	ConnectionType int // bit0 helix, bit1 loop, bit2 strand
}

// Evaluate runs the full gate sequence and, on success, the left/right
// atom count from §4.6 step 4-5. SameSheetMid must already be computed by
// the caller (it depends on sheet membership, outside this package). revS0
// and revS1 are the candidate's two flanking strands' virtual-reversal
// bits (§4.6 "Reverse flags"): gate 3 is evaluated against the apparent
// direction after applying them, and the scoring loop selects each side's
// forward or reverse triangulation plane accordingly.
func Evaluate(cand Candidate, cache *attr.Cache, sides01, sides10 []Side, revS0, revS1 bool, cfg Config) Result {
	if cand.SS0 == cand.SS1 {
		return Result{RejectReason: RejectEndpointsNotStrands}
	}
	if len(cand.Intervening) == 0 {
		return Result{RejectReason: RejectNoInterveningSSE}
	}

	a, ok := cache.Get(cand.SS0, cand.SS1)
	if !ok || !ApparentParallel(a.Direction == zone.Parallel, revS0, revS1) {
		return Result{RejectReason: RejectNotReachableOrNotParallel}
	}

	midResidues := 0
	for _, s := range cand.Intervening {
		midResidues += len(s.Atoms)
	}
	if midResidues > cfg.MaxMidResidues {
		return Result{RejectReason: RejectTooManyMidResidues}
	}
	if cand.SameSheetMid > cfg.MaxMidStrands {
		return Result{RejectReason: RejectTooManyMidStrands}
	}

	left, total := 0, 0
	connType := 0
	for _, s := range cand.Intervening {
		bit := kindBit(s.Kind)
		for _, atom := range s.Atoms {
			if !atom.Real {
				continue
			}
			hit := false
			for _, side := range sides01 {
				if isLeft, counted := classify(side, atom.XYZ, false, revS0, cfg.MinSideDist); counted {
					total++
					hit = true
					if isLeft {
						left++
					}
				}
			}
			for _, side := range sides10 {
				if isLeft, counted := classify(side, atom.XYZ, true, revS1, cfg.MinSideDist); counted {
					total++
					hit = true
					if isLeft {
						left++
					}
				}
			}
			if hit {
				connType |= bit
			}
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(left) / float64(total)
	}
	return Result{Success: true, LeftScore: score, ConnectionType: connType}
}

func kindBit(k SegmentKind) int {
	switch k {
	case SegmentHelix:
		return 1 << 0
	case SegmentLoop:
		return 1 << 1
	default:
		return 1 << 2
	}
}

// IsLeftHanded reports whether a successful Result crosses the cutoff.
func IsLeftHanded(r Result, cfg Config) bool {
	return r.Success && r.LeftScore > cfg.CutoffLeftScore
}
