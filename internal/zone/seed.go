package zone

import (
	"fmt"

	"sheettopo/internal/pairs"
	"sheettopo/internal/sheeterr"
	"sheettopo/internal/sse"
)

// classifyBridge assigns a BridgeKind to the consecutive pair (prev, cur)
// sharing a partner strand, based on how far apart their two residue
// numbers on the partner side have drifted. A tight, same-direction drift
// is a laddered hbond bridge; a widening or reversing drift is a ring
// closure, split into small/large by a fixed residue-count threshold (ring
// residues up to smallRingMax apart are "small", anything wider is
// "large").
const smallRingMax = 5

func classifyBridge(prev, cur pairs.Pair) BridgeKind {
	d0 := cur.R0 - prev.R0
	d1 := cur.R1 - prev.R1
	switch {
	case d0 == d1 && (d0 == 1 || d0 == -1):
		return ParallelHbonds
	case d0 != 0 && d1 == 0:
		return ParallelNoHbonds
	default:
		span := d1
		if span < 0 {
			span = -span
		}
		if span <= smallRingMax {
			return SmallRing
		}
		return LargeRing
	}
}

// seedResult is the strict-zone engine's pre-BFS state: every residue that
// took part in at least one hbond, tagged with its (up to two) bridge
// partner pointers.
type seedResult struct {
	infos map[ZoneResidue]*Info
}

func newSeedResult() *seedResult {
	return &seedResult{infos: make(map[ZoneResidue]*Info)}
}

func (s *seedResult) get(zr ZoneResidue) *Info {
	info, ok := s.infos[zr]
	if !ok {
		info = &Info{Side: Undefined}
		s.infos[zr] = info
	}
	return info
}

// seedZones walks every strand's resorted involved-pair list, grouping
// consecutive entries by partner strand, and records a bridge-partner
// pointer (with its BridgeKind) for each endpoint. A strand residue holds
// at most one partner per slot (NonHbonded or Hbonded, chosen by the
// bridge kind); a different partner residue arriving for an already-filled
// slot is fatal per §4.2.
func seedZones(resorted [][]pairs.Pair, sses *sse.Collection) (*seedResult, error) {
	res := newSeedResult()

	for e, ps := range resorted {
		if len(ps) < 2 {
			continue
		}
		var run []pairs.Pair
		partner := -1
		flush := func() error {
			if len(run) < 2 {
				return nil
			}
			for i := 1; i < len(run); i++ {
				prev, cur := run[i-1], run[i]
				kind := classifyBridge(prev, cur)
				if kind == NoBridge {
					continue
				}
				if err := recordBridge(res, e, partner, prev, kind); err != nil {
					return err
				}
				if err := recordBridge(res, e, partner, cur, kind); err != nil {
					return err
				}
			}
			return nil
		}
		for _, pr := range ps {
			s, ok := sses.StrandContaining(pr.R1)
			if !ok {
				continue
			}
			if s != partner {
				if err := flush(); err != nil {
					return nil, err
				}
				run = nil
				partner = s
			}
			run = append(run, pr)
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func recordBridge(res *seedResult, strand, partnerStrand int, pr pairs.Pair, kind BridgeKind) error {
	zr := ZoneResidue{Strand: strand, ResNum: pr.R0}
	info := res.get(zr)
	info.Colored = true
	adj := ZoneResidue{Strand: partnerStrand, ResNum: pr.R1}
	slot := int(kind.Slot())

	if !info.AdjSet[slot] {
		info.AdjRes[slot] = adj
		info.AdjSet[slot] = true
		info.BridgeType[slot] = kind
		return nil
	}
	if info.AdjRes[slot] == adj {
		return nil
	}
	return fmt.Errorf("%w: residue %d on strand %d", sheeterr.ErrThirdPairFound, pr.R0, strand)
}
