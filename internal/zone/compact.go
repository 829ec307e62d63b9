package zone

import (
	"fmt"

	"sheettopo/internal/sheeterr"
)

// compactRatio is the fatal threshold: when two reverse edges in a
// directed (non-fallback) component are this comparable in weight, neither
// is clearly spurious and dropping one would be a guess (§4.2 compaction).
const compactRatio = 0.66

// compactReverseEdges drops the weaker of every reverse-edge pair among the
// edges that did NOT come from a fallback component -- a directed
// component is expected to carry only one direction between any two
// sub-strands, so a reverse edge there is noise from a mis-seeded bridge.
func compactReverseEdges(edges map[PairKey]*PairNode, fallbackEdges map[PairKey]bool) error {
	seen := make(map[PairKey]bool)
	for key := range edges {
		if fallbackEdges[key] || seen[key] {
			continue
		}
		rev := key.Reverse()
		revNode, hasRev := edges[rev]
		if !hasRev || fallbackEdges[rev] {
			seen[key] = true
			continue
		}
		seen[key] = true
		seen[rev] = true

		fwdNode := edges[key]
		lo, hi := fwdNode.ResiduePairs, revNode.ResiduePairs
		dropKey := key
		if lo > hi {
			lo, hi = hi, lo
			dropKey = rev
		}
		if hi == 0 {
			continue
		}
		if float64(lo)/float64(hi) > compactRatio {
			return fmt.Errorf("%w: edges %+v/%+v too comparable (%d/%d)", sheeterr.ErrSubstrandCleanup, key, rev, lo, hi)
		}
		delete(edges, dropKey)
	}
	return nil
}
