// Package sheeterr collects the invariant-fatal and input-fatal error kinds
// the pipeline can raise. The original C++ implementation used exceptions
// for this (third_pair_found, zone_info_failure, non_symmetric,
// substrand_cleanup_failure, TargetRelativeDirectionNotSet,
// AdjacentSubStrandNotFound, SubStrandErased); per §9's design note these
// become a small set of sentinel errors checked with errors.Is, so a fatal
// condition returns up through ordinary Go error values instead of
// unwinding the call stack.
package sheeterr

import "errors"

var (
	// ErrThirdPairFound: a residue would receive a second, different bridge
	// partner for a hbond-side slot that already holds one.
	ErrThirdPairFound = errors.New("sheet: residue already has a different bridge partner for this slot")

	// ErrZoneInfoFailure: a ZoneResidue was constructed from a residue
	// number that does not belong to the SSE it claims, or lies outside
	// that SSE's range.
	ErrZoneInfoFailure = errors.New("sheet: residue does not belong to the claimed strand")

	// ErrNonSymmetric: the undirected strand-pair adjacency is not
	// symmetric (one strand lacks the reverse entry, or the two strands'
	// votes disagree on direction).
	ErrNonSymmetric = errors.New("sheet: undirected strand adjacency is not symmetric")

	// ErrDirectionUnresolvable: the parallel/anti-parallel vote for a
	// strand pair has no clear majority (minority fraction >= 0.5).
	ErrDirectionUnresolvable = errors.New("sheet: strand pair direction could not be resolved")

	// ErrSubstrandCleanup: compaction found two reverse edges whose
	// residue-pair counts are too close to call (minority/majority > 0.66).
	ErrSubstrandCleanup = errors.New("sheet: cannot decide which reverse sub-strand edge to drop")

	// ErrTargetRelativeDirectionNotSet: update_rel_dir was asked to
	// propagate a relative direction from a strand that has none yet.
	ErrTargetRelativeDirectionNotSet = errors.New("sheet: target strand has no relative direction yet")

	// ErrAdjacentSubStrandNotFound: a lookup into the side-keyed auxiliary
	// adjacency found no entry for the requested sub-strand/side.
	ErrAdjacentSubStrandNotFound = errors.New("sheet: no adjacent sub-strand registered for this side")

	// ErrSubStrandErased: a sub-strand reference was used after the
	// sub-strand it pointed to was removed for being shorter than 2
	// residues.
	ErrSubStrandErased = errors.New("sheet: sub-strand was erased during compaction")
)
