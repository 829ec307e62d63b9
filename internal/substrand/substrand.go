// Package substrand implements the sub-strand registry (C5). Per the
// design note in §9, the original's SubStrandsRange -- used both as a
// mutable builder during the strict-zone BFS and as an immutable sorted
// index afterwards -- is split here into two distinct types: Builder
// (append-only, mergeable ranges, keyed by whatever order the BFS happens
// to visit residues in) and Range (sorted, dense, queryable by the caller
// once Builder.Finish is called).
package substrand

import "sort"

// SubStrand identifies a sub-strand by its parent strand's dense serial
// and a 0-based index inside that strand. Before Builder.Finish, the index
// is a builder-local handle; after Finish, it is the dense, residue-order
// substr_id described in §3.
type SubStrand struct {
	Strand int
	ID     int
}

// Span is an inclusive residue-number range.
type Span struct {
	Init, End int
}

func (s Span) Length() int { return s.End - s.Init + 1 }

type openRange struct {
	strand     int
	init, end  int
	erased     bool
}

func (r *openRange) Length() int { return r.end - r.init + 1 }

// Builder accumulates per-strand residue ranges while the strict-zone BFS
// (C4) runs, merging newly-touched residues into whichever open range they
// are adjacent to.
type Builder struct {
	ranges   []*openRange
	redirect []int
	byStrand map[int][]int

	// barriers[strand][lowerResnum] forbids merging lowerResnum with
	// lowerResnum+1 -- used when the BFS refuses a backbone continuation
	// because it would blur two sub-strands together (§4.2).
	barriers map[int]map[int]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{byStrand: make(map[int][]int), barriers: make(map[int]map[int]bool)}
}

// Barrier forbids the sub-strand range covering lowerResnum from ever
// merging with the range covering lowerResnum+1 on the same strand.
func (b *Builder) Barrier(strand, lowerResnum int) {
	m := b.barriers[strand]
	if m == nil {
		m = make(map[int]bool)
		b.barriers[strand] = m
	}
	m[lowerResnum] = true
}

func (b *Builder) barred(strand, lowerResnum int) bool {
	return b.barriers[strand][lowerResnum]
}

func (b *Builder) find(idx int) int {
	for b.redirect[idx] != idx {
		idx = b.redirect[idx]
	}
	return idx
}

// Extend registers that resnum on strand participates in the sub-strand
// being built, creating a new one-residue sub-strand, growing an existing
// adjacent one, or merging two now-touching ones. Returns the (possibly
// provisional) SubStrand handle for resnum.
func (b *Builder) Extend(strand, resnum int) SubStrand {
	idxs := b.byStrand[strand]
	for _, raw := range idxs {
		idx := b.find(raw)
		r := b.ranges[idx]
		if resnum >= r.init && resnum <= r.end {
			return SubStrand{strand, idx}
		}
	}
	grown := -1
	for _, raw := range idxs {
		idx := b.find(raw)
		r := b.ranges[idx]
		if resnum == r.end+1 && !b.barred(strand, r.end) {
			r.end = resnum
			grown = idx
			break
		}
		if resnum == r.init-1 && !b.barred(strand, resnum) {
			r.init = resnum
			grown = idx
			break
		}
	}
	if grown < 0 {
		idx := len(b.ranges)
		b.ranges = append(b.ranges, &openRange{strand: strand, init: resnum, end: resnum})
		b.redirect = append(b.redirect, idx)
		b.byStrand[strand] = append(b.byStrand[strand], idx)
		return SubStrand{strand, idx}
	}
	// A merge may now be possible: the grown range might touch another
	// open range on the same strand.
	for _, raw := range idxs {
		other := b.find(raw)
		if other == grown {
			continue
		}
		g, o := b.ranges[grown], b.ranges[other]
		if g.end+1 == o.init && !b.barred(strand, g.end) {
			g.end = o.end
			o.erased = true
			b.redirect[other] = grown
			break
		}
		if o.end+1 == g.init && !b.barred(strand, o.end) {
			g.init = o.init
			o.erased = true
			b.redirect[other] = grown
			break
		}
	}
	return SubStrand{strand, grown}
}

// Resolve follows any merges that have happened to ss since it was
// returned by Extend, returning the current canonical handle.
func (b *Builder) Resolve(ss SubStrand) SubStrand {
	return SubStrand{ss.Strand, b.find(ss.ID)}
}

// Span returns the current (possibly still growing) range for ss.
func (b *Builder) Span(ss SubStrand) Span {
	r := b.ranges[b.find(ss.ID)]
	return Span{r.init, r.end}
}

// Erase marks ss (and whatever it resolves to) as removed. Used when a
// finished component's sub-strand turns out shorter than 2 residues.
func (b *Builder) Erase(ss SubStrand) {
	b.ranges[b.find(ss.ID)].erased = true
}

// Finish sorts each strand's surviving (non-erased, length >= 2) ranges by
// residue number and assigns dense substr_id values. It returns the
// immutable Range index and a remap from every provisional SubStrand
// handle ever produced by Extend to its final, renumbered SubStrand.
func (b *Builder) Finish() (*Range, map[SubStrand]SubStrand) {
	rng := &Range{byStrand: make(map[int][]Span)}
	remap := make(map[SubStrand]SubStrand)

	strands := make([]int, 0, len(b.byStrand))
	for strand := range b.byStrand {
		strands = append(strands, strand)
	}
	sort.Ints(strands)

	for _, strand := range strands {
		seen := map[int]bool{}
		var spans []Span
		var canonicalIdxs []int
		for _, raw := range b.byStrand[strand] {
			idx := b.find(raw)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			r := b.ranges[idx]
			if r.erased || r.Length() < 2 {
				if !r.erased {
					r.erased = true
				}
				continue
			}
			spans = append(spans, Span{r.init, r.end})
			canonicalIdxs = append(canonicalIdxs, idx)
		}
		order := make([]int, len(spans))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool {
			return spans[order[i]].Init < spans[order[j]].Init
		})
		finalSpans := make([]Span, len(order))
		for newID, oldPos := range order {
			finalSpans[newID] = spans[oldPos]
			remap[SubStrand{strand, canonicalIdxs[oldPos]}] = SubStrand{strand, newID}
		}
		rng.byStrand[strand] = finalSpans
		rng.order = append(rng.order, strand)
	}

	// Every provisional handle that was ever merged away must also map to
	// its final destination, so callers holding a stale handle resolve
	// correctly.
	for strand, idxs := range b.byStrand {
		for _, raw := range idxs {
			canon := b.find(raw)
			if final, ok := remap[SubStrand{strand, canon}]; ok {
				remap[SubStrand{strand, raw}] = final
			}
		}
	}

	return rng, remap
}

// Range is the immutable, sorted, queryable sub-strand index produced by
// Builder.Finish.
type Range struct {
	byStrand map[int][]Span
	order    []int
}

// Span returns the residue range of ss.
func (r *Range) Span(ss SubStrand) Span {
	return r.byStrand[ss.Strand][ss.ID]
}

// Count returns the number of sub-strands belonging to a strand.
func (r *Range) Count(strand int) int {
	return len(r.byStrand[strand])
}

// NTermRes and CTermRes return the first and last residue number of ss.
func (r *Range) NTermRes(ss SubStrand) int { return r.Span(ss).Init }
func (r *Range) CTermRes(ss SubStrand) int { return r.Span(ss).End }

// All returns every sub-strand, ordered by strand serial then substr_id.
func (r *Range) All() []SubStrand {
	strands := make([]int, 0, len(r.byStrand))
	for s := range r.byStrand {
		strands = append(strands, s)
	}
	sort.Ints(strands)
	var out []SubStrand
	for _, s := range strands {
		for id := range r.byStrand[s] {
			out = append(out, SubStrand{s, id})
		}
	}
	return out
}
