package sse

import (
	"fmt"
	"sort"

	"sheettopo/internal/geom"
	"sheettopo/internal/pdbio"
)

// FromRaw assembles a sequence-ordered []SSE from the headers and CA atoms
// a pdbio/stride reader produced: each header becomes one SSE whose dense
// Atoms vector is filled from whichever raw atoms fall in [Init, End],
// with any residue lacking a CA record left as a placeholder (Real=false,
// §3's "residue missing in source" case, §7's matching recoverable
// warning). Headers with an inverted range (End < Init) are rejected as
// input-fatal (§7).
func FromRaw(headers []pdbio.RawSSE, atoms []pdbio.RawAtom) ([]SSE, error) {
	byRes := make(map[int]geom.Point, len(atoms))
	for _, a := range atoms {
		byRes[a.ResNum] = a.XYZ
	}

	sorted := append([]pdbio.RawSSE(nil), headers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Init < sorted[j].Init })

	out := make([]SSE, 0, len(sorted))
	for id, h := range sorted {
		if h.End < h.Init {
			return nil, fmt.Errorf("sse: header %d has inverted range [%d,%d]", id, h.Init, h.End)
		}
		var kind Kind
		switch h.Kind {
		case 'H':
			kind = KindHelix
		case 'E':
			kind = KindStrand
		default:
			return nil, fmt.Errorf("sse: unknown SSE kind %q", h.Kind)
		}
		n := h.End - h.Init + 1
		residueAtoms := make([]Atom, n)
		for i := 0; i < n; i++ {
			resnum := h.Init + i
			if xyz, ok := byRes[resnum]; ok {
				residueAtoms[i] = Atom{XYZ: xyz, Real: true}
			}
		}
		out = append(out, New(id, kind, h.Init, h.End, residueAtoms))
	}
	return out, nil
}
