// Package sse holds the secondary-structure-element model: helices and
// strands with their residue ranges, dense CA coordinate vectors and
// representative atoms, following the teacher's pattern of a flat record
// struct plus a handful of derived accessors (see pdb.Chain in the
// retrieval pack's TuftsBCB-io/pdb package, adapted here for strands and
// helices rather than chains/residues).
package sse

import "sheettopo/internal/geom"

// Kind is the secondary-structure letter.
type Kind int

const (
	KindHelix Kind = iota
	KindStrand
)

func (k Kind) String() string {
	if k == KindStrand {
		return "E"
	}
	return "H"
}

const (
	helixTooShort  = 5
	strandTooShort = 2
)

// Atom is one CA position plus whether the residue was actually present in
// the source structure (false means the slot is a placeholder for a
// missing residue).
type Atom struct {
	XYZ  geom.Point
	Real bool
}

// SSE is one helix or strand: an inclusive residue range [Init, End] and a
// dense per-residue CA vector of length End-Init+1.
type SSE struct {
	ID       int // dense serial id over all SSEs, in sequence order
	Kind     Kind
	Init     int
	End      int
	Atoms    []Atom
	TooShort bool
}

// Length returns the number of residues spanned by the SSE.
func (s *SSE) Length() int { return s.End - s.Init + 1 }

// OffsetOf returns the 0-based index of resnum within this SSE's Atoms
// slice, and whether resnum actually lies in [Init, End].
func (s *SSE) OffsetOf(resnum int) (int, bool) {
	if resnum < s.Init || resnum > s.End {
		return 0, false
	}
	return resnum - s.Init, true
}

// AtomAt returns the Atom for resnum, or the zero Atom plus false if the
// residue number is out of range.
func (s *SSE) AtomAt(resnum int) (Atom, bool) {
	off, ok := s.OffsetOf(resnum)
	if !ok {
		return Atom{}, false
	}
	return s.Atoms[off], true
}

// AllReal reports whether every residue in the SSE has a real CA atom.
func (s *SSE) AllReal() bool {
	for _, a := range s.Atoms {
		if !a.Real {
			return false
		}
	}
	return true
}

// classifyTooShort sets TooShort per the kind-specific thresholds (helix 5,
// strand 2) from §3 of the data model.
func classifyTooShort(k Kind, length int) bool {
	if k == KindHelix {
		return length < helixTooShort
	}
	return length < strandTooShort
}

// New builds an SSE, computing Length-derived fields. atoms must have
// length end-init+1.
func New(id int, kind Kind, init, end int, atoms []Atom) SSE {
	s := SSE{ID: id, Kind: kind, Init: init, End: end, Atoms: atoms}
	s.TooShort = classifyTooShort(kind, s.Length())
	return s
}

// RepAtom returns the representative point for the SSE: a weighted 4-residue
// mean for helices (the first, second, second-to-last and last residues,
// weighted 1:2:2:1 as a coarse helix-axis proxy) and a weighted 2-residue
// mean for strands (first and last residues, 1:1). Only valid -- ok==true
// -- when every underlying residue is real.
func (s *SSE) RepAtom() (geom.Point, bool) {
	if !s.AllReal() {
		return geom.Point{}, false
	}
	n := len(s.Atoms)
	if s.Kind == KindStrand {
		if n < 2 {
			return geom.Point{}, false
		}
		return s.Atoms[0].XYZ.Add(s.Atoms[n-1].XYZ).Scale(0.5), true
	}
	if n < 4 {
		return geom.Point{}, false
	}
	sum := s.Atoms[0].XYZ.Scale(1).
		Add(s.Atoms[1].XYZ.Scale(2)).
		Add(s.Atoms[n-2].XYZ.Scale(2)).
		Add(s.Atoms[n-1].XYZ.Scale(1))
	return sum.Scale(1.0 / 6.0), true
}

// Collection is the immutable set of SSEs built once from input. Strands
// additionally get a dense "strand serial" numbering, separate from the ID
// field which spans both helices and strands.
type Collection struct {
	Data []SSE

	// StrandSerial[i] is the dense strand-only index of Data[i], or -1 if
	// Data[i] is a helix.
	StrandSerial []int

	// StrandIndex maps a strand serial back to its index into Data.
	StrandIndex []int
}

// NewCollection builds a Collection from SSEs in sequence order, assigning
// dense strand serials.
func NewCollection(data []SSE) *Collection {
	c := &Collection{Data: data, StrandSerial: make([]int, len(data))}
	next := 0
	for i, s := range data {
		if s.Kind == KindStrand {
			c.StrandSerial[i] = next
			c.StrandIndex = append(c.StrandIndex, i)
			next++
		} else {
			c.StrandSerial[i] = -1
		}
	}
	return c
}

// Strand returns the SSE for a given dense strand serial.
func (c *Collection) Strand(serial int) *SSE {
	return &c.Data[c.StrandIndex[serial]]
}

// NumStrands returns the number of strand SSEs.
func (c *Collection) NumStrands() int { return len(c.StrandIndex) }

// StrandContaining returns the strand serial whose [Init-1, End+1] window
// contains resnum, and ok=true if one was found. Offset 1 lets a strand's
// edge residue -- whose side-chain bridge partner points outward by one
// position -- still be attributed to that strand (§4.1).
func (c *Collection) StrandContaining(resnum int) (serial int, ok bool) {
	for i, s := range c.Data {
		if c.StrandSerial[i] < 0 {
			continue
		}
		if resnum >= s.Init-1 && resnum <= s.End+1 {
			return c.StrandSerial[i], true
		}
	}
	return 0, false
}

// StrandAt returns the strand serial owning resnum exactly (within
// [Init,End], no fuzz), and ok=true if found.
func (c *Collection) StrandAt(resnum int) (serial int, ok bool) {
	for i, s := range c.Data {
		if c.StrandSerial[i] < 0 {
			continue
		}
		if resnum >= s.Init && resnum <= s.End {
			return c.StrandSerial[i], true
		}
	}
	return 0, false
}
