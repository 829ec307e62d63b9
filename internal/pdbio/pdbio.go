// Package pdbio reads the subset of the PDB text format this tool needs:
// HELIX, SHEET and ATOM records. This is explicitly an external
// collaborator of the core topology engine (§1, §6 of the specification)
// -- it only has to produce a faithful []RawSSE / []Atom pair, the way
// benchaid's construct_boundary command hand-parses fixed-width ATOM
// records out of an AlphaFold PDB file to pull pLDDT values out of the
// B-factor column.
package pdbio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"sheettopo/internal/geom"
)

// RawSSE is a secondary-structure header parsed from HELIX/SHEET records,
// before CA coordinates have been attached.
type RawSSE struct {
	Kind byte // 'H' or 'E'
	Init int
	End  int
}

// RawAtom is one retained CA ATOM record.
type RawAtom struct {
	ResNum int
	XYZ    geom.Point
}

// Result holds everything read out of a PDB file.
type Result struct {
	SSEs  []RawSSE
	Atoms []RawAtom
}

// field extracts the inclusive 0-indexed column range [a,b] from line,
// trimmed of surrounding whitespace. Returns "" if the line is too short.
func field(line string, a, b int) string {
	if len(line) <= a {
		return ""
	}
	if b >= len(line) {
		b = len(line) - 1
	}
	if b < a {
		return ""
	}
	return strings.TrimSpace(line[a : b+1])
}

func atoiField(line string, a, b int) (int, bool) {
	s := field(line, a, b)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func atofField(line string, a, b int) (float64, bool) {
	s := field(line, a, b)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Read parses a PDB text stream and returns the HELIX/SHEET headers and CA
// ATOM records it finds. Only the columns named in §6 of the specification
// are consulted.
func Read(r io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "HELIX"):
			init, ok1 := atoiField(line, 21, 24)
			end, ok2 := atoiField(line, 33, 36)
			if ok1 && ok2 {
				res.SSEs = append(res.SSEs, RawSSE{Kind: 'H', Init: init, End: end})
			}
		case strings.HasPrefix(line, "SHEET"):
			init, ok1 := atoiField(line, 22, 25)
			end, ok2 := atoiField(line, 33, 36)
			if ok1 && ok2 {
				res.SSEs = append(res.SSEs, RawSSE{Kind: 'E', Init: init, End: end})
			}
		case strings.HasPrefix(line, "ATOM"):
			atomName := field(line, 12, 15)
			if atomName != "CA" {
				continue
			}
			resnum, ok := atoiField(line, 22, 25)
			if !ok {
				continue
			}
			x, okx := atofField(line, 30, 37)
			y, oky := atofField(line, 38, 45)
			z, okz := atofField(line, 46, 53)
			if !okx || !oky || !okz {
				continue
			}
			res.Atoms = append(res.Atoms, RawAtom{ResNum: resnum, XYZ: geom.Point{X: x, Y: y, Z: z}})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
