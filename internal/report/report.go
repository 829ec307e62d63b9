// Package report renders the pipeline's final state into the two text
// flavours described in §6: a PDB-ish record stream and an mmCIF-ish one
// that additionally carries adjacency_list/handedness sections. Neither
// flavour is part of THE CORE (§1 calls table formatting an external
// collaborator) -- this package only turns already-computed structures
// into the documented field layout, the way benchaid's cmd/ tools print a
// JSON or table result with a plain writeJSON/fmt.Fprintf helper rather
// than a templating engine.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"sheettopo/internal/attr"
	"sheettopo/internal/handed"
	"sheettopo/internal/sheet"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// Style selects the output column flavour (§6, CLI option -t).
type Style int

const (
	PDBStyle Style = iota
	MMCIFStyle
)

// ResiduePairRecord is one RESIDUE_PAIR row: a single bridge between two
// residues, named by absolute PDB residue number.
type ResiduePairRecord struct {
	R0, R1 int
	Dir    zone.Direction
	Kind   zone.BridgeKind
	Face   string // "upper" or "lower", the Side label r0 carried
}

// HandedRecord pairs a STRAND_PAIR row's sub-strand key with the
// handedness filter's verdict, when one was computed for it.
type HandedRecord struct {
	SS0, SS1 substrand.SubStrand
	Result   handed.Result
}

// Data is everything report needs to render a full run: the finished
// pipeline state plus whatever handedness verdicts the caller chose to
// compute.
type Data struct {
	SSEs     *sse.Collection
	Range    *substrand.Range
	Sheets   []*sheet.Sheet
	SheetOf  map[substrand.SubStrand]int // index into Sheets
	Edges    map[zone.PairKey]*zone.PairNode
	Cache    *attr.Cache
	Residues []ResiduePairRecord
	Handed   []HandedRecord
}

func dirChar(d zone.Direction) string {
	if d == zone.Parallel {
		return "P"
	}
	return "A"
}

func ssLabel(ss substrand.SubStrand) string {
	return fmt.Sprintf("%d.%d", ss.Strand, ss.ID)
}

// WriteText renders every §6 record section in order: SUBSTRAND, HELIX,
// SHEET_INFO, EXT_SHEET, CYCLE, STRAND_PAIR, RESIDUE_PAIR, and -- only in
// MMCIFStyle -- adjacency_list and handedness.
func WriteText(w io.Writer, style Style, d *Data) error {
	writers := []func(io.Writer, *Data) error{
		writeSubstrands,
		writeHelices,
		writeSheetInfo,
		writeExtSheet,
		writeCycles,
		writeStrandPairs,
		writeResiduePairs,
	}
	for _, fn := range writers {
		if err := fn(w, d); err != nil {
			return err
		}
	}
	if style == MMCIFStyle {
		if err := writeAdjacencyList(w, d); err != nil {
			return err
		}
		if err := writeHandedness(w, d); err != nil {
			return err
		}
	}
	return nil
}

func writeSubstrands(w io.Writer, d *Data) error {
	for _, ss := range d.Range.All() {
		span := d.Range.Span(ss)
		sheetID := d.SheetOf[ss]
		if _, err := fmt.Fprintf(w, "SUBSTRAND %s %d %d %d\n", ssLabel(ss), sheetID, span.Init, span.End); err != nil {
			return err
		}
	}
	return nil
}

func writeHelices(w io.Writer, d *Data) error {
	for _, s := range d.SSEs.Data {
		if s.Kind != sse.KindHelix {
			continue
		}
		if _, err := fmt.Fprintf(w, "HELIX %d %d %d\n", s.ID, s.Init, s.End); err != nil {
			return err
		}
	}
	return nil
}

func writeSheetInfo(w io.Writer, d *Data) error {
	for i, s := range d.Sheets {
		order := sheet.LateralOrder(s)
		richardson := sheet.Richardson(s, order, d.Edges)
		cohen := sheet.Cohen(order, d.Edges)

		allPara, allAnti := true, true
		consecutive := true
		for _, key := range s.Keys {
			node := d.Edges[key]
			if node.Direction == zone.Parallel {
				allAnti = false
			} else {
				allPara = false
			}
		}
		if len(s.Keys) == 0 {
			allPara, allAnti = false, false
		}
		withBranch := hasBranch(s)
		var members []string
		for _, ss := range order {
			members = append(members, ssLabel(ss))
		}
		if _, err := fmt.Fprintf(w, "SHEET_INFO %d %d %d %v %v %v %v %v %s %s %s\n",
			i, len(s.Members), len(s.Cycles), s.Undirected, withBranch, consecutive,
			allPara, allAnti, strings.Join(members, ","), richardson, cohen); err != nil {
			return err
		}
	}
	return nil
}

// hasBranch reports whether any member has more than two distinct
// neighbours in the sheet's internal adjacency (a branch point rather than
// a linear run).
func hasBranch(s *sheet.Sheet) bool {
	degree := make(map[substrand.SubStrand]map[substrand.SubStrand]bool)
	for _, key := range s.Keys {
		if degree[key.S0] == nil {
			degree[key.S0] = make(map[substrand.SubStrand]bool)
		}
		if degree[key.S1] == nil {
			degree[key.S1] = make(map[substrand.SubStrand]bool)
		}
		degree[key.S0][key.S1] = true
		degree[key.S1][key.S0] = true
	}
	for _, nbs := range degree {
		if len(nbs) > 2 {
			return true
		}
	}
	return false
}

func writeExtSheet(w io.Writer, d *Data) error {
	for i, s := range d.Sheets {
		order := sheet.LateralOrder(s)
		cohen := sheet.Cohen(order, d.Edges)
		for j, ss := range order {
			if _, err := fmt.Fprintf(w, "EXT_SHEET %d %d %s %s\n", i, j, ssLabel(ss), cohen); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCycles(w io.Writer, d *Data) error {
	for i, s := range d.Sheets {
		for _, c := range s.Cycles {
			for j, ss := range c {
				if _, err := fmt.Fprintf(w, "CYCLE %d %d %s\n", i, j, ssLabel(ss)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeStrandPairs(w io.Writer, d *Data) error {
	var keys []zone.PairKey
	for key := range d.Edges {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].S0 != keys[j].S0 {
			return lessSS(keys[i].S0, keys[j].S0)
		}
		return lessSS(keys[i].S1, keys[j].S1)
	})

	for _, key := range keys {
		node := d.Edges[key]
		sheetID := d.SheetOf[key.S0]
		a, _ := d.Cache.Get(key.S0, key.S1)
		jump := attr.UnreachableJump
		if a.Reachable {
			jump = a.Jump
		}
		bridge, score, lbtsSSE, lbtsRes := "-", "-", "-", "-"
		for _, h := range d.Handed {
			if h.SS0 == key.S0 && h.SS1 == key.S1 && h.Result.Success {
				bridge = "bab"
				score = fmt.Sprintf("%.3f", h.Result.LeftScore)
				lbtsSSE = fmt.Sprintf("%d", h.Result.ConnectionType)
				lbtsRes = fmt.Sprintf("%d", node.ResiduePairs)
				break
			}
		}
		if _, err := fmt.Fprintf(w, "STRAND_PAIR %s %s %d %s %s %d %d %d %s %s %s %s\n",
			ssLabel(key.S0), ssLabel(key.S1), sheetID, node.Direction, dirChar(node.Direction),
			jump, node.Delta1, node.Delta2, bridge, score, lbtsSSE, lbtsRes); err != nil {
			return err
		}
	}
	return nil
}

func writeResiduePairs(w io.Writer, d *Data) error {
	for _, r := range d.Residues {
		if _, err := fmt.Fprintf(w, "RESIDUE_PAIR %d %d %s %s %s\n", r.R0, r.R1, dirChar(r.Dir), r.Kind, r.Face); err != nil {
			return err
		}
	}
	return nil
}

func writeAdjacencyList(w io.Writer, d *Data) error {
	if _, err := fmt.Fprintln(w, "adjacency_list"); err != nil {
		return err
	}
	all := d.Range.All()
	sort.Slice(all, func(i, j int) bool { return lessSS(all[i], all[j]) })
	for _, ss := range all {
		var nbs []string
		for _, key := range sheetKeysFor(d, ss) {
			nbs = append(nbs, ssLabel(key.S1))
		}
		if _, err := fmt.Fprintf(w, "  %s -> %s\n", ssLabel(ss), strings.Join(nbs, ",")); err != nil {
			return err
		}
	}
	return nil
}

func sheetKeysFor(d *Data, ss substrand.SubStrand) []zone.PairKey {
	var out []zone.PairKey
	for key := range d.Edges {
		if key.S0 == ss {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessSS(out[i].S1, out[j].S1) })
	return out
}

func writeHandedness(w io.Writer, d *Data) error {
	if _, err := fmt.Fprintln(w, "handedness"); err != nil {
		return err
	}
	for _, h := range d.Handed {
		verdict := "right"
		if handed.IsLeftHanded(h.Result, handed.DefaultConfig()) {
			verdict = "left"
		}
		if !h.Result.Success {
			verdict = fmt.Sprintf("reject:%d", h.Result.RejectReason)
		}
		if _, err := fmt.Fprintf(w, "  %s %s %.3f %s\n", ssLabel(h.SS0), ssLabel(h.SS1), h.Result.LeftScore, verdict); err != nil {
			return err
		}
	}
	return nil
}

func lessSS(a, b substrand.SubStrand) bool {
	if a.Strand != b.Strand {
		return a.Strand < b.Strand
	}
	return a.ID < b.ID
}
