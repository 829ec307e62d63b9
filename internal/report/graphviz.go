package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

// WriteGraphviz emits the dot graph described in §6: one node per
// sub-strand labelled "sse_id\n[init ~ end]", coloured by a blue->red HSV
// ramp over strand serial id, edges labelled "[Anti-]Parallel d1:d2" with
// penwidth scaled by residue_pairs and dir=none for undirected edges.
func WriteGraphviz(w io.Writer, d *Data) error {
	if _, err := fmt.Fprintln(w, "digraph sheettopo {"); err != nil {
		return err
	}

	maxStrand := 0
	for _, ss := range d.Range.All() {
		if ss.Strand > maxStrand {
			maxStrand = ss.Strand
		}
	}

	all := d.Range.All()
	sort.Slice(all, func(i, j int) bool { return lessSS(all[i], all[j]) })
	for _, ss := range all {
		span := d.Range.Span(ss)
		color := strandColor(ss.Strand, maxStrand)
		if _, err := fmt.Fprintf(w, "  %q [label=%q, style=filled, fillcolor=%q];\n",
			nodeID(ss), fmt.Sprintf("%d\n[%d ~ %d]", d.SSEs.Strand(ss.Strand).ID, span.Init, span.End), color); err != nil {
			return err
		}
	}

	maxResiduePairs := 0
	for _, node := range d.Edges {
		if node.ResiduePairs > maxResiduePairs {
			maxResiduePairs = node.ResiduePairs
		}
	}
	if maxResiduePairs == 0 {
		maxResiduePairs = 1
	}

	undirectedPairs := make(map[zone.PairKey]bool)
	for key := range d.Edges {
		if _, ok := d.Edges[key.Reverse()]; ok {
			undirectedPairs[key] = true
			undirectedPairs[key.Reverse()] = true
		}
	}

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

	written := make(map[zone.PairKey]bool)
	for _, key := range keys {
		if undirectedPairs[key] && written[key.Reverse()] {
			continue
		}
		written[key] = true
		node := d.Edges[key]
		label := fmt.Sprintf("%s %d:%d", directionWord(node.Direction), node.Delta1, node.Delta2)
		penwidth := 5.0 * float64(node.ResiduePairs) / float64(maxResiduePairs)
		dirAttr := ""
		if undirectedPairs[key] {
			dirAttr = ", dir=none"
		}
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q, penwidth=%.2f%s];\n",
			nodeID(key.S0), nodeID(key.S1), label, penwidth, dirAttr); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func directionWord(d zone.Direction) string {
	if d == zone.Parallel {
		return "Parallel"
	}
	return "Anti-Parallel"
}

func nodeID(ss substrand.SubStrand) string {
	return fmt.Sprintf("ss_%d_%d", ss.Strand, ss.ID)
}

// strandColor maps a strand serial onto a blue(240deg)->red(0deg) HSV ramp,
// full saturation/value, using only stdlib math -- no colour library
// anywhere in the retrieval pack's bioinformatics repos either (§1 scopes
// the original's colour utility out as an external collaborator).
func strandColor(serial, max int) string {
	frac := 0.0
	if max > 0 {
		frac = float64(serial) / float64(max)
	}
	hue := 240.0 * (1.0 - frac)
	r, g, b := hsvToRGB(hue, 1.0, 1.0)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hsvToRGB(h, s, v float64) (r, g, b int) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return int((rf + m) * 255), int((gf + m) * 255), int((bf + m) * 255)
}
