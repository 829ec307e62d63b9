package report

import (
	"strings"
	"testing"

	"sheettopo/internal/attr"
	"sheettopo/internal/hbond"
	"sheettopo/internal/sheet"
	"sheettopo/internal/sse"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

func makeStrand(id, init, end int) sse.SSE {
	atoms := make([]sse.Atom, end-init+1)
	for i := range atoms {
		atoms[i] = sse.Atom{Real: true}
	}
	return sse.New(id, sse.KindStrand, init, end, atoms)
}

func buildParallelHairpin(t *testing.T) *Data {
	a := makeStrand(0, 1, 5)
	b := makeStrand(1, 10, 14)
	col := sse.NewCollection([]sse.SSE{a, b})

	bonds := []hbond.Bond{
		{Donor: 1, Acceptor: 12},
		{Donor: 3, Acceptor: 14},
		{Donor: 12, Acceptor: 3},
	}

	res, err := zone.Build(col, bonds)
	if err != nil {
		t.Fatalf("zone.Build: %v", err)
	}
	sheets := sheet.Assemble(res.Range, res.Edges)
	sheetOf := make(map[substrand.SubStrand]int)
	for i, s := range sheets {
		for _, m := range s.Members {
			sheetOf[m] = i
		}
	}
	cache := attr.Build(res.Range.All(), res.Edges)

	return &Data{
		SSEs:    col,
		Range:   res.Range,
		Sheets:  sheets,
		SheetOf: sheetOf,
		Edges:   res.Edges,
		Cache:   cache,
	}
}

func TestWriteText_PDBStyle(t *testing.T) {
	d := buildParallelHairpin(t)
	var buf strings.Builder
	if err := WriteText(&buf, PDBStyle, d); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"SUBSTRAND", "SHEET_INFO", "STRAND_PAIR"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q record:\n%s", want, out)
		}
	}
	if strings.Contains(out, "adjacency_list") {
		t.Errorf("PDBStyle output should not contain mmCIF-only sections")
	}
}

func TestWriteText_MMCIFStyle(t *testing.T) {
	d := buildParallelHairpin(t)
	var buf strings.Builder
	if err := WriteText(&buf, MMCIFStyle, d); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"adjacency_list", "handedness"} {
		if !strings.Contains(out, want) {
			t.Errorf("mmCIF output missing %q section:\n%s", want, out)
		}
	}
}

func TestWriteGraphviz(t *testing.T) {
	d := buildParallelHairpin(t)
	var buf strings.Builder
	if err := WriteGraphviz(&buf, d); err != nil {
		t.Fatalf("WriteGraphviz: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph sheettopo {") {
		t.Errorf("expected digraph header, got: %s", out)
	}
	if !strings.Contains(out, "Parallel") {
		t.Errorf("expected a Parallel edge label, got: %s", out)
	}
}
