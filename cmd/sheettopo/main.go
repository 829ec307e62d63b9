// Command sheettopo is the pipeline coordinator described in §6: it reads
// a PDB file (and optionally a STRIDE stream), builds the SSE/hbond model,
// runs the strict-zone engine, sheet assembler, attribute cache and
// handedness filter in sequence (§5's strict C3->C4->C7->C8->C9 order),
// and prints the resulting record stream. The CLI surface itself -- flag
// plumbing, file I/O, table/graphviz formatting -- is explicitly out of
// THE CORE's scope (§1); this file is the thin collaborator that wires
// the core packages together, in the same flag+fatalf style every
// benchaid cmd/ tool uses.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"

	"sheettopo/internal/attr"
	"sheettopo/internal/cliutil"
	"sheettopo/internal/geom"
	"sheettopo/internal/handed"
	"sheettopo/internal/hbond"
	"sheettopo/internal/pdbio"
	"sheettopo/internal/report"
	"sheettopo/internal/sheet"
	"sheettopo/internal/sse"
	"sheettopo/internal/stride"
	"sheettopo/internal/substrand"
	"sheettopo/internal/zone"
)

func main() {
	var (
		extractN        = flag.Int("e", 0, "extract adjacent sub-strand chains of this length and exit")
		graphvizPath    = flag.String("g", "", "write graphviz dot output to PATH (- for stdout)")
		usePDBHeaders   = flag.Bool("n", false, "use PDB HELIX/SHEET headers instead of STRIDE LOC records")
		outPath         = flag.String("o", "", "redirect text output to FILE instead of stdout")
		tableStyle      = flag.Int("t", 0, "0: PDB-ish table, 1: mmCIF-ish table")
		runStride       = flag.Bool("w", false, "invoke the stride binary on PDB_FILE to produce STRIDE_FILE")
		maxMidResidues  = flag.Int("max-mid-residues", handed.DefaultMaxMidResidues, "reject handedness candidates with more intervening residues than this")
		maxMidStrands   = flag.Int("max-mid-strands", handed.DefaultMaxMidStrands, "reject handedness candidates with more same-sheet intervening strands than this")
		cutoffLeftScore = flag.Float64("cutoff-left-score", handed.DefaultCutoffLeftScore, "left_score threshold for a left-handed verdict")
		minSideDist     = flag.Float64("min-side-dist", handed.DefaultMinSideDist, "minimum signed distance from a side plane to count an atom")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		cliutil.Fatalf(1, "usage: sheettopo PDB_FILE [STRIDE_FILE]")
	}
	pdbPath := args[0]
	var stridePath string
	if len(args) > 1 {
		stridePath = args[1]
	}

	ctx := cliutil.NewCtx()

	pdbFile, err := os.Open(pdbPath)
	if err != nil {
		cliutil.Fatalf(1, "sheettopo: %v", err)
	}
	defer pdbFile.Close()
	pdbRes, err := pdbio.Read(pdbFile)
	if err != nil {
		cliutil.Fatalf(2, "sheettopo: reading %s: %v", pdbPath, err)
	}

	if *runStride && stridePath == "" {
		stridePath = pdbPath + ".stride"
		out, err := os.Create(stridePath)
		if err != nil {
			cliutil.Fatalf(2, "sheettopo: %v", err)
		}
		cmd := exec.Command("stride", pdbPath)
		cmd.Stdout = out
		if err := cmd.Run(); err != nil {
			out.Close()
			cliutil.Fatalf(1, "sheettopo: stride invocation failed: %v", err)
		}
		out.Close()
	}

	var strideRes *stride.Result
	if stridePath != "" {
		sf, err := os.Open(stridePath)
		if err != nil {
			cliutil.Fatalf(1, "sheettopo: %v", err)
		}
		strideRes, err = stride.Read(sf)
		sf.Close()
		if err != nil {
			cliutil.Fatalf(2, "sheettopo: reading %s: %v", stridePath, err)
		}
	}

	headers := pdbRes.SSEs
	if !*usePDBHeaders && strideRes != nil {
		headers = strideRes.SSEs
	}
	if len(headers) == 0 {
		cliutil.Fatalf(2, "sheettopo: no SSE headers found")
	}

	var bonds []hbond.Bond
	if strideRes != nil {
		bonds = strideRes.Bonds
	}
	if len(bonds) == 0 {
		cliutil.Fatalf(2, "sheettopo: no hydrogen bonds available (need a STRIDE file)")
	}

	sseList, err := sse.FromRaw(headers, pdbRes.Atoms)
	if err != nil {
		cliutil.Fatalf(2, "sheettopo: %v", err)
	}
	for i := range sseList {
		if !sseList[i].AllReal() {
			ctx.Warn("SSE %d [%d-%d] has a missing residue; representative atoms disabled", sseList[i].ID, sseList[i].Init, sseList[i].End)
		}
	}
	col := sse.NewCollection(sseList)

	zoneRes, err := zone.Build(col, bonds)
	if err != nil {
		cliutil.Fatalf(2, "sheettopo: %v", err)
	}

	sheets := sheet.Assemble(zoneRes.Range, zoneRes.Edges)
	for _, s := range sheets {
		sheet.PruneUndirectedBranches(s, zoneRes.Sides, zoneRes.Edges)
	}
	sheetOf := make(map[substrand.SubStrand]int, len(zoneRes.Range.All()))
	for i, s := range sheets {
		for _, m := range s.Members {
			sheetOf[m] = i
		}
	}

	cache := attr.Build(zoneRes.Range.All(), zoneRes.Edges)

	if *extractN > 0 {
		chains := sheet.ExtractChains(zoneRes.Range.All(), zoneRes.Edges, *extractN)
		printChains(chains)
		return
	}

	allAtoms := make(map[int]geom.Point, len(pdbRes.Atoms))
	for _, a := range pdbRes.Atoms {
		allAtoms[a.ResNum] = a.XYZ
	}

	cfg := handed.Config{
		MaxMidResidues:  *maxMidResidues,
		MaxMidStrands:   *maxMidStrands,
		CutoffLeftScore: *cutoffLeftScore,
		MinSideDist:     *minSideDist,
	}
	cands := handed.BuildCandidates(col, zoneRes.Range, sheetOf, allAtoms)
	// No CLI surface exposes per-strand virtual reversal (§6 lists no such
	// flag); every candidate is evaluated at its base orientation.
	results := handed.EvaluateAll(col, zoneRes.Range, cands, cache, nil, cfg)
	var handedRecords []report.HandedRecord
	for i, r := range results {
		if r.Success {
			handedRecords = append(handedRecords, report.HandedRecord{SS0: cands[i].SS0, SS1: cands[i].SS1, Result: r})
		}
	}

	data := &report.Data{
		SSEs:     col,
		Range:    zoneRes.Range,
		Sheets:   sheets,
		SheetOf:  sheetOf,
		Edges:    zoneRes.Edges,
		Cache:    cache,
		Residues: residuePairRecords(col, zoneRes.Infos),
		Handed:   handedRecords,
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			cliutil.Fatalf(2, "sheettopo: %v", err)
		}
		defer f.Close()
		out = f
	}

	style := report.PDBStyle
	if *tableStyle == 1 {
		style = report.MMCIFStyle
	}
	if err := report.WriteText(out, style, data); err != nil {
		cliutil.Fatalf(2, "sheettopo: writing output: %v", err)
	}

	if *graphvizPath != "" {
		gout := out
		if *graphvizPath != "-" {
			f, err := os.Create(*graphvizPath)
			if err != nil {
				cliutil.Fatalf(2, "sheettopo: %v", err)
			}
			defer f.Close()
			gout = f
		}
		if err := report.WriteGraphviz(gout, data); err != nil {
			cliutil.Fatalf(2, "sheettopo: writing graphviz output: %v", err)
		}
	}
}

func printChains(chains []sheet.Chain) {
	for _, c := range chains {
		for i, ss := range c.Members {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%d.%d", ss.Strand, ss.ID)
		}
		fmt.Println()
	}
}

// residuePairRecords flattens the strict-zone engine's per-residue bridge
// pointers into one RESIDUE_PAIR row per distinct bridge, skipping the
// duplicate row a bridge's second endpoint would otherwise produce.
func residuePairRecords(col *sse.Collection, infos map[zone.ZoneResidue]*zone.Info) []report.ResiduePairRecord {
	var out []report.ResiduePairRecord
	seen := make(map[[2]int]bool)
	for zr, info := range infos {
		if !info.Colored {
			continue
		}
		for slot := 0; slot < 2; slot++ {
			if !info.AdjSet[slot] {
				continue
			}
			r0, r1 := zr.ResNum, info.AdjRes[slot].ResNum
			key := [2]int{r0, r1}
			revKey := [2]int{r1, r0}
			if seen[key] || seen[revKey] {
				continue
			}
			seen[key] = true
			kind := info.BridgeType[slot]
			out = append(out, report.ResiduePairRecord{
				R0:   r0,
				R1:   r1,
				Dir:  bridgeDirection(kind),
				Kind: kind,
				Face: info.Side.String(),
			})
		}
	}
	return out
}

func bridgeDirection(k zone.BridgeKind) zone.Direction {
	switch k {
	case zone.ParallelHbonds, zone.ParallelNoHbonds:
		return zone.Parallel
	default:
		return zone.AntiParallel
	}
}
