package pdbio

import (
	"fmt"
	"strings"
	"testing"
)

// helixLine builds a HELIX record with init/end residue numbers placed at
// the exact 0-indexed columns [21,24] and [33,36] Read consults.
func helixLine(init, end int) string {
	line := []byte(strings.Repeat(" ", 40))
	copy(line[0:5], "HELIX")
	copy(line[21:25], []byte(fmt.Sprintf("%4d", init)))
	copy(line[33:37], []byte(fmt.Sprintf("%4d", end)))
	return string(line)
}

func sheetLine(init, end int) string {
	line := []byte(strings.Repeat(" ", 40))
	copy(line[0:5], "SHEET")
	copy(line[22:26], []byte(fmt.Sprintf("%4d", init)))
	copy(line[33:37], []byte(fmt.Sprintf("%4d", end)))
	return string(line)
}

func atomLine(atomName string, resnum int, x, y, z float64) string {
	line := []byte(strings.Repeat(" ", 54))
	copy(line[0:4], "ATOM")
	copy(line[12:16], []byte(fmt.Sprintf("%-4s", atomName)))
	copy(line[22:26], []byte(fmt.Sprintf("%4d", resnum)))
	copy(line[30:38], []byte(fmt.Sprintf("%8.3f", x)))
	copy(line[38:46], []byte(fmt.Sprintf("%8.3f", y)))
	copy(line[46:54], []byte(fmt.Sprintf("%8.3f", z)))
	return string(line)
}

func TestRead_ParsesHeadersAndCAAtoms(t *testing.T) {
	text := strings.Join([]string{
		helixLine(8, 16),
		sheetLine(1, 5),
		atomLine("N", 1, 11.104, 13.207, 2.213),
		atomLine("CA", 1, 12.560, 13.298, 2.413),
		atomLine("CA", 5, 15.560, 14.298, 3.413),
		"",
	}, "\n")

	res, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(res.SSEs) != 2 {
		t.Fatalf("want 2 SSE headers, got %d: %+v", len(res.SSEs), res.SSEs)
	}
	if res.SSEs[0].Kind != 'H' || res.SSEs[0].Init != 8 || res.SSEs[0].End != 16 {
		t.Errorf("helix header mismatch: %+v", res.SSEs[0])
	}
	if res.SSEs[1].Kind != 'E' || res.SSEs[1].Init != 1 || res.SSEs[1].End != 5 {
		t.Errorf("sheet header mismatch: %+v", res.SSEs[1])
	}
	if len(res.Atoms) != 2 {
		t.Fatalf("want 2 CA atoms (N atom skipped), got %d: %+v", len(res.Atoms), res.Atoms)
	}
	if res.Atoms[0].ResNum != 1 {
		t.Errorf("first CA resnum = %d, want 1", res.Atoms[0].ResNum)
	}
	if res.Atoms[1].ResNum != 5 || res.Atoms[1].XYZ.X != 15.560 {
		t.Errorf("second CA atom mismatch: %+v", res.Atoms[1])
	}
}
