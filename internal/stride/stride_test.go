package stride

import (
	"fmt"
	"strings"
	"testing"
)

// locLine builds a LOC record whose type keyword starts at the exact
// 0-indexed column 21 Read consults, followed by residue names/numbers
// and chain letters that firstAndLastResnum will scan for integers.
func locLine(kind string, init, end int) string {
	prefix := []byte(strings.Repeat(" ", 21))
	copy(prefix[0:3], "LOC")
	return string(prefix) + fmt.Sprintf("%s  LEU %5d A      ALA %5d A", kind, init, end)
}

// dnrLine builds a DNR record with donor/acceptor residue numbers placed
// at the exact 0-indexed columns [10,13] and [30,33] Read consults.
func dnrLine(donor, acceptor int) string {
	line := []byte(strings.Repeat(" ", 40))
	copy(line[0:3], "DNR")
	copy(line[10:14], []byte(fmt.Sprintf("%4d", donor)))
	copy(line[30:34], []byte(fmt.Sprintf("%4d", acceptor)))
	return string(line)
}

func TestRead_ParsesLOCAndDNR(t *testing.T) {
	text := strings.Join([]string{
		locLine("AlphaHelix", 8, 16),
		locLine("Strand", 1, 5),
		dnrLine(1, 5),
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
		t.Errorf("helix LOC mismatch: %+v", res.SSEs[0])
	}
	if res.SSEs[1].Kind != 'E' || res.SSEs[1].Init != 1 || res.SSEs[1].End != 5 {
		t.Errorf("strand LOC mismatch: %+v", res.SSEs[1])
	}
	if len(res.Bonds) != 1 {
		t.Fatalf("want 1 DNR bond, got %d: %+v", len(res.Bonds), res.Bonds)
	}
	if res.Bonds[0].Donor != 1 || res.Bonds[0].Acceptor != 5 {
		t.Errorf("DNR bond mismatch: %+v", res.Bonds[0])
	}
}
