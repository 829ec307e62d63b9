// Package stride reads STRIDE secondary-structure assignment output: the
// LOC header lines used as an alternative source of SSE ranges (selected
// over PDB HELIX/SHEET headers via the CLI's --no-stride-sse toggle, §6),
// and the DNR lines that are this tool's sole source of backbone hydrogen
// bonds. Like pdbio, this is an external collaborator of the topology core
// (§1) -- it produces a plain record list and nothing more.
package stride

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"sheettopo/internal/hbond"
	"sheettopo/internal/pdbio"
)

// Result holds everything read out of a STRIDE stream.
type Result struct {
	SSEs   []pdbio.RawSSE
	Bonds  []hbond.Bond
}

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

// Read parses a STRIDE output stream.
func Read(r io.Reader) (*Result, error) {
	res := &Result{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "LOC"):
			body := ""
			if len(line) > 21 {
				body = line[21:]
			}
			body = strings.TrimSpace(body)
			var kind byte
			switch {
			case strings.HasPrefix(body, "AlphaHelix"):
				kind = 'H'
			case strings.HasPrefix(body, "Strand"):
				kind = 'E'
			default:
				continue
			}
			rest := strings.Fields(body)
			init, end, ok := firstAndLastResnum(rest)
			if ok {
				res.SSEs = append(res.SSEs, pdbio.RawSSE{Kind: kind, Init: init, End: end})
			}
		case strings.HasPrefix(line, "DNR"):
			donor, ok1 := atoiField(line, 10, 13)
			acceptor, ok2 := atoiField(line, 30, 33)
			if ok1 && ok2 {
				res.Bonds = append(res.Bonds, hbond.Bond{Donor: donor, Acceptor: acceptor})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// firstAndLastResnum pulls the two residue-number tokens out of a
// tokenized STRIDE LOC body, e.g. "AlphaHelix PRO 23 A LEU 36 A" -> 23, 36.
func firstAndLastResnum(tokens []string) (int, int, bool) {
	var nums []int
	for _, t := range tokens {
		if n, err := strconv.Atoi(t); err == nil {
			nums = append(nums, n)
		}
	}
	if len(nums) < 2 {
		return 0, 0, false
	}
	return nums[0], nums[len(nums)-1], true
}
