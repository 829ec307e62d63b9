package cycle

import "testing"

func TestFindAll_Triangle(t *testing.T) {
	nodes := []int{0, 1, 2}
	edges := []Edge{{0, 1}, {1, 2}, {2, 0}}
	got := FindAll(nodes, edges)
	if len(got) != 1 {
		t.Fatalf("want 1 cycle, got %d: %v", len(got), got)
	}
	if len(got[0]) != 3 {
		t.Errorf("want length-3 cycle, got %v", got[0])
	}
}

func TestFindAll_NoCycle(t *testing.T) {
	nodes := []int{0, 1, 2}
	edges := []Edge{{0, 1}, {1, 2}}
	got := FindAll(nodes, edges)
	if len(got) != 0 {
		t.Errorf("want no cycles, got %v", got)
	}
}

func TestFindAll_Square(t *testing.T) {
	nodes := []int{0, 1, 2, 3}
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	got := FindAll(nodes, edges)
	if len(got) != 1 || len(got[0]) != 4 {
		t.Fatalf("want 1 length-4 cycle, got %v", got)
	}
}

func TestFindAll_ReversalDedup(t *testing.T) {
	// Both directions of the triangle are present (as a fallback component
	// would produce); a cycle and its reverse collapse to one entry.
	nodes := []int{0, 1, 2}
	edges := []Edge{{0, 1}, {1, 2}, {2, 0}, {0, 2}, {2, 1}, {1, 0}}
	got := FindAll(nodes, edges)
	if len(got) != 1 {
		t.Fatalf("want 1 cycle after reversal dedup, got %d: %v", len(got), got)
	}
}
