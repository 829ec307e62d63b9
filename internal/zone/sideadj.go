package zone

import "sheettopo/internal/substrand"

// SideAdjacency is the auxiliary side-keyed adjacency described in §4.3: a
// separate index from the main directed one, built from the same bridge
// traversal but keyed by slot (non-hbonded/hbonded) rather than by
// direction, used later to prune dangling branches off an undirected
// sheet's cycles while leaving the cycle itself untouched.
type SideAdjacency struct {
	neighbor map[substrand.SubStrand][2]*substrand.SubStrand
}

func newSideAdjacency() *SideAdjacency {
	return &SideAdjacency{neighbor: make(map[substrand.SubStrand][2]*substrand.SubStrand)}
}

// Get returns the neighbour reached through ss's given slot, if any.
func (a *SideAdjacency) Get(ss substrand.SubStrand, slot int) (substrand.SubStrand, bool) {
	nb := a.neighbor[ss][slot]
	if nb == nil {
		return substrand.SubStrand{}, false
	}
	return *nb, true
}

// Remove severs ss's registration on the given slot.
func (a *SideAdjacency) Remove(ss substrand.SubStrand, slot int) {
	pair := a.neighbor[ss]
	pair[slot] = nil
	a.neighbor[ss] = pair
}

func (a *SideAdjacency) set(ss substrand.SubStrand, slot int, nb substrand.SubStrand) {
	pair := a.neighbor[ss]
	n := nb
	pair[slot] = &n
	a.neighbor[ss] = pair
}

// buildSideAdjacency remaps the BFS's provisional side-edge records onto
// final sub-strand handles.
func buildSideAdjacency(raw []sideEdge, remap map[substrand.SubStrand]substrand.SubStrand) *SideAdjacency {
	sa := newSideAdjacency()
	for _, e := range raw {
		from, ok1 := remap[e.From]
		to, ok2 := remap[e.To]
		if !ok1 || !ok2 || from == to {
			continue
		}
		sa.set(from, e.Slot, to)
	}
	return sa
}
