// Package hbond defines the catalogue of backbone hydrogen bonds that
// feeds the pair classifier (C3). It is intentionally tiny: the source of
// these bonds (STRIDE DNR records) is an external collaborator, but the
// bond list itself is a core input to the topology engine.
package hbond

// Bond is one backbone hydrogen bond: donor's N-H to acceptor's C=O.
type Bond struct {
	Donor    int
	Acceptor int
}
