package cutter

import "errors"

// ErrAlreadySettled is returned by SettleNode when v is already in S, T, or I.
var ErrAlreadySettled = errors.New("cutter: node already settled or isolated")

// ErrNotSaturated is returned by AddToCut when the precondition that e is
// saturated does not hold.
var ErrNotSaturated = errors.New("cutter: hyperedge not saturated")

// ErrCutAlreadyHasEdge is returned by AddToCut when e is already in the cut.
var ErrCutAlreadyHasEdge = errors.New("cutter: hyperedge already in cut")
