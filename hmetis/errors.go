package hmetis

import "errors"

// ErrMalformedHeader is returned when a graph file's first non-comment
// line is not a valid "m n [type]" header.
var ErrMalformedHeader = errors.New("hmetis: malformed header line")

// ErrMalformedEdge is returned when a hyperedge line cannot be parsed, or
// names fewer than two pins.
var ErrMalformedEdge = errors.New("hmetis: malformed hyperedge line")

// ErrMalformedWeight is returned when a node-weight line cannot be parsed.
var ErrMalformedWeight = errors.New("hmetis: malformed node weight line")

// ErrPinOutOfRange is returned when a hyperedge line names a 1-based pin id
// outside [1, n].
var ErrPinOutOfRange = errors.New("hmetis: pin id out of range")

// ErrMalformedSidecar is returned when a .whfc sidecar does not contain
// exactly five integers.
var ErrMalformedSidecar = errors.New("hmetis: malformed .whfc sidecar")

// ErrTerminalOutOfRange is returned when a .whfc sidecar's s or t falls
// outside the graph's node range.
var ErrTerminalOutOfRange = errors.New("hmetis: sidecar terminal out of range")
