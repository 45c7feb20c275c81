// Package hmetis reads and writes the bit-exact hMETIS hypergraph file
// format and its sidecars (spec §6): the ".hgr" graph file itself, the
// ".whfc" run-parameter sidecar, and the ".distribution"/".generator" RNG
// state sidecars used for deterministic replays.
//
// Apart from the logging package's optional rotated log file, this is the
// one package in the module that touches the filesystem; every other
// package operates purely on in-memory types.
package hmetis
