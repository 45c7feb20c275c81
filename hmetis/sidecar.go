package hmetis

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hyperflowcutter/whfc/hypergraph"
)

// Sidecar is the parsed contents of a "<hgfile>.whfc" file (spec §6): the
// two block weight bounds, the upper flow bound, and the two 0-based
// terminal node ids.
type Sidecar struct {
	MaxBlockWeight [2]int64
	UpperFlowBound int64
	S, T           hypergraph.NodeID
}

// ReadSidecar parses a ".whfc" sidecar file.
func ReadSidecar(path string) (Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sidecar{}, fmt.Errorf("hmetis: %w", err)
	}
	return ParseSidecar(string(data))
}

// ParseSidecar parses a ".whfc" sidecar's single line of five integers:
// maxBlockWeight0 maxBlockWeight1 upperFlowBound s t.
func ParseSidecar(contents string) (Sidecar, error) {
	fields := strings.Fields(contents)
	if len(fields) != 5 {
		return Sidecar{}, fmt.Errorf("%w: want 5 integers, got %d", ErrMalformedSidecar, len(fields))
	}
	vals := make([]int64, 5)
	for i, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Sidecar{}, fmt.Errorf("%w: %v", ErrMalformedSidecar, err)
		}
		vals[i] = v
	}
	return Sidecar{
		MaxBlockWeight: [2]int64{vals[0], vals[1]},
		UpperFlowBound: vals[2],
		S:              hypergraph.NodeID(vals[3]),
		T:              hypergraph.NodeID(vals[4]),
	}, nil
}

// ValidateAgainst checks s and t against hg's node range.
func (sc Sidecar) ValidateAgainst(hg *hypergraph.Hypergraph) error {
	n := hg.NumNodes()
	if int(sc.S) < 0 || int(sc.S) >= n || int(sc.T) < 0 || int(sc.T) >= n {
		return fmt.Errorf("%w: s=%d t=%d, graph has %d nodes", ErrTerminalOutOfRange, sc.S, sc.T, n)
	}
	return nil
}

// WriteSidecar writes sc to path.
func WriteSidecar(path string, sc Sidecar) error {
	line := fmt.Sprintf("%d %d %d %d %d\n", sc.MaxBlockWeight[0], sc.MaxBlockWeight[1], sc.UpperFlowBound, sc.S, sc.T)
	return os.WriteFile(path, []byte(line), 0o644)
}

// ReadRNGSidecars loads the raw ".distribution" and ".generator" sidecar
// bytes alongside hgfile, if both are present. A caller unmarshals them via
// rng.UniformInt.UnmarshalBinary / rng.Source.UnmarshalBinary. Either file
// missing yields ok=false rather than an error: a run with no prior sidecar
// just seeds a fresh stream instead of replaying one.
func ReadRNGSidecars(hgfile string) (distribution, generator []byte, ok bool, err error) {
	distData, errDist := os.ReadFile(hgfile + ".distribution")
	genData, errGen := os.ReadFile(hgfile + ".generator")
	if errDist != nil || errGen != nil {
		return nil, nil, false, nil
	}
	return distData, genData, true, nil
}

// WriteRNGSidecars writes raw RNG sidecar bytes (produced by
// rng.UniformInt.MarshalBinary / rng.Source.MarshalBinary) alongside
// hgfile.
func WriteRNGSidecars(hgfile string, distribution, generator []byte) error {
	if err := os.WriteFile(hgfile+".distribution", distribution, 0o644); err != nil {
		return fmt.Errorf("hmetis: %w", err)
	}
	if err := os.WriteFile(hgfile+".generator", generator, 0o644); err != nil {
		return fmt.Errorf("hmetis: %w", err)
	}
	return nil
}
