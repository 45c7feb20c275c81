package rng

import (
	"encoding/binary"
	"fmt"
)

// UniformInt is a uniform distribution over [Low, High], serializable as
// the ".distribution" sidecar (spec §6) so a replay can recreate the exact
// sampling range the original run used without re-deriving it from the
// hypergraph.
type UniformInt struct {
	Low, High int64
}

// Sample draws a value in [Low, High] from s. Panics if High < Low.
func (d UniformInt) Sample(s *Source) int64 {
	if d.High < d.Low {
		panic("rng: UniformInt has High < Low")
	}
	span := d.High - d.Low + 1
	return d.Low + int64(s.Next()%uint64(span))
}

// MarshalBinary serializes the distribution bounds as two big-endian int64s.
func (d UniformInt) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[0:8], uint64(d.Low))
	binary.BigEndian.PutUint64(buf[8:16], uint64(d.High))
	return buf, nil
}

// UnmarshalBinary restores distribution bounds from a ".distribution"
// sidecar.
func (d *UniformInt) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("rng: distribution sidecar must be 16 bytes, got %d", len(data))
	}
	d.Low = int64(binary.BigEndian.Uint64(data[0:8]))
	d.High = int64(binary.BigEndian.Uint64(data[8:16]))
	return nil
}
