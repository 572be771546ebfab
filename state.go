package mt19937

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidState is returned by UnmarshalBinary for malformed checkpoints.
var ErrInvalidState = errors.New("mt19937: invalid state")

const (
	statePrefix = "mt19937:"
	stateSize   = len(statePrefix) + 4 + 4*n
)

// AppendBinary implements the encoding.BinaryAppender interface.
// The encoding is a fixed prefix, the big-endian index and the n state
// words in big-endian order.
func (g *Generator) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, statePrefix...)
	b = binary.BigEndian.AppendUint32(b, uint32(g.mti))
	for _, w := range g.mt {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	return b, nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (g *Generator) MarshalBinary() ([]byte, error) {
	return g.AppendBinary(make([]byte, 0, stateSize))
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// On error the generator is left unchanged.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) != stateSize {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidState, len(data), stateSize)
	}
	if string(data[:len(statePrefix)]) != statePrefix {
		return fmt.Errorf("%w: bad prefix", ErrInvalidState)
	}
	data = data[len(statePrefix):]

	idx := binary.BigEndian.Uint32(data)
	if idx > n {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidState, idx)
	}
	data = data[4:]

	var mt [n]uint32
	var nonzero bool
	for i := range mt {
		mt[i] = binary.BigEndian.Uint32(data[4*i:])
		nonzero = nonzero || mt[i] != 0
	}
	if !nonzero {
		return fmt.Errorf("%w: all-zero state vector", ErrInvalidState)
	}

	g.mt = mt
	g.mti = int(idx)
	return nil
}
