package bitvote

import (
	"fmt"
)

// DecodeGroup decodes one 8-byte group into a single byte.
//
// For each bit position, MSB first, it counts how many of group[1..7]
// have that bit set and emits a '1' if at least 4 do. group[0] does not
// participate in the vote.
//
// The function is pure and allocation-free; it is safe to call
// concurrently.
func DecodeGroup(group [GroupSize]byte) byte {
	var output byte
	for i := 0; i < 8; i++ {
		mask := byte(1) << (7 - i)
		ones := 0
		for j := 1; j <= numVoters; j++ {
			if group[j]&mask != 0 {
				ones++
			}
		}
		output <<= 1
		if ones >= threshold {
			output |= 1
		}
	}
	return output
}

// Decode decodes the first group of buf.
//
// Only the first GroupSize bytes are read; anything past them is
// ignored, so buf may be a larger receive buffer. Returns
// ErrInvalidLength if buf holds less than one group.
func Decode(buf []byte) (byte, error) {
	if len(buf) < GroupSize {
		return 0, fmt.Errorf("decode group: %w: have %d bytes, need %d",
			ErrInvalidLength, len(buf), GroupSize)
	}
	return DecodeGroup([GroupSize]byte(buf[:GroupSize])), nil
}

// DecodeAll decodes a sequence of 8-byte groups, producing one byte per
// group.
//
// The input length must be a whole number of groups; a trailing partial
// group is rejected with ErrInvalidLength rather than silently dropped.
// Empty input decodes to an empty slice.
func DecodeAll(encoded []byte) ([]byte, error) {
	if len(encoded)%GroupSize != 0 {
		return nil, fmt.Errorf("decode stream: %w: %d bytes is not a multiple of %d",
			ErrInvalidLength, len(encoded), GroupSize)
	}
	decoded := make([]byte, 0, len(encoded)/GroupSize)
	for i := 0; i < len(encoded); i += GroupSize {
		decoded = append(decoded, DecodeGroup([GroupSize]byte(encoded[i:i+GroupSize])))
	}
	return decoded, nil
}
