package bitvote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known-answer vectors, including the flight firmware's own decoder
// self-test: three voters carrying the LSB stay below the threshold, a
// fourth pushes it over.
func TestDecodeGroupVectors(t *testing.T) {
	tests := []struct {
		name  string
		group [GroupSize]byte
		want  byte
	}{
		{
			name:  "firmware self-test, 3 votes",
			group: [GroupSize]byte{0x00, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00},
			want:  0x00,
		},
		{
			name:  "firmware self-test, 4 votes",
			group: [GroupSize]byte{0x00, 0x01, 0x01, 0x01, 0x00, 0x01, 0x00, 0x00},
			want:  0x01,
		},
		{
			name:  "high nibble carried by 4, low nibble by 3",
			group: [GroupSize]byte{0x00, 0xF0, 0xF0, 0xF0, 0xF0, 0x0F, 0x0F, 0x0F},
			want:  0xF0,
		},
		{
			name:  "alternating pattern carried by 4",
			group: [GroupSize]byte{0x00, 0xAA, 0xAA, 0xAA, 0xAA, 0x55, 0x55, 0x55},
			want:  0xAA,
		},
		{
			name:  "0x5A survives four single-bit upsets",
			group: [GroupSize]byte{0x00, 0x5A, 0x5A, 0x5A, 0x7A, 0x1A, 0x5B, 0x4A},
			want:  0x5A,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeGroup(tt.group))
		})
	}
}

func TestDecodeAllVector(t *testing.T) {
	// Two groups back to back: "OK" with byte 0 noise and scattered
	// single-vote bits that must not decode.
	encoded := []byte{
		0xFF, 'O', 'O', 'O', 'O', 'O', 'O', 'O',
		0x00, 'K', 'K', 'K', 0xCB, 'K', 'K', 'K',
	}

	decoded, err := DecodeAll(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("OK"), decoded)
}
