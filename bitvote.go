package bitvote

import (
	"errors"
)

// Version is the current version of the Go implementation
const Version = "0.1.0"

const (
	// GroupSize is the number of bytes in one encoded group.
	GroupSize = 8

	// numVoters is the number of bytes in a group that vote (indices
	// 1 through 7; index 0 is reserved and never consulted).
	numVoters = 7

	// threshold is the minimum vote count for a decoded '1' bit.
	// 7 is odd, so a tie cannot occur.
	threshold = 4
)

var (
	// ErrInvalidLength is returned when an input buffer is shorter than
	// one group, or not a whole number of groups.
	ErrInvalidLength = errors.New("invalid input length")
)
