// Package bitvote implements a best-of-seven majority-vote byte decoder.
//
// Data is transmitted in 8-byte groups. Bytes 1-7 of a group carry seven
// redundant copies of one logical byte; byte 0 is reserved by the
// surrounding protocol and never votes. Each bit of the decoded byte is
// the majority (4 or more of 7) of that bit position across the seven
// copies, so up to three corrupted copies per bit column are tolerated.
//
// Basic usage:
//
//	// Decode a stream of 8-byte groups
//	decoded, err := bitvote.DecodeAll(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode a single group
//	b := bitvote.DecodeGroup(group)
package bitvote
