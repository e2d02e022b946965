// Package bitarray provides a fixed-length bit array packed into machine words.
//
// A bit array stores Len() independently addressable booleans, packed
// least-significant-bit first into a slice of unsigned words. Single-bit
// access is O(1); ranged fills touch each spanned word once.
//
// # Quick Start
//
//	ba, _ := bitarray.New(100)
//	_ = ba.SetTrue(3)
//	_ = ba.SetRangeTrue(10, 70)  // bits 10..69
//	ok, _ := ba.Get(42)          // true
//
// Other word widths are available through NewArray:
//
//	ba64, _ := bitarray.NewArray[uint64](1 << 20)
//
// # Bounds
//
// Every operation is checked against the logical length. Out-of-range keys
// and ranges return an error matching ErrIndexOutOfRange; a negative length
// returns an error matching ErrInvalidArgument. A range with from >= to is a
// no-op and is never rejected.
//
// # Ranged Fills
//
// A range [from, to) is split into a partial first word, a partial last word
// and the whole words in between, which are overwritten directly:
//
//	word:   |    0    |    1    |    2    |    3    |
//	range:        [=====================)
//	        partial   whole     whole     partial
//
// # Concurrency
//
// Bit arrays are not thread-safe. Callers must synchronize concurrent access.
package bitarray
