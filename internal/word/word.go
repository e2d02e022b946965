package word

import "math/bits"

// Word is the set of unsigned integer types usable as backing storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// Log2Width returns log2(Width[W]()), the shift that converts a bit index into a word index.
func Log2Width[W Word]() int {
	return bits.TrailingZeros(uint(Width[W]()))
}

// Ones returns a word with every bit set.
func Ones[W Word]() W {
	return ^W(0)
}

// FillValue returns Ones when value is true and zero otherwise.
func FillValue[W Word](value bool) W {
	if value {
		return ^W(0)
	}
	return 0
}

// Bit returns a mask with only bit pos set.
func Bit[W Word](pos int) W {
	return W(1) << uint(pos)
}

// From returns a mask covering bits [pos, Width).
func From[W Word](pos int) W {
	return ^W(0) << uint(pos)
}

// Through returns a mask covering bits [0, pos].
func Through[W Word](pos int) W {
	return ^W(0) >> uint(Width[W]()-1-pos)
}

// Span returns a mask covering bits [lo, hi]. lo must not exceed hi.
func Span[W Word](lo, hi int) W {
	return From[W](lo) & Through[W](hi)
}

// Fill overwrites every word in dst with v.
func Fill[W Word](dst []W, v W) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

// OnesCount returns the number of set bits in w.
func OnesCount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}

// PopcountWords counts all set bits across words.
func PopcountWords[W Word](words []W) int {
	count := 0
	for _, w := range words {
		if w != 0 {
			count += OnesCount(w)
		}
	}
	return count
}

// TrailingZeros returns the position of the lowest set bit in w, or Width if w is zero.
func TrailingZeros[W Word](w W) int {
	if w == 0 {
		return Width[W]()
	}
	return bits.TrailingZeros64(uint64(w))
}
