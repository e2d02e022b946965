package bitarray

import "github.com/hupe1980/bitarray/internal/word"

// Word is the set of unsigned integer types usable as backing storage.
type Word = word.Word

// Array is a fixed-length bit array packed LSB-first into words of type W.
//
// Bit k is stored in word k/W at bit position k%W. Every access is checked
// against the logical length; bits in the unused tail of the final word are
// never observable.
//
// Array is not thread-safe; external synchronization is required for concurrent access.
type Array[W Word] struct {
	length int
	words  []W
	shift  int // log2 of the word width
	mask   int // word width - 1
	logger *Logger
}

// BitArray is a bit array backed by 32-bit words.
type BitArray = Array[uint32]

// New creates a BitArray of length bits, all cleared unless WithInitialValue(true) is given.
func New(length int, optFns ...Option) (*BitArray, error) {
	return NewArray[uint32](length, optFns...)
}

// NewArray creates an Array of length bits backed by words of type W.
func NewArray[W Word](length int, optFns ...Option) (*Array[W], error) {
	o := newOptions(optFns)

	if length < 0 {
		err := &ErrInvalidLength{Length: length}
		o.logger.LogRejected("new", err)
		return nil, err
	}

	shift := word.Log2Width[W]()

	// Zero length gets zero words rather than relying on (-1 >> shift) + 1.
	n := 0
	if length > 0 {
		n = ((length - 1) >> shift) + 1
	}

	a := &Array[W]{
		length: length,
		words:  make([]W, n),
		shift:  shift,
		mask:   word.Width[W]() - 1,
		logger: o.logger.WithLength(length),
	}

	if o.initialValue {
		a.SetAll(true)
	}

	a.logger.LogAlloc(n, a.mask+1)

	return a, nil
}

// Len returns the number of addressable bits.
func (a *Array[W]) Len() int {
	return a.length
}

// WordCount returns the number of backing words.
func (a *Array[W]) WordCount() int {
	return len(a.words)
}

// WordWidth returns the width of a backing word in bits.
func (a *Array[W]) WordWidth() int {
	return a.mask + 1
}

// Get reports whether bit key is set.
func (a *Array[W]) Get(key int) (bool, error) {
	if err := a.checkKey("get", key); err != nil {
		return false, err
	}
	return a.words[key>>a.shift]&word.Bit[W](key&a.mask) != 0, nil
}

// SetTrue sets bit key to 1.
func (a *Array[W]) SetTrue(key int) error {
	if err := a.checkKey("set true", key); err != nil {
		return err
	}
	a.words[key>>a.shift] |= word.Bit[W](key & a.mask)
	return nil
}

// SetFalse clears bit key to 0.
func (a *Array[W]) SetFalse(key int) error {
	if err := a.checkKey("set false", key); err != nil {
		return err
	}
	a.words[key>>a.shift] &^= word.Bit[W](key & a.mask)
	return nil
}

// Set sets bit key to value.
func (a *Array[W]) Set(key int, value bool) error {
	if value {
		return a.SetTrue(key)
	}
	return a.SetFalse(key)
}

// SetRangeTrue sets every bit in [from, to) to 1.
//
// If from >= to the call is a no-op, whatever the values of from and to.
func (a *Array[W]) SetRangeTrue(from, to int) error {
	if from >= to {
		return nil
	}
	if err := a.checkRange("set range true", from, to); err != nil {
		return err
	}

	first, last := from>>a.shift, (to-1)>>a.shift
	lo, hi := from&a.mask, (to-1)&a.mask

	if first == last {
		a.words[first] |= word.Span[W](lo, hi)
		return nil
	}

	a.words[first] |= word.From[W](lo)
	a.words[last] |= word.Through[W](hi)
	word.Fill(a.words[first+1:last], word.Ones[W]())

	return nil
}

// SetRangeFalse clears every bit in [from, to) to 0.
//
// If from >= to the call is a no-op, whatever the values of from and to.
func (a *Array[W]) SetRangeFalse(from, to int) error {
	if from >= to {
		return nil
	}
	if err := a.checkRange("set range false", from, to); err != nil {
		return err
	}

	first, last := from>>a.shift, (to-1)>>a.shift
	lo, hi := from&a.mask, (to-1)&a.mask

	if first == last {
		a.words[first] &^= word.Span[W](lo, hi)
		return nil
	}

	a.words[first] &^= word.From[W](lo)
	a.words[last] &^= word.Through[W](hi)
	word.Fill(a.words[first+1:last], 0)

	return nil
}

// SetRange sets every bit in [from, to) to value.
func (a *Array[W]) SetRange(from, to int, value bool) error {
	if value {
		return a.SetRangeTrue(from, to)
	}
	return a.SetRangeFalse(from, to)
}

// SetAll sets every bit to value.
func (a *Array[W]) SetAll(value bool) {
	word.Fill(a.words, word.FillValue[W](value))
}

// Count returns the number of set bits in [0, Len()).
func (a *Array[W]) Count() int {
	if len(a.words) == 0 {
		return 0
	}
	last := len(a.words) - 1
	count := word.PopcountWords(a.words[:last])
	return count + word.OnesCount(a.words[last]&a.tailMask())
}

// NextSet returns the index of the first set bit at or after from.
// The second result is false if no bit in [from, Len()) is set.
func (a *Array[W]) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= a.length {
		return 0, false
	}

	i := from >> a.shift
	w := a.words[i] &^ (word.Bit[W](from&a.mask) - 1)

	for {
		if w != 0 {
			idx := i<<a.shift + word.TrailingZeros(w)
			if idx >= a.length {
				return 0, false
			}
			return idx, true
		}
		i++
		if i >= len(a.words) {
			return 0, false
		}
		w = a.words[i]
	}
}

// tailMask covers the bits of the final word that lie below Len().
func (a *Array[W]) tailMask() W {
	return word.Through[W]((a.length - 1) & a.mask)
}

func (a *Array[W]) checkKey(op string, key int) error {
	if key < 0 || key >= a.length {
		err := &ErrIndex{Op: op, Index: key, Length: a.length}
		a.logger.LogRejected(op, err)
		return err
	}
	return nil
}

func (a *Array[W]) checkRange(op string, from, to int) error {
	if from < 0 || to > a.length {
		err := &ErrRange{Op: op, From: from, To: to, Length: a.length}
		a.logger.LogRejected(op, err)
		return err
	}
	return nil
}
