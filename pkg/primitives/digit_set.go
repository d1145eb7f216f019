package primitives

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// NumDigits is the number of distinct digits a cell can hold.
const NumDigits = 9

const fullMask DigitSet = 1<<NumDigits - 1

var (
	// ErrDigitOutOfRange reports a digit outside [1, NumDigits].
	ErrDigitOutOfRange = errors.New("digit out of range")

	// ErrConflict reports a candidate state that no completed grid can satisfy.
	ErrConflict = errors.New("conflicting digits")
)

// DigitSet efficiently represents the set of digits still possible for one
// cell. Bit i set means digit i+1 is still a candidate.
//
// It is a value type: operations return new sets and never mutate in place,
// so cloned boards share nothing.
type DigitSet uint16

// FullDigitSet returns the set containing every digit, i.e. a cell about
// which nothing is known yet.
func FullDigitSet() DigitSet {
	return fullMask
}

// SingleDigit returns the set containing exactly the given digit.
func SingleDigit(v int) (DigitSet, error) {
	if v < 1 || v > NumDigits {
		return 0, fmt.Errorf("%w: %d", ErrDigitOutOfRange, v)
	}
	return 1 << (v - 1), nil
}

// DigitSetForValue converts one raw input value into a candidate set.
// Zero denotes a blank cell and maps to the full set.
func DigitSetForValue(v int) (DigitSet, error) {
	if v == 0 {
		return FullDigitSet(), nil
	}
	return SingleDigit(v)
}

// Count returns the number of candidates in the set.
func (d DigitSet) Count() int {
	return bits.OnesCount16(uint16(d))
}

// Empty checks if the set has no candidates left.
func (d DigitSet) Empty() bool {
	return d == 0
}

// Determined checks if the set has been narrowed to exactly one digit.
func (d DigitSet) Determined() bool {
	return d != 0 && d&(d-1) == 0
}

// Value returns the digit a determined set holds. The second return is false
// unless the set holds exactly one candidate.
func (d DigitSet) Value() (int, bool) {
	if !d.Determined() {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(d)) + 1, true
}

// Contains checks if a digit is still a candidate.
func (d DigitSet) Contains(v int) bool {
	if v < 1 || v > NumDigits {
		return false
	}
	return d&(1<<(v-1)) != 0
}

// Singles returns a sequence of single-digit sets, one per candidate, in
// ascending digit order. The sequence is restartable: ranging over it again
// replays the candidates of the set as it was when Singles was called.
func (d DigitSet) Singles() iter.Seq[DigitSet] {
	return func(yield func(DigitSet) bool) {
		for rest := d; rest != 0; rest &= rest - 1 {
			if !yield(rest & -rest) {
				return
			}
		}
	}
}

// Without removes a determined peer's digit from the set. Removing a digit
// that was never a candidate is a no-op; an undetermined peer excludes
// nothing. It is a conflict for the receiver to already be fixed to the
// peer's digit.
func (d DigitSet) Without(peer DigitSet) (DigitSet, error) {
	if !peer.Determined() {
		return d, nil
	}
	if d == peer {
		v, _ := peer.Value()
		return d, fmt.Errorf("%w: %d determined twice", ErrConflict, v)
	}
	return d &^ peer, nil
}

// Restrict intersects the set with the complement of a forbidden mask,
// leaving already-determined sets untouched. The second return reports
// whether the set actually shrank. Emptying the set is a conflict.
func (d DigitSet) Restrict(forbidden DigitSet) (DigitSet, bool, error) {
	if d.Determined() {
		return d, false, nil
	}
	out := d &^ (forbidden & fullMask)
	if out == 0 {
		return d, false, fmt.Errorf("%w: no candidates remain", ErrConflict)
	}
	return out, out != d, nil
}

func (d DigitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := 1; v <= NumDigits; v++ {
		if !d.Contains(v) {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte('}')
	return sb.String()
}
