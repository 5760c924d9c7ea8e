// Package bits converts messages to and from their '0'/'1' text expansion.
package bits

import "strings"

// Bits is the binary expansion of a message: eight '0'/'1' characters per
// byte, most significant bit first.
type Bits string

// FromBytes expands data into its bit sequence.
func FromBytes(data []byte) Bits {
	var sb strings.Builder

	sb.Grow(len(data) * 8)

	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			if b&(1<<shift) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return Bits(sb.String())
}

// Bytes packs the sequence back into bytes. A trailing group shorter than
// eight bits is dropped.
func (b Bits) Bytes() []byte {
	out := make([]byte, 0, len(b)/8)

	for i := 0; i+8 <= len(b); i += 8 {
		var v byte

		for _, c := range b[i : i+8] {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}

		out = append(out, v)
	}

	return out
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b)
}

// At reports whether the bit at i is set.
func (b Bits) At(i int) bool {
	return b[i] == '1'
}

// Ones counts the set bits.
func (b Bits) Ones() int {
	return strings.Count(string(b), "1")
}

// Flip returns a copy of b with the bit at i inverted.
func (b Bits) Flip(i int) Bits {
	buf := []byte(b)
	if buf[i] == '0' {
		buf[i] = '1'
	} else {
		buf[i] = '0'
	}

	return Bits(buf)
}

// Pad appends '0' bits until the length is a multiple of n.
func (b Bits) Pad(n int) Bits {
	if rem := len(b) % n; rem != 0 {
		return b + Bits(strings.Repeat("0", n-rem))
	}

	return b
}
