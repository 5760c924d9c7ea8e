package codec

import (
	"strings"

	"github.com/mouse-blink/datacom/internal/domain/bits"
)

const parity2DRows = 8

// Parity2D lays the bits of data into an 8-row matrix column by column and
// returns "<row parity>|<column parity>", each parity vector packed into hex.
func Parity2D(data []byte) string {
	return parity2D(data, parity2DRows)
}

func parity2D(data []byte, rows int) string {
	if len(data) == 0 {
		return "0|0"
	}

	seq := bits.FromBytes(data)
	cols := (seq.Len() + rows - 1) / rows

	rowOnes := make([]int, rows)
	colOnes := make([]int, cols)

	for i := range seq.Len() {
		if !seq.At(i) {
			continue
		}

		rowOnes[i%rows]++
		colOnes[i/rows]++
	}

	return parityHex(rowOnes) + "|" + parityHex(colOnes)
}

// parityHex turns per-line one counts into an even-parity bit string, pads it
// on the left to whole nibbles and renders it as upper-case hex.
func parityHex(ones []int) string {
	var sb strings.Builder

	if rem := len(ones) % 4; rem != 0 {
		sb.WriteString(strings.Repeat("0", 4-rem))
	}

	for _, n := range ones {
		if n%2 == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}

	padded := sb.String()

	const digits = "0123456789ABCDEF"

	out := make([]byte, 0, len(padded)/4)

	for i := 0; i < len(padded); i += 4 {
		var nibble byte

		for _, c := range padded[i : i+4] {
			nibble <<= 1
			if c == '1' {
				nibble |= 1
			}
		}

		out = append(out, digits[nibble])
	}

	return string(out)
}
