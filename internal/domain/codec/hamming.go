package codec

import (
	"fmt"

	"github.com/mouse-blink/datacom/internal/domain/bits"
)

// Hamming encodes data as Hamming(7,4) codewords and returns the number of
// set bits across all codewords as 4-digit upper-case hex.
//
// The result is a summary of the codewords, not the codewords themselves, so
// it detects fewer errors than per-block decoding would.
func Hamming(data []byte) string {
	return fmt.Sprintf("%04X", hammingOnes(data))
}

func hammingOnes(data []byte) int {
	seq := bits.FromBytes(data).Pad(4)
	total := 0

	for i := 0; i < seq.Len(); i += 4 {
		for _, set := range hammingCodeword(seq[i : i+4]) {
			if set {
				total++
			}
		}
	}

	return total
}

// hammingCodeword returns p1 p2 d0 p4 d1 d2 d3 for the 4-bit block d0..d3.
func hammingCodeword(block bits.Bits) [7]bool {
	d0, d1, d2, d3 := block.At(0), block.At(1), block.At(2), block.At(3)

	p1 := d0 != d1 != d3
	p2 := d0 != d2 != d3
	p4 := d1 != d2 != d3

	return [7]bool{p1, p2, d0, p4, d1, d2, d3}
}
