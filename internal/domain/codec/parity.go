package codec

import "github.com/mouse-blink/datacom/internal/domain/bits"

// Parity returns the even parity bit of data: "1" when the number of set
// bits is odd, "0" otherwise.
func Parity(data []byte) string {
	return ParityWith(data, true)
}

// ParityWith returns the even or odd parity bit of data.
func ParityWith(data []byte, even bool) string {
	odd := bits.FromBytes(data).Ones()%2 != 0

	if odd == even {
		return "1"
	}

	return "0"
}
