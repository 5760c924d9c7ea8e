// Package codec computes and verifies error-detection control information.
//
// Every function here is a pure function of its input. Results are printable
// strings so they can travel in the CONTROL field of a frame unchanged.
package codec

import (
	"fmt"

	m "github.com/mouse-blink/datacom/internal/model"
)

// Compute returns the control information for data under method.
// Methods outside the known set are computed as Parity, matching
// model.TokenToMethod.
func Compute(data []byte, method m.Method) string {
	switch method {
	case m.MethodParity:
		return Parity(data)
	case m.MethodParity2D:
		return Parity2D(data)
	case m.MethodCRC16:
		return CRC16(data)
	case m.MethodHamming:
		return Hamming(data)
	case m.MethodChecksum:
		return Checksum(data)
	default:
		return Parity(data)
	}
}

// Verify recomputes the control information for data and compares it with
// control for exact equality.
func Verify(data []byte, method m.Method, control string) bool {
	return Compute(data, method) == control
}

func hex16(v uint16) string {
	return fmt.Sprintf("%04X", v)
}
