// Package model defines the data structures exchanged between the sender,
// the relay and the receiver.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is returned by ParseMethod for names outside the method set.
var ErrUnknownMethod = errors.New("unknown detection method")

// Method selects the error-detection code. Its value is the wire token.
type Method string

const (
	// MethodParity is a single even-parity bit over the whole message.
	MethodParity Method = "PARITY"
	// MethodParity2D is row/column parity over an 8-row bit matrix.
	MethodParity2D Method = "PARITY2D"
	// MethodCRC16 is a bit-serial CRC with polynomial 0x8005.
	MethodCRC16 Method = "CRC16"
	// MethodHamming is a bit count over Hamming(7,4) codewords.
	MethodHamming Method = "HAMMING"
	// MethodChecksum is the 16-bit Internet checksum.
	MethodChecksum Method = "CHECKSUM"
)

// Methods returns every detection method in menu order.
func Methods() []Method {
	return []Method{MethodParity, MethodParity2D, MethodCRC16, MethodHamming, MethodChecksum}
}

// Token returns the wire token for the method.
func (m Method) Token() string {
	return string(m)
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case MethodParity, MethodParity2D, MethodCRC16, MethodHamming, MethodChecksum:
		return true
	default:
		return false
	}
}

// Label returns a human readable name used in menus and tables.
func (m Method) Label() string {
	switch m {
	case MethodParity:
		return "Parity Bit"
	case MethodParity2D:
		return "2D Parity"
	case MethodCRC16:
		return "CRC-16"
	case MethodHamming:
		return "Hamming Code"
	case MethodChecksum:
		return "Internet Checksum"
	default:
		return string(m)
	}
}

// TokenToMethod maps a wire token to a Method.
//
// Unknown tokens fall back to MethodParity. This is the receive-path policy:
// a frame is always checked with some method rather than rejected. Callers
// that need to know whether the fallback happened should check Valid on the
// raw token first.
func TokenToMethod(token string) Method {
	if m := Method(token); m.Valid() {
		return m
	}

	return MethodParity
}

// ParseMethod is the strict counterpart of TokenToMethod used for user input.
// Matching is case-insensitive and accepts "2d" style aliases for PARITY2D.
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch normalized {
	case "2DPARITY", "PARITY2D":
		return MethodParity2D, nil
	}

	if m := Method(normalized); m.Valid() {
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// MethodFromChoice maps a 1-based menu choice to a method.
func MethodFromChoice(choice int) (Method, bool) {
	methods := Methods()
	if choice < 1 || choice > len(methods) {
		return MethodParity, false
	}

	return methods[choice-1], true
}
