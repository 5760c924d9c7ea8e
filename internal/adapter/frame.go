// Package adapter contains the wire, network and storage adapters used by
// the domain layer.
package adapter

import (
	"bytes"
	"errors"
	"fmt"

	m "github.com/mouse-blink/datacom/internal/model"
)

// FieldSeparator splits the DATA, METHOD and CONTROL fields of a frame.
const FieldSeparator = '|'

var (
	// ErrMalformedFrame is returned when a frame has fewer than two separators.
	ErrMalformedFrame = errors.New("frame: malformed, want DATA|METHOD|CONTROL")
	// ErrSeparatorInData is returned when a payload cannot be framed unambiguously.
	ErrSeparatorInData = errors.New("frame: data contains field separator")
)

// EncodePacket renders p as DATA|METHOD|CONTROL. Data is written verbatim;
// there is no escaping.
func EncodePacket(p m.Packet) []byte {
	out := make([]byte, 0, len(p.Data)+len(p.Method)+len(p.Control)+2)
	out = append(out, p.Data...)
	out = append(out, FieldSeparator)
	out = append(out, p.Method...)
	out = append(out, FieldSeparator)
	out = append(out, p.Control...)

	return out
}

// DecodePacket splits a frame on its first two separators. Everything after
// the second separator is the control field, so control values that contain
// a separator themselves (2D parity) survive.
func DecodePacket(frame []byte) (m.Packet, error) {
	first := bytes.IndexByte(frame, FieldSeparator)
	if first < 0 {
		return m.Packet{}, fmt.Errorf("%w: no separator in %d bytes", ErrMalformedFrame, len(frame))
	}

	second := bytes.IndexByte(frame[first+1:], FieldSeparator)
	if second < 0 {
		return m.Packet{}, fmt.Errorf("%w: one separator in %d bytes", ErrMalformedFrame, len(frame))
	}

	second += first + 1

	return m.Packet{
		Data:    append([]byte{}, frame[:first]...),
		Method:  string(frame[first+1 : second]),
		Control: string(frame[second+1:]),
	}, nil
}

// ValidatePayload reports whether data can be framed without ambiguity.
func ValidatePayload(data []byte) error {
	if i := bytes.IndexByte(data, FieldSeparator); i >= 0 {
		return fmt.Errorf("%w at offset %d", ErrSeparatorInData, i)
	}

	return nil
}
