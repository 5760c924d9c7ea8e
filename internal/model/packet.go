package model

// Path represents a file system path.
type Path string

// Packet is one DATA|METHOD|CONTROL exchange unit.
//
// Method holds the raw token as it appeared on the wire so the receiver can
// tell a recognised method from the Parity fallback.
type Packet struct {
	Data    []byte
	Method  string
	Control string
}

// NewPacket builds a packet for a known method.
func NewPacket(data []byte, method Method, control string) Packet {
	return Packet{
		Data:    append([]byte(nil), data...),
		Method:  method.Token(),
		Control: control,
	}
}

// WithData returns a copy of p carrying data instead of p.Data.
func (p Packet) WithData(data []byte) Packet {
	p.Data = append([]byte(nil), data...)

	return p
}
