package injector

import "github.com/mouse-blink/datacom/internal/domain/bits"

func (in *Injector) bitFlip(data []byte) []byte {
	if len(data) == 0 {
		return clone(data)
	}

	seq := bits.FromBytes(data)

	return seq.Flip(in.rng.IntN(seq.Len())).Bytes()
}

func (in *Injector) charSubstitution(data []byte) []byte {
	out := clone(data)
	if len(out) == 0 {
		return out
	}

	pos := in.rng.IntN(len(out))
	out[pos] = in.printable()

	return out
}

func (in *Injector) charDeletion(data []byte) []byte {
	if len(data) == 0 {
		return clone(data)
	}

	pos := in.rng.IntN(len(data))

	out := make([]byte, 0, len(data)-1)
	out = append(out, data[:pos]...)
	out = append(out, data[pos+1:]...)

	return out
}

func (in *Injector) charInsertion(data []byte) []byte {
	if len(data) == 0 {
		return []byte{in.printable()}
	}

	pos := in.between(0, len(data))
	c := in.printable()

	out := make([]byte, 0, len(data)+1)
	out = append(out, data[:pos]...)
	out = append(out, c)
	out = append(out, data[pos:]...)

	return out
}

func (in *Injector) charSwap(data []byte) []byte {
	out := clone(data)
	if len(out) < 2 {
		return out
	}

	pos := in.between(0, len(out)-2)
	out[pos], out[pos+1] = out[pos+1], out[pos]

	return out
}

// multipleBitFlips flips 2 to 5 bits at independent positions. Positions
// may repeat, so the net number of flipped bits can be lower.
func (in *Injector) multipleBitFlips(data []byte) []byte {
	if len(data) == 0 {
		return clone(data)
	}

	seq := bits.FromBytes(data)
	flips := in.between(2, 5)

	for range flips {
		seq = seq.Flip(in.rng.IntN(seq.Len()))
	}

	return seq.Bytes()
}

// burstError overwrites a run of 3 to 8 bytes with printable characters.
// Inputs shorter than three bytes are overwritten entirely.
func (in *Injector) burstError(data []byte) []byte {
	out := clone(data)
	if len(out) == 0 {
		return out
	}

	size := len(out)
	if size >= 3 {
		size = in.between(3, min(8, len(out)))
	}

	start := in.between(0, max(0, len(out)-3))

	for i := start; i < start+size && i < len(out); i++ {
		out[i] = in.printable()
	}

	return out
}
