package codec

// Checksum returns the 16-bit Internet checksum of data as 4-digit upper-case
// hex. Bytes are summed as big-endian words; an odd trailing byte is the high
// byte of a final word.
func Checksum(data []byte) string {
	return hex16(^onesComplementSum(data))
}

// onesComplementSum folds the word sum of data with end-around carry.
func onesComplementSum(data []byte) uint16 {
	var sum uint32

	for i := 0; i < len(data); i += 2 {
		word := uint32(data[i]) << 8
		if i+1 < len(data) {
			word |= uint32(data[i+1])
		}

		sum += word
	}

	for sum>>16 != 0 {
		sum = sum&0xFFFF + sum>>16
	}

	return uint16(sum)
}
