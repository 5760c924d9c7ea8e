package codec

const (
	crc16Poly uint16 = 0x8005
	crc16Init uint16 = 0xFFFF
)

// CRC16 returns the 4-digit upper-case hex CRC of data: polynomial 0x8005,
// initial register 0xFFFF, MSB first, no reflection and no final XOR.
func CRC16(data []byte) string {
	return hex16(crc16(data))
}

func crc16(data []byte) uint16 {
	crc := crc16Init

	for _, b := range data {
		crc ^= uint16(b) << 8

		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crc16Poly
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
