package codec

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/mouse-blink/datacom/internal/domain/bits"
	m "github.com/mouse-blink/datacom/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_GoldenValues(t *testing.T) {
	tests := []struct {
		data   string
		method m.Method
		want   string
	}{
		{"", m.MethodParity, "0"},
		{"A", m.MethodParity, "0"},
		{"TEST", m.MethodParity, "1"},
		{"", m.MethodParity2D, "0|0"},
		{"A", m.MethodParity2D, "41|0"},
		{"HELLO", m.MethodParity2D, "42|0F"},
		{"TEST", m.MethodParity2D, "16|D"},
		{"Hello, World!", m.MethodParity2D, "2D|00E2"},
		{"", m.MethodCRC16, "FFFF"},
		{"A", m.MethodCRC16, "FC84"},
		{"HELLO", m.MethodCRC16, "5189"},
		{"TEST", m.MethodCRC16, "7E85"},
		{"Hello, World!", m.MethodCRC16, "D787"},
		{"", m.MethodHamming, "0000"},
		{"A", m.MethodHamming, "0007"},
		{"HELLO", m.MethodHamming, "0024"},
		{"Hello, World!", m.MethodHamming, "0061"},
		{"", m.MethodChecksum, "FFFF"},
		{"A", m.MethodChecksum, "BEFF"},
		{"HELLO", m.MethodChecksum, "1C6E"},
		{"TEST", m.MethodChecksum, "5866"},
		{"Hello, World!", m.MethodChecksum, "BED3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.method)+"/"+strconv.Quote(tt.data), func(t *testing.T) {
			assert.Equal(t, tt.want, Compute([]byte(tt.data), tt.method))
		})
	}
}

func TestCompute_HighBytes(t *testing.T) {
	data := []byte{0xFF, 0x00, 0x80}

	assert.Equal(t, "1", Compute(data, m.MethodParity))
	assert.Equal(t, "7F|1", Compute(data, m.MethodParity2D))
	assert.Equal(t, "010C", Compute(data, m.MethodCRC16))
	assert.Equal(t, "0011", Compute(data, m.MethodHamming))
	assert.Equal(t, "80FE", Compute(data, m.MethodChecksum))
}

func TestCompute_UnknownMethodUsesParity(t *testing.T) {
	data := []byte("TEST")
	assert.Equal(t, Parity(data), Compute(data, m.Method("MD5")))
}

func TestVerify(t *testing.T) {
	data := []byte("TEST")

	for _, method := range m.Methods() {
		control := Compute(data, method)
		assert.True(t, Verify(data, method, control), method)
		assert.False(t, Verify(data, method, control+"X"), method)
	}
}

func TestParity_MatchesOneCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		data := randomBytes(rng, rng.IntN(32))
		even := bits.FromBytes(data).Ones()%2 == 0

		assert.Equal(t, even, Parity(data) == "0")
	}
}

func TestParity_SingleFlipAlwaysToggles(t *testing.T) {
	data := []byte("TEST")
	seq := bits.FromBytes(data)
	want := Parity(data)

	for i := range seq.Len() {
		assert.NotEqual(t, want, Parity(seq.Flip(i).Bytes()), "bit %d", i)
	}
}

func TestParity_MissesDoubleFlip(t *testing.T) {
	data := []byte("TEST")
	flipped := bits.FromBytes(data).Flip(0).Flip(9).Bytes()

	assert.Equal(t, Parity(data), Parity(flipped))
}

func TestParityWith_Odd(t *testing.T) {
	assert.Equal(t, "0", ParityWith([]byte("TEST"), false))
	assert.Equal(t, "1", ParityWith([]byte("A"), false))
}

func TestParity2D_LocatesSingleFlip(t *testing.T) {
	data := []byte("HELLO")
	seq := bits.FromBytes(data)
	want := Parity2D(data)

	for i := range seq.Len() {
		got := Parity2D(seq.Flip(i).Bytes())
		require.NotEqual(t, want, got, "bit %d", i)
	}
}

func TestParity2D_CustomRows(t *testing.T) {
	// 4 rows over one byte: two columns, rows pair up bit i and i+4.
	assert.Equal(t, "0|0", parity2D([]byte{0xFF}, 4))
	assert.Equal(t, "F|0", parity2D([]byte{0xF0}, 4))
}

func TestCRC16_Deterministic(t *testing.T) {
	data := []byte("HELLO")
	assert.Equal(t, CRC16(data), CRC16(data))
	assert.Len(t, CRC16(data), 4)
}

func TestCRC16_SingleBitFlips(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	data := randomBytes(rng, 32)
	seq := bits.FromBytes(data)
	want := CRC16(data)

	changed := 0

	for i := range 256 {
		if CRC16(seq.Flip(i).Bytes()) != want {
			changed++
		}
	}

	assert.GreaterOrEqual(t, changed, 250)
}

func TestChecksum_FoldsToAllOnes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for range 100 {
		data := randomBytes(rng, rng.IntN(64))
		control, err := strconv.ParseUint(Checksum(data), 16, 16)
		require.NoError(t, err)

		sum := uint32(onesComplementSum(data)) + uint32(control)
		for sum>>16 != 0 {
			sum = sum&0xFFFF + sum>>16
		}

		assert.Equal(t, uint32(0xFFFF), sum)
	}
}

func TestChecksum_WordOrder(t *testing.T) {
	even := []byte("ABCD")
	swappedWords := []byte("CDAB")
	assert.Equal(t, Checksum(even), Checksum(swappedWords))

	odd := []byte("ABC")
	assert.NotEqual(t, Checksum(odd), Checksum([]byte("CAB")))
}

func TestHamming_CodewordLayout(t *testing.T) {
	cw := hammingCodeword(bits.Bits("1011"))
	// d0=1 d1=0 d2=1 d3=1 -> p1=0 p2=1 p4=0
	assert.Equal(t, [7]bool{false, true, true, false, false, true, true}, cw)
}

func TestHamming_OnesPerBlock(t *testing.T) {
	assert.Equal(t, 7, hammingOnes([]byte{0x0F}))
	assert.Equal(t, 14, hammingOnes([]byte{0xFF}))
}

func randomBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.IntN(256))
	}

	return out
}
