package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/datacom/internal/domain/injector"
	m "github.com/mouse-blink/datacom/internal/model"
)

type fixedCorrupter struct {
	out     []byte
	applied m.InjectionMethod
}

func (f fixedCorrupter) Corrupt(_ []byte, _ m.InjectionMethod) ([]byte, m.InjectionMethod) {
	return append([]byte{}, f.out...), f.applied
}

func TestOrchestrator_Encode(t *testing.T) {
	orch := NewOrchestrator(injector.New(1))

	packet := orch.Encode([]byte("HELLO"), m.MethodCRC16)

	assert.Equal(t, []byte("HELLO"), packet.Data)
	assert.Equal(t, "CRC16", packet.Method)
	assert.Equal(t, "5189", packet.Control)

	packet = orch.Encode([]byte("HELLO"), m.MethodParity2D)
	assert.Equal(t, "42|0F", packet.Control)
}

func TestOrchestrator_Corrupt_KeepsMethodAndControl(t *testing.T) {
	orch := NewOrchestrator(fixedCorrupter{out: []byte("HELMO"), applied: m.InjectionCharSubstitution})

	sent := orch.Encode([]byte("HELLO"), m.MethodChecksum)
	forwarded, applied := orch.Corrupt(sent, m.InjectionRandom)

	assert.Equal(t, m.InjectionCharSubstitution, applied)
	assert.Equal(t, []byte("HELMO"), forwarded.Data)
	assert.Equal(t, sent.Method, forwarded.Method)
	assert.Equal(t, sent.Control, forwarded.Control)
	assert.Equal(t, []byte("HELLO"), sent.Data)
}

func TestOrchestrator_Inspect(t *testing.T) {
	orch := NewOrchestrator(injector.New(1))

	tests := []struct {
		name     string
		packet   m.Packet
		method   m.Method
		computed string
		status   m.Status
	}{
		{
			name:     "intact crc",
			packet:   m.Packet{Data: []byte("HELLO"), Method: "CRC16", Control: "5189"},
			method:   m.MethodCRC16,
			computed: "5189",
			status:   m.StatusCorrect,
		},
		{
			name:     "corrupted checksum",
			packet:   m.Packet{Data: []byte("HELMO"), Method: "CHECKSUM", Control: "1C6E"},
			method:   m.MethodChecksum,
			computed: "1C6D",
			status:   m.StatusCorrupted,
		},
		{
			name:     "unknown token checked as parity",
			packet:   m.Packet{Data: []byte("TEST"), Method: "MD5", Control: "1"},
			method:   m.MethodParity,
			computed: "1",
			status:   m.StatusCorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := orch.Inspect(tt.packet)

			assert.NotEmpty(t, report.ID)
			assert.Equal(t, tt.method, report.Method)
			assert.Equal(t, tt.packet.Data, report.Received)
			assert.Equal(t, tt.packet.Control, report.SentControl)
			assert.Equal(t, tt.computed, report.ComputedControl)
			assert.Equal(t, tt.status, report.Status)
		})
	}
}

func TestOrchestrator_Exchange_NoInjection(t *testing.T) {
	orch := NewOrchestrator(injector.New(1))

	report, err := orch.Exchange(ExchangeArgs{
		Data:      []byte("Hello, World!"),
		Method:    m.MethodHamming,
		Injection: m.InjectionNone,
	})
	require.NoError(t, err)

	assert.Equal(t, m.InjectionNone, report.Injection)
	assert.Equal(t, "0061", report.SentControl)
	assert.Equal(t, m.StatusCorrect, report.Status)
	assert.False(t, report.Altered)
	assert.False(t, report.Missed())
}

func TestOrchestrator_Exchange_DetectsSingleBitFlip(t *testing.T) {
	orch := NewOrchestrator(injector.New(42))

	for _, method := range []m.Method{m.MethodParity, m.MethodParity2D, m.MethodCRC16, m.MethodChecksum} {
		report, err := orch.Exchange(ExchangeArgs{
			Data:      []byte("HELLO"),
			Method:    method,
			Injection: m.InjectionBitFlip,
		})
		require.NoError(t, err)

		assert.Equal(t, []byte("HELLO"), report.Original, method)
		assert.True(t, report.Altered, method)
		assert.True(t, report.Detected(), method)
	}
}

func TestOrchestrator_Exchange_MissedCorruption(t *testing.T) {
	// "ETST" has the same number of one bits as "TEST".
	orch := NewOrchestrator(fixedCorrupter{out: []byte("ETST"), applied: m.InjectionCharSwap})

	report, err := orch.Exchange(ExchangeArgs{Data: []byte("TEST"), Method: m.MethodParity})
	require.NoError(t, err)

	assert.True(t, report.Altered)
	assert.True(t, report.Missed())
	assert.Equal(t, m.InjectionCharSwap, report.Injection)
}

func TestOrchestrator_Exchange_UniqueIDs(t *testing.T) {
	orch := NewOrchestrator(injector.New(3))

	first, err := orch.Exchange(ExchangeArgs{Data: []byte("A"), Method: m.MethodCRC16})
	require.NoError(t, err)

	second, err := orch.Exchange(ExchangeArgs{Data: []byte("A"), Method: m.MethodCRC16})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrchestrator_Exchange_UnknownMethod(t *testing.T) {
	orch := NewOrchestrator(injector.New(1))

	_, err := orch.Exchange(ExchangeArgs{Data: []byte("A"), Method: "MD5"})
	require.ErrorIs(t, err, m.ErrUnknownMethod)
}
