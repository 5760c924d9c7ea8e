package domain

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/datacom/internal/adapter"
	adaptermocks "github.com/mouse-blink/datacom/internal/adapter/mocks"
	"github.com/mouse-blink/datacom/internal/controller"
	controllermocks "github.com/mouse-blink/datacom/internal/controller/mocks"
	"github.com/mouse-blink/datacom/internal/domain/injector"
	m "github.com/mouse-blink/datacom/internal/model"
)

type workflowFixture struct {
	transport *adaptermocks.MockTransportAdapter
	store     *adaptermocks.MockReportStore
	ui        *controllermocks.MockUI
	wf        Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	f := workflowFixture{
		transport: adaptermocks.NewMockTransportAdapter(t),
		store:     adaptermocks.NewMockReportStore(t),
		ui:        controllermocks.NewMockUI(t),
	}
	f.wf = NewWorkflow(f.transport, f.store, f.ui, NewOrchestrator(injector.New(7)))

	return f
}

func newLoopbackListener(t *testing.T) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	return ln
}

func seed(v uint64) *uint64 {
	return &v
}

func TestWorkflow_Send_WithData(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayPacket(controller.StageSender, mock.Anything).Return()
	f.transport.EXPECT().Send(mock.Anything, "127.0.0.1:8080", []byte("HELLO|CRC16|5189")).Return(nil)

	packet, err := f.wf.Send(context.Background(), SendArgs{
		Addr:   "127.0.0.1:8080",
		Data:   []byte("HELLO"),
		Method: m.MethodCRC16,
	})
	require.NoError(t, err)
	assert.Equal(t, "5189", packet.Control)
}

func TestWorkflow_Send_PromptsWhenNoData(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().PromptMessage(mock.Anything).Return(controller.Prompt{Data: []byte("TEST"), Method: m.MethodParity}, nil)
	f.ui.EXPECT().DisplayPacket(controller.StageSender, mock.Anything).Return()
	f.transport.EXPECT().Send(mock.Anything, "relay:1", []byte("TEST|PARITY|1")).Return(nil)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1"})
	require.NoError(t, err)
}

func TestWorkflow_Send_EmptyPrompt(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().PromptMessage(mock.Anything).Return(controller.Prompt{Method: m.MethodCRC16}, nil)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1"})
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestWorkflow_Send_PromptCancelled(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().PromptMessage(mock.Anything).Return(controller.Prompt{}, controller.ErrPromptCancelled)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1"})
	require.ErrorIs(t, err, controller.ErrPromptCancelled)
}

func TestWorkflow_Send_RejectsSeparatorInData(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1", Data: []byte("A|B"), Method: m.MethodParity})
	require.ErrorIs(t, err, adapter.ErrSeparatorInData)
}

func TestWorkflow_Send_UnknownMethod(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1", Data: []byte("A"), Method: "MD5"})
	require.ErrorIs(t, err, m.ErrUnknownMethod)
}

func TestWorkflow_Send_TransportError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("connection refused")

	f.ui.EXPECT().DisplayPacket(controller.StageSender, mock.Anything).Return()
	f.transport.EXPECT().Send(mock.Anything, "relay:1", mock.Anything).Return(boom)

	_, err := f.wf.Send(context.Background(), SendArgs{Addr: "relay:1", Data: []byte("A"), Method: m.MethodParity})
	require.ErrorIs(t, err, boom)
}

func TestWorkflow_Relay_CorruptsDataOnly(t *testing.T) {
	f := newWorkflowFixture(t)
	ln := newLoopbackListener(t)

	var forwarded []byte

	f.transport.EXPECT().Listen(mock.Anything, ":9000").Return(ln, nil)
	f.transport.EXPECT().Accept(mock.Anything, ln).Return([]byte("HELLO|CRC16|5189"), nil)
	f.ui.EXPECT().DisplayPacket(controller.StageRelay, mock.Anything).Return()
	f.ui.EXPECT().DisplayCorruption([]byte("HELLO"), mock.Anything, m.InjectionBitFlip).Return()
	f.transport.EXPECT().Forward(mock.Anything, "127.0.0.1:8081", mock.Anything).
		Run(func(_ context.Context, _ string, frame []byte) {
			forwarded = frame
		}).
		Return(nil)

	result, err := f.wf.Relay(context.Background(), RelayArgs{
		ListenAddr:  ":9000",
		ForwardAddr: "127.0.0.1:8081",
		Injection:   m.InjectionBitFlip,
		Seed:        seed(1),
	})
	require.NoError(t, err)

	assert.Equal(t, m.InjectionBitFlip, result.Injection)
	assert.Equal(t, []byte("HELLO"), result.Received.Data)
	assert.Len(t, result.Forwarded.Data, 5)
	assert.NotEqual(t, result.Received.Data, result.Forwarded.Data)

	packet, err := adapter.DecodePacket(forwarded)
	require.NoError(t, err)
	assert.Equal(t, "CRC16", packet.Method)
	assert.Equal(t, "5189", packet.Control)
	assert.Equal(t, result.Forwarded.Data, packet.Data)
}

func TestWorkflow_Relay_SeededIsDeterministic(t *testing.T) {
	run := func() RelayResult {
		f := newWorkflowFixture(t)
		ln := newLoopbackListener(t)

		f.transport.EXPECT().Listen(mock.Anything, mock.Anything).Return(ln, nil)
		f.transport.EXPECT().Accept(mock.Anything, ln).Return([]byte("Hello, World!|CHECKSUM|BED3"), nil)
		f.ui.EXPECT().DisplayPacket(mock.Anything, mock.Anything).Return()
		f.ui.EXPECT().DisplayCorruption(mock.Anything, mock.Anything, mock.Anything).Return()
		f.transport.EXPECT().Forward(mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := f.wf.Relay(context.Background(), RelayArgs{Injection: m.InjectionRandom, Seed: seed(99)})
		require.NoError(t, err)

		return result
	}

	first, second := run(), run()
	assert.Equal(t, first.Injection, second.Injection)
	assert.Equal(t, first.Forwarded.Data, second.Forwarded.Data)
}

func TestWorkflow_Relay_MalformedFrame(t *testing.T) {
	f := newWorkflowFixture(t)
	ln := newLoopbackListener(t)

	f.transport.EXPECT().Listen(mock.Anything, mock.Anything).Return(ln, nil)
	f.transport.EXPECT().Accept(mock.Anything, ln).Return([]byte("no separators"), nil)

	_, err := f.wf.Relay(context.Background(), RelayArgs{ForwardAddr: "127.0.0.1:8081"})
	require.ErrorIs(t, err, adapter.ErrMalformedFrame)
}

func TestWorkflow_Relay_ListenError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("address in use")

	f.transport.EXPECT().Listen(mock.Anything, ":8080").Return(nil, boom)

	_, err := f.wf.Relay(context.Background(), RelayArgs{ListenAddr: ":8080"})
	require.ErrorIs(t, err, boom)
}

func TestWorkflow_Receive(t *testing.T) {
	tests := []struct {
		name   string
		frame  string
		method m.Method
		status m.Status
	}{
		{name: "correct", frame: "HELLO|CRC16|5189", method: m.MethodCRC16, status: m.StatusCorrect},
		{name: "corrupted", frame: "HELMO|CRC16|5189", method: m.MethodCRC16, status: m.StatusCorrupted},
		{name: "two-dimensional control keeps separator", frame: "HELLO|PARITY2D|42|0F", method: m.MethodParity2D, status: m.StatusCorrect},
		{name: "unknown token falls back to parity", frame: "HELLO|SHA1|0", method: m.MethodParity, status: m.StatusCorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkflowFixture(t)
			ln := newLoopbackListener(t)

			f.transport.EXPECT().Listen(mock.Anything, ":8081").Return(ln, nil)
			f.transport.EXPECT().Accept(mock.Anything, ln).Return([]byte(tt.frame), nil)
			f.ui.EXPECT().DisplayPacket(controller.StageReceiver, mock.Anything).Return()
			f.ui.EXPECT().DisplayReport(mock.Anything).Return()

			report, err := f.wf.Receive(context.Background(), ReceiveArgs{ListenAddr: ":8081"})
			require.NoError(t, err)

			assert.Equal(t, tt.method, report.Method)
			assert.Equal(t, tt.status, report.Status)
		})
	}
}

func TestWorkflow_Receive_AcceptError(t *testing.T) {
	f := newWorkflowFixture(t)
	ln := newLoopbackListener(t)

	f.transport.EXPECT().Listen(mock.Anything, mock.Anything).Return(ln, nil)
	f.transport.EXPECT().Accept(mock.Anything, ln).Return(nil, adapter.ErrFrameTooLarge)

	_, err := f.wf.Receive(context.Background(), ReceiveArgs{})
	require.ErrorIs(t, err, adapter.ErrFrameTooLarge)
}

func newDemoWorkflow(t *testing.T) (Workflow, *controllermocks.MockUI) {
	t.Helper()

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayPacket(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayCorruption(mock.Anything, mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayReport(mock.Anything).Return()

	transport := adapter.NewTCPTransport(time.Second, 5*time.Second, 4096)
	wf := NewWorkflow(transport, adaptermocks.NewMockReportStore(t), ui, NewOrchestrator(injector.New(5)))

	return wf, ui
}

func TestWorkflow_Demo_OverLoopback(t *testing.T) {
	wf, _ := newDemoWorkflow(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := wf.Demo(ctx, DemoArgs{
		Data:      []byte("HELLO"),
		Method:    m.MethodCRC16,
		Injection: m.InjectionBitFlip,
		Seed:      seed(11),
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("HELLO"), report.Original)
	assert.Equal(t, m.InjectionBitFlip, report.Injection)
	assert.Equal(t, "5189", report.SentControl)
	assert.True(t, report.Altered)
	assert.Equal(t, m.StatusCorrupted, report.Status)
}

func TestWorkflow_Demo_NoInjection(t *testing.T) {
	wf, _ := newDemoWorkflow(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := wf.Demo(ctx, DemoArgs{
		Data:      []byte("HELLO"),
		Method:    m.MethodParity2D,
		Injection: m.InjectionNone,
	})
	require.NoError(t, err)

	assert.Equal(t, "42|0F", report.SentControl)
	assert.False(t, report.Altered)
	assert.Equal(t, m.StatusCorrect, report.Status)
}

func TestWorkflow_Demo_InsertionAtFrameLimit(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayPacket(mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayCorruption(mock.Anything, mock.Anything, mock.Anything).Return()
	ui.EXPECT().DisplayReport(mock.Anything).Return()

	// "HELLO|CRC16|5189" is exactly 16 bytes; the relay adds one.
	transport := adapter.NewTCPTransport(time.Second, 5*time.Second, 16)
	orch := NewOrchestrator(fixedCorrupter{out: []byte("HELLXO"), applied: m.InjectionCharInsertion})
	wf := NewWorkflow(transport, adaptermocks.NewMockReportStore(t), ui, orch)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	report, err := wf.Demo(ctx, DemoArgs{
		Data:      []byte("HELLO"),
		Method:    m.MethodCRC16,
		Injection: m.InjectionCharInsertion,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("HELLXO"), report.Received)
	assert.Equal(t, m.InjectionCharInsertion, report.Injection)
	assert.Equal(t, m.StatusCorrupted, report.Status)
}

func TestWorkflow_Simulate(t *testing.T) {
	f := newWorkflowFixture(t)

	methods := []m.Method{m.MethodParity, m.MethodParity2D, m.MethodCRC16, m.MethodChecksum}

	var saved []m.Report

	f.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)
	f.store.EXPECT().CleanReports(m.Path("out")).Return(nil)
	f.store.EXPECT().SaveReports(m.Path("out"), mock.Anything).
		Run(func(_ m.Path, reports []m.Report) { saved = reports }).
		Return(nil)
	f.store.EXPECT().RegenerateIndex(m.Path("out")).Return(nil)

	reports, err := f.wf.Simulate(context.Background(), SimulateArgs{
		Data:      []byte("HELLO"),
		Methods:   methods,
		Injection: m.InjectionBitFlip,
		Trials:    10,
		Parallel:  4,
		Seed:      seed(3),
		Reports:   "out",
		Clean:     true,
	})
	require.NoError(t, err)
	require.Len(t, reports, 40)
	assert.Equal(t, reports, saved)

	for i, report := range reports {
		assert.Equal(t, methods[i/10], report.Method)
		assert.NotEmpty(t, report.ID)
		assert.True(t, report.Detected(), "single bit flip must be detected by %s", report.Method)
	}

	for _, summary := range m.Summarize(reports) {
		assert.Equal(t, 10, summary.Trials)
		assert.Zero(t, summary.Missed)
	}
}

func TestWorkflow_Simulate_DefaultsToAllMethods(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)

	reports, err := f.wf.Simulate(context.Background(), SimulateArgs{
		Data:      []byte("TEST"),
		Injection: m.InjectionNone,
	})
	require.NoError(t, err)
	require.Len(t, reports, len(m.Methods()))

	for _, report := range reports {
		assert.Equal(t, m.StatusCorrect, report.Status)
		assert.False(t, report.Altered)
	}
}

func TestWorkflow_Simulate_EmptyMessage(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.wf.Simulate(context.Background(), SimulateArgs{})
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestWorkflow_Simulate_SaveError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("disk full")

	f.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)
	f.store.EXPECT().SaveReports(m.Path("out"), mock.Anything).Return(boom)

	_, err := f.wf.Simulate(context.Background(), SimulateArgs{
		Data:    []byte("A"),
		Methods: []m.Method{m.MethodCRC16},
		Reports: "out",
	})
	require.ErrorIs(t, err, boom)
}

func TestWorkflow_Simulate_CancelledContext(t *testing.T) {
	f := newWorkflowFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.wf.Simulate(ctx, SimulateArgs{Data: []byte("A"), Trials: 5})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)

	reports := []m.Report{{ID: "1", Method: m.MethodCRC16, Status: m.StatusCorrect}}

	f.store.EXPECT().LoadReports(m.Path("out")).Return(reports, nil)
	f.ui.EXPECT().DisplaySummary(reports).Return(nil)

	require.NoError(t, f.wf.View(ViewArgs{Reports: "out"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	boom := errors.New("missing")

	f.store.EXPECT().LoadReports(m.Path("out")).Return(nil, boom)

	err := f.wf.View(ViewArgs{Reports: "out"})
	require.ErrorIs(t, err, boom)
}

func TestWorkflow_Control(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayPacket(controller.StageSender, mock.Anything).Return()

	packet, err := f.wf.Control(ControlArgs{Data: []byte("A"), Method: m.MethodChecksum})
	require.NoError(t, err)
	assert.Equal(t, "BEFF", packet.Control)

	_, err = f.wf.Control(ControlArgs{Data: []byte("A"), Method: "XOR"})
	require.ErrorIs(t, err, m.ErrUnknownMethod)
}

func TestWorkflow_Corrupt(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayCorruption([]byte("HELLO"), mock.Anything, m.InjectionCharDeletion).Return()

	packet, applied, err := f.wf.Corrupt(CorruptArgs{
		Data:      []byte("HELLO"),
		Injection: m.InjectionCharDeletion,
		Seed:      seed(1),
	})
	require.NoError(t, err)

	assert.Equal(t, m.InjectionCharDeletion, applied)
	assert.Len(t, packet.Data, 4)

	_, _, err = f.wf.Corrupt(CorruptArgs{})
	require.ErrorIs(t, err, ErrEmptyMessage)
}
