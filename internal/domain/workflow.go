package domain

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/datacom/internal/adapter"
	"github.com/mouse-blink/datacom/internal/controller"
	"github.com/mouse-blink/datacom/internal/domain/injector"
	m "github.com/mouse-blink/datacom/internal/model"
)

// ErrEmptyMessage is returned when there is no message to send.
var ErrEmptyMessage = errors.New("empty message")

const loopbackAddr = "127.0.0.1:0"

// SendArgs configures the sender node. A nil Data asks the UI for both the
// message and the method.
type SendArgs struct {
	Addr   string
	Data   []byte
	Method m.Method
}

// RelayArgs configures the relay node.
type RelayArgs struct {
	ListenAddr  string
	ForwardAddr string
	Injection   m.InjectionMethod
	Seed        *uint64
}

// RelayResult is what the relay saw and what it forwarded.
type RelayResult struct {
	Received  m.Packet
	Forwarded m.Packet
	Injection m.InjectionMethod
}

// ReceiveArgs configures the receiver node.
type ReceiveArgs struct {
	ListenAddr string
}

// DemoArgs configures a loopback run of all three nodes.
type DemoArgs struct {
	Data      []byte
	Method    m.Method
	Injection m.InjectionMethod
	Seed      *uint64
}

// SimulateArgs configures an in-process batch of exchanges.
type SimulateArgs struct {
	Data      []byte
	Methods   []m.Method
	Injection m.InjectionMethod
	Trials    int
	Parallel  int
	Seed      *uint64
	Reports   m.Path
	Clean     bool
}

// ViewArgs points at a directory of saved reports.
type ViewArgs struct {
	Reports m.Path
}

// ControlArgs asks for the control information of a message.
type ControlArgs struct {
	Data   []byte
	Method m.Method
}

// CorruptArgs asks for one corruption of a message.
type CorruptArgs struct {
	Data      []byte
	Injection m.InjectionMethod
	Seed      *uint64
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Send(ctx context.Context, args SendArgs) (m.Packet, error)
	Relay(ctx context.Context, args RelayArgs) (RelayResult, error)
	Receive(ctx context.Context, args ReceiveArgs) (m.Report, error)
	Demo(ctx context.Context, args DemoArgs) (m.Report, error)
	Simulate(ctx context.Context, args SimulateArgs) ([]m.Report, error)
	View(args ViewArgs) error
	Control(args ControlArgs) (m.Packet, error)
	Corrupt(args CorruptArgs) (m.Packet, m.InjectionMethod, error)
}

type workflow struct {
	transport   adapter.TransportAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	transport adapter.TransportAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
) Workflow {
	return &workflow{
		transport:   transport,
		reportStore: reportStore,
		ui:          ui,
		orch:        orch,
	}
}

// Send frames one message and delivers it to the relay.
func (w *workflow) Send(ctx context.Context, args SendArgs) (m.Packet, error) {
	data, method, err := w.resolveMessage(ctx, args.Data, args.Method)
	if err != nil {
		return m.Packet{}, err
	}

	return w.send(ctx, args.Addr, data, method)
}

// Relay accepts one frame, corrupts its data field and forwards it.
func (w *workflow) Relay(ctx context.Context, args RelayArgs) (RelayResult, error) {
	ln, err := w.transport.Listen(ctx, args.ListenAddr)
	if err != nil {
		return RelayResult{}, err
	}
	defer ln.Close()

	return w.relayOn(ctx, ln, args.ForwardAddr, args.Injection, w.orchestratorFor(args.Seed))
}

// Receive accepts one frame and checks its control information.
func (w *workflow) Receive(ctx context.Context, args ReceiveArgs) (m.Report, error) {
	ln, err := w.transport.Listen(ctx, args.ListenAddr)
	if err != nil {
		return m.Report{}, err
	}
	defer ln.Close()

	return w.receiveOn(ctx, ln)
}

// Demo runs receiver, relay and sender over loopback TCP in one process.
// Both listeners are bound before the sender starts, so no node races
// another's startup.
func (w *workflow) Demo(ctx context.Context, args DemoArgs) (m.Report, error) {
	data, method, err := w.resolveMessage(ctx, args.Data, args.Method)
	if err != nil {
		return m.Report{}, err
	}

	receiverLn, err := w.transport.Listen(ctx, loopbackAddr)
	if err != nil {
		return m.Report{}, err
	}
	defer receiverLn.Close()

	relayLn, err := w.transport.Listen(ctx, loopbackAddr)
	if err != nil {
		return m.Report{}, err
	}
	defer relayLn.Close()

	log.Info().
		Str("receiver", receiverLn.Addr().String()).
		Str("relay", relayLn.Addr().String()).
		Msg("demo nodes listening")

	orch := w.orchestratorFor(args.Seed)
	group, gctx := errgroup.WithContext(ctx)

	var (
		report m.Report
		relay  RelayResult
	)

	group.Go(func() error {
		var err error
		report, err = w.receiveOn(gctx, receiverLn)

		return err
	})

	group.Go(func() error {
		var err error
		relay, err = w.relayOn(gctx, relayLn, receiverLn.Addr().String(), args.Injection, orch)

		return err
	})

	group.Go(func() error {
		_, err := w.send(gctx, relayLn.Addr().String(), data, method)

		return err
	})

	if err := group.Wait(); err != nil {
		return m.Report{}, fmt.Errorf("demo: %w", err)
	}

	report.Original = append([]byte{}, data...)
	report.Injection = relay.Injection
	report.Altered = m.IsAltered(data, report.Received)

	return report, nil
}

// Simulate runs Trials exchanges per method on a bounded pool of workers.
// Reports come back ordered by method, then trial.
func (w *workflow) Simulate(ctx context.Context, args SimulateArgs) ([]m.Report, error) {
	if len(args.Data) == 0 {
		return nil, ErrEmptyMessage
	}

	methods := args.Methods
	if len(methods) == 0 {
		methods = m.Methods()
	}

	trials := max(args.Trials, 1)
	parallel := max(args.Parallel, 1)
	orch := w.orchestratorFor(args.Seed)

	log.Info().
		Int("trials", trials).
		Int("methods", len(methods)).
		Int("parallel", parallel).
		Str("injection", string(args.Injection)).
		Msg("simulation starting")

	reports := make([]m.Report, trials*len(methods))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(parallel)

	for i := range reports {
		method := methods[i/trials]

		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := orch.Exchange(ExchangeArgs{
				Data:      args.Data,
				Method:    method,
				Injection: args.Injection,
			})
			if err != nil {
				return fmt.Errorf("exchange %d (%s): %w", i, method, err)
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := w.ui.DisplaySummary(reports); err != nil {
		return nil, err
	}

	if args.Reports == "" {
		return reports, nil
	}

	if err := w.saveReports(args.Reports, reports, args.Clean); err != nil {
		return nil, err
	}

	return reports, nil
}

// View loads saved reports and prints their summary.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.ui.DisplaySummary(reports)
}

// Control prints the packet the sender would transmit for a message.
func (w *workflow) Control(args ControlArgs) (m.Packet, error) {
	if !args.Method.Valid() {
		return m.Packet{}, fmt.Errorf("%w: %q", m.ErrUnknownMethod, args.Method)
	}

	packet := w.orch.Encode(args.Data, args.Method)
	w.ui.DisplayPacket(controller.StageSender, packet)

	return packet, nil
}

// Corrupt applies one injection strategy to a message and prints the result.
func (w *workflow) Corrupt(args CorruptArgs) (m.Packet, m.InjectionMethod, error) {
	if len(args.Data) == 0 {
		return m.Packet{}, m.InjectionNone, ErrEmptyMessage
	}

	packet, applied := w.orchestratorFor(args.Seed).Corrupt(m.Packet{Data: args.Data}, args.Injection)
	w.ui.DisplayCorruption(args.Data, packet.Data, applied)

	return packet, applied, nil
}

func (w *workflow) resolveMessage(ctx context.Context, data []byte, method m.Method) ([]byte, m.Method, error) {
	if data == nil {
		prompt, err := w.ui.PromptMessage(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("prompt: %w", err)
		}

		data, method = prompt.Data, prompt.Method
	}

	if len(data) == 0 {
		return nil, "", ErrEmptyMessage
	}

	if method == "" {
		method = m.MethodParity
	}

	if !method.Valid() {
		return nil, "", fmt.Errorf("%w: %q", m.ErrUnknownMethod, method)
	}

	if err := adapter.ValidatePayload(data); err != nil {
		return nil, "", err
	}

	return data, method, nil
}

func (w *workflow) send(ctx context.Context, addr string, data []byte, method m.Method) (m.Packet, error) {
	packet := w.orch.Encode(data, method)
	w.ui.DisplayPacket(controller.StageSender, packet)

	if err := w.transport.Send(ctx, addr, adapter.EncodePacket(packet)); err != nil {
		return m.Packet{}, fmt.Errorf("send to relay: %w", err)
	}

	log.Info().Str("addr", addr).Str("method", packet.Method).Msg("packet sent")

	return packet, nil
}

func (w *workflow) relayOn(
	ctx context.Context,
	ln net.Listener,
	forward string,
	injection m.InjectionMethod,
	orch Orchestrator,
) (RelayResult, error) {
	received, err := w.accept(ctx, ln)
	if err != nil {
		return RelayResult{}, fmt.Errorf("relay: %w", err)
	}

	w.ui.DisplayPacket(controller.StageRelay, received)

	forwarded, applied := orch.Corrupt(received, injection)
	w.ui.DisplayCorruption(received.Data, forwarded.Data, applied)

	if err := w.transport.Forward(ctx, forward, adapter.EncodePacket(forwarded)); err != nil {
		return RelayResult{}, fmt.Errorf("forward to receiver: %w", err)
	}

	log.Info().Str("forward", forward).Str("injection", string(applied)).Msg("packet relayed")

	return RelayResult{Received: received, Forwarded: forwarded, Injection: applied}, nil
}

func (w *workflow) receiveOn(ctx context.Context, ln net.Listener) (m.Report, error) {
	packet, err := w.accept(ctx, ln)
	if err != nil {
		return m.Report{}, fmt.Errorf("receive: %w", err)
	}

	w.ui.DisplayPacket(controller.StageReceiver, packet)

	if !m.Method(packet.Method).Valid() {
		log.Warn().Str("token", packet.Method).Msg("unknown method token, checking as parity")
	}

	report := w.orch.Inspect(packet)
	w.ui.DisplayReport(report)

	log.Info().Str("method", string(report.Method)).Str("status", string(report.Status)).Msg("packet checked")

	return report, nil
}

func (w *workflow) accept(ctx context.Context, ln net.Listener) (m.Packet, error) {
	frame, err := w.transport.Accept(ctx, ln)
	if err != nil {
		return m.Packet{}, err
	}

	return adapter.DecodePacket(frame)
}

func (w *workflow) saveReports(path m.Path, reports []m.Report, clean bool) error {
	if clean {
		if err := w.reportStore.CleanReports(path); err != nil {
			return fmt.Errorf("clean reports: %w", err)
		}
	}

	if err := w.reportStore.SaveReports(path, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.reportStore.RegenerateIndex(path); err != nil {
		return fmt.Errorf("regenerate index: %w", err)
	}

	log.Info().Str("path", string(path)).Int("reports", len(reports)).Msg("reports saved")

	return nil
}

// orchestratorFor returns the shared orchestrator, or a fresh one driven by
// a seeded injector when seed is set.
func (w *workflow) orchestratorFor(seed *uint64) Orchestrator {
	if seed == nil {
		return w.orch
	}

	return NewOrchestrator(injector.New(*seed))
}
