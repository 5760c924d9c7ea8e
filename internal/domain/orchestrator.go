package domain

import (
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/mouse-blink/datacom/internal/domain/codec"
	m "github.com/mouse-blink/datacom/internal/model"
)

// Corrupter applies a corruption strategy to a payload.
// *injector.Injector satisfies it.
type Corrupter interface {
	Corrupt(data []byte, method m.InjectionMethod) ([]byte, m.InjectionMethod)
}

// ExchangeArgs describes one in-process sender -> relay -> receiver exchange.
type ExchangeArgs struct {
	Data      []byte
	Method    m.Method
	Injection m.InjectionMethod
}

// Orchestrator runs the three roles of an exchange on packets in memory.
// It never touches the network; Workflow adds transport around it.
type Orchestrator interface {
	Encode(data []byte, method m.Method) m.Packet
	Corrupt(packet m.Packet, injection m.InjectionMethod) (m.Packet, m.InjectionMethod)
	Inspect(packet m.Packet) m.Report
	Exchange(args ExchangeArgs) (m.Report, error)
}

type orchestrator struct {
	corrupter Corrupter
}

// NewOrchestrator constructs an Orchestrator that corrupts payloads with
// the provided corrupter.
func NewOrchestrator(corrupter Corrupter) Orchestrator {
	return &orchestrator{corrupter: corrupter}
}

// Encode is the sender role: compute control information and build a packet.
func (o *orchestrator) Encode(data []byte, method m.Method) m.Packet {
	return m.NewPacket(data, method, codec.Compute(data, method))
}

// Corrupt is the relay role: only the data field is altered, the method
// token and control field are forwarded as received.
func (o *orchestrator) Corrupt(packet m.Packet, injection m.InjectionMethod) (m.Packet, m.InjectionMethod) {
	corrupted, applied := o.corrupter.Corrupt(packet.Data, injection)

	return packet.WithData(corrupted), applied
}

// Inspect is the receiver role. Unknown method tokens are checked as Parity.
// The returned report has no Original; callers that know it fill it in.
func (o *orchestrator) Inspect(packet m.Packet) m.Report {
	method := m.TokenToMethod(packet.Method)
	computed := codec.Compute(packet.Data, method)

	return m.Report{
		ID:              ksuid.New().String(),
		Method:          method,
		Received:        append([]byte{}, packet.Data...),
		SentControl:     packet.Control,
		ComputedControl: computed,
		Status:          m.NewStatus(packet.Control, computed),
	}
}

func (o *orchestrator) Exchange(args ExchangeArgs) (m.Report, error) {
	if !args.Method.Valid() {
		return m.Report{}, fmt.Errorf("%w: %q", m.ErrUnknownMethod, args.Method)
	}

	sent := o.Encode(args.Data, args.Method)
	received, applied := o.Corrupt(sent, args.Injection)

	report := o.Inspect(received)
	report.Original = append([]byte{}, args.Data...)
	report.Injection = applied
	report.Altered = m.IsAltered(args.Data, report.Received)

	return report, nil
}
