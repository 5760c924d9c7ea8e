package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrFrameTooLarge is returned when a peer sends more than the frame limit.
var ErrFrameTooLarge = errors.New("transport: frame exceeds limit")

// relayHeadroom is how far a forwarded frame may exceed the frame limit.
// Character insertion at the relay grows the data by one byte.
const relayHeadroom = 1

// TransportAdapter moves single frames between nodes. Each connection carries
// exactly one frame; the sender closes its side to mark the end.
type TransportAdapter interface {
	// Listen binds addr. Use port 0 to let the OS pick one.
	Listen(ctx context.Context, addr string) (net.Listener, error)

	// Accept waits for one connection on ln and reads its frame.
	Accept(ctx context.Context, ln net.Listener) ([]byte, error)

	// Send dials addr, writes frame and closes the connection.
	Send(ctx context.Context, addr string, frame []byte) error

	// Forward is Send for a frame that already crossed the relay. It allows
	// the frame to grow past the limit by what a corruption can add.
	Forward(ctx context.Context, addr string, frame []byte) error
}

// TCPTransport is the TransportAdapter backed by plain TCP.
type TCPTransport struct {
	dialTimeout   time.Duration
	readTimeout   time.Duration
	maxFrameBytes int
}

// NewTCPTransport constructs a TCPTransport.
func NewTCPTransport(dialTimeout, readTimeout time.Duration, maxFrameBytes int) *TCPTransport {
	return &TCPTransport{
		dialTimeout:   dialTimeout,
		readTimeout:   readTimeout,
		maxFrameBytes: maxFrameBytes,
	}
}

// Listen binds a TCP listener on addr.
func (t *TCPTransport) Listen(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	log.Debug().Str("addr", ln.Addr().String()).Msg("transport listening")

	return ln, nil
}

// Accept takes the next connection on ln and reads one frame from it.
// Frames up to the forward limit are accepted so a receiver can take what
// the relay forwards. Cancelling ctx closes ln to unblock the accept.
func (t *TCPTransport) Accept(ctx context.Context, ln net.Listener) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("transport peer connected")

	stopConn := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stopConn()

	if t.readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(t.readTimeout))
	}

	limit := t.maxFrameBytes + relayHeadroom

	frame, err := io.ReadAll(io.LimitReader(conn, int64(limit)+1))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, fmt.Errorf("read frame: %w", err)
	}

	if len(frame) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFrameTooLarge, limit)
	}

	if len(frame) == 0 {
		return nil, fmt.Errorf("read frame: %w", io.ErrUnexpectedEOF)
	}

	return frame, nil
}

// Send dials addr and writes frame.
func (t *TCPTransport) Send(ctx context.Context, addr string, frame []byte) error {
	return t.write(ctx, addr, frame, t.maxFrameBytes)
}

// Forward dials addr and writes a relayed frame.
func (t *TCPTransport) Forward(ctx context.Context, addr string, frame []byte) error {
	return t.write(ctx, addr, frame, t.maxFrameBytes+relayHeadroom)
}

func (t *TCPTransport) write(ctx context.Context, addr string, frame []byte, limit int) error {
	if len(frame) > limit {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(frame))
	}

	dialer := net.Dialer{Timeout: t.dialTimeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	}

	if _, err := conn.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	log.Debug().Str("addr", addr).Int("bytes", len(frame)).Msg("transport frame sent")

	return nil
}
