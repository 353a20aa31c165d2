package transport

import (
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
)

// maxFrameSize matches the upstream receive buffer: datagrams longer than this
// are truncated by the transport.
const maxFrameSize = 4096

// Source reads raw frames from a bound datagram socket. Reads block until a
// frame arrives or the context is cancelled; a source with nothing being sent
// to it blocks forever.
type Source struct {
	conn net.PacketConn
	buf  []byte
}

// Listen binds the endpoint and returns a Source for it. Bind failures are
// operational-fatal.
func (b *Binding) Listen() (*Source, error) {
	conn, err := net.ListenPacket(b.Network(), b.Address())
	if err != nil {
		return nil, errors.WithMessagef(err, "could not bind %s", b)
	}
	return &Source{conn: conn, buf: make([]byte, maxFrameSize)}, nil
}

// ReadFrame returns the next datagram. The read deadline is used purely to
// poll for context cancellation; the transport itself has no timeout.
func (s *Source) ReadFrame(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.conn.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
			return nil, errors.WithStack(err)
		}
		n, _, err := s.conn.ReadFrom(s.buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return nil, errors.WithStack(err)
		}
		frame := make([]byte, n)
		copy(frame, s.buf[:n])
		return frame, nil
	}
}

// LocalAddr reports the address the source is bound to. Useful when binding
// port 0.
func (s *Source) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

func (s *Source) Close() error {
	return s.conn.Close()
}
