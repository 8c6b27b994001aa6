package stompy

import (
	"net"
	"time"
)

//how long a non blocking read waits before reporting ErrWouldBlock on a
//net.Conn. Deadlines are the closest a Go socket gets to setblocking(false).
const pollInterval = 10 * time.Millisecond

//Transport is the byte stream boundary the engine runs over. It provides no
//framing, retry or encryption: single/few byte reads that may signal
//ErrWouldBlock when non blocking, a full buffer write, and a blocking mode
//toggle the reader flips transiently around each frame.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetBlocking(blocking bool)
	Blocking() bool
	Close() error
}

//NetTransport adapts a net.Conn to the Transport interface. Non blocking
//mode is emulated with short read deadlines, a timed out read is reported
//as ErrWouldBlock.
type NetTransport struct {
	conn     net.Conn
	blocking bool
}

func NewNetTransport(conn net.Conn) *NetTransport {
	return &NetTransport{conn: conn, blocking: true}
}

func (t *NetTransport) Read(p []byte) (int, error) {
	if t.blocking {
		if err := t.conn.SetReadDeadline(time.Time{}); err != nil {
			return 0, err
		}
		return t.conn.Read(p)
	}
	if err := t.conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
		return 0, err
	}
	n, err := t.conn.Read(p)
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return n, ErrWouldBlock
	}
	return n, err
}

func (t *NetTransport) Write(p []byte) (int, error) {
	return t.conn.Write(p)
}

func (t *NetTransport) SetBlocking(blocking bool) {
	t.blocking = blocking
}

func (t *NetTransport) Blocking() bool {
	return t.blocking
}

func (t *NetTransport) Close() error {
	return t.conn.Close()
}
