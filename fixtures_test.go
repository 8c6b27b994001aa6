package stompy

import (
	"bytes"
	"io"
)

//scriptTransport is an in memory Transport fed with pre scripted inbound
//bytes. Once the script is exhausted a non blocking read reports
//ErrWouldBlock and a blocking read reports io.EOF so tests never hang.
type scriptTransport struct {
	in       bytes.Buffer
	out      bytes.Buffer
	blocking bool
	closed   bool
	readErr  error
	writeErr error
}

func newScriptTransport(frames ...*Frame) *scriptTransport {
	t := &scriptTransport{blocking: true}
	for _, f := range frames {
		t.in.Write(Marshal(f))
	}
	return t
}

func (t *scriptTransport) Read(p []byte) (int, error) {
	if t.readErr != nil {
		return 0, t.readErr
	}
	if t.in.Len() == 0 {
		if !t.blocking {
			return 0, ErrWouldBlock
		}
		return 0, io.EOF
	}
	return t.in.Read(p)
}

func (t *scriptTransport) Write(p []byte) (int, error) {
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	return t.out.Write(p)
}

func (t *scriptTransport) SetBlocking(blocking bool) { t.blocking = blocking }

func (t *scriptTransport) Blocking() bool { return t.blocking }

func (t *scriptTransport) Close() error {
	t.closed = true
	return nil
}

func messageFrame(destination, body string) *Frame {
	headers := NewHeaders()
	if destination != "" {
		headers.Set(HdrDestination, destination)
	}
	return NewFrame(CmdMessage, headers, []byte(body))
}

func receiptFrame(id string) *Frame {
	headers := NewHeaders()
	headers.Set("receipt-id", id)
	return NewFrame(CmdReceipt, headers, nil)
}

func connectedFrame(session string) *Frame {
	headers := NewHeaders()
	headers.Set(HdrSession, session)
	return NewFrame(CmdConnected, headers, nil)
}
