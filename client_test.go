package stompy

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectStoresSession(t *testing.T) {
	transport := newScriptTransport(connectedFrame("abc123"))
	conn := NewConn(transport, ConnOpts{})

	err := conn.Connect()
	assert.NoError(t, err, "did not expect a handshake error")
	assert.NotNil(t, conn.Session())
	assert.Equal(t, "abc123", conn.Session().Get(HdrSession))

	//the handshake frame itself should have gone out with empty caller
	//headers, only the injected host header
	written := transport.out.String()
	assert.True(t, strings.HasPrefix(written, "CONNECT\n"), "expected a CONNECT frame on the wire")
	assert.Contains(t, written, "x-client:"+localClient+"\n")
}

func TestConnectPropagatesParseError(t *testing.T) {
	transport := newScriptTransport()
	transport.in.WriteString("garbage" + frameTerminator)
	conn := NewConn(transport, ConnOpts{})

	err := conn.Connect()
	assert.Error(t, err, "expected the parser error to propagate")
	if _, ok := err.(UnknownResponseError); !ok {
		assert.Fail(t, "error should be an UnknownResponseError")
	}
	assert.Nil(t, conn.Session(), "session must stay unset on a failed handshake")
}

func TestConnectPropagatesTransportError(t *testing.T) {
	transport := newScriptTransport()
	transport.writeErr = errors.New("broken pipe")
	conn := NewConn(transport, ConnOpts{})

	err := conn.Connect()
	assert.Error(t, err, "expected the transport error to propagate")
	if _, ok := err.(ConnectionError); !ok {
		assert.Fail(t, "error should be a ConnectionError")
	}
}

func TestReceiptTokenUsesSessionPrefix(t *testing.T) {
	transport := newScriptTransport(connectedFrame("abc123"))
	conn := NewConn(transport, ConnOpts{})
	assert.NoError(t, conn.Connect())

	headers := NewHeaders()
	headers.Set(HdrDestination, "/queue/a")
	frame := conn.Build(CmdSend, headers, []byte("hi"), true)

	receipt := frame.Headers.Get(HdrReceipt)
	assert.True(t, strings.HasPrefix(receipt, "abc123-"), "receipt token should carry the session prefix, got "+receipt)
	stamp := strings.TrimPrefix(receipt, "abc123-")
	_, err := strconv.Atoi(stamp)
	assert.NoError(t, err, "receipt stamp should be a random integer")
}

func TestBuildWithoutReceipt(t *testing.T) {
	conn := NewConn(newScriptTransport(), ConnOpts{})
	frame := conn.Build(CmdSend, nil, []byte("hi"), false)
	assert.NotNil(t, frame.Headers, "build should always hand back usable headers")
	assert.False(t, frame.Headers.Has(HdrReceipt))
}

func TestSendWithReceiptAwaitsReply(t *testing.T) {
	transport := newScriptTransport(connectedFrame("abc123"), receiptFrame("abc123-42"))
	conn := NewConn(transport, ConnOpts{})
	assert.NoError(t, conn.Connect())

	headers := NewHeaders()
	headers.Set(HdrDestination, "/queue/a")
	frame := conn.Build(CmdSend, headers, []byte("hi"), true)

	reply, err := conn.Send(frame)
	assert.NoError(t, err, "did not expect an error sending")
	assert.NotNil(t, reply, "a receipt request should block for and return the reply")
	assert.Equal(t, CmdReceipt, reply.Command)
}

func TestSendWithoutReceiptReturnsNoReply(t *testing.T) {
	transport := newScriptTransport(connectedFrame("abc123"))
	conn := NewConn(transport, ConnOpts{})
	assert.NoError(t, conn.Connect())

	headers := NewHeaders()
	headers.Set(HdrDestination, "/queue/a")
	frame := conn.Build(CmdSend, headers, []byte("hi"), false)

	reply, err := conn.Send(frame)
	assert.NoError(t, err, "did not expect an error sending")
	assert.Nil(t, reply, "without a receipt request Send must not wait for a reply")
	assert.Contains(t, transport.out.String(), "SEND\n", "the frame should still hit the wire")
}

func TestSendWriteError(t *testing.T) {
	transport := newScriptTransport()
	transport.writeErr = errors.New("broken pipe")
	conn := NewConn(transport, ConnOpts{})

	frame := conn.Build(CmdSend, NewHeaders(), []byte("hi"), false)
	_, err := conn.Send(frame)
	assert.Error(t, err, "expected the write error to propagate")
	if _, ok := err.(ConnectionError); !ok {
		assert.Fail(t, "error should be a ConnectionError")
	}
}

func TestDisconnectClosesTransport(t *testing.T) {
	transport := newScriptTransport()
	conn := NewConn(transport, ConnOpts{})
	assert.NoError(t, conn.Disconnect())
	assert.True(t, transport.closed, "disconnect should close the transport")
}
