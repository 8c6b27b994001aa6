package stompy

import (
	"math/rand"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

//Available connection params
type ConnOpts struct {
	HostAndPort string
	Timeout     time.Duration
	Logger      *zerolog.Logger //optional, nop when unset
}

//Conn is a single protocol connection over a byte stream transport. One
//logical frame exchange happens at a time, the connection spawns no
//goroutines of its own. GetMessage and GetReply may be called from
//different goroutines against the same Conn.
type Conn struct {
	opts      ConnOpts
	transport Transport
	reader    frameReader
	log       zerolog.Logger
	session   *Headers
	readMu    sync.Mutex
	messages  frameQueue
	replies   frameQueue
}

//NewConn wraps an established transport. Call Connect to perform the
//handshake before exchanging frames.
func NewConn(transport Transport, opts ConnOpts) *Conn {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Conn{
		opts:      opts,
		transport: transport,
		reader:    newFrameReader(transport, log),
		log:       log,
	}
}

//Dial opens a tcp connection to opts.HostAndPort and performs the
//handshake
func Dial(opts ConnOpts) (*Conn, error) {
	netConn, err := net.DialTimeout("tcp", opts.HostAndPort, opts.Timeout)
	if err != nil {
		return nil, ConnectionError(err.Error())
	}
	conn := NewConn(NewNetTransport(netConn), opts)
	if err := conn.Connect(); err != nil {
		netConn.Close()
		return nil, err
	}
	return conn, nil
}

//Connect sends the initial CONNECT frame with empty headers and blocks for
//the first reply, whose headers become the connection's session identity.
//No retry is performed here, reconnect policy belongs to the caller.
func (c *Conn) Connect() error {
	frame := c.Build(CmdConnect, NewHeaders(), nil, false)
	if err := c.writeFrame(frame); err != nil {
		return err
	}
	reply, err := c.GetReply(false)
	if err != nil {
		return err
	}
	c.session = reply.Headers
	c.log.Debug().Str("session", c.session.Get(HdrSession)).Msg("connected")
	return nil
}

//Session returns the headers of the handshake reply, nil before Connect
func (c *Conn) Session() *Headers {
	return c.session
}

//Build populates a frame from its parts. The frame takes ownership of the
//headers, pass a fresh or cloned collection per call. When a receipt is
//wanted a receipt header of the form <session>-<random int> is attached so
//the broker's acknowledgement can be correlated to this connection.
func (c *Conn) Build(command string, headers *Headers, body []byte, wantReceipt bool) *Frame {
	frame := NewFrame(command, headers, body)
	if wantReceipt {
		stamp := strconv.Itoa(rand.Intn(10000000))
		frame.Headers.Set(HdrReceipt, c.sessionID()+"-"+stamp)
	}
	return frame
}

func (c *Conn) sessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.Get(HdrSession)
}

//Send writes the frame to the transport. If the frame carries a receipt
//header it blocks for the broker's reply and returns it, otherwise the
//returned frame is nil.
func (c *Conn) Send(frame *Frame) (*Frame, error) {
	if err := c.writeFrame(frame); err != nil {
		return nil, err
	}
	if frame.Headers != nil && frame.Headers.Has(HdrReceipt) {
		return c.GetReply(false)
	}
	return nil, nil
}

//Disconnect closes the underlying transport
func (c *Conn) Disconnect() error {
	return c.transport.Close()
}

func (c *Conn) writeFrame(frame *Frame) error {
	wire := Marshal(frame)
	if _, err := c.transport.Write(wire); err != nil {
		return ConnectionError(err.Error())
	}
	c.log.Trace().Str("command", frame.Command).Int("bytes", len(wire)).Msg("frame written")
	return nil
}
