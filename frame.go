package stompy

import "fmt"

//Protocol commands. Clients send CONNECT and SEND, brokers answer with
//CONNECTED, RECEIPT and ERROR and push MESSAGE frames for deliveries.
const (
	CmdConnect    = "CONNECT"
	CmdConnected  = "CONNECTED"
	CmdDisconnect = "DISCONNECT"
	CmdSend       = "SEND"
	CmdMessage    = "MESSAGE"
	CmdReceipt    = "RECEIPT"
	CmdError      = "ERROR"
)

//Header names the engine itself reads or writes. HdrBytesMessage never goes
//on the wire: it is the in memory marker for a length delimited body and is
//swapped for a content-length header at serialization time.
const (
	HdrContentLength = "content-length"
	HdrBytesMessage  = "bytes-message"
	HdrDestination   = "destination"
	HdrReceipt       = "receipt"
	HdrClient        = "x-client"
	HdrSession       = "session"
)

//every frame on the wire ends with a null byte followed by a newline. The
//terminator is the only frame boundary marker, so a body must not contain
//this exact two byte sequence. That is a limitation of the protocol itself.
const frameTerminator = "\x00\n"

//a frame is made up of a command, headers and an optional body
type Frame struct {
	Command string
	Headers *Headers
	Body    []byte
}

//NewFrame builds a frame from its three parts. A nil headers value is
//replaced with an empty collection so callers can always Set on the result.
func NewFrame(command string, headers *Headers, body []byte) *Frame {
	if headers == nil {
		headers = NewHeaders()
	}
	return &Frame{Command: command, Headers: headers, Body: body}
}

func (f *Frame) String() string {
	return fmt.Sprintf("<Frame %s %v>", f.Command, f.Headers)
}
