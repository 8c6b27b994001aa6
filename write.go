package stompy

import (
	"bytes"
	"os"
	"strconv"
)

//name announced in the x-client header on every outgoing frame
var localClient = func() string {
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}()

//Marshal renders a frame in wire format: command, one name:value line per
//header, a blank line, the body and the frame terminator.
//
//When the bytes-message marker is set the marker is removed and replaced
//with a content-length header holding the exact body byte count, so the
//receiving side does not have to rely on terminator scanning to find the
//body end. The x-client host header is always injected.
func Marshal(frame *Frame) []byte {
	headers := frame.Headers
	if headers == nil {
		headers = NewHeaders()
		frame.Headers = headers
	}

	if headers.Has(HdrBytesMessage) {
		headers.Del(HdrBytesMessage)
		headers.Set(HdrContentLength, strconv.Itoa(len(frame.Body)))
	}
	headers.Set(HdrClient, localClient)

	var buf bytes.Buffer
	buf.WriteString(frame.Command)
	buf.WriteByte('\n')
	for _, name := range headers.Names() {
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(headers.Get(name))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(frame.Body)
	buf.WriteString(frameTerminator)
	return buf.Bytes()
}
