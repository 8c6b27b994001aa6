package stompy

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog"
)

//frameReader pulls raw frame text off a transport one byte at a time until
//it sees the frame terminator
type frameReader struct {
	transport Transport
	log       zerolog.Logger
}

func newFrameReader(transport Transport, log zerolog.Logger) frameReader {
	return frameReader{transport: transport, log: log}
}

//readRaw returns the next complete frame's text with the trailing
//terminator stripped. In non blocking mode it returns ok=false when no data
//is pending and nothing has been accumulated yet. Once a frame has started
//it is always read to completion, only the start of a frame may be
//deferred.
//
//The transport's blocking mode is flipped for the duration of the read and
//restored on every exit path, leaving it permanently altered would
//misconfigure the whole connection.
func (fr frameReader) readRaw(nonBlocking bool) (raw string, ok bool, err error) {
	previous := fr.transport.Blocking()
	fr.transport.SetBlocking(!nonBlocking)
	defer fr.transport.SetBlocking(previous)

	var buf bytes.Buffer
	one := make([]byte, 1)
	for !bytes.HasSuffix(buf.Bytes(), []byte(frameTerminator)) {
		n, err := fr.transport.Read(one)
		if n > 0 {
			buf.Write(one[:n])
			continue
		}
		if errors.Is(err, ErrWouldBlock) {
			if buf.Len() == 0 {
				return "", false, nil
			}
			continue
		}
		if err != nil {
			return "", false, ConnectionError(err.Error())
		}
	}

	raw = buf.String()
	raw = raw[:len(raw)-len(frameTerminator)]
	fr.log.Trace().Int("bytes", buf.Len()).Msg("frame read")
	return raw, true, nil
}
