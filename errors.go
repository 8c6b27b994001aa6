package stompy

import "errors"

type ConnectionError string

//UnknownResponseError is returned when raw frame text from the broker has no
//header/body separator or an unparseable header line. The raw text is kept
//for diagnostics.
type UnknownResponseError string

func (ce ConnectionError) Error() string {
	return "unexpected connection error : " + string(ce)
}

func (ur UnknownResponseError) Error() string {
	return "malformed broker response : " + string(ur)
}

//Raw returns the offending frame text as received
func (ur UnknownResponseError) Raw() string {
	return string(ur)
}

//ErrWouldBlock is returned by a Transport read in non blocking mode when no
//data is pending. It never escapes the engine: callers of the frame
//accessors see a nil frame instead.
var ErrWouldBlock = errors.New("read would block")
