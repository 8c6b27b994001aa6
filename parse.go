package stompy

import "strings"

//Parse converts one frame's raw text, terminator already stripped, into a
//Frame. The command runs up to the first newline, the header block and body
//are separated by the first blank line. Raw text without that separator is
//a malformed broker response.
func Parse(raw string) (*Frame, error) {
	command, rest, _ := strings.Cut(raw, "\n")

	headerBlock, body, found := strings.Cut(rest, "\n\n")
	if !found {
		return nil, UnknownResponseError(raw)
	}

	headers := NewHeaders()
	for _, line := range strings.Split(headerBlock, "\n") {
		//split on the first colon only, values may contain colons.
		//multi line header values are not supported
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, UnknownResponseError(raw)
		}
		headers.Set(name, value)
	}

	//a content-length header means the body is length delimited rather than
	//terminator delimited. Record that so re-serialization emits the length
	//again, the parse itself does not react to it.
	if headers.Has(HdrContentLength) {
		headers.Set(HdrBytesMessage, "true")
	}

	return &Frame{Command: command, Headers: headers, Body: []byte(body)}, nil
}
