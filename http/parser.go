package http

import (
	"bytes"
	"strings"
)

type parserState uint8

const (
	parseStartLine parserState = iota
	parseHeaders
	parseContent
	parseFinished
)

// ResponseParser is an incremental push parser bound to one Response. Feed
// it wire bytes chunk by chunk with Parse; Finished reports whether a
// structurally complete response has been consumed.
//
// The body length is taken from Content-Length; a response without one is
// treated as having no body.
type ResponseParser struct {
	response *Response
	state    parserState

	pending       []byte
	contentLength int
}

func NewResponseParser(response *Response) *ResponseParser {
	return &ResponseParser{response: response}
}

func (p *ResponseParser) Finished() bool {
	return p.state == parseFinished
}

// Parse consumes the next chunk of wire data. It returns false when the
// input is not a well-formed HTTP response; further calls after that are
// undefined. Returning true with Finished()==false means more data is
// needed.
func (p *ResponseParser) Parse(data []byte) bool {
	if p.state == parseFinished {
		return true
	}

	p.pending = append(p.pending, data...)

	for p.state == parseStartLine || p.state == parseHeaders {
		i := bytes.IndexByte(p.pending, '\n')
		if i < 0 {
			return true // incomplete line, wait for more data
		}
		line := bytes.TrimSuffix(p.pending[:i], []byte{'\r'})
		p.pending = p.pending[i+1:]

		if p.state == parseStartLine {
			if !p.parseStartLine(line) {
				return false
			}
			p.state = parseHeaders
			continue
		}

		if len(line) == 0 {
			if !p.finishHeaders() {
				return false
			}
			continue
		}

		if !p.parseHeaderLine(line) {
			return false
		}
	}

	if p.state == parseContent {
		need := p.contentLength - len(p.response.Body)
		if need > len(p.pending) {
			need = len(p.pending)
		}
		p.response.Body = append(p.response.Body, p.pending[:need]...)
		p.pending = p.pending[need:]

		if len(p.response.Body) == p.contentLength {
			p.state = parseFinished
		}
	}

	return true
}

func (p *ResponseParser) parseStartLine(line []byte) bool {
	if !bytes.HasPrefix(line, versionPrefix) {
		return false
	}

	// The reason phrase may itself contain spaces.
	parts := bytes.SplitN(line, []byte{' '}, 3)
	if len(parts) < 2 {
		return false
	}

	status, err := atoi(parts[1])
	if err != nil || status < 100 || status > 999 {
		return false
	}

	p.response.Proto = string(parts[0])
	p.response.StatusCode = uint16(status)
	if len(parts) == 3 {
		p.response.Reason = string(parts[2])
	}

	return true
}

func (p *ResponseParser) parseHeaderLine(line []byte) bool {
	i := bytes.IndexByte(line, ':')
	if i <= 0 {
		return false
	}

	name := strings.TrimSpace(string(line[:i]))
	value := strings.TrimSpace(string(line[i+1:]))
	p.response.Headers.Add(name, value)

	return true
}

func (p *ResponseParser) finishHeaders() bool {
	if value, found := p.response.Headers.Get("Content-Length"); found {
		length, err := atoi([]byte(value))
		if err != nil || length > MaxResponseContentSize {
			return false
		}
		p.contentLength = length
	}

	if p.contentLength == 0 {
		p.state = parseFinished
	} else {
		p.state = parseContent
		p.response.Body = make([]byte, 0, p.contentLength)
	}

	return true
}
