package http

import (
	"bytes"
	"net"
	"strings"
)

// Message is an outbound request: method, target, host/port and a set of
// pre-rendered header lines. It renders itself into non-owning byte views
// for a single scatter-write, so it must stay alive and unmodified until
// the write using those views has completed.
type Message struct {
	Method string
	// URL is a complete URL naming the requested resource, or the path
	// component of the URL.
	URL  string
	Body []byte

	host string
	port string

	startLine   []byte
	headerLines [][]byte
}

func (m *Message) Host() string { return m.host }

// Port returns the stored port, or DefaultPort when none was set.
func (m *Message) Port() string {
	if m.port == "" {
		return DefaultPort
	}
	return m.port
}

// SetHost stores the target host and port and sets the Host header. An
// empty port means DefaultPort.
func (m *Message) SetHost(host, port string) {
	m.host = host
	if port == "" {
		port = DefaultPort
	}
	m.port = port

	if port == DefaultPort {
		m.SetHeader("Host", host)
	} else {
		m.SetHeader("Host", net.JoinHostPort(host, port))
	}
}

// SetHeader sets a header field, replacing an existing line with the
// same name. The line is rendered immediately so ToBuffers never has to
// copy.
func (m *Message) SetHeader(name, value string) {
	line := []byte(name + ": " + value + "\r\n")

	for i, existing := range m.headerLines {
		j := bytes.IndexByte(existing, ':')
		if j >= 0 && strings.EqualFold(string(existing[:j]), name) {
			m.headerLines[i] = line
			return
		}
	}

	m.headerLines = append(m.headerLines, line)
}

// SetContent stores body as the message content and sets the
// Content-Length and Content-Type headers. The body is aliased, not
// copied.
func (m *Message) SetContent(contentType string, body []byte) {
	m.Body = body
	m.SetHeader("Content-Type", contentType)
	m.SetHeader("Content-Length", itoa(len(body)))
}

// MakeStartLine composes the start line from the current method and
// target. Call it after any mutation of Method or URL and before
// ToBuffers.
func (m *Message) MakeStartLine() {
	m.startLine = []byte(m.Method + " " + m.URL + " " + Version + "\r\n")
}

// ToBuffers renders the message as a sequence of byte views over its
// internal storage: start line, header lines, blank line, body. The views
// alias the message's memory; the message must not be mutated or released
// until the write completes. MakeStartLine must have been called.
func (m *Message) ToBuffers() net.Buffers {
	buffers := make(net.Buffers, 0, len(m.headerLines)+3)
	buffers = append(buffers, m.startLine)
	buffers = append(buffers, m.headerLines...)
	buffers = append(buffers, crlf)
	if len(m.Body) > 0 {
		buffers = append(buffers, m.Body)
	}
	return buffers
}
