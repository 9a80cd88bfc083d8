// Package http implements a small HTTP/1.1 transport core: an outbound
// message model with zero-copy rendering, a blocking client request engine
// with a read deadline, and a regex-routed REST dispatch server.
package http

import "strings"

const (
	// Version is the protocol version spoken on the wire.
	Version = "HTTP/1.1"

	// DefaultPort is substituted when a message is given an empty port.
	DefaultPort = "80"

	// DefaultBufferSize is the size of the client read buffer unless
	// overridden per engine or per request.
	DefaultBufferSize = 1024

	// DefaultTimeoutSeconds bounds the read phase of a client request.
	DefaultTimeoutSeconds = 30

	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096

	// MaxRequestContentSize caps inbound request bodies.
	MaxRequestContentSize = 2 * 1024 * 1024

	// MaxResponseContentSize caps the body the client will accept; a
	// larger declared Content-Length is treated as malformed rather
	// than allocated.
	MaxResponseContentSize = 8 * 1024 * 1024
)

const (
	ContentTypeJSONUTF8 = "application/json; charset=utf-8"
	ContentTypeTextUTF8 = "text/plain; charset=utf-8"
)

var (
	crlf          = []byte("\r\n")
	versionPrefix = []byte("HTTP/1.")
)

// Headers is a case-insensitive header collection. Keys are stored
// lowercased.
type Headers map[string][]string

func (h Headers) Add(name, value string) {
	name = strings.ToLower(name)
	h[name] = append(h[name], value)
}

func (h Headers) Get(name string) (string, bool) {
	values, found := h[strings.ToLower(name)]
	if !found || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
