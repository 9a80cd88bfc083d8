package http

// Response accumulates a parsed inbound response: status line, headers and
// body. It is filled incrementally by a ResponseParser.
type Response struct {
	Proto      string
	StatusCode uint16
	Reason     string
	Headers    Headers
	Body       []byte
}

func NewResponse() *Response {
	return &Response{Headers: make(Headers)}
}
