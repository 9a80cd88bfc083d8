package http

import "errors"

// Client request error kinds. Exactly one of these is reported per failed
// Request call. A timeout is a separate signal (Client.TimedOut) that
// co-occurs with ErrSocketRead, because deadline-driven cancellation
// surfaces as a failed read.
var (
	ErrHostResolve     = errors.New("http: cannot resolve host")
	ErrEndpointConnect = errors.New("http: cannot connect to endpoint")
	ErrSocketWrite     = errors.New("http: socket write failed")
	ErrSocketRead      = errors.New("http: socket read failed")
	ErrParse           = errors.New("http: malformed response")
)
