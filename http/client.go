package http

import (
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/restio/restio/telemetry"
)

// Client drives one outbound request at a time over a fresh TCP
// connection. Request presents a blocking contract; internally the read
// phase races the connection's read deadline against the socket, both on
// the calling goroutine. A Client is not safe for overlapping Request
// calls: per-request state is reset in place.
type Client struct {
	Logger *slog.Logger

	buffer  []byte
	timeout time.Duration

	conn     net.Conn
	response *Response
	parser   *ResponseParser
	stopped  bool
	timedOut bool
	err      error
}

// NewClient returns a client with a read buffer of bufferSize bytes.
// Non-positive sizes mean DefaultBufferSize.
func NewClient(bufferSize int) *Client {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Client{
		Logger:  slog.Default(),
		buffer:  make([]byte, bufferSize),
		timeout: DefaultTimeoutSeconds * time.Second,
	}
}

// SetTimeout sets the read-phase timeout in seconds. Non-positive values
// are ignored.
func (c *Client) SetTimeout(seconds int) {
	if seconds > 0 {
		c.timeout = time.Duration(seconds) * time.Second
	}
}

// Response returns the accumulator populated by the last Request call.
func (c *Client) Response() *Response { return c.response }

// Err returns the error kind of the last Request call, or nil.
func (c *Client) Err() error { return c.err }

// TimedOut reports whether the last Request call hit the read deadline.
// When true, Err reports ErrSocketRead as well, since cancellation
// surfaces as a failed read; the timeout is the authoritative cause.
func (c *Client) TimedOut() bool { return c.timedOut }

// Request connects to the message's host, writes the rendered message in
// one scatter-write and reads until the parser reports a complete
// response or the deadline fires. It blocks until a terminal state is
// reached; nothing belonging to the request runs after it returns.
//
// A positive bufferSize overrides the read buffer size for this call
// only; the previous buffer is restored on return.
func (c *Client) Request(message *Message, bufferSize int) bool {
	c.response = NewResponse()
	c.parser = NewResponseParser(c.response)
	c.conn = nil
	c.stopped = false
	c.timedOut = false
	c.err = nil

	if bufferSize > 0 && bufferSize != len(c.buffer) {
		saved := c.buffer
		c.buffer = make([]byte, bufferSize)
		defer func() { c.buffer = saved }()
	}

	defer func() { telemetry.ClientRequestDone(c.err, c.timedOut) }()

	if c.err = c.connect(message); c.err != nil {
		return false
	}
	if c.err = c.send(message); c.err != nil {
		return false
	}
	if c.err = c.readResponse(); c.err != nil {
		return false
	}
	return true
}

func (c *Client) connect(message *Message) error {
	addrs, err := net.LookupHost(message.Host())
	if err != nil {
		c.Logger.Error("host resolve failed", "host", message.Host(), "error", err)
		return ErrHostResolve
	}

	port := message.Port()

	// Connect to the first viable endpoint.
	var conn net.Conn
	for _, addr := range addrs {
		conn, err = net.Dial("tcp", net.JoinHostPort(addr, port))
		if err == nil {
			break
		}
		conn = nil
	}
	if conn == nil {
		c.Logger.Error("endpoint connect failed", "host", message.Host(), "port", port, "error", err)
		c.stop()
		return ErrEndpointConnect
	}

	c.conn = conn
	c.Logger.Debug("socket connected", "remote", conn.RemoteAddr().String())
	return nil
}

func (c *Client) send(message *Message) error {
	buffers := message.ToBuffers()
	if _, err := buffers.WriteTo(c.conn); err != nil {
		c.Logger.Error("socket write failed", "error", err)
		c.stop()
		return ErrSocketWrite
	}

	c.Logger.Debug("request sent", "method", message.Method, "url", message.URL)
	return nil
}

func (c *Client) readResponse() error {
	// The connection's read deadline is the deadline timer for this
	// phase: it is armed once, races the blocking read on the calling
	// goroutine, and cancels the in-flight read when it fires. Without
	// it the read would be unbounded, so failing to arm it fails the
	// request.
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		c.Logger.Error("arming read deadline failed", "error", err)
		c.stop()
		return ErrSocketRead
	}

	for {
		n, err := c.conn.Read(c.buffer)

		if n > 0 {
			if !c.parser.Parse(c.buffer[:n]) {
				c.Logger.Error("malformed response")
				c.stop()
				return ErrParse
			}

			if c.parser.Finished() {
				// Stop reading once all content has been received; some
				// servers block an extra read.
				c.stop()
				return nil
			}
		}

		if err != nil || n == 0 {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				c.timedOut = true
				c.Logger.Warn("request timed out", "timeout", c.timeout)
			} else {
				c.Logger.Error("socket read failed", "error", err)
			}
			c.stop()
			return ErrSocketRead
		}
	}
}

// stop is the single teardown path: it closes the socket, which also
// cancels an armed read deadline. Safe to invoke more than once; only the
// first call has an effect.
func (c *Client) stop() {
	if c.stopped {
		return
	}
	c.stopped = true

	if c.conn != nil {
		c.conn.Close()
	}
}
