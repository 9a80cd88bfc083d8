package http

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"github.com/restio/restio/uuid"
)

// Request is one parsed inbound request.
type Request struct {
	Method  string
	URL     string
	Proto   string
	Headers Headers
	Content []byte
}

func (r *Request) parse(reader *bufio.Reader) error {
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return io.EOF
	}

	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return fmt.Errorf("http: malformed request line: %q", line)
	}
	r.Method, r.URL, r.Proto = parts[0], parts[1], parts[2]
	if !strings.HasPrefix(r.Proto, "HTTP/1.") {
		return fmt.Errorf("http: unsupported protocol: %q", r.Proto)
	}

	r.Headers = make(Headers)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("http: header read: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}

		i := strings.Index(line, ":")
		if i <= 0 {
			return fmt.Errorf("http: malformed header line: %q", line)
		}
		r.Headers.Add(strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]))
	}

	value, found := r.Headers.Get("Content-Length")
	if !found {
		return nil
	}
	length, err := atoi([]byte(value))
	if err != nil || length > MaxRequestContentSize {
		return fmt.Errorf("http: bad content length: %q", value)
	}
	if length > 0 {
		r.Content = make([]byte, length)
		if _, err := io.ReadFull(reader, r.Content); err != nil {
			return fmt.Errorf("http: content read: %w", err)
		}
	}

	return nil
}

// Session is one inbound connection exchange: the parsed request plus the
// response being composed. A handler sets the response status and content
// and calls SendResponse exactly once.
type Session struct {
	ID uuid.UUID

	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	logger *slog.Logger

	request Request

	status      uint16
	contentType string
	content     []byte
}

func NewSession(conn net.Conn, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:     uuid.NewV4(),
		conn:   conn,
		reader: bufio.NewReaderSize(conn, DefaultReadBufferSize),
		writer: bufio.NewWriterSize(conn, DefaultWriteBufferSize),
		logger: logger,
		status: StatusOK,
	}
}

// ReadRequest parses the next request from the connection.
func (s *Session) ReadRequest() error {
	return s.request.parse(s.reader)
}

func (s *Session) Request() *Request { return &s.request }

func (s *Session) SetResponseStatus(status uint16) {
	s.status = status
}

func (s *Session) SetResponseContent(contentType string, length int, content []byte) {
	s.contentType = contentType
	s.content = content[:length]
}

// SendResponse writes the composed response and flushes the connection.
func (s *Session) SendResponse() error {
	s.writer.WriteString(Version + " " + itoa(int(s.status)) + " " + StatusText(s.status) + "\r\n")
	if s.contentType != "" {
		s.writer.WriteString("Content-Type: " + s.contentType + "\r\n")
	}
	s.writer.WriteString("Content-Length: " + itoa(len(s.content)) + "\r\n")
	s.writer.WriteString("Connection: close\r\n")
	s.writer.WriteString("\r\n")
	s.writer.Write(s.content)

	if err := s.writer.Flush(); err != nil {
		s.logger.Error("send response failed", "session", s.ID.String(), "error", err)
		return err
	}
	return nil
}
