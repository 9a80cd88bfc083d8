package http

import (
	"errors"
	"io"
	"log/slog"
	"net"

	"github.com/restio/restio/telemetry"
)

// SessionHandler is the request-handling strategy of a Server. It must
// write exactly one response to the session and return the status it
// responded with.
type SessionHandler interface {
	HandleSession(session *Session) uint16
}

// Server accepts connections and hands one session per connection to its
// strategy. Connections are closed after the response; worker admission
// is bounded by the configured worker count.
type Server struct {
	Logger  *slog.Logger
	Handler SessionHandler

	addr     string
	workers  int
	listener net.Listener
}

func NewServer(addr string, workers int) *Server {
	if workers <= 0 {
		workers = 1
	}
	return &Server{
		Logger:  slog.Default(),
		addr:    addr,
		workers: workers,
	}
}

func (s *Server) ListenAndServe() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(listener)
}

// Serve runs the accept loop on listener until Close. It returns nil
// after the listener is closed.
func (s *Server) Serve(listener net.Listener) error {
	s.listener = listener

	sem := make(chan struct{}, s.workers)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Error("accept failed", "error", err)
			continue
		}

		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()
			s.serveConn(conn)
		}()
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	session := NewSession(conn, s.Logger)
	if err := session.ReadRequest(); err != nil {
		if err != io.EOF {
			s.Logger.Error("read request failed", "session", session.ID.String(), "error", err)
		}
		return
	}

	handler := s.Handler
	if handler == nil {
		session.SetResponseStatus(StatusServiceUnavailable)
		session.SendResponse()
		return
	}

	status := handler.HandleSession(session)
	telemetry.SessionDone(status)

	s.Logger.Info("session handled",
		"session", session.ID.String(),
		"method", session.Request().Method,
		"url", session.Request().URL,
		"status", status)
}

// Addr returns the listener address, useful when serving on ":0".
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
