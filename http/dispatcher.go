package http

import (
	"log/slog"
	"net/url"
)

// RestHandler dispatches sessions to pattern-matched services. Register
// all services before serving starts; the registry is read-only while the
// server is accepting connections.
type RestHandler struct {
	Logger *slog.Logger

	registry ServiceRegistry
}

func NewRestHandler() *RestHandler {
	return &RestHandler{Logger: slog.Default()}
}

// RegisterService adds a service under a URL pattern. It returns false
// when the pattern does not compile.
func (h *RestHandler) RegisterService(service Service, pattern string) bool {
	return h.registry.Add(service, pattern)
}

// HandleSession resolves the request target against the registry and
// invokes the matched service. An unparsable target yields 400 without a
// registry lookup; an unmatched path yields 400. Exactly one response is
// written per session.
func (h *RestHandler) HandleSession(session *Session) uint16 {
	request := session.Request()

	target, err := url.ParseRequestURI(request.URL)
	if err != nil {
		h.Logger.Warn("invalid request target", "session", session.ID.String(), "url", request.URL)
		session.SetResponseStatus(StatusBadRequest)
		session.SendResponse()
		return StatusBadRequest
	}

	service, matches := h.registry.Match(target.Path)
	if service == nil {
		h.Logger.Warn("no service matches", "session", session.ID.String(), "path", target.Path)
		session.SetResponseStatus(StatusBadRequest)
		session.SendResponse()
		return StatusBadRequest
	}

	// Service errors are not surfaced as distinct statuses; the service
	// output is the response body either way.
	content := service.Handle(request.Method, matches, request.Content)

	session.SetResponseStatus(StatusOK)
	session.SetResponseContent(ContentTypeJSONUTF8, len(content), content)
	session.SendResponse()
	return StatusOK
}
