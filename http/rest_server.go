package http

// RestServer composes a generic accepting Server with a RestHandler as
// its dispatch strategy.
type RestServer struct {
	*Server

	handler *RestHandler
}

func NewRestServer(addr string, workers int) *RestServer {
	handler := NewRestHandler()
	server := NewServer(addr, workers)
	server.Handler = handler

	return &RestServer{
		Server:  server,
		handler: handler,
	}
}

// RegisterService adds a service under a URL pattern. Registration is
// only supported before or between serving periods.
func (s *RestServer) RegisterService(service Service, pattern string) bool {
	return s.handler.RegisterService(service, pattern)
}

// Close stops the server, then detaches the dispatch strategy before
// releasing it.
func (s *RestServer) Close() error {
	err := s.Server.Close()
	s.Server.Handler = nil
	s.handler = nil
	return err
}
