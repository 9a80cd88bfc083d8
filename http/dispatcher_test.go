package http

import (
	"bufio"
	"io"
	"net"
	stdhttp "net/http"
	"reflect"
	"testing"
)

// dispatch runs handler.HandleSession against a session whose request is
// pre-populated and returns the response as read off the wire.
func dispatch(t *testing.T, handler *RestHandler, method, target string, content []byte) *stdhttp.Response {
	t.Helper()

	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() {
		serverConn.Close()
		clientConn.Close()
	})

	session := NewSession(serverConn, nil)
	session.request.Method = method
	session.request.URL = target
	session.request.Content = content

	go handler.HandleSession(session)

	response, err := stdhttp.ReadResponse(bufio.NewReader(clientConn), nil)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func TestDispatchMatchedService(t *testing.T) {
	var (
		gotMethod  string
		gotMatches []string
		gotContent []byte
	)

	handler := NewRestHandler()
	handler.RegisterService(ServiceFunc(func(method string, matches []string, content []byte) []byte {
		gotMethod = method
		gotMatches = matches
		gotContent = content
		return []byte(`{"id":"42"}`)
	}), "/users/([0-9]+)")

	response := dispatch(t, handler, "PUT", "/users/42?verbose=1", []byte(`{"name":"ann"}`))

	if response.StatusCode != 200 {
		t.Errorf("expected 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); contentType != ContentTypeJSONUTF8 {
		t.Errorf("expected JSON content type, got %q", contentType)
	}

	body, _ := io.ReadAll(response.Body)
	if string(body) != `{"id":"42"}` {
		t.Errorf("unexpected body %q", body)
	}

	if gotMethod != "PUT" {
		t.Errorf("service saw method %q", gotMethod)
	}
	if !reflect.DeepEqual(gotMatches, []string{"42"}) {
		t.Errorf("service saw matches %v", gotMatches)
	}
	if string(gotContent) != `{"name":"ann"}` {
		t.Errorf("service saw content %q", gotContent)
	}
}

func TestDispatchInvalidTarget(t *testing.T) {
	invoked := false

	handler := NewRestHandler()
	// The catch-all would match anything, so a 400 here proves the
	// registry was never consulted.
	handler.RegisterService(ServiceFunc(func(method string, matches []string, content []byte) []byte {
		invoked = true
		return nil
	}), ".*")

	response := dispatch(t, handler, "GET", "not a url", nil)

	if response.StatusCode != 400 {
		t.Errorf("expected 400, got %d", response.StatusCode)
	}
	if invoked {
		t.Error("no registry lookup may happen for an invalid target")
	}
}

func TestDispatchNoMatch(t *testing.T) {
	handler := NewRestHandler()
	handler.RegisterService(namedService("books"), "/books")

	response := dispatch(t, handler, "GET", "/movies", nil)

	if response.StatusCode != 400 {
		t.Errorf("expected 400, got %d", response.StatusCode)
	}
}

func TestDispatchFullURLTarget(t *testing.T) {
	handler := NewRestHandler()
	handler.RegisterService(namedService("books"), "/books")

	response := dispatch(t, handler, "GET", "http://example.com/books", nil)

	if response.StatusCode != 200 {
		t.Errorf("the path component of an absolute URL must be matched, got %d", response.StatusCode)
	}
}
