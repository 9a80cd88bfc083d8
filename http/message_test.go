package http

import (
	"bytes"
	"testing"
)

func TestMessageToBuffers(t *testing.T) {
	body := []byte(`{"title":"go"}`)

	msg := &Message{Method: "POST", URL: "/books"}
	msg.SetHost("example.com", "8080")
	msg.SetContent(ContentTypeJSONUTF8, body)
	msg.MakeStartLine()

	rendered := bytes.Join(msg.ToBuffers(), nil)

	expected := "POST /books HTTP/1.1\r\n" +
		"Host: example.com:8080\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"Content-Length: 14\r\n" +
		"\r\n" +
		`{"title":"go"}`

	if string(rendered) != expected {
		t.Errorf("rendered message mismatch:\nexpected: %q\nactual: %q", expected, rendered)
	}
}

func TestMessageToBuffersAliasesBody(t *testing.T) {
	body := []byte("payload")

	msg := &Message{Method: "PUT", URL: "/x"}
	msg.SetHost("localhost", "")
	msg.Body = body
	msg.MakeStartLine()

	buffers := msg.ToBuffers()
	last := buffers[len(buffers)-1]

	if &last[0] != &body[0] {
		t.Error("body view must alias the original storage, not copy it")
	}
}

func TestMessageDefaultPort(t *testing.T) {
	msg := &Message{Method: "GET", URL: "/"}
	msg.SetHost("example.com", "")

	if msg.Port() != "80" {
		t.Errorf("expected default port 80, got %q", msg.Port())
	}

	msg.MakeStartLine()
	rendered := bytes.Join(msg.ToBuffers(), nil)
	if !bytes.Contains(rendered, []byte("Host: example.com\r\n")) {
		t.Errorf("Host header must omit the default port: %q", rendered)
	}
}

func TestMessageSetHeaderReplaces(t *testing.T) {
	msg := &Message{Method: "POST", URL: "/books"}
	msg.SetHost("first.example.com", "")
	msg.SetHost("second.example.com", "9090")
	msg.SetContent(ContentTypeJSONUTF8, []byte("0123456789"))
	msg.SetContent(ContentTypeTextUTF8, []byte("xy"))
	msg.MakeStartLine()

	rendered := bytes.Join(msg.ToBuffers(), nil)

	for _, name := range []string{"Host:", "Content-Type:", "Content-Length:"} {
		if n := bytes.Count(rendered, []byte(name)); n != 1 {
			t.Errorf("expected exactly one %s line, got %d:\n%q", name, n, rendered)
		}
	}

	if !bytes.Contains(rendered, []byte("Host: second.example.com:9090\r\n")) {
		t.Errorf("Host header not replaced: %q", rendered)
	}
	if !bytes.Contains(rendered, []byte("Content-Length: 2\r\n")) {
		t.Errorf("Content-Length header not replaced: %q", rendered)
	}
}

func TestMessageMakeStartLineRecomposes(t *testing.T) {
	msg := &Message{Method: "GET", URL: "/old"}
	msg.MakeStartLine()

	msg.URL = "/new"
	msg.MakeStartLine()

	rendered := bytes.Join(msg.ToBuffers(), nil)
	if !bytes.HasPrefix(rendered, []byte("GET /new HTTP/1.1\r\n")) {
		t.Errorf("start line not recomposed: %q", rendered)
	}
}
