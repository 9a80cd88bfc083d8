package http

import (
	"reflect"
	"testing"
)

func namedService(name string) Service {
	return ServiceFunc(func(method string, matches []string, content []byte) []byte {
		return []byte(name)
	})
}

func serviceName(s Service) string {
	if s == nil {
		return ""
	}
	return string(s.Handle("", nil, nil))
}

func TestRegistryCaptureGroups(t *testing.T) {
	var registry ServiceRegistry

	if !registry.Add(namedService("users"), "/users/([0-9]+)") {
		t.Fatal("register failed")
	}

	service, matches := registry.Match("/users/42")
	if serviceName(service) != "users" {
		t.Fatal("expected the users service")
	}
	if !reflect.DeepEqual(matches, []string{"42"}) {
		t.Errorf("expected captures [42], got %v", matches)
	}

	if service, _ := registry.Match("/users/abc"); service != nil {
		t.Error("non-numeric id must not match")
	}
}

func TestRegistryFirstRegisteredWins(t *testing.T) {
	var registry ServiceRegistry

	registry.Add(namedService("wildcard"), "/a.*")
	registry.Add(namedService("exact"), "/ab")

	service, _ := registry.Match("/ab")
	if serviceName(service) != "wildcard" {
		t.Errorf("expected the first registered route to win, got %q", serviceName(service))
	}
}

func TestRegistryInvalidPattern(t *testing.T) {
	var registry ServiceRegistry

	registry.Add(namedService("ok"), "/ok")

	if registry.Add(namedService("broken"), "/users/([0-9]+") {
		t.Error("invalid pattern must not register")
	}

	// The failed Add must leave existing routes untouched.
	service, _ := registry.Match("/ok")
	if serviceName(service) != "ok" {
		t.Error("registry was disturbed by a failed Add")
	}
	if len(registry.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(registry.entries))
	}
}

func TestRegistryFullMatchOnly(t *testing.T) {
	var registry ServiceRegistry

	registry.Add(namedService("books"), "/books")

	if service, _ := registry.Match("/books/42"); service != nil {
		t.Error("pattern must match the whole path, not a prefix")
	}
	if service, _ := registry.Match("x/books"); service != nil {
		t.Error("pattern must match the whole path, not a substring")
	}
}

func TestRegistryCaseInsensitive(t *testing.T) {
	var registry ServiceRegistry

	registry.Add(namedService("books"), "/Books")

	service, _ := registry.Match("/books")
	if serviceName(service) != "books" {
		t.Error("matching must be case-insensitive")
	}
}

func TestRegistryNoMatch(t *testing.T) {
	var registry ServiceRegistry

	service, matches := registry.Match("/anything")
	if service != nil || matches != nil {
		t.Error("empty registry must not match")
	}
}

func TestRegistryMultipleCaptures(t *testing.T) {
	var registry ServiceRegistry

	registry.Add(namedService("nested"), "/shops/([0-9]+)/books/([a-z]+)")

	_, matches := registry.Match("/shops/7/books/go")
	if !reflect.DeepEqual(matches, []string{"7", "go"}) {
		t.Errorf("expected captures [7 go], got %v", matches)
	}
}
