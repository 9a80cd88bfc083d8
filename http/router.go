package http

import "regexp"

// Service handles one dispatched request. method is the request method,
// matches are the capture groups of the route pattern (group 0 excluded)
// and content is the raw request body. The returned bytes become the
// response body.
type Service interface {
	Handle(method string, matches []string, content []byte) []byte
}

// ServiceFunc adapts a function to the Service interface.
type ServiceFunc func(method string, matches []string, content []byte) []byte

func (f ServiceFunc) Handle(method string, matches []string, content []byte) []byte {
	return f(method, matches, content)
}

type serviceEntry struct {
	pattern *regexp.Regexp
	service Service
}

// ServiceRegistry is an ordered collection of (pattern, service) routes.
// Patterns are matched case-insensitively against the whole path, in
// registration order; the first full match wins regardless of
// specificity.
//
// The registry is meant to be populated before serving starts. Concurrent
// Match calls are safe; mutating the registry while it is being matched
// against is not supported.
type ServiceRegistry struct {
	entries []serviceEntry
}

// Add compiles pattern and appends the route. It returns false and leaves
// the registry unchanged when the pattern is not a valid regular
// expression.
func (r *ServiceRegistry) Add(service Service, pattern string) bool {
	re, err := regexp.Compile("(?i)^(?:" + pattern + ")$")
	if err != nil {
		return false
	}

	r.entries = append(r.entries, serviceEntry{pattern: re, service: service})
	return true
}

// Match returns the first registered service whose pattern fully matches
// path, along with the pattern's capture groups in left-to-right order.
// It returns (nil, nil) when no route matches.
func (r *ServiceRegistry) Match(path string) (Service, []string) {
	for _, entry := range r.entries {
		if m := entry.pattern.FindStringSubmatch(path); m != nil {
			return entry.service, m[1:]
		}
	}
	return nil, nil
}
