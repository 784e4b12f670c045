package httpio

import (
	"strings"
)

// Request represents a parsed HTTP request head.
type Request struct {
	// Method is the HTTP method (e.g., GET).
	Method string

	// Path is the request path as sent by the client, not yet resolved
	// against the document root.
	Path string

	// Version is the HTTP version token (e.g., HTTP/1.1). It is recorded
	// but not enforced.
	Version string

	// Headers stores the request headers in original casing.
	Headers *Headers

	// Valid is false when the start line could not be split into exactly
	// three tokens. Method, Path and Version are unset in that case.
	Valid bool
}

// NewRequest creates an empty Request ready for Parse.
func NewRequest() *Request {
	return &Request{
		Headers: NewHeaders(),
	}
}

// Parse fills the request from the raw bytes of one inbound message.
//
// The start line must split into exactly three space-separated tokens,
// otherwise the request is marked invalid and no further fields are set.
// Header lines follow until the first blank line or the end of input; a
// body, if present, is never consumed. A header line without a ": "
// separator aborts parsing with ErrInvalidHeader.
func (r *Request) Parse(raw []byte) error {
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	parts := strings.Split(lines[0], " ")
	if len(parts) != 3 {
		return nil
	}

	r.Method = parts[0]
	r.Path = parts[1]
	r.Version = parts[2]
	r.Valid = true

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if line == "" {
			break
		}

		name, value, found := strings.Cut(line, ": ")
		if !found {
			return ErrInvalidHeader
		}

		r.Headers.Set(name, value)
	}

	return nil
}
