package httpio

import (
	"errors"
	"strings"
)

// Predefined errors for header and request handling.
var (
	// ErrNotExist is returned when a requested value does not exist.
	ErrNotExist = errors.New("value does not exist")

	// ErrAlreadyExists is returned when attempting to add a value that already exists.
	ErrAlreadyExists = errors.New("value already exists")

	// ErrInvalidHeader is returned when an invalid header format is encountered.
	ErrInvalidHeader = errors.New("invalid header in request")
)

// Headers is an ordered collection of HTTP headers. Names are stored exactly
// as given; lookups are case-insensitive per RFC 2616. Insertion order is
// preserved and is the order headers are serialized in.
type Headers struct {
	keys   []string
	values map[string]string
}

// NewHeaders returns an empty Headers value with its own freshly allocated
// storage.
func NewHeaders() *Headers {
	return &Headers{values: make(map[string]string)}
}

// lookup returns the stored key matching name, case-insensitively.
func (h *Headers) lookup(name string) (string, bool) {
	if _, ok := h.values[name]; ok {
		return name, true
	}

	for _, k := range h.keys {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}

	return "", false
}

// Add inserts a new header. If a header with the same name (in any casing)
// already exists, an error is returned.
func (h *Headers) Add(name, value string) error {
	if _, ok := h.lookup(name); ok {
		return ErrAlreadyExists
	}

	h.keys = append(h.keys, name)
	h.values[name] = value
	return nil
}

// Get retrieves a header value by name.
//
// If the header does not exist, an error is returned.
func (h *Headers) Get(name string) (string, error) {
	k, ok := h.lookup(name)
	if !ok {
		return "", ErrNotExist
	}

	return h.values[k], nil
}

// Set updates an existing header in place or appends a new one.
func (h *Headers) Set(name, value string) {
	if k, ok := h.lookup(name); ok {
		h.values[k] = value
		return
	}

	h.keys = append(h.keys, name)
	h.values[name] = value
}

// Del removes a header.
//
// If the header does not exist, an error is returned.
func (h *Headers) Del(name string) error {
	k, ok := h.lookup(name)
	if !ok {
		return ErrNotExist
	}

	delete(h.values, k)
	for i, key := range h.keys {
		if key == k {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of stored headers.
func (h *Headers) Len() int {
	return len(h.keys)
}

// Keys returns the header names in insertion order.
func (h *Headers) Keys() []string {
	keys := make([]string, len(h.keys))
	copy(keys, h.keys)
	return keys
}
