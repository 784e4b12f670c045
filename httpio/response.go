package httpio

import (
	"bytes"
	"fmt"
	"strconv"
)

// statusText maps the status codes this server produces to their reason
// phrases. Build panics on a code outside this set.
var statusText = map[int]string{
	200: "OK",
	301: "Moved Permanently",
	400: "Bad Request",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

// Response represents an outbound HTTP message.
type Response struct {
	// Code is the HTTP status code.
	Code int

	// Body is the raw response body, possibly empty.
	Body []byte

	// Headers are serialized in insertion order.
	Headers *Headers
}

// NewResponse creates a Response. A nil headers argument gets a freshly
// allocated Headers value; the headers are never shared between responses.
func NewResponse(code int, body []byte, headers *Headers) Response {
	if headers == nil {
		headers = NewHeaders()
	}

	return Response{
		Code:    code,
		Body:    body,
		Headers: headers,
	}
}

// NewErrorResponse creates an error Response whose body is an already
// rendered HTML error page. The page bytes come from the error template
// asset (see the errpage package).
func NewErrorResponse(code int, page []byte) Response {
	headers := NewHeaders()
	headers.Set("Content-Type", "text/html")
	headers.Set("Content-Length", strconv.Itoa(len(page)))
	headers.Set("Connection", "close")

	return Response{
		Code:    code,
		Body:    page,
		Headers: headers,
	}
}

// Build serializes the response into HTTP/1.1 wire format: status line,
// header lines in insertion order, a blank line, then the body, with CRLF
// line endings throughout.
func (r Response) Build() []byte {
	reason, ok := statusText[r.Code]
	if !ok {
		panic(fmt.Sprintf("httpio: no reason phrase for status code %d", r.Code))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "HTTP/1.1 %d %s\r\n", r.Code, reason)

	for _, name := range r.Headers.Keys() {
		value, err := r.Headers.Get(name)
		if err != nil {
			continue
		}

		fmt.Fprintf(&buf, "%s: %s\r\n", name, value)
	}

	buf.WriteString("\r\n")
	buf.Write(r.Body)

	return buf.Bytes()
}
