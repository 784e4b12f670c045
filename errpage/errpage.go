// Package errpage renders the HTML body of error responses from an
// on-disk template asset.
package errpage

import (
	"fmt"
	"os"

	"github.com/edvnrs/wwwd/log"
)

// DefaultPath is the template asset loaded when no path is configured.
const DefaultPath = "error_template.html"

// fallback is used when the template asset cannot be read, so error
// responses never fail to render.
const fallback = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body><h1>%s</h1></body>
</html>
`

// Template renders error pages from the HTML file at Path. The file is a
// format string with two placeholders, both filled with the same message.
type Template struct {
	Path string
}

// Render loads the template asset and interpolates the message into it.
// The asset is read fresh on every call; it is not cached.
func (t Template) Render(message string) []byte {
	p := t.Path
	if p == "" {
		p = DefaultPath
	}

	b, err := os.ReadFile(p)
	if err != nil {
		log.Warn("error template unavailable, using fallback:", err)
		return []byte(fmt.Sprintf(fallback, message, message))
	}

	return []byte(fmt.Sprintf(string(b), message, message))
}
