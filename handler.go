package wwwd

import (
	"os"
	"strconv"
	"strings"

	"github.com/edvnrs/wwwd/docroot"
	"github.com/edvnrs/wwwd/errpage"
	"github.com/edvnrs/wwwd/httpio"
	"github.com/edvnrs/wwwd/log"
)

// Handler answers one parsed request with one response. It holds no state
// between requests and is safe to reuse.
type Handler struct {
	Root     docroot.Dir
	Template errpage.Template
}

// NewHandler creates a Handler serving root, rendering error pages from
// the template asset at templatePath. Empty arguments select the defaults
// ("www" and "error_template.html").
func NewHandler(root docroot.Dir, templatePath string) *Handler {
	if root == "" {
		root = docroot.DefaultRoot
	}

	return &Handler{
		Root:     root,
		Template: errpage.Template{Path: templatePath},
	}
}

// Handle produces the response for one request. parseErr is the error
// returned by Request.Parse, treated as a malformed request.
func (h *Handler) Handle(req *httpio.Request, parseErr error) httpio.Response {
	if parseErr != nil || !req.Valid {
		return h.errorResponse(400, "Error 400: Bad Request")
	}

	if !strings.EqualFold(req.Method, "GET") {
		return h.errorResponse(405, "Error 405: Invalid Method")
	}

	concrete, err := h.Root.Resolve(req.Path)
	if err != nil {
		// Traversal is answered exactly like a missing file so the
		// filesystem layout is not leaked.
		return h.errorResponse(404, "Error 404: File not found")
	}

	info, err := os.Stat(concrete)
	if err != nil {
		return h.errorResponse(404, "Error 404: File not found")
	}

	if info.IsDir() {
		headers := httpio.NewHeaders()
		headers.Set("Location", req.Path+"/")
		return httpio.NewResponse(301, nil, headers)
	}

	if !info.Mode().IsRegular() || !h.Root.Inside(concrete) {
		return h.errorResponse(404, "Error 404: File not found")
	}

	body, err := h.Root.ReadFile(concrete)
	if err != nil {
		log.Error("reading", concrete, "failed:", err)
		return h.errorResponse(500, "Error 500: Internal Server Error")
	}

	headers := httpio.NewHeaders()
	headers.Set("Content-Length", strconv.Itoa(len(body)))
	headers.Set("Connection", "close")
	if ct := docroot.ContentType(concrete); ct != "" {
		headers.Set("Content-Type", ct)
	}

	return httpio.NewResponse(200, body, headers)
}

func (h *Handler) errorResponse(code int, message string) httpio.Response {
	return httpio.NewErrorResponse(code, h.Template.Render(message))
}
