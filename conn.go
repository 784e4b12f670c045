package wwwd

import (
	"bytes"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/edvnrs/wwwd/docroot"
	"github.com/edvnrs/wwwd/httpio"
	"github.com/edvnrs/wwwd/log"
)

// Server defines configuration options for the HTTP server.
type Server struct {
	// InitialReadSize is the buffer size for reading the request head.
	InitialReadSize int

	// ReadDeadline bounds how long a connection may take to deliver its
	// request.
	ReadDeadline time.Duration

	// Root is the document root directory to serve.
	Root string

	// TemplatePath is the error page template asset.
	TemplatePath string
}

// DefaultBuffer is the default buffer size for reading from connections.
var DefaultBuffer = 8192

// DefaultReadDeadline is the default per-connection read deadline.
var DefaultReadDeadline = 10 * time.Second

// Run starts the server on the specified address and serves connections
// one at a time until the listener fails.
func Run(addr string, server ...Server) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	return Serve(listener, server...)
}

// Serve accepts connections from the listener and answers each one. The
// handler itself is stateless and reentrant; connections are handled
// sequentially here, one request per connection.
func Serve(listener net.Listener, server ...Server) error {
	var cfg Server
	if server != nil {
		cfg = server[0]
	}

	handler := NewHandler(docroot.Dir(cfg.Root), cfg.TemplatePath)
	log.Info("serving", string(handler.Root), "on", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}

		handleConn(conn, handler, cfg)
	}
}

// handleConn reads one request from the connection, answers it and closes.
func handleConn(conn net.Conn, handler *Handler, cfg Server) {
	defer conn.Close()

	id := uuid.NewString()

	deadline := cfg.ReadDeadline
	if deadline == 0 {
		deadline = DefaultReadDeadline
	}
	conn.SetDeadline(time.Now().Add(deadline))

	size := cfg.InitialReadSize
	if size == 0 {
		size = DefaultBuffer
	}

	buf := make([]byte, size)
	n, err := conn.Read(buf)
	if err != nil {
		log.Debug(id, "read failed:", err)
		return
	}

	raw := bytes.TrimSpace(buf[:n])
	if len(raw) == 0 {
		log.Debug(id, "empty request from", conn.RemoteAddr().String())
		return
	}

	req := httpio.NewRequest()
	parseErr := req.Parse(raw)

	log.Debug(id, conn.RemoteAddr().String(), "requested", req.Method, req.Path)

	res := handler.Handle(req, parseErr)
	if _, err := conn.Write(res.Build()); err != nil {
		log.Debug(id, "write failed:", err)
	}
}
