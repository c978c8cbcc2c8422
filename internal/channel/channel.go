/*
File    : minipar/internal/channel/channel.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package channel implements Minipar's socket-based channel values.
// Grounded on the teacher's main.go server/handleClient pair
// (net.Listen/net.Conn used as a REPL transport); here the same
// net primitives back s_channel/c_channel language values instead.
package channel

import (
	"bufio"
	"fmt"
	"net"
	"sync"

	"github.com/minipar-lang/minipar/internal/types"
)

// ClosedError is raised when an operation targets an already-closed
// channel or connection, per spec.md §4.5/§7.
type ClosedError struct{ What string }

func (e *ClosedError) Error() string { return "channel closed" }

// Conn wraps one accepted/connected socket with line-delimited framing
// and idempotent close, as required by spec.md §4.5.
type Conn struct {
	mu     sync.Mutex
	nc     net.Conn
	r      *bufio.Reader
	closed bool
}

func wrapConn(nc net.Conn) *Conn {
	return &Conn{nc: nc, r: bufio.NewReader(nc)}
}

// Type/String let an accepted connection flow through the evaluator
// as an ordinary value.Value (the result of accept(), passed to
// send/recv/close).
func (c *Conn) Type() types.Type { return types.C_CHANNEL }
func (c *Conn) String() string   { return fmt.Sprintf("<conn %s>", c.nc.RemoteAddr()) }

// Send appends a newline to s and writes it whole; the teacher's
// handleClient writes raw bytes the same way over net.Conn.
func (c *Conn) Send(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return &ClosedError{}
	}
	_, err := fmt.Fprintf(c.nc, "%s\n", s)
	return err
}

// Recv reads up to and including the next newline, stripping it.
func (c *Conn) Recv() (string, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return "", &ClosedError{}
	}
	line, err := c.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	return line, nil
}

// Close is idempotent: a second call is a no-op, per spec.md §5.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.nc.Close()
}

// Server is an s_channel: a bound listener. Connections it accepts are
// handed to the caller and are not tracked or closed by the Server.
type Server struct {
	mu       sync.Mutex
	Name     string
	listener net.Listener
	closed   bool
}

// NewServer binds a TCP listener at host:port. port "0" asks the OS
// for an ephemeral port, matching scenario 6's echo example.
func NewServer(name, host, port string) (*Server, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, err
	}
	return &Server{Name: name, listener: ln}, nil
}

func (s *Server) Type() types.Type { return types.S_CHANNEL }
func (s *Server) String() string   { return fmt.Sprintf("<s_channel %s %s>", s.Name, s.Addr()) }

// Addr reports the bound address, useful when port 0 was requested.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the numeric bound port.
func (s *Server) Port() int {
	if tcpAddr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return tcpAddr.Port
	}
	return 0
}

// Accept blocks for the next inbound connection.
func (s *Server) Accept() (*Conn, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, &ClosedError{}
	}
	nc, err := s.listener.Accept()
	if err != nil {
		return nil, err
	}
	return wrapConn(nc), nil
}

// Close stops accepting new connections. Idempotent.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.listener.Close()
}

// Client is a c_channel: a single outbound TCP connection.
type Client struct {
	Name string
	*Conn
}

// Dial connects a TCP client socket to host:port.
func Dial(name, host, port string) (*Client, error) {
	nc, err := net.Dial("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return nil, err
	}
	return &Client{Name: name, Conn: wrapConn(nc)}, nil
}

func (c *Client) Type() types.Type { return types.C_CHANNEL }
func (c *Client) String() string   { return fmt.Sprintf("<c_channel %s>", c.Name) }
