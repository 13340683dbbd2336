package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/pkg/errors"
)

// Server is a bound, serving HTTP listener.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	done       chan error
}

// Start binds :port on all interfaces and begins serving h in the
// background. A bind failure is returned as a *BindError and nothing is
// left running.
func Start(port int, h http.Handler) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, errors.WithStack(&BindError{Port: port, Err: err})
	}

	s := &Server{
		httpServer: &http.Server{Handler: h},
		listener:   lis,
		done:       make(chan error, 1),
	}
	go func() {
		s.done <- s.httpServer.Serve(lis)
	}()
	return s, nil
}

// Port reports the port the listener is bound to.
func (s *Server) Port() int {
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Wait blocks until the server stops serving.
func (s *Server) Wait() error {
	return <-s.done
}

// Close stops the listener and drops open connections.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
