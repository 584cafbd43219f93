package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 60
	defaultReadTimeout     = time.Second * 60
	defaultWriteTimeout    = time.Second * 60
	defaultIdleTimeout     = time.Second * 120
)

var (
	ErrAlreadyStarted = errors.New("http server: already started")
	ErrNotListening   = errors.New("http server: not listening")
)

type config struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
	readyCallback   func(net.Addr)
}

type Option func(*config)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.shutdownTimeout = timeout
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.readTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = timeout
	}
}

func WithIdleTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.idleTimeout = timeout
	}
}

func WithHandler(handler http.Handler) Option {
	return func(c *config) {
		c.handler = handler
	}
}

// WithReadySignal sets a callback invoked with the bound address
// as soon as the server is ready to accept connections.
func WithReadySignal(cb func(net.Addr)) Option {
	return func(c *config) {
		c.readyCallback = cb
	}
}

type Server struct {
	addr   *net.TCPAddr
	cfg    config
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
	started  bool
}

func New(addr string, opts ...Option) (*Server, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http server: resolve %s: %w", addr, err)
	}

	cfg := config{
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		idleTimeout:     defaultIdleTimeout,
		shutdownTimeout: defaultShutdownTimeout,
		handler:         http.NotFoundHandler(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		addr: tcpAddr,
		cfg:  cfg,
		server: &http.Server{
			Handler:           cfg.handler,
			ReadTimeout:       cfg.readTimeout,
			ReadHeaderTimeout: cfg.readTimeout,
			WriteTimeout:      cfg.writeTimeout,
			IdleTimeout:       cfg.idleTimeout,
		},
	}, nil
}

func (s *Server) listen() (net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil, ErrAlreadyStarted
	}

	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("http server: listen %s: %w", s.addr, err)
	}
	s.listener = listener
	s.started = true

	return listener, nil
}

// Start binds the listener and serves in the background.
// It returns once the server is accepting connections,
// after which the returned channel reports the outcome of serving.
func (s *Server) Start(ctx context.Context) (<-chan error, error) {
	listener, err := s.listen()
	if err != nil {
		return nil, err
	}

	if s.cfg.readyCallback != nil {
		s.cfg.readyCallback(listener.Addr())
	}

	exited := make(chan error, 1)
	go func() {
		defer close(exited)
		if serveErr := s.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			exited <- fmt.Errorf("http server: serve %s: %w", listener.Addr(), serveErr)
		}
	}()

	if ctx.Err() != nil {
		s.server.Close() // nolint: errcheck
		return nil, ctx.Err()
	}

	return exited, nil
}

// ListenAddr is the address the server is bound to.
// With port 0 it reveals the port picked by the system.
func (s *Server) ListenAddr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

// Stop waits for active connections to finish within the shutdown timeout.
// Stopping a server that has never been started is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}

	stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}

	return nil
}
