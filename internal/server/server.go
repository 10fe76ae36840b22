package server

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/messages-api/internal/middleware"
	routes "github.com/oggyb/messages-api/internal/router"
)

// Server owns the underlying http.Server instance.
type Server struct {
	http *http.Server
}

// New creates a new HTTP server bound to the given address and configured
// with the provided application dependencies and middleware chain.
func New(addr string, deps routes.AppDeps) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           Handler(deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler builds the routed mux wrapped in the middleware chain.
func Handler(deps routes.AppDeps) http.Handler {
	mux := http.NewServeMux()
	routes.Register(mux, deps)

	return Chain(
		mux,
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recover(),
		middleware.CORS(),
	)
}

// Start runs the HTTP server and blocks until ListenAndServe returns.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests to complete until the given context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
