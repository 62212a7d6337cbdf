// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"
	"log/slog"
	"net/http"
)

const (
	// DefaultMaxN caps the grid size a client may request.
	DefaultMaxN = 1024
	// DefaultMaxInFlight caps the requests one connection has in synthesis.
	DefaultMaxInFlight = 4
)

// Option customizes a Server.
type Option func(*Server)

// WithLogger routes connection diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("stream: WithLogger(nil)")
	}
	return func(s *Server) { s.logger = l }
}

// WithMaxN sets the largest accepted N (≥ surface.MinN). Panics otherwise.
func WithMaxN(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("stream: WithMaxN(%d)", n))
	}
	return func(s *Server) { s.maxN = n }
}

// WithMaxInFlight sets how many requests per connection are synthesized
// concurrently (≥ 1). Further messages are not read until one completes.
// Panics otherwise.
func WithMaxInFlight(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("stream: WithMaxInFlight(%d)", n))
	}
	return func(s *Server) { s.inFlight = n }
}

// WithCheckOrigin replaces the origin check. The default accepts any origin.
func WithCheckOrigin(fn func(r *http.Request) bool) Option {
	return func(s *Server) { s.upgrader.CheckOrigin = fn }
}
