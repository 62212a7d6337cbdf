// SPDX-License-Identifier: MIT

package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/roughsurf/codec"
	"github.com/katalvlaran/roughsurf/surface"
)

// ErrTooLarge rejects requests above the configured N limit.
var ErrTooLarge = errors.New("stream: grid too large")

// Server answers synthesis requests over WebSocket.
type Server struct {
	synth    *surface.Synthesizer
	upgrader websocket.Upgrader
	logger   *slog.Logger
	maxN     int
	inFlight int
	clients  atomic.Int64
}

// NewServer builds a Server around synth (nil selects a default
// Synthesizer).
func NewServer(synth *surface.Synthesizer, opts ...Option) *Server {
	if synth == nil {
		synth = surface.NewSynthesizer()
	}
	s := &Server{
		synth: synth,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger:   surface.NopLogger(),
		maxN:     DefaultMaxN,
		inFlight: DefaultMaxInFlight,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Clients returns the number of open connections.
func (s *Server) Clients() int { return int(s.clients.Load()) }

// Handler routes /ws to the WebSocket endpoint and /healthz to a liveness
// probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return mux
}

// ListenAndServe serves Handler on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", slog.String("addr", addr))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// session owns one connection; mu serializes writes.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *session) send(resp Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(resp)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", slog.Any("err", err))
		return
	}
	defer conn.Close()

	s.clients.Add(1)
	defer s.clients.Add(-1)
	log := s.logger.With(slog.String("remote", r.RemoteAddr))
	log.Info("client connected")

	sess := &session{conn: conn}
	// sem bounds the requests synthesized at once; a full sem stalls reads.
	sem := make(chan struct{}, s.inFlight)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read failed", slog.Any("err", err))
			} else {
				log.Info("client disconnected")
			}
			return
		}

		var req Request
		if err = json.Unmarshal(msg, &req); err != nil {
			if err = sess.send(errorResponse(fmt.Errorf("stream: bad request: %w", err))); err != nil {
				return
			}
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			resp := s.handle(req)
			if resp.Type == TypeError {
				log.Warn("request failed", slog.String("err", resp.Error))
			}
			if err := sess.send(resp); err != nil {
				log.Warn("write failed", slog.Any("err", err))
			}
		}()
	}
}

// handle synthesizes one request into a response.
func (s *Server) handle(req Request) Response {
	p := req.Parameters()
	if p.N > s.maxN {
		return errorResponse(fmt.Errorf("%w: N=%d > %d", ErrTooLarge, p.N, s.maxN))
	}
	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f, err := s.synth.Generate(p, rng)
	if err != nil {
		return errorResponse(err)
	}
	st := f.Stats()

	return Response{
		Type:    TypeSurface,
		Header:  codec.TokenHeader(p, codec.WithSideLengthHeader()),
		N:       f.N(),
		Heights: f.Rows(),
		Stats:   &Stats{Mean: st.Mean, RMS: st.RMS, StdDev: st.StdDev, Min: st.Min, Max: st.Max},
	}
}
