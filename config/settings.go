// SPDX-License-Identifier: MIT

// Package config loads roughsurf settings from a JSON file. Values absent
// from the file keep their defaults; a missing file yields Default().
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/roughsurf/batch"
	"github.com/katalvlaran/roughsurf/encode"
	"github.com/katalvlaran/roughsurf/spectral"
	"github.com/katalvlaran/roughsurf/stream"
	"github.com/katalvlaran/roughsurf/surface"
)

// ErrInvalidSettings wraps every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// DefaultPath is the settings file looked up when none is given.
const DefaultPath = "settings.json"

// Settings is the full configuration.
type Settings struct {
	Transform string          `json:"transform"`
	Tolerance float64         `json:"tolerance"`
	Workers   int             `json:"workers"` // 0 = GOMAXPROCS
	RowPolicy string          `json:"rowPolicy"`
	DefaultN  int             `json:"defaultN"`
	Seed      int64           `json:"seed"`
	Encoder   EncoderSettings `json:"encoder"`
	Server    ServerSettings  `json:"server"`
	Log       LogSettings     `json:"log"`
}

// EncoderSettings configures the text encoder.
type EncoderSettings struct {
	Spaces int    `json:"spaces"`
	Scale  int    `json:"scale"`
	Method string `json:"method"`
}

// ServerSettings configures the WebSocket service.
type ServerSettings struct {
	Addr        string `json:"addr"`
	MaxN        int    `json:"maxN"`
	MaxInFlight int    `json:"maxInFlight"`
}

// LogSettings configures the slog handler.
type LogSettings struct {
	Level  string `json:"level"`  // debug|info|warn|error
	Format string `json:"format"` // text|json
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Transform: spectral.NameGonum,
		Tolerance: spectral.DefaultTolerance,
		RowPolicy: batch.AllRows.String(),
		DefaultN:  batch.DefaultN,
		Seed:      1,
		Encoder:   EncoderSettings{Spaces: 26, Scale: 0, Method: encode.Simple.String()},
		Server:    ServerSettings{Addr: ":8080", MaxN: stream.DefaultMaxN, MaxInFlight: stream.DefaultMaxInFlight},
		Log:       LogSettings{Level: "info", Format: "text"},
	}
}

// Load reads path over Default(). A missing file is not an error.
// Errors: decoding errors, ErrInvalidSettings.
func Load(path string) (Settings, error) {
	s := Default()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	if s, err = Decode(file); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Decode reads JSON settings from r over Default() and validates them.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}

	return s, s.Validate()
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
}

// Validate checks every field.
func (s Settings) Validate() error {
	if _, err := spectral.ByName(s.Transform); err != nil {
		return invalidf("transform %q", s.Transform)
	}
	if math.IsNaN(s.Tolerance) || math.IsInf(s.Tolerance, 0) || s.Tolerance <= 0 {
		return invalidf("tolerance %v must be finite and > 0", s.Tolerance)
	}
	if s.Workers < 0 {
		return invalidf("workers %d must be ≥ 0", s.Workers)
	}
	if _, err := batch.ParseRowPolicy(s.RowPolicy); err != nil {
		return invalidf("rowPolicy %q", s.RowPolicy)
	}
	if s.DefaultN < surface.MinN {
		return invalidf("defaultN %d must be ≥ %d", s.DefaultN, surface.MinN)
	}
	if _, err := s.NewEncoder(); err != nil {
		return invalidf("encoder: %v", err)
	}
	if strings.TrimSpace(s.Server.Addr) == "" {
		return invalidf("server.addr is empty")
	}
	if s.Server.MaxN < surface.MinN {
		return invalidf("server.maxN %d must be ≥ %d", s.Server.MaxN, surface.MinN)
	}
	if s.Server.MaxInFlight < 1 {
		return invalidf("server.maxInFlight %d must be ≥ 1", s.Server.MaxInFlight)
	}
	if _, err := s.Level(); err != nil {
		return invalidf("log.level %q", s.Log.Level)
	}
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		return invalidf("log.format %q", s.Log.Format)
	}

	return nil
}

// NewEncoder builds the configured encoder.
func (s Settings) NewEncoder() (*encode.Encoder, error) {
	m, err := encode.ParseMethod(s.Encoder.Method)
	if err != nil {
		return nil, err
	}

	return encode.NewEncoder(s.Encoder.Spaces, s.Encoder.Scale, m)
}

// Policy returns the parsed row policy.
func (s Settings) Policy() (batch.RowPolicy, error) { return batch.ParseRowPolicy(s.RowPolicy) }

// Level parses Log.Level.
func (s Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(s.Log.Level))

	return lvl, err
}

// NewLogger builds a slog.Logger writing to w in the configured format.
func (s Settings) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := s.Level()
	if err != nil {
		return nil, invalidf("log.level %q", s.Log.Level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(s.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// NewSynthesizer builds a Synthesizer with the configured transform and
// tolerance, logging to l (nil keeps the package logger).
func (s Settings) NewSynthesizer(l *slog.Logger) (*surface.Synthesizer, error) {
	t, err := spectral.ByName(s.Transform)
	if err != nil {
		return nil, invalidf("transform %q", s.Transform)
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	opts := []surface.Option{surface.WithTransform(t), surface.WithTolerance(s.Tolerance)}
	if l != nil {
		opts = append(opts, surface.WithLogger(l))
	}

	return surface.NewSynthesizer(opts...), nil
}

// RunnerOptions returns the batch options implied by s.
func (s Settings) RunnerOptions(l *slog.Logger) []batch.RunnerOption {
	opts := []batch.RunnerOption{batch.WithSeed(s.Seed)}
	if s.Workers > 0 {
		opts = append(opts, batch.WithWorkers(s.Workers))
	}
	if l != nil {
		opts = append(opts, batch.WithLogger(l))
	}

	return opts
}

// ServerOptions returns the stream options implied by s.
func (s Settings) ServerOptions(l *slog.Logger) []stream.Option {
	opts := []stream.Option{stream.WithMaxN(s.Server.MaxN), stream.WithMaxInFlight(s.Server.MaxInFlight)}
	if l != nil {
		opts = append(opts, stream.WithLogger(l))
	}

	return opts
}
