// SPDX-License-Identifier: EPL-2.0

// Package server exposes conversions over HTTP.
//
//	POST /convert?format=wav&writer=midi&filters=seconds,min_duration:0.1
//	GET  /writers
//	GET  /formats
//
// The request body of /convert is the encoded audio. Every response carries
// an X-Request-Id header with the id used in the logs.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ik5/audnote"
	"github.com/ik5/audnote/audio"
	"github.com/ik5/audnote/event"
	"github.com/ik5/audnote/fault"
	"github.com/ik5/audnote/internal/codecs"
	"github.com/ik5/audnote/internal/settings"
)

const (
	DefaultMaxBody = 64 << 20
	DefaultWriter  = "json"

	RequestIDHeader = "X-Request-Id"
)

type ctxKey struct{}

type Options struct {
	// Base is copied for every request before query parameters apply. A
	// zero Base means audnote.DefaultConfig.
	Base audnote.Config
	// MaxBody limits the request body in bytes; 0 means DefaultMaxBody.
	MaxBody int64
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string

	Decoders *audio.Registry
	Writers  *event.WriterRegistry
	Logger   *zap.Logger
}

type Server struct {
	opts Options
	log  *zap.Logger
}

// New fills unset options with the codecs package registries.
func New(opts Options) *Server {
	if opts.MaxBody <= 0 {
		opts.MaxBody = DefaultMaxBody
	}
	if opts.Base.WindowSize == 0 {
		opts.Base = audnote.DefaultConfig()
	}
	if opts.Decoders == nil {
		opts.Decoders = codecs.Decoders()
	}
	if opts.Writers == nil {
		opts.Writers = codecs.Writers()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{opts: opts, log: log}
}

// Handler returns the routed handler wrapped with CORS and gzip.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID)
	r.HandleFunc("/convert", s.handleConvert).Methods(http.MethodPost)
	r.HandleFunc("/writers", s.handleList(s.opts.Writers.Names)).Methods(http.MethodGet)
	r.HandleFunc("/formats", s.handleList(s.opts.Decoders.Formats)).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(gzhttp.GzipHandler(r))
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)

		log := s.log.With(zap.String("request_id", id))
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(withLogger(r, log)))
		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) handleList(names func() []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(names()); err != nil {
			loggerFrom(r).Warn("writing response", zap.Error(err))
		}
	}
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	log := loggerFrom(r)
	q := r.URL.Query()

	name := q.Get("writer")
	if name == "" {
		name = DefaultWriter
	}
	wr, err := s.opts.Writers.Lookup(name)
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}

	format := q.Get("format")
	if format == "" {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: missing format parameter", fault.ErrInvalidInput))
		return
	}
	dec, ok := s.opts.Decoders.Get(format)
	if !ok {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: %q (known: %v)", audio.ErrUnknownFormat, format, s.opts.Decoders.Formats()))
		return
	}

	var cfg audnote.Config
	set, err := settings.FromQuery(q)
	if err == nil {
		cfg, err = set.Apply(s.opts.Base)
	}
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	cfg.Logger = log
	if err := cfg.Validate(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	src, err := dec.Decode(http.MaxBytesReader(w, r.Body, s.opts.MaxBody))
	if err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}
	defer src.Close()

	var buf bytes.Buffer
	if err := audnote.Convert(r.Context(), src, cfg, wr, &buf); err != nil {
		s.fail(w, r, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", codecs.ContentType(wr))
	n, err := buf.WriteTo(w)
	if err != nil {
		log.Warn("writing response", zap.Error(err))
		return
	}
	log.Info("converted", zap.String("writer", name), zap.String("format", format), zap.Int64("bytes", n))
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := loggerFrom(r)
	if status >= http.StatusInternalServerError {
		log.Error("conversion failed", zap.Error(err))
	} else {
		log.Info("request rejected", zap.Int("status", status), zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     err.Error(),
		RequestID: w.Header().Get(RequestIDHeader),
	})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, fault.ErrInvalidInput),
		errors.Is(err, fault.ErrInvalidConfiguration),
		errors.Is(err, fault.ErrUnit),
		errors.Is(err, fault.ErrRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
