package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/arabic-nlp/atbtag"
	"github.com/arabic-nlp/atbtag/util"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Service wires a tag decoder behind a JSON REST API.
type Service struct {
	config  util.Config
	decoder *atbtag.Decoder
	logger  zerolog.Logger
	server  *http.Server

	// docs is the usage page, rendered to HTML once at startup.
	docs []byte
}

// NewService returns a service instance with the provided config and
// decoder.
func NewService(config util.Config, decoder *atbtag.Decoder, logger zerolog.Logger) (*Service, error) {
	docs, err := renderDocs()
	if err != nil {
		return nil, fmt.Errorf("render docs: %w", err)
	}

	service := &Service{
		config:  config,
		decoder: decoder,
		logger:  logger,
		docs:    docs,
	}

	server := &http.Server{
		Addr:              config.HTTPServerAddress,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	server.Handler = service.routes()
	service.server = server

	return service, nil
}

// routes builds the HTTP router and its middleware chain. The access-log
// middleware sits outermost so CORS preflights are logged too.
func (service *Service) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/decode/batch", service.handleDecodeBatch)
	mux.HandleFunc("/api/decode", service.handleDecode)
	mux.HandleFunc("/api/normalize", service.handleNormalize)
	mux.HandleFunc("/api/tagset", service.handleTagset)
	mux.HandleFunc("/healthz", service.handleHealthz)
	mux.HandleFunc("/", service.handleDocs)

	c := cors.New(cors.Options{
		AllowedOrigins: service.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return service.withAccessLog(c.Handler(mux))
}

// Start runs the HTTP server.
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

// Shutdown stops the HTTP server, waiting for in-flight requests until
// ctx expires.
func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
