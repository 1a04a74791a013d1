// Command server exposes the ATB tag decoder as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/decode?tag=<tag>
//	POST /api/decode/batch     body: {"tags":["..."]}
//	GET  /api/normalize?tag=<tag>
//	GET  /api/tagset
//	GET  /healthz
//	GET  /                     usage page (HTML)
//
// Configuration comes from app.env in the working directory, overridable
// through environment variables of the same names.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arabic-nlp/atbtag"
	"github.com/arabic-nlp/atbtag/api"
	"github.com/arabic-nlp/atbtag/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// catching interrupt signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	decoder, err := newDecoder(config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load tagset")
	}

	waitGroup, ctx := errgroup.WithContext(ctx)

	runHTTPServer(ctx, waitGroup, config, decoder)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

// newDecoder builds the decoder from TAGSET_DIR, falling back to the
// embedded tagset when the directory is not configured.
func newDecoder(config util.Config) (*atbtag.Decoder, error) {
	if config.TagsetDir == "" {
		return atbtag.NewDecoder(), nil
	}

	tagset, err := atbtag.LoadTagset(config.TagsetDir)
	if err != nil {
		return nil, err
	}
	log.Info().Str("dir", config.TagsetDir).Msg("loaded tagset from directory")
	return atbtag.NewDecoderWithTagset(tagset), nil
}

func runHTTPServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	decoder *atbtag.Decoder,
) {
	service, err := api.NewService(config, decoder, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("cannot create HTTP service")
		return
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", config.HTTPServerAddress)

		err := service.Start()

		if err != nil {
			// http.ErrServerClosed is returned once the server begins
			// shutting down, which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		timeout := config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		toCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := service.Shutdown(toCtx)
		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		log.Info().Msg("server is stopped")

		return err
	})
}
