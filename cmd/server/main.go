// package main reads & validates configuration for the thumbgate service
// and if the config is valid starts an http server with the thumbor
// interceptor in front of the application handler
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thebartekbanach/thumbgate/pkg/config"
	"github.com/thebartekbanach/thumbgate/pkg/logging"
)

func main() {
	serviceConfig := config.ReadConfig()

	err := config.Validate(serviceConfig)

	if err != nil {
		panic(err)
	}

	serviceLogger, err := logging.New(serviceConfig.LogLevel)

	if err != nil {
		panic(err)
	}

	serviceLogger.Debug().Msgf("initial config: %+v", serviceConfig)

	server, err := InitializeServer(serviceConfig, &serviceLogger)

	if err != nil {
		serviceLogger.Panic().Err(err).Msg("unable to initialize server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			serviceLogger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	serviceLogger.Info().Str("addr", server.Addr).Msg("listening")

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		serviceLogger.Fatal().Err(err).Msg("server stopped")
	}
}
