//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/google/wire"
	"github.com/thebartekbanach/thumbgate/pkg/config"
	"github.com/thebartekbanach/thumbgate/pkg/logging"
	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

func InitializeServer(serviceConfig config.Config, serviceLogger *logging.ServiceLogger) (*http.Server, error) {
	wire.Build(
		InitializeThumborConfig,
		InitializeForwarder,
		thumbor.NewInterceptor,

		NewAppHandler,
		NewServiceMux,
		NewMiddlewareChain,
		NewHTTPServer,
	)

	return &http.Server{}, nil
}
