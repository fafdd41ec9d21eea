package main

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/urfave/negroni"

	"github.com/thebartekbanach/thumbgate/pkg/config"
	"github.com/thebartekbanach/thumbgate/pkg/logging"
	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

// AppHandler serves every request the interceptor passes through.
type AppHandler http.Handler

func InitializeThumborConfig(serviceConfig config.Config) thumbor.Config {
	return serviceConfig.ThumborConfig()
}

func InitializeForwarder(thumborConfig thumbor.Config) thumbor.Forwarder {
	forwarder := thumbor.NewHTTPForwarder(thumborConfig)
	return &forwarder
}

// NewAppHandler proxies pass-through requests to the configured application
// backend, or answers them with 404 when no backend is configured.
func NewAppHandler(serviceConfig config.Config, serviceLogger *logging.ServiceLogger) AppHandler {
	if serviceConfig.AppBackendURL == nil {
		serviceLogger.Debug().Msg("no application backend configured, pass-through requests will get 404")
		return http.NotFoundHandler()
	}

	serviceLogger.Debug().Msgf("creating reverse proxy for application backend %s", serviceConfig.AppBackendURL)

	return httputil.NewSingleHostReverseProxy(serviceConfig.AppBackendURL)
}

func NewServiceMux(serviceLogger *logging.ServiceLogger, forwarder thumbor.Forwarder, appHandler AppHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthcheck", createHealthcheckHandler(serviceLogger, forwarder))
	mux.HandleFunc("/servicecheck", createServicecheckHandler(serviceLogger))
	mux.Handle("/", appHandler)

	return mux
}

// NewMiddlewareChain places access logging and panic recovery in front of
// the interceptor, which in turn sits in front of the service mux.
func NewMiddlewareChain(serviceLogger *logging.ServiceLogger, interceptor *thumbor.Interceptor, mux *http.ServeMux) *negroni.Negroni {
	recovery := negroni.NewRecovery()
	recovery.PrintStack = false

	chain := negroni.New(
		recovery,
		createAccessLogMiddleware(serviceLogger),
		interceptor,
	)
	chain.UseHandler(mux)

	return chain
}

func NewHTTPServer(serviceConfig config.Config, handler *negroni.Negroni) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", serviceConfig.ServicePort),
		Handler: handler,
	}
}
