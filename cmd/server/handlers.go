package main

import (
	"fmt"
	"net/http"

	"github.com/thebartekbanach/thumbgate/pkg/logging"
	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

const thumborHealthcheckPath = "healthcheck"

// createHealthcheckHandler creates a health check handler function that
// will respond 200 ok if thumbor answers its own healthcheck endpoint
func createHealthcheckHandler(serviceLogger *logging.ServiceLogger, forwarder thumbor.Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceLogger.Debug().Msg("/healthcheck called")

		outcome := forwarder.Forward(r.Context(), thumborHealthcheckPath)
		if outcome.Kind != thumbor.OutcomeSuccess || outcome.StatusCode != http.StatusOK {
			serviceLogger.Error().
				Str("outcome", outcome.Kind.String()).
				Int("status", outcome.ResponseStatus()).
				Msg("thumbor healthcheck failed")

			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(fmt.Sprintf("thumbgate unable to reach thumbor: %s (%d)", outcome.Kind, outcome.ResponseStatus())))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("thumbgate is healthy"))
	}
}

// createServicecheckHandler creates a service check handler function that
// will respond 200 ok if the service is running
func createServicecheckHandler(serviceLogger *logging.ServiceLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceLogger.Debug().Msg("/servicecheck called")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("thumbgate is in service"))
	}
}
