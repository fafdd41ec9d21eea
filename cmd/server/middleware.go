package main

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/negroni"

	"github.com/thebartekbanach/thumbgate/pkg/logging"
)

const RequestIDHeader = "X-Request-Id"

// createAccessLogMiddleware logs every served request together with the
// status code the client received, including the ones synthesized by the
// interceptor. Request id is taken from the request or generated.
func createAccessLogMiddleware(serviceLogger *logging.ServiceLogger) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		lrw, ok := w.(negroni.ResponseWriter)
		if !ok {
			lrw = negroni.NewResponseWriter(w)
		}

		startedAt := time.Now()

		next(lrw, r)

		serviceLogger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lrw.Status()).
			Int("size", lrw.Size()).
			Dur("latency", time.Since(startedAt)).
			Msg("request served")
	}
}
