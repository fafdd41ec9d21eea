package thumbor

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

type httpRequestFunc func(req *http.Request) (*http.Response, error)

type HTTPForwarder struct {
	baseURL     string
	timeout     time.Duration
	makeRequest httpRequestFunc
}

var _ Forwarder = (*HTTPForwarder)(nil)

// NewHTTPForwarder creates forwarder that opens a fresh connection for
// every call. Redirects and content encodings are passed back untouched.
func NewHTTPForwarder(config Config) HTTPForwarder {
	client := &http.Client{
		Transport: &http.Transport{
			Proxy:              http.ProxyFromEnvironment,
			DisableKeepAlives:  true,
			DisableCompression: true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return newHTTPForwarder(config, client.Do)
}

func newHTTPForwarder(config Config, makeRequest httpRequestFunc) HTTPForwarder {
	return HTTPForwarder{
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		timeout:     config.Timeout,
		makeRequest: makeRequest,
	}
}

func (f *HTTPForwarder) Forward(ctx context.Context, translatedPath string) Outcome {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.TargetURI(translatedPath), nil)
	if err != nil {
		return failedOutcome(classifyTransportError(err))
	}

	response, err := f.makeRequest(req)
	if err != nil {
		return failedOutcome(classifyTransportError(err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return failedOutcome(classifyTransportError(err))
	}

	return Outcome{
		Kind:       OutcomeSuccess,
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       body,
	}
}

// TargetURI joins base URL and translated path with a single slash.
func (f *HTTPForwarder) TargetURI(translatedPath string) string {
	return f.baseURL + "/" + translatedPath
}

func classifyTransportError(err error) OutcomeKind {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return OutcomeConnectionRefused
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return OutcomeTimeout
	}

	return OutcomeProtocolError
}
