package thumbor

import (
	"net/http"
	"net/url"

	"github.com/urfave/negroni"
)

// Interceptor serves requests under the service namespace from the Thumbor
// service and hands everything else to the next handler. It keeps no
// per-request state, so a single instance serves concurrent requests.
type Interceptor struct {
	namespace NamespaceMatcher
	formats   map[string]string
	forwarder Forwarder
}

var _ negroni.Handler = (*Interceptor)(nil)

func NewInterceptor(config Config, forwarder Forwarder) (*Interceptor, error) {
	namespace, err := NewNamespaceMatcher(config.NamespaceSyntax, config.ServiceNamespace)
	if err != nil {
		return nil, err
	}

	formats := make(map[string]string, len(config.Formats))
	for name, dimensions := range config.Formats {
		formats[name] = dimensions
	}

	return &Interceptor{
		namespace: namespace,
		formats:   formats,
		forwarder: forwarder,
	}, nil
}

// IsThumborRequest reports whether request path is under the service namespace.
func (i *Interceptor) IsThumborRequest(r *http.Request) bool {
	return i.namespace.Match(r.URL.Path)
}

func (i *Interceptor) ServeHTTP(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	if !i.IsThumborRequest(r) {
		next(w, r)
		return
	}

	i.requestImage(w, r)
}

// Wrap returns http.Handler placing the interceptor in front of next.
// A nil next answers pass-through requests with 404.
func (i *Interceptor) Wrap(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.ServeHTTP(w, r, next.ServeHTTP)
	})
}

func (i *Interceptor) requestImage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := validateImageQuery(query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	translatedPath := TranslatePath(query, i.formats)
	outcome := i.forwarder.Forward(r.Context(), translatedPath)
	outcome.Write(w)
}

func validateImageQuery(query url.Values) error {
	if query.Get("url") == "" {
		return ErrURLParamNotIncluded
	}

	return nil
}
