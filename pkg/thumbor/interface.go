package thumbor

import (
	"context"
	"errors"
	"time"
)

type Config struct {
	ServiceNamespace string
	NamespaceSyntax  NamespaceSyntax
	BaseURL          string
	Formats          map[string]string
	Timeout          time.Duration
}

type NamespaceMatcher interface {
	Match(requestPath string) bool
}

//go:generate mockgen -destination=mocks/mock_forwarder.go -package=mock_thumbor github.com/thebartekbanach/thumbgate/pkg/thumbor Forwarder

// Forwarder sends translated path to the remote service and never fails,
// every transport error is folded into the returned Outcome.
type Forwarder interface {
	Forward(ctx context.Context, translatedPath string) Outcome
}

var (
	ErrURLParamNotIncluded     = errors.New("url param not included")
	ErrInvalidNamespacePattern = errors.New("invalid service namespace pattern")
	ErrUnknownNamespaceSyntax  = errors.New("unknown service namespace syntax")
)
