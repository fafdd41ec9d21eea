package thumbor

import "net/http"

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeConnectionRefused
	OutcomeTimeout
	OutcomeProtocolError
)

var synthesizedStatusCodes = map[OutcomeKind]int{
	OutcomeConnectionRefused: http.StatusBadGateway,
	OutcomeTimeout:           http.StatusRequestTimeout,
	OutcomeProtocolError:     http.StatusNotFound,
}

func (kind OutcomeKind) String() string {
	switch kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeConnectionRefused:
		return "connection refused"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeProtocolError:
		return "protocol error"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single forwarded request. Status, Header and
// Body are only set for OutcomeSuccess.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ResponseStatus returns the status code that will be sent to the caller.
func (o Outcome) ResponseStatus() int {
	if o.Kind == OutcomeSuccess {
		return o.StatusCode
	}

	if code, found := synthesizedStatusCodes[o.Kind]; found {
		return code
	}

	return http.StatusNotFound
}

// Write relays a successful remote response as is. Failures are written
// as their mapped status code with an empty body.
func (o Outcome) Write(w http.ResponseWriter) {
	if o.Kind != OutcomeSuccess {
		w.WriteHeader(o.ResponseStatus())
		return
	}

	header := w.Header()
	for key, values := range o.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}

	w.WriteHeader(o.StatusCode)
	w.Write(o.Body)
}

func failedOutcome(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind}
}
