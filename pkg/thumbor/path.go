package thumbor

import (
	"net/url"
	"strings"
)

const (
	actionResize = "resize"
	actionClip   = "clip"

	fitInSegment = "fit-in"
	smartSegment = "smart"
)

// TranslatePath converts the url, format, action and smart query params
// into a Thumbor path. The result has no leading slash and never contains
// empty segments.
func TranslatePath(query url.Values, formats map[string]string) string {
	requestedURL := url.QueryEscape(query.Get("url"))
	requestedFormat := formats[query.Get("format")]

	smart := smartSegment
	if query.Get("smart") == "false" {
		smart = ""
	}

	switch query.Get("action") {
	case actionResize:
		return joinSegments(fitInSegment, requestedFormat, requestedURL)
	case actionClip:
		return joinSegments(requestedFormat, smart, requestedURL)
	default:
		return requestedURL
	}
}

func joinSegments(segments ...string) string {
	present := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			present = append(present, segment)
		}
	}

	return strings.Join(present, "/")
}
