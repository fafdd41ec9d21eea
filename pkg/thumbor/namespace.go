package thumbor

import (
	"fmt"
	"regexp"

	"github.com/ryanuber/go-glob"
)

type NamespaceSyntax string

const (
	NamespaceSyntaxRegexp NamespaceSyntax = "regexp"
	NamespaceSyntaxGlob   NamespaceSyntax = "glob"
)

type regexpNamespace struct {
	pattern *regexp.Regexp
}

var _ NamespaceMatcher = (*regexpNamespace)(nil)

func (ns *regexpNamespace) Match(requestPath string) bool {
	return ns.pattern.MatchString(requestPath)
}

type globNamespace struct {
	pattern string
}

var _ NamespaceMatcher = (*globNamespace)(nil)

func (ns *globNamespace) Match(requestPath string) bool {
	return glob.Glob(ns.pattern, requestPath)
}

// NewNamespaceMatcher compiles pattern according to syntax. An empty syntax
// defaults to regexp. Regexp patterns match anywhere in the path unless
// anchored.
func NewNamespaceMatcher(syntax NamespaceSyntax, pattern string) (NamespaceMatcher, error) {
	switch syntax {
	case "", NamespaceSyntaxRegexp:
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidNamespacePattern, err)
		}

		return &regexpNamespace{compiled}, nil
	case NamespaceSyntaxGlob:
		return &globNamespace{pattern}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownNamespaceSyntax, syntax)
}
