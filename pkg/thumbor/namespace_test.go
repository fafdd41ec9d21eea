package thumbor_test

import (
	"errors"
	"testing"

	. "github.com/franela/goblin"
	"github.com/thebartekbanach/thumbgate/pkg/thumbor"
)

func TestNamespaceMatcher(t *testing.T) {
	g := Goblin(t)

	g.Describe("NamespaceMatcher", func() {
		g.Describe("regexp syntax", func() {
			g.It("Should match paths under anchored namespace", func() {
				matcher, err := thumbor.NewNamespaceMatcher(thumbor.NamespaceSyntaxRegexp, "^/thumbor")

				g.Assert(err).IsNil()
				g.Assert(matcher.Match("/thumbor")).IsTrue()
				g.Assert(matcher.Match("/thumbor/image")).IsTrue()
				g.Assert(matcher.Match("/app/thumbor")).IsFalse()
				g.Assert(matcher.Match("/")).IsFalse()
			})

			g.It("Should search anywhere in path when pattern is not anchored", func() {
				matcher, err := thumbor.NewNamespaceMatcher(thumbor.NamespaceSyntaxRegexp, "images")

				g.Assert(err).IsNil()
				g.Assert(matcher.Match("/api/images/1")).IsTrue()
				g.Assert(matcher.Match("/api/videos/1")).IsFalse()
			})

			g.It("Should default to regexp syntax", func() {
				matcher, err := thumbor.NewNamespaceMatcher("", `^/img/\d+$`)

				g.Assert(err).IsNil()
				g.Assert(matcher.Match("/img/42")).IsTrue()
				g.Assert(matcher.Match("/img/abc")).IsFalse()
			})

			g.It("Should return error for invalid pattern", func() {
				_, err := thumbor.NewNamespaceMatcher(thumbor.NamespaceSyntaxRegexp, "^/thumbor(")

				g.Assert(errors.Is(err, thumbor.ErrInvalidNamespacePattern)).IsTrue()
			})
		})

		g.Describe("glob syntax", func() {
			g.It("Should match whole path against glob", func() {
				matcher, err := thumbor.NewNamespaceMatcher(thumbor.NamespaceSyntaxGlob, "/thumbor/*")

				g.Assert(err).IsNil()
				g.Assert(matcher.Match("/thumbor/image")).IsTrue()
				g.Assert(matcher.Match("/thumbor/a/b")).IsTrue()
				g.Assert(matcher.Match("/thumbor")).IsFalse()
				g.Assert(matcher.Match("/app/thumbor/image")).IsFalse()
			})
		})

		g.It("Should return error for unknown syntax", func() {
			_, err := thumbor.NewNamespaceMatcher("wildcard", "/thumbor")

			g.Assert(errors.Is(err, thumbor.ErrUnknownNamespaceSyntax)).IsTrue()
		})
	})
}
