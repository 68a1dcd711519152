package proofs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"goalvault/internal/verifier/proofs"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExtract(t *testing.T) {
	Convey("Given payloads in various shapes", t, func() {
		Convey("When the payload has a proof field", func() {
			text, source := proofs.Extract([]byte(`{"proof": "strava export", "content": "ignored"}`))

			Convey("Then proof wins the precedence", func() {
				So(text, ShouldEqual, "strava export")
				So(source, ShouldEqual, proofs.SourceProof)
			})
		})

		Convey("When only content is present", func() {
			text, source := proofs.Extract([]byte(`{"content": "  a photo  ", "description": "ignored"}`))

			Convey("Then content is used, trimmed", func() {
				So(text, ShouldEqual, "a photo")
				So(source, ShouldEqual, proofs.SourceContent)
			})
		})

		Convey("When only description is present", func() {
			text, source := proofs.Extract([]byte(`{"description": "wrote a blog post"}`))

			So(text, ShouldEqual, "wrote a blog post")
			So(source, ShouldEqual, proofs.SourceDescription)
		})

		Convey("When the proof field is empty", func() {
			text, source := proofs.Extract([]byte(`{"proof": "   ", "content": "fallback"}`))

			Convey("Then the precedence walk continues", func() {
				So(text, ShouldEqual, "fallback")
				So(source, ShouldEqual, proofs.SourceContent)
			})
		})

		Convey("When the payload is not JSON", func() {
			text, source := proofs.Extract([]byte("  plain text proof\n"))

			Convey("Then the raw bytes are used, trimmed", func() {
				So(text, ShouldEqual, "plain text proof")
				So(source, ShouldEqual, proofs.SourceRaw)
			})
		})

		Convey("When the payload is a JSON object without known fields", func() {
			_, source := proofs.Extract([]byte(`{"other": 42}`))

			So(source, ShouldEqual, proofs.SourceRaw)
		})
	})
}

func TestFetch(t *testing.T) {
	Convey("Given a content gateway", t, func() {
		ctx := context.Background()

		Convey("When the reference resolves", func() {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"proof": "did the thing"}`))
			}))
			defer srv.Close()

			text, source, err := proofs.New(srv.URL).Fetch(ctx, "bafyproof")

			Convey("Then the proof text comes back extracted", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/bafyproof")
				So(text, ShouldEqual, "did the thing")
				So(source, ShouldEqual, proofs.SourceProof)
			})
		})

		Convey("When the gateway 404s", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			_, _, err := proofs.New(srv.URL).Fetch(ctx, "bafymissing")

			Convey("Then the fetch errors so the caller can retry later", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "status 404")
			})
		})

		Convey("When the gateway is unreachable", func() {
			_, _, err := proofs.New("http://127.0.0.1:1").Fetch(ctx, "bafyproof")

			So(err, ShouldNotBeNil)
		})
	})
}
