package markit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc.yaml":
			_, _ = w.Write([]byte("blocks:\n  - heading: Remote\n  - list:\n      items: [a, {items: [b]}]\n"))
		case "/binary.yaml":
			_, _ = w.Write([]byte{'b', 0x00})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	doc, err := LoadURL(context.Background(), LoadURLRequest{
		URL:     srv.URL + "/doc.yaml",
		Client:  srv.Client(),
		Options: []Option{WithIndent("  ")},
	})
	if err != nil {
		t.Fatalf("load url: %v", err)
	}
	if got := doc.Render(); got != "\n# Remote\n\n\n- a\n  - b\n" {
		t.Fatalf("got %q", got)
	}

	if _, err := LoadURL(context.Background(), LoadURLRequest{URL: srv.URL + "/missing"}); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := LoadURL(context.Background(), LoadURLRequest{URL: srv.URL + "/binary.yaml"}); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestLoadURLRejectsBadRequests(t *testing.T) {
	if _, err := LoadURL(context.Background(), LoadURLRequest{}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if _, err := LoadURL(context.Background(), LoadURLRequest{URL: "ftp://example.com/doc.yaml"}); err == nil ||
		!strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}
