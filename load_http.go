package markit

import (
	"context"
	"fmt"
	"net/http"
)

// LoadURLRequest configures LoadURL.
type LoadURLRequest struct {
	URL     string
	Client  *http.Client
	Options []Option
}

// LoadURL fetches a YAML document description over HTTP(S) and builds it
// with Load.
func LoadURL(ctx context.Context, req LoadURLRequest) (*Document, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("markit: load url: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("markit: load url: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("markit: load url: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("markit: load url: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("markit: load url: status %s", resp.Status)
	}
	return Load(resp.Body, req.Options...)
}
