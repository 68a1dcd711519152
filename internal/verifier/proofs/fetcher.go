// Package proofs fetches and normalizes proof payloads from the content
// gateway. Payloads arrive in whatever shape the submitting client produced,
// so extraction walks a fixed precedence of fields before giving up and
// using the raw bytes.
package proofs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxProofBytes bounds how much of a gateway response we are willing to read.
const maxProofBytes = 1 << 20

// Extraction sources, in precedence order.
const (
	SourceProof       = "proof"
	SourceContent     = "content"
	SourceDescription = "description"
	SourceRaw         = "raw"
)

// Fetcher resolves proof references against a content gateway.
type Fetcher struct {
	gatewayURL string
	client     *http.Client
}

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds a single gateway fetch.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client, mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// New creates a Fetcher for the given gateway base URL.
func New(gatewayURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch resolves the reference and returns the extracted proof text together
// with the source field it came from.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (string, string, error) {
	url := f.gatewayURL + "/" + strings.TrimLeft(ref, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", fmt.Errorf("build gateway request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("gateway fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProofBytes))
	if err != nil {
		return "", "", fmt.Errorf("read gateway response: %w", err)
	}

	text, source := Extract(body)
	return text, source, nil
}

// Extract pulls the proof text out of a payload. Structured payloads are
// preferred: proof, then content, then description. Anything that is not a
// JSON object, or an object without those fields, degrades to the raw bytes.
func Extract(payload []byte) (string, string) {
	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err == nil {
		for _, key := range []string{SourceProof, SourceContent, SourceDescription} {
			if v, ok := fields[key].(string); ok {
				if text := strings.TrimSpace(v); text != "" {
					return text, key
				}
			}
		}
	}
	return strings.TrimSpace(string(payload)), SourceRaw
}
