// Package scoring turns proof text into a 0-100 score through a reasoning
// service HTTP boundary. The service is untrusted: whatever it answers is
// clamped into band, and a malformed or unreachable answer becomes a zero
// score with a diagnostic reason instead of an error.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"
)

// maxResponseBytes bounds how much of a scorer response we are willing to read.
const maxResponseBytes = 1 << 20

// Result is the scorer outcome submitted to the ledger.
type Result struct {
	Score   uint8
	Reason  string
	Clamped bool
	Zeroed  bool
}

// request is the JSON body sent to the reasoning service.
type request struct {
	Description string `json:"description"`
	Proof       string `json:"proof"`
}

// response is the JSON shape the reasoning service answers with.
type response struct {
	Score         *float64 `json:"score"`
	Justification string   `json:"justification"`
}

// Scorer calls the reasoning service.
type Scorer struct {
	url    string
	client *http.Client
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithTimeout bounds a single reasoning-service call.
func WithTimeout(d time.Duration) Option {
	return func(s *Scorer) {
		if d > 0 {
			s.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client, mostly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scorer) {
		if c != nil {
			s.client = c
		}
	}
}

// New creates a Scorer for the given endpoint.
func New(url string, opts ...Option) *Scorer {
	s := &Scorer{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score asks the reasoning service how well the proof matches the goal
// description. It never returns an error: every failure mode degrades to a
// zero score with the reason captured in the result.
func (s *Scorer) Score(ctx context.Context, description, proof string) Result {
	body, err := json.Marshal(request{Description: description, Proof: proof})
	if err != nil {
		return zeroed(fmt.Sprintf("encode scorer request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return zeroed(fmt.Sprintf("build scorer request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return zeroed(fmt.Sprintf("scorer unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zeroed(fmt.Sprintf("scorer returned status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return zeroed(fmt.Sprintf("read scorer response: %v", err))
	}

	return Parse(raw)
}

// Parse validates a raw scorer response. Exposed separately so the degraded
// paths are testable without HTTP.
func Parse(raw []byte) Result {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return zeroed(fmt.Sprintf("malformed scorer response: %v", err))
	}
	if resp.Score == nil {
		return zeroed("scorer response missing score")
	}

	val := *resp.Score
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return zeroed("scorer returned a non-finite score")
	}

	reason := strings.TrimSpace(resp.Justification)
	res := Result{Reason: reason}
	switch {
	case val < 0:
		res.Score = 0
		res.Clamped = true
	case val > 100:
		res.Score = 100
		res.Clamped = true
	default:
		res.Score = uint8(math.Round(val))
	}
	return res
}

func zeroed(reason string) Result {
	return Result{Score: 0, Reason: reason, Zeroed: true}
}
