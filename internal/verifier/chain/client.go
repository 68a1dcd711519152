// Package chain is the verifier's read/write boundary to the ledger
// contract. The node's RPC shape is kept behind a small interface so the
// service and its tests never touch HTTP directly.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxResponseBytes bounds how much of a node response we are willing to read.
const maxResponseBytes = 4 << 20

// ProofEvent is one proof-submitted event waiting for verification.
type ProofEvent struct {
	GoalID   uint64 `json:"goal_id"`
	ProofRef string `json:"proof_ref"`
}

// Goal mirrors the ledger's goal_get JSON view, trimmed to what the
// verifier needs.
type Goal struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
	Scored      bool   `json:"scored"`
	Description string `json:"description"`
	ProofRef    string `json:"proof_ref"`
}

// Client is the chain boundary the verifier service depends on.
type Client interface {
	// PendingProofs lists goals with submitted proofs that are not scored yet.
	PendingProofs(ctx context.Context) ([]ProofEvent, error)
	// Goal reads one goal through the ledger's goal_get export.
	Goal(ctx context.Context, id uint64) (*Goal, error)
	// SubmitScore calls score_set with an already built payload.
	SubmitScore(ctx context.Context, payload string) error
}

// HTTPClient talks to a chain node over its JSON gateway.
type HTTPClient struct {
	baseURL    string
	contractID string
	oracle     string
	client     *http.Client
}

// Option applies a configuration option to the HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds a single node call.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New creates a node client for one ledger contract. The oracle account is
// the identity the node signs score_set transactions with.
func New(baseURL, contractID, oracle string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		contractID: contractID,
		oracle:     oracle,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PendingProofs lists unscored goals with proofs from the node's event index.
func (c *HTTPClient) PendingProofs(ctx context.Context) ([]ProofEvent, error) {
	url := fmt.Sprintf("%s/contracts/%s/pending-proofs", c.baseURL, c.contractID)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var events []ProofEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("decode pending proofs: %w", err)
	}
	return events, nil
}

// Goal reads one goal through the goal_get export.
func (c *HTTPClient) Goal(ctx context.Context, id uint64) (*Goal, error) {
	url := fmt.Sprintf("%s/contracts/%s/read/goal_get?payload=%d", c.baseURL, c.contractID, id)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var g Goal
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, fmt.Errorf("decode goal: %w", err)
	}
	return &g, nil
}

// SubmitScore posts a score_set call. The node wallet signs the transaction
// with the configured oracle account.
func (c *HTTPClient) SubmitScore(ctx context.Context, payload string) error {
	url := fmt.Sprintf("%s/contracts/%s/call/score_set", c.baseURL, c.contractID)
	reqBody, err := json.Marshal(map[string]string{
		"account": c.oracle,
		"payload": payload,
	})
	if err != nil {
		return fmt.Errorf("encode score_set request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("build score_set request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit score_set: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("score_set rejected with status %d", resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("node request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("node returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}
