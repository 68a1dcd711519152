// Package config defines verifier configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file and env vars on top.
package config

import "runtime"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for /metrics and /healthz.
	Addr string `koanf:"addr"`

	// ChainURL is the base URL of the chain node the verifier polls.
	ChainURL string `koanf:"chain_url"`

	// ContractID is the ledger contract the verifier watches and scores for.
	ContractID string `koanf:"contract_id"`

	// OracleAccount signs score_set transactions in caller admission mode.
	OracleAccount string `koanf:"oracle_account"`

	// OracleSeedHex is the hex ed25519 seed used in signature admission mode.
	// Empty means caller mode.
	OracleSeedHex string `koanf:"oracle_seed_hex"`

	// GatewayURL is the content gateway proof references resolve against.
	GatewayURL string `koanf:"gateway_url"`

	// ScorerURL is the reasoning-service endpoint returning 0-100 scores.
	ScorerURL string `koanf:"scorer_url"`

	// PollIntervalMS sets how often the chain is polled for proof events.
	PollIntervalMS int `koanf:"poll_interval_ms"`

	// WorkerCount sets the number of verification workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory verification queue.
	QueueSize int `koanf:"queue_size"`

	// FetchTimeoutMS bounds a single gateway fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// ScoreTimeoutMS bounds a single reasoning-service call.
	ScoreTimeoutMS int `koanf:"score_timeout_ms"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		ChainURL:       "http://localhost:8091",
		GatewayURL:     "http://localhost:8080/ipfs",
		ScorerURL:      "http://localhost:8092/score",
		PollIntervalMS: 3000,
		WorkerCount:    runtime.NumCPU() * 2,
		QueueSize:      1024,
		FetchTimeoutMS: 10_000,
		ScoreTimeoutMS: 30_000,
	}
}
