package verifier

import (
	"time"

	"goalvault/internal/verifier/chain"
	"goalvault/internal/verifier/proofs"
	"goalvault/internal/verifier/scoring"
	"goalvault/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithChain sets the chain client.
func WithChain(c chain.Client) Option {
	return func(s *Service) {
		s.chain = c
	}
}

// WithFetcher sets the proof fetcher.
func WithFetcher(f *proofs.Fetcher) Option {
	return func(s *Service) {
		s.fetcher = f
	}
}

// WithScorer sets the reasoning-service client.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		s.scorer = sc
	}
}

// WithSigner sets the payload signer.
func WithSigner(sig *Signer) Option {
	return func(s *Service) {
		s.signer = sig
	}
}

// WithPollInterval sets the chain poll cadence.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// WithWorkerCount sets the number of verification workers.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithQueueSize bounds the in-memory verification queue.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}
