// Package verifier runs the off-chain verification pipeline: watch the
// ledger for submitted proofs, fetch and normalize the proof content, obtain
// a score from the reasoning service and feed the verdict back through the
// oracle role.
package verifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"goalvault/internal/verifier/chain"
	"goalvault/internal/verifier/proofs"
	"goalvault/internal/verifier/scoring"
	"goalvault/pkg/logger"
	"goalvault/pkg/metrics"
)

// statusActive is the only goal status the verifier scores.
const statusActive = "active"

// Service coordinates the poll loop and the verification workers.
type Service struct {
	log     logger.Logger
	chain   chain.Client
	fetcher *proofs.Fetcher
	scorer  *scoring.Scorer
	signer  *Signer

	pollInterval time.Duration
	workerCount  int
	queueSize    int

	queue chan chain.ProofEvent

	mu       sync.Mutex
	inflight map[uint64]struct{}

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// New assembles a Service from options. Chain, fetcher and scorer are
// mandatory; the rest has sane defaults.
func New(opts ...Option) *Service {
	s := &Service{
		pollInterval: 3 * time.Second,
		workerCount:  4,
		queueSize:    1024,
		inflight:     map[uint64]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	s.queue = make(chan chain.ProofEvent, s.queueSize)
	return s
}

// Start launches the workers and the poll loop. It returns immediately;
// Stop blocks until everything drained.
func (s *Service) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	metrics.UpdateWorkerCount(s.workerCount)

	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.worker(ctx)
		}()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.pollLoop(ctx)
	}()

	s.log.Info(ctx, "verifier started",
		logger.Int("workers", s.workerCount),
		logger.Any("poll_interval", s.pollInterval))
	return nil
}

// Stop cancels the loops and waits for in-flight verifications to finish.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// pollLoop asks the chain for pending proofs on a fixed cadence and enqueues
// everything not already in flight.
func (s *Service) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	metrics.RecordPollCycle()

	events, err := s.chain.PendingProofs(ctx)
	if err != nil {
		s.log.Warn(ctx, "pending proofs poll failed", logger.Error(err))
		return
	}

	for _, ev := range events {
		if !s.claim(ev.GoalID) {
			continue
		}
		metrics.RecordProofSeen()
		select {
		case s.queue <- ev:
		default:
			// Queue full; release so the next poll retries the goal.
			s.release(ev.GoalID)
		}
	}
	metrics.UpdateQueueSize(len(s.queue))
}

// claim marks a goal as in flight; duplicates across poll cycles bounce here.
func (s *Service) claim(goalID uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[goalID]; ok {
		return false
	}
	s.inflight[goalID] = struct{}{}
	return true
}

func (s *Service) release(goalID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, goalID)
}

// worker drains the queue and verifies one goal at a time.
func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.queue:
			s.verify(ctx, ev)
		}
	}
}

// verify runs the full pipeline for one goal. Every exit path releases the
// goal id: terminal outcomes never come back from PendingProofs again, and
// transient failures should be retried on a later poll.
func (s *Service) verify(ctx context.Context, ev chain.ProofEvent) {
	defer s.release(ev.GoalID)

	corrID := uuid.NewString()
	log := s.log.Named("verify")

	g, err := s.chain.Goal(ctx, ev.GoalID)
	if err != nil {
		log.Warn(ctx, "goal read failed",
			logger.Uint64("goal", ev.GoalID),
			logger.String("corr", corrID),
			logger.Error(err))
		return
	}
	if g.Scored || g.Status != statusActive {
		log.Debug(ctx, "goal no longer scorable",
			logger.Uint64("goal", g.ID),
			logger.String("status", g.Status),
			logger.String("corr", corrID))
		return
	}

	fetchStart := time.Now()
	proofText, source, err := s.fetcher.Fetch(ctx, g.ProofRef)
	metrics.RecordFetchLatency(float64(time.Since(fetchStart).Milliseconds()))
	if err != nil {
		metrics.RecordProofFetchError()
		log.Warn(ctx, "proof fetch failed",
			logger.Uint64("goal", g.ID),
			logger.String("ref", g.ProofRef),
			logger.String("corr", corrID),
			logger.Error(err))
		return
	}
	metrics.RecordProofFetched()
	metrics.RecordProofFallback(source)

	scoreStart := time.Now()
	result := s.scorer.Score(ctx, g.Description, proofText)
	metrics.RecordScoringLatency(float64(time.Since(scoreStart).Milliseconds()))
	if result.Clamped {
		metrics.RecordScoreClamped()
	}
	if result.Zeroed {
		metrics.RecordScoreZeroed()
		log.Warn(ctx, "scorer response degraded to zero",
			logger.Uint64("goal", g.ID),
			logger.String("reason", result.Reason),
			logger.String("corr", corrID))
	}

	payload := s.signer.ScorePayload(g.ID, result.Score)

	submitStart := time.Now()
	err = s.chain.SubmitScore(ctx, payload)
	metrics.RecordSubmitLatency(float64(time.Since(submitStart).Milliseconds()))
	if err != nil {
		metrics.RecordVerdictError()
		log.Error(ctx, "score submission failed",
			logger.Uint64("goal", g.ID),
			logger.String("corr", corrID),
			logger.Error(err))
		return
	}

	metrics.RecordVerdictSent()
	log.Info(ctx, "goal scored",
		logger.Uint64("goal", g.ID),
		logger.Int("score", int(result.Score)),
		logger.String("source", source),
		logger.String("corr", corrID))
}
