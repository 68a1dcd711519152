package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goalvault/internal/verifier"
	"goalvault/internal/verifier/chain"
	"goalvault/internal/verifier/config"
	"goalvault/internal/verifier/proofs"
	"goalvault/internal/verifier/scoring"
	"goalvault/pkg/logger"
	"goalvault/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	signer, err := verifier.NewSigner(cfg.OracleSeedHex)
	if err != nil {
		log.Fatal(ctx, "invalid oracle seed", logger.Error(err))
	}
	if pub := signer.PublicKeyHex(); pub != "" {
		log.Info(ctx, "signature admission mode", logger.String("oracle_pubkey", pub))
	}

	svc := verifier.New(
		verifier.WithLogger(log),
		verifier.WithChain(chain.New(cfg.ChainURL, cfg.ContractID, cfg.OracleAccount)),
		verifier.WithFetcher(proofs.New(cfg.GatewayURL,
			proofs.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond))),
		verifier.WithScorer(scoring.New(cfg.ScorerURL,
			scoring.WithTimeout(time.Duration(cfg.ScoreTimeoutMS)*time.Millisecond))),
		verifier.WithSigner(signer),
		verifier.WithPollInterval(time.Duration(cfg.PollIntervalMS)*time.Millisecond),
		verifier.WithWorkerCount(cfg.WorkerCount),
		verifier.WithQueueSize(cfg.QueueSize),
	)
	if err := svc.Start(ctx); err != nil {
		log.Fatal(ctx, "failed to start verifier", logger.Error(err))
	}
	defer svc.Stop()

	// HTTP mux for metrics and health.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down verifier...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "verifier stopped")
}
