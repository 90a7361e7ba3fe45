package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "complyscore/internal/adapters/http"
	pg "complyscore/internal/adapters/postgres"
	"complyscore/internal/config"
	ports "complyscore/internal/ports"
	adminsvc "complyscore/internal/services/admin"
	assesssvc "complyscore/internal/services/assessments"
	rollupworker "complyscore/internal/workers/rollup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required for Postgres adapters")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := pg.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	// Wire repositories to services (ports)
	var _ ports.ReportRepository = db
	var _ ports.RollupRepository = db
	var _ ports.JobRepository = db

	assessments := assesssvc.New(db, db)
	admin := adminsvc.New(db, db)

	srv := httpadapter.New(assessments, admin)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	// Optional background rollup workers
	if cfg.RollupWorkers > 0 {
		processor := rollupworker.RefreshProcessor{Rollups: db}
		go rollupworker.Run(ctx, db, processor, cfg.RollupWorkers, 500*time.Millisecond)
		log.Printf("rollup workers started: %d", cfg.RollupWorkers)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s", cfg.ListenAddr)

	// graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		cancel()
		time.Sleep(300 * time.Millisecond)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
