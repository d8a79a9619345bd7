package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	diskvrepo "weightlog/internal/adapter/diskv"
	adapthttp "weightlog/internal/adapter/http"
	"weightlog/internal/adapter/memory"
	"weightlog/internal/adapter/postgres"
	"weightlog/internal/adapter/tui"
	"weightlog/internal/app"
	"weightlog/internal/config"
	"weightlog/internal/domain"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.weightlog.yaml)")
	runTUI := flag.Bool("tui", false, "run the terminal UI instead of the HTTP server")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer cleanup()

	journal := app.NewJournal(repo)
	journal.Load(context.Background())
	session := app.NewSession(journal)

	if *runTUI {
		if err := tui.Run(session, journal); err != nil {
			log.Fatal(err)
		}
		return
	}

	gesture := app.GestureConfig{
		DeadZone:       cfg.Gesture.DeadZone,
		MinDistance:    cfg.Gesture.MinDistance,
		MaxCrossTravel: cfg.Gesture.MaxCrossTravel,
		MaxDuration:    time.Duration(cfg.Gesture.MaxDurationMs) * time.Millisecond,
	}
	h := adapthttp.New(session, journal, gesture, cfg.WebDir).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func openRepository(cfg config.Config) (domain.EntryRepository, func(), error) {
	noop := func() {}
	switch cfg.Store {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, noop, errors.New("DATABASE_URL is required for the postgres store")
		}
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return db, func() { _ = db.Close() }, nil
	case "memory":
		return memory.New(), noop, nil
	case "diskv", "":
		return diskvrepo.New(cfg.DataDir), noop, nil
	default:
		return nil, noop, errors.New("unknown store: " + cfg.Store)
	}
}
