package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"example.com/insights/internal/config"
	"example.com/insights/internal/domain"
	"example.com/insights/internal/report"
	"example.com/insights/internal/snapshot"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using process environment")
	}
	cfg := config.Load()

	snap, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		log.Fatalf("failed to load snapshot: %v", err)
	}

	now := time.Now()
	anchor := now
	if cfg.AnchorDate != "" {
		anchor, err = domain.ParseDay(cfg.AnchorDate)
		if err != nil {
			log.Fatalf("invalid ANCHOR_DATE %q: %v", cfg.AnchorDate, err)
		}
	}

	summary := report.Build(snap, anchor, now)

	enc := json.NewEncoder(os.Stdout)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(summary); err != nil {
		log.Fatalf("failed to encode summary: %v", err)
	}
}
