package main

import (
	"context"
	"fmt"
	"log"

	"github.com/riskgauge/backend/internal/config"
	"github.com/riskgauge/backend/internal/database"
	"github.com/riskgauge/backend/internal/logger"
	"github.com/riskgauge/backend/internal/risk"
	"github.com/riskgauge/backend/internal/services"
	"github.com/riskgauge/backend/internal/store"
)

var demoRisks = []risk.Input{
	{Asset: "Marketing Site", Threat: "Defacement", Likelihood: 2, Impact: 2},
	{Asset: "Email Gateway", Threat: "Phishing", Likelihood: 4, Impact: 3},
	{Asset: "Login API", Threat: "Credential Stuffing", Likelihood: 3, Impact: 5},
	{Asset: "DB Server", Threat: "SQL Injection", Likelihood: 4, Impact: 5},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Init(cfg.Debug, nil)

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	riskStore := store.NewGormRiskStore(db)
	if err := riskStore.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	svc := services.NewRiskService(riskStore, cfg.StrictLevelFilter)
	for _, in := range demoRisks {
		r, err := svc.Assess(context.Background(), in)
		if err != nil {
			log.Fatalf("seed %q: %v", in.Asset, err)
		}
		fmt.Printf("✓ #%d %-16s score=%-2d %s\n", r.ID, r.Asset, r.Score, r.Level)
	}
}
