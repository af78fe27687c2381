// @title Exam Ingest API
// @version 1.0
// @description Ingestion service for heterogeneous exam files.

// @host localhost:8080
// @BasePath /api

package main

import (
	"context"
	"exam_ingest_backend/internal/app"
	"exam_ingest_backend/internal/config"
	"exam_ingest_backend/pkg/logger"
	"flag"
	"fmt"
	"log"
)

func main() {
	ingestOnly := flag.Bool("ingest-only", false, "run a batch ingest over the configured directories, print the report and exit")
	ingest := flag.Bool("ingest", false, "run a batch ingest before starting the server")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.IngestOnStart = *ingest || *ingestOnly
	cfg.IngestOnly = *ingestOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if cfg.IngestOnStart {
		report, err := application.RunIngest(context.Background())
		if err != nil {
			log.Fatalf("Batch ingest failed: %v", err)
		}
		fmt.Println(report)
		if cfg.IngestOnly {
			return
		}
	}

	application.Run()
}
