package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"github.com/jdray/lineup-stats/internal/config"
	"github.com/jdray/lineup-stats/internal/fixtures"
	"github.com/jdray/lineup-stats/internal/lineups"
	"github.com/jdray/lineup-stats/internal/pipeline"
	"github.com/jdray/lineup-stats/internal/store"
	"github.com/jdray/lineup-stats/internal/table"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx := context.Background()

	docs, err := fixtures.LoadRounds(cfg.FixturesDir, cfg.FirstRound, cfg.LastRound)
	if err != nil {
		log.Fatalf("load fixture listings: %v", err)
	}
	idx, err := fixtures.BuildIndex(docs)
	if err != nil {
		log.Fatalf("build fixture index: %v", err)
	}
	ids, err := fixtures.MatchIDs(docs)
	if err != nil {
		log.Fatalf("collect match ids: %v", err)
	}
	log.Printf("OK fixtures: %d entries, %d match ids across rounds %d-%d",
		len(idx), len(ids), cfg.FirstRound, cfg.LastRound)

	client := lineups.NewClient(cfg.BaseURL, cfg.HTTPTimeout)
	records := pipeline.Run(ctx, client, ids, idx, pipeline.Options{
		DelayMin: time.Duration(cfg.DelayMinMs) * time.Millisecond,
		DelayMax: time.Duration(cfg.DelayMaxMs) * time.Millisecond,
	})

	tbl, err := table.Assemble(records)
	if err != nil {
		if errors.Is(err, table.ErrNoRecords) {
			log.Printf("no player records produced; skipping CSV creation")
			return
		}
		log.Fatalf("assemble: %v", err)
	}

	var buf bytes.Buffer
	if err := table.WriteCSV(&buf, tbl); err != nil {
		log.Fatalf("render csv: %v", err)
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("write %s: %v", cfg.OutputPath, err)
	}
	log.Printf("OK csv: %d rows, %d columns into %s", len(tbl.Rows), len(tbl.Columns), cfg.OutputPath)

	if cfg.S3Bucket == "" && cfg.RecordsTable == "" {
		return
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}
	if cfg.S3Bucket != "" {
		key := cfg.S3Key
		if key == "" {
			key = filepath.Base(cfg.OutputPath)
		}
		if err := store.UploadCSV(ctx, s3.NewFromConfig(awsCfg), cfg.S3Bucket, key, buf.Bytes()); err != nil {
			log.Fatalf("upload csv: %v", err)
		}
		log.Printf("OK upload: s3://%s/%s", cfg.S3Bucket, key)
	}
	if cfg.RecordsTable != "" {
		if err := store.PutRecords(ctx, dynamodb.NewFromConfig(awsCfg), cfg.RecordsTable, records); err != nil {
			log.Fatalf("store records: %v", err)
		}
		log.Printf("OK store: %d records into %s", len(records), cfg.RecordsTable)
	}
}
