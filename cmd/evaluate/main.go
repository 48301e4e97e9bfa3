package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/database"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/adapters/search"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/evaluation"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/config"
)

func main() {
	var goldenPath string
	var minRecall, minMRR, minHitRate float64
	flag.StringVar(&goldenPath, "golden", "config/golden_queries.json", "path to the golden query set")
	flag.Float64Var(&minRecall, "min-recall", 0, "fail if avg recall@10 falls below this")
	flag.Float64Var(&minMRR, "min-mrr", 0, "fail if avg mrr@10 falls below this")
	flag.Float64Var(&minHitRate, "min-hit-rate", 0, "fail if the fraction of queries with hits falls below this")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Fatalf("Failed to connect to Typesense: %v", err)
	}

	schoolRepo := database.NewSchoolAdapter(pgClient)
	searchRepo := search.NewTypesenseAdapter(tsClient)
	schoolService := services.NewSchoolService(schoolRepo, searchRepo, nil)

	queries, err := evaluation.LoadGoldenQueries(goldenPath)
	if err != nil {
		log.Fatalf("Failed to load golden queries: %v", err)
	}
	if err := evaluation.ValidateGoldenQueries(queries); err != nil {
		log.Fatalf("Invalid golden queries: %v", err)
	}

	runner := evaluation.NewRunner(schoolService)
	summary, err := runner.Run(context.Background(), queries)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinAvgRecallAt10: minRecall,
		MinAvgMRRAt10:    minMRR,
		MinHitRate:       minHitRate,
	})
	if violations := guardrails.Check(summary); len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintln(os.Stderr, "guardrail violation:", v)
		}
		os.Exit(1)
	}
}
