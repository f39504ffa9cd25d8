// Package main provides the worker command that runs the full cleaning
// pipeline: extract the raw batch, clean it, and write the canonical CSV.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"logscrub/internal/config"
	"logscrub/internal/extractor"
	"logscrub/internal/formatter"
	"logscrub/internal/logger"
	"logscrub/internal/normalizer"
	"logscrub/internal/output"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional, defaults apply)")
	inputPath := flag.String("input", "", "Source log file (overrides config)")
	outputPath := flag.String("output", "", "Destination CSV file (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *inputPath != "" {
		cfg.Pipeline.InputPath = *inputPath
	}
	if *outputPath != "" {
		cfg.Pipeline.OutputPath = *outputPath
	}

	log := logger.NewLogger(cfg.Logging.Level).With("run_id", uuid.NewString())

	log.Info("🚀 Starting cleaning pipeline")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Pipeline.InputPath))
	log.Info(fmt.Sprintf("🎯 Target: %s", cfg.Pipeline.OutputPath))

	startTime := time.Now()

	// Phase 1: Extraction
	log.Info("Phase 1: Extraction (Loading raw entries)...")

	batch, err := extractor.ExtractFile(cfg.Pipeline.InputPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Extraction failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded %d raw entries in %v", len(batch), time.Since(startTime)))

	// Phase 2: Cleaning
	log.Info("Phase 2: Cleaning (Normalization & Validation)...")

	cleanStart := time.Now()

	processor := normalizer.NewProcessor(cfg.Pipeline.Rules, cfg.Features.StrictValidation, log)

	clean, err := processor.Run(batch)
	if err != nil {
		var integrity *normalizer.IntegrityError
		if errors.As(err, &integrity) {
			log.Error(fmt.Sprintf("❌ Integrity check failed: %v", integrity))
		} else {
			log.Error(fmt.Sprintf("❌ Cleaning failed: %v", err))
		}
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Cleaned %d → %d rows in %v", len(batch), len(clean), time.Since(cleanStart)))

	if cfg.Features.EnableCleaningPreview && len(clean) > 0 {
		fmt.Fprintln(os.Stderr, formatter.PreviewTable(clean, cfg.Pipeline.Rules.PreviewRows))
	}

	// Phase 3: Load
	log.Info("Phase 3: Load (Writing CSV)...")

	writer := output.NewWriter()
	if err := writer.WriteFile(cfg.Pipeline.OutputPath, clean); err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		os.Exit(1)
	}

	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Raw Entries:    %d\n", len(batch))
	fmt.Printf("Clean Rows:     %d\n", len(clean))
	fmt.Printf("Dropped:        %d\n", len(batch)-len(clean))
	fmt.Printf("Output:         %s\n", cfg.Pipeline.OutputPath)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
}
