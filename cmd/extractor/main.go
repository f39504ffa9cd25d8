// Package main provides the extractor command-line tool, which parses a
// raw log source file and dumps the entries as JSON for inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"logscrub/internal/extractor"
)

func main() {
	inputPath := flag.String("input", "", "Path to source log file")
	outputPath := flag.String("output", "", "Path to output JSON file (stdout when empty)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: extractor -input <dirty_logs.txt> [-output <entries.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	entries, err := extractor.ExtractFile(*inputPath)
	if err != nil {
		log.Fatalf("Error extracting entries: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "📂 %s: %d raw entries\n", *inputPath, len(entries))

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding JSON: %v\n", err)
	}

	if *outputPath == "" {
		fmt.Println(string(data))
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0755); err != nil {
		log.Fatalf("Error creating directory: %v\n", err)
	}
	if err := os.WriteFile(*outputPath, data, 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote %s (%d bytes)\n", *outputPath, len(data))
}
