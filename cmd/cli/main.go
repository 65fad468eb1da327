package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"surveyscope/adapters/excel"
	"surveyscope/internal"
	"surveyscope/internal/config"
	"surveyscope/internal/report"
)

// The CLI runs the full analysis on one export and writes the markdown
// report to stdout or a file. Useful for batch runs without a server.
func main() {
	outPath := flag.String("o", "", "write the markdown report to this file instead of stdout")
	asJSON := flag.Bool("json", false, "emit the raw report JSON instead of markdown")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o report.md] [-json] <survey.xlsx|survey.csv>\n", os.Args[0])
		os.Exit(2)
	}
	filePath := flag.Arg(0)

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	table, err := excel.NewDataReader(filePath).ReadTable()
	if err != nil {
		log.Fatalf("Failed to read %s: %v", filePath, err)
	}

	service := report.NewService(cfg, logger)
	rep, err := service.Analyze(context.Background(), table)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	var output []byte
	if *asJSON {
		output, err = marshalReport(rep)
		if err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
	} else {
		output = []byte(report.RenderMarkdown(rep))
	}

	if *outPath == "" {
		fmt.Print(string(output))
		return
	}
	if err := os.WriteFile(*outPath, output, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	logger.Info("report written to %s", *outPath)
}

func marshalReport(rep *report.Report) ([]byte, error) {
	return json.MarshalIndent(rep, "", "  ")
}
