package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/fatih/color"

	"github.com/wgomg/hunbatz/internal/analyzer"
	"github.com/wgomg/hunbatz/internal/api"
	"github.com/wgomg/hunbatz/internal/config"
	"github.com/wgomg/hunbatz/internal/extract"
	"github.com/wgomg/hunbatz/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := utils.NewLogger("error", false)
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.Validate(); err != nil {
		log := utils.NewLogger("error", cfg.App.RawBodyLog)
		log.Fatal("Invalid configuration:", err)
	}

	logger := utils.NewLogger(cfg.App.LogLevel, cfg.App.RawBodyLog)

	cache := utils.NewDocumentCache()
	extractor := extract.NewRouter(
		extract.NewFileExtractor(cfg.Extract.MaxFileSizeBytes),
		extract.NewHTTPExtractor(cfg, logger),
	)
	service := analyzer.NewService(logger, cache, extractor, cfg)

	command := "check"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "check":
		runCheck(service, cfg, args)
	case "matrix":
		runMatrix(service, args)
	case "serve":
		runServe(logger, service, cfg)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCheck(service *analyzer.Service, cfg *config.Config, args []string) {
	referencePath := cfg.Analysis.DefaultReference
	candidatePaths := []string{cfg.Analysis.DefaultCandidate}

	if len(args) == 1 {
		fmt.Println("Usage: hunbatz check <reference> <candidate>...")
		os.Exit(1)
	}
	if len(args) >= 2 {
		referencePath = args[0]
		candidatePaths = args[1:]
	}

	reference := extract.Source{Name: referencePath, Path: referencePath}
	candidates := make([]extract.Source, len(candidatePaths))
	for i, path := range candidatePaths {
		candidates[i] = extract.Source{Name: path, Path: path}
	}

	report, err := service.CheckAgainstReference(context.Background(), reference, candidates, "cli")
	if err != nil {
		fmt.Printf("Check failed: %v\n", err)
		os.Exit(1)
	}

	printFailures(report.Failures)

	if len(report.Results) == 1 {
		result := report.Results[0]
		fmt.Printf("Plagiarism detected: %.2f%% similarity\n", result.Score)
		fmt.Printf("  %s vs %s: %d words, %d unique, %d in common [%s]\n",
			result.Name, report.Reference.Name,
			result.WordCount, result.UniqueWordCount, result.CommonWordCount,
			colorBucket(result.Bucket))
		return
	}

	fmt.Printf("Reference: %s (%d words, %d unique)\n",
		report.Reference.Name, report.Reference.WordCount, report.Reference.UniqueWordCount)
	for i, result := range report.Results {
		fmt.Printf("%d. %s: %.2f%% [%s] (%d words, %d unique, %d common)\n",
			i+1, result.Name, result.Score, colorBucket(result.Bucket),
			result.WordCount, result.UniqueWordCount, result.CommonWordCount)
	}
}

func runMatrix(service *analyzer.Service, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: hunbatz matrix <file> <file>...")
		os.Exit(1)
	}

	sources := make([]extract.Source, len(args))
	for i, path := range args {
		sources[i] = extract.Source{Name: path, Path: path}
	}

	report, err := service.BuildMatrixFromSources(context.Background(), sources, "cli")
	if err != nil {
		fmt.Printf("Matrix build failed: %v\n", err)
		os.Exit(1)
	}

	printFailures(report.Failures)

	matrix := report.Matrix

	fmt.Println("Similarity matrix:")
	for i, row := range matrix.Matrix {
		fmt.Printf("  %s:", matrix.Names[i])
		for _, score := range row {
			fmt.Printf(" %6.2f", score)
		}
		fmt.Println()
	}

	fmt.Println("Per-document averages:")
	for i, document := range matrix.Documents {
		fmt.Printf("%d. %s: %.2f%% average [%s] (%d words, %d unique)\n",
			i+1, document.Name, document.AverageSimilarity, colorBucket(document.Bucket),
			document.WordCount, document.UniqueWordCount)
	}
}

func runServe(logger *utils.Logger, service *analyzer.Service, cfg *config.Config) {
	handler := api.NewHandler(logger, service, cfg)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Similarity Analysis Service is running\n")
	})

	api.RegisterRoutes(mux, handler)

	logger.Info(nil, "Starting Similarity Analysis Service")
	logger.Info(nil, "Environment: %s", cfg.App.Env)
	logger.Info(nil, "Log level: %s", cfg.App.LogLevel)
	logger.Info(nil, "Extraction workers: %d", cfg.Extract.WorkerCount)
	logger.Info(nil, "Starting server on port %s", cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	logger.Info(nil, "  GET  /health")
	logger.Info(nil, "  POST /compare")
	logger.Info(nil, "  POST /matrix")
	logger.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.App.ServerPort, api.WithRequestID(mux)))
}

func colorBucket(bucket string) string {
	switch bucket {
	case analyzer.BucketHigh:
		return color.RedString(bucket)
	case analyzer.BucketMedium:
		return color.YellowString(bucket)
	default:
		return color.GreenString(bucket)
	}
}

func printFailures(failures []analyzer.Failure) {
	for _, failure := range failures {
		fmt.Printf("Skipped %s: %s\n", failure.Name, failure.Message)
	}
}

func printUsage() {
	fmt.Println("hunbatz - document similarity checker")
	fmt.Println("Usage:")
	fmt.Println("  hunbatz check [reference candidate...]  # compare candidates against a reference")
	fmt.Println("  hunbatz matrix <file> <file>...         # all-pairs similarity matrix")
	fmt.Println("  hunbatz serve                           # run the HTTP service")
}
