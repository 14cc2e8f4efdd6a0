package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"stock-forensics/internal/analysis"
	"stock-forensics/internal/datasource"
	"stock-forensics/internal/logger"
	"stock-forensics/internal/news"
	"stock-forensics/internal/report"
	"stock-forensics/internal/store"
	"stock-forensics/internal/trace"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "stock symbol to analyze (required)")
	format := flag.String("format", "text", "output format: text, json, or csv")
	outputFile := flag.String("output", "", "save report to file (optional)")
	offline := flag.Bool("offline", false, "force the static data source and skip news scraping")
	flag.Parse()

	if *symbol == "" {
		fmt.Println("Error: -symbol is required")
		flag.Usage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *offline {
		cfg.DataSource = "STATIC"
		cfg.News.Enabled = false
	}

	if err := logger.Init(); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Printf("Error initializing tracer: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer trace.Shutdown(ctx)

	source, err := datasource.New(cfg)
	if err != nil {
		fmt.Printf("Error creating data source: %v\n", err)
		os.Exit(1)
	}

	var newsService *news.Service
	if cfg.News.Enabled && cfg.DataSource == "LIVE" {
		newsService = news.NewService(cfg)
	}

	service := analysis.NewService(cfg, source, newsService)

	fmt.Printf("Starting forensic analysis for %s\n", *symbol)

	result, err := service.Analyze(ctx, *symbol)
	if err != nil {
		fmt.Printf("Error running analysis: %v\n", err)
		os.Exit(1)
	}

	reporter := report.NewReporter(cfg.Report.OutputDir)

	var reportFormat report.Format
	switch *format {
	case "json":
		reportFormat = report.FormatJSON
	case "csv":
		reportFormat = report.FormatCSV
	case "text":
		reportFormat = report.FormatText
	default:
		fmt.Printf("Unknown format: %s. Using text format.\n", *format)
		reportFormat = report.FormatText
	}

	content, err := reporter.Generate(result, reportFormat)
	if err != nil {
		fmt.Printf("Error generating report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(content)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(content), 0644); err != nil {
			fmt.Printf("Error saving report to file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to: %s\n", *outputFile)
	} else {
		savedPath, err := reporter.SaveReport(result, reportFormat)
		if err != nil {
			fmt.Printf("Warning: could not auto-save report: %v\n", err)
		} else {
			fmt.Printf("Report auto-saved to: %s\n", savedPath)
		}
	}

	fmt.Printf("\nAnalysis complete for %s\n", result.Symbol)
	fmt.Printf("Overall Risk Score: %.2f (%s)\n", result.OverallRiskScore, result.OverallRiskLevel)

	// Exit code 2 flags a high-risk result for scripted callers.
	if result.OverallRiskLevel == "HIGH" {
		os.Exit(2)
	}
}

// loadConfig falls back to the built-in defaults when the default config
// file is simply absent; an explicit path must exist.
func loadConfig(path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) && path == "config.yaml" {
			return store.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
