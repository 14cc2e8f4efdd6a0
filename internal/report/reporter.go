// Package report renders a finished analysis into JSON, plain text, or
// CSV and writes it under the configured output directory.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stock-forensics/internal/types"
)

// Format specifies the output format for analysis reports.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
)

var extensions = map[Format]string{
	FormatJSON: "json",
	FormatText: "txt",
	FormatCSV:  "csv",
}

// Reporter renders and stores analysis reports.
type Reporter struct {
	outputDir string
}

// NewReporter creates a reporter writing under outputDir.
func NewReporter(outputDir string) *Reporter {
	return &Reporter{outputDir: outputDir}
}

// Generate renders the report in the given format.
func (r *Reporter) Generate(report *types.AnalysisReport, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return r.generateJSON(report)
	case FormatText:
		return r.generateText(report), nil
	case FormatCSV:
		return r.generateCSV(report), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// SaveReport renders the report and writes it to
// <SYMBOL>_forensic_<timestamp>.<ext> in the output directory, returning
// the path.
func (r *Reporter) SaveReport(report *types.AnalysisReport, format Format) (string, error) {
	content, err := r.Generate(report, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", err
	}

	ext, ok := extensions[format]
	if !ok {
		ext = string(format)
	}
	timestamp := report.Timestamp.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_forensic_%s.%s", report.Symbol, timestamp, ext)
	path := filepath.Join(r.outputDir, filename)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *Reporter) generateJSON(report *types.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reporter) generateText(report *types.AnalysisReport) string {
	var sb strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("STOCK FORENSIC ANALYSIS REPORT - %s\n", report.Symbol))
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Analysis Date: %s\n", report.Timestamp.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Overall Risk Level: %s\n", report.OverallRiskLevel))
	sb.WriteString(fmt.Sprintf("Overall Risk Score: %.2f\n", report.OverallRiskScore))
	sb.WriteString("\n")

	sb.WriteString("FORENSIC ANALYSIS\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Beneish M-Score: %s (%s)\n",
		scoreText(report.Forensic.MScore), report.Forensic.MScore.RiskLevel))
	sb.WriteString(fmt.Sprintf("Altman Z-Score: %s (%s)\n",
		scoreText(report.Forensic.ZScore), report.Forensic.ZScore.RiskLevel))
	sb.WriteString(fmt.Sprintf("Financial Red Flags: %d\n", report.Forensic.RedFlags.TotalFlags))
	for i, flag := range report.Forensic.RedFlags.Findings {
		sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s (%s)\n",
			i+1, flag.Severity, flag.Category, flag.Description, flag.Value))
	}
	sb.WriteString(fmt.Sprintf("Ownership: %s\n", report.Forensic.Ownership.Interpretation))
	sb.WriteString("\n")

	sb.WriteString("NEWS ANALYSIS\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Sentiment: %s (Score: %.2f)\n",
		report.News.Sentiment.Sentiment, report.News.Sentiment.Score))
	sb.WriteString(fmt.Sprintf("Articles Analyzed: %d\n", report.News.TotalArticles))
	sb.WriteString(fmt.Sprintf("High Risk Signals: %d\n", len(report.News.RiskSignals.HighRisk)))
	for _, critical := range report.News.CriticalNews {
		sb.WriteString(fmt.Sprintf("  ! %s [%s]\n", critical.Title, strings.Join(critical.Keywords, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString("PATTERN ANALYSIS\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Volume Spikes: %d (%s)\n",
		report.Patterns.VolumeSpikes.SpikesDetected, report.Patterns.VolumeSpikes.RiskLevel))
	sb.WriteString(fmt.Sprintf("Price Anomalies: %d (%s)\n",
		report.Patterns.PriceAnomalies.AnomaliesDetected, report.Patterns.PriceAnomalies.RiskLevel))
	sb.WriteString(fmt.Sprintf("Significant Gaps: %d (%d down)\n",
		report.Patterns.GapMoves.GapsDetected, report.Patterns.GapMoves.GapDownCount))
	sb.WriteString(fmt.Sprintf("Annualized Volatility: %.2f%% (%s)\n",
		report.Patterns.Volatility.AnnualizedVolatility, report.Patterns.Volatility.RiskLevel))
	if report.Patterns.Divergence.Detected {
		sb.WriteString(fmt.Sprintf("Divergence: %s\n", report.Patterns.Divergence.Interpretation))
	}
	sb.WriteString("\n")

	sb.WriteString(rule + "\n")
	return sb.String()
}

func (r *Reporter) generateCSV(report *types.AnalysisReport) string {
	var sb strings.Builder

	sb.WriteString("Symbol,Timestamp,OverallRiskScore,OverallRiskLevel,MScore,ZScore,RedFlagCount,NewsRiskScore,PatternRiskScore\n")
	sb.WriteString(fmt.Sprintf("%s,%s,%.2f,%s,%s,%s,%d,%.2f,%.2f\n\n",
		report.Symbol,
		report.Timestamp.Format("2006-01-02 15:04:05"),
		report.OverallRiskScore,
		report.OverallRiskLevel,
		scoreText(report.Forensic.MScore),
		scoreText(report.Forensic.ZScore),
		report.Forensic.RedFlags.TotalFlags,
		report.News.RiskSignals.RiskScore,
		report.Patterns.RiskScore))

	sb.WriteString("Category,Severity,Description,Value\n")
	for _, flag := range report.Forensic.RedFlags.Findings {
		sb.WriteString(fmt.Sprintf("%s,%s,\"%s\",%s\n",
			flag.Category,
			flag.Severity,
			strings.ReplaceAll(flag.Description, "\"", "\"\""),
			flag.Value))
	}
	return sb.String()
}

func scoreText(s types.ScoreResult) string {
	if s.Score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", *s.Score)
}
