package news

import (
	"testing"

	"stock-forensics/internal/types"
)

func TestAnalyzeSentimentBalancedBatch(t *testing.T) {
	articles := []types.NewsArticle{
		{Title: "Strong growth and record profit beat expectations"},
		{Title: "Fraud investigation and lawsuit announced"},
		{Title: "Company holds annual meeting"},
	}

	result := NewAnalyzer(articles).AnalyzeSentiment()

	if result.PositiveCount != 1 || result.NegativeCount != 1 || result.NeutralCount != 1 {
		t.Fatalf("Expected 1/1/1 split, got %d/%d/%d",
			result.PositiveCount, result.NegativeCount, result.NeutralCount)
	}
	if result.Score != 0 {
		t.Errorf("Expected score 0, got %f", result.Score)
	}
	if result.Sentiment != "NEUTRAL" {
		t.Errorf("Expected NEUTRAL, got %s", result.Sentiment)
	}
	if result.TotalArticles != 3 {
		t.Errorf("Expected 3 articles counted, got %d", result.TotalArticles)
	}
}

func TestAnalyzeSentimentEmptyBatch(t *testing.T) {
	result := NewAnalyzer(nil).AnalyzeSentiment()
	if result.Sentiment != "NEUTRAL" || result.Score != 0 || result.TotalArticles != 0 {
		t.Errorf("Expected neutral zero-value result, got %+v", result)
	}
}

func TestDetectRiskSignalsHighRiskArticle(t *testing.T) {
	// "fraud" and "lawsuit" are two high-risk hits over two articles:
	// score = 2*0.5/2 = 0.5, and any high-risk article forces HIGH.
	articles := []types.NewsArticle{
		{Title: "Fraud lawsuit filed against company"},
		{Title: "Company announces quarterly dividend"},
	}

	result := NewAnalyzer(articles).DetectRiskSignals()

	if len(result.HighRisk) != 1 {
		t.Fatalf("Expected 1 high-risk article, got %d", len(result.HighRisk))
	}
	if len(result.HighRisk[0].Keywords) != 2 {
		t.Errorf("Expected 2 matched keywords, got %v", result.HighRisk[0].Keywords)
	}
	if result.RiskScore != 0.5 {
		t.Errorf("Expected risk score 0.5, got %f", result.RiskScore)
	}
	if result.RiskLevel != types.RiskHigh {
		t.Errorf("Expected HIGH risk, got %s", result.RiskLevel)
	}
}

func TestDetectRiskSignalsMediumOnly(t *testing.T) {
	// "warning" lands in the medium bucket; a 0.3 score and a single
	// medium article stay below both MEDIUM conditions.
	articles := []types.NewsArticle{
		{Title: "Profit warning issued"},
	}

	result := NewAnalyzer(articles).DetectRiskSignals()

	if len(result.HighRisk) != 0 {
		t.Errorf("Expected no high-risk articles, got %d", len(result.HighRisk))
	}
	if len(result.MediumRisk) != 1 {
		t.Fatalf("Expected 1 medium-risk article, got %d", len(result.MediumRisk))
	}
	if result.RiskScore != 0.3 {
		t.Errorf("Expected risk score 0.3, got %f", result.RiskScore)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk at the boundary, got %s", result.RiskLevel)
	}
}

func TestDetectRiskSignalsMostSevereBucketOnly(t *testing.T) {
	// An article matching both tiers lands only in the high bucket.
	articles := []types.NewsArticle{
		{Title: "Fraud probe triggers regulatory warning"},
	}

	result := NewAnalyzer(articles).DetectRiskSignals()

	if len(result.HighRisk) != 1 {
		t.Errorf("Expected 1 high-risk article, got %d", len(result.HighRisk))
	}
	if len(result.MediumRisk) != 0 {
		t.Errorf("Expected the medium bucket to stay empty, got %d", len(result.MediumRisk))
	}
}

func TestDetectRiskSignalsEmptyBatch(t *testing.T) {
	result := NewAnalyzer(nil).DetectRiskSignals()
	if result.RiskScore != 0 || result.RiskLevel != types.RiskLow {
		t.Errorf("Expected zero LOW result, got %+v", result)
	}
}

func TestKeyTopics(t *testing.T) {
	articles := []types.NewsArticle{
		{Title: "Earnings beat", Description: "Earnings rose as earnings guidance improved"},
	}

	topics := NewAnalyzer(articles).KeyTopics(5)

	if len(topics) == 0 {
		t.Fatal("Expected at least one topic")
	}
	if topics[0].Topic != "earnings" || topics[0].Frequency != 3 {
		t.Errorf("Expected 'earnings' with frequency 3 first, got %+v", topics[0])
	}
}

func TestCriticalNews(t *testing.T) {
	articles := []types.NewsArticle{
		{Title: "Company files for bankruptcy", URL: "https://example.com/a"},
		{Title: "New plant opens"},
	}

	critical := NewAnalyzer(articles).CriticalNews()

	if len(critical) != 1 {
		t.Fatalf("Expected 1 critical article, got %d", len(critical))
	}
	if critical[0].Severity != types.RiskHigh {
		t.Errorf("Expected HIGH severity, got %s", critical[0].Severity)
	}
	if len(critical[0].Keywords) != 1 || critical[0].Keywords[0] != "bankruptcy" {
		t.Errorf("Expected keyword 'bankruptcy', got %v", critical[0].Keywords)
	}
}
