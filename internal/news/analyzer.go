// Package news scrapes recent coverage for a symbol and scans it for
// fraud-adjacent language. The analysis is purely lexical: keyword lists
// graded by severity, no external NLP.
package news

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"stock-forensics/internal/logger"
	"stock-forensics/internal/quant"
	"stock-forensics/internal/trace"
	"stock-forensics/internal/types"
)

var topicWordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Analyzer scans a fixed batch of articles. It holds no state beyond the
// batch, so a fresh Analyzer per symbol is the expected usage.
type Analyzer struct {
	articles []types.NewsArticle
}

// NewAnalyzer creates an analyzer over the given articles. The slice is
// read, never modified.
func NewAnalyzer(articles []types.NewsArticle) *Analyzer {
	return &Analyzer{articles: articles}
}

func articleText(a types.NewsArticle) string {
	return strings.ToLower(a.Title + " " + a.Description)
}

func matchKeywords(text string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// AnalyzeSentiment classifies each article by weighted keyword counts and
// reduces the batch to a score in [-1, 1]. Risk keywords count against an
// article with weight 3/2/1 by severity; positive keywords count for it
// with weight 2.
func (a *Analyzer) AnalyzeSentiment() types.SentimentResult {
	result := types.SentimentResult{Sentiment: "NEUTRAL"}
	if len(a.articles) == 0 {
		return result
	}

	for _, article := range a.articles {
		text := articleText(article)
		negative := len(matchKeywords(text, highRiskKeywords))*3 +
			len(matchKeywords(text, mediumRiskKeywords))*2 +
			len(matchKeywords(text, lowRiskKeywords))
		positive := len(matchKeywords(text, positiveKeywords)) * 2

		switch {
		case negative > positive:
			result.NegativeCount++
		case positive > negative:
			result.PositiveCount++
		default:
			result.NeutralCount++
		}
	}

	result.TotalArticles = len(a.articles)
	score := float64(result.PositiveCount-result.NegativeCount) / float64(result.TotalArticles)
	result.Score = quant.Round2(score)

	switch {
	case score > 0.3:
		result.Sentiment = "POSITIVE"
	case score < -0.3:
		result.Sentiment = "NEGATIVE"
	}
	return result
}

// DetectRiskSignals buckets articles by the most severe keyword tier they
// hit and derives a risk score from total keyword hits per article. Any
// high-risk hit forces the HIGH tier regardless of the score.
func (a *Analyzer) DetectRiskSignals() types.RiskSignalResult {
	result := types.RiskSignalResult{
		HighRisk:   []types.SignalArticle{},
		MediumRisk: []types.SignalArticle{},
		LowRisk:    []types.SignalArticle{},
		RiskLevel:  types.RiskLow,
	}
	if len(a.articles) == 0 {
		return result
	}

	highCount, mediumCount, lowCount := 0, 0, 0
	for _, article := range a.articles {
		text := articleText(article)
		signal := types.SignalArticle{
			Title: article.Title,
			URL:   article.URL,
			Date:  article.PublishedAt,
		}

		if high := matchKeywords(text, highRiskKeywords); len(high) > 0 {
			signal.Keywords = high
			result.HighRisk = append(result.HighRisk, signal)
			highCount += len(high)
			continue
		}
		if medium := matchKeywords(text, mediumRiskKeywords); len(medium) > 0 {
			signal.Keywords = medium
			result.MediumRisk = append(result.MediumRisk, signal)
			mediumCount += len(medium)
			continue
		}
		if low := matchKeywords(text, lowRiskKeywords); len(low) > 0 {
			signal.Keywords = low
			result.LowRisk = append(result.LowRisk, signal)
			lowCount += len(low)
		}
	}

	score := (float64(highCount)*0.5 + float64(mediumCount)*0.3 + float64(lowCount)*0.1) /
		float64(len(a.articles))
	if score > 1.0 {
		score = 1.0
	}
	result.RiskScore = quant.Round2(score)

	switch {
	case score > 0.6 || len(result.HighRisk) > 0:
		result.RiskLevel = types.RiskHigh
	case score > 0.3 || len(result.MediumRisk) > 2:
		result.RiskLevel = types.RiskMedium
	}
	return result
}

// KeyTopics extracts the most frequent four-letter-plus words across the
// batch, minus a small stop-word list.
func (a *Analyzer) KeyTopics(topN int) []types.Topic {
	if len(a.articles) == 0 {
		return []types.Topic{}
	}

	var builder strings.Builder
	for _, article := range a.articles {
		builder.WriteString(articleText(article))
		builder.WriteString(" ")
	}

	counts := map[string]int{}
	for _, word := range topicWordPattern.FindAllString(builder.String(), -1) {
		if _, stop := topicStopWords[word]; stop {
			continue
		}
		counts[word]++
	}

	topics := make([]types.Topic, 0, len(counts))
	for word, count := range counts {
		topics = append(topics, types.Topic{Topic: word, Frequency: count})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Frequency != topics[j].Frequency {
			return topics[i].Frequency > topics[j].Frequency
		}
		return topics[i].Topic < topics[j].Topic
	})
	if len(topics) > topN {
		topics = topics[:topN]
	}
	return topics
}

// CriticalNews returns every article carrying at least one high-risk
// keyword, verbatim, for the report reader.
func (a *Analyzer) CriticalNews() []types.CriticalArticle {
	critical := []types.CriticalArticle{}
	for _, article := range a.articles {
		keywords := matchKeywords(articleText(article), highRiskKeywords)
		if len(keywords) == 0 {
			continue
		}
		critical = append(critical, types.CriticalArticle{
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			Date:        article.PublishedAt,
			Keywords:    keywords,
			Severity:    types.RiskHigh,
		})
	}
	return critical
}

// GenerateReport runs all scans and bundles them with the five most recent
// headlines.
func (a *Analyzer) GenerateReport(ctx context.Context, symbol string) types.NewsReport {
	_, span := trace.StartSpan(ctx, "news-report")
	defer span.End()

	signals := a.DetectRiskSignals()

	headlines := a.articles
	if len(headlines) > 5 {
		headlines = headlines[:5]
	}
	recent := make([]types.NewsArticle, len(headlines))
	copy(recent, headlines)

	logger.Score(ctx, symbol, "news_risk", signals.RiskScore, string(signals.RiskLevel),
		"articles", len(a.articles))

	return types.NewsReport{
		Timestamp:       time.Now(),
		TotalArticles:   len(a.articles),
		Sentiment:       a.AnalyzeSentiment(),
		RiskSignals:     signals,
		KeyTopics:       a.KeyTopics(5),
		RecentHeadlines: recent,
		CriticalNews:    a.CriticalNews(),
	}
}
