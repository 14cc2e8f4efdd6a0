package news

// Keyword lists used by the sentiment and risk scans. Matching is
// case-insensitive substring matching over title plus description, so
// multi-word entries like "sec investigation" match as phrases.

var highRiskKeywords = []string{
	"fraud", "scandal", "investigation", "lawsuit", "bankruptcy", "default",
	"criminal", "sec investigation", "accounting irregularities", "restatement",
	"insider trading", "manipulation", "ponzi", "embezzlement", "corruption",
	"class action", "delisting", "going concern", "chapter 11", "insolvent",
}

var mediumRiskKeywords = []string{
	"warning", "concern", "decline", "loss", "layoff", "restructuring",
	"downgrade", "miss", "disappointing", "weak", "struggle", "challenge",
	"regulatory", "compliance", "violation", "fine", "penalty", "dispute",
	"recall", "controversy", "criticism", "probe", "audit",
}

var lowRiskKeywords = []string{
	"caution", "uncertainty", "volatility", "pressure", "slowdown",
	"competition", "headwind", "risk", "concern", "question",
}

var positiveKeywords = []string{
	"growth", "profit", "beat", "exceed", "strong", "positive", "upgrade",
	"expansion", "innovation", "success", "record", "breakthrough",
	"acquisition", "partnership", "award", "leadership", "momentum",
}

var topicStopWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "have": {}, "been": {},
	"will": {}, "their": {}, "about": {}, "which": {}, "were": {}, "said": {},
	"what": {}, "when": {}, "where": {}, "more": {}, "than": {}, "other": {},
	"some": {}, "into": {}, "could": {}, "would": {}, "should": {}, "also": {},
}
