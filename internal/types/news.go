package types

// NewsArticle is a single article retrieved by a news collaborator.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	PublishedAt string `json:"published_date,omitempty"`
}
