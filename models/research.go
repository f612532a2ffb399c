package models

// WebResult represents one web research hit and its scraped text
type WebResult struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	ScrapedText string `json:"scraped_text"`
}
