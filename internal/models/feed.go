package models

import "github.com/amarupazila/app-local-info/internal/constants"

// FeedItem is one projected entry of the display feed.
type FeedItem struct {
	ID       string             `json:"id"`
	Category constants.Category `json:"category"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	District string             `json:"district"`
	Upazila  string             `json:"upazila"`
}

// FeedRequest holds the query parameters of a feed read.
type FeedRequest struct {
	District string `form:"district"`
	Upazila  string `form:"upazila"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// FeedResponse is a page of the ranked feed.
type FeedResponse struct {
	Items   []FeedItem `json:"items"`
	Found   int        `json:"found"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Loading bool       `json:"loading"`
}

// CategorySummary pairs a category with its live record count and the user's
// current preference for it.
type CategorySummary struct {
	Category constants.Category `json:"category"`
	Label    string             `json:"label"`
	Count    int                `json:"count"`
	Enabled  bool               `json:"enabled"`
	Priority int                `json:"priority"`
}

// CategoriesResponse lists category summaries.
type CategoriesResponse struct {
	Categories []CategorySummary `json:"categories"`
	Total      int               `json:"total"`
}
