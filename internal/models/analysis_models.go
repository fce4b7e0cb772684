package models

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type ScoredComment struct {
	Comment
	NormalizedText string  `json:"normalized_text"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
}

// SentimentSummary holds per-label counts and percentages for one corpus.
// Percentages are plain float64 shares of 100; they sum to 100 when Total > 0
// and are all zero when Total == 0.
type SentimentSummary struct {
	Total       int     `json:"total"`
	Positive    int     `json:"positive"`
	Neutral     int     `json:"neutral"`
	Negative    int     `json:"negative"`
	PositivePct float64 `json:"positive_pct"`
	NeutralPct  float64 `json:"neutral_pct"`
	NegativePct float64 `json:"negative_pct"`
}

// SentimentHighlights carries the most-liked comments per label.
type SentimentHighlights struct {
	Positive []ScoredComment `json:"positive"`
	Neutral  []ScoredComment `json:"neutral"`
	Negative []ScoredComment `json:"negative"`
}

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type ContentIdea struct {
	Idea      string `json:"idea"`
	LikeCount int    `json:"like_count"`
	CommentID string `json:"comment_id,omitempty"`
}

type EngagementStats struct {
	TotalComments  int     `json:"total_comments"`
	TotalLikes     int     `json:"total_likes"`
	TotalReplies   int     `json:"total_replies"`
	EngagementRate float64 `json:"engagement_rate"`
}

// AnalysisResult is the full derived payload for one video. Everything in it
// is recomputed from the fetched comments on demand; nothing here is a system
// of record.
type AnalysisResult struct {
	VideoID        string              `json:"video_id"`
	CommentCount   int                 `json:"comment_count"`
	Summary        SentimentSummary    `json:"sentiment_summary"`
	Highlights     SentimentHighlights `json:"sentiment_highlights"`
	Keywords       []KeywordCount      `json:"keywords"`
	Topics         []TopicCount        `json:"topics"`
	ContentIdeas   []ContentIdea       `json:"content_ideas"`
	Engagement     EngagementStats     `json:"engagement"`
	TopComments    []ScoredComment     `json:"top_comments"`
	RecentComments []ScoredComment     `json:"recent_comments"`
	AnalyzedAt     string              `json:"analyzed_at"`
}
