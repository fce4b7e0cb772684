package api

import "github.com/spacesedan/tubepulse/internal/models"

// Response envelopes for the REST surface. Every success payload carries
// success=true and the resolved video ID so clients can correlate responses
// when they fire several requests per video.

type AnalyzeResponse struct {
	Success           bool                   `json:"success"`
	VideoID           string                 `json:"video_id"`
	VideoInfo         *models.VideoStats     `json:"video_info,omitempty"`
	Analysis          *models.AnalysisResult `json:"analysis"`
	AnalysisTimestamp string                 `json:"analysis_timestamp"`
	CommentsAnalyzed  int                    `json:"comments_analyzed"`
}

type VideoInfoResponse struct {
	Success   bool               `json:"success"`
	VideoID   string             `json:"video_id"`
	VideoInfo *models.VideoStats `json:"video_info"`
}

type CommentsResponse struct {
	Success      bool             `json:"success"`
	VideoID      string           `json:"video_id"`
	Comments     []models.Comment `json:"comments"`
	CommentCount int              `json:"comment_count"`
}

type SentimentResponse struct {
	Success          bool                       `json:"success"`
	VideoID          string                     `json:"video_id"`
	Summary          models.SentimentSummary    `json:"sentiment_summary"`
	Highlights       models.SentimentHighlights `json:"sentiment_highlights"`
	Comments         []models.ScoredComment     `json:"comments_with_sentiment"`
	CommentsAnalyzed int                        `json:"comments_analyzed"`
}

type TopicsResponse struct {
	Success          bool                  `json:"success"`
	VideoID          string                `json:"video_id"`
	Topics           []models.TopicCount   `json:"topics"`
	ContentIdeas     []models.ContentIdea  `json:"content_ideas"`
	Keywords         []models.KeywordCount `json:"keywords"`
	CommentsAnalyzed int                   `json:"comments_analyzed"`
}

type SearchResponse struct {
	Success               bool                   `json:"success"`
	VideoID               string                 `json:"video_id"`
	SearchTerm            string                 `json:"search_term"`
	SentimentFilter       string                 `json:"sentiment_filter,omitempty"`
	Results               []models.ScoredComment `json:"results"`
	ResultCount           int                    `json:"result_count"`
	TotalCommentsSearched int                    `json:"total_comments_searched"`
}

// HealthResponse reports service liveness and whether the upstream API key
// is in place. Without the key every data endpoint would fail, so health
// turns 503 rather than pretending all is well.
type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	Timestamp     string `json:"timestamp"`
	APIConfigured bool   `json:"api_configured"`
	Error         string `json:"error,omitempty"`
}

// ServiceInfo is the root-endpoint card: what this service is and where its
// endpoints live.
type ServiceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	APIStatus   APIStatus         `json:"api_status"`
	Endpoints   map[string]string `json:"endpoints"`
	Usage       string            `json:"usage"`
}

type APIStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
