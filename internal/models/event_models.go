package models

// AnalysisCompletedEvent is published to Kafka after a successful full
// analysis so downstream consumers can track what was processed.
type AnalysisCompletedEvent struct {
	EventID      string `json:"event_id"`
	VideoID      string `json:"video_id"`
	CommentCount int    `json:"comment_count"`
	Positive     int    `json:"positive"`
	Neutral      int    `json:"neutral"`
	Negative     int    `json:"negative"`
	Timestamp    string `json:"timestamp"`
}
