package models

// Comment is a single top-level comment as returned by the YouTube Data API
// commentThreads endpoint, reduced to the fields the analysis pipeline uses.
type Comment struct {
	ID                 string `json:"id"`
	AuthorName         string `json:"author_name"`
	AuthorChannelURL   string `json:"author_channel_url,omitempty"`
	AuthorProfileImage string `json:"author_profile_image,omitempty"`
	Text               string `json:"text"`
	LikeCount          int    `json:"like_count"`
	ReplyCount         int    `json:"reply_count"`
	PublishedAt        string `json:"published_at"`
}

type VideoStats struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Description  string `json:"description,omitempty"`
	PublishedAt  string `json:"published_at"`
	Views        uint64 `json:"views"`
	Likes        uint64 `json:"likes"`
	Comments     uint64 `json:"comments"`
	ThumbnailURL string `json:"thumbnail_url"`
}
