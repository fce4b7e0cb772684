package models

// Wire shapes for the two YouTube Data API v3 endpoints the service calls.
// Only the fields the fetch layer actually reads are mapped; statistics
// counts arrive as strings and stay strings here, the client parses them.

type CommentThreadsResponse struct {
	Items         []CommentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken"`
	PageInfo      PageInfo        `json:"pageInfo"`
}

type PageInfo struct {
	TotalResults   int `json:"totalResults"`
	ResultsPerPage int `json:"resultsPerPage"`
}

type CommentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			Snippet CommentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int `json:"totalReplyCount"`
	} `json:"snippet"`
}

type CommentSnippet struct {
	AuthorDisplayName     string `json:"authorDisplayName"`
	AuthorProfileImageURL string `json:"authorProfileImageUrl"`
	AuthorChannelURL      string `json:"authorChannelUrl"`
	TextDisplay           string `json:"textDisplay"`
	LikeCount             int    `json:"likeCount"`
	PublishedAt           string `json:"publishedAt"`
}

type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		Description  string `json:"description"`
		PublishedAt  string `json:"publishedAt"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

// YouTubeErrorResponse is the error envelope the Data API returns on non-2xx
// statuses. The reason field distinguishes quota exhaustion from other 403s.
type YouTubeErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}
