package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/spacesedan/tubepulse/internal/models"
)

const (
	YOUTUBE_API_URL   = "https://www.googleapis.com/youtube/v3"
	COMMENTS_PER_PAGE = 100

	youtubeHTTPTimeout = 15 * time.Second
	pageInterval       = 500 * time.Millisecond
)

// Sentinel errors the handler layer maps onto HTTP statuses.
var (
	ErrAPIKeyMissing = errors.New("youtube api key not configured")
	ErrVideoNotFound = errors.New("video not found")
	ErrQuotaExceeded = errors.New("youtube api quota exceeded")
)

var (
	youtubeInstance *YouTubeClient
	youtubeOnce     sync.Once
)

// YouTubeClient wraps the two Data API v3 endpoints the service needs:
// commentThreads for the corpus and videos for the stat card. Auth is the
// public-data API key riding along as a query parameter on every request.
type YouTubeClient struct {
	BaseURL string
	apiKey  string
	Client  *http.Client

	// pacer spaces out page fetches so a deep comment section does not burn
	// through quota in one burst.
	pacer *rate.Limiter

	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// GetYouTubeClient returns the shared client, creating it from the
// environment on first use.
func GetYouTubeClient() *YouTubeClient {
	youtubeOnce.Do(func() {
		youtubeInstance = NewYouTubeClient(os.Getenv("YOUTUBE_API_KEY"))
		if !youtubeInstance.Ready() {
			slog.Warn("[YouTubeClient] YOUTUBE_API_KEY not set; fetches will fail until it is configured")
		}
	})
	return youtubeInstance
}

// NewYouTubeClient builds a client against the public API host. Tests point
// BaseURL at a local stub instead.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		BaseURL:        YOUTUBE_API_URL,
		apiKey:         apiKey,
		Client:         &http.Client{Timeout: youtubeHTTPTimeout},
		pacer:          rate.NewLimiter(rate.Every(pageInterval), 1),
		initialBackoff: INITIAL_BACKOFF,
		maxBackoff:     MAX_BACKOFF,
	}
}

// Ready reports whether an API key is configured. The placeholder value from
// the sample env file counts as unconfigured.
func (yt *YouTubeClient) Ready() bool {
	return yt.apiKey != "" && yt.apiKey != "YOUR_API_KEY"
}

// FetchAllComments walks commentThreads pages until maxComments is reached or
// the pages run out; maxComments <= 0 means everything. When a page after the
// first fails, the comments fetched so far are returned instead of an error,
// partial data still makes a useful analysis.
func (yt *YouTubeClient) FetchAllComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	var all []models.Comment
	pageToken := ""
	page := 1

	for {
		if err := yt.pacer.Wait(ctx); err != nil {
			return all, err
		}

		comments, nextPage, err := yt.FetchCommentPage(ctx, videoID, pageToken, COMMENTS_PER_PAGE)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			slog.Warn("[YouTubeClient] Comment page fetch failed, returning partial results",
				slog.String("video_id", videoID),
				slog.Int("page", page),
				slog.Int("fetched", len(all)),
				slog.String("error", err.Error()))
			return all, nil
		}

		if len(comments) == 0 {
			break
		}
		all = append(all, comments...)

		if maxComments > 0 && len(all) >= maxComments {
			all = all[:maxComments]
			break
		}
		if nextPage == "" {
			break
		}
		pageToken = nextPage
		page++
	}

	slog.Info("[YouTubeClient] Retrieved comments",
		slog.String("video_id", videoID),
		slog.Int("count", len(all)),
		slog.Int("pages", page))
	return all, nil
}

// FetchCommentPage fetches a single commentThreads page. maxResults is capped
// at the API's per-page limit of 100.
func (yt *YouTubeClient) FetchCommentPage(ctx context.Context, videoID, pageToken string, maxResults int) ([]models.Comment, string, error) {
	if maxResults <= 0 || maxResults > COMMENTS_PER_PAGE {
		maxResults = COMMENTS_PER_PAGE
	}

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("videoId", videoID)
	query.Set("maxResults", strconv.Itoa(maxResults))
	query.Set("textFormat", "plainText")
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	body, err := yt.get(ctx, "/commentThreads", query)
	if err != nil {
		return nil, "", err
	}

	var parsed models.CommentThreadsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, "", fmt.Errorf("failed to decode commentThreads response: %w", err)
	}

	comments := make([]models.Comment, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		comments = append(comments, commentFromThread(item))
	}
	return comments, parsed.NextPageToken, nil
}

// FetchVideoStats fetches the videos endpoint for one ID and maps it onto the
// stat card the API serves.
func (yt *YouTubeClient) FetchVideoStats(ctx context.Context, videoID string) (*models.VideoStats, error) {
	query := url.Values{}
	query.Set("part", "snippet,statistics")
	query.Set("id", videoID)

	body, err := yt.get(ctx, "/videos", query)
	if err != nil {
		return nil, err
	}

	var parsed models.VideoListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode videos response: %w", err)
	}
	if len(parsed.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	item := parsed.Items[0]
	return &models.VideoStats{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Channel:      item.Snippet.ChannelTitle,
		Description:  item.Snippet.Description,
		PublishedAt:  formatDate(item.Snippet.PublishedAt),
		Views:        parseCount(item.Statistics.ViewCount),
		Likes:        parseCount(item.Statistics.LikeCount),
		Comments:     parseCount(item.Statistics.CommentCount),
		ThumbnailURL: fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID),
	}, nil
}

func (yt *YouTubeClient) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	if !yt.Ready() {
		return nil, ErrAPIKeyMissing
	}
	query.Set("key", yt.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, yt.BaseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := yt.doWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

// doWithRetry retries 429s and 5xx responses with exponential backoff. The
// final 429/5xx response is handed back unconsumed so the caller can map its
// body to a typed error.
func (yt *YouTubeClient) doWithRetry(req *http.Request) (*http.Response, error) {
	backoff := yt.initialBackoff

	for attempt := 1; ; attempt++ {
		resp, err := yt.Client.Do(req)
		if err == nil && resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
			return resp, nil
		}
		if attempt == MAX_RETRIES {
			if err != nil {
				return nil, fmt.Errorf("youtube request failed after %d attempts: %w", attempt, err)
			}
			return resp, nil
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
			resp.Body.Close()
		}
		slog.Warn("[YouTubeClient] Request failed, will retry",
			slog.Int("attempt", attempt),
			slog.Int("status", status),
			slog.Duration("backoff", backoff))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > yt.maxBackoff {
			backoff = yt.maxBackoff
		}
	}
}

// apiError translates the Data API's error envelope into the sentinel errors
// upstream layers dispatch on.
func apiError(status int, body []byte) error {
	var parsed models.YouTubeErrorResponse
	_ = json.Unmarshal(body, &parsed)

	reason := ""
	if len(parsed.Error.Errors) > 0 {
		reason = parsed.Error.Errors[0].Reason
	}

	switch {
	case status == http.StatusForbidden && strings.Contains(reason, "quota"):
		return ErrQuotaExceeded
	case status == http.StatusTooManyRequests:
		return ErrQuotaExceeded
	case status == http.StatusNotFound:
		return ErrVideoNotFound
	}

	msg := parsed.Error.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("youtube api returned %d: %s", status, msg)
}

func commentFromThread(item models.CommentThread) models.Comment {
	snippet := item.Snippet.TopLevelComment.Snippet

	author := snippet.AuthorDisplayName
	if author == "" {
		author = "Anonymous"
	}

	// plainText responses still carry the occasional HTML artifact.
	text := strings.ReplaceAll(snippet.TextDisplay, "<br>", "\n")
	text = strings.ReplaceAll(text, "&nbsp;", " ")

	return models.Comment{
		ID:                 item.ID,
		AuthorName:         author,
		AuthorChannelURL:   snippet.AuthorChannelURL,
		AuthorProfileImage: snippet.AuthorProfileImageURL,
		Text:               text,
		LikeCount:          snippet.LikeCount,
		ReplyCount:         item.Snippet.TotalReplyCount,
		PublishedAt:        formatTimestamp(snippet.PublishedAt),
	}
}

// formatTimestamp rewrites the API's RFC 3339 stamps as
// "2006-01-02 15:04:05" so date ordering stays lexicographic downstream.
// Unparseable stamps pass through untouched.
func formatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format("2006-01-02")
}

// parseCount parses the API's string-typed statistics counters. Hidden
// counters (e.g. likes disabled) come through as missing fields and read 0.
func parseCount(raw string) uint64 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
