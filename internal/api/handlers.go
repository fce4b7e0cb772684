package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/tubepulse/internal/clients"
	"github.com/spacesedan/tubepulse/internal/models"
	"github.com/spacesedan/tubepulse/internal/utils"
)

const (
	ServiceName    = "tubepulse"
	ServiceVersion = "1.0.0"
)

// RootHandler godoc
// @Summary      Service info
// @Description  Service card with endpoint listing and API-key status
// @Tags         meta
// @Produce      json
// @Success      200  {object}  api.ServiceInfo
// @Router       / [get]
func RootHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := APIStatus{Status: "ready", Message: "API is ready to use"}
		if !svc.Ready() {
			status = APIStatus{
				Status:  "not configured",
				Message: "YouTube API key not configured. Set YOUTUBE_API_KEY environment variable.",
			}
		}

		c.JSON(http.StatusOK, ServiceInfo{
			Name:        ServiceName,
			Version:     ServiceVersion,
			Description: "REST API for YouTube comment sentiment and topic analytics",
			APIStatus:   status,
			Endpoints: map[string]string{
				"/api/health":          "Health check endpoint",
				"/api/video-info":      "Get basic video information",
				"/api/comments":        "Get comments for a video",
				"/api/analyze":         "Full analysis of video comments",
				"/api/sentiment":       "Analysis of comment sentiment",
				"/api/topics":          "Analysis of comment topics",
				"/api/comments/search": "Search for specific comments",
			},
			Usage: "Use ?url=YOUTUBE_VIDEO_URL parameter for most endpoints",
		})
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Returns 200 when the service can reach YouTube, 503 when the API key is missing
// @Tags         meta
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Failure      503  {object}  api.HealthResponse
// @Router       /api/health [get]
func HealthHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC().Format("2006-01-02 15:04:05")

		if !svc.Ready() {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:    "error",
				Service:   ServiceName,
				Version:   ServiceVersion,
				Timestamp: now,
				Error:     "YouTube API key not configured. Please set YOUTUBE_API_KEY environment variable.",
			})
			return
		}

		c.JSON(http.StatusOK, HealthResponse{
			Status:        "ok",
			Service:       ServiceName,
			Version:       ServiceVersion,
			Timestamp:     now,
			APIConfigured: true,
		})
	}
}

// VideoInfoHandler godoc
// @Summary      Video info
// @Description  Basic statistics for one video: title, channel, views, likes, comment count
// @Tags         videos
// @Param        url  query  string  true  "YouTube video URL or ID"
// @Produce      json
// @Success      200  {object}  api.VideoInfoResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/video-info [get]
func VideoInfoHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}

		resp, err := svc.VideoInfo(c.Request.Context(), videoID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// CommentsHandler godoc
// @Summary      Fetch comments
// @Description  Raw top-level comments for one video, unscored
// @Tags         comments
// @Param        url           query  string  true   "YouTube video URL or ID"
// @Param        max_comments  query  int     false  "Maximum comments to fetch (0 = all)"
// @Produce      json
// @Success      200  {object}  api.CommentsResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/comments [get]
func CommentsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}
		maxComments, ok := maxCommentsParam(c)
		if !ok {
			return
		}

		resp, err := svc.Comments(c.Request.Context(), videoID, maxComments)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AnalyzeHandler godoc
// @Summary      Full analysis
// @Description  Sentiment, topics, keywords, content ideas, and engagement stats for one video's comments
// @Tags         analysis
// @Param        url           query  string  true   "YouTube video URL or ID"
// @Param        max_comments  query  int     false  "Maximum comments to analyze (0 = all)"
// @Produce      json
// @Success      200  {object}  api.AnalyzeResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/analyze [get]
func AnalyzeHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}
		maxComments, ok := maxCommentsParam(c)
		if !ok {
			return
		}

		resp, err := svc.Analyze(c.Request.Context(), videoID, maxComments)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SentimentHandler godoc
// @Summary      Sentiment analysis
// @Description  Per-comment sentiment labels plus the aggregate summary
// @Tags         analysis
// @Param        url           query  string  true   "YouTube video URL or ID"
// @Param        max_comments  query  int     false  "Maximum comments to analyze (0 = all)"
// @Produce      json
// @Success      200  {object}  api.SentimentResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/sentiment [get]
func SentimentHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}
		maxComments, ok := maxCommentsParam(c)
		if !ok {
			return
		}

		resp, err := svc.Sentiment(c.Request.Context(), videoID, maxComments)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// TopicsHandler godoc
// @Summary      Topic analysis
// @Description  Discussion topics, viewer content ideas, and keyword frequencies
// @Tags         analysis
// @Param        url           query  string  true   "YouTube video URL or ID"
// @Param        max_comments  query  int     false  "Maximum comments to analyze (0 = all)"
// @Produce      json
// @Success      200  {object}  api.TopicsResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/topics [get]
func TopicsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}
		maxComments, ok := maxCommentsParam(c)
		if !ok {
			return
		}

		resp, err := svc.Topics(c.Request.Context(), videoID, maxComments)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SearchCommentsHandler godoc
// @Summary      Search comments
// @Description  Substring search over the comment corpus, optionally narrowed to one sentiment
// @Tags         comments
// @Param        url           query  string  true   "YouTube video URL or ID"
// @Param        q             query  string  true   "Search term"
// @Param        sentiment     query  string  false  "Filter by label (positive, neutral, negative)"
// @Param        max_comments  query  int     false  "Maximum comments to search (0 = all)"
// @Produce      json
// @Success      200  {object}  api.SearchResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /api/comments/search [get]
func SearchCommentsHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID, ok := videoIDParam(c)
		if !ok {
			return
		}

		term := c.Query("q")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: q"})
			return
		}

		maxComments, ok := maxCommentsParam(c)
		if !ok {
			return
		}

		// Unknown filter values are ignored rather than rejected; the filter
		// only ever narrows.
		filter := c.Query("sentiment")
		switch filter {
		case models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative:
		default:
			filter = ""
		}

		resp, err := svc.SearchComments(c.Request.Context(), videoID, term, filter, maxComments)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// videoIDParam resolves the required url query parameter to a video ID,
// writing the 400 itself when the URL is missing or unparseable.
func videoIDParam(c *gin.Context) (string, bool) {
	raw := c.Query("url")
	videoID := utils.ExtractVideoID(raw)
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid YouTube URL. Please provide a valid YouTube URL or video ID.",
		})
		return "", false
	}
	return videoID, true
}

// maxCommentsParam parses the optional max_comments parameter. Absent means
// 0, which the fetch layer reads as "no cap".
func maxCommentsParam(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("max_comments", "0")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "max_comments must be a non-negative integer",
		})
		return 0, false
	}
	return n, true
}

// abortWithError maps fetch-layer failures onto HTTP statuses. Anything
// without a sentinel match is a plain upstream failure.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, clients.ErrAPIKeyMissing):
		status = http.StatusServiceUnavailable
	case errors.Is(err, clients.ErrVideoNotFound):
		status = http.StatusNotFound
	case errors.Is(err, clients.ErrQuotaExceeded):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		slog.Error("[API] Request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
