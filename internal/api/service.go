package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/tubepulse/internal/analysis"
	"github.com/spacesedan/tubepulse/internal/models"
)

// Fetcher is the slice of the YouTube client the service depends on.
type Fetcher interface {
	FetchAllComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error)
	FetchVideoStats(ctx context.Context, videoID string) (*models.VideoStats, error)
	Ready() bool
}

// AnalysisCache stores serialized analyze responses keyed by video and fetch
// size. Misses are reported, never errored.
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, key string) ([]byte, bool)
	StoreAnalysis(ctx context.Context, key string, payload []byte) error
}

// EventPublisher emits analysis-completed events to downstream consumers.
type EventPublisher interface {
	PublishAnalysisCompleted(event models.AnalysisCompletedEvent) error
}

// IdeaEnricher rewrites mined content ideas; implementations degrade to the
// input on failure.
type IdeaEnricher interface {
	EnrichContentIdeas(ctx context.Context, ideas []models.ContentIdea) []models.ContentIdea
}

// Service glues fetching, analysis, and the optional cache/event/enrichment
// collaborators together behind the REST handlers.
type Service struct {
	fetcher  Fetcher
	analyzer *analysis.Analyzer
	cache    AnalysisCache
	events   EventPublisher
	enricher IdeaEnricher
}

func NewService(fetcher Fetcher, analyzer *analysis.Analyzer) *Service {
	return &Service{fetcher: fetcher, analyzer: analyzer}
}

func (s *Service) WithCache(cache AnalysisCache) *Service {
	s.cache = cache
	return s
}

func (s *Service) WithEvents(events EventPublisher) *Service {
	s.events = events
	return s
}

func (s *Service) WithEnricher(enricher IdeaEnricher) *Service {
	s.enricher = enricher
	return s
}

// Ready reports whether the upstream fetcher has credentials.
func (s *Service) Ready() bool {
	return s.fetcher.Ready()
}

// Analyze runs the full pipeline for one video: stats, comments, scoring,
// aggregation, enrichment. Full responses are cached and announced on the
// event stream; both of those are best-effort.
func (s *Service) Analyze(ctx context.Context, videoID string, maxComments int) (*AnalyzeResponse, error) {
	cacheKey := analysisCacheKey(videoID, maxComments)

	if s.cache != nil {
		if payload, ok := s.cache.GetAnalysis(ctx, cacheKey); ok {
			var cached AnalyzeResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				slog.Info("[AnalysisService] Cache hit", slog.String("video_id", videoID))
				return &cached, nil
			}
			slog.Warn("[AnalysisService] Discarding undecodable cache entry",
				slog.String("key", cacheKey))
		}
	}

	stats, err := s.fetcher.FetchVideoStats(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.fetcher.FetchAllComments(ctx, videoID, maxComments)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(comments)

	if s.enricher != nil && len(result.ContentIdeas) > 0 {
		result.ContentIdeas = s.enricher.EnrichContentIdeas(ctx, result.ContentIdeas)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	resp := &AnalyzeResponse{
		Success:   true,
		VideoID:   videoID,
		VideoInfo: stats,
		Analysis: &models.AnalysisResult{
			VideoID:        videoID,
			CommentCount:   len(comments),
			Summary:        result.Summary,
			Highlights:     result.Highlights,
			Keywords:       result.Keywords,
			Topics:         result.Topics,
			ContentIdeas:   result.ContentIdeas,
			Engagement:     result.Engagement,
			TopComments:    result.TopComments,
			RecentComments: result.RecentComments,
			AnalyzedAt:     now,
		},
		AnalysisTimestamp: now,
		CommentsAnalyzed:  len(comments),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.StoreAnalysis(ctx, cacheKey, payload); err != nil {
				slog.Warn("[AnalysisService] Failed to cache analysis",
					slog.String("key", cacheKey),
					slog.String("error", err.Error()))
			}
		}
	}

	s.publishCompleted(resp.Analysis)

	return resp, nil
}

// VideoInfo fetches just the stat card for one video.
func (s *Service) VideoInfo(ctx context.Context, videoID string) (*VideoInfoResponse, error) {
	stats, err := s.fetcher.FetchVideoStats(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &VideoInfoResponse{
		Success:   true,
		VideoID:   videoID,
		VideoInfo: stats,
	}, nil
}

// Comments fetches the raw comment corpus without scoring it.
func (s *Service) Comments(ctx context.Context, videoID string, maxComments int) (*CommentsResponse, error) {
	comments, err := s.fetcher.FetchAllComments(ctx, videoID, maxComments)
	if err != nil {
		return nil, err
	}
	return &CommentsResponse{
		Success:      true,
		VideoID:      videoID,
		Comments:     comments,
		CommentCount: len(comments),
	}, nil
}

// Sentiment runs the pipeline and projects out just the sentiment view.
func (s *Service) Sentiment(ctx context.Context, videoID string, maxComments int) (*SentimentResponse, error) {
	comments, err := s.fetcher.FetchAllComments(ctx, videoID, maxComments)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(comments)
	return &SentimentResponse{
		Success:          true,
		VideoID:          videoID,
		Summary:          result.Summary,
		Highlights:       result.Highlights,
		Comments:         result.Scored,
		CommentsAnalyzed: len(comments),
	}, nil
}

// Topics runs the pipeline and projects out the topic and idea view.
func (s *Service) Topics(ctx context.Context, videoID string, maxComments int) (*TopicsResponse, error) {
	comments, err := s.fetcher.FetchAllComments(ctx, videoID, maxComments)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(comments)
	ideas := result.ContentIdeas
	if s.enricher != nil && len(ideas) > 0 {
		ideas = s.enricher.EnrichContentIdeas(ctx, ideas)
	}

	return &TopicsResponse{
		Success:          true,
		VideoID:          videoID,
		Topics:           result.Topics,
		ContentIdeas:     ideas,
		Keywords:         result.Keywords,
		CommentsAnalyzed: len(comments),
	}, nil
}

// SearchComments scores the corpus, then filters by substring and optionally
// by sentiment label. term matches case-insensitively against the raw text.
func (s *Service) SearchComments(ctx context.Context, videoID, term, sentimentFilter string, maxComments int) (*SearchResponse, error) {
	comments, err := s.fetcher.FetchAllComments(ctx, videoID, maxComments)
	if err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(comments)

	needle := strings.ToLower(term)
	matches := make([]models.ScoredComment, 0)
	for _, sc := range result.Scored {
		if needle != "" && !strings.Contains(strings.ToLower(sc.Text), needle) {
			continue
		}
		if sentimentFilter != "" && sc.SentimentLabel != sentimentFilter {
			continue
		}
		matches = append(matches, sc)
	}

	return &SearchResponse{
		Success:               true,
		VideoID:               videoID,
		SearchTerm:            term,
		SentimentFilter:       sentimentFilter,
		Results:               matches,
		ResultCount:           len(matches),
		TotalCommentsSearched: len(comments),
	}, nil
}

func (s *Service) publishCompleted(result *models.AnalysisResult) {
	if s.events == nil {
		return
	}

	event := models.AnalysisCompletedEvent{
		EventID:      uuid.NewString(),
		VideoID:      result.VideoID,
		CommentCount: result.CommentCount,
		Positive:     result.Summary.Positive,
		Neutral:      result.Summary.Neutral,
		Negative:     result.Summary.Negative,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishAnalysisCompleted(event); err != nil {
		slog.Warn("[AnalysisService] Failed to publish analysis event",
			slog.String("video_id", result.VideoID),
			slog.String("error", err.Error()))
	}
}

func analysisCacheKey(videoID string, maxComments int) string {
	return fmt.Sprintf("analysis:%s:%d", videoID, maxComments)
}
