package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubepulse/internal/analysis"
	"github.com/spacesedan/tubepulse/internal/models"
	"github.com/spacesedan/tubepulse/internal/sentiment"
)

type stubFetcher struct {
	comments   []models.Comment
	stats      *models.VideoStats
	err        error
	ready      bool
	fetchCalls int
	statsCalls int
}

func (f *stubFetcher) FetchAllComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	if maxComments > 0 && len(f.comments) > maxComments {
		return f.comments[:maxComments], nil
	}
	return f.comments, nil
}

func (f *stubFetcher) FetchVideoStats(ctx context.Context, videoID string) (*models.VideoStats, error) {
	f.statsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func (f *stubFetcher) Ready() bool { return f.ready }

type memCache struct {
	entries map[string][]byte
	stores  int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) GetAnalysis(ctx context.Context, key string) ([]byte, bool) {
	payload, ok := m.entries[key]
	return payload, ok
}

func (m *memCache) StoreAnalysis(ctx context.Context, key string, payload []byte) error {
	m.stores++
	m.entries[key] = payload
	return nil
}

type stubEvents struct {
	published []models.AnalysisCompletedEvent
}

func (s *stubEvents) PublishAnalysisCompleted(event models.AnalysisCompletedEvent) error {
	s.published = append(s.published, event)
	return nil
}

type stubEnricher struct {
	out   []models.ContentIdea
	calls int
}

func (s *stubEnricher) EnrichContentIdeas(ctx context.Context, ideas []models.ContentIdea) []models.ContentIdea {
	s.calls++
	return s.out
}

func exampleComments() []models.Comment {
	return []models.Comment{
		{ID: "c1", AuthorName: "Ann", Text: "I love this!!", LikeCount: 10, PublishedAt: "2024-03-01 10:00:00"},
		{ID: "c2", AuthorName: "Bob", Text: "terrible video", LikeCount: 0, PublishedAt: "2024-03-02 09:30:00"},
		{ID: "c3", AuthorName: "Cat", Text: "it's ok I guess", LikeCount: 2, PublishedAt: "2024-02-28 18:00:00"},
	}
}

func exampleStats() *models.VideoStats {
	return &models.VideoStats{
		VideoID: "vid123",
		Title:   "Test Video",
		Channel: "Test Channel",
		Views:   1000,
	}
}

func newTestService(fetcher *stubFetcher) *Service {
	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer(), sentiment.DefaultConfig())
	analyzer := analysis.NewAnalyzer(classifier, analysis.Config{})
	return NewService(fetcher, analyzer)
}

func TestAnalyzeBuildsFullResponse(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), stats: exampleStats(), ready: true}
	svc := newTestService(fetcher)

	resp, err := svc.Analyze(context.Background(), "vid123", 0)

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "vid123", resp.VideoID)
	assert.Equal(t, 3, resp.CommentsAnalyzed)
	assert.Equal(t, "Test Video", resp.VideoInfo.Title)
	assert.NotEmpty(t, resp.AnalysisTimestamp)

	result := resp.Analysis
	assert.Equal(t, "vid123", result.VideoID)
	assert.Equal(t, 3, result.CommentCount)
	assert.Equal(t, 1, result.Summary.Positive)
	assert.Equal(t, 1, result.Summary.Neutral)
	assert.Equal(t, 1, result.Summary.Negative)
	assert.NotEmpty(t, result.AnalyzedAt)
}

func TestAnalyzeCacheRoundTrip(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), stats: exampleStats(), ready: true}
	cache := newMemCache()
	svc := newTestService(fetcher).WithCache(cache)

	first, err := svc.Analyze(context.Background(), "vid123", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, cache.stores)
	assert.Contains(t, cache.entries, "analysis:vid123:0")

	fetchesAfterFirst := fetcher.fetchCalls
	second, err := svc.Analyze(context.Background(), "vid123", 0)
	assert.NoError(t, err)
	assert.Equal(t, fetchesAfterFirst, fetcher.fetchCalls, "cache hit must not refetch")
	assert.Equal(t, first.Analysis.Summary, second.Analysis.Summary)

	// A different fetch size is a different corpus, so it misses.
	_, err = svc.Analyze(context.Background(), "vid123", 2)
	assert.NoError(t, err)
	assert.Greater(t, fetcher.fetchCalls, fetchesAfterFirst)
	assert.Contains(t, cache.entries, "analysis:vid123:2")
}

func TestAnalyzePublishesEvent(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), stats: exampleStats(), ready: true}
	events := &stubEvents{}
	svc := newTestService(fetcher).WithEvents(events)

	_, err := svc.Analyze(context.Background(), "vid123", 0)

	assert.NoError(t, err)
	assert.Len(t, events.published, 1)
	event := events.published[0]
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "vid123", event.VideoID)
	assert.Equal(t, 3, event.CommentCount)
	assert.Equal(t, 1, event.Positive)
	assert.Equal(t, 1, event.Negative)
	assert.NotEmpty(t, event.Timestamp)
}

func TestAnalyzeFetchErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream down")
	fetcher := &stubFetcher{err: wantErr}
	cache := newMemCache()
	events := &stubEvents{}
	svc := newTestService(fetcher).WithCache(cache).WithEvents(events)

	_, err := svc.Analyze(context.Background(), "vid123", 0)

	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, cache.stores)
	assert.Empty(t, events.published)
}

func TestVideoInfo(t *testing.T) {
	fetcher := &stubFetcher{stats: exampleStats(), ready: true}
	svc := newTestService(fetcher)

	resp, err := svc.VideoInfo(context.Background(), "vid123")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "vid123", resp.VideoID)
	assert.Equal(t, uint64(1000), resp.VideoInfo.Views)
	assert.Zero(t, fetcher.fetchCalls, "stat card never touches comments")
}

func TestComments(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	svc := newTestService(fetcher)

	resp, err := svc.Comments(context.Background(), "vid123", 2)

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.CommentCount)
	assert.Len(t, resp.Comments, 2)
}

func TestSentimentProjection(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	svc := newTestService(fetcher)

	resp, err := svc.Sentiment(context.Background(), "vid123", 0)

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.CommentsAnalyzed)
	assert.Len(t, resp.Comments, 3)
	assert.Equal(t, models.SentimentPositive, resp.Comments[0].SentimentLabel)
	assert.Equal(t, 1, resp.Summary.Positive)
	assert.Len(t, resp.Highlights.Negative, 1)
	assert.Zero(t, fetcher.statsCalls, "sentiment view skips the stat card")
}

func TestTopicsUsesEnricher(t *testing.T) {
	comments := append(exampleComments(), models.Comment{
		ID:        "c4",
		Text:      "Can you make a video about lighting setups? Please!",
		LikeCount: 4,
	})
	fetcher := &stubFetcher{comments: comments, ready: true}
	enriched := []models.ContentIdea{{Idea: "Lighting setup walkthrough", LikeCount: 4, CommentID: "c4"}}
	enricher := &stubEnricher{out: enriched}
	svc := newTestService(fetcher).WithEnricher(enricher)

	resp, err := svc.Topics(context.Background(), "vid123", 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, enricher.calls)
	assert.Equal(t, enriched, resp.ContentIdeas)
	assert.NotEmpty(t, resp.Topics)
	assert.NotEmpty(t, resp.Keywords)
}

func TestTopicsSkipsEnricherWithoutIdeas(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	enricher := &stubEnricher{}
	svc := newTestService(fetcher).WithEnricher(enricher)

	_, err := svc.Topics(context.Background(), "vid123", 0)

	assert.NoError(t, err)
	assert.Zero(t, enricher.calls, "nothing to enrich")
}

func TestSearchComments(t *testing.T) {
	fetcher := &stubFetcher{comments: exampleComments(), ready: true}
	svc := newTestService(fetcher)

	resp, err := svc.SearchComments(context.Background(), "vid123", "LOVE", "", 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.ResultCount)
	assert.Equal(t, "c1", resp.Results[0].ID)
	assert.Equal(t, 3, resp.TotalCommentsSearched)

	// The label filter narrows; "video" appears only in the negative comment.
	resp, err = svc.SearchComments(context.Background(), "vid123", "video", models.SentimentNegative, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.ResultCount)
	assert.Equal(t, "c2", resp.Results[0].ID)

	// Filter and term that cannot both match yield an empty, successful result.
	resp, err = svc.SearchComments(context.Background(), "vid123", "love", models.SentimentNegative, 0)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Zero(t, resp.ResultCount)
}
