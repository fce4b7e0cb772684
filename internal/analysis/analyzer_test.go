package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubepulse/internal/models"
	"github.com/spacesedan/tubepulse/internal/sentiment"
)

func newTestAnalyzer() *Analyzer {
	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer(), sentiment.DefaultConfig())
	return NewAnalyzer(classifier, Config{})
}

func TestAnalyzeExampleBatch(t *testing.T) {
	a := newTestAnalyzer()

	comments := []models.Comment{
		{ID: "c1", AuthorName: "Ann", Text: "I love this!!", LikeCount: 10, ReplyCount: 1, PublishedAt: "2024-03-01 10:00:00"},
		{ID: "c2", AuthorName: "Bob", Text: "terrible video", LikeCount: 0, PublishedAt: "2024-03-02 09:30:00"},
		{ID: "c3", AuthorName: "Cat", Text: "it's ok I guess", LikeCount: 2, PublishedAt: "2024-02-28 18:00:00"},
	}

	result := a.Analyze(comments)

	assert.Len(t, result.Scored, 3)
	assert.Equal(t, models.SentimentPositive, result.Scored[0].SentimentLabel)
	assert.Equal(t, models.SentimentNegative, result.Scored[1].SentimentLabel)
	assert.Equal(t, models.SentimentNeutral, result.Scored[2].SentimentLabel)

	assert.Equal(t, "i love this", result.Scored[0].NormalizedText)
	assert.Greater(t, result.Scored[0].SentimentScore, 0.25)
	assert.Less(t, result.Scored[1].SentimentScore, -0.25)

	summary := result.Summary
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Positive)
	assert.Equal(t, 1, summary.Neutral)
	assert.Equal(t, 1, summary.Negative)
	assert.InDelta(t, 100.0/3, summary.PositivePct, 1e-9)
	assert.InDelta(t, 100.0, summary.PositivePct+summary.NeutralPct+summary.NegativePct, 1e-9)

	assert.Len(t, result.Highlights.Positive, 1)
	assert.Len(t, result.Highlights.Neutral, 1)
	assert.Len(t, result.Highlights.Negative, 1)
	assert.Equal(t, "c1", result.Highlights.Positive[0].ID)

	// Stopwords swallow everything except the two content-bearing tokens,
	// ordered by first appearance on the frequency tie.
	assert.Equal(t, []models.KeywordCount{
		{Keyword: "terrible", Count: 1},
		{Keyword: "guess", Count: 1},
	}, result.Keywords)

	// Nothing matches a trigger phrase, so the corpus buckets as "other".
	assert.Equal(t, []models.TopicCount{{Topic: "other", Count: 1}}, result.Topics)

	assert.Empty(t, result.ContentIdeas)

	assert.Equal(t, 3, result.Engagement.TotalComments)
	assert.Equal(t, 12, result.Engagement.TotalLikes)
	assert.Equal(t, 1, result.Engagement.TotalReplies)
	assert.Equal(t, 4.0, result.Engagement.EngagementRate)

	// Most liked first overall, newest first for recency.
	assert.Equal(t, "c1", result.TopComments[0].ID)
	assert.Equal(t, "c2", result.RecentComments[0].ID)
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Analyze(nil)

	assert.Empty(t, result.Scored)
	assert.Equal(t, models.SentimentSummary{}, result.Summary)
	assert.Empty(t, result.Topics)
	assert.Empty(t, result.Keywords)
	assert.Empty(t, result.ContentIdeas)
	assert.Equal(t, models.EngagementStats{}, result.Engagement)
}

func TestAnalyzeNoiseOnlyComment(t *testing.T) {
	a := newTestAnalyzer()

	result := a.Analyze([]models.Comment{
		{ID: "c1", Text: "https://spam.example.com \U0001F525"},
	})

	sc := result.Scored[0]
	assert.Equal(t, "", sc.NormalizedText)
	assert.Equal(t, 0.0, sc.SentimentScore)
	assert.Equal(t, models.SentimentNeutral, sc.SentimentLabel)
	assert.Equal(t, 1, result.Summary.Neutral)
}

func TestAnalyzerConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DEFAULT_TOP_PER_LABEL, cfg.TopCommentsPerLabel)
	assert.Equal(t, DEFAULT_TOP_KEYWORDS, cfg.TopKeywords)
	assert.Equal(t, DEFAULT_TOP_OVERALL, cfg.TopOverall)
	assert.Equal(t, DEFAULT_MAX_IDEAS, cfg.MaxContentIdeas)

	custom := Config{TopKeywords: 7}.withDefaults()
	assert.Equal(t, 7, custom.TopKeywords)
}
