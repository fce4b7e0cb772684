package analysis

import (
	"log/slog"

	"github.com/spacesedan/tubepulse/internal/models"
	"github.com/spacesedan/tubepulse/internal/sentiment"
)

const (
	DEFAULT_TOP_PER_LABEL = 3
	DEFAULT_TOP_KEYWORDS  = 20
	DEFAULT_TOP_OVERALL   = 5
	DEFAULT_MAX_IDEAS     = 10
)

// Config carries the aggregation tunables. Zero values fall back to the
// defaults above; a nil Stopwords slice means the built-in list.
type Config struct {
	TopCommentsPerLabel int
	TopKeywords         int
	TopOverall          int
	MaxContentIdeas     int
	Stopwords           []string
}

func (c Config) withDefaults() Config {
	if c.TopCommentsPerLabel <= 0 {
		c.TopCommentsPerLabel = DEFAULT_TOP_PER_LABEL
	}
	if c.TopKeywords <= 0 {
		c.TopKeywords = DEFAULT_TOP_KEYWORDS
	}
	if c.TopOverall <= 0 {
		c.TopOverall = DEFAULT_TOP_OVERALL
	}
	if c.MaxContentIdeas <= 0 {
		c.MaxContentIdeas = DEFAULT_MAX_IDEAS
	}
	return c
}

// Result is everything one pass over a comment batch derives.
type Result struct {
	Scored         []models.ScoredComment
	Summary        models.SentimentSummary
	Highlights     models.SentimentHighlights
	Keywords       []models.KeywordCount
	Topics         []models.TopicCount
	ContentIdeas   []models.ContentIdea
	Engagement     models.EngagementStats
	TopComments    []models.ScoredComment
	RecentComments []models.ScoredComment
}

// Analyzer runs the full comment pipeline: normalize, score, tally, extract.
// It holds no per-request state, so one instance serves all requests.
type Analyzer struct {
	classifier *sentiment.Classifier
	cfg        Config
	stopwords  map[string]struct{}
}

func NewAnalyzer(classifier *sentiment.Classifier, cfg Config) *Analyzer {
	cfg = cfg.withDefaults()
	return &Analyzer{
		classifier: classifier,
		cfg:        cfg,
		stopwords:  buildStopwordSet(cfg.Stopwords),
	}
}

// Analyze processes one comment batch. It is total over its input: an empty
// batch produces a valid all-zero Result rather than an error.
func (a *Analyzer) Analyze(comments []models.Comment) Result {
	normalized := make([]string, len(comments))
	for i, c := range comments {
		normalized[i] = sentiment.Normalize(c.Text)
	}

	scores, labels := a.classifier.ClassifyBatch(normalized)

	scored := make([]models.ScoredComment, len(comments))
	for i, c := range comments {
		scored[i] = models.ScoredComment{
			Comment:        c,
			NormalizedText: normalized[i],
			SentimentScore: scores[i],
			SentimentLabel: labels[i],
		}
	}

	result := Result{
		Scored:         scored,
		Summary:        Summarize(scored),
		Highlights:     Highlights(scored, a.cfg.TopCommentsPerLabel),
		Keywords:       ExtractKeywords(normalized, a.stopwords, a.cfg.TopKeywords),
		Topics:         ExtractTopics(comments),
		ContentIdeas:   GenerateContentIdeas(comments, a.cfg.MaxContentIdeas),
		Engagement:     Engagement(comments),
		TopComments:    TopComments(scored, a.cfg.TopOverall),
		RecentComments: RecentComments(scored, a.cfg.TopOverall),
	}

	slog.Debug("[Analyzer] Batch analyzed",
		slog.Int("comments", len(comments)),
		slog.Int("positive", result.Summary.Positive),
		slog.Int("neutral", result.Summary.Neutral),
		slog.Int("negative", result.Summary.Negative),
		slog.Int("keywords", len(result.Keywords)),
		slog.Int("ideas", len(result.ContentIdeas)))

	return result
}
