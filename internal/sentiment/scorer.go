package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/tubepulse/internal/models"
	"github.com/spacesedan/tubepulse/internal/utils"
)

// Scorer produces a polarity in [-1, 1] for already-normalized text.
// Backends are swappable; tests stub this with a fixed-score fake.
type Scorer interface {
	Score(text string) float64
}

// BatchScorer is implemented by backends that are cheaper when handed many
// texts at once.
type BatchScorer interface {
	Scorer
	ScoreBatch(texts []string) []float64
}

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) Score(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}

// Config holds the classification tunables. Thresholds and delta are chosen
// so borderline hedges ("it's ok i guess") stay neutral under the lexicon
// backend while clear praise and complaints land outside the band.
type Config struct {
	PositiveThreshold float64
	NegativeThreshold float64
	KeywordDelta      float64
	PositiveKeywords  []string
	NegativeKeywords  []string
	BatchSize         int
}

func DefaultConfig() Config {
	return Config{
		PositiveThreshold: 0.25,
		NegativeThreshold: -0.25,
		KeywordDelta:      0.15,
		PositiveKeywords: []string{
			"good", "great", "awesome", "amazing", "love", "excellent",
			"best", "fantastic", "wonderful", "perfect", "thanks", "helpful",
		},
		NegativeKeywords: []string{
			"bad", "worst", "terrible", "awful", "hate", "horrible",
			"useless", "waste", "boring", "wrong", "poor", "disappointing",
		},
		BatchSize: 16,
	}
}

// withDefaults fills unset fields from DefaultConfig. Nil keyword lists mean
// the defaults; an explicit empty list disables keyword adjustment.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PositiveThreshold == 0 {
		c.PositiveThreshold = def.PositiveThreshold
	}
	if c.NegativeThreshold == 0 {
		c.NegativeThreshold = def.NegativeThreshold
	}
	if c.KeywordDelta == 0 {
		c.KeywordDelta = def.KeywordDelta
	}
	if c.PositiveKeywords == nil {
		c.PositiveKeywords = def.PositiveKeywords
	}
	if c.NegativeKeywords == nil {
		c.NegativeKeywords = def.NegativeKeywords
	}
	if c.BatchSize <= 0 {
		c.BatchSize = def.BatchSize
	}

	return c
}

// Classifier turns normalized text into a (score, label) pair: backend
// polarity, plus KeywordDelta per curated-keyword hit, clamped to [-1, 1],
// then cut into positive/neutral/negative at the configured thresholds.
type Classifier struct {
	scorer   Scorer
	cfg      Config
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewClassifier(scorer Scorer, cfg Config) *Classifier {
	cfg = cfg.withDefaults()
	c := &Classifier{
		scorer:   scorer,
		cfg:      cfg,
		positive: make(map[string]struct{}, len(cfg.PositiveKeywords)),
		negative: make(map[string]struct{}, len(cfg.NegativeKeywords)),
	}
	for _, w := range cfg.PositiveKeywords {
		c.positive[w] = struct{}{}
	}
	for _, w := range cfg.NegativeKeywords {
		c.negative[w] = struct{}{}
	}

	return c
}

// Score returns the adjusted polarity for normalized text. Empty text is 0.0
// without touching the backend.
func (c *Classifier) Score(normalized string) float64 {
	if normalized == "" {
		return 0.0
	}

	return c.adjust(c.scorer.Score(normalized), normalized)
}

func (c *Classifier) adjust(base float64, normalized string) float64 {
	score := base
	for _, token := range Tokenize(normalized) {
		if _, ok := c.positive[token]; ok {
			score += c.cfg.KeywordDelta
		}
		if _, ok := c.negative[token]; ok {
			score -= c.cfg.KeywordDelta
		}
	}

	return clamp(score)
}

// Label maps a score to exactly one sentiment label.
func (c *Classifier) Label(score float64) string {
	switch {
	case score > c.cfg.PositiveThreshold:
		return models.SentimentPositive
	case score < c.cfg.NegativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

func (c *Classifier) Classify(normalized string) (float64, string) {
	score := c.Score(normalized)

	return score, c.Label(score)
}

// ClassifyBatch scores many normalized texts, using the backend's batch path
// in BatchSize chunks when it has one. Results are positionally aligned with
// the input; empty texts score 0.0 and never reach the backend.
func (c *Classifier) ClassifyBatch(normalized []string) ([]float64, []string) {
	scores := make([]float64, len(normalized))
	labels := make([]string, len(normalized))

	batcher, ok := c.scorer.(BatchScorer)
	if !ok {
		for i, text := range normalized {
			scores[i], labels[i] = c.Classify(text)
		}

		return scores, labels
	}

	var texts []string
	var positions []int
	for i, text := range normalized {
		if text == "" {
			labels[i] = c.Label(0.0)
			continue
		}
		texts = append(texts, text)
		positions = append(positions, i)
	}

	offset := 0
	for _, batch := range utils.Chunk(texts, c.cfg.BatchSize) {
		for j, base := range batcher.ScoreBatch(batch) {
			pos := positions[offset+j]
			scores[pos] = c.adjust(base, normalized[pos])
			labels[pos] = c.Label(scores[pos])
		}
		offset += len(batch)
	}

	return scores, labels
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}

	return score
}
