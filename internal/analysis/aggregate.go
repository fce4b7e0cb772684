package analysis

import (
	"math"
	"sort"

	"github.com/spacesedan/tubepulse/internal/models"
)

// Summarize tallies label counts over the scored comments. Percentages are
// plain shares of 100 and always add back up to 100 within float error; an
// empty input yields all zeros.
func Summarize(scored []models.ScoredComment) models.SentimentSummary {
	summary := models.SentimentSummary{Total: len(scored)}
	for _, sc := range scored {
		switch sc.SentimentLabel {
		case models.SentimentPositive:
			summary.Positive++
		case models.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}
	if summary.Total == 0 {
		return summary
	}

	total := float64(summary.Total)
	summary.PositivePct = 100 * float64(summary.Positive) / total
	summary.NeutralPct = 100 * float64(summary.Neutral) / total
	summary.NegativePct = 100 * float64(summary.Negative) / total
	return summary
}

// TopByLabel returns the n most-liked comments carrying label. The sort is
// stable so equally-liked comments keep their fetch order.
func TopByLabel(scored []models.ScoredComment, label string, n int) []models.ScoredComment {
	matched := make([]models.ScoredComment, 0)
	for _, sc := range scored {
		if sc.SentimentLabel == label {
			matched = append(matched, sc)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].LikeCount > matched[j].LikeCount
	})
	if n > 0 && len(matched) > n {
		matched = matched[:n]
	}
	return matched
}

// Highlights picks the n most-liked comments per sentiment label.
func Highlights(scored []models.ScoredComment, n int) models.SentimentHighlights {
	return models.SentimentHighlights{
		Positive: TopByLabel(scored, models.SentimentPositive, n),
		Neutral:  TopByLabel(scored, models.SentimentNeutral, n),
		Negative: TopByLabel(scored, models.SentimentNegative, n),
	}
}

// Engagement totals likes and replies over the batch. The rate is average
// likes per comment rounded to one decimal place.
func Engagement(comments []models.Comment) models.EngagementStats {
	stats := models.EngagementStats{TotalComments: len(comments)}
	for _, c := range comments {
		stats.TotalLikes += c.LikeCount
		stats.TotalReplies += c.ReplyCount
	}
	if stats.TotalComments > 0 {
		rate := float64(stats.TotalLikes) / float64(stats.TotalComments)
		stats.EngagementRate = math.Round(rate*10) / 10
	}
	return stats
}

// TopComments returns the n most-liked comments regardless of label.
func TopComments(scored []models.ScoredComment, n int) []models.ScoredComment {
	out := make([]models.ScoredComment, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LikeCount > out[j].LikeCount
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentComments returns the n newest comments. Timestamps come out of the
// fetch layer formatted "2006-01-02 15:04:05", so lexicographic order is
// chronological order.
func RecentComments(scored []models.ScoredComment, n int) []models.ScoredComment {
	out := make([]models.ScoredComment, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt > out[j].PublishedAt
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
