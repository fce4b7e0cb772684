package analysis

import (
	"sort"
	"strings"

	"github.com/spacesedan/tubepulse/internal/models"
)

// topicTriggers maps each topic bucket to the phrases that signal it.
// Matching runs against raw lowercased comment text, not normalized text,
// because triggers include punctuation ("?") and multiword phrases the
// normalizer would mangle.
var topicTriggers = []struct {
	topic    string
	triggers []string
}{
	{"tutorial", []string{"how to", "tutorial", "guide", "learn", "step by step", "techniques"}},
	{"review", []string{"review", "opinion", "thoughts on", "what i think", "assessment"}},
	{"question", []string{"question", "wondering", "can you", "how do you", "?"}},
	{"suggestion", []string{"suggestion", "recommend", "should make", "would like to see", "please make"}},
	{"technical", []string{"technical", "software", "hardware", "settings", "configuration", "setup"}},
}

// ExtractTopics buckets comments into discussion topics by trigger-phrase
// matching. A comment counts at most once per topic regardless of how many of
// that topic's triggers it contains, and a single comment may land in several
// topics. Zero-count topics are omitted; when comments exist but none match
// anything, the whole corpus is bucketed as "other".
func ExtractTopics(comments []models.Comment) []models.TopicCount {
	if len(comments) == 0 {
		return []models.TopicCount{}
	}

	counts := make([]int, len(topicTriggers))
	for _, c := range comments {
		text := strings.ToLower(c.Text)
		for i, tt := range topicTriggers {
			for _, trigger := range tt.triggers {
				if strings.Contains(text, trigger) {
					counts[i]++
					break
				}
			}
		}
	}

	topics := make([]models.TopicCount, 0, len(topicTriggers))
	for i, tt := range topicTriggers {
		if counts[i] > 0 {
			topics = append(topics, models.TopicCount{Topic: tt.topic, Count: counts[i]})
		}
	}
	if len(topics) == 0 {
		return []models.TopicCount{{Topic: "other", Count: 1}}
	}

	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})
	return topics
}
