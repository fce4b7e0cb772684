package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubepulse/internal/models"
)

func commentsWithTexts(texts ...string) []models.Comment {
	comments := make([]models.Comment, len(texts))
	for i, text := range texts {
		comments[i] = models.Comment{ID: string(rune('a' + i)), Text: text}
	}
	return comments
}

func TestExtractTopics(t *testing.T) {
	comments := commentsWithTexts(
		"How to do this at home?",          // tutorial + question
		"Great tutorial, learned a lot",    // tutorial
		"My review: solid but long",        // review
		"What camera settings do you use?", // technical + question
	)

	topics := ExtractTopics(comments)

	byName := make(map[string]int, len(topics))
	for _, tc := range topics {
		byName[tc.Topic] = tc.Count
	}
	assert.Equal(t, 2, byName["tutorial"])
	assert.Equal(t, 2, byName["question"])
	assert.Equal(t, 1, byName["review"])
	assert.Equal(t, 1, byName["technical"])

	// Highest count first.
	assert.Equal(t, 2, topics[0].Count)
}

func TestExtractTopicsCommentCountsOncePerTopic(t *testing.T) {
	// Two tutorial triggers in one comment still count it once.
	comments := commentsWithTexts("How to film: a step by step tutorial")

	topics := ExtractTopics(comments)

	assert.Equal(t, []models.TopicCount{{Topic: "tutorial", Count: 1}}, topics)
}

func TestExtractTopicsFallbackToOther(t *testing.T) {
	comments := commentsWithTexts("nice", "cool stuff")

	topics := ExtractTopics(comments)

	assert.Equal(t, []models.TopicCount{{Topic: "other", Count: 1}}, topics)
}

func TestExtractTopicsEmpty(t *testing.T) {
	assert.Empty(t, ExtractTopics(nil))
}

func TestExtractTopicsQuestionMark(t *testing.T) {
	comments := commentsWithTexts("why though?")

	topics := ExtractTopics(comments)

	assert.Equal(t, []models.TopicCount{{Topic: "question", Count: 1}}, topics)
}
