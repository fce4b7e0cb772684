package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tubepulse/internal/models"
)

func TestExtractKeywords(t *testing.T) {
	stop := map[string]struct{}{"the": {}, "and": {}}
	texts := []string{
		"the camera camera lens",
		"lens and lighting",
	}

	keywords := ExtractKeywords(texts, stop, 10)

	assert.Equal(t, []models.KeywordCount{
		{Keyword: "camera", Count: 2},
		{Keyword: "lens", Count: 2},
		{Keyword: "lighting", Count: 1},
	}, keywords, "ties break on first appearance")

	assert.Equal(t, keywords, ExtractKeywords(texts, stop, 10),
		"same corpus, same ordered result")
}

func TestExtractKeywordsFiltering(t *testing.T) {
	stop := map[string]struct{}{"the": {}}
	texts := []string{"the h264 4k ok codec codec"}

	keywords := ExtractKeywords(texts, stop, 10)

	// "the" is a stopword, "ok" and "4k" are too short, "h264" is not
	// purely alphabetic.
	assert.Equal(t, []models.KeywordCount{{Keyword: "codec", Count: 2}}, keywords)
}

func TestExtractKeywordsTopN(t *testing.T) {
	texts := []string{"alpha alpha alpha beta beta gamma"}

	keywords := ExtractKeywords(texts, map[string]struct{}{}, 2)

	assert.Equal(t, []models.KeywordCount{
		{Keyword: "alpha", Count: 3},
		{Keyword: "beta", Count: 2},
	}, keywords)
}

func TestExtractKeywordsEmpty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(nil, map[string]struct{}{}, 5))
}

func TestDefaultStopwordsCoverContractionFragments(t *testing.T) {
	set := buildStopwordSet(nil)

	// The normalizer turns "don't" into "don" and "t"; the list has to
	// swallow the leftover.
	for _, w := range []string{"don", "dont", "video", "the", "gonna"} {
		_, ok := set[w]
		assert.True(t, ok, "expected %q in default stopword set", w)
	}

	_, ok := set["terrible"]
	assert.False(t, ok, "content words must not be stopwords")
}

func TestBuildStopwordSetCustomList(t *testing.T) {
	set := buildStopwordSet([]string{"custom"})

	_, hasCustom := set["custom"]
	_, hasDefault := set["the"]
	assert.True(t, hasCustom)
	assert.False(t, hasDefault, "explicit list replaces the defaults")
}
