package analysis

import (
	"sort"
	"strings"

	"github.com/spacesedan/tubepulse/internal/models"
)

// MIN_KEYWORD_LENGTH drops tokens too short to mean anything on their own.
const MIN_KEYWORD_LENGTH = 3

// ExtractKeywords counts alphabetic tokens across the already-normalized
// texts, drops stopwords and short tokens, and returns the topN terms by
// frequency. Ties break on first appearance in the corpus, which keeps the
// output deterministic for a given input order.
func ExtractKeywords(texts []string, stopwords map[string]struct{}, topN int) []models.KeywordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	pos := 0
	for _, text := range texts {
		for _, token := range strings.Fields(text) {
			pos++
			if len(token) < MIN_KEYWORD_LENGTH || !isAlpha(token) {
				continue
			}
			if _, ok := stopwords[token]; ok {
				continue
			}
			if counts[token] == 0 {
				firstSeen[token] = pos
			}
			counts[token]++
		}
	}

	keywords := make([]models.KeywordCount, 0, len(counts))
	for term, count := range counts {
		keywords = append(keywords, models.KeywordCount{Keyword: term, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return firstSeen[keywords[i].Keyword] < firstSeen[keywords[j].Keyword]
	})

	if topN > 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// isAlpha reports whether the token is purely a-z. Normalized text is already
// lowercase, so digits are the only other thing that can show up.
func isAlpha(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] < 'a' || token[i] > 'z' {
			return false
		}
	}
	return true
}
