package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/spacesedan/tubepulse/internal/models"
)

// requestPatterns are the phrasings viewers use when asking for new content.
// The text that follows a pattern, up to the end of the sentence, is the idea.
var requestPatterns = []string{
	"can you make",
	"would like to see",
	"please make",
	"should do",
	"next video",
	"tutorial on",
	"comparison",
	"review of",
}

// sentenceTail matches everything from the first sentence terminator onward.
var sentenceTail = regexp.MustCompile(`(?s)[.!?].*$`)

const (
	// MIN_IDEA_LENGTH filters out trailing fragments like "it" or "one".
	MIN_IDEA_LENGTH = 4
	// MIN_IDEA_WORDS requires an idea to be an actual phrase.
	MIN_IDEA_WORDS = 2
)

// GenerateContentIdeas mines request-pattern phrases out of the raw comments
// and returns up to maxIdeas suggestions, most-liked first. Duplicate idea
// texts collapse onto the most-liked comment that produced them.
func GenerateContentIdeas(comments []models.Comment, maxIdeas int) []models.ContentIdea {
	ideas := make([]models.ContentIdea, 0)

	for _, c := range comments {
		text := strings.ToLower(c.Text)
		for _, pattern := range requestPatterns {
			idx := strings.Index(text, pattern)
			if idx < 0 {
				continue
			}
			suggestion := strings.TrimSpace(text[idx+len(pattern):])
			suggestion = strings.TrimSpace(sentenceTail.ReplaceAllString(suggestion, ""))
			if len(suggestion) < MIN_IDEA_LENGTH || len(strings.Fields(suggestion)) < MIN_IDEA_WORDS {
				continue
			}
			ideas = append(ideas, models.ContentIdea{
				Idea:      capitalize(suggestion),
				LikeCount: c.LikeCount,
				CommentID: c.ID,
			})
		}
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].LikeCount > ideas[j].LikeCount
	})

	if maxIdeas <= 0 {
		maxIdeas = DEFAULT_MAX_IDEAS
	}
	seen := make(map[string]struct{}, len(ideas))
	deduped := make([]models.ContentIdea, 0, len(ideas))
	for _, idea := range ideas {
		if _, ok := seen[idea.Idea]; ok {
			continue
		}
		seen[idea.Idea] = struct{}{}
		deduped = append(deduped, idea)
		if len(deduped) == maxIdeas {
			break
		}
	}
	return deduped
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
