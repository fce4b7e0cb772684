package processing

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spacesedan/tubepulse/internal/models"
)

const ideaPrompt = `You will receive a JSON array of video content ideas mined from YouTube viewer comments.
Rewrite each idea into a concise, **actionable video concept** a creator could put on a production board.
**Important**:
- Stay grounded in the original request; do **not** invent topics that were never asked for.
- **Merge** ideas that ask for the same thing, keeping the highest like_count and its comment_id.
- **Preserve** the like_count and comment_id fields of every idea you keep.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "ideas": [
    {"idea": "XXX", "like_count": 0, "comment_id": "XXX"}
  ]
}

### **REQUIREMENTS**
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.
- **No trailing commas** in JSON objects or arrays.
- **Ensure correct escaping of special characters** in JSON strings.
`

const (
	enrichMaxRetries = 3
	enrichRetryDelay = 2 * time.Second
)

// ChatCompleter is the single OpenAI call the enricher needs. The concrete
// client satisfies it; tests stub it.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// IdeaEnricher rewrites pattern-mined content ideas into polished suggestions
// via OpenAI. It is strictly best-effort: any failure hands back the original
// ideas, enrichment never breaks an analysis.
type IdeaEnricher struct {
	ai         ChatCompleter
	maxIdeas   int
	retryDelay time.Duration
	healthy    *atomic.Bool
}

func NewIdeaEnricher(ai ChatCompleter, maxIdeas int) *IdeaEnricher {
	if maxIdeas <= 0 {
		maxIdeas = 10
	}
	return &IdeaEnricher{ai: ai, maxIdeas: maxIdeas, retryDelay: enrichRetryDelay}
}

// WithHealthGate attaches the flag the background monitor maintains. While
// the flag reads false the enricher skips OpenAI entirely rather than burning
// the retry budget on every request.
func (e *IdeaEnricher) WithHealthGate(healthy *atomic.Bool) *IdeaEnricher {
	e.healthy = healthy
	return e
}

// EnrichContentIdeas sends the mined ideas through the model and returns the
// cleaned-up list, falling back to the input on any failure.
func (e *IdeaEnricher) EnrichContentIdeas(ctx context.Context, ideas []models.ContentIdea) []models.ContentIdea {
	if len(ideas) == 0 {
		return ideas
	}

	if e.healthy != nil && !e.healthy.Load() {
		slog.Warn("[IdeaEnricher] OpenAI marked unhealthy, using pattern-mined ideas")
		return ideas
	}

	payload, err := json.Marshal(ideas)
	if err != nil {
		slog.Error("[IdeaEnricher] JSON marshal failed", slog.String("error", err.Error()))
		return ideas
	}

	for attempt := 1; attempt <= enrichMaxRetries; attempt++ {
		raw, err := e.ai.Complete(ctx, ideaPrompt, string(payload))
		if err != nil {
			slog.Warn("[IdeaEnricher] OpenAI API call failed, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			time.Sleep(e.retryDelay)
			continue
		}
		if strings.TrimSpace(raw) == "" {
			slog.Warn("[IdeaEnricher] OpenAI returned empty response, retrying",
				slog.Int("attempt", attempt))
			time.Sleep(e.retryDelay)
			continue
		}

		cleaned := cleanOpenAIResponse(raw)

		var resp models.IdeaEnrichmentResponse
		if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
			slog.Warn("[IdeaEnricher] Failed to parse JSON into struct, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			time.Sleep(e.retryDelay)
			continue
		}

		enriched := sanitizeIdeas(resp.Ideas, e.maxIdeas)
		if len(enriched) == 0 {
			slog.Warn("[IdeaEnricher] OpenAI returned no usable ideas, retrying",
				slog.Int("attempt", attempt))
			time.Sleep(e.retryDelay)
			continue
		}

		slog.Info("[IdeaEnricher] Ideas enriched",
			slog.Int("in", len(ideas)),
			slog.Int("out", len(enriched)))
		return enriched
	}

	slog.Error("[IdeaEnricher] OpenAI failed after retries, using pattern-mined ideas")
	return ideas
}

func cleanOpenAIResponse(response string) string {
	// Trim unnecessary whitespace
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimSuffix(response, "```")

	// Standardize quotes in case OpenAI outputs them incorrectly
	response = strings.ReplaceAll(response, "“", `"`) // Left curly quote
	response = strings.ReplaceAll(response, "”", `"`) // Right curly quote

	return strings.TrimSpace(response) // Final trim
}

// sanitizeIdeas drops entries the model emitted with empty text and caps the
// list, dropping duplicates by idea text in case the model ignored the merge
// instruction.
func sanitizeIdeas(ideas []models.ContentIdea, maxIdeas int) []models.ContentIdea {
	seen := make(map[string]struct{}, len(ideas))
	var unique []models.ContentIdea
	for _, idea := range ideas {
		text := strings.TrimSpace(idea.Idea)
		if text == "" || text == "XXX" {
			continue
		}
		if _, exists := seen[text]; exists {
			continue
		}
		seen[text] = struct{}{}
		idea.Idea = text
		unique = append(unique, idea)
		if len(unique) == maxIdeas {
			break
		}
	}
	return unique
}
