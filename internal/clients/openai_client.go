package clients

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var (
	aiClientInstance *OpenAIClient
	aiClientOnce     sync.Once
)

var ErrEmptyCompletion = errors.New("openai returned an empty completion")

type OpenAIClient struct {
	Client *openai.Client
}

// GetAIClient returns the shared OpenAI client, or nil when OPENAI_API_KEY is
// not set. Callers treat nil as "enrichment disabled".
func GetAIClient() *OpenAIClient {
	aiClientOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			slog.Info("[OpenAIClient] OPENAI_API_KEY not set, idea enrichment disabled")
			return
		}

		aiClientInstance = &OpenAIClient{
			Client: openai.NewClient(
				option.WithAPIKey(apiKey),
				option.WithHTTPClient(&http.Client{Timeout: openAIRequestTimeout}),
			),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return aiClientInstance
}

// Ping checks that the API answers at all. The models list is the cheapest
// authenticated endpoint, so the health monitor polls it.
func (c *OpenAIClient) Ping(ctx context.Context) error {
	_, err := c.Client.Models.List(ctx)
	return err
}

// Complete sends one system+user chat exchange and returns the raw completion
// text.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	chatCompletion, err := c.Client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(user),
			}),
			Model:       openai.F(openai.ChatModelGPT3_5Turbo),
			Temperature: openai.Float(0.5),
		})
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return chatCompletion.Choices[0].Message.Content, nil
}
