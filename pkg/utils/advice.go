package utils

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// AdviceClientInterface produces a short free-text advisory paragraph from
// the visitor's quiz answers. It is cosmetic only: callers must always keep
// a local fallback and never fail on an advice error.
type AdviceClientInterface interface {
	GenerateAdvice(ctx context.Context, answers map[string]string) (string, error)
	Close() error
}

// NewAdviceClient selects a provider the same way the rest of the app picks
// AI backends: "gemini" (default) or "openai".
func NewAdviceClient(provider, apiKey, model string) (AdviceClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIAdviceClient(apiKey, model), nil
	case "gemini":
		return NewGeminiAdviceClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported advice provider: %s", provider)
	}
}

func advicePrompt(answers map[string]string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("You are a study-abroad consultant for Taiwanese families. ")
	b.WriteString("Based on the quiz answers below, write one short, warm paragraph (max 120 words) ")
	b.WriteString("suggesting a direction for the family. Plain text only, no markdown, no lists.\n\nAnswers:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, answers[k])
	}
	return b.String()
}

// ------------------- Gemini -------------------

type GeminiAdviceClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAdviceClient(apiKey, model string) (AdviceClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAdviceClient{client: client, model: model}, nil
}

func (c *GeminiAdviceClient) GenerateAdvice(ctx context.Context, answers map[string]string) (string, error) {
	if len(answers) == 0 {
		return "", fmt.Errorf("no answers")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	m.SetTopP(0.8)
	m.SetMaxOutputTokens(400)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(advicePrompt(answers)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty advice")
	}
	return text, nil
}

func (c *GeminiAdviceClient) Close() error {
	return c.client.Close()
}

// ------------------- OpenAI -------------------

type OpenAIAdviceClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAdviceClient(apiKey, model string) AdviceClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAdviceClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAdviceClient) GenerateAdvice(ctx context.Context, answers map[string]string) (string, error) {
	if len(answers) == 0 {
		return "", fmt.Errorf("no answers")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: advicePrompt(answers)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty advice")
	}
	return text, nil
}

func (c *OpenAIAdviceClient) Close() error { return nil }
