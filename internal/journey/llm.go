package journey

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "You are the visit-planning assistant for Gulfood 2026, the world's largest food and beverage trade show. Respond with strict JSON only."

// LLMCaller is the seam between the pipeline and the completion provider.
// Tests substitute fakes returning canned JSON.
type LLMCaller interface {
	GenerateJSON(ctx context.Context, prompt string, temperature float64) (string, error)
}

// TransportError marks a provider-side failure (unreachable endpoint,
// non-success status). The HTTP layer maps it to 503; everything else from
// the evaluator maps to 500.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("llm transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicCaller struct {
	messages AnthropicMessager
}

type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// NewAnthropicCallerFromEnv builds the production caller, or an error when no
// API key is configured. The server treats the error as "run without the
// assistant" and answers 503 on the generate endpoint.
func NewAnthropicCallerFromEnv() (*AnthropicCaller, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return &AnthropicCaller{messages: newAnthropicClient(apiKey)}, nil
}

func (a *AnthropicCaller) GenerateJSON(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   4096,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(temperature),
	})
	if err != nil {
		return "", &TransportError{Err: err}
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}

// stripCodeFences removes an optional ```json wrapper the model sometimes
// emits around its JSON body.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		parts := strings.SplitN(s, "\n", 2)
		if len(parts) == 2 {
			s = parts[1]
		}
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}
