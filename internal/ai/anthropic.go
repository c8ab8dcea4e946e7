// Package ai provides the Anthropic-backed command explanation used by
// `ward explain`.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAPITimeout is the default timeout for API calls
const DefaultAPITimeout = 30 * time.Second

// AnthropicProvider wraps the Anthropic client for command explanations.
type AnthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{
		client: client,
		model:  anthropic.Model(model),
	}
}

const explainSystemPrompt = `You are ward, a pre-execution guard for AI coding assistants. A shell command was submitted for validation; your job is to explain it to the user.

RULES:
1. Break down what the command does, part by part
2. Call out destructive or irreversible effects explicitly
3. If a guard verdict is provided, explain why that rule fired (or why the command passed)
4. Keep the explanation brief but informative, in markdown`

// ExplainCommand asks the model what a command does and how the local verdict
// relates to it. verdict is the guard's own message ("OK" or the rule that
// fired); it is included so the explanation addresses the actual decision.
func (p *AnthropicProvider) ExplainCommand(ctx context.Context, command, verdict string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultAPITimeout)
	defer cancel()

	prompt := fmt.Sprintf("Explain this command: %s", command)
	if verdict != "" {
		prompt += fmt.Sprintf("\n\nGuard verdict: %s", verdict)
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: int64(512),
		System: []anthropic.TextBlockParam{
			{Text: explainSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to explain command: %w", err)
	}

	var explanation string
	for _, block := range message.Content {
		if block.Type == "text" {
			explanation = strings.TrimSpace(block.Text)
			break
		}
	}

	if explanation == "" {
		return "", fmt.Errorf("no explanation generated")
	}

	return explanation, nil
}
