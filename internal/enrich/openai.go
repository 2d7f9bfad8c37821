// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const defaultModel = "gpt-4.1"

const systemPrompt = `You are a scientific summarizer. Return exactly three lines:
1) Problem: <one sentence>
2) Result: <one sentence>
3) Method: <one sentence>`

// OpenAI summarizes records through the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAI builds a summarizer from the enrichment config.
func NewOpenAI(cfg types.EnrichConfig) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &OpenAI{
		client: &client,
		model:  openai.ChatModel(model),
	}
}

// Summarize asks the model for a three-line Problem/Result/Method summary of
// one paper. Errors are returned to the caller, which substitutes a
// placeholder rather than dropping the record.
func (o *OpenAI) Summarize(ctx context.Context, title, abstract string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(fmt.Sprintf("TITLE: %s\nTEXT: %s", title, abstract)),
		},
		Temperature: openai.Float(0.3),
		MaxTokens:   openai.Int(120),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
