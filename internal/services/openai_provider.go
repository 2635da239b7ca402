package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"placewise/internal/models"
)

// chatCompleter is the minimal slice of the OpenAI client the provider
// needs; tests substitute a mock.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements CompletionService using an OpenAI-compatible
// chat completion API. Like the Gemini provider, a missing key yields a
// disabled provider.
type OpenAIProvider struct {
	client chatCompleter
	model  string
}

// NewOpenAIProvider creates an OpenAI completion provider. apiKey may be
// empty; the provider is then disabled.
func NewOpenAIProvider(apiKey, modelName string) *OpenAIProvider {
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI provider will be disabled.")
		return &OpenAIProvider{model: modelName}
	}

	log.Infof("OpenAI provider initialized with model %s", modelName)
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: modelName}
}

// NewOpenAIProviderWithClient wires a caller-supplied client; used by tests.
func NewOpenAIProviderWithClient(client chatCompleter, modelName string) *OpenAIProvider {
	return &OpenAIProvider{client: client, model: modelName}
}

func (p *OpenAIProvider) Name() string      { return "openai" }
func (p *OpenAIProvider) ModelName() string { return p.model }
func (p *OpenAIProvider) Available() bool   { return p.client != nil }

func (p *OpenAIProvider) GenerateCompletion(ctx context.Context, promptText string) (string, error) {
	if p.client == nil {
		return "", models.ErrMissingCredential
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: promptText},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ CompletionService = (*OpenAIProvider)(nil)
