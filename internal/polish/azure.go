// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package polish

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// apiVersion is the Azure OpenAI API version the rewrite targets.
const apiVersion = "2024-02-01"

// AzureBackend implements Backend against an Azure OpenAI deployment. The
// deployment is addressed through the base URL, Azure style; the client
// authenticates with the api-key header.
type AzureBackend struct {
	client     *openai.Client
	deployment string
}

// NewAzureBackend creates a backend for the given endpoint, API key, and
// model deployment. The credential is held only inside the HTTP client
// options and is never echoed back.
func NewAzureBackend(endpoint, credential, deployment string) *AzureBackend {
	base := strings.TrimRight(endpoint, "/") + "/openai/deployments/" + deployment + "/"
	client := openai.NewClient(
		option.WithBaseURL(base),
		option.WithQuery("api-version", apiVersion),
		option.WithHeader("api-key", credential),
	)
	return &AzureBackend{
		client:     &client,
		deployment: deployment,
	}
}

// Rewrite sends one non-streaming chat completion and returns the first
// choice's message content.
func (b *AzureBackend) Rewrite(ctx context.Context, prompt, markdown string) (string, error) {
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: b.deployment,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(userMessage(prompt, markdown)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request to deployment %s: %w", b.deployment, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("completion response contained empty content")
	}
	return content, nil
}
