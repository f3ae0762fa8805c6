package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const ProviderGemini = "gemini"

// GeminiClient implements Generator using Google's Gemini models.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client:  client,
		model:   client.GenerativeModel(model),
		timeout: timeout,
	}, nil
}

func (g *GeminiClient) Provider() string { return ProviderGemini }

func (g *GeminiClient) Generate(ctx context.Context, prompt string, attachments ...Attachment) (text string, err error) {
	start := time.Now()
	defer func() { observe(ProviderGemini, "generate", start, err) }()

	parts := make([]genai.Part, 0, len(attachments)+1)
	parts = append(parts, genai.Text(prompt))
	for _, a := range attachments {
		parts = append(parts, genai.Blob{MIMEType: a.MIMEType, Data: a.Data})
	}

	callCtx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.model.GenerateContent(callCtx, parts...)
	if err != nil {
		return "", classify(ctx, ProviderGemini, err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", upstreamEmpty(ProviderGemini)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", upstreamEmpty(ProviderGemini)
	}
	return b.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
