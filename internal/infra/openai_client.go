package infra

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tripcraft/pkg/utils"
)

const ProviderOpenAI = "openai"

// OpenAIClient implements Generator on the chat completions API. Images are
// sent inline as data URLs.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

func (o *OpenAIClient) Provider() string { return ProviderOpenAI }

func (o *OpenAIClient) Generate(ctx context.Context, prompt string, attachments ...Attachment) (text string, err error) {
	start := time.Now()
	defer func() { observe(ProviderOpenAI, "generate", start, err) }()

	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(attachments) == 0 {
		msg.Content = prompt
	} else {
		msg.MultiContent = append(msg.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: prompt,
		})
		for _, a := range attachments {
			msg.MultiContent = append(msg.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data),
					Detail: openai.ImageURLDetailAuto,
				},
			})
		}
	}

	callCtx, cancel := withTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		return "", classify(ctx, ProviderOpenAI, openAIError(err))
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", upstreamEmpty(ProviderOpenAI)
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return utils.NewUpstreamError(ProviderOpenAI, apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return utils.NewUpstreamError(ProviderOpenAI, reqErr.HTTPStatusCode, reqErr.Error())
	}
	return err
}

func upstreamEmpty(provider string) error {
	return utils.NewUpstreamError(provider, 0, "no content generated")
}
