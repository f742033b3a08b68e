// openai.go
package adbot

import (
	"context"
	"encoding/base64"
	"fmt"
	"image"

	openai "github.com/sashabaranov/go-openai"
)

// generateOpenAI calls the chat-completions endpoint through go-openai. The
// system prompt travels as a system message; an attached image rides inside
// the user message as a typed content part carrying a base64 JPEG data URI.
func (c *Client) generateOpenAI(ctx context.Context, systemPrompt, userPrompt string, img image.Image) (string, error) {
	cfg := openai.DefaultConfig(c.apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cfg.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(cfg)

	userMessage := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if img == nil {
		userMessage.Content = userPrompt
	} else {
		jpegData, err := encodeJPEG(img)
		if err != nil {
			return "", fmt.Errorf("encode image: %w", err)
		}
		userMessage.MultiContent = []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeText,
				Text: userPrompt,
			},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData),
				},
			},
		}
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			userMessage,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
