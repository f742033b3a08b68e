// gemini.go
package adbot

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
)

const (
	geminiBaseURL    = "https://generativelanguage.googleapis.com"
	geminiAPIVersion = "v1beta"
)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inlineData,omitempty"`
}

type geminiBlob struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generateGemini calls the generateContent endpoint directly. The system
// prompt is folded into the user text, Gemini-style: one user content whose
// first part is the combined prompt, followed by an optional inline JPEG.
func (c *Client) generateGemini(ctx context.Context, systemPrompt, userPrompt string, img image.Image) (string, error) {
	parts := []geminiPart{{Text: systemPrompt + "\n\n" + userPrompt}}
	if img != nil {
		jpegData, err := encodeJPEG(img)
		if err != nil {
			return "", fmt.Errorf("encode image: %w", err)
		}
		parts = append(parts, geminiPart{InlineData: &geminiBlob{
			Data:     base64.StdEncoding.EncodeToString(jpegData),
			MimeType: "image/jpeg",
		}})
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	baseURL := c.baseURL
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	url := fmt.Sprintf("%s/%s/models/%s:generateContent",
		strings.TrimRight(baseURL, "/"), geminiAPIVersion, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(rawBody)))
	}

	var decoded geminiResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var text strings.Builder
	for _, part := range decoded.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
