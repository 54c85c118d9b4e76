package completion

import (
	"BulkBlitz-Backend/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type (
	openAIClient struct {
		cfg        Config
		httpClient *http.Client
	}

	openAIMessage struct {
		Role    string      `json:"role"`
		Content interface{} `json:"content"`
	}

	openAIRequest struct {
		Model          string            `json:"model"`
		Messages       []openAIMessage   `json:"messages"`
		MaxTokens      int               `json:"max_tokens,omitempty"`
		Temperature    *float64          `json:"temperature,omitempty"`
		ResponseFormat map[string]string `json:"response_format,omitempty"`
	}

	openAIResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

func (c *openAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.ErrMissingCredentials
	}

	var messages []openAIMessage
	if req.System != "" {
		messages = append(messages, openAIMessage{Role: "system", Content: req.System})
	}

	if len(req.Images) == 0 {
		messages = append(messages, openAIMessage{Role: "user", Content: req.Prompt})
	} else {
		parts := []map[string]interface{}{
			{"type": "text", "text": req.Prompt},
		}
		for _, img := range req.Images {
			parts = append(parts, map[string]interface{}{
				"type": "image_url",
				"image_url": map[string]string{
					"url": fmt.Sprintf("data:%s;base64,%s", img.MIMEType, base64.StdEncoding.EncodeToString(img.Data)),
				},
			})
		}
		messages = append(messages, openAIMessage{Role: "user", Content: parts})
	}

	body := openAIRequest{
		Model:       req.model(c.cfg),
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.JSON {
		body.ResponseFormat = map[string]string{"type": "json_object"}
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: openai API error: %s - %s", domain.ErrCompletionFailed, resp.Status, string(bodyBytes))
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrCompletionFailed, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrCompletionFailed)
	}

	return out.Choices[0].Message.Content, nil
}
