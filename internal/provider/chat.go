package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/generation"
)

// chatProvider talks to OpenAI-compatible chat-completions endpoints.
// DeepSeek and OpenAI share this implementation and differ only in base
// URL, credentials and default model.
type chatProvider struct {
	label       string
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func newChatProvider(
	label, keyVar string,
	endpoint config.EndpointConfig,
	gen config.GenerationConfig,
	model string,
) (*chatProvider, error) {
	if endpoint.APIKey == "" {
		return nil, fmt.Errorf("%w: %s is not set", generation.ErrConfiguration, keyVar)
	}
	if endpoint.BaseURL == "" {
		return nil, fmt.Errorf("%w: %s base URL is not set", generation.ErrConfiguration, label)
	}
	return &chatProvider{
		label:       label,
		baseURL:     strings.TrimRight(endpoint.BaseURL, "/"),
		apiKey:      endpoint.APIKey,
		model:       model,
		maxTokens:   gen.MaxTokens,
		temperature: gen.Temperature,
		client:      &http.Client{},
	}, nil
}

func (p *chatProvider) Name() string {
	return fmt.Sprintf("%s (%s)", p.label, p.model)
}

func (p *chatProvider) Generate(
	ctx context.Context,
	systemPrompt, userPrompt string,
	_ generation.ProgressFunc,
) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
		Stream:      false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", generation.ErrBadRequest, err)
	}

	url := p.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", generation.ErrBadRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %s request failed: %v", generation.ErrTransient, p.label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(p.label, resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: %s: decode response: %v", generation.ErrTransient, p.label, err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("%w: %s: %s", generation.ErrBadRequest, p.label, chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: %s returned no choices", generation.ErrTransient, p.label)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// statusError maps a non-200 response to the error taxonomy: 429 is a
// rate limit, 5xx is transient, 401/403 is a credential problem, and
// anything else is a bad request.
func statusError(label string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s returned 429: %s", generation.ErrRateLimited, label, detail)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s returned %d: %s", generation.ErrTransient, label, resp.StatusCode, detail)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s rejected credentials (%d): %s",
			generation.ErrConfiguration, label, resp.StatusCode, detail)
	default:
		return fmt.Errorf("%w: %s returned %d: %s", generation.ErrBadRequest, label, resp.StatusCode, detail)
	}
}
