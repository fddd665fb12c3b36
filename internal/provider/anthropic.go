package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/generation"
)

const anthropicVersion = "2023-06-01"

// anthropicProvider connects to the Anthropic Messages API. Unlike the
// chat-completions backends, the system prompt travels in a dedicated
// top-level field and the reply arrives as typed content blocks.
type anthropicProvider struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

func newAnthropicProvider(
	endpoint config.EndpointConfig,
	gen config.GenerationConfig,
	model string,
) (*anthropicProvider, error) {
	if endpoint.APIKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY is not set", generation.ErrConfiguration)
	}
	if endpoint.BaseURL == "" {
		return nil, fmt.Errorf("%w: Anthropic base URL is not set", generation.ErrConfiguration)
	}
	return &anthropicProvider{
		baseURL:     strings.TrimRight(endpoint.BaseURL, "/"),
		apiKey:      endpoint.APIKey,
		model:       model,
		maxTokens:   gen.MaxTokens,
		temperature: gen.Temperature,
		client:      &http.Client{},
	}, nil
}

func (p *anthropicProvider) Name() string {
	return fmt.Sprintf("Anthropic (%s)", p.model)
}

func (p *anthropicProvider) Generate(
	ctx context.Context,
	systemPrompt, userPrompt string,
	_ generation.ProgressFunc,
) (string, error) {
	reqBody := anthropicRequest{
		Model:  p.model,
		System: systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", generation.ErrBadRequest, err)
	}

	url := p.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", generation.ErrBadRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: Anthropic request failed: %v", generation.ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("Anthropic", resp)
	}

	var msgResp anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return "", fmt.Errorf("%w: Anthropic: decode response: %v", generation.ErrTransient, err)
	}
	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("%w: Anthropic returned empty content", generation.ErrTransient)
	}

	var out strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(out.String()), nil
}
