package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sebrandon1/deckgen/internal/config"
	"github.com/sebrandon1/deckgen/internal/generation"
	"google.golang.org/genai"
)

// geminiProvider talks to the Gemini API through the official genai
// client rather than a hand-rolled codec.
type geminiProvider struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
}

func newGeminiProvider(
	ctx context.Context,
	endpoint config.EndpointConfig,
	gen config.GenerationConfig,
	model string,
) (*geminiProvider, error) {
	if endpoint.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", generation.ErrConfiguration)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  endpoint.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create Gemini client: %v", generation.ErrConfiguration, err)
	}

	return &geminiProvider{
		client:      client,
		model:       model,
		maxTokens:   gen.MaxTokens,
		temperature: gen.Temperature,
	}, nil
}

func (p *geminiProvider) Name() string {
	return fmt.Sprintf("Gemini (%s)", p.model)
}

func (p *geminiProvider) Generate(
	ctx context.Context,
	systemPrompt, userPrompt string,
	_ generation.ProgressFunc,
) (string, error) {
	temp := float32(p.temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   int32(p.maxTokens),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(userPrompt), cfg)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", classifyGeminiError(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: Gemini returned no content", generation.ErrTransient)
	}
	return text, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: Gemini: %v", generation.ErrRateLimited, err)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: Gemini: %v", generation.ErrTransient, err)
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: Gemini rejected credentials: %v", generation.ErrConfiguration, err)
		default:
			return fmt.Errorf("%w: Gemini: %v", generation.ErrBadRequest, err)
		}
	}
	return fmt.Errorf("%w: Gemini request failed: %v", generation.ErrTransient, err)
}
