package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/rhenlumbo/portfolio-backend/internal/config"
)

// GeminiGenerator implements Generator against the Google Gemini API.
type GeminiGenerator struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	timeout         time.Duration
}

// NewGeminiGenerator creates a Gemini-backed generator from the AI config.
func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig) (*GeminiGenerator, error) {
	if !cfg.Enabled() {
		return nil, errors.New("GOOGLE_API_KEY is missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{
		client:          client,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		timeout:         cfg.Timeout,
	}, nil
}

// GenerateReply sends the assembled prompt to Gemini and returns the
// concatenated text of the first candidate. An empty string without error
// means the model produced no usable text; the caller substitutes the
// fallback reply.
func (g *GeminiGenerator) GenerateReply(ctx context.Context, instruction string, msgs []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		contents[i] = genai.NewContentFromText(m.Text, genai.Role(m.Role))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
		MaxOutputTokens:   g.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return extractReply(resp), nil
}

// extractReply concatenates all text parts of the first candidate in order.
func extractReply(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
