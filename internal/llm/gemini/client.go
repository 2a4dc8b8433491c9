package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"pathwise-backend/internal/llm"
	"pathwise-backend/internal/match"
)

// Client implements llm.Client using Google Gemini.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini-backed summary client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// SummarizeProfile asks the model for a 2-3 sentence professional summary.
func (c *Client) SummarizeProfile(ctx context.Context, input llm.SummaryInput) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(input)))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}
	return summary, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func buildPrompt(input llm.SummaryInput) string {
	audience := "a candidate seeking a full-time position"
	if input.RoleType == match.RoleInternship {
		audience = "a student seeking an internship"
	}
	var b strings.Builder
	b.WriteString("You are an expert career coach. Write a 2-3 sentence professional summary for ")
	b.WriteString(audience)
	b.WriteString(". Respond with the summary text only, no markdown and no preamble.\n")
	if len(input.Skills) > 0 {
		b.WriteString("Key skills: ")
		b.WriteString(strings.Join(input.Skills, ", "))
		b.WriteString("\n")
	}
	b.WriteString("Resume content:\n---\n")
	b.WriteString(input.ResumeText)
	b.WriteString("\n---\n")
	return b.String()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in gemini response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in gemini response")
	}
	return strings.Join(parts, ""), nil
}
