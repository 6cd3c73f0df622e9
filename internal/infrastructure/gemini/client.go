package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/kindredhq/kindred-backend/internal/domain"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for optional match enrichment. A nil
// *Client is a valid no-op dependency.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// ExplainMatch turns a score breakdown into a short human-readable
// explanation of why the pair was proposed.
func (c *Client) ExplainMatch(ctx context.Context, a, b *domain.Profile, breakdown domain.Breakdown, score int) (string, error) {
	prompt := fmt.Sprintf(`Two users were matched by a compatibility engine with an overall score of %d/100.
User 1: %s. User 2: %s.
Strengths found: %s.
Shared interests: %s.

Task: Write a short, warm explanation (1-2 sentences) of why they could be a good match.
Ground it strictly in the strengths listed above; do not invent facts.
Output: just the explanation text.`,
		score, a.DisplayName, b.DisplayName,
		strings.Join(breakdown.Strengths, "; "),
		strings.Join(breakdown.SharedInterests, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate match explanation: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text), nil
}
