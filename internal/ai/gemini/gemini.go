// Package gemini wraps the Google generative AI client for advisory
// analysis. Everything here is best-effort: callers treat any error as a
// signal to fall back to a local computation, never as a command failure.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Client struct {
	client     *genai.Client
	flashModel *genai.GenerativeModel
	proModel   *genai.GenerativeModel
}

func NewClient(apiKey, flashModelName, proModelName string) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}

	return &Client{
		client:     client,
		flashModel: client.GenerativeModel(flashModelName),
		proModel:   client.GenerativeModel(proModelName),
	}, nil
}

// GenerateText sends a prompt to the flash model and returns the raw text.
func (g *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.flashModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// GenerateJSON sends a prompt expected to yield a JSON object and decodes it
// into out. Markdown code fences around the JSON are tolerated; anything
// else that fails to decode is an error.
func (g *Client) GenerateJSON(ctx context.Context, prompt string, out any) error {
	resp, err := g.proModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return err
	}

	text = stripJSONFence(text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to unmarshal AI response to JSON: %w. \nRaw response was: %s", err, text)
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content returned from AI")
	}
	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("response part is not text, received %T", resp.Candidates[0].Content.Parts[0])
	}
	return strings.TrimSpace(string(textPart)), nil
}

func stripJSONFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json\n")
		s = strings.TrimSuffix(s, "\n```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```\n")
		s = strings.TrimSuffix(s, "\n```")
	}
	return strings.TrimSpace(s)
}
