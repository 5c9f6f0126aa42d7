package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/akshattiwarii/Peakster/internal/pkg/config"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini SDK behind the generator port. One generation
// call per request, no internal retry: transient backend failures are the
// caller's problem to surface.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func New(cfg config.GeminiConfig) (*Client, func(), error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create Gemini client")
	}

	cleanup := func() {
		_ = client.Close()
	}

	return &Client{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, cleanup, nil
}

// Generate renders one itinerary. The timeout bounds the whole backend
// call; a hung backend becomes a generation failure instead of a hung
// caller request.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errs.Wrap(err, "generate content request failed")
	}

	text := extractText(resp)
	if text == "" {
		return "", errs.New("generation backend returned no text")
	}

	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return strings.TrimSpace(b.String())
}
