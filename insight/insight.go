// Package insight produces AI-written narratives for portfolio reports using
// the Gemini API. It is strictly additive: when a summary cannot be produced,
// the report ships without one.
package insight

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	kubera "github.com/the-mace/kubera-reporting"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Client wraps a Gemini client for report summaries and portfolio queries.
type Client struct {
	genai *genai.Client
	model string
}

// New creates a client. The API key is read from the environment
// (GEMINI_API_KEY) by the genai SDK; model falls back to DefaultModel when
// empty.
func New(ctx context.Context, model string) (*Client, error) {
	gc, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{genai: gc, model: model}, nil
}

// generate performs a single-turn generation and returns the text response.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating with %s: %w", c.model, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from %s", c.model)
	}
	return text, nil
}

// Summarize writes a short narrative of the report's changes. It requires a
// previous snapshot: with nothing to compare against there is nothing to tell,
// and the empty string is returned.
func (c *Client) Summarize(ctx context.Context, data *kubera.ReportData, t kubera.ReportType, hideAmounts bool) (string, error) {
	if data.Previous == nil || data.NetWorthChange == nil {
		return "", nil
	}
	return c.generate(ctx, summaryPrompt(data, t, hideAmounts))
}

// Query answers a free-form question about the portfolio, grounded on the
// snapshot and, when available, the latest report deltas.
func (c *Client) Query(ctx context.Context, snapshot *kubera.PortfolioSnapshot, data *kubera.ReportData, question string) (string, error) {
	return c.generate(ctx, queryPrompt(snapshot, data, question))
}
