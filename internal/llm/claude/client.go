// Package claude explains solved triangles with the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/linnemanlabs/trisolve/internal/solution"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// DefaultMaxTokens bounds the length of one explanation.
const DefaultMaxTokens = 1024

const systemPrompt = `You are a patient trigonometry tutor. You are given a triangle that has
already been solved numerically. Explain step by step, for a high school
student, how the unknown sides and angles follow from the given ones. Name
each law you use (Law of Cosines, Law of Sines, angle sum). Use the numbers
provided; do not re-derive different values. Keep it under 250 words and
answer in plain text with numbered steps.`

var errNoText = errors.New("claude: response contained no text")

// Client implements solution.Explainer for the Claude API.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

var _ solution.Explainer = (*Client)(nil)

// New creates a Claude explainer with the given API key and model name.
// Extra request options are appended after the defaults.
func New(apiKey, model string, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(120 * time.Second),
	}
	return &Client{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     model,
		maxTokens: DefaultMaxTokens,
	}
}

// Name implements solution.Explainer.
func (c *Client) Name() string { return "claude" }

// Explain implements solution.Explainer.
func (c *Client) Explain(ctx context.Context, r *solution.Record) (string, error) {
	if r == nil || r.Triangle == nil {
		return "", solution.ErrNotSolved
	}

	msg, err := c.client.Messages.New(ctx, c.params(r))
	if err != nil {
		return "", fmt.Errorf("claude messages: %w", err)
	}
	return textFrom(msg)
}

func (c *Client) params(r *solution.Record) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt(r))),
		},
	}
}

// prompt describes the record's given quantities and the solved triangle.
func prompt(r *solution.Record) string {
	t := *r.Triangle
	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n", r.Case)
	b.WriteString("Given: ")
	b.WriteString(givenFor(r))
	b.WriteString("\nSolved triangle (side a is opposite angle alpha):\n")
	fmt.Fprintf(&b, "a = %.4f, b = %.4f, c = %.4f\n", t.A, t.B, t.C)
	fmt.Fprintf(&b, "alpha = %.4f°, beta = %.4f°, gamma = %.4f°\n", t.Alpha, t.Beta, t.Gamma)
	fmt.Fprintf(&b, "Area = %.4f, perimeter = %.4f\n", t.Area(), t.Perimeter())
	return b.String()
}

func givenFor(r *solution.Record) string {
	t := *r.Triangle
	switch r.Case {
	case triangle.SSS:
		return fmt.Sprintf("a = %.4f, b = %.4f, c = %.4f", t.A, t.B, t.C)
	case triangle.SAS:
		return fmt.Sprintf("b = %.4f, gamma = %.4f°, a = %.4f", t.B, t.Gamma, t.A)
	case triangle.ASA:
		return fmt.Sprintf("beta = %.4f°, c = %.4f, alpha = %.4f°", t.Beta, t.C, t.Alpha)
	case triangle.AAS:
		return fmt.Sprintf("alpha = %.4f°, beta = %.4f°, a = %.4f", t.Alpha, t.Beta, t.A)
	default:
		return "unknown"
	}
}

// textFrom joins the text blocks of a response.
func textFrom(msg *anthropic.Message) (string, error) {
	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			parts = append(parts, strings.TrimSpace(block.Text))
		}
	}
	if len(parts) == 0 {
		return "", errNoText
	}
	return strings.Join(parts, "\n\n"), nil
}
