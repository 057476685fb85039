package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/banterhq/banter"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ banter.Generator = (*Client)(nil)

// Named errors for the documented non-reply response variants.
var (
	ErrBlocked = errors.New("gemini: prompt blocked")
	ErrEmpty   = errors.New("gemini: empty response")
)

// Client implements [banter.Generator] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID used when a request carries none.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Generate sends a single-turn request to the Gemini API and returns the
// reply text.
func (c *Client) Generate(ctx context.Context, req banter.GenerateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	model := req.Model
	if model == "" {
		model = c.model
	}

	contents := ConvertRequest(req)
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: defaultMaxTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return replyText(resp)
}

// ConvertRequest converts a GenerateRequest to genai Contents.
// Exported for testing.
func ConvertRequest(req banter.GenerateRequest) []*genai.Content {
	var parts []*genai.Part
	if req.Prompt != "" {
		parts = append(parts, &genai.Part{Text: req.Prompt})
	}
	if req.Image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Image.MimeType,
				Data:     req.Image.Data,
			},
		})
	}
	return []*genai.Content{{Role: "user", Parts: parts}}
}

// replyText maps the response to its documented variants: a blocked prompt,
// no candidates, a candidate with text, or a candidate with none.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmpty
	}

	cand := resp.Candidates[0]
	var b strings.Builder
	if cand.Content != nil {
		for _, p := range cand.Content.Parts {
			if p.Thought {
				continue
			}
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		if cand.FinishReason != "" && cand.FinishReason != genai.FinishReasonStop {
			return "", fmt.Errorf("%w: finish reason %s", ErrEmpty, cand.FinishReason)
		}
		return "", ErrEmpty
	}
	return b.String(), nil
}
