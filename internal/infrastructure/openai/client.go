package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrClientNotInitialised is returned when attempting to call the API without a configured client.
var ErrClientNotInitialised = errors.New("openai client not initialised")

const systemPrompt = `You are an expert at finding the best online retailer for prescription refills.
Consider price, availability, shipping options and customer reviews.
Reply with a single JSON object with exactly these keys:
"retailer" (string), "url" (string, a purchase URL), "price" (number), "reason" (string).`

// Suggestion is the retailer recommendation returned by the model.
type Suggestion struct {
	Retailer string  `json:"retailer"`
	URL      string  `json:"url"`
	Price    float64 `json:"price"`
	Reason   string  `json:"reason"`
}

// Client wraps the OpenAI SDK and provides utility helpers.
type Client struct {
	client  *openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

// New returns an OpenAI client when apiKey is provided. Without a key the returned client
// reports ErrClientNotInitialised from every call.
func New(apiKey, model string) *Client {
	if apiKey == "" {
		return &Client{}
	}
	if model == "" {
		model = string(openai.ChatModelGPT4oMini)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:  &client,
		model:   openai.ChatModel(model),
		timeout: 20 * time.Second,
	}
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// SuggestRefill asks the model for the best online retailer for medication near location.
func (c *Client) SuggestRefill(ctx context.Context, medication, location string) (*Suggestion, error) {
	if strings.TrimSpace(medication) == "" || strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("medication and location cannot be empty")
	}
	if !c.Enabled() {
		return nil, ErrClientNotInitialised
	}

	req := c.suggestionRequest(medication, location)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion received")
	}
	return parseSuggestion(resp.Choices[0].Message.Content)
}

func (c *Client) suggestionRequest(medication, location string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(fmt.Sprintf("Medication: %q. Location: %q.", medication, location)),
					},
				},
			},
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
		Temperature:         openai.Float(0.2),
		MaxCompletionTokens: openai.Int(300),
	}
}

// parseSuggestion decodes the model output, tolerating a surrounding markdown code fence.
func parseSuggestion(content string) (*Suggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var s Suggestion
	if err := json.Unmarshal([]byte(content), &s); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	if s.Retailer == "" || s.URL == "" {
		return nil, fmt.Errorf("incomplete suggestion")
	}
	return &s, nil
}
