package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// Client asks an OpenAI-compatible chat model to label a message with one
// intent from a fixed vocabulary.
type Client struct {
	client *openai.Client
	model  string
	labels []string
	schema json.RawMessage
	now    func() time.Time
}

func New(apiKey, baseURL, model string, labels []string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		labels: labels,
		schema: labelSchema(labels),
		now:    time.Now,
	}
}

type labelResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

const systemPromptTemplate = `You classify messages sent to a personal finance chatbot.

Current time: %s

Pick exactly one intent:
- add_expense: the user spent money and wants it recorded
- add_income: the user received money and wants it recorded
- check_balance: the user asks for total income, expenses or balance
- show_by_category: the user asks how much was spent on a category
- show_by_month: the user asks for a month's summary
- show_by_date: the user asks for a specific day's records
- greeting: hello, hi and similar
- goodbye: bye and similar
- thank_you: thanks and similar
- unknown: none of the above

Allowed labels: %s`

func (c *Client) systemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate,
		c.now().Format("2006-01-02 15:04 (Monday)"),
		strings.Join(c.labels, ", "))
}

func labelSchema(labels []string) json.RawMessage {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type":        "string",
				"enum":        labels,
				"description": "The intent label",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence score between 0 and 1",
			},
		},
		"required":             []string{"intent", "confidence"},
		"additionalProperties": false,
	}
	raw, _ := json.Marshal(schema)
	return raw
}

// Classify returns the model's label for text. The label is not checked
// against the vocabulary here.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: c.systemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "intent",
				Schema: c.schema,
				Strict: true,
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", errors.Wrap(err, "call AI API")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	var out labelResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return "", errors.Wrap(err, "parse AI response")
	}

	return out.Intent, nil
}
