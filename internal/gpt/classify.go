package gpt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/noxowl/smartspeaker/internal/logger"
)

// Classifier wraps the Client with the smart-speaker's intent-classification
// prompt, serving as the optional LLM fallback behind the keyword classifier
// (capability.KeywordIntentClassifier) when keyword matching fails.
type Classifier struct {
	client *Client
	log    *logger.Logger
}

// NewClassifier creates an intent classifier backed by the given Client.
func NewClassifier(client *Client, log *logger.Logger) *Classifier {
	return &Classifier{client: client, log: log}
}

type classifyResponse struct {
	Intent string `json:"intent"`
	Menu   string `json:"menu"`
}

// ClassifiedIntent is the decoded result of a Classify call.
type ClassifiedIntent struct {
	Intent string
	Menu   string
}

// Classify sends the transcription to the model and decodes its intent
// classification. Returns intent "none" if the model's response can't be
// parsed.
func (c *Classifier) Classify(ctx context.Context, text string) (ClassifiedIntent, error) {
	messages := []Message{
		TextMessage(RoleSystem, PromptClassifyIntent),
		TextMessage(RoleUser, text),
	}
	raw, err := c.client.Chat(ctx, messages)
	if err != nil {
		return ClassifiedIntent{Intent: "none"}, err
	}

	raw = stripCodeFence(raw)
	var resp classifyResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		c.log.Error("gpt: failed to parse classify JSON: %v\nraw: %s", err, raw)
		return ClassifiedIntent{Intent: "none"}, nil
	}

	c.log.Debug("gpt: classified %q -> %s (menu=%q)", text, resp.Intent, resp.Menu)
	return ClassifiedIntent{Intent: resp.Intent, Menu: resp.Menu}, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}
