package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"tripbuddy/internal/models/response_models"
)

type GeminiAssistantClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAssistantClient(apiKey, model string) (*GeminiAssistantClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistantClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAssistantClient) ProcessUserMessage(
	ctx context.Context,
	message string,
	itineraryContext string,
	history []response_models.ChatMessage,
) (*AssistantReply, error) {

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(500)

	var transcript strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Type, msg.Content)
	}

	prompt := fmt.Sprintf("%s\n\nRecent conversation:\n%s\nuser: %s\n\nReturn JSON only.",
		fmt.Sprintf(assistantSystemPrompt, itineraryContext), transcript.String(), message)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %v", ErrAssistantUnavailable, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: gemini: no content generated", ErrAssistantUnavailable)
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: gemini: not valid json", ErrAssistantUnavailable)
	}

	var reply AssistantReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("%w: gemini: unparseable reply: %v", ErrAssistantUnavailable, err)
	}
	if reply.Response == "" {
		reply.Response = "I'm here to help with your trip planning!"
	}
	return &reply, nil
}

func (c *GeminiAssistantClient) Close() error {
	return c.client.Close()
}
