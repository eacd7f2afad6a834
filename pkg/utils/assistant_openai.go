package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"tripbuddy/internal/models/response_models"
)

type OpenAIAssistantClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistantClient(apiKey, model string) *OpenAIAssistantClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIAssistantClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAssistantClient) ProcessUserMessage(
	ctx context.Context,
	message string,
	itineraryContext string,
	history []response_models.ChatMessage,
) (*AssistantReply, error) {

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(assistantSystemPrompt, itineraryContext),
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Type == response_models.MessageTypeUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: 500,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %v", ErrAssistantUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai: no choices returned", ErrAssistantUnavailable)
	}

	var reply AssistantReply
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &reply); err != nil {
		return nil, fmt.Errorf("%w: openai: unparseable reply: %v", ErrAssistantUnavailable, err)
	}
	if reply.Response == "" {
		reply.Response = "I'm here to help with your trip planning!"
	}
	return &reply, nil
}
