package chat_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripbuddy/internal/repositories"
	"tripbuddy/internal/services"
	"tripbuddy/pkg/utils"
)

var Module = fx.Provide(
	ProvideAssistantClient,
	provideChatRepo,
	provideChatService)

// AssistantConfig holds configuration for assistant clients
type AssistantConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAssistantClient creates an assistant client based on environment variables
func ProvideAssistantClient() (utils.AssistantClientInterface, error) {
	config := getAssistantConfig()

	log.Printf("Initializing %s assistant client with model: %s", config.Provider, config.Model)

	return utils.NewAssistantClient(config.Provider, config.APIKey, config.Model)
}

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(
	assistant utils.AssistantClientInterface,
	chatRepo repositories.ChatRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.ChatServiceInterface {
	return services.NewChatService(assistant, chatRepo, itineraryRepo)
}

// getAssistantConfig reads configuration from environment variables
func getAssistantConfig() AssistantConfig {
	provider := getEnvWithDefault("ASSISTANT_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AssistantConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
