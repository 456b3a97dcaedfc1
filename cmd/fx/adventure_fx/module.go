// cmd/fx/adventure_fx/module.go
package adventure_fx

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"triptailor/internal/api/controllers"
	"triptailor/internal/repositories"
	"triptailor/internal/services"
	mem "triptailor/pkg/memcache"
	"triptailor/pkg/utils"
)

var Module = fx.Provide(
	ProvideAdventureClient,
	ProvideAdventureService,
	ProvideAdventureController)

// ProvideAdventureClient creates a generation client based on environment variables
func ProvideAdventureClient() (utils.AdventureClientInterface, error) {
	config := getAdventureConfig()

	log.Printf("Initializing %s adventure client with model: %s", config.Provider, config.Model)

	client, err := utils.NewAdventureClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create adventure client: %w", err)
	}
	return client, nil
}

// ProvideAdventureService creates the adventure service with all dependencies
func ProvideAdventureService(
	aiClient utils.AdventureClientInterface,
	conversations mem.ConversationStore,
	preferenceRepo repositories.PreferenceRepositoryInterface,
) services.AdventureServiceInterface {
	return services.NewAdventureService(
		aiClient,
		conversations,
		preferenceRepo,
	)
}

// ProvideAdventureController creates the adventure controller
func ProvideAdventureController(
	adventureService services.AdventureServiceInterface,
) *controllers.AdventureController {
	return controllers.NewAdventureController(adventureService)
}

// getAdventureConfig reads configuration from environment variables
func getAdventureConfig() utils.AdventureClientConfig {
	provider := getEnvWithDefault("ADVENTURE_PROVIDER", "gemini")

	var apiKey, model, baseURL string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		baseURL = os.Getenv("OPENAI_BASE_URL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return utils.AdventureClientConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
		BaseURL:  baseURL,
		Timeout:  getTimeout(),
	}
}

func getTimeout() time.Duration {
	raw := os.Getenv("ADVENTURE_TIMEOUT_SECONDS")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Invalid ADVENTURE_TIMEOUT_SECONDS %q, using default", raw)
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
