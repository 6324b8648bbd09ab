package quizfx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"edugo/internal/api/controllers"
	"edugo/internal/services"
	mem "edugo/pkg/memcache"
	"edugo/pkg/utils"
)

var Module = fx.Provide(
	provideSessionStore,
	ProvideAdviceClient,
	provideQuizService,
	provideQuizController)

func provideSessionStore() mem.QuizSessionStore {
	return mem.NewQuizSessions()
}

// AdviceConfig holds configuration for the narrative-advice client.
type AdviceConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAdviceClient builds the narrative-advice client from environment
// variables. The client is best-effort: without an API key we return nil and
// the quiz falls back to its fixed local paragraph.
func ProvideAdviceClient() utils.AdviceClientInterface {
	config := getAdviceConfig()

	if config.APIKey == "" {
		log.Printf("No %s API key configured, quiz narrative will use the local fallback", config.Provider)
		return nil
	}

	log.Printf("Initializing %s advice client with model: %s", config.Provider, config.Model)

	client, err := utils.NewAdviceClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		log.Printf("Failed to initialize advice client, using local fallback: %v", err)
		return nil
	}
	return client
}

func provideQuizService(
	sessions mem.QuizSessionStore,
	adviceClient utils.AdviceClientInterface,
) services.QuizServiceInterface {
	return services.NewQuizService(sessions, adviceClient)
}

func provideQuizController(quizService services.QuizServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(quizService)
}

func getAdviceConfig() AdviceConfig {
	provider := getEnvWithDefault("ADVICE_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return AdviceConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
