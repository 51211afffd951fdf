package advisor_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"simconnect/internal/api/controllers"
	"simconnect/internal/repositories"
	"simconnect/internal/services"
	"simconnect/pkg/utils"
)

var Module = fx.Provide(
	ProvideAdvisorClient,
	ProvideAdvisorService,
	controllers.NewAdvisorController,
)

// AdvisorConfig holds configuration for the language-model provider.
type AdvisorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAdvisorClient creates an advisor client from environment variables.
// A missing API key disables the advisor instead of failing startup; the rest
// of the catalog keeps working.
func ProvideAdvisorClient() (utils.AdvisorClientInterface, error) {
	config := getAdvisorConfig()

	if config.APIKey == "" {
		log.Printf("No API key for advisor provider %q, advisor disabled", config.Provider)
		return disabledAdvisorClient{}, nil
	}

	log.Printf("Initializing %s advisor client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIAdvisorClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiAdvisorClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvideAdvisorService(
	catalogRepo repositories.CatalogRepository,
	client utils.AdvisorClientInterface,
) services.AdvisorServiceInterface {
	return services.NewAdvisorService(catalogRepo, client)
}

func getAdvisorConfig() AdvisorConfig {
	provider := utils.GetEnvWithDefault("ADVISOR_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = utils.GetEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = utils.GetEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
	}

	return AdvisorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

type disabledAdvisorClient struct{}

func (disabledAdvisorClient) GenerateAdvice(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("advisor client not configured")
}
