package utils

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultRequestTimeout = 45 * time.Second

// AdventureClientInterface is the boundary to the hosted generation
// service. One call sends exactly one request; retries are a caller
// decision. Implementations classify transport failures into the
// ErrRateLimited / ErrQuotaExhausted / ErrEmptyResponse / ErrUpstream
// taxonomy so callers never see provider-specific errors.
type AdventureClientInterface interface {
	GenerateAdventures(ctx context.Context, prompt string) (string, error)
}

// AdventureSystemPrompt instructs the model to plan Metro Vancouver
// outings and respond with the adventures JSON payload.
const AdventureSystemPrompt = `You are a local Vancouver adventure planner AI. Analyze user requests and create personalized 2-5 hour adventure plans for Metro Vancouver (Surrey, Richmond, Langley, Burnaby, Vancouver, New Westminster).

Extract and understand:
- Location/area preference
- Time window
- Number of people
- Budget (low: <$20/person, medium: $20-50, high: >$50)
- Transportation (walking, driving, transit, rideshare)
- Food preferences
- Interests (nature, food, art, shopping, photos, etc.)
- Weather preference (indoor/outdoor)

Create 2-3 complete adventure plans with:
- Creative title
- Duration
- Budget per person
- 3-5 activities with:
  * Time
  * Place name
  * Type (restaurant, park, cafe, market, etc.)
  * Brief description (1 sentence)
  * Practical tips
- Transit/driving directions between stops
- Total estimated cost

Be specific with real Metro Vancouver locations. Include actual restaurant names, parks, cafes, and attractions in the specified areas.

Format your response as a JSON object with this structure:
{
  "adventures": [
    {
      "title": "Adventure name",
      "duration": "3 hours",
      "budget": "$25",
      "description": "Brief overview",
      "activities": [
        {
          "time": "12:00 PM",
          "place": "Actual place name",
          "type": "restaurant/park/cafe/etc",
          "description": "What to do here",
          "tip": "Practical advice"
        }
      ],
      "transport": "Transit or driving directions between locations",
      "totalCost": "$25 per person"
    }
  ]
}

Respond ONLY with valid JSON, no other text.`

// AdventureClientConfig selects and configures a generation provider.
type AdventureClientConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// NewAdventureClient creates an OpenAI-compatible or Gemini client based
// on config.
func NewAdventureClient(config AdventureClientConfig) (AdventureClientInterface, error) {
	if config.Timeout <= 0 {
		config.Timeout = defaultRequestTimeout
	}

	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIAdventureClient(config.APIKey, config.BaseURL, config.Model, config.Timeout), nil
	case "gemini":
		client, err := NewGeminiAdventureClient(config.APIKey, config.Model, config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported adventure provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}
