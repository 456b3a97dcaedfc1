package request_models

// UserPreferences is the onboarding profile used to personalize prompts.
// Valid enum values: budget low|medium|high, transportation
// transit|driving|walking|rideshare, group size solo|couple|small|large.
// Interests and favorite areas are free-form tags and may be empty.
type UserPreferences struct {
	Interests      []string `json:"interests"`
	BudgetRange    string   `json:"budget_range"`
	Transportation string   `json:"transportation"`
	GroupSize      string   `json:"group_size"`
	FavoriteAreas  []string `json:"favorite_areas"`
}

type SavePreferencesRequest struct {
	DeviceID string `json:"device_id"`
	UserPreferences
}
