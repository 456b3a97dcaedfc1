package response_models

// Activity is one stop inside an adventure plan. Type is a free-form
// category ("restaurant", "park", ...); the frontend maps known lowercase
// values to styling and falls back to a default for unknown ones.
type Activity struct {
	Time        string `json:"time"`
	Place       string `json:"place"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Tip         string `json:"tip,omitempty"`
}

// Adventure is one complete suggested outing itinerary returned by the
// generation service. Field names follow the wire format the model is
// prompted to produce.
type Adventure struct {
	Title       string     `json:"title"`
	Duration    string     `json:"duration"`
	Budget      string     `json:"budget"`
	Description string     `json:"description"`
	Activities  []Activity `json:"activities"`
	Transport   string     `json:"transport"`
	TotalCost   string     `json:"totalCost"`
}

// TurnResult is what one successful generation turn returns to the client.
type TurnResult struct {
	Reply      string      `json:"reply"`
	Adventures []Adventure `json:"adventures"`
}
