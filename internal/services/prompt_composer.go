package services

import (
	"fmt"
	"strings"

	"triptailor/internal/models/request_models"
)

// ComposePrompt combines the user's free-text request with their stored
// preferences into the text sent to the generation service. With no
// preferences the message passes through verbatim. With preferences the
// output is a fixed-order preference block followed by a labeled request
// block; the user message is always the trailing suffix, untouched.
//
// Pure function: no side effects, no storage or network access, and it
// never rejects input based on preference completeness.
func ComposePrompt(userMessage string, prefs *request_models.UserPreferences) string {
	if prefs == nil {
		return userMessage
	}

	var prompt strings.Builder
	prompt.WriteString("Traveler preferences:\n")
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(prefs.Interests, ", ")))
	prompt.WriteString(fmt.Sprintf("- Budget: %s\n", prefs.BudgetRange))
	prompt.WriteString(fmt.Sprintf("- Transportation: %s\n", prefs.Transportation))
	prompt.WriteString(fmt.Sprintf("- Group size: %s\n", prefs.GroupSize))
	prompt.WriteString(fmt.Sprintf("- Favorite areas: %s\n", strings.Join(prefs.FavoriteAreas, ", ")))
	prompt.WriteString("\nRequest: ")
	prompt.WriteString(userMessage)

	return prompt.String()
}
