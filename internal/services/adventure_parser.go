package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"triptailor/internal/models/response_models"
	"triptailor/pkg/utils"
)

// ParseAdventures converts raw model output into a validated adventure
// batch. The model is not a trusted structured-data producer, so parsing
// is defensive:
//
//  1. Try the entire text as a JSON object with an "adventures" array.
//  2. Failing that, strip markdown fences and extract the first balanced
//     {...} substring, tolerating payloads wrapped in prose.
//  3. Anything else is a malformed response; no partial data is returned.
//
// An adventure missing a required field fails the whole batch rather than
// being silently dropped, so a bad payload is always visible to the caller.
func ParseAdventures(raw string) ([]response_models.Adventure, error) {
	text := strings.TrimSpace(raw)

	adventures, err := decodeAdventureEnvelope(text)
	if err == nil {
		return adventures, nil
	}

	extracted, ok := extractJSONObject(text)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in model output", utils.ErrMalformedResponse)
	}
	return decodeAdventureEnvelope(extracted)
}

var requiredAdventureFields = []string{"title", "duration", "budget", "description", "activities", "transport", "totalCost"}

var requiredActivityFields = []string{"time", "place", "type", "description"}

func decodeAdventureEnvelope(text string) ([]response_models.Adventure, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}

	rawList, ok := envelope["adventures"]
	if !ok {
		return nil, fmt.Errorf("%w: missing adventures field", utils.ErrMalformedResponse)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawList, &items); err != nil {
		return nil, fmt.Errorf("%w: adventures is not a list", utils.ErrMalformedResponse)
	}

	adventures := make([]response_models.Adventure, 0, len(items))
	for i, item := range items {
		adventure, err := decodeAdventure(item)
		if err != nil {
			return nil, fmt.Errorf("%w: adventure %d: %v", utils.ErrMalformedResponse, i+1, err)
		}
		adventures = append(adventures, adventure)
	}
	return adventures, nil
}

func decodeAdventure(item json.RawMessage) (response_models.Adventure, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return response_models.Adventure{}, fmt.Errorf("not an object: %v", err)
	}
	for _, name := range requiredAdventureFields {
		if isAbsent(fields[name]) {
			return response_models.Adventure{}, fmt.Errorf("missing required field %q", name)
		}
	}

	var adventure response_models.Adventure
	if err := json.Unmarshal(item, &adventure); err != nil {
		return response_models.Adventure{}, fmt.Errorf("bad field types: %v", err)
	}

	for _, value := range []string{adventure.Title, adventure.Duration, adventure.Budget, adventure.Description, adventure.Transport, adventure.TotalCost} {
		if strings.TrimSpace(value) == "" {
			return response_models.Adventure{}, fmt.Errorf("blank required field")
		}
	}

	// An empty activities list is tolerated; each present activity is
	// validated field-by-field, with tip optional.
	var rawActivities []json.RawMessage
	if err := json.Unmarshal(fields["activities"], &rawActivities); err != nil {
		return response_models.Adventure{}, fmt.Errorf("activities is not a list")
	}
	for j, rawActivity := range rawActivities {
		if err := validateActivity(rawActivity); err != nil {
			return response_models.Adventure{}, fmt.Errorf("activity %d: %v", j+1, err)
		}
	}

	return adventure, nil
}

func validateActivity(item json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return fmt.Errorf("not an object: %v", err)
	}
	for _, name := range requiredActivityFields {
		if isAbsent(fields[name]) {
			return fmt.Errorf("missing required field %q", name)
		}
		var value string
		if err := json.Unmarshal(fields[name], &value); err != nil {
			return fmt.Errorf("field %q is not a string", name)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("blank required field %q", name)
		}
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}

// extractJSONObject pulls the first balanced {...} out of model output
// that wraps the payload in prose or markdown fences. The scan is
// string-aware so braces inside JSON strings don't end the match.
func extractJSONObject(text string) (string, bool) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	if start == -1 {
		return "", false
	}
	end := findMatchingBrace(text, start)
	if end == -1 {
		return "", false
	}
	return text[start : end+1], true
}

func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
