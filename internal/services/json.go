package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// parseJSONResponse unmarshals a model response that may wrap its JSON in
// markdown fences or prose. The shape is checked with gjson before
// unmarshaling so a schema mismatch lands in the same fallback branch as
// a syntax error instead of producing a half-filled struct.
func parseJSONResponse(response string, requiredPaths []string, target interface{}) error {
	jsonStr := extractJSON(response)

	if !gjson.Valid(jsonStr) {
		return fmt.Errorf("response is not valid JSON")
	}

	for _, path := range requiredPaths {
		if !gjson.Get(jsonStr, path).Exists() {
			return fmt.Errorf("response missing required field %q", path)
		}
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown
// or other formatting.
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

// clampScore keeps model-produced scores inside the documented [0,100]
// range before anything is persisted.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
