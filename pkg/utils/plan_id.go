package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GeneratePlanID creates a human-readable plan ID.
// Format: plan-{recipeSlug}-{8charHexUUID}
//
// Example:
//   - Input: recipe="Green Circuit"
//   - Output: "plan-green-circuit-a3f8e2b1"
func GeneratePlanID(recipe string) string {
	return "plan-" + Slugify(recipe) + "-" + generateShortUUID()
}

// Slugify lower-cases a name and joins its words with hyphens
//   - "Green Circuit" -> "green-circuit"
//   - "Low Density Structure" -> "low-density-structure"
//   - "  " -> "unnamed"
func Slugify(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return "unnamed"
	}
	return strings.Join(words, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
