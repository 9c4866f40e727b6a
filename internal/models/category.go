package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	CategoryChest     = "chest"
	CategoryBack      = "back"
	CategoryLegs      = "legs"
	CategoryShoulders = "shoulders"
	CategoryArms      = "arms"
	CategoryCore      = "core"
	CategoryCardio    = "cardio"
	CategoryOther     = "other"
)

// Categories lists the canonical keys in display order.
var Categories = []string{
	CategoryChest,
	CategoryBack,
	CategoryLegs,
	CategoryShoulders,
	CategoryArms,
	CategoryCore,
	CategoryCardio,
	CategoryOther,
}

var categoryLabels = map[string]string{
	CategoryChest:     "Chest",
	CategoryBack:      "Back",
	CategoryLegs:      "Legs",
	CategoryShoulders: "Shoulders",
	CategoryArms:      "Arms",
	CategoryCore:      "Core",
	CategoryCardio:    "Cardio",
	CategoryOther:     "Other",
}

// NormalizeCategory returns the canonical lower-case key. Unknown values are
// lower-cased and kept as-is so legacy free-form data still groups consistently.
func NormalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

func IsKnownCategory(c string) bool {
	_, ok := categoryLabels[NormalizeCategory(c)]
	return ok
}

// CategoryLabel returns the display label for a category key.
func CategoryLabel(c string) string {
	key := NormalizeCategory(c)
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	if key == "" {
		return "Uncategorized"
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + key[size:]
}
