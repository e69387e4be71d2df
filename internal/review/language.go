package review

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Family groups language tags that share the same language-specific checks.
type Family string

const (
	FamilyJavaScript Family = "javascript"
	FamilyPython     Family = "python"
	FamilyOther      Family = "other"
)

var familyByTag = map[string]Family{
	"javascript": FamilyJavaScript,
	"js":         FamilyJavaScript,
	"jsx":        FamilyJavaScript,
	"mjs":        FamilyJavaScript,
	"node":       FamilyJavaScript,
	"typescript": FamilyJavaScript,
	"ts":         FamilyJavaScript,
	"python":     FamilyPython,
	"python3":    FamilyPython,
	"py":         FamilyPython,
}

// knownLanguages are the selector choices, in display order.
var knownLanguages = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"cpp",
	"csharp",
	"go",
	"rust",
}

// NormalizeLanguage trims and lower-cases a language tag.
func NormalizeLanguage(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// FamilyOf returns the family for a language tag. Unrecognized tags are FamilyOther.
func FamilyOf(tag string) Family {
	if f, ok := familyByTag[NormalizeLanguage(tag)]; ok {
		return f
	}
	return FamilyOther
}

// KnownLanguages returns the selectable language tags.
func KnownLanguages() []string {
	out := make([]string, len(knownLanguages))
	copy(out, knownLanguages)
	return out
}

// IsKnownLanguage reports whether tag is a selector choice or a family alias.
func IsKnownLanguage(tag string) bool {
	tag = NormalizeLanguage(tag)
	if _, ok := familyByTag[tag]; ok {
		return true
	}
	for _, l := range knownLanguages {
		if l == tag {
			return true
		}
	}
	return false
}

// SuggestLanguage returns the closest known language within an edit distance
// of 2, or "" if tag is already known or nothing is close enough.
func SuggestLanguage(tag string) string {
	tag = NormalizeLanguage(tag)
	if tag == "" || IsKnownLanguage(tag) {
		return ""
	}
	best := ""
	bestDist := 3
	for _, l := range knownLanguages {
		if d := levenshtein.ComputeDistance(tag, l); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}
