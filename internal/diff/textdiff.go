package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// renderTextDiff produces a unified diff between two text field values for
// human review. Returns "" when rendering fails or the texts are equal.
func renderTextDiff(oldText, newText string) string {
	unified := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: "current",
		ToFile:   "scraped",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(unified)
	if err != nil {
		return ""
	}
	return text
}
