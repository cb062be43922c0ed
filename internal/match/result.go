package match

import (
	"charkit/internal/charset"
	"charkit/internal/keyboard"
)

// Result compares one language inventory with one keyboard.
type Result struct {
	KeyboardID         string  `json:"keyboard_id"`
	KeyboardName       string  `json:"keyboard_name"`
	Locale             string  `json:"locale"`
	SourceFile         string  `json:"source_file"`
	LanguageCharCount  int     `json:"language_char_count"`
	KeyboardCharCount  int     `json:"keyboard_char_count"`
	OverlapCount       int     `json:"overlap_count"`
	MissingCount       int     `json:"missing_count"`
	ExcessCount        int     `json:"excess_count"`
	CoveragePercentage float64 `json:"coverage_percentage"`
	OverlapPercentage  float64 `json:"overlap_percentage"`
	OverlapChars       string  `json:"overlap_chars"`
	MissingChars       string  `json:"missing_chars"`
	ExcessChars        string  `json:"excess_chars"`
}

// Analyze computes the overlap statistics of language against kb.
func Analyze(language charset.Set, kb keyboard.Record) Result {
	kbChars := kb.Characters
	if kbChars == nil {
		kbChars = keyboard.ParseCharacters(kb.AllCharacters)
	}

	overlap := language.Intersect(kbChars)
	missing := language.Difference(kbChars)
	excess := kbChars.Difference(language)

	return Result{
		KeyboardID:         kb.ID,
		KeyboardName:       kb.Name,
		Locale:             kb.Locale,
		SourceFile:         kb.SourceFile,
		LanguageCharCount:  language.Len(),
		KeyboardCharCount:  kbChars.Len(),
		OverlapCount:       overlap.Len(),
		MissingCount:       missing.Len(),
		ExcessCount:        excess.Len(),
		CoveragePercentage: percentage(overlap.Len(), language.Len()),
		OverlapPercentage:  percentage(overlap.Len(), kbChars.Len()),
		OverlapChars:       overlap.Join(","),
		MissingChars:       missing.Join(","),
		ExcessChars:        excess.Join(","),
	}
}

// AnalyzeAll analyzes every keyboard, preserving catalog order.
func AnalyzeAll(language charset.Set, keyboards []keyboard.Record) []Result {
	results := make([]Result, 0, len(keyboards))
	for _, kb := range keyboards {
		results = append(results, Analyze(language, kb))
	}
	return results
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
