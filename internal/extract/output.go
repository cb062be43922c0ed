package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"charkit/internal/fileutil"
)

const outputSuffix = "_unique_characters.txt"

// ValidateLanguage rejects codes that would escape the output directory.
func ValidateLanguage(code string) error {
	if strings.ContainsAny(code, `/\`) || strings.TrimSpace(code) == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
	}
	return nil
}

// OutputFileName returns <language>_unique_characters.txt.
func OutputFileName(language string) string {
	return language + outputSuffix
}

// Format renders one character per line, each terminated by "\n".
func Format(chars []rune) []byte {
	var b strings.Builder
	b.Grow(len(chars) * 3)
	for _, r := range chars {
		b.WriteRune(r)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteFile writes chars to dir/<language>_unique_characters.txt, replacing
// any existing file, and returns the path written.
func WriteFile(dir, language string, chars []rune) (string, error) {
	if err := ValidateLanguage(language); err != nil {
		return "", err
	}
	path := filepath.Join(dir, OutputFileName(language))
	if err := fileutil.WriteAtomic(path, Format(chars)); err != nil {
		return "", fmt.Errorf("write unique characters: %w", err)
	}
	return path, nil
}
