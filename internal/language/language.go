package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the English name of the language a BCP 47 code such as
// "arz", "lij" or "pt-BR" refers to. Empty input and codes that do not parse
// or name no known language return "".
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return display.English.Languages().Name(base)
}

// Describe renders code followed by its display name in parentheses when
// one is known, for example "tr (Turkish)".
func Describe(code string) string {
	code = strings.TrimSpace(code)
	if name := DisplayName(code); name != "" {
		return code + " (" + name + ")"
	}
	return code
}
