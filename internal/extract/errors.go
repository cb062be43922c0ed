package extract

import "errors"

var (
	// ErrInputNotFound reports an input path that is missing, not a regular
	// file, or lacks the required extension.
	ErrInputNotFound = errors.New("input not found")
	// ErrInvalidChoice reports an input mode other than paste or file.
	ErrInvalidChoice = errors.New("invalid input choice")
	// ErrInvalidLanguage reports a language code that cannot be used in a file name.
	ErrInvalidLanguage = errors.New("invalid language code")
)
