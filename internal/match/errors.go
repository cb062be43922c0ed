package match

import "errors"

// ErrNoCharacters reports an inventory that is missing or holds no characters.
var ErrNoCharacters = errors.New("no characters found")
