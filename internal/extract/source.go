package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Mode selects where the text sample comes from.
type Mode int

const (
	// ModePaste reads pasted lines until the sentinel line.
	ModePaste Mode = 1
	// ModeFile reads a text file.
	ModeFile Mode = 2
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseMode maps the menu answer "1" or "2" to a Mode.
func ParseMode(answer string) (Mode, error) {
	switch strings.TrimSpace(answer) {
	case "1":
		return ModePaste, nil
	case "2":
		return ModeFile, nil
	default:
		return 0, fmt.Errorf("%w: %q (enter 1 or 2)", ErrInvalidChoice, strings.TrimSpace(answer))
	}
}

// ReadPasted collects lines from r until a line whose trimmed content equals
// sentinel, or until the input ends. The sentinel line itself is dropped and
// the remaining lines are joined with "\n".
func ReadPasted(r io.Reader, sentinel string) (string, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) == sentinel {
				return strings.Join(lines, "\n"), nil
			}
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return strings.Join(lines, "\n"), nil
			}
			return "", fmt.Errorf("read pasted text: %w", err)
		}
	}
}

// ValidatePath checks that path names an existing regular file with the
// given extension. Failures wrap ErrInputNotFound.
func ValidatePath(path, ext string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: no path given", ErrInputNotFound)
	}
	if !strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
		return fmt.Errorf("%w: %s does not end in %s", ErrInputNotFound, path, ext)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrInputNotFound, path)
	}
	return nil
}

// ReadFile validates path and returns its decoded contents. A UTF-8 byte
// order mark is stripped and UTF-16 byte order marks are honoured. CRLF and
// lone CR line breaks are returned as LF.
func ReadFile(path, ext string) (string, error) {
	path = strings.TrimSpace(path)
	if err := ValidatePath(path, ext); err != nil {
		return "", err
	}
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	decoded := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return lineBreaks.Replace(string(data)), nil
}
