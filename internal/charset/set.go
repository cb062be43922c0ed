package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Set is an unordered collection of distinct characters.
type Set map[string]struct{}

// New builds a set from the given members, dropping duplicates.
func New(members ...string) Set {
	s := make(Set, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// FromRunes builds a set holding one member per rune.
func FromRunes(runes []rune) Set {
	s := make(Set, len(runes))
	for _, r := range runes {
		s[string(r)] = struct{}{}
	}
	return s
}

// Add inserts member.
func (s Set) Add(member string) { s[member] = struct{}{} }

// Has reports whether member is present.
func (s Set) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Intersect returns the members present in both s and other.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for m := range s {
		if other.Has(m) {
			out[m] = struct{}{}
		}
	}
	return out
}

// Difference returns the members of s that are absent from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for m := range s {
		if !other.Has(m) {
			out[m] = struct{}{}
		}
	}
	return out
}

// Sorted lists the members in ascending order. Byte order of UTF-8 strings
// matches code point order, so single characters sort by code point.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Join lists the members in sorted order separated by sep.
func (s Set) Join(sep string) string {
	return strings.Join(s.Sorted(), sep)
}

// Read parses one member per line. Surrounding whitespace is trimmed and
// blank lines are skipped. A byte order mark selects UTF-8 or UTF-16;
// without one the input is read as UTF-8.
func Read(r io.Reader) (Set, error) {
	reader := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	s := make(Set)
	for {
		line, err := reader.ReadString('\n')
		if member := strings.TrimSpace(line); member != "" {
			s[member] = struct{}{}
		}
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadFile loads a set from a one-character-per-line file.
func ReadFile(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s, nil
}
