package keyboard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"charkit/internal/logging"
)

// Columns lists the catalog header in file order.
var Columns = []string{"id", "name", "locale", "source_file", "all_characters"}

// Catalog holds the keyboard records loaded from one metadata file.
type Catalog struct {
	path    string
	records []Record
	skipped int
}

// Load reads the catalog at path. It never fails: a missing or unreadable
// file yields an empty catalog and an error log entry.
func Load(path string, logger *slog.Logger) *Catalog {
	logger = logging.NewComponentLogger(logger, "catalog")
	c := &Catalog{path: strings.TrimSpace(path)}

	file, err := os.Open(c.path)
	if err != nil {
		hint := "check paths.catalog_path or set CHARKIT_CATALOG"
		msg := "keyboard catalog unreadable; continuing with an empty catalog"
		if errors.Is(err, os.ErrNotExist) {
			msg = "keyboard catalog not found; continuing with an empty catalog"
		}
		logging.ErrorWithContext(logger, msg, "catalog_unavailable",
			logging.String("path", c.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
		)
		return c
	}
	defer file.Close()

	records, skipped, err := Parse(file, logger)
	if err != nil {
		logging.ErrorWithContext(logger, "keyboard catalog unreadable; continuing with an empty catalog", "catalog_unreadable",
			logging.String("path", c.path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "the header must be "+strings.Join(Columns, ",")),
		)
		return c
	}
	c.records = records
	c.skipped = skipped
	logger.Debug("keyboard catalog loaded",
		logging.String("path", c.path),
		logging.Int("keyboards", len(records)),
		logging.Int("skipped_rows", skipped),
	)
	return c
}

// Path returns the file the catalog was loaded from.
func (c *Catalog) Path() string { return c.path }

// Records returns the keyboards in file order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	return c.records
}

// Len returns the number of keyboards loaded.
func (c *Catalog) Len() int { return len(c.Records()) }

// Skipped returns the number of rows dropped because they could not be parsed.
func (c *Catalog) Skipped() int {
	if c == nil {
		return 0
	}
	return c.skipped
}

// Parse decodes catalog CSV from r. Rows that fail to parse are skipped with a
// warning; short rows are padded with empty fields. A missing header or
// required column is an error.
func Parse(r io.Reader, logger *slog.Logger) ([]Record, int, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.New("catalog is empty")
		}
		return nil, 0, fmt.Errorf("read catalog header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, 0, err
	}

	var records []Record
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				logging.WarnWithContext(logger, "keyboard catalog row skipped", "catalog_row_invalid",
					logging.Int("line", parseErr.Line),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "fix the quoting of the row in the catalog"),
				)
				continue
			}
			return nil, skipped, fmt.Errorf("read catalog: %w", err)
		}
		field := func(name string) string {
			i := index[name]
			if i < len(row) {
				return row[i]
			}
			return ""
		}
		all := field("all_characters")
		records = append(records, Record{
			ID:            field("id"),
			Name:          field("name"),
			Locale:        field("locale"),
			SourceFile:    field("source_file"),
			AllCharacters: all,
			Characters:    ParseCharacters(all),
		})
	}
	return records, skipped, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("catalog header missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}
