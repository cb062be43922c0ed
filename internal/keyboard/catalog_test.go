package keyboard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charkit/internal/logging"
)

const sampleCatalog = `id,name,locale,source_file,all_characters
kbd1,Turkish Q,tr-TR,kbdtuq.klc,"a,b,ç,ğ"
kbd2,Empty,xx,empty.klc,
kbd3,Spaced,en-US,spaced.klc," a , b ,, c "
`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyboard_metadata.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadReadsRecordsInFileOrder(t *testing.T) {
	catalog := Load(writeCatalog(t, sampleCatalog), logging.NewNop())
	records := catalog.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	ids := []string{records[0].ID, records[1].ID, records[2].ID}
	if strings.Join(ids, ",") != "kbd1,kbd2,kbd3" {
		t.Fatalf("expected file order, got %v", ids)
	}
	first := records[0]
	if first.Name != "Turkish Q" || first.Locale != "tr-TR" || first.SourceFile != "kbdtuq.klc" {
		t.Fatalf("unexpected identity fields: %+v", first)
	}
	if first.Characters.Join(",") != "a,b,ç,ğ" {
		t.Fatalf("unexpected characters %q", first.Characters.Join(","))
	}
	if records[1].Characters.Len() != 0 {
		t.Fatalf("expected empty character set, got %v", records[1].Characters.Sorted())
	}
	if records[2].Characters.Join(",") != "a,b,c" {
		t.Fatalf("expected trimmed characters, got %q", records[2].Characters.Join(","))
	}
}

func TestLoadMissingCatalogYieldsEmpty(t *testing.T) {
	catalog := Load(filepath.Join(t.TempDir(), "absent.csv"), logging.NewNop())
	if catalog.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d records", catalog.Len())
	}
}

func TestLoadRejectsCatalogWithoutRequiredColumns(t *testing.T) {
	catalog := Load(writeCatalog(t, "id,name\nk,K\n"), logging.NewNop())
	if catalog.Len() != 0 {
		t.Fatalf("expected empty catalog for bad header, got %d", catalog.Len())
	}
}

func TestParseHandlesBOMReorderedColumnsAndShortRows(t *testing.T) {
	data := "\xEF\xBB\xBFall_characters,id,locale,name,source_file\n\"x,y\",k1,fr,French,fr.klc\nz,k2\n"
	records, skipped, err := Parse(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no skipped rows, got %d", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "k1" || records[0].Name != "French" || records[0].Characters.Join(",") != "x,y" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].ID != "k2" || records[1].Name != "" || records[1].Characters.Join(",") != "z" {
		t.Fatalf("unexpected padded record %+v", records[1])
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, _, err := Parse(strings.NewReader(""), nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestParseCharacters(t *testing.T) {
	set := ParseCharacters("ş, Ş ,,i,")
	if set.Join("|") != "i|Ş|ş" {
		t.Fatalf("unexpected set %q", set.Join("|"))
	}
	if ParseCharacters("").Len() != 0 {
		t.Fatal("expected empty set for empty list")
	}
}
