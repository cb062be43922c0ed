package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charkit/internal/match"
)

func sampleRankings() match.Rankings {
	a := match.Result{
		KeyboardID: "kbd1", KeyboardName: "Turkish Q", Locale: "tr-TR", SourceFile: "kbdtuq.klc",
		LanguageCharCount: 3, KeyboardCharCount: 3, OverlapCount: 2, MissingCount: 1, ExcessCount: 1,
		CoveragePercentage: 200.0 / 3.0, OverlapPercentage: 200.0 / 3.0,
		OverlapChars: "b,c", MissingChars: "a", ExcessChars: "d",
	}
	b := match.Result{KeyboardID: "kbd2", KeyboardName: "Other", CoveragePercentage: 0, OverlapPercentage: 100}
	return match.Rankings{ByCoverage: []match.Result{a, b}, ByOverlap: []match.Result{b, a}}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"tr_unique_characters.txt":   "tr_unique_characters_most_similar_keyboards.csv",
		"/data/lists/arz_unique.TXT": "arz_unique_most_similar_keyboards.csv",
		"inventory":                  "inventory_most_similar_keyboards.csv",
		"  dir/archive.tar.gz ":      "archive.tar_most_similar_keyboards.csv",
		"/x/.inventory":              ".inventory_most_similar_keyboards.csv",
		"/x/..inventory":             "..inventory_most_similar_keyboards.csv",
		"/x/.inventory.txt":          ".inventory_most_similar_keyboards.csv",
	}
	for input, want := range cases {
		if got := FileName(input); got != want {
			t.Errorf("FileName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRankings()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\r\n") {
		t.Fatal("expected CRLF line endings")
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected header, 2 labels and 4 result rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(Header, ",") {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][1] != CoverageLabel || rows[4][1] != OverlapLabel {
		t.Fatalf("unexpected label rows %v / %v", rows[1], rows[4])
	}
	for _, label := range [][]string{rows[1], rows[4]} {
		for i, field := range label {
			if i != 1 && field != "" {
				t.Fatalf("expected empty label fields, got %v", label)
			}
		}
	}
	first := rows[2]
	if first[0] != "1" || first[1] != "kbd1" || first[10] != "66.66666666666667" {
		t.Fatalf("unexpected first coverage row %v", first)
	}
	if first[12] != "b,c" || first[13] != "a" || first[14] != "d" {
		t.Fatalf("expected quoted char lists preserved, got %v", first[12:])
	}
	if rows[3][0] != "2" || rows[3][1] != "kbd2" {
		t.Fatalf("unexpected second coverage row %v", rows[3])
	}
	if rows[5][0] != "1" || rows[5][1] != "kbd2" || rows[6][0] != "2" || rows[6][1] != "kbd1" {
		t.Fatalf("expected ranks restart per section, got %v / %v", rows[5], rows[6])
	}
	if rows[3][10] != "0.0" || rows[3][11] != "100.0" {
		t.Fatalf("unexpected percentage rendering %v", rows[3][10:12])
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := map[float64]string{
		100:         "100.0",
		0:           "0.0",
		50:          "50.0",
		12.5:        "12.5",
		200.0 / 3.0: "66.66666666666667",
		100.0 / 7.0: "14.285714285714286",
	}
	for input, want := range cases {
		if got := FormatPercentage(input); got != want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", input, got, want)
		}
	}
}

func TestWriteCSVEmptyRankings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, match.Rankings{}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and two labels, got %d rows", len(rows))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "tr_most_similar_keyboards.csv")
	if err := os.WriteFile(target, []byte("old"), 0o644); err != nil {
		t.Fatalf("write stale report: %v", err)
	}
	path, err := WriteFile(dir, "/elsewhere/tr.txt", sampleRankings())
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if path != target {
		t.Fatalf("unexpected report path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "rank,keyboard_id,") {
		t.Fatalf("expected report content, got %q", data)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRankings()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	var payload map[string][]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(payload["top10ByCoverage"]) != 2 || len(payload["top10ByOverlap"]) != 2 {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["top10ByCoverage"][0]["keyboard_id"] != "kbd1" {
		t.Fatalf("unexpected first entry %v", payload["top10ByCoverage"][0])
	}

	buf.Reset()
	if err := WriteJSON(&buf, match.Rankings{}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"top10ByCoverage": []`) {
		t.Fatalf("expected empty arrays, got %s", buf.String())
	}
}
