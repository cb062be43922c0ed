package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charkit/internal/api"
	"charkit/internal/extract"
	"charkit/internal/testsupport"
)

const testCatalog = testsupport.CatalogHeader + `kbd1,Near,xx-XX,near.klc,"b,c,d"
kbd2,Exact,yy-YY,exact.klc,"a,b,c"
`

type cliTestEnv struct {
	baseDir    string
	outputDir  string
	catalog    string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("CHARKIT_CATALOG", "")
	t.Setenv("CHARKIT_OUTPUT_DIR", "")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		outputDir:  filepath.Join(base, "out"),
		catalog:    filepath.Join(base, "keyboard_metadata.csv"),
		configPath: filepath.Join(base, "charkit.toml"),
	}
	testsupport.WriteFile(t, env.catalog, testCatalog)
	testsupport.WriteFile(t, env.configPath, "[paths]\noutput_dir = \"out\"\ncatalog_path = \"keyboard_metadata.csv\"\n\n[logging]\nlevel = \"error\"\n")
	return env
}

func runCLI(t *testing.T, args []string, stdin, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in output:\n%s", needle, haystack)
	}
}

func TestExtractFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"extract", "--language", "tr", "--stdin", "--preview"}, "Привет Hello\nEND\nignored\n", env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "Extracted 5 characters for tr (Turkish)")
	requireContains(t, out, "U+0048")
	requireContains(t, out, "LATIN CAPITAL LETTER H")

	path := filepath.Join(env.outputDir, "tr_unique_characters.txt")
	requireContains(t, out, path)
	if got := testsupport.ReadFile(t, path); got != " \nH\ne\nl\no\n" {
		t.Fatalf("unexpected extraction %q", got)
	}
}

func TestExtractInteractivePaste(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"extract"}, "lij\n1\ncab\nba\nEND\n", env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, languageQuestion)
	requireContains(t, out, "containing only 'END'")
	if got := testsupport.ReadFile(t, filepath.Join(env.outputDir, "lij_unique_characters.txt")); got != "\n\na\nb\nc\n" {
		t.Fatalf("unexpected extraction %q", got)
	}
}

func TestExtractInteractiveFileReprompts(t *testing.T) {
	env := setupCLITestEnv(t)
	sample := filepath.Join(env.baseDir, "sample.txt")
	testsupport.WriteFile(t, sample, "zz y")

	stdin := "xx\n2\n" + filepath.Join(env.baseDir, "missing.txt") + "\n" + sample + "\n"
	out, _, err := runCLI(t, []string{"extract"}, stdin, env.configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, out, "the path is not valid, retry")
	if strings.Count(out, pathQuestion) != 2 {
		t.Fatalf("expected two path prompts, got:\n%s", out)
	}
	if got := testsupport.ReadFile(t, filepath.Join(env.outputDir, "xx_unique_characters.txt")); got != " \ny\nz\n" {
		t.Fatalf("unexpected extraction %q", got)
	}
}

func TestExtractInvalidChoice(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"extract"}, "tr\n3\n", env.configPath)
	if !errors.Is(err, extract.ErrInvalidChoice) {
		t.Fatalf("expected ErrInvalidChoice, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(env.outputDir, "tr_unique_characters.txt")); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat returned %v", statErr)
	}
}

func TestExtractInputFlagRejectsBadPath(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"extract", "--input", filepath.Join(env.baseDir, "nope.txt")}, "", env.configPath)
	if !errors.Is(err, extract.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
}

func TestMatchWritesReportAndTables(t *testing.T) {
	env := setupCLITestEnv(t)
	inventory := filepath.Join(env.baseDir, "demo_unique_characters.txt")
	testsupport.WriteFile(t, inventory, "a\nb\nc\n")

	out, _, err := runCLI(t, []string{"match", inventory}, "", env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Loaded 3 unique characters from: "+inventory)
	requireContains(t, out, "Top 10 Keyboards Ranked by Coverage Rate")
	requireContains(t, out, "100.00%")
	reportPath := filepath.Join(env.outputDir, "demo_unique_characters_most_similar_keyboards.csv")
	requireContains(t, out, "Analysis complete! Results saved to: "+reportPath)

	lines := strings.Split(strings.TrimRight(testsupport.ReadFile(t, reportPath), "\r\n"), "\r\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 csv lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[2], "1,kbd2,Exact,") {
		t.Fatalf("expected exact keyboard first by coverage, got %q", lines[2])
	}
	if !strings.Contains(lines[2], ",100.0,100.0,") {
		t.Fatalf("expected whole percentages with one decimal, got %q", lines[2])
	}
}

func TestMatchJSONFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	inventory := filepath.Join(env.baseDir, "demo.txt")
	testsupport.WriteFile(t, inventory, "a\nb\nc\n")

	out, _, err := runCLI(t, []string{"match", "--format", "json", inventory}, "", env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	var payload struct {
		ByCoverage []map[string]any `json:"top10ByCoverage"`
		ByOverlap  []map[string]any `json:"top10ByOverlap"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if len(payload.ByCoverage) != 2 || payload.ByOverlap[0]["keyboard_id"] != "kbd2" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestMatchPromptsForPath(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"match"}, "\n", env.configPath)
	if !errors.Is(err, api.ErrNoInputFile) {
		t.Fatalf("expected ErrNoInputFile, got %v", err)
	}
	requireContains(t, out, inputQuestion)
	if err.Error() != "no input file specified" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestMatchRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"match", "--format", "xml", "x.txt"}, "", env.configPath); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestGlobalFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	altOut := filepath.Join(env.baseDir, "alt")
	altCatalog := filepath.Join(env.baseDir, "other.csv")
	testsupport.WriteFile(t, altCatalog, testsupport.CatalogHeader+"alt1,Alt,zz,alt.klc,\"q\"\n")

	out, _, err := runCLI(t, []string{"--output-dir", altOut, "--catalog", altCatalog, "catalog", "list"}, "", env.configPath)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, altCatalog)
	requireContains(t, out, "alt1")
	if info, err := os.Stat(altOut); err != nil || !info.IsDir() {
		t.Fatalf("expected output dir override to be created: %v", err)
	}
}

func TestCatalogListShowsConfiguredKeyboards(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"catalog", "list"}, "", env.configPath)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, env.catalog)
	requireContains(t, out, "[OK] 2 loaded")
	for _, want := range []string{"kbd1", "Near", "xx-XX", "near.klc", "kbd2", "Exact", "yy-YY", "exact.klc"} {
		requireContains(t, out, want)
	}
	if strings.Index(out, "kbd1") > strings.Index(out, "kbd2") {
		t.Fatalf("expected catalog order in table:\n%s", out)
	}
}

func TestCatalogListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"--catalog", filepath.Join(env.baseDir, "absent.csv"), "catalog", "list"}, "", env.configPath)
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, "none loaded")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"--log-level", "chatty", "catalog", "list"}, "", env.configPath); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}
