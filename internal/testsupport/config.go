package testsupport

import (
	"path/filepath"
	"testing"

	"charkit/internal/config"
)

// CatalogHeader is the header line of a keyboard metadata CSV.
const CatalogHeader = "id,name,locale,source_file,all_characters\n"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test. The
// catalog path points at a file that does not exist unless WithCatalog is
// applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.CatalogPath = filepath.Join(base, "keyboard_metadata.csv")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalog writes rows below the catalog header to the config's catalog
// path.
func WithCatalog(rows ...string) ConfigOption {
	return func(b *configBuilder) {
		contents := CatalogHeader
		for _, row := range rows {
			contents += row + "\n"
		}
		WriteFile(b.t, b.cfg.Paths.CatalogPath, contents)
	}
}

// WithLogDir enables file logging below the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
