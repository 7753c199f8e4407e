package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default config should be valid", func(c *Config) {}, false},
		{"window with min periods", func(c *Config) { c.Index.Window = "30D"; c.Index.MinPeriods = 30 }, false},
		{"bad window", func(c *Config) { c.Index.Window = "30Y" }, true},
		{"min periods above window", func(c *Config) { c.Index.Window = "30D"; c.Index.MinPeriods = 31 }, true},
		{"min periods without window", func(c *Config) { c.Index.MinPeriods = 3 }, true},
		{"negative min periods", func(c *Config) { c.Index.MinPeriods = -1 }, true},
		{"unknown distribution", func(c *Config) { c.Index.Distribution = "weibull" }, true},
		{"unknown grouping", func(c *Config) { c.Index.Grouping = "season" }, true},
		{"long delimiter", func(c *Config) { c.Input.Delimiter = ";;" }, true},
		{"zero scale", func(c *Config) { c.Input.Scale = 0 }, true},
		{"bad start", func(c *Config) { c.Input.Start = "1965" }, true},
		{"end before start", func(c *Config) { c.Input.Start = "2020-12-31"; c.Input.End = "1965-01-01" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInputRangeAndDelimiter(t *testing.T) {
	in := InputConfig{Start: "1965-01-01", End: "2020-12-31", Delimiter: ";", Scale: 1}
	r, err := in.Range()
	require.NoError(t, err)
	assert.Equal(t, 1965, r[0].Year())
	assert.Equal(t, 2020, r[1].Year())
	assert.Equal(t, ';', in.DelimiterRune())

	assert.Equal(t, ',', (&InputConfig{}).DelimiterRune())
}

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "month", cfg.Index.Grouping)
	assert.Equal(t, 1.0, cfg.Input.Scale)
	assert.Equal(t, "-", cfg.Output.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spei.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
index:
  window: 30D
  min_periods: 30
  prob_zero: true
  distribution: gamma
input:
  path: data.csv
  column: "Prec [m/d] 081_JOURE"
  delimiter: ";"
  scale: 1000
`), 0644))

	t.Setenv("SPEI_INDEX_GROUPING", "quarter")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dist", "", "")
	flags.String("output", "-", "")
	require.NoError(t, flags.Parse([]string{"--dist", "pearson3", "--output", "out.csv"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "30D", cfg.Index.Window)
	assert.Equal(t, 30, cfg.Index.MinPeriods)
	assert.True(t, cfg.Index.ProbZero)
	assert.Equal(t, "pearson3", cfg.Index.Distribution)
	assert.Equal(t, "quarter", cfg.Index.Grouping)
	assert.Equal(t, "Prec [m/d] 081_JOURE", cfg.Input.Column)
	assert.Equal(t, ';', cfg.Input.DelimiterRune())
	assert.Equal(t, 1000.0, cfg.Input.Scale)
	assert.Equal(t, "out.csv", cfg.Output.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spei.yaml")
	require.NoError(t, os.WriteFile(path, []byte("index:\n  distribution: weibull\n"), 0644))

	_, err := Load(path, nil)
	assert.ErrorContains(t, err, "invalid config")
}
