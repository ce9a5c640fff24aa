package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/tally/pkg/tally"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	schema, err := cfg.Schema()
	require.NoError(t, err)
	assert.Equal(t, tally.SalesSchema(), schema)

	group, value, err := cfg.ColumnIndexes()
	require.NoError(t, err)
	assert.Equal(t, 2, group, "Rep")
	assert.Equal(t, 6, value, "Total")
}

func TestParseOptionsDerivesHeader(t *testing.T) {
	t.Parallel()

	opts, err := Default().ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, "OrderDate,Region,Rep,Item,Units,Unit Cost,Total", opts.Header)
	assert.Equal(t, ",", opts.Delimiter)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	raw := `
input:
  path: data/q1.csv
  delimiter: ";"
  columns:
    - {name: Item, type: string}
    - {name: Units, type: int}
aggregate:
  group_by: Item
  value: Units
  combiner: max
report:
  limit: 3
cache:
  enabled: false
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "tally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "data/q1.csv", cfg.Input.Path)
	assert.Equal(t, "max", cfg.Aggregate.Combiner)
	assert.Equal(t, 3, cfg.Report.Limit)
	assert.False(t, cfg.Cache.Enabled)

	opts, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, "Item;Units", opts.Header)

	group, value, err := cfg.ColumnIndexes()
	require.NoError(t, err)
	assert.Equal(t, 0, group)
	assert.Equal(t, 1, value)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "no columns",
			mutate: func(c *Config) { c.Input.Columns = nil },
		},
		{
			name:   "unknown column type",
			mutate: func(c *Config) { c.Input.Columns[0].Type = "decimal" },
		},
		{
			name:   "unknown combiner",
			mutate: func(c *Config) { c.Aggregate.Combiner = "median" },
		},
		{
			name:   "unknown group column",
			mutate: func(c *Config) { c.Aggregate.GroupBy = "Salesperson" },
		},
		{
			name:   "unknown value column",
			mutate: func(c *Config) { c.Aggregate.Value = "Revenue" },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
