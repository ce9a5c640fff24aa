package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/tally/combiners"
	"pkg.jsn.cam/tally/pkg/tally"
)

// Config holds the whole pipeline configuration. There is no implicit
// global session; every stage receives what it needs from here.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Aggregate AggregateConfig `yaml:"aggregate"`
	Report    ReportConfig    `yaml:"report"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// InputConfig describes the delimited source file.
type InputConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
	// Header is the exact line to filter out. Empty means derive it
	// from the column names and the delimiter.
	Header  string         `yaml:"header"`
	Columns []ColumnConfig `yaml:"columns"`
}

// ColumnConfig is one name/type pair of the declared schema.
type ColumnConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // string, int, float, date
}

// AggregateConfig names the grouping key, the value column and the
// combiner. Names resolve to schema indexes once, at config time.
type AggregateConfig struct {
	GroupBy  string `yaml:"group_by"`
	Value    string `yaml:"value"`
	Combiner string `yaml:"combiner"`
}

type ReportConfig struct {
	Limit int `yaml:"limit"`
}

type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration for the canonical sales dataset.
func Default() *Config {
	var columns []ColumnConfig
	for _, col := range tally.SalesSchema() {
		columns = append(columns, ColumnConfig{Name: col.Name, Type: col.Kind.String()})
	}

	return &Config{
		Input: InputConfig{
			Delimiter: tally.DefaultDelimiter,
			Columns:   columns,
		},
		Aggregate: AggregateConfig{
			GroupBy:  "Rep",
			Value:    "Total",
			Combiner: "sum",
		},
		Report: ReportConfig{Limit: tally.PreviewMedium},
		Cache: CacheConfig{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the config against the combiner registry and its own
// schema. Called once before a run.
func (c *Config) Validate() error {
	if len(c.Input.Columns) == 0 {
		return fmt.Errorf("input: no columns declared")
	}
	if _, err := c.Schema(); err != nil {
		return err
	}
	if !combiners.IsValid(c.Aggregate.Combiner) {
		return fmt.Errorf("aggregate: %q: %w", c.Aggregate.Combiner, tally.ErrUnknownCombiner)
	}
	if _, _, err := c.ColumnIndexes(); err != nil {
		return err
	}
	return nil
}

// Schema builds the typed schema from the declared columns.
func (c *Config) Schema() (tally.Schema, error) {
	schema := make(tally.Schema, 0, len(c.Input.Columns))
	for _, col := range c.Input.Columns {
		kind, err := parseKind(col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		schema = append(schema, tally.Column{Name: col.Name, Kind: kind})
	}
	return schema, nil
}

// ParseOptions assembles the parser options, deriving the header line
// from the schema when none is configured.
func (c *Config) ParseOptions() (tally.ParseOptions, error) {
	schema, err := c.Schema()
	if err != nil {
		return tally.ParseOptions{}, err
	}

	delim := c.Input.Delimiter
	if delim == "" {
		delim = tally.DefaultDelimiter
	}
	header := c.Input.Header
	if header == "" {
		header = schema.HeaderLine(delim)
	}

	return tally.ParseOptions{Delimiter: delim, Header: header, Schema: schema}, nil
}

// ColumnIndexes resolves the group-by and value column names against
// the schema.
func (c *Config) ColumnIndexes() (group, value int, err error) {
	schema, err := c.Schema()
	if err != nil {
		return 0, 0, err
	}

	group, ok := schema.Index(c.Aggregate.GroupBy)
	if !ok {
		return 0, 0, fmt.Errorf("aggregate: no column named %q", c.Aggregate.GroupBy)
	}
	value, ok = schema.Index(c.Aggregate.Value)
	if !ok {
		return 0, 0, fmt.Errorf("aggregate: no column named %q", c.Aggregate.Value)
	}
	return group, value, nil
}

func parseKind(s string) (tally.Kind, error) {
	switch s {
	case "string", "":
		return tally.StringType, nil
	case "int", "integer":
		return tally.IntType, nil
	case "float":
		return tally.FloatType, nil
	case "date":
		return tally.DateType, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tally", "runs.db")
}
