package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pkg.jsn.cam/tally/internal/runcache"
	"pkg.jsn.cam/tally/internal/runner"
	"pkg.jsn.cam/tally/pkg/tally"
)

var (
	runInput    string
	runGroupBy  string
	runValueCol string
	runCombiner string
	runLimit    int
	runTotal    bool
	runNoCache  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Parse one input file and report aggregated totals",
	RunE:  runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "Path to the delimited input file")
	runCmd.Flags().StringVar(&runGroupBy, "group-by", "", "Grouping column name (overrides config)")
	runCmd.Flags().StringVar(&runValueCol, "value", "", "Value column name (overrides config)")
	runCmd.Flags().StringVar(&runCombiner, "combiner", "", "Combiner name (overrides config)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "Preview row limit (overrides config)")
	runCmd.Flags().BoolVar(&runTotal, "total", false, "Reduce the whole value column instead of grouping")
	runCmd.Flags().BoolVar(&runNoCache, "no-cache", false, "Skip persisting this run")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	applyRunFlags()
	if cfg.Input.Path == "" {
		return fmt.Errorf("no input file: set --input or input.path in the config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	file, err := os.Open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	logger.Info("reading input",
		zap.String("path", cfg.Input.Path),
		zap.String("size", humanize.Bytes(uint64(info.Size()))))

	bar := progressbar.DefaultBytes(info.Size(), "reading "+filepath.Base(cfg.Input.Path))
	reader := io.TeeReader(file, bar)

	cache, err := openCache()
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	r := runner.New(cfg, logger, cache)

	if runTotal {
		res, err := r.RunTotal(reader)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s(%s) over %d rows: %s\n",
			cfg.Aggregate.Combiner, cfg.Aggregate.Value, res.Rows, res.Total.String())
		return nil
	}

	res, err := r.Run(reader)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(tally.RenderResult(res.Groups, cfg.Report.Limit))
	if cfg.Report.Limit > 0 && len(res.Groups) > cfg.Report.Limit {
		fmt.Printf("… %d more groups (raise --limit to see them)\n", len(res.Groups)-cfg.Report.Limit)
	}
	if res.RunID != "" {
		fmt.Printf("\nRun cached as %s\n", res.RunID)
	}
	return nil
}

func applyRunFlags() {
	if runInput != "" {
		cfg.Input.Path = runInput
	}
	if runGroupBy != "" {
		cfg.Aggregate.GroupBy = runGroupBy
	}
	if runValueCol != "" {
		cfg.Aggregate.Value = runValueCol
	}
	if runCombiner != "" {
		cfg.Aggregate.Combiner = runCombiner
	}
	if runLimit != 0 {
		cfg.Report.Limit = runLimit
	}
	if runNoCache {
		cfg.Cache.Enabled = false
	}
}

func openCache() (runcache.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	cache, err := runcache.OpenBolt(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open run cache: %w", err)
	}
	return cache, nil
}
