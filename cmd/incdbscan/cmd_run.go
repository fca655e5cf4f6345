package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nnstream/incdbscan"
	"github.com/nnstream/incdbscan/cmd/incdbscan/batch"
	"github.com/nnstream/incdbscan/cmd/incdbscan/config"
	"github.com/nnstream/incdbscan/dbscan"
)

var runFlags struct {
	configPath string
	pointsPath string
	deletes    string
	logLevel   string
	format     string
	eps        float64
	minPts     int
	oracle     bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Insert (and optionally delete) a batch of points, then report labels",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFlags.configPath, "config", "", "path to a config.yaml (default: ./config.yaml if present, else embedded defaults)")
	runCmd.Flags().StringVar(&runFlags.pointsPath, "points", "", "newline-delimited JSON file of points to insert (required)")
	runCmd.Flags().StringVar(&runFlags.deletes, "deletes", "", "newline-delimited JSON file of points to delete, applied after inserts")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "overrides the config's logging.level")
	runCmd.Flags().StringVar(&runFlags.format, "format", "", "overrides the config's output.format (text|json)")
	runCmd.Flags().Float64Var(&runFlags.eps, "eps", 0, "overrides the config's engine.eps")
	runCmd.Flags().IntVar(&runFlags.minPts, "min-pts", 0, "overrides the config's engine.min_pts")
	runCmd.Flags().BoolVar(&runFlags.oracle, "oracle", false, "report labels from a from-scratch batch DBSCAN pass instead of the incremental engine, for spot-checking")
	_ = runCmd.MarkFlagRequired("points")
}

func runRun(cmd *cobra.Command, args []string) error {
	runID := uuid.New().String()

	path, err := config.ResolveConfigPath(runFlags.configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if runFlags.logLevel != "" {
		cfg.Logging.Level = runFlags.logLevel
	}
	if runFlags.format != "" {
		cfg.Output.Format = runFlags.format
	}
	if runFlags.eps > 0 {
		cfg.Engine.Eps = runFlags.eps
	}
	if runFlags.minPts > 0 {
		cfg.Engine.MinPts = runFlags.minPts
	}

	logger := newLogger(cfg.Logging.Level)
	logger.Info("starting run", "run_id", runID, "eps", cfg.Engine.Eps, "min_pts", cfg.Engine.MinPts)

	metricOpts, err := cfg.MetricOptions()
	if err != nil {
		return err
	}
	engine, err := incdbscan.New(incdbscan.Options{
		Eps:    cfg.Engine.Eps,
		MinPts: cfg.Engine.MinPts,
		Metric: metricOpts,
	})
	if err != nil {
		return err
	}

	points, err := readVectorFile(runFlags.pointsPath)
	if err != nil {
		return err
	}
	logger.Info("loaded points", "run_id", runID, "count", humanize.Comma(int64(len(points))))

	insertWarnings, err := engine.InsertBatch(points)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	for _, w := range insertWarnings {
		logger.Warn("insert warning", "run_id", runID, "index", w.Index, "error", w.Err)
	}

	survivors := points
	if runFlags.deletes != "" {
		deletes, err := readVectorFile(runFlags.deletes)
		if err != nil {
			return err
		}
		logger.Info("loaded deletes", "run_id", runID, "count", humanize.Comma(int64(len(deletes))))

		deleteWarnings, err := engine.DeleteBatch(deletes)
		if err != nil {
			return fmt.Errorf("delete batch: %w", err)
		}
		for _, w := range deleteWarnings {
			logger.Warn("delete warning", "run_id", runID, "index", w.Index, "error", w.Err)
		}

		survivors = removeDeleted(points, deletes)
	}
	logger.Info("engine state after batch", "run_id", runID, "live_points", humanize.Comma(int64(engine.Size())))

	if runFlags.oracle {
		logger.Info("computing oracle labels", "run_id", runID, "count", humanize.Comma(int64(len(survivors))))
		labels, err := dbscan.Cluster(survivors, cfg.Engine.Eps, cfg.Engine.MinPts, metricOpts)
		if err != nil {
			return fmt.Errorf("oracle cluster: %w", err)
		}
		return reportLabels(cmd, cfg.Output.Format, survivors, labels)
	}

	labels := make([]int, 0, len(survivors))
	live := make([][]float64, 0, len(survivors))
	for _, v := range survivors {
		lbl, err := engine.LabelOf(v)
		if err != nil {
			continue
		}
		live = append(live, v)
		labels = append(labels, lbl)
	}

	return reportLabels(cmd, cfg.Output.Format, live, labels)
}

func readVectorFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return batch.ReadVectors(f)
}

// removeDeleted drops inserted values that were subsequently deleted, so the
// final report only looks up points the engine still holds live.
func removeDeleted(inserted, deletes [][]float64) [][]float64 {
	deleted := make(map[string]bool, len(deletes))
	for _, d := range deletes {
		deleted[vectorKey(d)] = true
	}

	var live [][]float64
	for _, v := range inserted {
		if !deleted[vectorKey(v)] {
			live = append(live, v)
		}
	}
	return live
}

func vectorKey(v []float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type labeledPoint struct {
	Value []float64 `json:"value"`
	Label int       `json:"label"`
}

func reportLabels(cmd *cobra.Command, format string, points [][]float64, labels []int) error {
	results := make([]labeledPoint, 0, len(points))
	clusters := make(map[int]int)

	for i, v := range points {
		lbl := labels[i]
		results = append(results, labeledPoint{Value: v, Label: lbl})
		clusters[lbl]++
	}

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	ids := make([]int, 0, len(clusters))
	for id := range clusters {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := cmd.OutOrStdout()
	for _, id := range ids {
		name := fmt.Sprintf("cluster %d", id)
		if id == incdbscan.Noise {
			name = "noise"
		}
		fmt.Fprintf(out, "%s: %s point(s)\n", name, humanize.Comma(int64(clusters[id])))
	}

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
