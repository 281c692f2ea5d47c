package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/soulscan/internal/aggregate"
	"github.com/danielpatrickdp/soulscan/internal/detect"
	"github.com/danielpatrickdp/soulscan/internal/report"
	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// #region config

// Config bounds the engine's parallelism.
type Config struct {
	Workers int
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// #endregion config

// #region engine

// Engine runs every detector over every file and aggregates the result.
type Engine struct {
	config    Config
	detectors []detect.Detector
	logger    *zap.Logger
}

// New creates an engine. With no detectors given, all five are used. A nil
// logger discards output.
func New(config Config, logger *zap.Logger, detectors ...detect.Detector) *Engine {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(detectors) == 0 {
		detectors = detect.All()
	}
	return &Engine{config: config, detectors: detectors, logger: logger}
}

// Analyze scores a set of extracted files. Files are analyzed in parallel and
// their signals merged in input order, so the report does not depend on
// scheduling. A file that failed extraction, or a detector that fails on a
// file, becomes a major "unanalyzable" signal; only cancellation of ctx
// aborts the run.
func (e *Engine) Analyze(ctx context.Context, files []token.File) (report.Report, error) {
	if err := ctx.Err(); err != nil {
		return report.Report{}, fmt.Errorf("analyze: %w", err)
	}
	start := time.Now()

	results := make([][]signals.Signal, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.analyzeFile(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Report{}, fmt.Errorf("analyze: %w", err)
	}

	var all []signals.Signal
	for _, sigs := range results {
		all = append(all, sigs...)
	}
	r := aggregate.Aggregate(aggregate.Group(all))
	r.Files = len(files)

	e.logger.Debug("analysis complete",
		zap.String("run_id", r.RunID.String()),
		zap.Int("files", len(files)),
		zap.Int("signals", len(all)),
		zap.Int("overall", r.OverallScore),
		zap.String("verdict", string(r.Verdict)),
		zap.Duration("elapsed", time.Since(start)))
	return r, nil
}

// #endregion engine

// #region per-file

func (e *Engine) analyzeFile(f token.File) []signals.Signal {
	if f.Err != nil {
		e.logger.Warn("file unanalyzable", zap.String("path", f.Path), zap.Error(f.Err))
		out := make([]signals.Signal, 0, len(e.detectors))
		for _, d := range e.detectors {
			out = append(out, signals.Unanalyzable(d.Category(), f.Path, f.Err))
		}
		return out
	}

	var out []signals.Signal
	for _, d := range e.detectors {
		sigs, err := runDetector(d, f.Tokens)
		if err != nil {
			e.logger.Warn("detector failed",
				zap.String("path", f.Path),
				zap.String("category", string(d.Category())),
				zap.Error(err))
			out = append(out, signals.Unanalyzable(d.Category(), f.Path, err))
			continue
		}
		out = append(out, sigs...)
	}
	return out
}

// runDetector converts a detector panic into an error so one bad file cannot
// take down the run.
func runDetector(d detect.Detector, tokens []token.Token) (sigs []signals.Signal, err error) {
	defer func() {
		if r := recover(); r != nil {
			sigs, err = nil, fmt.Errorf("%s detector panicked: %v", d.Category(), r)
		}
	}()
	return d.Analyze(tokens)
}

// #endregion per-file
