package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/angelmondragon/warehouse-optimizer/internal/abc"
	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/internal/inventory"
	"github.com/angelmondragon/warehouse-optimizer/internal/report"
	"github.com/angelmondragon/warehouse-optimizer/internal/slotting"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
	"github.com/angelmondragon/warehouse-optimizer/pkg/metrics"
)

// Stage names the coordinator's states. A run walks them in order and ends
// in Persisted, or in Aborted from whichever stage failed.
type Stage string

const (
	StageLoading          Stage = "loading"
	StageValidating       Stage = "validating"
	StageClassifying      Stage = "classifying"
	StageComputingMetrics Stage = "computing_metrics"
	StageAssembling       Stage = "assembling"
	StagePersisted        Stage = "persisted"
	StageAborted          Stage = "aborted"
)

// Params configure a pipeline runner.
type Params struct {
	Config  config.AnalysisConfig
	Logger  *logger.Logger
	Metrics *metrics.PipelineMetrics
}

// Runner executes the analysis pipeline: load, validate, classify, compute,
// assemble, persist. Synchronous and single-shot; every failure aborts the
// run before any output file is produced.
type Runner struct {
	cfg     config.AnalysisConfig
	logg    *logger.Logger
	metrics *metrics.PipelineMetrics
}

// Result reports where a run ended and, on success, what it produced.
type Result struct {
	Stage      Stage
	Report     *report.Report
	OutputPath string
	Products   int
}

func New(params Params) (*Runner, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := params.Config.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:     params.Config,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Run executes one analysis over the configured input file. The returned
// error always carries a pipeline taxonomy code; callers decide how to
// surface it. No output file exists for an aborted run unless a previous
// run already produced one.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	ctx = r.logg.WithRunID(ctx, uuid.NewString())

	// Loading
	sctx, start := r.enter(ctx, StageLoading)
	decoded, err := catalog.Load(r.cfg.InputPath)
	if err != nil {
		return r.abort(sctx, err)
	}
	r.leave(sctx, StageLoading, start)

	// Validating
	sctx, start = r.enter(ctx, StageValidating)
	if findings := catalog.Validate(decoded); len(findings) > 0 {
		return r.abort(sctx, validationError(findings))
	}
	products, err := catalog.Decode(decoded)
	if err != nil {
		return r.abort(sctx, err)
	}
	r.leave(r.logg.WithField(sctx, "products", len(products)), StageValidating, start)

	// Classifying
	sctx, start = r.enter(ctx, StageClassifying)
	cls, err := abc.Classify(products, r.cfg)
	if err != nil {
		return r.abort(sctx, err)
	}
	sctx = r.logg.WithFields(sctx, map[string]any{
		"zone_a": len(cls.A),
		"zone_b": len(cls.B),
		"zone_c": len(cls.C),
	})
	r.leave(sctx, StageClassifying, start)

	// ComputingMetrics
	sctx, start = r.enter(ctx, StageComputingMetrics)
	bundle := slotting.Compute(products, cls, r.cfg)
	inv := inventory.Compute(products, r.cfg)
	sctx = r.logg.WithFields(sctx, map[string]any{
		"efficiency_improvement": bundle.EfficiencyImprovement,
		"cost_saved":             bundle.CostSaved,
	})
	r.leave(sctx, StageComputingMetrics, start)

	// Assembling
	sctx, start = r.enter(ctx, StageAssembling)
	rep := report.Assemble(products, cls, bundle, inv)
	r.leave(sctx, StageAssembling, start)

	// Persisted
	sctx, start = r.enter(ctx, StagePersisted)
	if err := writeReport(r.cfg.OutputPath, rep); err != nil {
		return r.abort(sctx, err)
	}
	r.leave(r.logg.WithField(sctx, "output_path", r.cfg.OutputPath), StagePersisted, start)

	return &Result{
		Stage:      StagePersisted,
		Report:     rep,
		OutputPath: r.cfg.OutputPath,
		Products:   len(products),
	}, nil
}

func (r *Runner) enter(ctx context.Context, stage Stage) (context.Context, time.Time) {
	return r.logg.WithStage(ctx, string(stage)), time.Now()
}

func (r *Runner) leave(ctx context.Context, stage Stage, start time.Time) {
	r.metrics.ObserveStage(string(stage), time.Since(start))
	r.logg.Info(ctx, "stage complete")
}

func (r *Runner) abort(ctx context.Context, err error) (*Result, error) {
	r.logg.Error(ctx, "analysis aborted", err)
	return &Result{Stage: StageAborted}, err
}

func validationError(findings []catalog.RecordError) error {
	causes := make([]error, len(findings))
	for i, f := range findings {
		causes[i] = f
	}
	return pkgerrors.Wrap(
		pkgerrors.CodeValidation,
		multierr.Combine(causes...),
		fmt.Sprintf("catalog validation produced %d finding(s)", len(findings)),
	).WithDetails(findings)
}

// writeReport persists through a temp file and rename so a failed write
// never leaves a truncated results document behind.
func writeReport(path string, rep *report.Report) error {
	raw, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutputWrite, err, "encoding results")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".results-*.json")
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeOutputWrite, err, "creating results file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeOutputWrite, err, "writing results file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeOutputWrite, err, "closing results file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return pkgerrors.Wrap(pkgerrors.CodeOutputWrite, err, "replacing results file")
	}
	return nil
}
