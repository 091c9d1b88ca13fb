package controllers

import (
	"net/http"

	"github.com/angelmondragon/warehouse-optimizer/api/responses"
	"github.com/angelmondragon/warehouse-optimizer/api/validators"
	"github.com/angelmondragon/warehouse-optimizer/internal/pipeline"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
	"github.com/angelmondragon/warehouse-optimizer/pkg/metrics"
)

// analyzeRequest carries optional per-run overrides. Anything omitted keeps
// the configured value. Cross-field rules (A below B) are enforced on the
// merged configuration, not here.
type analyzeRequest struct {
	InputPath  *string  `json:"input_path,omitempty"`
	AThreshold *float64 `json:"a_threshold,omitempty" validate:"omitempty,gt=0,lt=1"`
	BThreshold *float64 `json:"b_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
}

type analyzeResponse struct {
	Stage      string `json:"stage"`
	Products   int    `json:"products"`
	OutputPath string `json:"output_path"`
}

// Analyze runs the full pipeline on demand and reports where it ended. The
// persisted results file is what the report endpoint serves afterwards.
func Analyze(cfg *config.Config, logg *logger.Logger, pipelineMetrics *metrics.PipelineMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req analyzeRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		runCfg := cfg.Analysis
		if req.InputPath != nil {
			runCfg.InputPath = *req.InputPath
		}
		if req.AThreshold != nil {
			runCfg.AThreshold = *req.AThreshold
		}
		if req.BThreshold != nil {
			runCfg.BThreshold = *req.BThreshold
		}
		if err := runCfg.Validate(); err != nil {
			responses.WriteError(ctx, logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid analysis parameters"))
			return
		}

		runner, err := pipeline.New(pipeline.Params{
			Config:  runCfg,
			Logger:  logg,
			Metrics: pipelineMetrics,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building pipeline"))
			return
		}

		result, err := runner.Run(ctx)
		if err != nil {
			pipelineMetrics.IncFailure("api")
			responses.WriteError(ctx, logg, w, err)
			return
		}
		pipelineMetrics.IncSuccess("api")

		responses.WriteSuccess(w, analyzeResponse{
			Stage:      string(result.Stage),
			Products:   result.Products,
			OutputPath: result.OutputPath,
		})
	}
}
