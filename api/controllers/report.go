package controllers

import (
	"net/http"
	"os"

	"github.com/angelmondragon/warehouse-optimizer/api/responses"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
	"github.com/angelmondragon/warehouse-optimizer/pkg/logger"
)

// GetReport serves the persisted analysis results verbatim. The pipeline is
// the only writer; this handler never recomputes anything.
func GetReport(cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := os.ReadFile(cfg.Analysis.OutputPath)
		if err != nil {
			if os.IsNotExist(err) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeNotFound, "no analysis results yet, run an analysis first"))
				return
			}
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading results file"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(raw); err != nil && logg != nil {
			logg.Error(r.Context(), "writing report response", err)
		}
	}
}
