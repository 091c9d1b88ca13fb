package slotting

import (
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	"github.com/shopspring/decimal"
)

const secondsPerHour = 3600

// applyFinancials converts the distance figures into labor hours and cost.
// Costs are money, so the currency arithmetic runs through decimal and
// rounds to cents before the values land in the bundle.
func applyFinancials(bundle *Bundle, cfg config.AnalysisConfig) {
	bundle.OriginalTimeHours = bundle.OriginalDistance / (cfg.WalkingSpeedMPS * secondsPerHour)
	bundle.OptimizedTimeHours = bundle.OptimizedDistance / (cfg.WalkingSpeedMPS * secondsPerHour)
	bundle.TimeSavedHours = bundle.OriginalTimeHours - bundle.OptimizedTimeHours

	rate := decimal.NewFromFloat(cfg.LaborCostPerHour)
	originalCost := decimal.NewFromFloat(bundle.OriginalTimeHours).Mul(rate).Round(2)
	optimizedCost := decimal.NewFromFloat(bundle.OptimizedTimeHours).Mul(rate).Round(2)

	bundle.OriginalCost = originalCost.InexactFloat64()
	bundle.OptimizedCost = optimizedCost.InexactFloat64()
	bundle.CostSaved = originalCost.Sub(optimizedCost).InexactFloat64()
}
