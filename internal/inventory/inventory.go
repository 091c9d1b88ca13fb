package inventory

import (
	"math"

	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
)

const daysPerYear = 365

// Parameters are the per-SKU reorder policy outputs, in whole units.
type Parameters struct {
	EOQ         int `json:"eoq"`
	SafetyStock int `json:"safety_stock"`
}

// Compute derives EOQ and safety stock for every product independently.
// Results are keyed by SKU; a duplicate SKU overwrites the earlier entry
// (last write wins).
func Compute(products []catalog.Product, cfg config.AnalysisConfig) map[string]Parameters {
	result := make(map[string]Parameters, len(products))
	for _, p := range products {
		result[p.SKU] = Parameters{
			EOQ:         economicOrderQuantity(p, cfg),
			SafetyStock: safetyStock(p, cfg),
		}
	}
	return result
}

// economicOrderQuantity is √(2DS/H) with H = unit cost × holding rate.
// A free-to-hold product (unit cost 0) has no meaningful EOQ and yields 0.
func economicOrderQuantity(p catalog.Product, cfg config.AnalysisConfig) int {
	holdingCost := p.UnitCost * cfg.HoldingCostRate
	if holdingCost <= 0 {
		return 0
	}
	eoq := math.Sqrt(2 * p.Frequency * cfg.CostPerOrder / holdingCost)
	return int(math.Ceil(eoq))
}

// safetyStock approximates daily demand deviation as a fixed fraction of
// average daily demand. Fractional units are not orderable, so the result
// rounds up.
func safetyStock(p catalog.Product, cfg config.AnalysisConfig) int {
	dailyStdDev := p.Frequency / daysPerYear * cfg.VariabilityFactor
	stock := cfg.ServiceLevelZ * dailyStdDev * math.Sqrt(cfg.LeadTimeDays)
	return int(math.Ceil(stock))
}
