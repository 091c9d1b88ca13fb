package slotting

import (
	"github.com/angelmondragon/warehouse-optimizer/internal/abc"
	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
)

// Bundle aggregates the travel-distance and labor-cost comparison between
// the current layout and the ABC-zoned layout. Distances are meters per
// year, times are hours per year, costs are currency rounded to cents.
type Bundle struct {
	OriginalDistance      float64 `json:"original_distance"`
	OptimizedDistance     float64 `json:"optimized_distance"`
	DistanceSaved         float64 `json:"distance_saved"`
	EfficiencyImprovement float64 `json:"efficiency_improvement"`
	OriginalTimeHours     float64 `json:"original_time_hours"`
	OptimizedTimeHours    float64 `json:"optimized_time_hours"`
	OriginalCost          float64 `json:"original_cost"`
	OptimizedCost         float64 `json:"optimized_cost"`
	CostSaved             float64 `json:"cost_saved"`
	TimeSavedHours        float64 `json:"time_saved_hours"`
}

// Compute derives the full bundle from the catalog in its input order plus
// the classification. Pure arithmetic; inputs are already validated.
func Compute(products []catalog.Product, cls *abc.Classification, cfg config.AnalysisConfig) Bundle {
	bundle := Bundle{
		OriginalDistance:  originalDistance(products),
		OptimizedDistance: optimizedDistance(cls, cfg),
	}
	bundle.DistanceSaved = bundle.OriginalDistance - bundle.OptimizedDistance
	if bundle.OriginalDistance > 0 {
		bundle.EfficiencyImprovement = bundle.DistanceSaved / bundle.OriginalDistance * 100
	}

	applyFinancials(&bundle, cfg)
	return bundle
}

// originalDistance models the unoptimized layout: the i-th product of the
// input (1-indexed) sits at a round trip of 2×i distance units.
func originalDistance(products []catalog.Product) float64 {
	var total float64
	for i, p := range products {
		total += float64(i+1) * 2 * p.Frequency
	}
	return total
}

// optimizedDistance charges every pick a fixed round trip for its zone.
func optimizedDistance(cls *abc.Classification, cfg config.AnalysisConfig) float64 {
	var total float64
	for _, p := range cls.A {
		total += p.Frequency * cfg.ZoneADistanceM
	}
	for _, p := range cls.B {
		total += p.Frequency * cfg.ZoneBDistanceM
	}
	for _, p := range cls.C {
		total += p.Frequency * cfg.ZoneCDistanceM
	}
	return total
}
