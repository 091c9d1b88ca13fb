package report

import (
	"sort"

	"github.com/angelmondragon/warehouse-optimizer/internal/abc"
	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/internal/inventory"
	"github.com/angelmondragon/warehouse-optimizer/internal/slotting"
)

// Report is the terminal artifact of an analysis run, shaped exactly like
// the persisted JSON document.
type Report struct {
	Metrics          slotting.Bundle                 `json:"metrics"`
	ABCAnalysis      ABCAnalysis                     `json:"abc_analysis"`
	InventoryMetrics map[string]inventory.Parameters `json:"inventory_metrics"`
	Layouts          Layouts                         `json:"layouts"`
}

type ABCAnalysis struct {
	CategoryA []catalog.Product `json:"categoryA"`
	CategoryB []catalog.Product `json:"categoryB"`
	CategoryC []catalog.Product `json:"categoryC"`
}

type Layouts struct {
	Original  []catalog.Product `json:"original"`
	Optimized OptimizedLayout   `json:"optimized"`
}

type OptimizedLayout struct {
	A []catalog.Product `json:"A"`
	B []catalog.Product `json:"B"`
	C []catalog.Product `json:"C"`
}

// Assemble merges the classification, slotting metrics and inventory
// parameters into one report. Purely structural: nothing is recomputed.
// The original layout lists all products by SKU ascending; the optimized
// layout keeps the classifier's frequency-descending order per zone.
func Assemble(products []catalog.Product, cls *abc.Classification, bundle slotting.Bundle, inv map[string]inventory.Parameters) *Report {
	original := make([]catalog.Product, len(products))
	copy(original, products)
	sort.SliceStable(original, func(i, j int) bool {
		return original[i].SKU < original[j].SKU
	})

	return &Report{
		Metrics: bundle,
		ABCAnalysis: ABCAnalysis{
			CategoryA: bucketOrEmpty(cls.A),
			CategoryB: bucketOrEmpty(cls.B),
			CategoryC: bucketOrEmpty(cls.C),
		},
		InventoryMetrics: inv,
		Layouts: Layouts{
			Original: original,
			Optimized: OptimizedLayout{
				A: bucketOrEmpty(cls.A),
				B: bucketOrEmpty(cls.B),
				C: bucketOrEmpty(cls.C),
			},
		},
	}
}

// bucketOrEmpty keeps empty buckets serializing as [] rather than null.
func bucketOrEmpty(bucket []catalog.Product) []catalog.Product {
	if bucket == nil {
		return []catalog.Product{}
	}
	return bucket
}
