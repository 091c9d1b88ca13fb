package abc

import (
	"sort"

	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
)

// Bucket is an ABC classification tier.
type Bucket string

const (
	BucketA Bucket = "A"
	BucketB Bucket = "B"
	BucketC Bucket = "C"
)

// Classification partitions the catalog into the three tiers. Within each
// tier products are ordered by descending pick frequency, ties keeping their
// input order.
type Classification struct {
	A []catalog.Product
	B []catalog.Product
	C []catalog.Product
}

// Classify runs ABC analysis over the catalog. A product lands in the tier
// whose cumulative-share ceiling it falls under, inclusive: the record that
// pushes the running share past a threshold still belongs to the lower tier.
//
// A zero total frequency makes the shares meaningless and is reported as
// degenerate input instead of dividing by zero.
func Classify(products []catalog.Product, cfg config.AnalysisConfig) (*Classification, error) {
	var total float64
	for _, p := range products {
		total += p.Frequency
	}
	if total == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDegenerateInput, "total pick frequency is zero, analysis cannot be performed")
	}

	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Frequency > sorted[j].Frequency
	})

	cls := &Classification{}
	cumulative := 0.0
	for _, p := range sorted {
		cumulative += p.Frequency / total
		switch {
		case cumulative <= cfg.AThreshold:
			cls.A = append(cls.A, p)
		case cumulative <= cfg.BThreshold:
			cls.B = append(cls.B, p)
		default:
			cls.C = append(cls.C, p)
		}
	}
	return cls, nil
}

// Len returns the number of classified products.
func (c *Classification) Len() int {
	return len(c.A) + len(c.B) + len(c.C)
}

// BucketBySKU returns a lookup from SKU to tier. Membership checks go
// through this map rather than comparing product values against the tier
// slices.
func (c *Classification) BucketBySKU() map[string]Bucket {
	lookup := make(map[string]Bucket, c.Len())
	for _, p := range c.A {
		lookup[p.SKU] = BucketA
	}
	for _, p := range c.B {
		lookup[p.SKU] = BucketB
	}
	for _, p := range c.C {
		lookup[p.SKU] = BucketC
	}
	return lookup
}
