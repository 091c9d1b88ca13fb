package catalog

import "encoding/json"

// Product is one warehouse catalog record. Frequency is annual pick count
// and doubles as annual demand for the inventory calculations.
type Product struct {
	SKU         string                     `json:"sku"`
	ProductName string                     `json:"product_name"`
	Frequency   float64                    `json:"frequency"`
	Category    string                     `json:"category"`
	Dimensions  map[string]json.RawMessage `json:"dimensions_cm"`
	WeightKg    float64                    `json:"weight_kg"`
	UnitCost    float64                    `json:"unit_cost"`
}
