package catalog

import "fmt"

// skuSentinel labels records whose own sku field is missing or unusable.
const skuSentinel = "N/A"

var requiredKeys = []string{"sku", "product_name", "frequency", "category", "dimensions_cm", "weight_kg", "unit_cost"}

var numericKeys = []string{"frequency", "unit_cost", "weight_kg"}

var dimensionKeys = []string{"length", "width", "height"}

// RecordError describes one validation finding. Index is the record's
// position in the input list, or -1 for container-level findings.
type RecordError struct {
	Index   int    `json:"index"`
	SKU     string `json:"sku"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e RecordError) Error() string {
	return e.Message
}

// Validate checks a decoded JSON value against the catalog shape. It returns
// every finding rather than stopping at the first: a bad upload should come
// back with the full list of problems. An empty slice means the value is a
// well-formed product list.
//
// The container check runs first; per-record checks only run when the top
// level really is a list.
func Validate(data any) []RecordError {
	list, ok := data.([]any)
	if !ok {
		return []RecordError{{
			Index:   -1,
			SKU:     skuSentinel,
			Message: "invalid data format: expected a JSON list",
		}}
	}

	var errs []RecordError
	for i, entry := range list {
		record, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, RecordError{
				Index:   i,
				SKU:     skuSentinel,
				Message: fmt.Sprintf("product at index %d is not an object", i),
			})
			continue
		}

		sku := skuLabel(record)

		for _, key := range requiredKeys {
			if _, ok := record[key]; !ok {
				errs = append(errs, RecordError{
					Index:   i,
					SKU:     sku,
					Field:   key,
					Message: fmt.Sprintf("product at index %d is missing required key %q", i, key),
				})
			}
		}

		errs = append(errs, validateNumericFields(record, i, sku)...)
	}
	return errs
}

func validateNumericFields(record map[string]any, index int, sku string) []RecordError {
	var errs []RecordError

	for _, key := range numericKeys {
		value, ok := record[key].(float64)
		if !ok || value < 0 {
			errs = append(errs, RecordError{
				Index:   index,
				SKU:     sku,
				Field:   key,
				Message: fmt.Sprintf("invalid %q for SKU %q at index %d", key, sku, index),
			})
		}
	}

	dims, ok := record["dimensions_cm"].(map[string]any)
	if !ok || !hasDimensionKeys(dims) {
		errs = append(errs, RecordError{
			Index:   index,
			SKU:     sku,
			Field:   "dimensions_cm",
			Message: fmt.Sprintf("invalid %q for SKU %q at index %d", "dimensions_cm", sku, index),
		})
	}

	return errs
}

func hasDimensionKeys(dims map[string]any) bool {
	for _, key := range dimensionKeys {
		if _, ok := dims[key]; !ok {
			return false
		}
	}
	return true
}

func skuLabel(record map[string]any) string {
	if sku, ok := record["sku"].(string); ok && sku != "" {
		return sku
	}
	return skuSentinel
}
