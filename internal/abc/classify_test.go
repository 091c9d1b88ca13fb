package abc

import (
	"fmt"
	"testing"

	"github.com/angelmondragon/warehouse-optimizer/internal/catalog"
	"github.com/angelmondragon/warehouse-optimizer/pkg/config"
	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
)

func defaultConfig() config.AnalysisConfig {
	return config.AnalysisConfig{AThreshold: 0.80, BThreshold: 0.95}
}

func product(sku string, frequency float64) catalog.Product {
	return catalog.Product{SKU: sku, ProductName: "product " + sku, Frequency: frequency}
}

func TestClassifyWorkedExample(t *testing.T) {
	// total=160, cumulative shares 0.625, 0.9375, 1.0
	products := []catalog.Product{
		product("P-LOW", 10),
		product("P-HIGH", 100),
		product("P-MID", 50),
	}

	cls, err := Classify(products, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cls.A) != 1 || cls.A[0].SKU != "P-HIGH" {
		t.Fatalf("expected P-HIGH alone in A, got %+v", cls.A)
	}
	if len(cls.B) != 1 || cls.B[0].SKU != "P-MID" {
		t.Fatalf("expected P-MID alone in B, got %+v", cls.B)
	}
	if len(cls.C) != 1 || cls.C[0].SKU != "P-LOW" {
		t.Fatalf("expected P-LOW alone in C, got %+v", cls.C)
	}
}

func TestClassifyZeroTotalFrequencyIsDegenerate(t *testing.T) {
	products := []catalog.Product{product("P-1", 0), product("P-2", 0)}

	_, err := Classify(products, defaultConfig())
	if err == nil {
		t.Fatal("expected degenerate-input error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDegenerateInput {
		t.Fatalf("expected DEGENERATE_INPUT, got %v", err)
	}
}

func TestClassifyPartitionIsDisjointAndExhaustive(t *testing.T) {
	var products []catalog.Product
	for i := 0; i < 40; i++ {
		products = append(products, product(fmt.Sprintf("SKU-%02d", i), float64(1+i*7%13)))
	}

	cls, err := Classify(products, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cls.Len() != len(products) {
		t.Fatalf("expected %d classified products, got %d", len(products), cls.Len())
	}

	lookup := cls.BucketBySKU()
	if len(lookup) != len(products) {
		t.Fatalf("buckets overlap or drop products: %d SKUs in lookup, %d in input", len(lookup), len(products))
	}
	for _, p := range products {
		if _, ok := lookup[p.SKU]; !ok {
			t.Fatalf("SKU %s missing from classification", p.SKU)
		}
	}
}

func TestClassifyBoundaryRecordIsInclusive(t *testing.T) {
	// Two equal products: shares 0.5 and 1.0. With thresholds 0.5/0.75 the
	// first lands exactly on the A ceiling and stays in A; the second
	// exceeds B's ceiling and falls to C.
	products := []catalog.Product{product("P-1", 10), product("P-2", 10)}
	cfg := config.AnalysisConfig{AThreshold: 0.5, BThreshold: 0.75}

	cls, err := Classify(products, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cls.A) != 1 || cls.A[0].SKU != "P-1" {
		t.Fatalf("expected P-1 in A, got %+v", cls.A)
	}
	if len(cls.B) != 0 {
		t.Fatalf("expected empty B, got %+v", cls.B)
	}
	if len(cls.C) != 1 || cls.C[0].SKU != "P-2" {
		t.Fatalf("expected P-2 in C, got %+v", cls.C)
	}
}

func TestClassifyStableOrderForEqualFrequencies(t *testing.T) {
	products := []catalog.Product{
		product("FIRST", 5),
		product("SECOND", 5),
		product("THIRD", 5),
	}

	cls, err := Classify(products, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var order []string
	for _, p := range cls.A {
		order = append(order, p.SKU)
	}
	for _, p := range cls.B {
		order = append(order, p.SKU)
	}
	for _, p := range cls.C {
		order = append(order, p.SKU)
	}
	want := []string{"FIRST", "SECOND", "THIRD"}
	for i, sku := range want {
		if order[i] != sku {
			t.Fatalf("expected input order preserved for ties, got %v", order)
		}
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	products := []catalog.Product{product("P-LOW", 1), product("P-HIGH", 100)}

	if _, err := Classify(products, defaultConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if products[0].SKU != "P-LOW" || products[1].SKU != "P-HIGH" {
		t.Fatalf("input slice was reordered: %+v", products)
	}
}
