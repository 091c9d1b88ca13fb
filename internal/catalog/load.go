package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	pkgerrors "github.com/angelmondragon/warehouse-optimizer/pkg/errors"
)

// Load reads the catalog file and returns the decoded value for validation.
// It distinguishes an unreadable file from unparseable contents.
func Load(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInputUnreadable, err, fmt.Sprintf("reading catalog file %q", path)).
			WithDetails(map[string]any{"path": path})
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInputMalformed, err, fmt.Sprintf("parsing catalog file %q", path)).
			WithDetails(map[string]any{"path": path, "error": err.Error()})
	}
	return decoded, nil
}

// Decode converts a validated catalog value into typed products. Validation
// guarantees the numeric fields; anything else that fails the typed decode
// (for example a non-string sku) is treated as malformed input.
func Decode(data any) ([]Product, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "re-encoding catalog value")
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInputMalformed, err, "decoding catalog records")
	}
	return products, nil
}
