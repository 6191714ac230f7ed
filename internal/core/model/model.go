// Package model wraps the pre-trained regression artifact. The artifact is
// two JSON files produced by the training pipeline: the ordered column list
// (the feature schema the model expects) and the weight set (intercept plus
// one coefficient per column). Training itself is out of scope; this package
// only covers invocation: feature row in, scalar price out.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/proproperty/valuation-api/internal/core/domain"
)

// ErrSchemaMismatch reports drift between the input-mapping code and the
// stored feature schema. It is a loud failure: a column the mapper needs to
// set is absent from the artifact's column list.
var ErrSchemaMismatch = errors.New("feature schema mismatch")

type weights struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// Artifact is the loaded scoring model.
type Artifact struct {
	columns   []string
	columnSet map[string]struct{}
	weights   weights
}

// Load reads both artifact files. Absence or corruption of either file is
// returned as an error; callers degrade to "valuation unavailable" rather
// than failing the process.
func Load(weightsPath, columnsPath string) (*Artifact, error) {
	var cols []string
	if err := readJSON(columnsPath, &cols); err != nil {
		return nil, fmt.Errorf("load columns artifact: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("load columns artifact: empty column list")
	}

	var w weights
	if err := readJSON(weightsPath, &w); err != nil {
		return nil, fmt.Errorf("load weights artifact: %w", err)
	}

	set := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}
	for c := range w.Coefficients {
		if _, ok := set[c]; !ok {
			return nil, fmt.Errorf("load weights artifact: coefficient %q not in column schema", c)
		}
	}

	return &Artifact{columns: cols, columnSet: set, weights: w}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Columns returns the feature schema in artifact order.
func (a *Artifact) Columns() []string {
	out := make([]string, len(a.columns))
	copy(out, a.columns)
	return out
}

// Predict scores a feature row. The row must have been produced by BuildRow
// so every schema column is present.
func (a *Artifact) Predict(row map[string]float64) float64 {
	price := a.weights.Intercept
	for col, value := range row {
		price += a.weights.Coefficients[col] * value
	}
	return price
}

// BuildRow maps a property input onto the feature schema: numeric fields are
// copied directly, amenity booleans become 0/1 indicator columns, and the
// furnishing category is one-hot encoded with "Fully Furnished" as the
// implicit baseline. Every column the mapper sets must exist in the schema;
// a missing column returns ErrSchemaMismatch instead of being skipped.
func (a *Artifact) BuildRow(in domain.PropertyInput) (map[string]float64, error) {
	row := make(map[string]float64, len(a.columns))
	for _, c := range a.columns {
		row[c] = 0
	}

	set := func(col string, v float64) error {
		if _, ok := a.columnSet[col]; !ok {
			return fmt.Errorf("%w: column %q not in model schema", ErrSchemaMismatch, col)
		}
		row[col] = v
		return nil
	}

	numeric := []struct {
		col string
		v   float64
	}{
		{"area", in.Area},
		{"bedrooms", float64(in.Bedrooms)},
		{"bathrooms", float64(in.Bathrooms)},
		{"stories", float64(in.Stories)},
		{"parking", float64(in.Parking)},
	}
	for _, n := range numeric {
		if err := set(n.col, n.v); err != nil {
			return nil, err
		}
	}

	indicators := []struct {
		col string
		on  bool
	}{
		{"mainroad_yes", in.Amenities.MainRoad},
		{"guestroom_yes", in.Amenities.GuestRoom},
		{"basement_yes", in.Amenities.Basement},
		{"hotwaterheating_yes", in.Amenities.HotWaterHeating},
		{"airconditioning_yes", in.Amenities.AirConditioning},
		{"prefarea_yes", in.Amenities.PreferredArea},
	}
	for _, ind := range indicators {
		if err := set(ind.col, indicator(ind.on)); err != nil {
			return nil, err
		}
	}

	switch in.Furnishing {
	case domain.SemiFurnished:
		if err := set("furnishingstatus_semi-furnished", 1); err != nil {
			return nil, err
		}
	case domain.Unfurnished:
		if err := set("furnishingstatus_unfurnished", 1); err != nil {
			return nil, err
		}
	}

	return row, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
