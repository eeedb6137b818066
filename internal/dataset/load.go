package dataset

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
)

// acresPerHectare converts government per-hectare figures to per-acre.
const acresPerHectare = 2.471

// CropNormalizer maps a raw dataset crop name to its canonical form.
type CropNormalizer func(string) string

func loadRows(ctx context.Context, path string, row func(rec []string, col map[string]int)) error {
	f, err := os.Open(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	headerCh := make(chan []string, 1)
	rows, errs := StreamCSV(ctx, f, CSVOptions{HeaderCh: headerCh, LazyQuotes: true})

	var col map[string]int
	for rec := range rows {
		if col == nil {
			col = mapColumnsNormalized(<-headerCh)
		}
		row(rec, col)
	}
	return <-errs
}

// LoadYield builds the yield table from a crop production dataset.
// Yield is derived per row as quintals per acre from production tonnes
// over cultivated hectares. Rows missing crop, area or production are
// skipped.
func LoadYield(ctx context.Context, path string, norm CropNormalizer) (*Table, error) {
	if norm == nil {
		norm = func(s string) string { return s }
	}
	t := NewTable()
	err := loadRows(ctx, path, func(rec []string, col map[string]int) {
		crop := norm(firstNonEmpty(rec, col, "crop", "crop name", "commodity"))
		if crop == "" {
			return
		}
		area := parseFloat64Or(firstNonEmpty(rec, col, "area", "area ha", "areaha"), 0)
		production := parseFloat64Or(firstNonEmpty(rec, col, "production", "production tonnes", "productiontonnes"), 0)
		if area <= 0 || production <= 0 {
			return
		}
		state := firstNonEmpty(rec, col, "state name", "state", "statename")
		district := firstNonEmpty(rec, col, "district name", "district", "districtname")
		// tonnes/ha → quintals/acre
		t.Add(state, district, crop, (production/area)*10/acresPerHectare)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadPrice builds the market price table (rupees per quintal).
func LoadPrice(ctx context.Context, path string, norm CropNormalizer) (*Table, error) {
	if norm == nil {
		norm = func(s string) string { return s }
	}
	t := NewTable()
	err := loadRows(ctx, path, func(rec []string, col map[string]int) {
		crop := norm(firstNonEmpty(rec, col, "commodity", "crop", "crop name"))
		if crop == "" {
			return
		}
		price := parseFloat64Or(firstNonEmpty(rec, col, "modal price", "modal price rs./quintal", "price", "avg price"), 0)
		if price <= 0 {
			return
		}
		state := firstNonEmpty(rec, col, "state", "state name")
		district := firstNonEmpty(rec, col, "district")
		t.Add(state, district, crop, price)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadCost builds the cultivation cost table (rupees per acre).
func LoadCost(ctx context.Context, path string, norm CropNormalizer) (*Table, error) {
	if norm == nil {
		norm = func(s string) string { return s }
	}
	t := NewTable()
	err := loadRows(ctx, path, func(rec []string, col map[string]int) {
		crop := norm(firstNonEmpty(rec, col, "crop", "crop name", "commodity"))
		if crop == "" {
			return
		}
		cost := parseFloat64Or(firstNonEmpty(rec, col,
			"cost per acre", "cost a2 fl", "cost b2", "cost c2", "variable cost", "total cost"), 0)
		if cost <= 0 {
			return
		}
		state := firstNonEmpty(rec, col, "state", "state name")
		district := firstNonEmpty(rec, col, "district")
		t.Add(state, district, crop, cost)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadClimate builds the climate vulnerability table. The scale is
// detected once per dataset: when every index fits in [0, 1] the whole
// file is treated as unit-scaled and rescaled to 0-100.
func LoadClimate(ctx context.Context, path string) (*ClimateTable, error) {
	type obs struct {
		state, district string
		value           float64
	}
	var rows []obs
	maxV := 0.0
	err := loadRows(ctx, path, func(rec []string, col map[string]int) {
		v := parseFloat64Or(firstNonEmpty(rec, col,
			"vulnerability index", "composite vulnerability", "vulnerability",
			"overall vulnerability", "climate vulnerability", "index"), -1)
		if v < 0 {
			return
		}
		state := firstNonEmpty(rec, col, "state", "state name")
		district := firstNonEmpty(rec, col, "district", "district name")
		if state == "" {
			return
		}
		rows = append(rows, obs{state: state, district: district, value: v})
		if v > maxV {
			maxV = v
		}
	})
	if err != nil {
		return nil, err
	}

	scale := 1.0
	if maxV <= 1.0 {
		scale = 100
	}
	t := NewClimateTable()
	for _, o := range rows {
		t.Add(o.state, o.district, o.value*scale)
	}
	return t, nil
}
