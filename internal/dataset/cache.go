package dataset

import (
	"context"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Cache lazily loads each dataset once and keeps it in memory. Dataset
// failures are best-effort: a file that cannot be read yields an empty
// table and a warning, and downstream resolution falls through to
// defaults.
type Cache struct {
	Dir         string
	YieldFile   string
	PriceFile   string
	CostFile    string
	ClimateFile string
	Normalize   CropNormalizer

	yieldOnce   sync.Once
	priceOnce   sync.Once
	costOnce    sync.Once
	climateOnce sync.Once

	yield      *Table
	price      *Table
	cost       *Table
	climate    *ClimateTable
	yieldErr   error
	priceErr   error
	costErr    error
	climateErr error
}

func (c *Cache) path(file string) string {
	return filepath.Join(c.Dir, file)
}

// Yield returns the yield table, loading it on first use.
func (c *Cache) Yield(ctx context.Context) *Table {
	c.yieldOnce.Do(func() {
		c.yield, c.yieldErr = LoadYield(ctx, c.path(c.YieldFile), c.Normalize)
		if c.yieldErr != nil {
			zap.L().Warn("dataset: yield load failed, using defaults", zap.Error(c.yieldErr))
			c.yield = NewTable()
		}
	})
	return c.yield
}

// Price returns the market price table, loading it on first use.
func (c *Cache) Price(ctx context.Context) *Table {
	c.priceOnce.Do(func() {
		c.price, c.priceErr = LoadPrice(ctx, c.path(c.PriceFile), c.Normalize)
		if c.priceErr != nil {
			zap.L().Warn("dataset: price load failed, using defaults", zap.Error(c.priceErr))
			c.price = NewTable()
		}
	})
	return c.price
}

// Cost returns the cultivation cost table, loading it on first use.
func (c *Cache) Cost(ctx context.Context) *Table {
	c.costOnce.Do(func() {
		c.cost, c.costErr = LoadCost(ctx, c.path(c.CostFile), c.Normalize)
		if c.costErr != nil {
			zap.L().Warn("dataset: cost load failed, using defaults", zap.Error(c.costErr))
			c.cost = NewTable()
		}
	})
	return c.cost
}

// Climate returns the climate vulnerability table, loading it on first use.
func (c *Cache) Climate(ctx context.Context) *ClimateTable {
	c.climateOnce.Do(func() {
		c.climate, c.climateErr = LoadClimate(ctx, c.path(c.ClimateFile))
		if c.climateErr != nil {
			zap.L().Warn("dataset: climate load failed, using defaults", zap.Error(c.climateErr))
			c.climate = NewClimateTable()
		}
	})
	return c.climate
}

// Status describes one loaded dataset for diagnostics.
type Status struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Rows  int    `json:"rows"`
	Crops int    `json:"crops,omitempty"`
	Error string `json:"error,omitempty"`
}

// Status loads every dataset and reports row counts and load errors.
func (c *Cache) Status(ctx context.Context) []Status {
	y, p, co, cl := c.Yield(ctx), c.Price(ctx), c.Cost(ctx), c.Climate(ctx)
	errStr := func(err error) string {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	return []Status{
		{Name: "yield", Path: c.path(c.YieldFile), Rows: y.Rows(), Crops: y.Crops(), Error: errStr(c.yieldErr)},
		{Name: "price", Path: c.path(c.PriceFile), Rows: p.Rows(), Crops: p.Crops(), Error: errStr(c.priceErr)},
		{Name: "cost", Path: c.path(c.CostFile), Rows: co.Rows(), Crops: co.Crops(), Error: errStr(c.costErr)},
		{Name: "climate", Path: c.path(c.ClimateFile), Rows: cl.Rows(), Error: errStr(c.climateErr)},
	}
}
