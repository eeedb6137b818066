package dataset

import "strings"

type agg struct {
	sum float64
	n   int
}

func (a *agg) add(v float64) {
	a.sum += v
	a.n++
}

func (a *agg) mean() (float64, bool) {
	if a == nil || a.n == 0 {
		return 0, false
	}
	return a.sum / float64(a.n), true
}

func key(parts ...string) string {
	for i, p := range parts {
		parts[i] = normKey(p)
	}
	return strings.Join(parts, "|")
}

// Table aggregates one per-crop metric at district, state and national
// tiers. Repeated observations for the same key are averaged.
type Table struct {
	district map[string]*agg
	state    map[string]*agg
	national map[string]*agg
	rows     int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		district: make(map[string]*agg),
		state:    make(map[string]*agg),
		national: make(map[string]*agg),
	}
}

// Add records one observation. Placeholder districts contribute to the
// state and national tiers only. Crop must already be in canonical form.
func (t *Table) Add(state, district, crop string, v float64) {
	t.rows++
	if !skipDistrict(district) && normKey(state) != "" {
		k := key(state, district, crop)
		if t.district[k] == nil {
			t.district[k] = &agg{}
		}
		t.district[k].add(v)
	}
	if normKey(state) != "" {
		k := key(state, crop)
		if t.state[k] == nil {
			t.state[k] = &agg{}
		}
		t.state[k].add(v)
	}
	k := key(crop)
	if t.national[k] == nil {
		t.national[k] = &agg{}
	}
	t.national[k].add(v)
}

// District looks up the district-tier mean.
func (t *Table) District(state, district, crop string) (float64, bool) {
	return t.district[key(state, district, crop)].mean()
}

// State looks up the state-tier mean.
func (t *Table) State(state, crop string) (float64, bool) {
	return t.state[key(state, crop)].mean()
}

// National looks up the national-tier mean.
func (t *Table) National(crop string) (float64, bool) {
	return t.national[key(crop)].mean()
}

// Rows returns the number of observations loaded.
func (t *Table) Rows() int { return t.rows }

// Crops returns the number of distinct crops at the national tier.
func (t *Table) Crops() int { return len(t.national) }

// ClimateTable aggregates climate vulnerability by place. Values are
// expected on the 0-100 scale; LoadClimate rescales 0-1 datasets
// before adding.
type ClimateTable struct {
	district map[string]*agg
	state    map[string]*agg
	national agg
}

// NewClimateTable returns an empty ClimateTable.
func NewClimateTable() *ClimateTable {
	return &ClimateTable{
		district: make(map[string]*agg),
		state:    make(map[string]*agg),
	}
}

// Add records one vulnerability observation.
func (c *ClimateTable) Add(state, district string, v float64) {
	if !skipDistrict(district) && normKey(state) != "" {
		k := key(state, district)
		if c.district[k] == nil {
			c.district[k] = &agg{}
		}
		c.district[k].add(v)
	}
	if normKey(state) != "" {
		k := key(state)
		if c.state[k] == nil {
			c.state[k] = &agg{}
		}
		c.state[k].add(v)
	}
	c.national.add(v)
}

// District looks up the district-tier vulnerability.
func (c *ClimateTable) District(state, district string) (float64, bool) {
	return c.district[key(state, district)].mean()
}

// State looks up the state-tier vulnerability.
func (c *ClimateTable) State(state string) (float64, bool) {
	return c.state[key(state)].mean()
}

// National returns the mean vulnerability across all observations.
func (c *ClimateTable) National() (float64, bool) {
	return c.national.mean()
}

// Rows returns the number of observations loaded.
func (c *ClimateTable) Rows() int { return c.national.n }
