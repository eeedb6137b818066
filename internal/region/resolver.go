package region

import (
	"context"

	"go.uber.org/zap"

	"github.com/agrisense/crop-advisor/internal/dataset"
	"github.com/agrisense/crop-advisor/internal/model"
)

// Resolver looks up crop economics for a place, walking each axis from
// district to state to national data before falling back to embedded
// defaults. Resolution never fails: missing data degrades tier by tier.
type Resolver struct {
	Cache *dataset.Cache
	Norm  *Normalizer
}

// NewResolver wires a resolver over a dataset cache.
func NewResolver(cache *dataset.Cache, norm *Normalizer) *Resolver {
	return &Resolver{Cache: cache, Norm: norm}
}

// resolveAxis walks one metric through the three dataset tiers.
func resolveAxis(t *dataset.Table, state, district, crop string) (float64, model.Tier, bool) {
	if state != "" && district != "" {
		if v, ok := t.District(state, district, crop); ok {
			return v, model.TierDistrict, true
		}
	}
	if state != "" {
		if v, ok := t.State(state, crop); ok {
			return v, model.TierState, true
		}
	}
	if v, ok := t.National(crop); ok {
		return v, model.TierNational, true
	}
	return 0, model.TierDefault, false
}

// Resolve returns the economics for one crop in one place. The overall
// tier is the finest tier at which any axis found real data; it is
// TierDefault only when every axis fell back.
func (r *Resolver) Resolve(ctx context.Context, state, district, rawCrop string) model.RegionContext {
	crop := r.Norm.Canonical(rawCrop)
	fallback := DefaultEconomics(crop)
	tier := model.TierDefault

	yield, yt, ok := resolveAxis(r.Cache.Yield(ctx), state, district, crop)
	if !ok {
		yield = fallback.YieldQPerAcre
	} else {
		tier = model.Finer(tier, yt)
	}

	price, pt, ok := resolveAxis(r.Cache.Price(ctx), state, district, crop)
	if !ok {
		price = fallback.PricePerQuintal
	} else {
		tier = model.Finer(tier, pt)
	}

	cost, ct, ok := resolveAxis(r.Cache.Cost(ctx), state, district, crop)
	if !ok {
		cost = fallback.CostPerAcre
	} else {
		tier = model.Finer(tier, ct)
	}

	vuln, vt, ok := r.resolveVulnerability(ctx, state, district)
	if !ok {
		vuln = defaultVulnerability
	} else {
		tier = model.Finer(tier, vt)
	}

	zap.L().Debug("region: resolved",
		zap.String("crop", crop),
		zap.String("state", state),
		zap.String("district", district),
		zap.String("tier", string(tier)))

	return model.RegionContext{
		State:           TitlePlace(state),
		District:        TitlePlace(district),
		YieldQPerAcre:   yield,
		PricePerQuintal: price,
		CostPerAcre:     cost,
		Vulnerability:   vuln,
		Tier:            tier,
	}
}

func (r *Resolver) resolveVulnerability(ctx context.Context, state, district string) (float64, model.Tier, bool) {
	t := r.Cache.Climate(ctx)
	if state != "" && district != "" {
		if v, ok := t.District(state, district); ok {
			return v, model.TierDistrict, true
		}
	}
	if state != "" {
		if v, ok := t.State(state); ok {
			return v, model.TierState, true
		}
	}
	if v, ok := t.National(); ok {
		return v, model.TierNational, true
	}
	return 0, model.TierDefault, false
}
