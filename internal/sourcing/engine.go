package sourcing

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/rshade/canteenco2/internal/logging"
)

// Engine scores the items of a sourcing dataset. It is read-only after
// construction and safe for concurrent use.
type Engine struct {
	items []Item
}

// NewEngine returns an Engine over items. Items are ordered by ID so that
// equal scores come back in a stable order.
func NewEngine(items []Item) *Engine {
	sorted := make([]Item, len(items))
	for i, it := range items {
		it.Months = maps.Clone(it.Months)
		sorted[i] = it
	}
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return &Engine{items: sorted}
}

// Items returns the engine's items ordered by ID.
func (e *Engine) Items() []Item {
	return slices.Clone(e.items)
}

// MonthlyRecommendations returns one recommendation per item that has data
// for month (0-11), highest score first. Items without data for the month
// are skipped.
func (e *Engine) MonthlyRecommendations(ctx context.Context, month int) ([]Recommendation, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	recs := make([]Recommendation, 0, len(e.items))
	for _, it := range e.items {
		opt, ok := it.Months[month]
		if !ok {
			continue
		}
		recs = append(recs, recommend(it, opt))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "sourcing").
		Str("operation", "MonthlyRecommendations").
		Int("month", month).
		Int("items", len(recs)).
		Msg("sourcing recommendations computed")

	return recs, nil
}

// recommend picks the domestic option when it scores at least as well as
// the import and is in season.
func recommend(it Item, opt MonthOption) Recommendation {
	dkCO2 := it.CO2Base * TransportMultiplier(OriginDK)
	importCO2 := it.CO2Base * TransportMultiplier(opt.ImportOrigin)

	dkScore := Score(opt.DKPrice, opt.DKQuality, dkCO2, true)
	importScore := Score(opt.ImportPrice, opt.ImportQuality, importCO2, false)

	if dkScore >= importScore && opt.DKStatus != StatusOutOfSeason {
		return Recommendation{
			ID:       it.ID,
			Name:     it.Name,
			Category: it.Category,
			Origin:   OriginDK,
			Status:   opt.DKStatus,
			Price:    opt.DKPrice,
			CO2:      dkCO2,
			Quality:  opt.DKQuality,
			Score:    percent(dkScore),
		}
	}

	origin := opt.ImportOrigin
	if origin == "" {
		origin = OriginWorld
	}
	return Recommendation{
		ID:       it.ID,
		Name:     it.Name,
		Category: it.Category,
		Origin:   origin,
		Status:   StatusImport,
		Price:    opt.ImportPrice,
		CO2:      importCO2,
		Quality:  opt.ImportQuality,
		Score:    percent(importScore),
		IsImport: true,
	}
}
