package api

import (
	"context"
	"fmt"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/greenops"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

// ImpactResponse is a display-rounded calculation result with carbon
// equivalencies for the annual total.
type ImpactResponse struct {
	impact.CalculationResult
	Equivalencies greenops.EquivalencyOutput `json:"equivalencies"`
}

// SourcingResponse lists the recommendations for one month.
type SourcingResponse struct {
	Month           int                       `json:"month"`
	Recommendations []sourcing.Recommendation `json:"recommendations"`
}

// AlternativesResponse lists plant-based substitutes for a meat.
type AlternativesResponse struct {
	Meat         string                `json:"meat"`
	Alternatives []factors.Alternative `json:"alternatives"`
}

// TipsResponse lists waste reduction tips.
type TipsResponse struct {
	Category string        `json:"category,omitempty"`
	Tips     []factors.Tip `json:"tips"`
}

// SeasonalResponse lists the produce in season in one month.
type SeasonalResponse struct {
	Month   int                       `json:"month"`
	Produce []factors.SeasonalProduce `json:"produce"`
}

// FactorsResponse lists emission factors.
type FactorsResponse struct {
	Factors []factors.EmissionFactor `json:"factors"`
}

// TransportResponse lists the transport mode factors.
type TransportResponse struct {
	Transport []factors.TransportFactor `json:"transport"`
}

// CanteensResponse lists the reference canteens.
type CanteensResponse struct {
	Canteens []factors.Canteen `json:"canteens"`
}

// CanteenResponse is a reference canteen with the calculation parameters
// derived from it and its measured baseline.
type CanteenResponse struct {
	Canteen            factors.Canteen          `json:"canteen"`
	Parameters         impact.CanteenParameters `json:"parameters"`
	BaselineAnnualTons float64                  `json:"baseline_annual_tons"`
}

// CanteenImpactResponse is the impact of a reference canteen next to its
// measured baseline.
type CanteenImpactResponse struct {
	ImpactResponse
	Canteen            factors.Canteen `json:"canteen"`
	BaselineAnnualTons float64         `json:"baseline_annual_tons"`
}

func (s *Server) calculateImpact(ctx context.Context, params impact.CanteenParameters) (ImpactResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return ImpactResponse{}, err
	}
	res, err := impact.NewCalculator(store).Calculate(ctx, params)
	if err != nil {
		return ImpactResponse{}, err
	}
	return NewImpactResponse(res)
}

// NewImpactResponse rounds res for display and attaches the equivalencies
// of its annual total.
func NewImpactResponse(res impact.CalculationResult) (ImpactResponse, error) {
	eq, err := greenops.AnnualEquivalencies(res.AnnualTons)
	if err != nil {
		return ImpactResponse{}, fmt.Errorf("computing equivalencies: %w", err)
	}
	return ImpactResponse{CalculationResult: greenops.RoundResult(res), Equivalencies: eq}, nil
}

func (s *Server) sourcingRecommendations(ctx context.Context, month int) (SourcingResponse, error) {
	engine, err := s.sourcing.Engine(ctx)
	if err != nil {
		return SourcingResponse{}, err
	}
	recs, err := engine.MonthlyRecommendations(ctx, month)
	if err != nil {
		return SourcingResponse{}, err
	}
	return SourcingResponse{Month: month, Recommendations: greenops.RoundSourcing(recs)}, nil
}

func (s *Server) listFactors(ctx context.Context, category string) (FactorsResponse, error) {
	if category != "" && !factors.Category(category).Valid() {
		return FactorsResponse{}, fmt.Errorf("%w: unknown category %q", errBadRequest, category)
	}
	store, err := s.factors.Store(ctx)
	if err != nil {
		return FactorsResponse{}, err
	}
	out := store.Factors()
	if category != "" {
		out = store.FactorsByCategory(factors.Category(category))
	}
	if out == nil {
		out = []factors.EmissionFactor{}
	}
	return FactorsResponse{Factors: out}, nil
}

func (s *Server) transportFactors(ctx context.Context) (TransportResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return TransportResponse{}, err
	}
	out := store.TransportFactors()
	if out == nil {
		out = []factors.TransportFactor{}
	}
	return TransportResponse{Transport: out}, nil
}

func (s *Server) listCanteens(ctx context.Context) (CanteensResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return CanteensResponse{}, err
	}
	return CanteensResponse{Canteens: store.Canteens()}, nil
}

func (s *Server) canteenProfile(ctx context.Context, id int) (CanteenResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return CanteenResponse{}, err
	}
	c, err := store.Canteen(id)
	if err != nil {
		return CanteenResponse{}, err
	}
	return CanteenResponse{
		Canteen:            c,
		Parameters:         impact.CanteenProfile(c),
		BaselineAnnualTons: greenops.RoundTons(impact.CanteenBaselineTons(c)),
	}, nil
}

func (s *Server) canteenImpact(ctx context.Context, id int) (CanteenImpactResponse, error) {
	profile, err := s.canteenProfile(ctx, id)
	if err != nil {
		return CanteenImpactResponse{}, err
	}
	res, err := s.calculateImpact(ctx, profile.Parameters)
	if err != nil {
		return CanteenImpactResponse{}, err
	}
	return CanteenImpactResponse{
		ImpactResponse:     res,
		Canteen:            profile.Canteen,
		BaselineAnnualTons: profile.BaselineAnnualTons,
	}, nil
}

func (s *Server) lookupFactor(ctx context.Context, item string, organic bool) (factors.EmissionFactor, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return factors.EmissionFactor{}, err
	}
	return store.Lookup(item, organic)
}

func (s *Server) organicComparison(ctx context.Context, item string) (factors.Comparison, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return factors.Comparison{}, err
	}
	return store.OrganicComparison(item)
}

func (s *Server) plantAlternatives(ctx context.Context, meat string) (AlternativesResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return AlternativesResponse{}, err
	}
	alts := store.PlantAlternatives(meat)
	if alts == nil {
		alts = []factors.Alternative{}
	}
	return AlternativesResponse{Meat: meat, Alternatives: alts}, nil
}

func (s *Server) wasteTips(ctx context.Context, category string) (TipsResponse, error) {
	store, err := s.factors.Store(ctx)
	if err != nil {
		return TipsResponse{}, err
	}
	tips := store.WasteReductionTips(category)
	if tips == nil {
		tips = []factors.Tip{}
	}
	return TipsResponse{Category: category, Tips: tips}, nil
}

func (s *Server) seasonalProduce(ctx context.Context, month int) (SeasonalResponse, error) {
	if month < 0 || month > 11 {
		return SeasonalResponse{}, fmt.Errorf("%w: got %d", sourcing.ErrInvalidMonth, month)
	}
	store, err := s.factors.Store(ctx)
	if err != nil {
		return SeasonalResponse{}, err
	}
	produce := store.SeasonalAvailability(month)
	if produce == nil {
		produce = []factors.SeasonalProduce{}
	}
	return SeasonalResponse{Month: month, Produce: produce}, nil
}
