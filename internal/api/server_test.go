package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := factors.New(factors.SeedData())
	require.NoError(t, err)
	return NewServer(zerolog.Nop(), factors.NewStaticProvider(store), sourcing.NewProvider(""))
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func scenarioParams() impact.CanteenParameters {
	return impact.CanteenParameters{
		Employees:      impact.Ptr(150),
		AttendanceRate: impact.Ptr(0.85),
		MealsPerDay:    impact.Ptr(1.0),
		OperatingDays:  impact.Ptr(240),
		MeatDistribution: &impact.MeatDistribution{
			RedMeatPercent: 35, BrightMeatPercent: 35, FishPercent: 15, VegetarianPercent: 15,
		},
		OrganicPercent:  &impact.OrganicPercent{Meat: 40, Vegetables: 60, Dairy: 30},
		Waste:           &impact.WastePercent{Preparation: 8, Plate: 15, Buffet: 7},
		PortionSizes:    &impact.PortionSizes{ProteinGram: 120, VegetablesGram: 200, CarbsGram: 150},
		LocalSourcing:   impact.Ptr(60.0),
		SeasonalProduce: impact.Ptr(45.0),
	}
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, factors.SchemaVersion, body["factors_schema"])
	assert.NotEmpty(t, rec.Header().Get(TraceHeader))
}

func TestHealth_DatasetFailure(t *testing.T) {
	failing := factors.NewProviderFunc(func(context.Context) (*factors.Store, error) {
		return nil, factors.ErrDataLoad
	})
	s := NewServer(zerolog.Nop(), failing, sourcing.NewProvider(""))

	rec := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTraceHeaderPropagated(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(TraceHeader, "trace-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(TraceHeader))
}

func TestImpact(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/v1/impact", scenarioParams())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decode[ImpactResponse](t, rec)
	assert.InDelta(t, 3.61, res.PerMealKg, 1e-9)
	assert.InDelta(t, 110.6, res.AnnualTons, 1e-9)
	assert.InDelta(t, 30600, res.TotalMealsAnnual, 1e-9)
	assert.InDelta(t, 79711, res.CostSavings, 1e-9)
	require.Len(t, res.Recommendations, 4)
	assert.Equal(t, impact.CategoryMeatDistribution, res.Recommendations[0].Category)
	assert.Equal(t, 1, res.Recommendations[0].Priority)
	require.Len(t, res.Equivalencies.Results, 4)
	assert.Contains(t, res.Equivalencies.DisplayText, "flights to London")
}

func TestImpact_Errors(t *testing.T) {
	noEmployees := scenarioParams()
	noEmployees.Employees = nil

	badAttendance := scenarioParams()
	badAttendance.AttendanceRate = impact.Ptr(1.5)

	tests := []struct {
		name      string
		body      any
		wantField string
	}{
		{name: "malformed json", body: `{"employees": `},
		{name: "wrong type", body: `{"employees": "many"}`},
		{name: "missing employees", body: noEmployees, wantField: "employees"},
		{name: "attendance out of range", body: badAttendance, wantField: "attendance_rate"},
		{name: "empty object", body: `{}`, wantField: "employees"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(t), http.MethodPost, "/api/v1/impact", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decode[ErrorResponse](t, rec)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantField, body.Field)
		})
	}
}

func TestSourcing(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/sourcing/6", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[SourcingResponse](t, rec)
	assert.Equal(t, 6, res.Month)
	require.NotEmpty(t, res.Recommendations)
	for i := 1; i < len(res.Recommendations); i++ {
		assert.GreaterOrEqual(t, res.Recommendations[i-1].Score, res.Recommendations[i].Score)
	}

	for _, month := range []string{"12", "-1", "june"} {
		rec = do(t, s, http.MethodGet, "/api/v1/sourcing/"+month, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, month)
	}
}

func TestFactors(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/factors/"+url.PathEscape("Oksekød (dansk)"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	f := decode[factors.EmissionFactor](t, rec)
	assert.InDelta(t, 27.0, f.CO2ePerKg, 0)
	assert.False(t, f.IsOrganic)

	rec = do(t, s, http.MethodGet, "/api/v1/factors/Kylling?organic=true", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/factors/Kylling?organic=perhaps", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/factors?category="+url.QueryEscape(string(factors.CategoryRedMeat)), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[map[string][]factors.EmissionFactor](t, rec)
	require.NotEmpty(t, list["factors"])
	for _, f := range list["factors"] {
		assert.Equal(t, factors.CategoryRedMeat, f.Category)
	}

	rec = do(t, s, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decode[map[string][]factors.CategoryInfo](t, rec)
	assert.Len(t, cats["categories"], 10)
}

func TestListFactors_Category(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
		wantLen  int
	}{
		{name: "all", query: "", wantCode: http.StatusOK, wantLen: len(factors.SeedData().Factors)},
		{name: "fish", query: "?category=fish", wantCode: http.StatusOK, wantLen: 6},
		{name: "display name is not a category", query: "?category=" + url.QueryEscape("Kød"), wantCode: http.StatusBadRequest},
		{name: "unknown", query: "?category=sweets", wantCode: http.StatusBadRequest},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, "/api/v1/factors"+tt.query, nil)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode != http.StatusOK {
				assert.Contains(t, decode[ErrorResponse](t, rec).Error, "unknown category")
				return
			}
			assert.Len(t, decode[FactorsResponse](t, rec).Factors, tt.wantLen)
		})
	}
}

func TestTransport(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/v1/transport", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[TransportResponse](t, rec)
	require.Len(t, out.Transport, len(factors.SeedData().Transport))
	for _, tf := range out.Transport {
		assert.NotEmpty(t, tf.Method)
		assert.Positive(t, tf.KgCO2PerTonKm)
	}
}

func TestCanteens(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/canteens", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[CanteensResponse](t, rec)
	require.Len(t, list.Canteens, 70)
	assert.Equal(t, "ABB", list.Canteens[0].Name)

	rec = do(t, s, http.MethodGet, "/api/v1/canteens/215", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	detail := decode[CanteenResponse](t, rec)
	assert.Equal(t, "Bravida", detail.Canteen.Name)
	assert.Equal(t, 150, *detail.Parameters.Employees)
	assert.InDelta(t, 81.0, detail.Parameters.MeatDistribution.VegetarianPercent, 1e-9)
	assert.InDelta(t, 52.7, detail.BaselineAnnualTons, 1e-9)

	rec = do(t, s, http.MethodGet, "/api/v1/canteens/215/impact", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[CanteenImpactResponse](t, rec)
	assert.Equal(t, 215, res.Canteen.ID)
	assert.InDelta(t, 30600, res.TotalMealsAnnual, 1e-9)
	assert.Positive(t, res.AnnualTons)
	assert.InDelta(t, 52.7, res.BaselineAnnualTons, 1e-9)
	assert.False(t, res.Equivalencies.IsEmpty)
}

func TestCanteens_Errors(t *testing.T) {
	s := newTestServer(t)

	for path, want := range map[string]int{
		"/api/v1/canteens/1":              http.StatusNotFound,
		"/api/v1/canteens/bravida":        http.StatusBadRequest,
		"/api/v1/canteens/1/impact":       http.StatusNotFound,
		"/api/v1/canteens/bravida/impact": http.StatusBadRequest,
	} {
		rec := do(t, s, http.MethodGet, path, nil)
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestAlternatives(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/alternatives/"+url.PathEscape("Oksekød"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[AlternativesResponse](t, rec)
	require.Len(t, res.Alternatives, 3)
	assert.Equal(t, "Svampe (portobello)", res.Alternatives[0].Alternative)

	rec = do(t, s, http.MethodGet, "/api/v1/alternatives/tofu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meat": "tofu", "alternatives": []}`, rec.Body.String())
}

func TestWasteTips(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/waste-tips", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[TipsResponse](t, rec)
	require.Len(t, all.Tips, 8)
	assert.Equal(t, "Bestilling", all.Tips[0].Category)

	rec = do(t, s, http.MethodGet, "/api/v1/waste-tips?category=Buffet", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	buffet := decode[TipsResponse](t, rec)
	require.Len(t, buffet.Tips, 1)
	assert.Equal(t, "Buffet", buffet.Category)
}

func TestOrganic(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/organic/Kylling", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cmp := decode[factors.Comparison](t, rec)
	assert.InDelta(t, 20.9, cmp.DifferencePercent, 0)
	assert.False(t, cmp.IsBetter)

	rec = do(t, s, http.MethodGet, "/api/v1/organic/Tofu", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeasonal(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/seasonal/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[SeasonalResponse](t, rec)
	assert.Len(t, res.Produce, 6)

	rec = do(t, s, http.MethodGet, "/api/v1/seasonal/12", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{impact.ErrValidation, http.StatusBadRequest},
		{&impact.ValidationError{Field: "employees", Message: "required"}, http.StatusBadRequest},
		{sourcing.ErrInvalidMonth, http.StatusBadRequest},
		{factors.ErrNotFound, http.StatusNotFound},
		{factors.ErrDataLoad, http.StatusServiceUnavailable},
		{sourcing.ErrDataLoad, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWarm(t *testing.T) {
	require.NoError(t, newTestServer(t).Warm(context.Background()))

	s := NewServer(zerolog.Nop(), factors.NewStaticProvider(nil), sourcing.NewProvider("/nonexistent/sourcing.json"))
	err := s.Warm(context.Background())
	require.ErrorIs(t, err, sourcing.ErrDataLoad)
}
