package sourcing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportMultiplier(t *testing.T) {
	tests := []struct {
		origin string
		want   float64
	}{
		{OriginDK, 1.0},
		{OriginNA, 1.0},
		{OriginEU, 1.2},
		{OriginWorld, 1.5},
		{"", 1.5},
		{"Peru", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.InDelta(t, tt.want, TransportMultiplier(tt.origin), 0)
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		price   int
		quality int
		co2     float64
		local   bool
		want    float64
	}{
		{name: "best import is capped", price: 1, quality: 3, co2: 0, want: 1.0},
		{name: "worst import", price: 3, quality: 1, co2: 5, want: 0},
		{name: "co2 above ceiling clamps to zero", price: 3, quality: 1, co2: 9, want: 0},
		{name: "middle tier", price: 2, quality: 2, co2: 2.5, want: 0.175 + 0.225 + 0.1},
		{name: "local bonus", price: 2, quality: 2, co2: 2.5, local: true, want: 0.175 + 0.225 + 0.1 + 0.1},
		{name: "local capped", price: 1, quality: 3, co2: 0.3, local: true, want: 1.0},
		{name: "zero price unavailable", price: 0, quality: 3, co2: 0, local: true, want: 0},
		{name: "zero quality unavailable", price: 1, quality: 0, co2: 0, local: true, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.price, tt.quality, tt.co2, tt.local), 1e-12)
		})
	}
}

func item(id string, co2 float64, months map[int]MonthOption) Item {
	return Item{ID: id, Name: strings.ToUpper(id), Category: "test", CO2Base: co2, Months: months}
}

func TestMonthlyRecommendations_TieGoesDomestic(t *testing.T) {
	// Both options reach the 1.0 cap.
	e := NewEngine([]Item{item("a", 0, map[int]MonthOption{
		0: {DKPrice: 1, DKQuality: 3, DKStatus: "Lager", ImportPrice: 1, ImportQuality: 3, ImportOrigin: OriginEU},
	})})

	recs, err := e.MonthlyRecommendations(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, OriginDK, recs[0].Origin)
	assert.Equal(t, "Lager", recs[0].Status)
	assert.False(t, recs[0].IsImport)
	assert.Equal(t, 100, recs[0].Score)
}

func TestMonthlyRecommendations_TieBelowCapGoesDomestic(t *testing.T) {
	// Cheap domestic against high-quality import: the local bonus makes up
	// the quality gap exactly.
	tests := []struct {
		name      string
		co2       float64
		wantScore int
	}{
		{name: "zero co2", co2: 0, wantScore: 65},
		{name: "high co2", co2: 3.75, wantScore: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := MonthOption{
				DKPrice: 1, DKQuality: 1, DKStatus: "Sæson",
				ImportPrice: 3, ImportQuality: 3, ImportOrigin: OriginNA,
			}
			require.InDelta(t, Score(opt.DKPrice, opt.DKQuality, tt.co2, true),
				Score(opt.ImportPrice, opt.ImportQuality, tt.co2, false), 0)

			e := NewEngine([]Item{item("a", tt.co2, map[int]MonthOption{0: opt})})
			recs, err := e.MonthlyRecommendations(context.Background(), 0)
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, OriginDK, recs[0].Origin)
			assert.False(t, recs[0].IsImport)
			assert.Equal(t, tt.wantScore, recs[0].Score)
		})
	}
}

func TestMonthlyRecommendations_OutOfSeasonNeverDomestic(t *testing.T) {
	e := NewEngine([]Item{item("a", 0.3, map[int]MonthOption{
		// Domestic would win on score.
		3: {DKPrice: 1, DKQuality: 3, DKStatus: StatusOutOfSeason, ImportPrice: 3, ImportQuality: 1, ImportOrigin: ""},
	})})

	recs, err := e.MonthlyRecommendations(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	r := recs[0]
	assert.True(t, r.IsImport)
	assert.Equal(t, OriginWorld, r.Origin)
	assert.Equal(t, StatusImport, r.Status)
	assert.Equal(t, 3, r.Price)
	assert.Equal(t, 1, r.Quality)
	assert.InDelta(t, 0.45, r.CO2, 1e-12)
	// Climate component only: 0.20 * (5 - 0.45) / 5.
	assert.Equal(t, 18, r.Score)
}

func TestMonthlyRecommendations_ImportWins(t *testing.T) {
	e := NewEngine([]Item{item("a", 1.0, map[int]MonthOption{
		5: {DKPrice: 3, DKQuality: 1, DKStatus: "Drivhus", ImportPrice: 1, ImportQuality: 3, ImportOrigin: OriginEU},
	})})

	recs, err := e.MonthlyRecommendations(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].IsImport)
	assert.Equal(t, OriginEU, recs[0].Origin)
	assert.InDelta(t, 1.2, recs[0].CO2, 1e-12)
	// 0.35 + 0.45 + 0.20 * 0.76 = 0.952
	assert.Equal(t, 95, recs[0].Score)
}

func TestMonthlyRecommendations_UnavailableDomestic(t *testing.T) {
	e := NewEngine([]Item{item("a", 0.5, map[int]MonthOption{
		1: {DKPrice: 0, DKQuality: 0, DKStatus: "Lager", ImportPrice: 2, ImportQuality: 2, ImportOrigin: OriginEU},
	})})

	recs, err := e.MonthlyRecommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.True(t, recs[0].IsImport)
}

func TestMonthlyRecommendations_SortingAndSkipping(t *testing.T) {
	best := MonthOption{DKPrice: 1, DKQuality: 3, DKStatus: "Sæson", ImportPrice: 2, ImportQuality: 2, ImportOrigin: OriginEU}
	mid := MonthOption{DKPrice: 2, DKQuality: 2, DKStatus: "Lager", ImportPrice: 3, ImportQuality: 1, ImportOrigin: OriginWorld}

	e := NewEngine([]Item{
		item("c", 0.3, map[int]MonthOption{0: mid}),
		item("b", 0.3, map[int]MonthOption{0: best}),
		item("a", 0.3, map[int]MonthOption{0: mid}),
		item("z", 0.3, map[int]MonthOption{1: best}),
	})

	recs, err := e.MonthlyRecommendations(context.Background(), 0)
	require.NoError(t, err)

	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids, "z has no data for January")
	assert.Equal(t, "B", recs[0].Name)
}

func TestMonthlyRecommendations_InvalidMonth(t *testing.T) {
	e := NewEngine(nil)
	for _, m := range []int{-1, 12, 100} {
		_, err := e.MonthlyRecommendations(context.Background(), m)
		require.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestMonthlyRecommendations_Idempotent(t *testing.T) {
	e, err := Load(context.Background(), "")
	require.NoError(t, err)

	first, err := e.MonthlyRecommendations(context.Background(), 6)
	require.NoError(t, err)
	second, err := e.MonthlyRecommendations(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewEngine_CopiesInput(t *testing.T) {
	months := map[int]MonthOption{0: {DKPrice: 1, DKQuality: 3, DKStatus: "Sæson", ImportPrice: 1, ImportQuality: 1}}
	e := NewEngine([]Item{item("a", 0.3, months)})

	delete(months, 0)

	recs, err := e.MonthlyRecommendations(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestLoad_Embedded(t *testing.T) {
	e, err := Load(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, e.Items())

	for month := range 12 {
		recs, err := e.MonthlyRecommendations(context.Background(), month)
		require.NoError(t, err)
		require.NotEmpty(t, recs)

		for i, r := range recs {
			if !r.IsImport {
				assert.NotEqual(t, StatusOutOfSeason, r.Status, "%s month %d", r.ID, month)
			}
			assert.GreaterOrEqual(t, r.Score, 0)
			assert.LessOrEqual(t, r.Score, 100)
			if i > 0 {
				assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
			}
		}
	}

	jan, err := e.MonthlyRecommendations(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, jan, len(e.Items())-1, "raspberries have no winter data")
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "not json", doc: "nope", wantErr: "decoding"},
		{name: "missing version", doc: `{"items": {"a": {"name": "A"}}}`, wantErr: "missing schema_version"},
		{name: "future version", doc: `{"schema_version": "2.1.0", "items": {"a": {"name": "A"}}}`, wantErr: "not in supported range"},
		{name: "no items", doc: `{"schema_version": "1.0.0", "items": {}}`, wantErr: "no items"},
		{name: "unknown field", doc: `{"schema_version": "1.0.0", "extra": 1}`, wantErr: "decoding"},
		{name: "nameless item", doc: `{"schema_version": "1.0.0", "items": {"a": {"co2_base": 1}}}`, wantErr: "no name"},
		{
			name:    "negative co2",
			doc:     `{"schema_version": "1.0.0", "items": {"a": {"name": "A", "co2_base": -1}}}`,
			wantErr: "negative co2_base",
		},
		{
			name:    "month out of range",
			doc:     `{"schema_version": "1.0.0", "items": {"a": {"name": "A", "months": {"12": {}}}}}`,
			wantErr: "month 12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrDataLoad)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sourcing.json")
	doc := `{"schema_version": "1.2.0", "items": {"kale": {"name": "Grønkål", "category": "Kål", "co2_base": 0.4,
		"months": {"0": {"dk_price": 1, "dk_quality": 3, "dk_status": "Sæson",
		"import_price": 2, "import_quality": 2, "import_origin": "EU"}}}}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	e, err := Load(context.Background(), path)
	require.NoError(t, err)
	recs, err := e.MonthlyRecommendations(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "kale", recs[0].ID)
	assert.Equal(t, OriginDK, recs[0].Origin)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, ErrDataLoad)
}

func TestProvider_SharedEngine(t *testing.T) {
	p := NewProvider("")

	var wg sync.WaitGroup
	engines := make([]*Engine, 8)
	for i := range engines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := p.Engine(context.Background())
			assert.NoError(t, err)
			engines[i] = e
		}()
	}
	wg.Wait()

	for _, e := range engines {
		assert.Same(t, engines[0], e)
	}
}

func BenchmarkMonthlyRecommendations(b *testing.B) {
	e, err := Load(context.Background(), "")
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	for b.Loop() {
		_, _ = e.MonthlyRecommendations(ctx, 6)
	}
}
