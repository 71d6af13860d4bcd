package factors

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SchemaVersion is the dataset schema written by Seed.
const SchemaVersion = "1.2.0"

// supportedSchema is the range of dataset schemas this package can read.
const supportedSchema = "^1.0.0"

// Store is an immutable, query-only view of the reference dataset.
type Store struct {
	schemaVersion string
	factors       map[FactorKey]EmissionFactor
	order         []FactorKey
	categories    []CategoryInfo
	comparisons   map[string]Comparison
	transport     []TransportFactor
	seasonal      []SeasonalProduce
	alternatives  []Alternative
	tips          []Tip
	canteens      map[int]Canteen
}

// New validates ds and builds a Store from it. The dataset is copied, so
// later changes to ds do not affect the Store.
//
// Validation failures wrap ErrDataLoad: an unsupported schema version,
// a negative or unknown-category factor, two factors sharing the same
// (item, organic) pair, or a canteen without employees or with a reused ID.
func New(ds Dataset) (*Store, error) {
	if err := checkSchemaVersion(ds.SchemaVersion); err != nil {
		return nil, err
	}

	s := &Store{
		schemaVersion: ds.SchemaVersion,
		factors:       make(map[FactorKey]EmissionFactor, len(ds.Factors)),
		order:         make([]FactorKey, 0, len(ds.Factors)),
		comparisons:   make(map[string]Comparison, len(ds.Comparisons)),
		categories:    slices.Clone(ds.Categories),
		transport:     slices.Clone(ds.Transport),
		seasonal:      slices.Clone(ds.Seasonal),
		alternatives:  slices.Clone(ds.Alternatives),
		tips:          slices.Clone(ds.Tips),
		canteens:      make(map[int]Canteen, len(ds.Canteens)),
	}
	if s.schemaVersion == "" {
		s.schemaVersion = SchemaVersion
	}

	for _, f := range ds.Factors {
		if f.FoodItem == "" {
			return nil, fmt.Errorf("%w: emission factor with empty food item", ErrDataLoad)
		}
		if f.CO2ePerKg < 0 {
			return nil, fmt.Errorf("%w: negative co2e for %q", ErrDataLoad, f.FoodItem)
		}
		if !f.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q for %q", ErrDataLoad, f.Category, f.FoodItem)
		}
		key := f.Key()
		if _, dup := s.factors[key]; dup {
			return nil, fmt.Errorf("%w: duplicate emission factor %q (organic=%t)",
				ErrDataLoad, f.FoodItem, f.IsOrganic)
		}
		s.factors[key] = f
		s.order = append(s.order, key)
	}

	for _, c := range ds.Canteens {
		if c.Employees <= 0 {
			return nil, fmt.Errorf("%w: canteen %d has no employees", ErrDataLoad, c.ID)
		}
		if _, dup := s.canteens[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate canteen id %d", ErrDataLoad, c.ID)
		}
		s.canteens[c.ID] = c
	}

	for _, c := range ds.Comparisons {
		c.IsBetter = c.DifferencePercent < 0
		s.comparisons[c.FoodItem] = c
	}

	return s, nil
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: invalid schema version %q: %w", ErrDataLoad, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: schema version %s not in supported range %s", ErrDataLoad, v, supportedSchema)
	}
	return nil
}

// SchemaVersion returns the schema version of the loaded dataset.
func (s *Store) SchemaVersion() string {
	return s.schemaVersion
}

// Lookup returns the emission factor for item in the given variant.
// It returns ErrNotFound when the pair is unknown.
func (s *Store) Lookup(item string, organic bool) (EmissionFactor, error) {
	f, ok := s.factors[FactorKey{Item: item, Organic: organic}]
	if !ok {
		return EmissionFactor{}, fmt.Errorf("%w: emission factor %q (organic=%t)", ErrNotFound, item, organic)
	}
	return f, nil
}

// Factors returns all emission factors in load order.
func (s *Store) Factors() []EmissionFactor {
	out := make([]EmissionFactor, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.factors[k])
	}
	return out
}

// FactorsByCategory returns the factors in category c, in load order.
func (s *Store) FactorsByCategory(c Category) []EmissionFactor {
	var out []EmissionFactor
	for _, k := range s.order {
		if f := s.factors[k]; f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// Categories returns the category descriptions.
func (s *Store) Categories() []CategoryInfo {
	return slices.Clone(s.categories)
}

// TransportFactors returns the transport mode factors.
func (s *Store) TransportFactors() []TransportFactor {
	return slices.Clone(s.transport)
}

// PlantAlternatives returns the alternatives whose meat product contains
// meatType (case-insensitive), highest CO2 saving first.
func (s *Store) PlantAlternatives(meatType string) []Alternative {
	needle := strings.ToLower(meatType)
	var out []Alternative
	for _, a := range s.alternatives {
		if strings.Contains(strings.ToLower(a.MeatProduct), needle) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CO2SavingPercent > out[j].CO2SavingPercent
	})
	return out
}

// WasteReductionTips returns the tips in category, or all tips when
// category is empty, highest potential reduction first.
func (s *Store) WasteReductionTips(category string) []Tip {
	var out []Tip
	for _, t := range s.tips {
		if category == "" || t.Category == category {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReductionPercent > out[j].ReductionPercent
	})
	return out
}

// OrganicComparison returns the organic-vs-conventional comparison for
// item. It returns ErrNotFound when there is none.
func (s *Store) OrganicComparison(item string) (Comparison, error) {
	c, ok := s.comparisons[item]
	if !ok {
		return Comparison{}, fmt.Errorf("%w: organic comparison %q", ErrNotFound, item)
	}
	return c, nil
}

// SeasonalAvailability returns the produce in season in month (0-11).
// Out-of-range months yield nil.
func (s *Store) SeasonalAvailability(month int) []SeasonalProduce {
	if month < 0 || month > 11 {
		return nil
	}
	var out []SeasonalProduce
	for _, p := range s.seasonal {
		if p.Months[month] {
			out = append(out, p)
		}
	}
	return out
}

// Canteens returns the reference canteens ordered by name.
func (s *Store) Canteens() []Canteen {
	out := make([]Canteen, 0, len(s.canteens))
	for _, c := range s.canteens {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Canteen returns the reference canteen with the given ID. It returns
// ErrNotFound when there is none.
func (s *Store) Canteen(id int) (Canteen, error) {
	c, ok := s.canteens[id]
	if !ok {
		return Canteen{}, fmt.Errorf("%w: canteen %d", ErrNotFound, id)
	}
	return c, nil
}
