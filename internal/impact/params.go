package impact

// Defaults applied to optional parameters.
const (
	DefaultAttendanceRate    = 0.85
	DefaultMealsPerDay       = 1.0
	DefaultOperatingDays     = 240
	DefaultLocalSourcing     = 60.0
	DefaultSeasonalProduce   = 50.0
	DefaultOrganicMeat       = 40.0
	DefaultOrganicVegetables = 60.0
	DefaultOrganicDairy      = 30.0
	DefaultWastePreparation  = 8.0
	DefaultWastePlate        = 12.0
	DefaultWasteBuffet       = 5.0
)

// MeatDistribution splits the protein portion across four categories, in
// percent. The shares are expected to sum to 100 but are used as given.
type MeatDistribution struct {
	RedMeatPercent    float64 `json:"red_meat_percent" yaml:"red_meat_percent"`
	BrightMeatPercent float64 `json:"bright_meat_percent" yaml:"bright_meat_percent"`
	FishPercent       float64 `json:"fish_percent" yaml:"fish_percent"`
	VegetarianPercent float64 `json:"vegetarian_percent" yaml:"vegetarian_percent"`
}

// OrganicPercent is the organic share per category, 0-100.
type OrganicPercent struct {
	Meat       float64 `json:"meat" yaml:"meat"`
	Vegetables float64 `json:"vegetables" yaml:"vegetables"`
	Dairy      float64 `json:"dairy" yaml:"dairy"`
}

// WastePercent is the share of food wasted at each stage, in percent.
type WastePercent struct {
	Preparation float64 `json:"preparation" yaml:"preparation"`
	Plate       float64 `json:"plate" yaml:"plate"`
	Buffet      float64 `json:"buffet" yaml:"buffet"`
}

// Total returns the combined waste percentage.
func (w WastePercent) Total() float64 {
	return w.Preparation + w.Plate + w.Buffet
}

// PortionSizes are per-meal portion weights in grams.
type PortionSizes struct {
	ProteinGram    float64 `json:"protein_gram" yaml:"protein_gram"`
	VegetablesGram float64 `json:"vegetables_gram" yaml:"vegetables_gram"`
	CarbsGram      float64 `json:"carbs_gram" yaml:"carbs_gram"`
}

// CanteenParameters is the calculation request. Nil fields are absent:
// Employees, MeatDistribution and PortionSizes are mandatory, everything
// else falls back to the package defaults.
type CanteenParameters struct {
	Employees        *int              `json:"employees,omitempty" yaml:"employees,omitempty"`
	MealsPerDay      *float64          `json:"meals_per_day,omitempty" yaml:"meals_per_day,omitempty"`
	OperatingDays    *int              `json:"operating_days,omitempty" yaml:"operating_days,omitempty"`
	AttendanceRate   *float64          `json:"attendance_rate,omitempty" yaml:"attendance_rate,omitempty"`
	MeatDistribution *MeatDistribution `json:"meat_distribution,omitempty" yaml:"meat_distribution,omitempty"`
	OrganicPercent   *OrganicPercent   `json:"organic_percent,omitempty" yaml:"organic_percent,omitempty"`
	Waste            *WastePercent     `json:"waste,omitempty" yaml:"waste,omitempty"`
	PortionSizes     *PortionSizes     `json:"portion_sizes,omitempty" yaml:"portion_sizes,omitempty"`
	LocalSourcing    *float64          `json:"local_sourcing,omitempty" yaml:"local_sourcing,omitempty"`
	SeasonalProduce  *float64          `json:"seasonal_produce,omitempty" yaml:"seasonal_produce,omitempty"`
}

// Inputs is a fully resolved, validated parameter set.
type Inputs struct {
	Employees        int              `json:"employees"`
	MealsPerDay      float64          `json:"meals_per_day"`
	OperatingDays    int              `json:"operating_days"`
	AttendanceRate   float64          `json:"attendance_rate"`
	MeatDistribution MeatDistribution `json:"meat_distribution"`
	OrganicPercent   OrganicPercent   `json:"organic_percent"`
	Waste            WastePercent     `json:"waste"`
	PortionSizes     PortionSizes     `json:"portion_sizes"`
	LocalSourcing    float64          `json:"local_sourcing"`
	SeasonalProduce  float64          `json:"seasonal_produce"`
}

// Ptr returns a pointer to v. It keeps literal parameter sets short.
func Ptr[T any](v T) *T {
	return &v
}

// Resolve validates p and fills in defaults. The returned error, if any,
// is a *ValidationError.
//
//nolint:gocognit,funlen // one check per field
func (p CanteenParameters) Resolve() (Inputs, error) {
	in := Inputs{
		MealsPerDay:     DefaultMealsPerDay,
		OperatingDays:   DefaultOperatingDays,
		AttendanceRate:  DefaultAttendanceRate,
		LocalSourcing:   DefaultLocalSourcing,
		SeasonalProduce: DefaultSeasonalProduce,
		OrganicPercent: OrganicPercent{
			Meat:       DefaultOrganicMeat,
			Vegetables: DefaultOrganicVegetables,
			Dairy:      DefaultOrganicDairy,
		},
		Waste: WastePercent{
			Preparation: DefaultWastePreparation,
			Plate:       DefaultWastePlate,
			Buffet:      DefaultWasteBuffet,
		},
	}

	switch {
	case p.Employees == nil:
		return Inputs{}, missing("employees")
	case p.MeatDistribution == nil:
		return Inputs{}, missing("meat_distribution")
	case p.PortionSizes == nil:
		return Inputs{}, missing("portion_sizes")
	}

	if *p.Employees <= 0 {
		return Inputs{}, invalid("employees", "must be greater than 0")
	}
	in.Employees = *p.Employees

	if p.MealsPerDay != nil {
		if *p.MealsPerDay <= 0 {
			return Inputs{}, invalid("meals_per_day", "must be greater than 0")
		}
		in.MealsPerDay = *p.MealsPerDay
	}
	if p.OperatingDays != nil {
		if *p.OperatingDays <= 0 {
			return Inputs{}, invalid("operating_days", "must be greater than 0")
		}
		in.OperatingDays = *p.OperatingDays
	}
	if p.AttendanceRate != nil {
		if *p.AttendanceRate < 0 || *p.AttendanceRate > 1 {
			return Inputs{}, invalid("attendance_rate", "must be between 0 and 1")
		}
		in.AttendanceRate = *p.AttendanceRate
	}

	md := *p.MeatDistribution
	for _, fv := range []fieldValue{
		{"meat_distribution.red_meat_percent", md.RedMeatPercent},
		{"meat_distribution.bright_meat_percent", md.BrightMeatPercent},
		{"meat_distribution.fish_percent", md.FishPercent},
		{"meat_distribution.vegetarian_percent", md.VegetarianPercent},
	} {
		if fv.value < 0 {
			return Inputs{}, invalid(fv.field, "must not be negative")
		}
	}
	in.MeatDistribution = md

	ps := *p.PortionSizes
	for _, fv := range []fieldValue{
		{"portion_sizes.protein_gram", ps.ProteinGram},
		{"portion_sizes.vegetables_gram", ps.VegetablesGram},
		{"portion_sizes.carbs_gram", ps.CarbsGram},
	} {
		if fv.value < 0 {
			return Inputs{}, invalid(fv.field, "must not be negative")
		}
	}
	in.PortionSizes = ps

	if p.OrganicPercent != nil {
		op := *p.OrganicPercent
		for _, fv := range []fieldValue{
			{"organic_percent.meat", op.Meat},
			{"organic_percent.vegetables", op.Vegetables},
			{"organic_percent.dairy", op.Dairy},
		} {
			if err := checkPercent(fv.field, fv.value); err != nil {
				return Inputs{}, err
			}
		}
		in.OrganicPercent = op
	}

	if p.Waste != nil {
		w := *p.Waste
		for _, fv := range []fieldValue{
			{"waste.preparation", w.Preparation},
			{"waste.plate", w.Plate},
			{"waste.buffet", w.Buffet},
		} {
			if fv.value < 0 {
				return Inputs{}, invalid(fv.field, "must not be negative")
			}
		}
		in.Waste = w
	}

	if p.LocalSourcing != nil {
		if err := checkPercent("local_sourcing", *p.LocalSourcing); err != nil {
			return Inputs{}, err
		}
		in.LocalSourcing = *p.LocalSourcing
	}
	if p.SeasonalProduce != nil {
		if err := checkPercent("seasonal_produce", *p.SeasonalProduce); err != nil {
			return Inputs{}, err
		}
		in.SeasonalProduce = *p.SeasonalProduce
	}

	return in, nil
}

type fieldValue struct {
	field string
	value float64
}

func checkPercent(field string, v float64) error {
	if v < 0 || v > 100 {
		return invalid(field, "must be between 0 and 100")
	}
	return nil
}
