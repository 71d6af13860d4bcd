package factors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/rshade/canteenco2/internal/logging"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS dataset_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS emission_factors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    food_item TEXT NOT NULL,
    category TEXT NOT NULL,
    co2_per_kg REAL NOT NULL,
    is_organic INTEGER NOT NULL DEFAULT 0,
    source TEXT,
    year INTEGER,
    confidence_level TEXT,
    notes TEXT,
    UNIQUE (food_item, is_organic)
);

CREATE TABLE IF NOT EXISTS food_categories (
    name TEXT PRIMARY KEY,
    description TEXT,
    color_code TEXT,
    avg_emission_factor REAL,
    impact_level TEXT
);

CREATE TABLE IF NOT EXISTS organic_comparison (
    food_item TEXT PRIMARY KEY,
    conventional_co2 REAL NOT NULL,
    organic_co2 REAL NOT NULL,
    difference_percent REAL NOT NULL,
    explanation TEXT,
    recommendation TEXT
);

CREATE TABLE IF NOT EXISTS transport_factors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    transport_method TEXT NOT NULL,
    km_range TEXT,
    co2_per_ton_km REAL NOT NULL,
    description TEXT
);

CREATE TABLE IF NOT EXISTS seasonal_factors (
    food_item TEXT PRIMARY KEY,
    months TEXT NOT NULL,
    storage_possible INTEGER NOT NULL DEFAULT 0,
    climate_benefit_percent REAL
);

CREATE TABLE IF NOT EXISTS plant_alternatives (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    meat_product TEXT NOT NULL,
    plant_alternative TEXT NOT NULL,
    category TEXT,
    co2_saving_percent REAL,
    protein_per_100g REAL,
    taste_similarity TEXT,
    cooking_method TEXT,
    cost_comparison TEXT
);

CREATE TABLE IF NOT EXISTS waste_reduction_tips (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    tip_title TEXT NOT NULL,
    tip_description TEXT,
    potential_reduction_percent REAL,
    difficulty_level TEXT,
    implementation_time TEXT,
    cost_impact TEXT
);

CREATE TABLE IF NOT EXISTS canteens (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT,
    address TEXT,
    co2_per_kg REAL,
    green_percent REAL,
    meat_percent REAL,
    organic_percent REAL,
    food_waste_percent REAL,
    local_sourced REAL,
    employees INTEGER,
    meals_per_day INTEGER,
    operating_days INTEGER DEFAULT 240
);

CREATE INDEX IF NOT EXISTS idx_emission_category ON emission_factors(category);
`

// dataTables are cleared before seeding, in dependency-free order.
//
//nolint:gochecknoglobals // fixed table list
var dataTables = []string{
	"dataset_meta",
	"emission_factors",
	"food_categories",
	"organic_comparison",
	"transport_factors",
	"seasonal_factors",
	"plant_alternatives",
	"waste_reduction_tips",
	"canteens",
}

// LoadOptions controls where the reference dataset is read from.
type LoadOptions struct {
	// Path is the SQLite database file. Empty means an in-memory database
	// that is always seeded with SeedData.
	Path string
	// AutoSeed creates and seeds the database when its tables are missing.
	AutoSeed bool
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path == "" {
		dsn = ":memory:"
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == "" {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// Load reads the reference dataset from SQLite and builds a Store.
// Every failure wraps ErrDataLoad.
func Load(ctx context.Context, opts LoadOptions) (*Store, error) {
	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).
		Str("component", "factors").
		Str("operation", "load").
		Str("path", opts.Path).
		Bool("auto_seed", opts.AutoSeed).
		Msg("loading emission factor dataset")

	db, err := Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	defer db.Close()

	ready, err := hasSchema(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	if !ready {
		if opts.Path != "" && !opts.AutoSeed {
			return nil, fmt.Errorf("%w: database %s has no reference tables (run 'canteenco2 db init')",
				ErrDataLoad, opts.Path)
		}
		log.Info().Ctx(ctx).
			Str("component", "factors").
			Str("path", opts.Path).
			Msg("seeding emission factor database")
		if err = Seed(ctx, db, SeedData()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
		}
	}

	ds, err := ReadDataset(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}

	store, err := New(ds)
	if err != nil {
		return nil, err
	}

	log.Debug().Ctx(ctx).
		Str("component", "factors").
		Int("factor_count", len(ds.Factors)).
		Str("schema_version", store.SchemaVersion()).
		Msg("emission factor dataset loaded")
	return store, nil
}

func hasSchema(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
		 AND name IN ('dataset_meta', 'emission_factors', 'canteens')`,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspecting schema: %w", err)
	}
	return n == 3, nil
}

// Seed creates the schema in db and replaces its contents with ds.
//
//nolint:funlen // one insert block per table
func Seed(ctx context.Context, db *sql.DB, ds Dataset) error {
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range dataTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	version := ds.SchemaVersion
	if version == "" {
		version = SchemaVersion
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO dataset_meta (key, value) VALUES ('schema_version', ?)`, version); err != nil {
		return fmt.Errorf("writing schema version: %w", err)
	}

	for _, f := range ds.Factors {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO emission_factors
			    (food_item, category, co2_per_kg, is_organic, source, year, confidence_level, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			f.FoodItem, string(f.Category), f.CO2ePerKg, boolInt(f.IsOrganic),
			f.Source, f.Year, f.Confidence, f.Notes)
		if err != nil {
			return fmt.Errorf("inserting emission factor %q: %w", f.FoodItem, err)
		}
	}

	for _, c := range ds.Categories {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO food_categories (name, description, color_code, avg_emission_factor, impact_level)
			VALUES (?, ?, ?, ?, ?)`,
			string(c.Name), c.Description, c.ColorCode, c.AvgEmissionFactor, c.ImpactLevel)
		if err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Name, err)
		}
	}

	for _, c := range ds.Comparisons {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO organic_comparison
			    (food_item, conventional_co2, organic_co2, difference_percent, explanation, recommendation)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.FoodItem, c.ConventionalCO2, c.OrganicCO2, c.DifferencePercent, c.Explanation, c.Recommendation)
		if err != nil {
			return fmt.Errorf("inserting organic comparison %q: %w", c.FoodItem, err)
		}
	}

	for _, t := range ds.Transport {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transport_factors (transport_method, km_range, co2_per_ton_km, description)
			VALUES (?, ?, ?, ?)`,
			t.Method, t.KmRange, t.KgCO2PerTonKm, t.Description)
		if err != nil {
			return fmt.Errorf("inserting transport factor %q: %w", t.Method, err)
		}
	}

	for _, p := range ds.Seasonal {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO seasonal_factors (food_item, months, storage_possible, climate_benefit_percent)
			VALUES (?, ?, ?, ?)`,
			p.FoodItem, encodeMonths(p.Months), boolInt(p.StoragePossible), p.ClimateBenefitPercent)
		if err != nil {
			return fmt.Errorf("inserting seasonal item %q: %w", p.FoodItem, err)
		}
	}

	for _, a := range ds.Alternatives {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO plant_alternatives
			    (meat_product, plant_alternative, category, co2_saving_percent, protein_per_100g,
			     taste_similarity, cooking_method, cost_comparison)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.MeatProduct, a.Alternative, a.Category, a.CO2SavingPercent, a.ProteinPer100g,
			a.TasteSimilarity, a.CookingMethod, a.CostComparison)
		if err != nil {
			return fmt.Errorf("inserting alternative %q: %w", a.Alternative, err)
		}
	}

	for _, t := range ds.Tips {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO waste_reduction_tips
			    (category, tip_title, tip_description, potential_reduction_percent,
			     difficulty_level, implementation_time, cost_impact)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.Category, t.Title, t.Description, t.ReductionPercent,
			t.Difficulty, t.ImplementationTime, t.CostImpact)
		if err != nil {
			return fmt.Errorf("inserting tip %q: %w", t.Title, err)
		}
	}

	for _, c := range ds.Canteens {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO canteens
			    (id, name, location, address, co2_per_kg, green_percent, meat_percent, organic_percent,
			     food_waste_percent, local_sourced, employees, meals_per_day, operating_days)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Location, c.Address, c.CO2PerKg, c.GreenPercent, c.MeatPercent,
			c.OrganicPercent, c.FoodWastePercent, c.LocalSourced, c.Employees, c.MealsPerDay, c.OperatingDays)
		if err != nil {
			return fmt.Errorf("inserting canteen %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// ReadDataset reads every reference table from db.
//
//nolint:funlen,gocognit // one scan loop per table
func ReadDataset(ctx context.Context, db *sql.DB) (Dataset, error) {
	var ds Dataset

	err := db.QueryRowContext(ctx,
		`SELECT value FROM dataset_meta WHERE key = 'schema_version'`).Scan(&ds.SchemaVersion)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ds, fmt.Errorf("reading schema version: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT food_item, category, co2_per_kg, is_organic,
		       COALESCE(source, ''), COALESCE(year, 0), COALESCE(confidence_level, ''), COALESCE(notes, '')
		FROM emission_factors ORDER BY id`,
		func(rows *sql.Rows) error {
			var f EmissionFactor
			var category string
			var organic int
			if err := rows.Scan(&f.FoodItem, &category, &f.CO2ePerKg, &organic,
				&f.Source, &f.Year, &f.Confidence, &f.Notes); err != nil {
				return err
			}
			f.Category = Category(category)
			f.IsOrganic = organic != 0
			ds.Factors = append(ds.Factors, f)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading emission factors: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT name, COALESCE(description, ''), COALESCE(color_code, ''),
		       COALESCE(avg_emission_factor, 0), COALESCE(impact_level, '')
		FROM food_categories ORDER BY rowid`,
		func(rows *sql.Rows) error {
			var c CategoryInfo
			var name string
			if err := rows.Scan(&name, &c.Description, &c.ColorCode, &c.AvgEmissionFactor, &c.ImpactLevel); err != nil {
				return err
			}
			c.Name = Category(name)
			ds.Categories = append(ds.Categories, c)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading categories: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT food_item, conventional_co2, organic_co2, difference_percent,
		       COALESCE(explanation, ''), COALESCE(recommendation, '')
		FROM organic_comparison ORDER BY rowid`,
		func(rows *sql.Rows) error {
			var c Comparison
			if err := rows.Scan(&c.FoodItem, &c.ConventionalCO2, &c.OrganicCO2, &c.DifferencePercent,
				&c.Explanation, &c.Recommendation); err != nil {
				return err
			}
			ds.Comparisons = append(ds.Comparisons, c)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading organic comparisons: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT transport_method, COALESCE(km_range, ''), co2_per_ton_km, COALESCE(description, '')
		FROM transport_factors ORDER BY id`,
		func(rows *sql.Rows) error {
			var t TransportFactor
			if err := rows.Scan(&t.Method, &t.KmRange, &t.KgCO2PerTonKm, &t.Description); err != nil {
				return err
			}
			ds.Transport = append(ds.Transport, t)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading transport factors: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT food_item, months, storage_possible, COALESCE(climate_benefit_percent, 0)
		FROM seasonal_factors ORDER BY rowid`,
		func(rows *sql.Rows) error {
			var p SeasonalProduce
			var mask string
			var storage int
			if err := rows.Scan(&p.FoodItem, &mask, &storage, &p.ClimateBenefitPercent); err != nil {
				return err
			}
			months, err := decodeMonths(mask)
			if err != nil {
				return fmt.Errorf("%s: %w", p.FoodItem, err)
			}
			p.Months = months
			p.StoragePossible = storage != 0
			ds.Seasonal = append(ds.Seasonal, p)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading seasonal factors: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT meat_product, plant_alternative, COALESCE(category, ''), COALESCE(co2_saving_percent, 0),
		       COALESCE(protein_per_100g, 0), COALESCE(taste_similarity, ''),
		       COALESCE(cooking_method, ''), COALESCE(cost_comparison, '')
		FROM plant_alternatives ORDER BY id`,
		func(rows *sql.Rows) error {
			var a Alternative
			if err := rows.Scan(&a.MeatProduct, &a.Alternative, &a.Category, &a.CO2SavingPercent,
				&a.ProteinPer100g, &a.TasteSimilarity, &a.CookingMethod, &a.CostComparison); err != nil {
				return err
			}
			ds.Alternatives = append(ds.Alternatives, a)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading plant alternatives: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT category, tip_title, COALESCE(tip_description, ''), COALESCE(potential_reduction_percent, 0),
		       COALESCE(difficulty_level, ''), COALESCE(implementation_time, ''), COALESCE(cost_impact, '')
		FROM waste_reduction_tips ORDER BY id`,
		func(rows *sql.Rows) error {
			var t Tip
			if err := rows.Scan(&t.Category, &t.Title, &t.Description, &t.ReductionPercent,
				&t.Difficulty, &t.ImplementationTime, &t.CostImpact); err != nil {
				return err
			}
			ds.Tips = append(ds.Tips, t)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading waste tips: %w", err)
	}

	err = queryRows(ctx, db, `
		SELECT id, name, COALESCE(location, ''), COALESCE(address, ''), COALESCE(co2_per_kg, 0),
		       COALESCE(green_percent, 0), COALESCE(meat_percent, 0), COALESCE(organic_percent, 0),
		       COALESCE(food_waste_percent, 0), COALESCE(local_sourced, 0), COALESCE(employees, 0),
		       COALESCE(meals_per_day, 0), COALESCE(operating_days, 240)
		FROM canteens ORDER BY id`,
		func(rows *sql.Rows) error {
			var c Canteen
			if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Address, &c.CO2PerKg,
				&c.GreenPercent, &c.MeatPercent, &c.OrganicPercent, &c.FoodWastePercent,
				&c.LocalSourced, &c.Employees, &c.MealsPerDay, &c.OperatingDays); err != nil {
				return err
			}
			ds.Canteens = append(ds.Canteens, c)
			return nil
		})
	if err != nil {
		return ds, fmt.Errorf("reading canteens: %w", err)
	}

	return ds, nil
}

func queryRows(ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) error) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// encodeMonths renders a month mask as twelve '0'/'1' characters, January first.
func encodeMonths(m [12]bool) string {
	var b strings.Builder
	b.Grow(len(m))
	for _, in := range m {
		if in {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func decodeMonths(s string) ([12]bool, error) {
	var m [12]bool
	if len(s) != len(m) {
		return m, fmt.Errorf("month mask %q must have %d characters", s, len(m))
	}
	for i := range len(m) {
		switch s[i] {
		case '1':
			m[i] = true
		case '0':
		default:
			return m, fmt.Errorf("month mask %q contains %q", s, s[i])
		}
	}
	return m, nil
}
