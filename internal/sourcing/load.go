package sourcing

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/canteenco2/internal/logging"
)

//go:embed data/sourcing_data.json
var defaultData embed.FS

const defaultDataPath = "data/sourcing_data.json"

// supportedSchema is the range of dataset schemas this package reads.
const supportedSchema = "^1.0.0"

// Decode reads a sourcing document from r and returns its items with IDs
// filled in. Every failure wraps ErrDataLoad.
func Decode(r io.Reader) ([]Item, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrDataLoad, err)
	}
	if err := checkSchemaVersion(ds.SchemaVersion); err != nil {
		return nil, err
	}
	if len(ds.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrDataLoad)
	}

	items := make([]Item, 0, len(ds.Items))
	for id, it := range ds.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("%w: item %q has no name", ErrDataLoad, id)
		}
		if it.CO2Base < 0 {
			return nil, fmt.Errorf("%w: item %q has negative co2_base", ErrDataLoad, id)
		}
		for m := range it.Months {
			if m < 0 || m > 11 {
				return nil, fmt.Errorf("%w: item %q has month %d", ErrDataLoad, id, m)
			}
		}
		it.ID = id
		items = append(items, it)
	}
	return items, nil
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: missing schema_version", ErrDataLoad)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: invalid schema_version %q: %w", ErrDataLoad, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: schema_version %s not in supported range %s", ErrDataLoad, v, supportedSchema)
	}
	return nil
}

// Load builds an Engine from the JSON file at path, or from the built-in
// Danish produce calendar when path is empty.
func Load(ctx context.Context, path string) (*Engine, error) {
	var (
		r   io.ReadCloser
		err error
	)
	if path == "" {
		r, err = defaultData.Open(defaultDataPath)
	} else {
		r, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	defer r.Close()

	items, err := Decode(r)
	if err != nil {
		return nil, err
	}

	source := path
	if source == "" {
		source = "embedded"
	}
	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "sourcing").
		Str("operation", "load").
		Str("source", source).
		Int("items", len(items)).
		Msg("sourcing dataset loaded")

	return NewEngine(items), nil
}

// Provider loads an Engine once and shares it. Concurrent first calls share
// a single load; failures are not cached.
type Provider struct {
	path  string
	group singleflight.Group

	mu     sync.RWMutex
	engine *Engine
}

// NewProvider returns a Provider that loads from path (empty = built-in).
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Engine returns the shared Engine, loading it on first use.
func (p *Provider) Engine(ctx context.Context) (*Engine, error) {
	p.mu.RLock()
	e := p.engine
	p.mu.RUnlock()
	if e != nil {
		return e, nil
	}

	v, err, _ := p.group.Do("load", func() (any, error) {
		p.mu.RLock()
		cached := p.engine
		p.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		loaded, loadErr := Load(ctx, p.path)
		if loadErr != nil {
			return nil, loadErr
		}
		p.mu.Lock()
		p.engine = loaded
		p.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Engine), nil //nolint:errcheck // group only returns *Engine
}
