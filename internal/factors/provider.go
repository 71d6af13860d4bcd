package factors

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoaderFunc builds a Store. Load bound to a LoadOptions is the usual one.
type LoaderFunc func(ctx context.Context) (*Store, error)

// Provider lazily loads a Store once and hands the same instance to every
// caller. Concurrent first calls share a single load. A failed load is not
// cached; the next call retries.
type Provider struct {
	load  LoaderFunc
	group singleflight.Group

	mu    sync.RWMutex
	store *Store
}

// NewProvider returns a Provider that loads with opts.
func NewProvider(opts LoadOptions) *Provider {
	return NewProviderFunc(func(ctx context.Context) (*Store, error) {
		return Load(ctx, opts)
	})
}

// NewProviderFunc returns a Provider backed by an arbitrary loader.
func NewProviderFunc(load LoaderFunc) *Provider {
	return &Provider{load: load}
}

// NewStaticProvider returns a Provider that always yields s.
func NewStaticProvider(s *Store) *Provider {
	return &Provider{
		load:  func(context.Context) (*Store, error) { return s, nil },
		store: s,
	}
}

// Store returns the loaded Store, loading it on first use.
func (p *Provider) Store(ctx context.Context) (*Store, error) {
	p.mu.RLock()
	s := p.store
	p.mu.RUnlock()
	if s != nil {
		return s, nil
	}
	return p.fetch(ctx, "load")
}

// Reload replaces the cached Store with a freshly loaded one. Readers holding
// the previous Store keep a consistent view of it. On failure the previous
// Store stays in place.
func (p *Provider) Reload(ctx context.Context) (*Store, error) {
	return p.fetch(ctx, "reload")
}

func (p *Provider) fetch(ctx context.Context, key string) (*Store, error) {
	v, err, _ := p.group.Do(key, func() (any, error) {
		if key == "load" {
			p.mu.RLock()
			cached := p.store
			p.mu.RUnlock()
			if cached != nil {
				return cached, nil
			}
		}
		s, loadErr := p.load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		p.mu.Lock()
		p.store = s
		p.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil //nolint:errcheck // group only returns *Store
}
