package cli

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/canteenco2/internal/config"
	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/sourcing"
)

// newFactorsProvider returns a provider for the configured factors database.
func newFactorsProvider(dc config.DataConfig) *factors.Provider {
	return factors.NewProvider(factors.LoadOptions{Path: dc.FactorsDB, AutoSeed: dc.AutoSeed})
}

// newSourcingProvider returns a provider for the configured sourcing file.
func newSourcingProvider(dc config.DataConfig) *sourcing.Provider {
	return sourcing.NewProvider(dc.SourcingFile)
}

// loadFactors loads the emission factor store named by the global config.
func loadFactors(ctx context.Context) (*factors.Store, error) {
	return newFactorsProvider(config.GetDataConfig()).Store(ctx)
}

// loadSourcing loads the sourcing engine named by the global config.
func loadSourcing(ctx context.Context) (*sourcing.Engine, error) {
	return newSourcingProvider(config.GetDataConfig()).Engine(ctx)
}

// loadDatasets loads both datasets concurrently.
func loadDatasets(ctx context.Context) (*factors.Store, *sourcing.Engine, error) {
	var (
		store  *factors.Store
		engine *sourcing.Engine
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		store, err = loadFactors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		engine, err = loadSourcing(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return store, engine, nil
}
