package app

import (
	"github.com/rs/zerolog"

	"github.com/noah-isme/pos-billing/internal/cart"
	"github.com/noah-isme/pos-billing/internal/catalog"
	"github.com/noah-isme/pos-billing/internal/config"
	"github.com/noah-isme/pos-billing/internal/invoice"
	"github.com/noah-isme/pos-billing/internal/pricing"
	"github.com/noah-isme/pos-billing/internal/seed"
)

// Dependencies enumerates the services of one billing session. The
// console interface owns the whole graph for the process lifetime.
type Dependencies struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Catalog   *catalog.Service
	Cart      *cart.Service
	Engine    *pricing.Engine
	Formatter *invoice.Formatter
	Store     *invoice.FileStore
	Log       *invoice.Log
}

// Build constructs and wires the session dependencies, seeding the
// catalog from the configured seed file or the built-in data set.
func Build(cfg *config.Config, logger zerolog.Logger) (*Dependencies, error) {
	cat := catalog.NewService()
	if cfg.SeedFile != "" {
		if err := seed.LoadFile(cat, cfg.SeedFile); err != nil {
			return nil, err
		}
	} else {
		if err := seed.Catalog(cat); err != nil {
			return nil, err
		}
	}

	return &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Catalog: cat,
		Cart:    cart.NewService(cat.Exists),
		Engine:  &pricing.Engine{Catalog: cat, DiscountRate: cfg.DiscountRate},
		Formatter: &invoice.Formatter{
			StoreName:      cfg.StoreName,
			CurrencySymbol: cfg.CurrencySymbol,
		},
		Store: &invoice.FileStore{Dir: cfg.OutputDir},
		Log:   &invoice.Log{},
	}, nil
}
