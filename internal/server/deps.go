package server

import (
	"fmt"

	"github.com/blue-screen-of-app/internal/analytics"
	"github.com/blue-screen-of-app/internal/catalog"
	"github.com/blue-screen-of-app/internal/config"
	"github.com/blue-screen-of-app/internal/qr"
	"github.com/blue-screen-of-app/internal/render"
	"github.com/blue-screen-of-app/internal/service"
)

// NewDeps builds the application's collaborators from cfg. A nil source uses
// the process-wide random generator.
func NewDeps(cfg *config.Config, source catalog.Rand) (Deps, error) {
	cat, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return Deps{}, fmt.Errorf("load catalog: %w", err)
	}

	renderer, err := render.NewRenderer(cfg.AppName, cfg.QRCodeSize)
	if err != nil {
		return Deps{}, fmt.Errorf("load templates: %w", err)
	}

	var codes *qr.Generator
	if cfg.EnableQRCodes {
		codes = qr.NewGenerator(cfg.QRCodeSize)
	}

	agg := analytics.NewAggregator(cfg.EnableAnalytics)
	svc := service.NewBSODService(catalog.NewSelector(cat, source), codes, agg, cfg.DefaultQRURL)

	return Deps{
		Config:    cfg,
		Service:   svc,
		Renderer:  renderer,
		Analytics: agg,
	}, nil
}
