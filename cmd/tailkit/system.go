package main

import (
	"fmt"
	"os"

	"github.com/dmoose/tailkit/pkg/design"
	"github.com/dmoose/tailkit/pkg/generator"
	"github.com/dmoose/tailkit/pkg/theme"
)

// loadConfig reads and decodes the config file at path, or returns an
// empty Config if path is empty (a bare theme-less run against the
// core utility/variant set).
func loadConfig(path string) (*generator.Config, error) {
	if path == "" {
		return &generator.Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := generator.DecodeConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// buildSystem assembles a frozen design.System from a decoded config:
// theme first, then the fixed core utility/variant set, then the
// config's own `utilities`/`staticUtilities` declarations layered on
// top (a config utility sharing a key with a core one is additive,
// never shadowing, per the registry's first-registered-wins rule).
func buildSystem(cfg *generator.Config) (*design.System, error) {
	raw := make(map[string]any, len(cfg.Theme))
	for ns, table := range cfg.Theme {
		raw[ns] = table
	}
	th, err := theme.Build(raw, map[string]bool{"colors": true})
	if err != nil {
		return nil, fmt.Errorf("building theme: %w", err)
	}

	sys := design.New(design.Config{Theme: th})
	sys.RegisterCoreUtilities()
	sys.RegisterTransformUtilities()
	sys.RegisterColorUtilities()
	sys.RegisterFilterUtilities()
	sys.RegisterBoxUtilities()
	sys.RegisterCoreVariants()
	sys.RegisterResponsiveVariants()

	if err := registerConfigUtilities(sys, cfg); err != nil {
		return nil, err
	}

	if err := sys.Freeze(200_000); err != nil {
		return nil, fmt.Errorf("freezing design system: %w", err)
	}
	return sys, nil
}
