// Package design is the facade that owns a frozen theme plus the
// utility and variant registries, and exposes the three operations
// the rest of the system needs: register_utility, register_variant,
// resolve. Grounded on the teacher's GenerationContext shape — one
// struct assembled once at init and handed to everything downstream.
package design

import (
	"github.com/dmoose/tailkit/pkg/order"
	"github.com/dmoose/tailkit/pkg/resolver"
	"github.com/dmoose/tailkit/pkg/theme"
	"github.com/dmoose/tailkit/pkg/utility"
	"github.com/dmoose/tailkit/pkg/variant"
)

// System is the Design System Facade.
type System struct {
	Theme      *theme.Theme
	Utilities  *utility.Registry
	Variants   *variant.Registry
	Resolver   *resolver.Resolver
	Weights    *order.VariantWeights
}

// Config controls facade construction.
type Config struct {
	Theme         *theme.Theme
	ResolverCache int64 // not read by New or Freeze; the cache size is Freeze's argument
}

// New builds an empty, mutable System. Call RegisterUtility and
// RegisterVariant to populate it, then Freeze to build the resolver
// and variant-weight table once registration is complete.
func New(cfg Config) *System {
	th := cfg.Theme
	if th == nil {
		th = theme.New()
	}
	return &System{
		Theme:     th,
		Utilities: utility.NewRegistry(),
		Variants:  variant.NewRegistry(),
	}
}

// RegisterUtility adds def to the utility registry.
func (s *System) RegisterUtility(def *utility.Definition) {
	s.Utilities.Register(def)
}

// RegisterVariant adds def to the variant registry.
func (s *System) RegisterVariant(def *variant.Definition) {
	s.Variants.Register(def)
}

// Freeze builds the resolver and the variant-weight table from the
// current registry contents. Theme and registries are read-only from
// this point on (spec.md §3's "Lifecycles").
func (s *System) Freeze(cacheSize int64) error {
	r, err := resolver.New(s.Theme, s.Utilities, s.Variants, cacheSize)
	if err != nil {
		return err
	}
	s.Resolver = r
	s.Weights = order.NewVariantWeights(s.Variants.Keys())
	return nil
}

// Resolve resolves a single raw token against the frozen system.
func (s *System) Resolve(raw string) (*resolver.ResolvedRule, string) {
	return s.Resolver.Resolve(raw)
}
