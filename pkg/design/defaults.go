package design

import (
	"sort"

	"github.com/dmoose/tailkit/pkg/utility"
	"github.com/dmoose/tailkit/pkg/variant"
)

// RegisterCoreUtilities wires the small, fixed set of utilities every
// tailkit config gets for free, independent of its own `utilities`
// array: display, flex, and the margin/padding/color utilities
// exercised by spec.md §8's concrete scenarios. A config's own
// utilities are registered afterward and may add further keys or
// additional definitions for an existing key (first-registered-wins,
// so core utilities are never silently shadowed).
//
// The much larger supplemental catalog the full preset carries
// (_examples/original_source/crates/rswind/src/preset/dynamics.rs) is
// split across RegisterTransformUtilities, RegisterColorUtilities,
// RegisterFilterUtilities, and RegisterBoxUtilities by family, the way
// dynamics.rs itself groups its own `add_*` helper calls by concern.
func (s *System) RegisterCoreUtilities() {
	s.RegisterUtility(&utility.Definition{
		Key:         "flex",
		ValueRepr:   utility.ValueRepr{ThemeKeys: []string{"flex"}},
		Handler:     decl("flex"),
		OrderingKey: utility.OrderFlex,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "block",
		Handler:     constDecl("display", "block"),
		OrderingKey: utility.OrderDisplay,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "hidden",
		Handler:     constDecl("display", "none"),
		OrderingKey: utility.OrderDisplay,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "grid",
		Handler:     constDecl("display", "grid"),
		OrderingKey: utility.OrderDisplay,
	})

	s.RegisterUtility(&utility.Definition{
		Key:              "m",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		SupportsNegative: true,
		Handler:          decl("margin"),
		OrderingKey:      utility.OrderMargin,
	})
	s.RegisterUtility(&utility.Definition{
		Key:              "mx",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		SupportsNegative: true,
		Handler:          props("margin-left", "margin-right"),
		OrderingKey:      utility.OrderMarginAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:              "my",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		SupportsNegative: true,
		Handler:          props("margin-top", "margin-bottom"),
		OrderingKey:      utility.OrderMarginAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "p",
		ValueRepr:   utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		Handler:     decl("padding"),
		OrderingKey: utility.OrderPadding,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "px",
		ValueRepr:   utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		Handler:     props("padding-left", "padding-right"),
		OrderingKey: utility.OrderPaddingAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "py",
		ValueRepr:   utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: utility.DimensionValidator()},
		Handler:     props("padding-top", "padding-bottom"),
		OrderingKey: utility.OrderPaddingAxis,
	})

	s.RegisterUtility(&utility.Definition{
		Key:                    "bg",
		ValueRepr:              utility.ValueRepr{ThemeKeys: []string{"colors"}, Validator: utility.ColorValidator()},
		ModifierRepr:           &utility.ValueRepr{},
		OpacityModifierEnabled: true,
		Handler:                decl("background-color"),
		OrderingKey:            utility.OrderBackgroundColor,
	})
	s.RegisterUtility(&utility.Definition{
		Key:                    "text",
		ValueRepr:              utility.ValueRepr{ThemeKeys: []string{"colors"}, Validator: utility.ColorValidator()},
		ModifierRepr:           &utility.ValueRepr{},
		OpacityModifierEnabled: true,
		Handler:                decl("color"),
		OrderingKey:            utility.OrderTextColor,
	})
}

// RegisterCoreVariants wires the fixed pseudo-class/composable variant
// set (hover, focus, etc.) and a dark-mode selector variant.
// Responsive breakpoint variants are derived from the live theme's
// "screens" namespace in RegisterResponsiveVariants, since their set
// depends on config content.
func (s *System) RegisterCoreVariants() {
	s.RegisterVariant(&variant.Definition{Key: "hover", Kind: variant.Selector, SelectorTemplate: "&:hover"})
	s.RegisterVariant(&variant.Definition{Key: "focus", Kind: variant.Selector, SelectorTemplate: "&:focus"})
	s.RegisterVariant(&variant.Definition{Key: "active", Kind: variant.Selector, SelectorTemplate: "&:active"})
	s.RegisterVariant(&variant.Definition{Key: "disabled", Kind: variant.Selector, SelectorTemplate: "&:disabled"})
	s.RegisterVariant(&variant.Definition{Key: "focus-visible", Kind: variant.Selector, SelectorTemplate: "&:focus-visible"})
	s.RegisterVariant(&variant.Definition{Key: "first", Kind: variant.Selector, SelectorTemplate: "&:first-child"})
	s.RegisterVariant(&variant.Definition{Key: "last", Kind: variant.Selector, SelectorTemplate: "&:last-child"})

	s.RegisterVariant(&variant.Definition{Key: "group-hover", Kind: variant.Composable, SelectorTemplate: ".group:hover &"})
	s.RegisterVariant(&variant.Definition{Key: "peer-focus", Kind: variant.Composable, SelectorTemplate: ".peer:focus ~ &"})
	s.RegisterVariant(&variant.Definition{Key: "peer-checked", Kind: variant.Composable, SelectorTemplate: ".peer:checked ~ &"})

	s.RegisterVariant(&variant.Definition{Key: "dark", Kind: variant.Selector, SelectorTemplate: ".dark &"})
}

// RegisterResponsiveVariants derives one AtRule variant per key in the
// theme's "screens" namespace, so breakpoint variants track whatever a
// config's theme declares rather than a fixed list.
func (s *System) RegisterResponsiveVariants() {
	screens := s.Theme.Namespace("screens")
	keys := make([]string, 0, len(screens))
	for key := range screens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		s.RegisterVariant(&variant.Definition{
			Key:            key,
			Kind:           variant.AtRule,
			AtRuleTemplate: "@media (min-width: {value})",
			ThemeKeys:      []string{"screens"},
		})
	}
}
