package design

import (
	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/utility"
)

// RegisterTransformUtilities wires the translate/scale/rotate/skew
// axis triads, the bare `transform` escape hatch, border-spacing, and
// `animate`, grounded on the transform-family utilities registered in
// _examples/original_source/crates/rswind/src/preset/dynamics.rs
// (TRANSLATE_XY/XYZ, SCALE_XY/XYZ, ROTATE_XY/XYZ, SKEW_XY, TRANSFORM,
// BORDER_SPACING_XY and the `animate` utility). Each axis utility only
// ever writes its own `--tw-*` custom property; GroupTransform hoists
// every one of them into a single trailing `transform` declaration
// (pkg/utility's GroupDecls), so declaration order among e.g.
// `translate-x-4 scale-50` never matters.
func (s *System) RegisterTransformUtilities() {
	dim := utility.DimensionValidator()
	any := utility.AnyValidator()

	translate := []sideEntry{
		{"translate-x", []string{"--tw-translate-x"}, utility.OrderTransform},
		{"translate-y", []string{"--tw-translate-y"}, utility.OrderTransform},
		{"translate-z", []string{"--tw-translate-z"}, utility.OrderTransform},
	}
	s.registerFamily([]string{"spacing"}, dim, familyOpts{negative: true, group: utility.GroupTransform}, translate)
	s.RegisterUtility(&utility.Definition{
		Key:              "translate",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		SupportsNegative: true,
		Handler:          props("--tw-translate-x", "--tw-translate-y"),
		Group:            utility.GroupTransform,
		OrderingKey:      utility.OrderTransform,
	})

	scale := []sideEntry{
		{"scale-x", []string{"--tw-scale-x"}, utility.OrderTransform},
		{"scale-y", []string{"--tw-scale-y"}, utility.OrderTransform},
		{"scale-z", []string{"--tw-scale-z"}, utility.OrderTransform},
	}
	s.registerFamily([]string{"scale"}, utility.NumberValidator(), familyOpts{negative: true, group: utility.GroupTransform}, scale)
	s.RegisterUtility(&utility.Definition{
		Key:              "scale",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"scale"}, Validator: utility.NumberValidator()},
		SupportsNegative: true,
		Handler:          props("--tw-scale-x", "--tw-scale-y"),
		Group:            utility.GroupTransform,
		OrderingKey:      utility.OrderTransform,
	})

	rotate := []sideEntry{
		{"rotate-x", []string{"--tw-rotate-x"}, utility.OrderTransform},
		{"rotate-y", []string{"--tw-rotate-y"}, utility.OrderTransform},
		{"rotate-z", []string{"--tw-rotate-z"}, utility.OrderTransform},
	}
	s.registerFamily([]string{"rotate"}, any, familyOpts{negative: true, group: utility.GroupTransform}, rotate)
	s.RegisterUtility(&utility.Definition{
		Key:              "rotate",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"rotate"}, Validator: any},
		SupportsNegative: true,
		Handler:          props("--tw-rotate-z"),
		Group:            utility.GroupTransform,
		OrderingKey:      utility.OrderTransform,
	})

	skew := []sideEntry{
		{"skew-x", []string{"--tw-skew-x"}, utility.OrderTransform},
		{"skew-y", []string{"--tw-skew-y"}, utility.OrderTransform},
	}
	s.registerFamily([]string{"skew"}, any, familyOpts{negative: true, group: utility.GroupTransform}, skew)
	s.RegisterUtility(&utility.Definition{
		Key:              "skew",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"skew"}, Validator: any},
		SupportsNegative: true,
		Handler:          props("--tw-skew-x", "--tw-skew-y"),
		Group:            utility.GroupTransform,
		OrderingKey:      utility.OrderTransform,
	})

	s.RegisterUtility(&utility.Definition{
		Key:         "transform",
		ValueRepr:   utility.ValueRepr{Validator: any},
		Handler:     decl("transform"),
		OrderingKey: utility.OrderTransform,
	})

	s.RegisterUtility(&utility.Definition{
		Key:       "border-spacing",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-border-spacing-x", Value: value},
				css.Decl{Name: "--tw-border-spacing-y", Value: value},
				css.Decl{Name: "border-spacing", Value: "var(--tw-border-spacing-x) var(--tw-border-spacing-y)"},
			)}
		},
		OrderingKey: utility.OrderBorderSpacing,
	})
	s.RegisterUtility(&utility.Definition{
		Key:       "border-spacing-x",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-border-spacing-x", Value: value},
				css.Decl{Name: "border-spacing", Value: "var(--tw-border-spacing-x) var(--tw-border-spacing-y, 0)"},
			)}
		},
		OrderingKey: utility.OrderBorderSpacingAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:       "border-spacing-y",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-border-spacing-y", Value: value},
				css.Decl{Name: "border-spacing", Value: "var(--tw-border-spacing-x, 0) var(--tw-border-spacing-y)"},
			)}
		},
		OrderingKey: utility.OrderBorderSpacingAxis,
	})

	s.RegisterUtility(&utility.Definition{
		Key:           "animate",
		ValueRepr:     utility.ValueRepr{ThemeKeys: []string{"animation"}, Validator: any},
		Handler:       decl("animation"),
		AdditionalCSS: keyframesAdditionalCSS(s.Theme),
		OrderingKey:   utility.OrderAnimate,
	})
}
