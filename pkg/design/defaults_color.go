package design

import (
	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/utility"
)

// colorFamily registers a themeKeys-["...","colors"]-backed,
// opacity-modifier-enabled utility assigning one property, the shape
// shared by most of this file's entries.
func (s *System) colorFamily(key string, themeKeys []string, prop string, order utility.OrderingKey) {
	s.RegisterUtility(&utility.Definition{
		Key:                    key,
		ValueRepr:              utility.ValueRepr{ThemeKeys: themeKeys, Validator: utility.ColorValidator()},
		ModifierRepr:           &utility.ValueRepr{},
		OpacityModifierEnabled: true,
		Handler:                decl(prop),
		OrderingKey:            order,
	})
}

// RegisterColorUtilities wires gradient stops, fill/stroke,
// background/text/border extras, decoration, shadow, outline, ring,
// and the space-x/y and divide-x/y child-combinator families.
// Grounded on
// _examples/original_source/crates/rswind/src/preset/dynamics.rs's
// GRADIENT_PROPERTIES, SPACE_X_REVERSE/SPACE_Y_REVERSE,
// DIVIDE_X_REVERSE/DIVIDE_Y_REVERSE and the fill/stroke/shadow/outline/
// ring utility registrations.
func (s *System) RegisterColorUtilities() {
	any := utility.AnyValidator()
	dim := utility.DimensionValidator()
	num := utility.NumberValidator()

	// Gradient stops: a color utility per stop, plus a position
	// utility sharing the stop's key prefix. Positions take arbitrary
	// values only (`from-[10%]`); they have no theme namespace.
	s.colorFamily("from", []string{"colors"}, "--tw-gradient-from", utility.OrderFromColor)
	s.colorFamily("via", []string{"colors"}, "--tw-gradient-via", utility.OrderViaColor)
	s.colorFamily("to", []string{"colors"}, "--tw-gradient-to", utility.OrderToColor)
	s.RegisterUtility(&utility.Definition{
		Key:         "from",
		ValueRepr:   utility.ValueRepr{Validator: any},
		Handler:     decl("--tw-gradient-from-position"),
		OrderingKey: utility.OrderFromPosition,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "via",
		ValueRepr:   utility.ValueRepr{Validator: any},
		Handler:     decl("--tw-gradient-via-position"),
		OrderingKey: utility.OrderViaPosition,
	})
	s.RegisterUtility(&utility.Definition{
		Key:         "to",
		ValueRepr:   utility.ValueRepr{Validator: any},
		Handler:     decl("--tw-gradient-to-position"),
		OrderingKey: utility.OrderToPosition,
	})

	s.colorFamily("fill", []string{"fill", "colors"}, "fill", utility.OrderFill)
	s.colorFamily("stroke", []string{"stroke", "colors"}, "stroke", utility.OrderStroke)

	// Background extras beyond the core bg-color utility.
	s.RegisterUtility(&utility.Definition{Key: "bg", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"backgroundPosition"}, Validator: any}, Handler: decl("background-position"), OrderingKey: utility.OrderBgPosition})
	s.RegisterUtility(&utility.Definition{Key: "bg", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"backgroundSize"}, Validator: any}, Handler: decl("background-size"), OrderingKey: utility.OrderBgSize})
	s.RegisterUtility(&utility.Definition{Key: "bg", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"backgroundImage"}, Validator: any}, Handler: decl("background-image"), OrderingKey: utility.OrderBgImage})

	// Text/font extras beyond the core text-color utility.
	s.RegisterUtility(&utility.Definition{Key: "text", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"fontSize"}, Validator: any}, Handler: decl("font-size"), OrderingKey: utility.OrderFontSize})
	s.RegisterUtility(&utility.Definition{Key: "font", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"fontFamily"}, Validator: any}, Handler: decl("font-family"), OrderingKey: utility.OrderFontFamily})
	s.RegisterUtility(&utility.Definition{Key: "font", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"fontWeight"}, Validator: num}, Handler: decl("font-weight"), OrderingKey: utility.OrderFontWeight})
	s.RegisterUtility(&utility.Definition{Key: "indent", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"textIndent", "spacing"}, Validator: dim}, SupportsNegative: true, Handler: decl("text-indent"), OrderingKey: utility.OrderTextIndent})
	s.RegisterUtility(&utility.Definition{Key: "leading", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"lineHeight"}, Validator: dim}, Handler: decl("line-height"), OrderingKey: utility.OrderLeading})

	s.colorFamily("placeholder", []string{"colors"}, "--tw-placeholder-color", utility.OrderPlaceholder)
	s.colorFamily("decoration", []string{"colors"}, "text-decoration-color", utility.OrderDecoration)
	s.RegisterUtility(&utility.Definition{Key: "decoration", ValueRepr: utility.ValueRepr{ThemeKeys: []string{"textDecorationThickness"}, Validator: dim}, Handler: decl("text-decoration-thickness"), OrderingKey: utility.OrderDecorationThickness})

	s.RegisterUtility(&utility.Definition{
		Key:       "shadow",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"boxShadow"}, Validator: any},
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-shadow", Value: value},
				css.Decl{Name: "box-shadow", Value: "var(--tw-shadow)"},
			)}
		},
		OrderingKey: utility.OrderShadow,
	})
	s.colorFamily("shadow", []string{"colors"}, "--tw-shadow-color", utility.OrderShadowColor)

	s.colorFamily("accent", []string{"colors"}, "accent-color", utility.OrderAccent)
	s.colorFamily("caret", []string{"colors"}, "caret-color", utility.OrderCaret)

	s.registerBorderWidthFamily()
	s.registerFamily([]string{"borderColor", "colors"}, utility.ColorValidator(), familyOpts{opacityModifier: true}, []sideEntry{
		{"border", []string{"border-color"}, utility.OrderBorderColor},
		{"border-x", []string{"border-left-color", "border-right-color"}, utility.OrderBorderColorAxis},
		{"border-y", []string{"border-top-color", "border-bottom-color"}, utility.OrderBorderColorAxis},
		{"border-s", []string{"border-inline-start-color"}, utility.OrderBorderColorSide},
		{"border-e", []string{"border-inline-end-color"}, utility.OrderBorderColorSide},
		{"border-t", []string{"border-top-color"}, utility.OrderBorderColorSide},
		{"border-r", []string{"border-right-color"}, utility.OrderBorderColorSide},
		{"border-b", []string{"border-bottom-color"}, utility.OrderBorderColorSide},
		{"border-l", []string{"border-left-color"}, utility.OrderBorderColorSide},
	})

	s.RegisterUtility(&utility.Definition{
		Key:       "outline",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"outlineWidth"}, Validator: dim},
		Handler:   decl("outline-width"),
		OrderingKey: utility.OrderOutlineWidth,
	})
	s.colorFamily("outline", []string{"colors"}, "outline-color", utility.OrderOutlineColor)

	s.colorFamily("ring", []string{"colors"}, "--tw-ring-color", utility.OrderRingColor)
	s.RegisterUtility(&utility.Definition{
		Key:       "ring",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"ringWidth"}, Validator: dim},
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-ring-shadow", Value: "inset 0 0 0 " + value + " var(--tw-ring-color, currentcolor)"},
				css.Decl{Name: "box-shadow", Value: "var(--tw-ring-shadow)"},
			)}
		},
		OrderingKey: utility.OrderRingColor,
	})
	s.RegisterUtility(&utility.Definition{
		Key:       "ring-offset",
		ValueRepr: utility.ValueRepr{ThemeKeys: []string{"ringOffsetWidth", "spacing"}, Validator: dim},
		Handler:   decl("--tw-ring-offset-width"),
		OrderingKey: utility.OrderRingOffsetWidth,
	})
	s.colorFamily("ring-offset", []string{"colors"}, "--tw-ring-offset-color", utility.OrderRingOffsetColor)

	// space-x/space-y: declares the gap via a child-combinator margin
	// pair with a reversal custom property, matching the original's
	// SPACE_X_REVERSE/SPACE_Y_REVERSE rule lists.
	s.RegisterUtility(&utility.Definition{
		Key:              "space-x",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		SupportsNegative: true,
		WrapperSelector:  "& > :not([hidden]) ~ :not([hidden])",
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-space-x-reverse", Value: "0"},
				css.Decl{Name: "margin-inline-start", Value: "calc(" + value + " * calc(1 - var(--tw-space-x-reverse)))"},
				css.Decl{Name: "margin-inline-end", Value: "calc(" + value + " * var(--tw-space-x-reverse))"},
			)}
		},
		OrderingKey: utility.OrderSpaceAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:              "space-y",
		ValueRepr:        utility.ValueRepr{ThemeKeys: []string{"spacing"}, Validator: dim},
		SupportsNegative: true,
		WrapperSelector:  "& > :not([hidden]) ~ :not([hidden])",
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-space-y-reverse", Value: "0"},
				css.Decl{Name: "margin-top", Value: "calc(" + value + " * var(--tw-space-y-reverse))"},
				css.Decl{Name: "margin-bottom", Value: "calc(" + value + " * calc(1 - var(--tw-space-y-reverse)))"},
			)}
		},
		OrderingKey: utility.OrderSpaceAxis,
	})

	s.RegisterUtility(&utility.Definition{
		Key:             "divide-x",
		ValueRepr:       utility.ValueRepr{ThemeKeys: []string{"borderWidth"}, Validator: dim},
		WrapperSelector: "& > :not([hidden]) ~ :not([hidden])",
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-divide-x-reverse", Value: "0"},
				css.Decl{Name: "border-inline-start-width", Value: "calc(" + value + " * calc(1 - var(--tw-divide-x-reverse)))"},
				css.Decl{Name: "border-inline-end-width", Value: "calc(" + value + " * var(--tw-divide-x-reverse))"},
			)}
		},
		OrderingKey: utility.OrderDivideAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:             "divide-y",
		ValueRepr:       utility.ValueRepr{ThemeKeys: []string{"borderWidth"}, Validator: dim},
		WrapperSelector: "& > :not([hidden]) ~ :not([hidden])",
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("",
				css.Decl{Name: "--tw-divide-y-reverse", Value: "0"},
				css.Decl{Name: "border-top-width", Value: "calc(" + value + " * var(--tw-divide-y-reverse))"},
				css.Decl{Name: "border-bottom-width", Value: "calc(" + value + " * calc(1 - var(--tw-divide-y-reverse)))"},
			)}
		},
		OrderingKey: utility.OrderDivideAxis,
	})
	s.RegisterUtility(&utility.Definition{
		Key:             "divide",
		ValueRepr:       utility.ValueRepr{ThemeKeys: []string{"colors"}, Validator: utility.ColorValidator()},
		ModifierRepr:    &utility.ValueRepr{},
		OpacityModifierEnabled: true,
		WrapperSelector: "& > :not([hidden]) ~ :not([hidden])",
		Handler:         decl("border-color"),
		OrderingKey:     utility.OrderDivideColor,
	})
}
