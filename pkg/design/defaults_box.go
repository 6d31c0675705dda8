package design

import (
	"github.com/dmoose/tailkit/pkg/utility"
)

// RegisterBoxUtilities wires the macro-driven families the original
// preset builds with its `add_theme_utility!` macro
// (_examples/original_source/crates/rswind/src/preset/dynamics.rs):
// the remaining margin/padding sides, inset, width/height/size,
// rounded corners, opacity, scroll-margin/scroll-padding, plus gap,
// cursor/list/columns, and the grid auto-cols/auto-rows utilities
// dynamics.rs registers alongside them. Each family is a sideEntry
// table fed to registerFamily (see helpers.go) rather than a literal
// macro expansion.
func (s *System) RegisterBoxUtilities() {
	dim := utility.DimensionValidator()
	any := utility.AnyValidator()
	num := utility.NumberValidator()
	spacing := []string{"spacing"}

	s.registerFamily(spacing, dim, familyOpts{negative: true}, []sideEntry{
		{"mt", []string{"margin-top"}, utility.OrderMarginSide},
		{"mr", []string{"margin-right"}, utility.OrderMarginSide},
		{"mb", []string{"margin-bottom"}, utility.OrderMarginSide},
		{"ml", []string{"margin-left"}, utility.OrderMarginSide},
		{"ms", []string{"margin-inline-start"}, utility.OrderMarginSide},
		{"me", []string{"margin-inline-end"}, utility.OrderMarginSide},
	})
	s.registerFamily(spacing, dim, familyOpts{}, []sideEntry{
		{"pt", []string{"padding-top"}, utility.OrderPaddingSide},
		{"pr", []string{"padding-right"}, utility.OrderPaddingSide},
		{"pb", []string{"padding-bottom"}, utility.OrderPaddingSide},
		{"pl", []string{"padding-left"}, utility.OrderPaddingSide},
		{"ps", []string{"padding-inline-start"}, utility.OrderPaddingSide},
		{"pe", []string{"padding-inline-end"}, utility.OrderPaddingSide},
	})

	s.registerFamily([]string{"inset", "spacing"}, dim, familyOpts{negative: true, fraction: true}, []sideEntry{
		{"inset", []string{"top", "right", "bottom", "left"}, utility.OrderInset},
		{"inset-x", []string{"left", "right"}, utility.OrderInsetAxis},
		{"inset-y", []string{"top", "bottom"}, utility.OrderInsetAxis},
		{"top", []string{"top"}, utility.OrderInsetSide},
		{"right", []string{"right"}, utility.OrderInsetSide},
		{"bottom", []string{"bottom"}, utility.OrderInsetSide},
		{"left", []string{"left"}, utility.OrderInsetSide},
	})

	s.registerFamily([]string{"width", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"w", []string{"width"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"maxWidth", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"max-w", []string{"max-width"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"minWidth", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"min-w", []string{"min-width"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"height", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"h", []string{"height"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"maxHeight", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"max-h", []string{"max-height"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"minHeight", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"min-h", []string{"min-height"}, utility.OrderSizeAxis}})
	s.registerFamily([]string{"size", "spacing"}, dim, familyOpts{fraction: true}, []sideEntry{{"size", []string{"width", "height"}, utility.OrderSize}})

	s.registerFamily([]string{"borderRadius"}, dim, familyOpts{}, []sideEntry{
		{"rounded", []string{"border-radius"}, utility.OrderRounded},
		{"rounded-s", []string{"border-start-start-radius", "border-end-start-radius"}, utility.OrderRoundedSide},
		{"rounded-e", []string{"border-start-end-radius", "border-end-end-radius"}, utility.OrderRoundedSide},
		{"rounded-t", []string{"border-top-left-radius", "border-top-right-radius"}, utility.OrderRoundedSide},
		{"rounded-r", []string{"border-top-right-radius", "border-bottom-right-radius"}, utility.OrderRoundedSide},
		{"rounded-b", []string{"border-bottom-right-radius", "border-bottom-left-radius"}, utility.OrderRoundedSide},
		{"rounded-l", []string{"border-top-left-radius", "border-bottom-left-radius"}, utility.OrderRoundedSide},
		{"rounded-ss", []string{"border-start-start-radius"}, utility.OrderRoundedCorner},
		{"rounded-se", []string{"border-start-end-radius"}, utility.OrderRoundedCorner},
		{"rounded-ee", []string{"border-end-end-radius"}, utility.OrderRoundedCorner},
		{"rounded-es", []string{"border-end-start-radius"}, utility.OrderRoundedCorner},
		{"rounded-tl", []string{"border-top-left-radius"}, utility.OrderRoundedCorner},
		{"rounded-tr", []string{"border-top-right-radius"}, utility.OrderRoundedCorner},
		{"rounded-br", []string{"border-bottom-right-radius"}, utility.OrderRoundedCorner},
		{"rounded-bl", []string{"border-bottom-left-radius"}, utility.OrderRoundedCorner},
	})

	s.registerFamily([]string{"opacity"}, num, familyOpts{}, []sideEntry{{"opacity", []string{"opacity"}, utility.OrderOpacity}})

	s.registerFamily([]string{"scrollMargin", "spacing"}, dim, familyOpts{negative: true}, []sideEntry{
		{"scroll-m", []string{"scroll-margin"}, utility.OrderScrollMargin},
		{"scroll-mx", []string{"scroll-margin-left", "scroll-margin-right"}, utility.OrderScrollMarginAxis},
		{"scroll-my", []string{"scroll-margin-top", "scroll-margin-bottom"}, utility.OrderScrollMarginAxis},
		{"scroll-ms", []string{"scroll-margin-inline-start"}, utility.OrderScrollMarginSide},
		{"scroll-me", []string{"scroll-margin-inline-end"}, utility.OrderScrollMarginSide},
		{"scroll-mt", []string{"scroll-margin-top"}, utility.OrderScrollMarginSide},
		{"scroll-mr", []string{"scroll-margin-right"}, utility.OrderScrollMarginSide},
		{"scroll-mb", []string{"scroll-margin-bottom"}, utility.OrderScrollMarginSide},
		{"scroll-ml", []string{"scroll-margin-left"}, utility.OrderScrollMarginSide},
	})
	s.registerFamily([]string{"scrollPadding", "spacing"}, dim, familyOpts{}, []sideEntry{
		{"scroll-p", []string{"scroll-padding"}, utility.OrderScrollPadding},
		{"scroll-px", []string{"scroll-padding-left", "scroll-padding-right"}, utility.OrderScrollPaddingAxis},
		{"scroll-py", []string{"scroll-padding-top", "scroll-padding-bottom"}, utility.OrderScrollPaddingAxis},
		{"scroll-ps", []string{"scroll-padding-inline-start"}, utility.OrderScrollPaddingSide},
		{"scroll-pe", []string{"scroll-padding-inline-end"}, utility.OrderScrollPaddingSide},
		{"scroll-pt", []string{"scroll-padding-top"}, utility.OrderScrollPaddingSide},
		{"scroll-pr", []string{"scroll-padding-right"}, utility.OrderScrollPaddingSide},
		{"scroll-pb", []string{"scroll-padding-bottom"}, utility.OrderScrollPaddingSide},
		{"scroll-pl", []string{"scroll-padding-left"}, utility.OrderScrollPaddingSide},
	})

	s.registerFamily([]string{"gap", "spacing"}, dim, familyOpts{}, []sideEntry{
		{"gap", []string{"gap"}, utility.OrderGap},
		{"gap-x", []string{"column-gap"}, utility.OrderGapAxis},
		{"gap-y", []string{"row-gap"}, utility.OrderGapAxis},
	})

	s.registerFamily([]string{"cursor"}, any, familyOpts{}, []sideEntry{{"cursor", []string{"cursor"}, utility.OrderCursor}})
	s.registerFamily([]string{"listStyleType"}, any, familyOpts{}, []sideEntry{{"list", []string{"list-style-type"}, utility.OrderList}})
	s.registerFamily([]string{"listStyleImage"}, any, familyOpts{}, []sideEntry{{"list-image", []string{"list-style-image"}, utility.OrderListImage}})
	s.registerFamily([]string{"columns"}, any, familyOpts{}, []sideEntry{{"columns", []string{"columns"}, utility.OrderColumns}})

	s.registerFamily([]string{"gridAutoColumns"}, any, familyOpts{}, []sideEntry{{"auto-cols", []string{"grid-auto-columns"}, utility.OrderGridAutoCols}})
	s.registerFamily([]string{"gridAutoRows"}, any, familyOpts{}, []sideEntry{{"auto-rows", []string{"grid-auto-rows"}, utility.OrderGridAutoRows}})
}
