// Package utility holds the keyed table of utility definitions: what
// theme namespaces a value resolves against, how to validate an
// arbitrary value, and how to turn a resolved value into a RuleList.
package utility

import (
	"fmt"
	"sort"

	"github.com/dmoose/tailkit/pkg/candidate"
	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/theme"
)

// OrderingKey is the closed enumeration from the data model; its
// declaration order below IS its total order (spec.md §3).
type OrderingKey int

const (
	OrderNone OrderingKey = iota
	OrderMargin
	OrderMarginAxis
	OrderMarginSide
	OrderPadding
	OrderPaddingAxis
	OrderPaddingSide
	OrderInset
	OrderSize
	OrderBorderWidth
	OrderBorderColor
	OrderRounded
	OrderSpaceAxis
	OrderBorderSpacing
	OrderFromColor
	OrderFromPosition
	OrderViaColor
	OrderViaPosition
	OrderToColor
	OrderDisplay
	OrderFlex
	OrderTransform
	OrderBackgroundColor
	OrderTextColor
	OrderBorderWidthAxis
	OrderBorderWidthSide
	OrderBorderColorAxis
	OrderBorderColorSide
	OrderInsetAxis
	OrderInsetSide
	OrderSizeAxis
	OrderRoundedSide
	OrderRoundedCorner
	OrderBorderSpacingAxis
	OrderAnimate
	OrderToPosition
	OrderDivideAxis
	OrderDivideColor
	OrderFill
	OrderStroke
	OrderBgPosition
	OrderBgSize
	OrderBgImage
	OrderFontSize
	OrderFontFamily
	OrderFontWeight
	OrderTextIndent
	OrderPlaceholder
	OrderDecoration
	OrderDecorationThickness
	OrderShadow
	OrderShadowColor
	OrderFilter
	OrderBackdropFilter
	OrderCursor
	OrderList
	OrderListImage
	OrderColumns
	OrderGridAutoCols
	OrderGridAutoRows
	OrderGap
	OrderGapAxis
	OrderAccent
	OrderCaret
	OrderOutlineWidth
	OrderOutlineColor
	OrderRingColor
	OrderRingOffsetWidth
	OrderRingOffsetColor
	OrderOpacity
	OrderScrollMargin
	OrderScrollMarginAxis
	OrderScrollMarginSide
	OrderScrollPadding
	OrderScrollPaddingAxis
	OrderScrollPaddingSide
	OrderLeading
)

// Group tags a utility as contributing to a hoisted shared-declaration
// block (spec.md §4.4's "group" mechanism), e.g. all transform-family
// utilities share a single composite `transform` declaration.
type Group string

const (
	GroupNone            Group = ""
	GroupTransform       Group = "transform"
	GroupFilter          Group = "filter"
	GroupBackdropFilter  Group = "backdrop-filter"
)

// GroupDecls returns the fixed declaration list a group hoists into
// its trailing comma-joined rule.
func GroupDecls(g Group) []css.Decl {
	switch g {
	case GroupTransform:
		return []css.Decl{
			{Name: "transform", Value: "translate(var(--tw-translate-x), var(--tw-translate-y)) translateZ(var(--tw-translate-z, 0)) rotate(var(--tw-rotate-x, 0) var(--tw-rotate-y, 0) var(--tw-rotate-z, 0)) skewX(var(--tw-skew-x)) skewY(var(--tw-skew-y)) scaleX(var(--tw-scale-x)) scaleY(var(--tw-scale-y)) scaleZ(var(--tw-scale-z, 1))"},
		}
	case GroupFilter:
		return []css.Decl{
			{Name: "filter", Value: "var(--tw-blur) var(--tw-brightness) var(--tw-contrast) var(--tw-grayscale) var(--tw-invert) var(--tw-saturate) var(--tw-sepia) var(--tw-drop-shadow)"},
		}
	case GroupBackdropFilter:
		return []css.Decl{
			{Name: "backdrop-filter", Value: "var(--tw-backdrop-blur) var(--tw-backdrop-brightness) var(--tw-backdrop-contrast) var(--tw-backdrop-grayscale) var(--tw-backdrop-invert) var(--tw-backdrop-saturate) var(--tw-backdrop-sepia) var(--tw-backdrop-opacity)"},
		}
	default:
		return nil
	}
}

// Validator rejects or accepts a raw arbitrary-value string. Modeled
// on the teacher's type-dispatch validators in pkg/tokens/validator.go,
// generalized from dictionary-token validation to utility-value
// validation.
type Validator func(raw string) error

// Handler produces the declarations for a resolved value. meta carries
// context a handler needs beyond the bare value (currently just the
// raw token, for diagnostics).
type Handler func(meta Meta, value string) css.RuleList

// Meta is passed to a Handler and AdditionalCSS function.
type Meta struct {
	RawToken string
	Negative bool
}

// ValueRepr describes how a Named value resolves against the theme.
type ValueRepr struct {
	ThemeKeys []string
	Validator Validator // only consulted for Arbitrary values
}

// Constraint optionally bounds a resolved numeric/dimension value,
// ported from the teacher's $min/$max token constraints.
type Constraint struct {
	Min, Max *float64
}

func (c *Constraint) check(v float64) error {
	if c == nil {
		return nil
	}
	if c.Min != nil && v < *c.Min {
		return fmt.Errorf("value %v is less than minimum %v", v, *c.Min)
	}
	if c.Max != nil && v > *c.Max {
		return fmt.Errorf("value %v is greater than maximum %v", v, *c.Max)
	}
	return nil
}

// Definition is one entry in the registry for a given key. Multiple
// Definitions may share a Key (invariant i): the resolver tries them
// in registration order and takes the first whose value resolves.
type Definition struct {
	Key        string
	Handler    Handler
	ValueRepr  ValueRepr
	ModifierRepr *ValueRepr

	SupportsNegative bool
	SupportsFraction bool

	WrapperSelector string // if set, "&" in the selector is replaced with the escaped class selector

	AdditionalCSS func(value string) css.RuleList

	OrderingKey OrderingKey
	Group       Group

	OpacityModifierEnabled bool

	Constraints *Constraint
}

// Registry is the frozen, keyed table of utility Definitions.
type Registry struct {
	byKey map[string][]*Definition
	order []string // registration order of distinct keys, for Matcher construction
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string][]*Definition)}
}

// Register adds def under def.Key, appended after any existing
// definitions sharing that key (first-registered-wins at resolve time).
func (r *Registry) Register(def *Definition) {
	if _, ok := r.byKey[def.Key]; !ok {
		r.order = append(r.order, def.Key)
	}
	r.byKey[def.Key] = append(r.byKey[def.Key], def)
}

// Definitions returns the candidate definitions for key, in
// registration order.
func (r *Registry) Definitions(key string) []*Definition {
	return r.byKey[key]
}

// Keys returns every distinct registered key, sorted, for diagnostics
// and the generated catalog.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Matcher builds a candidate.Matcher for the longest-registered-key
// rule over every key this registry knows.
func (r *Registry) Matcher() candidate.Matcher {
	return candidate.LongestMatch(r.order)
}

// ResolveValue resolves a MaybeArbitrary against repr, implementing
// §4.2.2a: Arbitrary goes through the validator (if any); Named tries
// each theme key in order, falling back to a literal fraction when
// supportsFraction holds and the raw text contains '/'.
func ResolveValue(repr ValueRepr, th *theme.Theme, mv *candidate.MaybeArbitrary, supportsFraction bool) (string, bool, error) {
	if mv == nil {
		return "", false, nil
	}
	if mv.Arbitrary {
		decoded := decodeArbitrary(mv.Value)
		if repr.Validator != nil {
			if err := repr.Validator(decoded); err != nil {
				return "", false, err
			}
		}
		return decoded, true, nil
	}

	for _, ns := range repr.ThemeKeys {
		if v, ok := th.Lookup(ns, mv.Value); ok {
			s, err := plainString(v)
			if err != nil {
				return "", false, err
			}
			return s, true, nil
		}
	}

	if supportsFraction {
		if lit, ok := theme.AsFraction(mv.Value); ok {
			return lit, true, nil
		}
	}

	switch mv.Value {
	case "full", "auto", "px", "screen":
		return mv.Value, true, nil
	}

	return "", false, nil
}

func plainString(v theme.Value) (string, error) {
	switch t := v.(type) {
	case theme.Plain:
		return string(t), nil
	default:
		return "", fmt.Errorf("theme value is not a plain string: %T", v)
	}
}

// decodeArbitrary replaces `_` with a space, except where escaped
// with a preceding `\` (spec.md §4.2.2a).
func decodeArbitrary(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '_' {
			out = append(out, '_')
			i++
			continue
		}
		if s[i] == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
