// Package resolver turns a parsed candidate into a resolved CSS rule:
// theme value lookup, validator checks, handler invocation, variant
// application, and ordering metadata — with a negative-caching layer
// keyed by raw token (spec.md §3.iv). The cache is a bounded ristretto
// cache: a write may be dropped or an entry evicted, and such a token
// is resolved again on its next lookup.
package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto"

	"github.com/dmoose/tailkit/pkg/candidate"
	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/theme"
	"github.com/dmoose/tailkit/pkg/tokens"
	"github.com/dmoose/tailkit/pkg/utility"
	"github.com/dmoose/tailkit/pkg/variant"
)

// numericValue extracts the bare numeric magnitude from a resolved
// value string, whether it is a dimension ("1rem") or a bare number
// ("1.5"), for constraint checking.
func numericValue(value string) (float64, bool) {
	if dim, err := tokens.ParseDimension(value); err == nil {
		return dim.Value, true
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, true
	}
	return 0, false
}

// ResolvedRule is the GenerateResult from the data model.
type ResolvedRule struct {
	RawToken    string
	Rule        *css.Rule
	Variants    []string
	Group       utility.Group
	OrderingKey utility.OrderingKey

	// AdditionalRules holds sibling top-level rules a definition's
	// AdditionalCSS contributed (e.g. an `@property` declaration);
	// the generator driver dedupes these across the whole token set
	// before emission.
	AdditionalRules css.RuleList
}

// entry is what the cache stores: either a resolved rule, or a
// rejection reason (negative cache).
type entry struct {
	rule   *ResolvedRule
	reason string
}

// Resolver ties a frozen theme and registries to a shared cache.
type Resolver struct {
	Theme     *theme.Theme
	Utilities *utility.Registry
	Variants  *variant.Registry

	cache *ristretto.Cache
}

// New builds a Resolver with a ristretto-backed cache sized for
// roughly maxTokens distinct raw tokens over the process lifetime.
func New(th *theme.Theme, utilities *utility.Registry, variants *variant.Registry, maxTokens int64) (*Resolver, error) {
	if maxTokens <= 0 {
		maxTokens = 100_000
	}
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxTokens * 10,
		MaxCost:     maxTokens,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("resolver: building cache: %w", err)
	}
	return &Resolver{Theme: th, Utilities: utilities, Variants: variants, cache: cache}, nil
}

// Resolve resolves raw, consulting (and populating) the cache. A
// non-empty reason with a nil rule means the token was rejected
// (TokenReject) and is never a hard failure.
func (r *Resolver) Resolve(raw string) (rule *ResolvedRule, reason string) {
	if v, ok := r.cache.Get(raw); ok {
		e := v.(*entry)
		return e.rule, e.reason
	}

	rule, reason = r.resolveUncached(raw)
	r.cache.Set(raw, &entry{rule: rule, reason: reason}, 1)
	return rule, reason
}

func (r *Resolver) resolveUncached(raw string) (*ResolvedRule, string) {
	c, err := candidate.Parse(raw, r.Utilities.Matcher(), r.Variants.Matcher())
	if err != nil {
		return nil, err.Error()
	}

	defs := r.Utilities.Definitions(c.Key)
	if len(defs) == 0 {
		return nil, fmt.Sprintf("unknown utility key %q", c.Key)
	}

	var lastReason string
	for _, def := range defs {
		rule, additional, ok, reason := r.tryDefinition(def, c)
		if !ok {
			if reason != "" {
				lastReason = reason
			}
			continue
		}

		wrapped := wrapBase(raw, def, rule)
		final, err := r.applyVariants(c, wrapped)
		if err != nil {
			return nil, err.Error()
		}

		return &ResolvedRule{
			RawToken:        raw,
			Rule:            final,
			Variants:        variantKeys(c),
			Group:           def.Group,
			OrderingKey:     def.OrderingKey,
			AdditionalRules: additional,
		}, ""
	}

	if lastReason == "" {
		lastReason = fmt.Sprintf("no definition for key %q matched value", c.Key)
	}
	return nil, lastReason
}

// tryDefinition attempts one utility definition against the
// candidate's value/modifier/negative/important flags (spec.md §4.2
// step 2).
func (r *Resolver) tryDefinition(def *utility.Definition, c *candidate.Candidate) (rule *css.Rule, additional css.RuleList, ok bool, reason string) {
	value, hasValue, err := effectiveValue(def.ValueRepr, r.Theme, c.Value, def.SupportsFraction)
	if err != nil {
		return nil, nil, false, err.Error()
	}
	if c.Value != nil && !hasValue {
		return nil, nil, false, fmt.Sprintf("value %q did not resolve for key %q", c.Value.Value, def.Key)
	}

	if c.Negative {
		if !def.SupportsNegative {
			return nil, nil, false, fmt.Sprintf("key %q does not support negative values", def.Key)
		}
		if value != "" {
			value = "-" + value
		}
	}

	if def.Constraints != nil {
		if num, ok := numericValue(value); ok {
			if cerr := checkConstraint(def.Constraints, num); cerr != nil {
				return nil, nil, false, cerr.Error()
			}
		}
	}

	modifier := ""
	if def.ModifierRepr != nil && c.Modifier != nil {
		m, mok, merr := effectiveValue(*def.ModifierRepr, r.Theme, c.Modifier, false)
		if merr != nil {
			return nil, nil, false, merr.Error()
		}
		if def.OpacityModifierEnabled && looksNumeric(c.Modifier.Value) {
			modifier = c.Modifier.Value
		} else if mok {
			modifier = m
		} else {
			return nil, nil, false, fmt.Sprintf("modifier %q did not resolve for key %q", c.Modifier.Value, def.Key)
		}
	}

	meta := utility.Meta{RawToken: c.Raw, Negative: c.Negative}
	handlerOutput := def.Handler(meta, value)
	if handlerOutput == nil {
		// handler explicitly produced nothing: treat as rejection rather
		// than emitting an empty rule.
		return nil, nil, false, fmt.Sprintf("handler for key %q produced no declarations", def.Key)
	}
	nodes := flattenHandlerOutput(handlerOutput)
	if modifier != "" {
		nodes = applyModifierToColorDecls(nodes, modifier)
	}

	rule = &css.Rule{Nodes: nodes}
	if def.AdditionalCSS != nil {
		additional = def.AdditionalCSS(value)
	}
	return rule, additional, true, ""
}

// effectiveValue implements §4.2.2a for both the value and modifier
// positions: Arbitrary decodes+validates; Named tries each theme key,
// then a fraction literal, then the well-known keyword literals;
// absence is allowed and resolved against the "DEFAULT" theme key.
func effectiveValue(repr utility.ValueRepr, th *theme.Theme, mv *candidate.MaybeArbitrary, supportsFraction bool) (string, bool, error) {
	if mv == nil {
		def := candidate.Named("DEFAULT")
		v, ok, err := utility.ResolveValue(repr, th, &def, supportsFraction)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}
		return "", true, nil
	}
	return utility.ResolveValue(repr, th, mv, supportsFraction)
}

func checkConstraint(c *utility.Constraint, v float64) error {
	if c.Min != nil && v < *c.Min {
		return fmt.Errorf("value %v below minimum %v", v, *c.Min)
	}
	if c.Max != nil && v > *c.Max {
		return fmt.Errorf("value %v above maximum %v", v, *c.Max)
	}
	return nil
}

func looksNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// flattenHandlerOutput collapses a handler's RuleList into the Nodes
// of the wrapping rule: a Rule with an empty selector contributes its
// Nodes directly (the common "just declarations" case); a Rule with a
// non-empty selector is nested as-is (a handler producing genuinely
// structural output, e.g. a paired pseudo-element rule).
func flattenHandlerOutput(rl css.RuleList) []css.Node {
	var nodes []css.Node
	for _, r := range rl {
		if r.Selector == "" {
			nodes = append(nodes, r.Nodes...)
		} else {
			nodes = append(nodes, css.RuleNode(r))
		}
	}
	return nodes
}

// applyModifierToColorDecls implements the opacity-modifier shortcut:
// every declaration in the handler's output is rewritten through
// `color-mix(in srgb, {value} {n}%, transparent)`, without checking
// that its value is a color.
func applyModifierToColorDecls(nodes []css.Node, pct string) []css.Node {
	out := make([]css.Node, len(nodes))
	for i, n := range nodes {
		if n.Decl == nil {
			out[i] = n
			continue
		}
		d := *n.Decl
		d.Value = fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", d.Value, pct)
		out[i] = css.Node{Decl: &d}
	}
	return out
}

func wrapBase(raw string, def *utility.Definition, rule *css.Rule) *css.Rule {
	base := "." + css.EscapeIdent(raw)
	if def.WrapperSelector != "" {
		base = strings.ReplaceAll(def.WrapperSelector, "&", base)
	}
	rule.Selector = base
	return rule
}

// applyVariants applies the candidate's variant chain right-to-left
// (§4.2 step 4 / §4.3): the rightmost variant (closest to the utility)
// wraps first, so the leftmost ends up outermost (Open Question (b)).
func (r *Resolver) applyVariants(c *candidate.Candidate, rule *css.Rule) (*css.Rule, error) {
	for i := len(c.Variants) - 1; i >= 0; i-- {
		seg := c.Variants[i]

		if seg.FullyArbitrary {
			wrapped, err := variant.ApplyArbitrary(seg.ArbitraryBody, rule)
			if err != nil {
				return nil, err
			}
			rule = wrapped
			continue
		}

		def, ok := r.Variants.Lookup(seg.Key)
		if !ok {
			return nil, fmt.Errorf("unknown variant key %q", seg.Key)
		}

		arg := ""
		switch {
		case seg.Value != nil && seg.Value.Arbitrary:
			arg = seg.Value.Value
		case seg.Value != nil:
			if v, ok, _ := utility.ResolveValue(utility.ValueRepr{ThemeKeys: def.ThemeKeys}, r.Theme, seg.Value, false); ok {
				arg = v
			} else {
				arg = seg.Value.Value
			}
		case len(def.ThemeKeys) > 0:
			// A bare variant (e.g. "md") with no "-value" suffix looks
			// up its own key directly, the way a breakpoint variant
			// resolves theme.screens[key] without any candidate value.
			own := candidate.Named(seg.Key)
			if v, ok, _ := utility.ResolveValue(utility.ValueRepr{ThemeKeys: def.ThemeKeys}, r.Theme, &own, false); ok {
				arg = v
			}
		}

		wrapped, err := variant.Apply(def, arg, rule)
		if err != nil {
			return nil, err
		}
		rule = wrapped
	}
	return rule, nil
}

func variantKeys(c *candidate.Candidate) []string {
	keys := make([]string, 0, len(c.Variants))
	for _, v := range c.Variants {
		if v.FullyArbitrary {
			keys = append(keys, v.ArbitraryBody)
		} else {
			keys = append(keys, v.Key)
		}
	}
	return keys
}
