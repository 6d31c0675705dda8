// Package variant holds the keyed table of variant definitions and
// the selector/at-rule wrapping logic that composes them onto a
// resolved utility rule.
package variant

import (
	"fmt"
	"strings"

	"github.com/dmoose/tailkit/pkg/candidate"
	"github.com/dmoose/tailkit/pkg/css"
)

// Kind is the variant taxonomy from the data model.
type Kind int

const (
	Selector Kind = iota
	AtRule
	Composable
	Functional
)

// Definition is one registered variant.
type Definition struct {
	Key  string
	Kind Kind

	// Selector/Composable: template with "&" standing for the current
	// selector, e.g. "&:hover", ".group:hover &".
	SelectorTemplate string

	// AtRule: template with "{value}" standing for the resolved
	// argument, e.g. "@media (min-width: {value})".
	AtRuleTemplate string

	// ThemeKeys: namespaces a Named value/modifier resolves against
	// (e.g. "screens" for breakpoint variants).
	ThemeKeys []string

	// BuildSelector/BuildAtRule: escape hatches for Functional
	// variants whose wrapping depends on the resolved argument in a
	// way no template can express, e.g. `data-[state=open]`.
	BuildSelector func(arg string) string
	BuildAtRule   func(arg string) string
}

// Registry is the frozen, keyed table of variant Definitions.
type Registry struct {
	byKey map[string]*Definition
	order []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Definition)}
}

// Register adds def, indexed by def.Key.
func (r *Registry) Register(def *Definition) {
	if _, ok := r.byKey[def.Key]; !ok {
		r.order = append(r.order, def.Key)
	}
	r.byKey[def.Key] = def
}

// Lookup returns the definition for key, if any.
func (r *Registry) Lookup(key string) (*Definition, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// Keys returns every registered key in registration order; a fixed,
// stable order is what the ordering stage's variant-weight bitset is
// assigned from (spec.md §5: "a stable per-variant registration index
// assigned at init").
func (r *Registry) Keys() []string {
	return r.order
}

// Matcher builds a candidate.Matcher over every registered variant key.
func (r *Registry) Matcher() candidate.Matcher {
	return candidate.LongestMatch(r.order)
}

// Apply wraps rule per def, using arg as the resolved selector/at-rule
// argument (the variant's Named value resolved against ThemeKeys, or
// its raw arbitrary body for a Functional/arbitrary variant).
func Apply(def *Definition, arg string, rule *css.Rule) (*css.Rule, error) {
	switch def.Kind {
	case Selector, Composable:
		return wrapSelector(def.SelectorTemplate, rule), nil
	case AtRule:
		return wrapAtRule(renderAtRule(def.AtRuleTemplate, arg), rule), nil
	case Functional:
		if def.BuildSelector != nil {
			return wrapSelector(def.BuildSelector(arg), rule), nil
		}
		if def.BuildAtRule != nil {
			return wrapAtRule(def.BuildAtRule(arg), rule), nil
		}
		return nil, fmt.Errorf("functional variant %q has no selector or at-rule builder", def.Key)
	default:
		return nil, fmt.Errorf("unknown variant kind for %q", def.Key)
	}
}

// ApplyArbitrary wraps rule for a fully-arbitrary `[...]` variant
// segment: at-rule if body starts with '@', selector replacement if
// it contains '&'.
func ApplyArbitrary(body string, rule *css.Rule) (*css.Rule, error) {
	if strings.HasPrefix(body, "@") {
		return wrapAtRule(body, rule), nil
	}
	if strings.Contains(body, "&") {
		return wrapSelector(body, rule), nil
	}
	return nil, fmt.Errorf("arbitrary variant %q is neither an at-rule nor a selector replacement", body)
}

func wrapSelector(template string, rule *css.Rule) *css.Rule {
	sel := strings.ReplaceAll(template, "&", rule.Selector)
	return &css.Rule{Selector: sel, Nodes: rule.Nodes}
}

func wrapAtRule(prelude string, rule *css.Rule) *css.Rule {
	return css.Wrap(prelude, rule)
}

func renderAtRule(template, value string) string {
	return strings.ReplaceAll(template, "{value}", value)
}
