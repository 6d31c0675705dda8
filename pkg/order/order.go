// Package order totally orders a set of resolved rules and hoists
// shared-group declarations into trailing comma-joined rules
// (spec.md §4.4).
package order

import (
	"sort"

	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/resolver"
	"github.com/dmoose/tailkit/pkg/utility"
)

// VariantWeights assigns each variant key a bit, in the stable
// registration order the variant registry hands out — spec.md §5's
// preferred determinism strategy over a recomputed insertion order.
type VariantWeights struct {
	bit map[string]uint64
}

// NewVariantWeights builds a weight table from a registry's key order.
func NewVariantWeights(registrationOrder []string) *VariantWeights {
	w := &VariantWeights{bit: make(map[string]uint64, len(registrationOrder))}
	for i, key := range registrationOrder {
		if i >= 64 {
			break // a bitset this wide is never exhausted by a real registry
		}
		w.bit[key] = 1 << uint(i)
	}
	return w
}

// Weight computes the bitwise-OR of keys' bits.
func (w *VariantWeights) Weight(keys []string) uint64 {
	var weight uint64
	for _, k := range keys {
		weight |= w.bit[k]
	}
	return weight
}

// Sort orders rules per §4.4 steps 1-3: bucket by ordering key (no key
// sorts after all named buckets, alphabetical by raw token), then by
// variant weight ascending, then raw-token lexicographic.
func Sort(rules []*resolver.ResolvedRule, weights *VariantWeights) []*resolver.ResolvedRule {
	out := make([]*resolver.ResolvedRule, len(rules))
	copy(out, rules)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		ak, bk := bucketRank(a.OrderingKey), bucketRank(b.OrderingKey)
		if ak != bk {
			return ak < bk
		}

		aw, bw := weights.Weight(a.Variants), weights.Weight(b.Variants)
		if aw != bw {
			return aw < bw
		}

		return a.RawToken < b.RawToken
	})
	return out
}

// bucketRank maps OrderNone to after every named key (spec.md §4.4.1).
func bucketRank(k utility.OrderingKey) int {
	if k == utility.OrderNone {
		return int(^uint(0) >> 1) // max int: sorts last
	}
	return int(k)
}

// Group hoists rules sharing a utility.Group into a single trailing
// comma-joined rule per group (spec.md §4.4's group mechanism), and
// returns the full emission sequence: individual rules for every
// token (in their sorted order), followed by one synthesized rule per
// group encountered, in first-seen order.
func Group(ordered []*resolver.ResolvedRule) css.RuleList {
	var out css.RuleList
	groupSelectors := make(map[utility.Group][]string)
	var groupOrder []utility.Group
	seenGroup := make(map[utility.Group]bool)

	for _, rr := range ordered {
		out = append(out, rr.Rule)
		if rr.Group == utility.GroupNone {
			continue
		}
		groupSelectors[rr.Group] = append(groupSelectors[rr.Group], rr.Rule.Selector)
		if !seenGroup[rr.Group] {
			seenGroup[rr.Group] = true
			groupOrder = append(groupOrder, rr.Group)
		}
	}

	for _, g := range groupOrder {
		selectors := groupSelectors[g]
		joined := selectors[0]
		for _, s := range selectors[1:] {
			joined += ", " + s
		}
		decls := utility.GroupDecls(g)
		nodes := make([]css.Node, len(decls))
		for i, d := range decls {
			nodes[i] = css.DeclNode(d.Name, d.Value)
		}
		out = append(out, &css.Rule{Selector: joined, Nodes: nodes})
	}

	return out
}

// DedupeAdditional collects every distinct AdditionalRules entry
// across the resolved set (keyed by selector), in first-seen order,
// so an `@property` block shared by many tokens is emitted once.
func DedupeAdditional(rules []*resolver.ResolvedRule) css.RuleList {
	var out css.RuleList
	seen := make(map[string]bool)
	for _, rr := range rules {
		for _, ar := range rr.AdditionalRules {
			if seen[ar.Selector] {
				continue
			}
			seen[ar.Selector] = true
			out = append(out, ar)
		}
	}
	return out
}
