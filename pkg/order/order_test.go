package order

import (
	"testing"

	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/resolver"
	"github.com/dmoose/tailkit/pkg/utility"
)

func rule(raw string, orderingKey utility.OrderingKey, group utility.Group, variants ...string) *resolver.ResolvedRule {
	return &resolver.ResolvedRule{
		RawToken:    raw,
		Rule:        css.NewRule("." + raw),
		OrderingKey: orderingKey,
		Group:       group,
		Variants:    variants,
	}
}

func TestSort_BucketsThenWeightThenLex(t *testing.T) {
	t.Parallel()
	weights := NewVariantWeights([]string{"hover", "md"})

	rules := []*resolver.ResolvedRule{
		rule("z-no-key", utility.OrderNone, utility.GroupNone),
		rule("b-padding", utility.OrderPadding, utility.GroupNone),
		rule("a-margin-hover", utility.OrderMargin, utility.GroupNone, "hover"),
		rule("a-margin", utility.OrderMargin, utility.GroupNone),
	}

	sorted := Sort(rules, weights)
	got := make([]string, len(sorted))
	for i, r := range sorted {
		got[i] = r.RawToken
	}

	want := []string{"a-margin", "a-margin-hover", "b-padding", "z-no-key"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort() = %v, want %v", got, want)
		}
	}
}

func TestSort_Totality(t *testing.T) {
	t.Parallel()
	weights := NewVariantWeights([]string{"hover"})
	rules := []*resolver.ResolvedRule{
		rule("a", utility.OrderMargin, utility.GroupNone),
		rule("b", utility.OrderMargin, utility.GroupNone),
	}
	sorted := Sort(rules, weights)
	if sorted[0].RawToken != "a" || sorted[1].RawToken != "b" {
		t.Errorf("expected stable lexicographic tie-break, got %v, %v", sorted[0].RawToken, sorted[1].RawToken)
	}
}

func TestGroup_Hoisting(t *testing.T) {
	t.Parallel()
	rules := []*resolver.ResolvedRule{
		rule("rotate-x-45", utility.OrderTransform, utility.GroupTransform),
		rule("skew-y-12", utility.OrderTransform, utility.GroupTransform),
	}

	rl := Group(rules)
	if len(rl) != 3 {
		t.Fatalf("Group() produced %d rules, want 3 (2 individual + 1 hoisted)", len(rl))
	}
	last := rl[len(rl)-1]
	want := ".rotate-x-45, .skew-y-12"
	if last.Selector != want {
		t.Errorf("hoisted selector = %q, want %q", last.Selector, want)
	}
}

func TestGroup_FilterAndBackdropFilterHoistSeparately(t *testing.T) {
	t.Parallel()
	rules := []*resolver.ResolvedRule{
		rule("blur-sm", utility.OrderFilter, utility.GroupFilter),
		rule("contrast-125", utility.OrderFilter, utility.GroupFilter),
		rule("backdrop-blur-sm", utility.OrderBackdropFilter, utility.GroupBackdropFilter),
	}

	rl := Group(rules)
	if len(rl) != 5 {
		t.Fatalf("Group() produced %d rules, want 5 (3 individual + 2 hoisted, one per group)", len(rl))
	}

	var gotFilter, gotBackdrop bool
	for _, r := range rl[3:] {
		switch r.Selector {
		case ".blur-sm, .contrast-125":
			gotFilter = true
		case ".backdrop-blur-sm":
			gotBackdrop = true
		}
	}
	if !gotFilter {
		t.Errorf("expected a hoisted filter rule for .blur-sm, .contrast-125, got %v", rl[3:])
	}
	if !gotBackdrop {
		t.Errorf("expected a hoisted backdrop-filter rule for .backdrop-blur-sm, got %v", rl[3:])
	}
}

func TestGroup_RemovingOneTokenRemovesOneIndividualRule(t *testing.T) {
	t.Parallel()
	full := []*resolver.ResolvedRule{
		rule("rotate-x-45", utility.OrderTransform, utility.GroupTransform),
		rule("skew-y-12", utility.OrderTransform, utility.GroupTransform),
	}
	reduced := full[:1]

	fullRL := Group(full)
	reducedRL := Group(reduced)

	if len(fullRL)-len(reducedRL) != 1 {
		t.Errorf("removing one token changed rule count by %d, want 1", len(fullRL)-len(reducedRL))
	}
}

func TestDedupeAdditional(t *testing.T) {
	t.Parallel()
	propRule := css.NewRule("@property --tw-translate-x")
	r1 := rule("translate-x-1", utility.OrderNone, utility.GroupNone)
	r1.AdditionalRules = css.RuleList{propRule}
	r2 := rule("translate-x-2", utility.OrderNone, utility.GroupNone)
	r2.AdditionalRules = css.RuleList{propRule}

	out := DedupeAdditional([]*resolver.ResolvedRule{r1, r2})
	if len(out) != 1 {
		t.Errorf("DedupeAdditional() = %d rules, want 1", len(out))
	}
}
