package design

import (
	"strings"
	"testing"

	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/order"
	"github.com/dmoose/tailkit/pkg/resolver"
	"github.com/dmoose/tailkit/pkg/theme"
)

// buildFullSystem assembles a System with the complete baseline catalog
// (RegisterCoreUtilities plus the four expanded-catalog registrations)
// against a theme populated just enough to exercise it.
func buildFullSystem(t *testing.T) *System {
	t.Helper()

	th := theme.New()
	th.Set("spacing", theme.Table{"4": theme.Plain("1rem"), "2": theme.Plain("0.5rem")})
	th.Set("colors", theme.Table{"red-500": theme.Plain("#ef4444"), "blue-500": theme.Plain("#3b82f6")})
	th.Set("borderWidth", theme.Table{"DEFAULT": theme.Plain("1px"), "2": theme.Plain("2px")})
	th.Set("borderRadius", theme.Table{"DEFAULT": theme.Plain("0.25rem")})
	th.Set("blur", theme.Table{"sm": theme.Plain("4px")})
	th.Set("skew", theme.Table{"12": theme.Plain("12deg")})
	th.Set("animation", theme.Table{"spin": theme.Plain("spin 1s linear infinite")})
	th.Set("keyframes", theme.Table{
		"spin": theme.Keyframes{Frames: map[string]map[string]string{
			"from": {"transform": "rotate(0deg)"},
			"to":   {"transform": "rotate(360deg)"},
		}},
	})

	s := New(Config{Theme: th})
	s.RegisterCoreUtilities()
	s.RegisterTransformUtilities()
	s.RegisterColorUtilities()
	s.RegisterFilterUtilities()
	s.RegisterBoxUtilities()
	s.RegisterCoreVariants()
	s.RegisterResponsiveVariants()

	if err := s.Freeze(1000); err != nil {
		t.Fatalf("Freeze() error: %v", err)
	}
	return s
}

func resolveOrFail(t *testing.T, s *System, raw string) *resolver.ResolvedRule {
	t.Helper()
	rr, reason := s.Resolve(raw)
	if rr == nil {
		t.Fatalf("Resolve(%q) rejected: %s", raw, reason)
	}
	return rr
}

func TestTransformTriad_HoistsIntoOneDeclaration(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rx := resolveOrFail(t, s, "translate-x-4")
	sy := resolveOrFail(t, s, "skew-y-12")

	if rx.Group == "" || rx.Group != sy.Group {
		t.Fatalf("expected translate-x-4 and skew-y-12 to share a Group, got %q and %q", rx.Group, sy.Group)
	}

	rl := order.Group(order.Sort([]*resolver.ResolvedRule{rx, sy}, order.NewVariantWeights(nil)))
	if len(rl) != 3 {
		t.Fatalf("Group() produced %d rules, want 3 (2 individual + 1 hoisted transform)", len(rl))
	}
	hoisted := rl[len(rl)-1]
	if hoisted.Selector != ".skew-y-12, .translate-x-4" {
		t.Errorf("hoisted selector = %q, want %q", hoisted.Selector, ".skew-y-12, .translate-x-4")
	}
	if len(hoisted.Decls()) != 1 || hoisted.Decls()[0].Name != "transform" {
		t.Errorf("hoisted rule decls = %v, want single transform decl", hoisted.Decls())
	}
}

func TestBareTranslate_WritesBothAxes(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rr := resolveOrFail(t, s, "translate-4")
	decls := rr.Rule.Decls()
	if len(decls) != 2 || decls[0].Name != "--tw-translate-x" || decls[1].Name != "--tw-translate-y" {
		t.Errorf("translate-4 decls = %v, want --tw-translate-x and --tw-translate-y", decls)
	}
}

func TestFilterFamily_HoistsSeparatelyFromBackdrop(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	blur := resolveOrFail(t, s, "blur-sm")
	backdropBlur := resolveOrFail(t, s, "backdrop-blur-sm")

	if blur.Group != "filter" {
		t.Errorf("blur-sm Group = %q, want filter", blur.Group)
	}
	if backdropBlur.Group != "backdrop-filter" {
		t.Errorf("backdrop-blur-sm Group = %q, want backdrop-filter", backdropBlur.Group)
	}

	rl := order.Group(order.Sort([]*resolver.ResolvedRule{blur, backdropBlur}, order.NewVariantWeights(nil)))
	if len(rl) != 4 {
		t.Fatalf("Group() produced %d rules, want 4 (2 individual + 2 hoisted, one per group)", len(rl))
	}
}

func TestBorderWidthFamily_SharesBorderStyleProperty(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rr := resolveOrFail(t, s, "border-t-2")
	decls := rr.Rule.Decls()
	var gotStyle, gotWidth bool
	for _, d := range decls {
		if d.Name == "border-top-style" && d.Value == "var(--tw-border-style)" {
			gotStyle = true
		}
		if d.Name == "border-top-width" && d.Value == "2px" {
			gotWidth = true
		}
		if d.Name == "border-bottom-style" || d.Name == "border-bottom-width" {
			t.Errorf("border-t-2 touched border-bottom via %s; single-side keys must only touch their own side", d.Name)
		}
	}
	if !gotStyle || !gotWidth {
		t.Errorf("border-t-2 decls = %v, want border-top-style and border-top-width", decls)
	}

	if len(rr.AdditionalRules) != 1 || rr.AdditionalRules[0].Selector != "@property --tw-border-style" {
		t.Errorf("border-t-2 AdditionalRules = %v, want one @property --tw-border-style block", rr.AdditionalRules)
	}
}

func TestGradientStops_ColorAndPositionAreIndependentKeys(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	color := resolveOrFail(t, s, "from-red-500")
	if got := color.Rule.Decls(); len(got) != 1 || got[0].Name != "--tw-gradient-from" || got[0].Value != "#ef4444" {
		t.Errorf("from-red-500 decls = %v, want single --tw-gradient-from: #ef4444", got)
	}

	position := resolveOrFail(t, s, "from-[10%]")
	if got := position.Rule.Decls(); len(got) != 1 || got[0].Name != "--tw-gradient-from-position" {
		t.Errorf("from-[10%%] decls = %v, want single --tw-gradient-from-position", got)
	}
}

func TestSpaceX_WrapsChildCombinatorSelector(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rr := resolveOrFail(t, s, "space-x-4")
	want := ".space-x-4 > :not([hidden]) ~ :not([hidden])"
	if rr.Rule.Selector != want {
		t.Errorf("space-x-4 selector = %q, want %q", rr.Rule.Selector, want)
	}
	decls := rr.Rule.Decls()
	if len(decls) != 3 || decls[0].Name != "--tw-space-x-reverse" {
		t.Errorf("space-x-4 decls = %v, want reversal var plus both margins", decls)
	}
}

func TestAnimate_EmitsMatchingKeyframesBlock(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rr := resolveOrFail(t, s, "animate-spin")
	decls := rr.Rule.Decls()
	if len(decls) != 1 || decls[0].Name != "animation" || decls[0].Value != "spin 1s linear infinite" {
		t.Errorf("animate-spin decls = %v, want single animation decl", decls)
	}

	if len(rr.AdditionalRules) != 1 {
		t.Fatalf("animate-spin AdditionalRules = %d rules, want 1 @keyframes block", len(rr.AdditionalRules))
	}
	kf := rr.AdditionalRules[0]
	if kf.Selector != "@keyframes spin" {
		t.Errorf("keyframes selector = %q, want @keyframes spin", kf.Selector)
	}
	rendered := css.Render(css.RuleList{kf}, false)
	if !strings.Contains(rendered, "rotate(0deg)") || !strings.Contains(rendered, "rotate(360deg)") {
		t.Errorf("rendered keyframes = %q, missing both frame bodies", rendered)
	}
}

func TestBoxFamilies_RoundedCornerAndScrollMargin(t *testing.T) {
	t.Parallel()
	s := buildFullSystem(t)

	rounded := resolveOrFail(t, s, "rounded-tl")
	if decls := rounded.Rule.Decls(); len(decls) != 1 || decls[0].Name != "border-top-left-radius" {
		t.Errorf("rounded-tl decls = %v, want single border-top-left-radius", decls)
	}

	scrollMt := resolveOrFail(t, s, "scroll-mt-4")
	if decls := scrollMt.Rule.Decls(); len(decls) != 1 || decls[0].Name != "scroll-margin-top" || decls[0].Value != "1rem" {
		t.Errorf("scroll-mt-4 decls = %v, want single scroll-margin-top: 1rem", decls)
	}

	negMt := resolveOrFail(t, s, "-scroll-mt-4")
	if decls := negMt.Rule.Decls(); len(decls) != 1 || decls[0].Value != "-1rem" {
		t.Errorf("-scroll-mt-4 decls = %v, want -1rem", decls)
	}
}
