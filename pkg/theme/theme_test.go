package theme

import "testing"

func TestBuild_FlattensColors(t *testing.T) {
	t.Parallel()
	raw := map[string]any{
		"colors": map[string]any{
			"blue": map[string]any{
				"500": "#3b82f6",
				"600": "#2563eb",
			},
			"red": map[string]any{
				"DEFAULT": "#ef4444",
				"500":     "#ef4444",
			},
		},
		"spacing": map[string]any{
			"4": "1rem",
		},
	}

	th, err := Build(raw, map[string]bool{"colors": true})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	v, ok := th.Lookup("colors", "blue-500")
	if !ok || v != Plain("#3b82f6") {
		t.Errorf("colors.blue-500 = %v, %v; want #3b82f6, true", v, ok)
	}

	v, ok = th.Lookup("colors", "red")
	if !ok || v != Plain("#ef4444") {
		t.Errorf("colors.red (DEFAULT collapse) = %v, %v; want #ef4444, true", v, ok)
	}

	v, ok = th.Lookup("spacing", "4")
	if !ok || v != Plain("1rem") {
		t.Errorf("spacing.4 = %v, %v; want 1rem, true", v, ok)
	}
}

func TestMerge_LastWriterWins(t *testing.T) {
	t.Parallel()
	base := New()
	base.Set("colors", Table{"blue-500": Plain("#3b82f6"), "red-500": Plain("#ef4444")})

	override := New()
	override.Set("colors", Table{"blue-500": Plain("#1d4ed8")})

	merged := Merge(base, override)

	v, _ := merged.Lookup("colors", "blue-500")
	if v != Plain("#1d4ed8") {
		t.Errorf("merged colors.blue-500 = %v, want overridden #1d4ed8", v)
	}
	v, _ = merged.Lookup("colors", "red-500")
	if v != Plain("#ef4444") {
		t.Errorf("merged colors.red-500 = %v, want untouched #ef4444", v)
	}
}

func TestBuild_ExpandsScale(t *testing.T) {
	t.Parallel()
	raw := map[string]any{
		"size": map[string]any{
			"field": map[string]any{
				"$value": "2.5rem",
				"$scale": map[string]any{
					"sm": 0.8,
					"md": 1.0,
					"lg": 1.2,
				},
			},
		},
	}

	th, err := Build(raw, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	v, ok := th.Lookup("size", "field")
	if !ok || v != Plain("2.5rem") {
		t.Errorf("size.field = %v, %v; want 2.5rem, true", v, ok)
	}
	v, ok = th.Lookup("size", "field-md")
	if !ok || v != Plain("2.5rem") {
		t.Errorf("size.field-md (factor 1.0) = %v, %v; want 2.5rem, true", v, ok)
	}
	v, ok = th.Lookup("size", "field-lg")
	if !ok || v != Plain("calc(2.5rem * 1.2)") {
		t.Errorf("size.field-lg = %v, %v; want calc(2.5rem * 1.2), true", v, ok)
	}
}

func TestAsFraction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"3/4", true},
		{"full", false},
		{"/2", false},
		{"1/", false},
	}
	for _, tt := range tests {
		if _, ok := AsFraction(tt.input); ok != tt.want {
			t.Errorf("AsFraction(%q) = %v, want %v", tt.input, ok, tt.want)
		}
	}
}
