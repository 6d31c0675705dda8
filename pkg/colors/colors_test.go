package colors

import (
	"math"
	"testing"
)

// ============================================================================
// Color Parsing Tests
// ============================================================================

func TestParse_Hex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantFmt string
		wantErr bool
	}{
		{
			name:    "6-digit hex",
			input:   "#3b82f6",
			wantR:   59,
			wantG:   130,
			wantB:   246,
			wantFmt: FormatHex,
		},
		{
			name:    "6-digit hex uppercase",
			input:   "#3B82F6",
			wantR:   59,
			wantG:   130,
			wantB:   246,
			wantFmt: FormatHex,
		},
		{
			name:    "3-digit hex shorthand",
			input:   "#fff",
			wantR:   255,
			wantG:   255,
			wantB:   255,
			wantFmt: FormatHex,
		},
		{
			name:    "3-digit hex shorthand colors",
			input:   "#f00",
			wantR:   255,
			wantG:   0,
			wantB:   0,
			wantFmt: FormatHex,
		},
		{
			name:    "8-digit hex with alpha",
			input:   "#3b82f6ff",
			wantR:   59,
			wantG:   130,
			wantB:   246,
			wantFmt: FormatHex,
		},
		{
			name:    "black",
			input:   "#000000",
			wantR:   0,
			wantG:   0,
			wantB:   0,
			wantFmt: FormatHex,
		},
		{
			name:    "white",
			input:   "#ffffff",
			wantR:   255,
			wantG:   255,
			wantB:   255,
			wantFmt: FormatHex,
		},
		{
			name:    "invalid hex",
			input:   "#gggggg",
			wantErr: true,
		},
		{
			name:    "invalid hex length",
			input:   "#ff",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			r, g, b := c.RGB255()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("Parse(%q) = RGB(%d,%d,%d), want RGB(%d,%d,%d)",
					tt.input, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}

			if c.OriginalFormat() != tt.wantFmt {
				t.Errorf("Parse(%q) format = %q, want %q", tt.input, c.OriginalFormat(), tt.wantFmt)
			}
		})
	}
}

func TestParse_RGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{
			name:  "rgb with commas",
			input: "rgb(255, 128, 64)",
			wantR: 255,
			wantG: 128,
			wantB: 64,
		},
		{
			name:  "rgb with spaces",
			input: "rgb(255 128 64)",
			wantR: 255,
			wantG: 128,
			wantB: 64,
		},
		{
			name:  "rgba with alpha",
			input: "rgba(255, 128, 64, 0.5)",
			wantR: 255,
			wantG: 128,
			wantB: 64,
		},
		{
			name:  "rgb with percentages",
			input: "rgb(100%, 50%, 25%)",
			wantR: 255,
			wantG: 127,
			wantB: 63,
		},
		{
			name:  "rgb black",
			input: "rgb(0, 0, 0)",
			wantR: 0,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "rgb white",
			input: "rgb(255, 255, 255)",
			wantR: 255,
			wantG: 255,
			wantB: 255,
		},
		{
			name:    "invalid rgb",
			input:   "rgb(abc, def, ghi)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			r, g, b := c.RGB255()
			// Allow 1 unit tolerance for rounding
			if abs(int(r)-int(tt.wantR)) > 1 || abs(int(g)-int(tt.wantG)) > 1 || abs(int(b)-int(tt.wantB)) > 1 {
				t.Errorf("Parse(%q) = RGB(%d,%d,%d), want RGB(%d,%d,%d)",
					tt.input, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}

			if c.OriginalFormat() != FormatRGB {
				t.Errorf("Parse(%q) format = %q, want %q", tt.input, c.OriginalFormat(), FormatRGB)
			}
		})
	}
}

func TestParse_HSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{
			name:  "hsl red",
			input: "hsl(0, 100%, 50%)",
			wantR: 255,
			wantG: 0,
			wantB: 0,
		},
		{
			name:  "hsl green",
			input: "hsl(120, 100%, 50%)",
			wantR: 0,
			wantG: 255,
			wantB: 0,
		},
		{
			name:  "hsl blue",
			input: "hsl(240, 100%, 50%)",
			wantR: 0,
			wantG: 0,
			wantB: 255,
		},
		{
			name:  "hsl with deg",
			input: "hsl(180deg, 50%, 50%)",
			wantR: 64,
			wantG: 191,
			wantB: 191,
		},
		{
			name:  "hsla with alpha",
			input: "hsla(180, 50%, 50%, 0.5)",
			wantR: 64,
			wantG: 191,
			wantB: 191,
		},
		{
			name:    "invalid hsl",
			input:   "hsl(abc, 50%, 50%)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			r, g, b := c.RGB255()
			// Allow 2 units tolerance for HSL conversion rounding
			if abs(int(r)-int(tt.wantR)) > 2 || abs(int(g)-int(tt.wantG)) > 2 || abs(int(b)-int(tt.wantB)) > 2 {
				t.Errorf("Parse(%q) = RGB(%d,%d,%d), want RGB(%d,%d,%d)",
					tt.input, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}

			if c.OriginalFormat() != FormatHSL {
				t.Errorf("Parse(%q) format = %q, want %q", tt.input, c.OriginalFormat(), FormatHSL)
			}
		})
	}
}

func TestParse_OKLCH(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantL   float64
		wantC   float64
		wantH   float64
		wantErr bool
	}{
		{
			name:  "oklch with percentage lightness",
			input: "oklch(50% 0.2 180)",
			wantL: 0.50,
			wantC: 0.2,
			wantH: 180,
		},
		{
			name:  "oklch with decimal lightness",
			input: "oklch(0.5 0.2 180)",
			wantL: 0.50,
			wantC: 0.2,
			wantH: 180,
		},
		{
			name:  "oklch DaisyUI primary example",
			input: "oklch(49.12% 0.309 275.75)",
			wantL: 0.4912,
			wantC: 0.309,
			wantH: 275.75,
		},
		{
			name:  "oklch white",
			input: "oklch(100% 0 0)",
			wantL: 1.0,
			wantC: 0,
			wantH: -1, // Hue is undefined for achromatic colors, use -1 to skip check
		},
		{
			name:  "oklch black",
			input: "oklch(0% 0 0)",
			wantL: 0,
			wantC: 0,
			wantH: -1, // Hue is undefined for achromatic colors, use -1 to skip check
		},
		{
			name:    "invalid oklch",
			input:   "oklch(abc 0.2 180)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			l, ch, h := c.OkLch()
			// Allow small tolerance for floating point
			// Note: hue is undefined for achromatic colors (chroma=0), so skip hue check if wantH is -1
			hueOk := tt.wantH < 0 || math.Abs(h-tt.wantH) <= 0.5
			if math.Abs(l-tt.wantL) > 0.01 || math.Abs(ch-tt.wantC) > 0.01 || !hueOk {
				t.Errorf("Parse(%q) = OKLCH(%.3f, %.3f, %.2f), want OKLCH(%.3f, %.3f, %.2f)",
					tt.input, l, ch, h, tt.wantL, tt.wantC, tt.wantH)
			}

			if c.OriginalFormat() != FormatOKLCH {
				t.Errorf("Parse(%q) format = %q, want %q", tt.input, c.OriginalFormat(), FormatOKLCH)
			}
		})
	}
}

func TestParse_NamedColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		wantR uint8
		wantG uint8
		wantB uint8
	}{
		{"black", "black", 0, 0, 0},
		{"white", "white", 255, 255, 255},
		{"red", "red", 255, 0, 0},
		{"blue", "blue", 0, 0, 255},
		{"Black uppercase", "BLACK", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			r, g, b := c.RGB255()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("Parse(%q) = RGB(%d,%d,%d), want RGB(%d,%d,%d)",
					tt.input, r, g, b, tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"random string", "not a color"},
		{"invalid format", "xyz(1,2,3)"},
		{"malformed hex", "#zzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			if err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

// ============================================================================
// Color Output Tests
// ============================================================================

func TestColor_ToCSS(t *testing.T) {
	t.Parallel()

	c := MustParse("#3b82f6")

	tests := []struct {
		format string
		want   string
	}{
		{FormatHex, "#3b82f6"},
		{FormatRGB, "rgb(59, 130, 246)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			got := c.ToCSS(tt.format)
			if got != tt.want {
				t.Errorf("ToCSS(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestColor_ToOKLCH(t *testing.T) {
	t.Parallel()

	// Test that ToOKLCH produces valid output format
	c := MustParse("#3b82f6")
	oklch := c.ToOKLCH()

	// Should match pattern oklch(XX.XX% X.XXX XXX.XX)
	if len(oklch) < 10 {
		t.Errorf("ToOKLCH() = %q, expected longer string", oklch)
	}

	// Should be parseable back
	reparsed, err := Parse(oklch)
	if err != nil {
		t.Errorf("ToOKLCH() output %q not parseable: %v", oklch, err)
	}

	// Original format should be preserved on re-parse
	if reparsed.OriginalFormat() != FormatOKLCH {
		t.Errorf("Re-parsed format = %q, want %q", reparsed.OriginalFormat(), FormatOKLCH)
	}
}

func TestColor_RoundTrip(t *testing.T) {
	t.Parallel()

	// Test that colors can be round-tripped through various formats
	tests := []string{
		"#3b82f6",
		"#ffffff",
		"#000000",
		"#ff0000",
		"rgb(128, 64, 32)",
		"hsl(180, 50%, 50%)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			c1, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", input, err)
			}

			// Convert to hex and back
			hex := c1.Hex()
			c2, err := Parse(hex)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", hex, err)
			}

			r1, g1, b1 := c1.RGB255()
			r2, g2, b2 := c2.RGB255()

			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Errorf("Round-trip failed: RGB(%d,%d,%d) -> %q -> RGB(%d,%d,%d)",
					r1, g1, b1, hex, r2, g2, b2)
			}
		})
	}
}

// ============================================================================
// Helper Functions
// ============================================================================

func TestMustParse_Panic(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse with invalid input should panic")
		}
	}()

	MustParse("not a color")
}

func TestFromOkLch(t *testing.T) {
	t.Parallel()

	c := FromOkLch(0.5, 0.2, 180)

	l, ch, h := c.OkLch()
	if math.Abs(l-0.5) > 0.01 || math.Abs(ch-0.2) > 0.01 || math.Abs(h-180) > 0.5 {
		t.Errorf("FromOkLch(0.5, 0.2, 180) = OKLCH(%.3f, %.3f, %.2f)", l, ch, h)
	}

	if c.OriginalFormat() != FormatOKLCH {
		t.Errorf("FromOkLch format = %q, want %q", c.OriginalFormat(), FormatOKLCH)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	valid := MustParse("#3b82f6")
	if !valid.IsValid() {
		t.Error("Valid color reported as invalid")
	}
}

func TestClamped(t *testing.T) {
	t.Parallel()

	// Some OKLCH values produce out-of-gamut RGB.
	c := FromOkLch(0.9, 0.4, 150)
	clamped := c.Clamped()

	if !clamped.IsValid() {
		t.Error("Clamped color should be valid")
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
