package css

import "testing"

func TestWriteRule(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		rule   *Rule
		minify bool
		want   string
	}{
		{
			name:   "single decl",
			rule:   NewRule(".flex", Decl{Name: "flex", Value: "1 1 0%"}),
			minify: false,
			want:   ".flex {\n  flex: 1 1 0%;\n}\n",
		},
		{
			name:   "minified",
			rule:   NewRule(".flex", Decl{Name: "flex", Value: "1 1 0%"}),
			minify: true,
			want:   ".flex{flex:1 1 0%;}",
		},
		{
			name: "nested at-rule",
			rule: Wrap("@media (min-width: 768px)", NewRule(".md\\:flex", Decl{Name: "display", Value: "flex"})),
			want: "@media (min-width: 768px) {\n  .md\\:flex {\n    display: flex;\n  }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := &Writer{Minify: tt.minify}
			w.WriteRule(tt.rule)
			if got := w.String(); got != tt.want {
				t.Errorf("WriteRule() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeIdent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"flex", "flex"},
		{"bg-blue-500/50", `bg-blue-500\/50`},
		{"md:hover:text-red-500", `md\:hover\:text-red-500`},
		{"translate-x-[10px]", `translate-x-\[10px\]`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := EscapeIdent(tt.input); got != tt.want {
				t.Errorf("EscapeIdent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuleClone(t *testing.T) {
	t.Parallel()
	r := NewRule(".foo", Decl{Name: "color", Value: "red"})
	c := r.Clone()
	c.Selector = ".bar"
	c.Nodes[0].Decl.Value = "blue"

	if r.Selector != ".foo" || r.Decls()[0].Value != "red" {
		t.Errorf("Clone mutated original: %+v", r)
	}
}
