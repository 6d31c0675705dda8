package design

import (
	"github.com/dmoose/tailkit/pkg/utility"
)

// filterFn registers one filter-family or backdrop-filter-family
// utility: it only ever writes its own `--tw-{prop}` custom property,
// letting the shared Group composite (GroupFilter/GroupBackdropFilter,
// pkg/utility's GroupDecls) assemble the final `filter`/
// `backdrop-filter` declaration. Grounded on the blur/brightness/
// contrast/grayscale/invert/saturate/sepia/drop-shadow families in
// _examples/original_source/crates/rswind/src/preset/dynamics.rs,
// which register an identical pair (filter-prefixed, backdrop-
// prefixed) of utilities per CSS filter function.
func (s *System) registerFilterFn(key, cssVar string, group utility.Group, themeKeys []string, validator utility.Validator) {
	s.RegisterUtility(&utility.Definition{
		Key:         key,
		ValueRepr:   utility.ValueRepr{ThemeKeys: themeKeys, Validator: validator},
		Handler:     decl(cssVar),
		Group:       group,
		OrderingKey: utility.OrderFilter,
	})
}

// RegisterFilterUtilities wires the full filter and backdrop-filter
// families.
func (s *System) RegisterFilterUtilities() {
	any := utility.AnyValidator()
	num := utility.NumberValidator()

	filters := []struct {
		key, cssVar string
		themeKeys   []string
		validator   utility.Validator
	}{
		{"blur", "--tw-blur", []string{"blur"}, any},
		{"brightness", "--tw-brightness", []string{"brightness"}, num},
		{"contrast", "--tw-contrast", []string{"contrast"}, num},
		{"grayscale", "--tw-grayscale", []string{"grayscale"}, num},
		{"invert", "--tw-invert", []string{"invert"}, num},
		{"saturate", "--tw-saturate", []string{"saturate"}, num},
		{"sepia", "--tw-sepia", []string{"sepia"}, num},
		{"drop-shadow", "--tw-drop-shadow", []string{"dropShadow"}, any},
	}
	for _, f := range filters {
		s.registerFilterFn(f.key, f.cssVar, utility.GroupFilter, f.themeKeys, f.validator)
	}

	backdrops := []struct {
		key, cssVar string
		themeKeys   []string
		validator   utility.Validator
	}{
		{"backdrop-blur", "--tw-backdrop-blur", []string{"blur"}, any},
		{"backdrop-brightness", "--tw-backdrop-brightness", []string{"brightness"}, num},
		{"backdrop-contrast", "--tw-backdrop-contrast", []string{"contrast"}, num},
		{"backdrop-grayscale", "--tw-backdrop-grayscale", []string{"grayscale"}, num},
		{"backdrop-invert", "--tw-backdrop-invert", []string{"invert"}, num},
		{"backdrop-saturate", "--tw-backdrop-saturate", []string{"saturate"}, num},
		{"backdrop-sepia", "--tw-backdrop-sepia", []string{"sepia"}, num},
		{"backdrop-opacity", "--tw-backdrop-opacity", []string{"opacity"}, num},
	}
	for _, b := range backdrops {
		s.RegisterUtility(&utility.Definition{
			Key:         b.key,
			ValueRepr:   utility.ValueRepr{ThemeKeys: b.themeKeys, Validator: b.validator},
			Handler:     decl(b.cssVar),
			Group:       utility.GroupBackdropFilter,
			OrderingKey: utility.OrderBackdropFilter,
		})
	}
}
