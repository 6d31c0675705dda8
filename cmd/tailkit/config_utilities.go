package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dmoose/tailkit/pkg/css"
	"github.com/dmoose/tailkit/pkg/design"
	"github.com/dmoose/tailkit/pkg/generator"
	"github.com/dmoose/tailkit/pkg/utility"
)

// registerConfigUtilities turns spec.md §6's `utilities`/`staticUtilities`
// config arrays into utility.Definitions layered on top of the core set.
func registerConfigUtilities(sys *design.System, cfg *generator.Config) error {
	for _, u := range cfg.Utilities {
		def, err := buildUtilityDefinition(u)
		if err != nil {
			return fmt.Errorf("utility %q: %w", u.Key, err)
		}
		sys.RegisterUtility(def)
	}

	keys := make([]string, 0, len(cfg.StaticUtilities))
	for k := range cfg.StaticUtilities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		def, err := buildStaticUtilityDefinition(key, cfg.StaticUtilities[key])
		if err != nil {
			return fmt.Errorf("static utility %q: %w", key, err)
		}
		sys.RegisterUtility(def)
	}
	return nil
}

// buildUtilityDefinition decodes one `utilities[]` entry. `css` is an
// object of declaration-name -> value template, where "{value}" is
// substituted with the resolved utility value at resolve time.
func buildUtilityDefinition(u generator.UtilityConfig) (*utility.Definition, error) {
	templates, err := decodeDeclTemplates(u.CSS)
	if err != nil {
		return nil, err
	}

	def := &utility.Definition{
		Key:              u.Key,
		SupportsNegative: u.SupportsNegative,
		SupportsFraction: u.SupportsFraction,
		WrapperSelector:  u.Wrapper,
		OrderingKey:      orderingKeyFromName(u.OrderingKey),
		Group:            utility.Group(u.Group),
	}
	if u.Theme != "" {
		def.ValueRepr.ThemeKeys = strings.Split(u.Theme, ",")
	}
	def.ValueRepr.Validator = validatorFromType(u.Type)
	if u.Modifier != "" {
		def.ModifierRepr = &utility.ValueRepr{ThemeKeys: strings.Split(u.Modifier, ",")}
	}

	def.Handler = func(meta utility.Meta, value string) css.RuleList {
		decls := make([]css.Decl, 0, len(templates))
		for _, t := range templates {
			decls = append(decls, css.Decl{Name: t.name, Value: strings.ReplaceAll(t.value, "{value}", value)})
		}
		return css.RuleList{css.NewRule("", decls...)}
	}

	return def, nil
}

// buildStaticUtilityDefinition wires one `staticUtilities` entry: a
// fixed declaration object with no value position at all (the key
// itself is the whole candidate).
func buildStaticUtilityDefinition(key string, raw json.RawMessage) (*utility.Definition, error) {
	templates, err := decodeDeclTemplates(raw)
	if err != nil {
		return nil, err
	}
	decls := make([]css.Decl, 0, len(templates))
	for _, t := range templates {
		decls = append(decls, css.Decl{Name: t.name, Value: t.value})
	}
	return &utility.Definition{
		Key: key,
		Handler: func(meta utility.Meta, value string) css.RuleList {
			return css.RuleList{css.NewRule("", decls...)}
		},
	}, nil
}

type declTemplate struct{ name, value string }

func decodeDeclTemplates(raw json.RawMessage) ([]declTemplate, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decoding css object: %w", err)
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]declTemplate, 0, len(names))
	for _, name := range names {
		out = append(out, declTemplate{name: name, value: obj[name]})
	}
	return out, nil
}

func validatorFromType(t string) utility.Validator {
	switch t {
	case "color":
		return utility.ColorValidator()
	case "dimension", "length":
		return utility.DimensionValidator()
	case "number":
		return utility.NumberValidator()
	case "":
		return nil
	default:
		return utility.AnyValidator()
	}
}

func orderingKeyFromName(name string) utility.OrderingKey {
	switch name {
	case "margin":
		return utility.OrderMargin
	case "marginAxis":
		return utility.OrderMarginAxis
	case "marginSide":
		return utility.OrderMarginSide
	case "padding":
		return utility.OrderPadding
	case "paddingAxis":
		return utility.OrderPaddingAxis
	case "paddingSide":
		return utility.OrderPaddingSide
	case "inset":
		return utility.OrderInset
	case "size":
		return utility.OrderSize
	case "borderWidth":
		return utility.OrderBorderWidth
	case "borderColor":
		return utility.OrderBorderColor
	case "rounded":
		return utility.OrderRounded
	case "display":
		return utility.OrderDisplay
	case "flex":
		return utility.OrderFlex
	case "transform":
		return utility.OrderTransform
	case "backgroundColor":
		return utility.OrderBackgroundColor
	case "textColor":
		return utility.OrderTextColor
	default:
		return utility.OrderNone
	}
}
