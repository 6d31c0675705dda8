package utility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmoose/tailkit/pkg/colors"
	"github.com/dmoose/tailkit/pkg/tokens"
)

// ColorValidator accepts any CSS color format go-colorful can parse,
// plus the arbitrary-value color-arithmetic helpers (darken/lighten/
// contrast) folded in as a supplemental convenience.
func ColorValidator() Validator {
	return func(raw string) error {
		if strings.HasPrefix(raw, "darken(") || strings.HasPrefix(raw, "lighten(") || strings.HasPrefix(raw, "contrast(") {
			return validateColorExpression(raw)
		}
		_, err := colors.Parse(raw)
		return err
	}
}

// DimensionValidator accepts any value `pkg/tokens`'s dimension parser
// accepts, plus bare `calc(...)` expressions it deliberately defers.
func DimensionValidator() Validator {
	return func(raw string) error {
		if strings.HasPrefix(raw, "calc(") {
			return nil
		}
		_, err := tokens.ParseDimension(raw)
		return err
	}
}

// NumberValidator accepts a bare number.
func NumberValidator() Validator {
	return func(raw string) error {
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("expected number: %w", err)
		}
		return nil
	}
}

// AnyValidator accepts any non-empty literal; used for utilities
// (e.g. `content-[...]`) whose arbitrary value is opaque CSS text.
func AnyValidator() Validator {
	return func(raw string) error {
		if raw == "" {
			return fmt.Errorf("empty arbitrary value")
		}
		return nil
	}
}

// validateColorExpression checks the shape of a supplemental
// darken()/lighten()/contrast() arbitrary-value color expression
// without evaluating it. The resolver emits an accepted expression
// unevaluated; EvalColorExpression is a separate helper the resolver
// does not call.
func validateColorExpression(raw string) error {
	open := strings.Index(raw, "(")
	if open < 0 || !strings.HasSuffix(raw, ")") {
		return fmt.Errorf("malformed color expression: %s", raw)
	}
	args := raw[open+1 : len(raw)-1]
	parts := strings.Split(args, ",")
	if len(parts) != 2 {
		return fmt.Errorf("color expression %s expects 2 arguments, got %d", raw, len(parts))
	}
	pct := strings.TrimSpace(parts[1])
	if !strings.HasSuffix(pct, "%") {
		return fmt.Errorf("color expression %s: second argument must be a percentage", raw)
	}
	if _, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64); err != nil {
		return fmt.Errorf("color expression %s: invalid percentage: %w", raw, err)
	}
	return nil
}

// EvalColorExpression evaluates a validated darken()/lighten()/
// contrast() expression once its first argument has been resolved to
// a concrete CSS color string. Grounded on pkg/tokens/expressions.go's
// darken/lighten/contrast helpers, adapted from token-dictionary
// expression evaluation to utility arbitrary-value evaluation.
func EvalColorExpression(expr string, resolvedColor string) (string, error) {
	open := strings.Index(expr, "(")
	fn := expr[:open]
	args := expr[open+1 : len(expr)-1]
	parts := strings.Split(args, ",")
	pct, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(parts[1]), "%"), 64)
	if err != nil {
		return "", err
	}

	c, err := colors.Parse(resolvedColor)
	if err != nil {
		return "", err
	}
	l, ch, h := c.OkLch()

	switch fn {
	case "darken":
		l = clamp01(l - pct/100)
	case "lighten":
		l = clamp01(l + pct/100)
	case "contrast":
		if l > 0.5 {
			l = clamp01(l - pct/100)
		} else {
			l = clamp01(l + pct/100)
		}
	default:
		return "", fmt.Errorf("unknown color expression function %q", fn)
	}

	return colors.FromOkLch(l, ch, h).ToOriginalFormat(), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
