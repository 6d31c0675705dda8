// Package candidate tokenizes a raw utility-class string into a
// structured Candidate: a variant chain, a utility key, and optional
// value/modifier/important/negative flags. It has no knowledge of
// what a key or variant *means* — callers supply the valid key sets
// and get back a parsed shape or a rejection error.
package candidate

import (
	"fmt"
	"strings"
)

// MaybeArbitrary is the tagged union `Named(s) | Arbitrary(s)` from
// the data model: a value or modifier segment is either a name that
// resolves against a theme, or a literal that bypasses theme lookup.
type MaybeArbitrary struct {
	Arbitrary bool
	Value     string
}

// Named builds a theme-key reference segment.
func Named(s string) MaybeArbitrary { return MaybeArbitrary{Value: s} }

// Arb builds a literal arbitrary-value segment (the raw `[...]` content).
func Arb(s string) MaybeArbitrary { return MaybeArbitrary{Arbitrary: true, Value: s} }

// VariantSegment is one `:`-separated variant in the chain, e.g.
// `hover`, `md`, `group-has-[:checked]`, or a fully arbitrary
// `[@media(min-width:200px)]` block.
type VariantSegment struct {
	Raw      string
	Key      string          // variant registry key, empty if FullyArbitrary
	Value    *MaybeArbitrary // the `-value` suffix, if any
	Modifier *MaybeArbitrary // the `/modifier` suffix, if any

	FullyArbitrary bool   // segment was a bare `[...]` block
	ArbitraryBody  string // content of a fully-arbitrary segment
}

// Candidate is a parsed utility token, variants outermost-first (the
// order they appeared in the original string, left to right).
type Candidate struct {
	Raw       string
	Key       string
	Value     *MaybeArbitrary
	Modifier  *MaybeArbitrary
	Important bool
	Negative  bool
	Variants  []VariantSegment
}

// RejectError reports why a raw token could not be parsed into a
// Candidate. It is always a TokenReject, never a hard failure.
type RejectError struct {
	Raw    string
	Reason string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("%s: %s", e.Raw, e.Reason)
}

func reject(raw, format string, args ...any) error {
	return &RejectError{Raw: raw, Reason: fmt.Sprintf(format, args...)}
}

// Matcher resolves the longest registered key that is a prefix of s.
// Implementations wrap a registry's key set; candidate itself holds
// no registry.
type Matcher func(s string) (key string, rest string, ok bool)

// LongestMatch is a Matcher built from a plain key list: the
// "greedy longest-match... ties broken by longer match wins" rule
// from the grammar.
func LongestMatch(keys []string) Matcher {
	return func(s string) (string, string, bool) {
		best := ""
		for _, k := range keys {
			if len(k) <= len(best) {
				continue
			}
			if strings.HasPrefix(s, k) {
				best = k
			}
		}
		if best == "" {
			return "", s, false
		}
		return best, s[len(best):], true
	}
}

// Parse tokenizes raw against utilityKeys (for the final segment) and
// variantKeys (for every segment before it).
func Parse(raw string, utilityKeys, variantKeys Matcher) (*Candidate, error) {
	if raw == "" {
		return nil, reject(raw, "empty token")
	}

	segments, err := splitTopLevel(raw, ':')
	if err != nil {
		return nil, err
	}

	c := &Candidate{Raw: raw}

	for _, seg := range segments[:len(segments)-1] {
		vs, err := parseVariantSegment(seg, variantKeys)
		if err != nil {
			return nil, err
		}
		c.Variants = append(c.Variants, *vs)
	}

	if err := parseUtilitySegment(c, segments[len(segments)-1], utilityKeys); err != nil {
		return nil, err
	}

	return c, nil
}

// splitTopLevel splits s on sep, ignoring sep occurrences nested
// inside a balanced `[...]` block (e.g. the `:` inside
// `[@media(min-width:200px)]`).
func splitTopLevel(s string, sep byte) ([]string, error) {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, reject(s, "unbalanced brackets at position %d", i)
			}
		case sep:
			if depth == 0 {
				segments = append(segments, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, reject(s, "unbalanced brackets")
	}
	segments = append(segments, s[start:])
	return segments, nil
}

// scanBracket expects s to start with '[' and returns the content
// between the balanced brackets and whatever follows the closing ']'.
func scanBracket(s string) (content, rest string, ok bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", s, false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", s, false
}

// parseKeyValueModifier is shared by utility and literal-variant
// parsing: match a registry key, then an optional `-value` (named or
// `[arbitrary]`), then an optional `/modifier`.
func parseKeyValueModifier(s string, match Matcher) (key string, value, modifier *MaybeArbitrary, rest string, err error) {
	k, after, ok := match(s)
	if !ok {
		return "", nil, nil, s, fmt.Errorf("no registered key is a prefix of %q", s)
	}
	key = k
	rest = after

	if strings.HasPrefix(rest, "-") {
		v, r, verr := parseValueSegment(rest[1:])
		if verr != nil {
			return "", nil, nil, rest, verr
		}
		value = v
		rest = r
	}

	if strings.HasPrefix(rest, "/") {
		m, r, merr := parseValueSegment(rest[1:])
		if merr != nil {
			return "", nil, nil, rest, merr
		}
		modifier = m
		rest = r
	}

	return key, value, modifier, rest, nil
}

// parseValueSegment parses a `-value`/`/modifier` payload: either a
// balanced `[arbitrary]` block or a bare run of non-`/`-non-`!` chars.
func parseValueSegment(s string) (*MaybeArbitrary, string, error) {
	if strings.HasPrefix(s, "[") {
		content, rest, ok := scanBracket(s)
		if !ok {
			return nil, s, fmt.Errorf("unbalanced arbitrary value brackets in %q", s)
		}
		v := Arb(content)
		return &v, rest, nil
	}

	i := 0
	for i < len(s) && s[i] != '/' && s[i] != '!' {
		i++
	}
	if i == 0 {
		return nil, s, fmt.Errorf("empty value segment")
	}
	v := Named(s[:i])
	return &v, s[i:], nil
}

func parseUtilitySegment(c *Candidate, seg string, utilityKeys Matcher) error {
	if strings.HasPrefix(seg, "!") {
		c.Important = true
		seg = seg[1:]
	}
	if strings.HasPrefix(seg, "-") {
		c.Negative = true
		seg = seg[1:]
	}

	if strings.HasSuffix(seg, "!") && !c.Important {
		c.Important = true
		seg = seg[:len(seg)-1]
	}

	if seg == "" {
		return reject(c.Raw, "empty utility key")
	}

	key, value, modifier, rest, err := parseKeyValueModifier(seg, utilityKeys)
	if err != nil {
		return reject(c.Raw, "%v", err)
	}

	if rest != "" {
		return reject(c.Raw, "unexpected trailing content %q", rest)
	}

	c.Key = key
	c.Value = value
	c.Modifier = modifier
	return nil
}

func parseVariantSegment(seg string, variantKeys Matcher) (*VariantSegment, error) {
	if content, rest, ok := scanBracket(seg); ok && rest == "" {
		if !strings.HasPrefix(content, "@") && !strings.Contains(content, "&") {
			return nil, reject(seg, "arbitrary variant must start with '@' or contain '&'")
		}
		return &VariantSegment{Raw: seg, FullyArbitrary: true, ArbitraryBody: content}, nil
	}

	key, value, modifier, rest, err := parseKeyValueModifier(seg, variantKeys)
	if err != nil {
		return nil, reject(seg, "%v", err)
	}
	if rest != "" {
		return nil, reject(seg, "unexpected trailing content %q", rest)
	}

	return &VariantSegment{Raw: seg, Key: key, Value: value, Modifier: modifier}, nil
}
