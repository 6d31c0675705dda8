package generator

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FileKind names an extractor dispatch target (spec.md §6, "Input file
// kinds").
type FileKind string

const (
	KindHTML    FileKind = "html"
	KindScript  FileKind = "script" // js, ts, jsx, tsx
	KindTemplate FileKind = "template" // svelte, vue
	KindUnknown FileKind = ""
)

// KindForPath dispatches by extension.
func KindForPath(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML
	case ".js", ".ts", ".jsx", ".tsx":
		return KindScript
	case ".svelte", ".vue":
		return KindTemplate
	default:
		return KindUnknown
	}
}

// classAttrPattern pulls the contents of class/className attributes out
// of HTML-like markup. Tokens are whitespace-split afterward.
var classAttrPattern = regexp.MustCompile(`class(?:Name)?\s*=\s*["']([^"']*)["']`)

// identifierPattern is the js/ts scanner: any quoted string literal or
// template-literal segment made only of class-name characters (one
// class, no whitespace), since utility classes commonly appear as
// plain string arguments (`clsx("flex", cond && "hidden")`).
var identifierPattern = regexp.MustCompile(`["'` + "`" + `]([a-zA-Z0-9:/_.\[\]%!-]+)["'` + "`" + `]`)

// Extract produces the candidate token stream for one file's contents
// given its kind (spec.md §6's extractor contract: byte-slices of the
// input, tokens may duplicate, never validated here).
func Extract(src []byte, kind FileKind) []string {
	switch kind {
	case KindHTML, KindTemplate:
		return extractClassLike(src)
	case KindScript:
		return extractScriptLike(src)
	default:
		return nil
	}
}

func extractClassLike(src []byte) []string {
	var tokens []string
	for _, m := range classAttrPattern.FindAllSubmatch(src, -1) {
		tokens = append(tokens, strings.Fields(string(m[1]))...)
	}
	return tokens
}

func extractScriptLike(src []byte) []string {
	var tokens []string
	for _, m := range identifierPattern.FindAllSubmatch(src, -1) {
		candidate := string(m[1])
		if looksLikeUtility(candidate) {
			tokens = append(tokens, candidate)
		}
	}
	return tokens
}

// looksLikeUtility keeps every non-empty single-word literal the script
// scanner matched; deciding whether it names a utility (`flex` as much
// as `bg-blue-500`) is left to the resolver.
func looksLikeUtility(s string) bool {
	return s != "" && !strings.Contains(s, " ")
}
