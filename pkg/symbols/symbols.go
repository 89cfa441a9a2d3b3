// Package symbols converts the small fixed set of LaTeX macros that appear
// in exam papers into Unicode glyphs and collapses leftover formatting.
//
// Two normalizers are exposed. Normalize performs the full LaTeX cleanup
// and is used for section-scoped papers. NormalizeMarkdown preserves
// $...$ and $$...$$ spans verbatim so a downstream math renderer still has
// the raw source to work with, and only tidies the prose around them.
package symbols

import (
	"regexp"
	"strings"
)

// macros is the fixed conversion table. Anything not listed here is
// stripped, not converted.
var macros = map[string]string{
	"alpha":      "α",
	"beta":       "β",
	"gamma":      "γ",
	"delta":      "δ",
	"epsilon":    "ε",
	"theta":      "θ",
	"lambda":     "λ",
	"mu":         "μ",
	"pi":         "π",
	"sigma":      "σ",
	"tau":        "τ",
	"phi":        "φ",
	"omega":      "ω",
	"infty":      "∞",
	"sum":        "Σ",
	"int":        "∫",
	"sqrt":       "√",
	"leq":        "≤",
	"geq":        "≥",
	"neq":        "≠",
	"approx":     "≈",
	"pm":         "±",
	"times":      "×",
	"div":        "÷",
	"rightarrow": "→",
	"leftarrow":  "←",
	"Rightarrow": "⇒",
	"Leftarrow":  "⇐",
}

// extendedMacros adds the set/logic operators on top of the base table.
var extendedMacros = map[string]string{
	"in":             "∈",
	"notin":          "∉",
	"subset":         "⊂",
	"supset":         "⊃",
	"cup":            "∪",
	"cap":            "∩",
	"emptyset":       "∅",
	"forall":         "∀",
	"exists":         "∃",
	"leftrightarrow": "↔",
}

var (
	macroToken   = regexp.MustCompile(`\\([a-zA-Z]+)`)
	fracPattern  = regexp.MustCompile(`\\frac\{([^}]+)\}\{([^}]+)\}`)
	commandArg   = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
	bareCommand  = regexp.MustCompile(`\\[a-zA-Z]+`)
	escapedPunct = regexp.MustCompile(`\\[^a-zA-Z]`)
	displayMath  = regexp.MustCompile(`\$\$([\s\S]*?)\$\$`)
	inlineMath   = regexp.MustCompile(`\$([^$]+)\$`)
	mathSpan     = regexp.MustCompile(`\$\$[\s\S]*?\$\$|\$[^$]+\$`)

	runSpaces   = regexp.MustCompile(`[ \t]+`)
	leadSpaces  = regexp.MustCompile(`\n[ \t]+`)
	trailSpaces = regexp.MustCompile(`[ \t]+\n`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// ConvertSymbols replaces every recognized macro token with its Unicode
// glyph, using the extended table. Unknown macros are left untouched.
// A literal backslash-letter run in prose that happens to spell a macro
// name is converted too; that false positive is accepted.
func ConvertSymbols(text string) string {
	return macroToken.ReplaceAllStringFunc(text, func(tok string) string {
		name := tok[1:]
		if glyph, ok := macros[name]; ok {
			return glyph
		}
		if glyph, ok := extendedMacros[name]; ok {
			return glyph
		}
		return tok
	})
}

// Normalize runs the full LaTeX cleanup in fixed order: macro conversion,
// math-delimiter removal, single-pass \frac rewrite, unknown-command
// stripping, whitespace collapsing. Superscript ^X and subscript _X markers
// pass through as-is rather than being rendered.
//
// Idempotent on already-normalized text, except where prose contains a
// literal backslash-letter sequence that collides with a macro name.
func Normalize(text string) string {
	text = ConvertSymbols(text)

	// Unwrap math spans; their interiors were already converted above.
	text = displayMath.ReplaceAllString(text, "$1")
	text = inlineMath.ReplaceAllString(text, "$1")

	// Non-recursive: nested fractions are only parenthesized one level
	// deep because the brace captures stop at the first closing brace.
	text = fracPattern.ReplaceAllString(text, "($1)/($2)")

	text = commandArg.ReplaceAllString(text, "")
	text = bareCommand.ReplaceAllString(text, "")
	text = escapedPunct.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}

// NormalizeMarkdown tidies whitespace while leaving every $...$ and
// $$...$$ span byte-for-byte intact. The text is split on math-delimiter
// boundaries and only the spans between them are touched.
func NormalizeMarkdown(text string) string {
	spans := mathSpan.FindAllStringIndex(text, -1)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range spans {
		b.WriteString(collapseProse(text[last:span[0]]))
		b.WriteString(text[span[0]:span[1]])
		last = span[1]
	}
	b.WriteString(collapseProse(text[last:]))

	return strings.TrimSpace(b.String())
}

// collapseProse squeezes space runs, strips per-line edge whitespace, and
// caps blank-line runs at one.
func collapseProse(s string) string {
	s = runSpaces.ReplaceAllString(s, " ")
	s = leadSpaces.ReplaceAllString(s, "\n")
	s = trailSpaces.ReplaceAllString(s, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return s
}
