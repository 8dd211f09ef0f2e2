package cfg

import (
	"regexp"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
)

var atomPatterns = []struct {
	re   *regexp.Regexp
	make func(value string) ir.Predicate
}{
	{regexp.MustCompile(`^feature\s*=\s*"([^"]+)"$`), func(v string) ir.Predicate { return ir.Feature(v) }},
	{regexp.MustCompile(`^target_arch\s*=\s*"([^"]+)"$`), func(v string) ir.Predicate { return ir.Target(ir.AxisArch, v) }},
	{regexp.MustCompile(`^target_vendor\s*=\s*"([^"]+)"$`), func(v string) ir.Predicate { return ir.Target(ir.AxisVendor, v) }},
	{regexp.MustCompile(`^target_os\s*=\s*"([^"]+)"$`), func(v string) ir.Predicate { return ir.Target(ir.AxisOS, v) }},
	{regexp.MustCompile(`^target_env\s*=\s*"([^"]+)"$`), func(v string) ir.Predicate { return ir.Target(ir.AxisEnv, v) }},
}

// Parse parses a cfg expression. It never fails: input that does not match
// the modeled grammar is preserved as an opaque atom.
func Parse(input string) ir.Predicate {
	input = strings.TrimSpace(input)

	if inner, ok := stripCall(input, "not"); ok {
		return ir.Not(Parse(inner))
	}
	if inner, ok := stripCall(input, "all"); ok {
		return ir.All(splitTopLevel(inner)...)
	}
	if inner, ok := stripCall(input, "any"); ok {
		return ir.Any(splitTopLevel(inner)...)
	}

	for _, p := range atomPatterns {
		if m := p.re.FindStringSubmatch(input); m != nil {
			return p.make(m[1])
		}
	}

	return ir.OpaquePred(input)
}

// stripCall removes a `name( ... )` wrapper, tolerating a space before the
// opening parenthesis.
func stripCall(input, name string) (string, bool) {
	if !strings.HasSuffix(input, ")") {
		return "", false
	}
	rest, ok := strings.CutPrefix(input, name+"(")
	if !ok {
		rest, ok = strings.CutPrefix(input, name+" (")
	}
	if !ok {
		return "", false
	}
	return rest[:len(rest)-1], true
}

// splitTopLevel parses a comma-separated predicate list, respecting nesting
// and quoted strings.
func splitTopLevel(input string) []ir.Predicate {
	var preds []ir.Predicate
	var current strings.Builder
	depth := 0
	inQuotes := false
	escaped := false

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			preds = append(preds, Parse(s))
		}
		current.Reset()
	}

	for _, ch := range input {
		if escaped {
			current.WriteRune(ch)
			escaped = false
			continue
		}
		switch {
		case ch == '\\':
			escaped = true
			current.WriteRune(ch)
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == '(' && !inQuotes:
			depth++
			current.WriteRune(ch)
		case ch == ')' && !inQuotes:
			depth--
			current.WriteRune(ch)
		case ch == ',' && !inQuotes && depth == 0:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return preds
}
