// Package markup converts the lightweight markdown subset emitted by
// chat models into HTML the client app can render directly. It is not a
// general markdown parser: only bold, bold-italic, numbered-list glue
// and newline handling are covered; everything else passes through.
package markup

import "regexp"

var (
	boldItalicRe  = regexp.MustCompile(`\*\*\*(.*?)\*\*\*`)
	boldRe        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	excessBreakRe = regexp.MustCompile(`\n{3,}`)
	leadBreakRe   = regexp.MustCompile(`^\n+`)
	splitListRe   = regexp.MustCompile(`(\d+\.)\n+([^\n])`)
	newlineRunRe  = regexp.MustCompile(`\n+`)
)

// ToHTML applies the transform rules in fixed order. Models tend to
// split a list marker ("3.") from its text with a newline; the splitList
// rule glues those back together before newline runs collapse into a
// single <br/>. Applying ToHTML to its own output is a no-op.
func ToHTML(text string) string {
	out := boldItalicRe.ReplaceAllString(text, "<strong><em>$1</em></strong>")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = excessBreakRe.ReplaceAllString(out, "\n\n")
	out = leadBreakRe.ReplaceAllString(out, "")
	out = splitListRe.ReplaceAllString(out, "$1$2")
	out = newlineRunRe.ReplaceAllString(out, "<br/>")
	return out
}
