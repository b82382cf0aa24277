package generate

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Context is the flat placeholder-substitution table shared by every
// component that renders template text.
type Context map[string]string

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Interpolate renders a template string against the context. Unmatched
// placeholders are left verbatim on purpose: an incomplete template should
// fail visibly in content review, not crash generation.
func Interpolate(tmpl string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := ctx[key]; ok {
			return v
		}
		return m
	})
}

// Nouns are the concrete names drawn for one scenario.
type Nouns struct {
	Location string
	Item     string
	Items    string
	Target   string
	Victim   string
	Mystery  string
	Enemies  string
}

// NewContext builds the base substitution table for a scenario. Amount keys
// (count, rounds, half, total) are layered on per objective via WithAmount.
func NewContext(n Nouns) Context {
	return Context{
		"location": n.Location,
		"item":     n.Item,
		"items":    n.Items,
		"target":   n.Target,
		"victim":   n.Victim,
		"mystery":  n.Mystery,
		"enemies":  n.Enemies,
	}
}

func (c Context) clone() Context {
	out := make(Context, len(c)+4)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// WithAmount returns a copy of the context carrying the numeric keys for a
// drawn target amount.
func (c Context) WithAmount(n int) Context {
	out := c.clone()
	out["count"] = strconv.Itoa(n)
	out["rounds"] = strconv.Itoa(n)
	out["total"] = strconv.Itoa(n)
	out["half"] = strconv.Itoa((n + 1) / 2)
	return out
}

// WithItem returns a copy of the context with the item placeholders swapped
// for a specific drawn item.
func (c Context) WithItem(singular, plural string) Context {
	out := c.clone()
	out["item"] = singular
	out["items"] = plural
	return out
}

var titleCaser = cases.Title(language.English)

// RenderTitle interpolates a title template and title-cases the result.
func RenderTitle(tmpl string, ctx Context) string {
	return titleCaser.String(Interpolate(tmpl, ctx))
}
