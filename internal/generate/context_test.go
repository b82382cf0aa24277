package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	ctx := NewContext(Nouns{
		Location: "the Harrow House",
		Item:     "the brass key",
		Victim:   "Doctor Halsey",
		Mystery:  "Hollow Moon",
		Enemies:  "ghouls",
	})

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			name: "simple substitution",
			tmpl: "Search {location} for {item}",
			want: "Search the Harrow House for the brass key",
		},
		{
			name: "repeated key",
			tmpl: "{victim}, always {victim}",
			want: "Doctor Halsey, always Doctor Halsey",
		},
		{
			name: "unknown key left verbatim",
			tmpl: "Beware the {unknown_thing} of {location}",
			want: "Beware the {unknown_thing} of the Harrow House",
		},
		{
			name: "no placeholders",
			tmpl: "Nothing to see here",
			want: "Nothing to see here",
		},
		{
			name: "empty template",
			tmpl: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.tmpl, ctx))
		})
	}
}

func TestContext_WithAmount(t *testing.T) {
	base := NewContext(Nouns{Location: "Arkham Station"})
	ctx := base.WithAmount(7)

	assert.Equal(t, "7", ctx["count"])
	assert.Equal(t, "7", ctx["rounds"])
	assert.Equal(t, "7", ctx["total"])
	assert.Equal(t, "4", ctx["half"], "half rounds up")

	// The base context is untouched.
	_, ok := base["count"]
	assert.False(t, ok)
}

func TestContext_WithItem(t *testing.T) {
	base := NewContext(Nouns{Item: "the brass key", Items: "brass keys"})
	ctx := base.WithItem("the Sealed Urn", "Sealed Urns")

	assert.Equal(t, "the Sealed Urn", ctx["item"])
	assert.Equal(t, "Sealed Urns", ctx["items"])
	assert.Equal(t, "the brass key", base["item"])
}

func TestRenderTitle(t *testing.T) {
	ctx := NewContext(Nouns{Location: "the Witch Quarter", Mystery: "Red Sign"})

	got := RenderTitle("the {mystery} of {location}", ctx)

	assert.Equal(t, "The Red Sign Of The Witch Quarter", got)
}
