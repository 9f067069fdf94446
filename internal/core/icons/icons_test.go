package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tech   string
		slug   string
		wantOK bool
	}{
		{"HTML", "html5", true},
		{"Vue.js", "vue-dot-js", true},
		{"Tailwind CSS", "tailwindcss", true},
		{"TailwindCSS", "tailwindcss", true},
		{"Next.js", "nextdotjs", true},
		{"Express.js", "express", true},
		{"html", "", false},
		{"Go", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tech, func(t *testing.T) {
			slug, ok := Lookup(tt.tech)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.slug, slug)
		})
	}

	assert.Len(t, techIcons, 18)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons/react.svg", URL("react"))
}

func TestResolve(t *testing.T) {
	techs := Resolve([]string{"React", "Go"})

	assert.Equal(t, []Tech{
		{Name: "React", Icon: "react", IconURL: URL("react")},
		{Name: "Go"},
	}, techs)
	assert.Empty(t, Resolve(nil))
	assert.NotNil(t, Resolve(nil))
}
