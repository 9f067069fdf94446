// Package icons maps technology names to simple-icons slugs.
package icons

import "fmt"

// CDNBase is where the simple-icons SVGs are served from.
const CDNBase = "https://cdn.jsdelivr.net/npm/simple-icons@latest/icons"

var techIcons = map[string]string{
	"HTML":         "html5",
	"CSS":          "css3",
	"JavaScript":   "javascript",
	"TypeScript":   "typescript",
	"PHP":          "php",
	"Laravel":      "laravel",
	"Vue.js":       "vue-dot-js",
	"Node.js":      "node-dot-js",
	"MySQL":        "mysql",
	"Git":          "git",
	"TailwindCSS":  "tailwindcss",
	"Tailwind CSS": "tailwindcss",
	"Bootstrap":    "bootstrap",
	"React":        "react",
	"Next.js":      "nextdotjs",
	"Supabase":     "supabase",
	"Mongo DB":     "mongodb",
	"Express.js":   "express",
}

// Lookup returns the icon slug for a technology. Names are matched exactly.
func Lookup(tech string) (string, bool) {
	slug, ok := techIcons[tech]
	return slug, ok
}

// URL returns the SVG location for a slug.
func URL(slug string) string {
	return fmt.Sprintf("%s/%s.svg", CDNBase, slug)
}

// Tech is a technology name with its resolved icon, if any.
type Tech struct {
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	IconURL string `json:"iconUrl,omitempty"`
}

// Resolve attaches icons to a list of technology names. A nil list yields an
// empty result.
func Resolve(names []string) []Tech {
	techs := make([]Tech, 0, len(names))
	for _, name := range names {
		tech := Tech{Name: name}
		if slug, ok := Lookup(name); ok {
			tech.Icon = slug
			tech.IconURL = URL(slug)
		}
		techs = append(techs, tech)
	}
	return techs
}
