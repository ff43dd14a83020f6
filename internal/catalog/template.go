package catalog

// Template describes a portfolio layout users can pick for rendering.
// The catalog is fixed at build time.
type Template struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

var templateOrder = []string{
	"modern_professional",
	"creative_showcase",
	"tech_portfolio",
	"executive_profile",
}

var templates = map[string]Template{
	"modern_professional": {
		Key:         "modern_professional",
		Name:        "Modern Professional",
		Description: "Clean, ATS-friendly design with focus on content",
		Features:    []string{"Single column", "Professional fonts", "Skill tags", "Project highlights"},
	},
	"creative_showcase": {
		Key:         "creative_showcase",
		Name:        "Creative Showcase",
		Description: "Visual-focused template for designers and creatives",
		Features:    []string{"Two-column layout", "Project galleries", "Color accents", "Custom sections"},
	},
	"tech_portfolio": {
		Key:         "tech_portfolio",
		Name:        "Tech Portfolio",
		Description: "Optimized for developers and technical roles",
		Features:    []string{"Code snippets", "Technology stack", "GitHub integration", "Live demos"},
	},
	"executive_profile": {
		Key:         "executive_profile",
		Name:        "Executive Profile",
		Description: "Sophisticated design for senior and executive roles",
		Features:    []string{"Minimalist design", "Achievement metrics", "Leadership focus", "Testimonials"},
	},
}

func GetTemplate(templateKey string) (Template, bool) {
	template, exists := templates[templateKey]
	return template, exists
}

// List returns the catalog in display order.
func List() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, key := range templateOrder {
		out = append(out, templates[key])
	}
	return out
}
