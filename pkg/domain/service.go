package domain

// Urgency marks how soon a client needs a project delivered.
type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// Budget terms are platform-fixed and never user-editable.
const (
	BudgetType   = "fixed"
	PaymentTerms = "on_completion"
)

// ServiceConfig holds the fixed pricing and duration rules for one service
// category, plus the skill list sent to the server when browsing students
// for that category.
type ServiceConfig struct {
	Slug              string
	Title             string
	MinPrice          int
	MaxPrice          int
	MinDays           int
	MaxDays           int
	UrgencyMultiplier float64
	Skills            []string
}

// DefaultService is the fallback category for unknown service keys.
const DefaultService = "web-development"

// ServiceSlugs is the display/cycle order of the seven service categories.
var ServiceSlugs = []string{
	"web-development",
	"app-development",
	"resume-services",
	"cad-modeling",
	"ui-ux-design",
	"data-analysis",
	"content-writing",
}

// Services — locked platform constants, keep in sync with the backend.
var Services = map[string]ServiceConfig{
	"web-development": {
		Slug:              "web-development",
		Title:             "Web Development",
		MinPrice:          5000,
		MaxPrice:          50000,
		MinDays:           3,
		MaxDays:           60,
		UrgencyMultiplier: 1.5,
		Skills:            []string{"React", "Node.js", "JavaScript", "HTML", "CSS", "MongoDB"},
	},
	"app-development": {
		Slug:              "app-development",
		Title:             "App Development",
		MinPrice:          8000,
		MaxPrice:          80000,
		MinDays:           7,
		MaxDays:           90,
		UrgencyMultiplier: 1.5,
		Skills:            []string{"Flutter", "React Native", "Kotlin", "Swift", "Firebase"},
	},
	"resume-services": {
		Slug:              "resume-services",
		Title:             "Resume Services",
		MinPrice:          500,
		MaxPrice:          5000,
		MinDays:           1,
		MaxDays:           7,
		UrgencyMultiplier: 1.3,
		Skills:            []string{"Resume Writing", "ATS Optimization", "LaTeX", "Cover Letters"},
	},
	"cad-modeling": {
		Slug:              "cad-modeling",
		Title:             "CAD Modeling",
		MinPrice:          2000,
		MaxPrice:          30000,
		MinDays:           2,
		MaxDays:           45,
		UrgencyMultiplier: 1.4,
		Skills:            []string{"AutoCAD", "SolidWorks", "Fusion 360", "3D Modeling"},
	},
	"ui-ux-design": {
		Slug:              "ui-ux-design",
		Title:             "UI/UX Design",
		MinPrice:          3000,
		MaxPrice:          40000,
		MinDays:           3,
		MaxDays:           45,
		UrgencyMultiplier: 1.4,
		Skills:            []string{"Figma", "Adobe XD", "Wireframing", "Prototyping"},
	},
	"data-analysis": {
		Slug:              "data-analysis",
		Title:             "Data Analysis",
		MinPrice:          4000,
		MaxPrice:          45000,
		MinDays:           3,
		MaxDays:           30,
		UrgencyMultiplier: 1.5,
		Skills:            []string{"Python", "Pandas", "SQL", "Excel", "Power BI"},
	},
	"content-writing": {
		Slug:              "content-writing",
		Title:             "Content Writing",
		MinPrice:          1000,
		MaxPrice:          15000,
		MinDays:           1,
		MaxDays:           14,
		UrgencyMultiplier: 1.2,
		Skills:            []string{"Content Writing", "SEO", "Copywriting", "Blogging"},
	},
}

// ServiceFor returns the config for a service slug, falling back to
// web-development for unknown keys.
func ServiceFor(slug string) ServiceConfig {
	if cfg, ok := Services[slug]; ok {
		return cfg
	}
	return Services[DefaultService]
}

// ValidService returns true if the given slug is a known service category.
func ValidService(slug string) bool {
	_, ok := Services[slug]
	return ok
}

// EstimatedPrice returns the advisory price shown next to the quoted price.
// Urgent requests are scaled by the category multiplier and clamped to the
// category maximum; normal requests pass through unchanged. The estimate is
// display-only and never sent to the server.
func EstimatedPrice(price float64, urgency Urgency, cfg ServiceConfig) float64 {
	if urgency != UrgencyUrgent {
		return price
	}
	est := price * cfg.UrgencyMultiplier
	if est > float64(cfg.MaxPrice) {
		return float64(cfg.MaxPrice)
	}
	return est
}
