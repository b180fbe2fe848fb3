// Package content holds the fixed copy rendered by the static views: the
// menu cards and the projects/learnings sections.
package content

import "github.com/raghul07102002/holofolio/internal/nav"

// Card is one entry on the menu hub.
type Card struct {
	View  nav.View `json:"view"`
	Title string   `json:"title"`
}

// MenuCards returns the six detail cards in display order.
func MenuCards() []Card {
	return []Card{
		{View: nav.ViewAbout, Title: "About Me"},
		{View: nav.ViewResume, Title: "Resume"},
		{View: nav.ViewCoverLetter, Title: "Cover Letter"},
		{View: nav.ViewProjects, Title: "Projects"},
		{View: nav.ViewAchievements, Title: "Achievements"},
		{View: nav.ViewLearnings, Title: "Learnings"},
	}
}

// Section is one titled block on the projects or learnings view.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Projects returns the fixed project sections.
func Projects() []Section {
	return []Section{
		{
			Title:       "Identity and Access Management",
			Description: "Comprehensive IAM solutions for secure authentication and authorization",
		},
		{
			Title:       "Security Operations Centre",
			Description: "Real-time threat monitoring and incident response systems",
		},
		{
			Title:       "Vulnerability Management and Penetration Testing",
			Description: "Advanced security testing and vulnerability assessment frameworks",
		},
	}
}

// Learnings returns the fixed learning sections.
func Learnings() []Section {
	return []Section{
		{
			Title:       "Cybersecurity",
			Description: "Comprehensive cybersecurity fundamentals and advanced concepts",
		},
		{
			Title:       "Identity Access Management",
			Description: "IAM principles, protocols, and implementation strategies",
		},
		{
			Title:       "SOC",
			Description: "Security Operations Centre practices and procedures",
		},
		{
			Title:       "VAPT",
			Description: "Vulnerability Assessment and Penetration Testing methodologies",
		},
	}
}
