// Package analyzer produces profile summaries for user-supplied LinkedIn
// and GitHub URLs. Both analyzers are simulations returning representative
// sample data; a real integration would need the platforms' APIs and is a
// product decision, not a code gap.
package analyzer

import "portfoliomaker/internal/models"

// AnalyzeLinkedIn returns a simulated summary for the profile URL.
// Returns nil for an empty URL.
func AnalyzeLinkedIn(profileURL string) *models.SimulatedProfile {
	if profileURL == "" {
		return nil
	}
	return &models.SimulatedProfile{
		Skills:         []string{"Python", "Machine Learning", "Data Analysis", "SQL", "Project Management"},
		Experience:     "3+ years in software development",
		Education:      "Bachelor's in Computer Science",
		Certifications: []string{"AWS Certified", "Google Data Analytics"},
		Summary:        "Experienced professional with strong technical background",
	}
}

// AnalyzeGitHub returns a simulated summary for the profile URL.
// Returns nil for an empty URL.
func AnalyzeGitHub(profileURL string) *models.SimulatedProfile {
	if profileURL == "" {
		return nil
	}
	return &models.SimulatedProfile{
		ProgrammingLanguages: []string{"Python", "JavaScript", "Java"},
		Projects:             []string{"Machine Learning Portfolio", "Web Application", "Data Analysis Tool"},
		Technologies:         []string{"React", "Node.js", "MongoDB", "TensorFlow"},
		Activity:             "Active contributor with multiple repositories",
	}
}

// Analyze runs both analyzers over whichever URLs are present.
func Analyze(linkedinURL, githubURL string) models.LinksData {
	return models.LinksData{
		LinkedIn: AnalyzeLinkedIn(linkedinURL),
		GitHub:   AnalyzeGitHub(githubURL),
	}
}
