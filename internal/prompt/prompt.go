// Package prompt assembles the system and user messages sent to the
// inference provider. The four instruction templates are embedded and
// parsed once at package init; assembly is pure interpolation with no
// conditional content.
package prompt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"portfoliomaker/internal/models"
)

// Kind selects one of the four fixed instruction templates.
type Kind string

const (
	KindResumeWriter      Kind = "resume_writer"
	KindCoverLetter       Kind = "cover_letter"
	KindPortfolioAnalyzer Kind = "portfolio_analyzer"
	KindSkillEnhancer     Kind = "skill_enhancer"
)

//go:embed templates/resume_writer.md
var resumeWriterRaw string

//go:embed templates/cover_letter.md
var coverLetterRaw string

//go:embed templates/portfolio_analyzer.md
var portfolioAnalyzerRaw string

//go:embed templates/skill_enhancer.md
var skillEnhancerRaw string

var systemTemplates = map[Kind]*template.Template{
	KindResumeWriter:      template.Must(template.New(string(KindResumeWriter)).Parse(resumeWriterRaw)),
	KindCoverLetter:       template.Must(template.New(string(KindCoverLetter)).Parse(coverLetterRaw)),
	KindPortfolioAnalyzer: template.Must(template.New(string(KindPortfolioAnalyzer)).Parse(portfolioAnalyzerRaw)),
	KindSkillEnhancer:     template.Must(template.New(string(KindSkillEnhancer)).Parse(skillEnhancerRaw)),
}

// Params carries the interpolation points. Fields a template does not
// reference are ignored; missing optionals render as empty text.
type Params struct {
	UserData        string
	TargetPosition  string
	CompanyName     string
	JobDescription  string
	Links           string
	OriginalContent string
}

// System renders the instruction template for kind.
func System(kind Kind, p Params) (string, error) {
	tpl, ok := systemTemplates[kind]
	if !ok {
		return "", fmt.Errorf("unknown prompt kind %q", kind)
	}
	var b strings.Builder
	if err := tpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", kind, err)
	}
	return b.String(), nil
}

// SerializeProfile renders the record as indented JSON, the readable
// structured form the templates expect under "User Profile".
func SerializeProfile(record models.ProfileRecord) string {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// SerializeLinks renders analyzer output as indented JSON, or empty text
// when no links were analyzed.
func SerializeLinks(links models.LinksData) string {
	if links.Empty() {
		return ""
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// ResumeUser builds the user message for a resume generation.
func ResumeUser(userData, links, style, targetCompany, jobDescription string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Data: %s\n", userData)
	fmt.Fprintf(&b, "Links Data: %s\n", links)
	fmt.Fprintf(&b, "Resume Style: %s\n", style)
	fmt.Fprintf(&b, "Target Company: %s\n", targetCompany)
	fmt.Fprintf(&b, "Job Description: %s\n", jobDescription)
	return b.String()
}

// CoverLetterUser builds the user message for a cover letter generation.
func CoverLetterUser(userData, company, hiringManager, jobTitle, jobDescription, tone, length string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Data: %s\n", userData)
	fmt.Fprintf(&b, "Company: %s\n", company)
	fmt.Fprintf(&b, "Hiring Manager: %s\n", hiringManager)
	fmt.Fprintf(&b, "Job Title: %s\n", jobTitle)
	fmt.Fprintf(&b, "Job Description: %s\n", jobDescription)
	fmt.Fprintf(&b, "Tone: %s\n", tone)
	fmt.Fprintf(&b, "Length: %s\n", length)
	return b.String()
}

// AnalyzerUser builds the user message for a portfolio analysis.
func AnalyzerUser(userData, links string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Data: %s\n", userData)
	fmt.Fprintf(&b, "Provided Links: %s\n", links)
	return b.String()
}
