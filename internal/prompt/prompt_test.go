package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfoliomaker/internal/models"
)

func minimalProfile() models.ProfileRecord {
	record := models.ProfileRecord{}
	record.PersonalInfo.FullName = "Jane Doe"
	record.CareerGoals.TargetPosition = "Engineer"
	return record
}

func TestSystemResumeWriter(t *testing.T) {
	record := minimalProfile()
	out, err := System(KindResumeWriter, Params{
		UserData:       SerializeProfile(record),
		TargetPosition: record.CareerGoals.TargetPosition,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out,
		"You are an expert resume writer and career coach. Your task is to create professional, ATS-friendly resumes that highlight the user's strengths and achievements."))
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Target Position: Engineer")
	assert.Contains(t, out, "Ensure ATS (Applicant Tracking System) compatibility")
	assert.Contains(t, out, "1. Professional Summary")
	assert.NotContains(t, out, "{{")
}

func TestSystemCoverLetter(t *testing.T) {
	out, err := System(KindCoverLetter, Params{
		UserData:       SerializeProfile(minimalProfile()),
		TargetPosition: "Engineer",
		CompanyName:    "Acme Corp",
		JobDescription: "Build distributed systems.",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You are an expert cover letter writer."))
	assert.Contains(t, out, "Company: Acme Corp")
	assert.Contains(t, out, "Job Description: Build distributed systems.")
	assert.Contains(t, out, "Generate a professional cover letter in markdown format.")
}

func TestSystemPortfolioAnalyzer(t *testing.T) {
	links := models.LinksData{
		GitHub: &models.SimulatedProfile{Technologies: []string{"React"}},
	}
	out, err := System(KindPortfolioAnalyzer, Params{
		UserData: SerializeProfile(minimalProfile()),
		Links:    SerializeLinks(links),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You are a portfolio analysis expert."))
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "Provide a comprehensive analysis in JSON format for resume generation.")
}

func TestSystemSkillEnhancer(t *testing.T) {
	out, err := System(KindSkillEnhancer, Params{
		OriginalContent: "Responsible for developing web applications",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You are a career development expert."))
	assert.Contains(t, out, "Original Content:\nResponsible for developing web applications")
	assert.Contains(t, out, "Enhanced Version:")
}

func TestSystemUnknownKind(t *testing.T) {
	_, err := System(Kind("poetry"), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prompt kind")
}

func TestSystemMissingOptionalsRenderEmpty(t *testing.T) {
	out, err := System(KindCoverLetter, Params{})
	require.NoError(t, err)
	assert.Contains(t, out, "Company: \n")
}

func TestSerializeProfile(t *testing.T) {
	out := SerializeProfile(minimalProfile())
	assert.Contains(t, out, `"full_name": "Jane Doe"`)
	assert.Contains(t, out, `"target_position": "Engineer"`)
}

func TestSerializeLinks(t *testing.T) {
	assert.Empty(t, SerializeLinks(models.LinksData{}))

	links := models.LinksData{
		LinkedIn: &models.SimulatedProfile{Skills: []string{"SQL"}},
	}
	out := SerializeLinks(links)
	assert.Contains(t, out, `"linkedin"`)
	assert.Contains(t, out, `"SQL"`)
	assert.NotContains(t, out, `"github"`)
}

func TestUserPromptBuilders(t *testing.T) {
	resume := ResumeUser("{}", "{}", "Modern Professional", "Acme Corp", "JD text")
	assert.Contains(t, resume, "Resume Style: Modern Professional")
	assert.Contains(t, resume, "Target Company: Acme Corp")

	letter := CoverLetterUser("{}", "Acme Corp", "Alex Smith", "Engineer", "JD text", "Professional", "Standard")
	assert.Contains(t, letter, "Hiring Manager: Alex Smith")
	assert.Contains(t, letter, "Tone: Professional")
	assert.Contains(t, letter, "Length: Standard")

	analysis := AnalyzerUser("{}", "{}")
	assert.Contains(t, analysis, "User Data: {}")
	assert.Contains(t, analysis, "Provided Links: {}")
}
