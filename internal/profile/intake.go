// Package profile turns raw intake form fields into a validated
// ProfileRecord.
package profile

import (
	"fmt"
	"strings"

	"portfoliomaker/internal/models"
)

// Intake is the flat request body of the profile form. Free-text list
// fields (skills, certifications) arrive as comma or newline separated
// strings and are split during Build.
type Intake struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedInURL  string `json:"linkedin"`
	GitHubURL    string `json:"github"`
	PortfolioURL string `json:"portfolio"`

	TargetPosition  string `json:"target_position"`
	TargetIndustry  string `json:"target_industry"`
	ExperienceLevel string `json:"experience_level"`

	Company          string `json:"company"`
	JobTitle         string `json:"job_title"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	CurrentJob       bool   `json:"current_job"`
	Responsibilities string `json:"responsibilities"`

	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa"`

	TechnicalSkills string `json:"technical_skills"`
	SoftSkills      string `json:"soft_skills"`

	ProjectTitle        string `json:"project_title"`
	ProjectDescription  string `json:"project_description"`
	ProjectTechnologies string `json:"project_technologies"`
	ProjectLink         string `json:"project_link"`

	Certifications string `json:"certifications"`
}

// ValidationError lists every required field the submission left blank,
// so the client can mark them all in one round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Build validates the submission and assembles the nested record.
// Returns a *ValidationError naming all missing required fields.
func (in Intake) Build() (models.ProfileRecord, error) {
	var missing []string
	for _, f := range []struct{ value, name string }{
		{in.FullName, "full_name"},
		{in.Email, "email"},
		{in.TargetPosition, "target_position"},
		{in.Institution, "institution"},
		{in.Degree, "degree"},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return models.ProfileRecord{}, &ValidationError{Fields: missing}
	}

	return models.ProfileRecord{
		PersonalInfo: models.PersonalInfo{
			FullName:  in.FullName,
			Email:     in.Email,
			Phone:     in.Phone,
			Location:  in.Location,
			LinkedIn:  in.LinkedInURL,
			GitHub:    in.GitHubURL,
			Portfolio: in.PortfolioURL,
		},
		CareerGoals: models.CareerGoals{
			TargetPosition:  in.TargetPosition,
			TargetIndustry:  in.TargetIndustry,
			ExperienceLevel: in.ExperienceLevel,
		},
		WorkExperience: models.WorkExperience{
			Company:          in.Company,
			JobTitle:         in.JobTitle,
			StartDate:        in.StartDate,
			EndDate:          in.EndDate,
			CurrentJob:       in.CurrentJob,
			Responsibilities: in.Responsibilities,
		},
		Education: models.Education{
			Institution:    in.Institution,
			Degree:         in.Degree,
			GraduationDate: in.GraduationDate,
			GPA:            in.GPA,
		},
		Skills: models.Skills{
			Technical: SplitList(in.TechnicalSkills),
			Soft:      SplitList(in.SoftSkills),
		},
		Projects: models.Project{
			Title:        in.ProjectTitle,
			Description:  in.ProjectDescription,
			Technologies: in.ProjectTechnologies,
			Link:         in.ProjectLink,
		},
		Certifications: SplitList(in.Certifications),
	}, nil
}

// SplitList splits a comma or newline separated field into an ordered
// list. Entries are trimmed, empties dropped, and duplicates collapse
// onto their first occurrence.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
