package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntake() Intake {
	return Intake{
		FullName:       "Jane Doe",
		Email:          "jane@example.com",
		TargetPosition: "Software Engineer",
		Institution:    "State University",
		Degree:         "BSc Computer Science",
	}
}

func TestBuildValid(t *testing.T) {
	in := validIntake()
	in.TechnicalSkills = "Python, Go"
	in.SoftSkills = "Leadership"
	in.Certifications = "AWS Certified Solutions Architect\nGoogle Data Analytics Professional Certificate"
	in.CurrentJob = true

	record, err := in.Build()
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", record.PersonalInfo.FullName)
	assert.Equal(t, "Software Engineer", record.CareerGoals.TargetPosition)
	assert.Equal(t, []string{"Python", "Go"}, record.Skills.Technical)
	assert.Equal(t, []string{"Leadership"}, record.Skills.Soft)
	assert.Equal(t, []string{
		"AWS Certified Solutions Architect",
		"Google Data Analytics Professional Certificate",
	}, record.Certifications)
	assert.True(t, record.WorkExperience.CurrentJob)
	assert.False(t, record.IsZero())
}

func TestBuildReportsAllMissingFields(t *testing.T) {
	in := Intake{Email: "jane@example.com", Degree: "BSc"}

	_, err := in.Build()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"full_name", "target_position", "institution"}, verr.Fields)
	assert.Contains(t, verr.Error(), "full_name")
}

func TestBuildRejectsWhitespaceOnlyFields(t *testing.T) {
	in := validIntake()
	in.FullName = "   "

	_, err := in.Build()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"full_name"}, verr.Fields)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "whitespace only", in: "  \n ", want: nil},
		{name: "single", in: "Python", want: []string{"Python"}},
		{name: "comma separated with duplicate", in: "Python, SQL,  SQL ", want: []string{"Python", "SQL"}},
		{name: "newline separated", in: "AWS Certified\nCKA\n\nCKA", want: []string{"AWS Certified", "CKA"}},
		{name: "mixed separators", in: "Go,Rust\nPython", want: []string{"Go", "Rust", "Python"}},
		{name: "trailing separators", in: "Go,,\n", want: []string{"Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}
