package models

// ProfileRecord is the structured career data collected from the intake
// form. It lives in session state and is copied into UserAccount.Portfolio
// when the user saves. Work experience, education and projects hold a
// single entry each, matching the intake form.
type ProfileRecord struct {
	PersonalInfo   PersonalInfo   `bson:"personal_info" json:"personal_info"`
	CareerGoals    CareerGoals    `bson:"career_goals" json:"career_goals"`
	WorkExperience WorkExperience `bson:"work_experience" json:"work_experience"`
	Education      Education      `bson:"education" json:"education"`
	Skills         Skills         `bson:"skills" json:"skills"`
	Projects       Project        `bson:"projects" json:"projects"`
	Certifications []string       `bson:"certifications" json:"certifications"`
}

type PersonalInfo struct {
	FullName  string `bson:"full_name" json:"full_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Location  string `bson:"location" json:"location"`
	LinkedIn  string `bson:"linkedin" json:"linkedin"`
	GitHub    string `bson:"github" json:"github"`
	Portfolio string `bson:"portfolio" json:"portfolio"`
}

type CareerGoals struct {
	TargetPosition  string `bson:"target_position" json:"target_position"`
	TargetIndustry  string `bson:"target_industry" json:"target_industry"`
	ExperienceLevel string `bson:"experience_level" json:"experience_level"`
}

type WorkExperience struct {
	Company          string `bson:"company" json:"company"`
	JobTitle         string `bson:"job_title" json:"job_title"`
	StartDate        string `bson:"start_date" json:"start_date"`
	EndDate          string `bson:"end_date" json:"end_date"`
	CurrentJob       bool   `bson:"current_job" json:"current_job"`
	Responsibilities string `bson:"responsibilities" json:"responsibilities"`
}

type Education struct {
	Institution    string `bson:"institution" json:"institution"`
	Degree         string `bson:"degree" json:"degree"`
	GraduationDate string `bson:"graduation_date" json:"graduation_date"`
	GPA            string `bson:"gpa" json:"gpa"`
}

type Skills struct {
	Technical []string `bson:"technical" json:"technical"`
	Soft      []string `bson:"soft" json:"soft"`
}

type Project struct {
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	Technologies string `bson:"technologies" json:"technologies"`
	Link         string `bson:"link" json:"link"`
}

// IsZero reports whether the record carries no submitted data. A freshly
// registered account persists an empty portfolio, and the generation
// endpoints refuse to run until intake has filled one in.
func (r ProfileRecord) IsZero() bool {
	return r.PersonalInfo.FullName == "" &&
		r.PersonalInfo.Email == "" &&
		r.CareerGoals.TargetPosition == ""
}
