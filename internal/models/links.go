package models

// SimulatedProfile is the payload produced by the link analyzers. The
// analyzers are simulations that return representative sample data; the
// shape is real so a future integration can fill it from live APIs.
type SimulatedProfile struct {
	Skills               []string `json:"skills,omitempty"`
	Experience           string   `json:"experience,omitempty"`
	Education            string   `json:"education,omitempty"`
	Certifications       []string `json:"certifications,omitempty"`
	Summary              string   `json:"summary,omitempty"`
	ProgrammingLanguages []string `json:"programming_languages,omitempty"`
	Projects             []string `json:"projects,omitempty"`
	Technologies         []string `json:"technologies,omitempty"`
	Activity             string   `json:"activity,omitempty"`
}

// LinksData holds analyzer output for whichever profile URLs the user
// supplied. Recomputed on every intake submission, never persisted.
type LinksData struct {
	LinkedIn *SimulatedProfile `json:"linkedin,omitempty"`
	GitHub   *SimulatedProfile `json:"github,omitempty"`
}

// Empty reports whether no analyzer produced data.
func (l LinksData) Empty() bool {
	return l.LinkedIn == nil && l.GitHub == nil
}
