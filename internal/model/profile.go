package model

import "time"

// Profile is the site owner's portfolio profile. The first profile in storage is the
// canonical resume owner.
type Profile struct {
	ID                      string    `json:"id"`
	FirstName               string    `json:"first_name" validate:"max=150"`
	LastName                string    `json:"last_name" validate:"max=150"`
	Email                   string    `json:"email" validate:"omitempty,email,max=254"`
	Title                   *string   `json:"title" validate:"omitempty,max=250"`
	Biography               string    `json:"biography"`
	AvatarKey               *string   `json:"avatar"`
	ResumeKey               *string   `json:"resume"`
	ResumePasswordHash      string    `json:"-"`
	WorkKey                 *string   `json:"work"`
	WelcomeSummary          string    `json:"welcome_summary"`
	IntroSummary            string    `json:"intro_summary"`
	ResumeSummary           string    `json:"resume_summary"`
	AcademicProjectsSummary string    `json:"academic_projects_summary"`
	SideProjectsSummary     string    `json:"side_projects_summary"`
	ContactSummary          string    `json:"contact_summary"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// FullName returns "First Last".
func (p *Profile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// HasResume reports whether a resume object is attached.
func (p *Profile) HasResume() bool {
	return p.ResumeKey != nil && *p.ResumeKey != ""
}

// ApplyDefaults fills empty copy fields with the site defaults.
func (p *Profile) ApplyDefaults() {
	setDefault(&p.Biography, DefaultBiography)
	setDefault(&p.WelcomeSummary, DefaultWelcomeSummary)
	setDefault(&p.IntroSummary, DefaultIntroSummary)
	setDefault(&p.ResumeSummary, DefaultResumeSummary)
	setDefault(&p.AcademicProjectsSummary, DefaultAcademicProjectsSummary)
	setDefault(&p.SideProjectsSummary, DefaultSideProjectsSummary)
	setDefault(&p.ContactSummary, DefaultContactSummary)
}

func setDefault(field *string, def string) {
	if *field == "" {
		*field = def
	}
}
