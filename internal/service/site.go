package service

import (
	"context"

	"portfolio/internal/model"
)

// Site groups the content services behind the public pages and the profile overview.
type Site struct {
	Profiles    ProfileService
	Educations  *Catalog[model.Education]
	Experiences *Catalog[model.Experience]
	Leaderships *Catalog[model.Leadership]
	Courses     *Catalog[model.Course]
	Skills      *Catalog[model.Skill]
	MyContacts  *Catalog[model.MyContact]
	Feedbacks   *Catalog[model.Feedback]
	Portfolios  *PortfolioCatalog
	Images      *Catalog[model.ProjectImage]
	Videos      *Catalog[model.Video]
}

// ProfileOverview is a profile with every active item of the site attached. The site
// has a single owner, so all active content belongs to every profile.
type ProfileOverview struct {
	Profile     *model.Profile     `json:"profile"`
	Educations  []model.Education  `json:"education"`
	Experiences []model.Experience `json:"experience"`
	Leaderships []model.Leadership `json:"leadership"`
	Courses     []model.Course     `json:"courses"`
	Skills      []model.Skill      `json:"skills"`
	Portfolios  []model.Portfolio  `json:"portfolio"`
	MyContacts  []model.MyContact  `json:"contacts"`
	Feedbacks   []model.Feedback   `json:"feedback"`
	Counts      map[string]int     `json:"counts"`
}

// Overview loads the profile and the active content lists.
func (s *Site) Overview(ctx context.Context, profileID string) (*ProfileOverview, error) {
	p, err := s.Profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	o := &ProfileOverview{Profile: p}

	if o.Educations, err = s.Educations.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Experiences, err = s.Experiences.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Leaderships, err = s.Leaderships.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Courses, err = s.Courses.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Skills, err = s.Skills.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Portfolios, err = s.Portfolios.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.MyContacts, err = s.MyContacts.ListActive(ctx); err != nil {
		return nil, err
	}
	if o.Feedbacks, err = s.Feedbacks.ListActive(ctx); err != nil {
		return nil, err
	}

	o.Counts = map[string]int{
		"education":  len(o.Educations),
		"experience": len(o.Experiences),
		"leadership": len(o.Leaderships),
		"courses":    len(o.Courses),
		"skills":     len(o.Skills),
		"portfolio":  len(o.Portfolios),
		"contacts":   len(o.MyContacts),
		"feedback":   len(o.Feedbacks),
	}
	return o, nil
}
