package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"portfolio/internal/model"
	"portfolio/internal/repository"
)

var educationTable = table[model.Education]{
	name:         "educations",
	columns:      []string{"degree", "school", "major", "minor", "focus_area", "is_active", "date", "year", "description"},
	orderBy:      "date DESC NULLS LAST, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Education, error) {
		var e model.Education
		if err := s.Scan(&e.ID, &e.Degree, &e.School, &e.Major, &e.Minor, &e.FocusArea,
			&e.IsActive, &e.Date, &e.Year, &e.Description); err != nil {
			return nil, err
		}
		return &e, nil
	},
	values: func(e *model.Education) []any {
		return []any{e.Degree, e.School, e.Major, e.Minor, e.FocusArea, e.IsActive, e.Date, e.Year, e.Description}
	},
}

var skillTable = table[model.Skill]{
	name:         "skills",
	columns:      []string{"name", "image_key", "rating", "is_key_skill", "is_hard_skill", "is_soft_skill", "is_active", "category"},
	orderBy:      "name, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Skill, error) {
		var k model.Skill
		if err := s.Scan(&k.ID, &k.Name, &k.ImageKey, &k.Rating, &k.IsKeySkill, &k.IsHardSkill,
			&k.IsSoftSkill, &k.IsActive, &k.Category); err != nil {
			return nil, err
		}
		return &k, nil
	},
	values: func(k *model.Skill) []any {
		return []any{k.Name, k.ImageKey, k.Rating, k.IsKeySkill, k.IsHardSkill, k.IsSoftSkill, k.IsActive, k.Category}
	},
}

var courseTable = table[model.Course]{
	name:         "courses",
	columns:      []string{"name", "is_active", "date", "description"},
	orderBy:      "date DESC NULLS LAST, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Course, error) {
		var c model.Course
		if err := s.Scan(&c.ID, &c.Name, &c.IsActive, &c.Date, &c.Description); err != nil {
			return nil, err
		}
		return &c, nil
	},
	values: func(c *model.Course) []any {
		return []any{c.Name, c.IsActive, c.Date, c.Description}
	},
}

var leadershipTable = table[model.Leadership]{
	name:         "leaderships",
	columns:      []string{"name", "is_active", "date", "description"},
	orderBy:      "date DESC NULLS LAST, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Leadership, error) {
		var l model.Leadership
		if err := s.Scan(&l.ID, &l.Name, &l.IsActive, &l.Date, &l.Description); err != nil {
			return nil, err
		}
		return &l, nil
	},
	values: func(l *model.Leadership) []any {
		return []any{l.Name, l.IsActive, l.Date, l.Description}
	},
}

var myContactTable = table[model.MyContact]{
	name:         "my_contacts",
	columns:      []string{"name", "data", "icon_key", "category", "is_active", "url"},
	orderBy:      "name, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.MyContact, error) {
		var c model.MyContact
		if err := s.Scan(&c.ID, &c.Name, &c.Data, &c.IconKey, &c.Category, &c.IsActive, &c.URL); err != nil {
			return nil, err
		}
		return &c, nil
	},
	values: func(c *model.MyContact) []any {
		return []any{c.Name, c.Data, c.IconKey, c.Category, c.IsActive, c.URL}
	},
}

var portfolioTable = table[model.Portfolio]{
	name: "portfolios",
	columns: []string{"name", "image_key", "is_active", "slug", "description", "body", "date",
		"is_side_project", "for_resume", "url", "year", "technology"},
	orderBy:      "name, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Portfolio, error) {
		var p model.Portfolio
		var tech []byte
		if err := s.Scan(&p.ID, &p.Name, &p.ImageKey, &p.IsActive, &p.Slug, &p.Description, &p.Body,
			&p.Date, &p.IsSideProject, &p.ForResume, &p.URL, &p.Year, &tech); err != nil {
			return nil, err
		}
		if len(tech) > 0 {
			p.Technology = json.RawMessage(tech)
		}
		return &p, nil
	},
	values: func(p *model.Portfolio) []any {
		var tech any
		if len(p.Technology) > 0 {
			tech = []byte(p.Technology)
		}
		return []any{p.Name, p.ImageKey, p.IsActive, p.Slug, p.Description, p.Body, p.Date,
			p.IsSideProject, p.ForResume, p.URL, p.Year, tech}
	},
}

var experienceTable = table[model.Experience]{
	name:         "experiences",
	columns:      []string{"job_title", "company_name", "location", "start_date", "end_date", "is_current", "active", "description"},
	orderBy:      "start_date DESC, id",
	activeColumn: "active",
	scan: func(s scanner) (*model.Experience, error) {
		var e model.Experience
		if err := s.Scan(&e.ID, &e.JobTitle, &e.CompanyName, &e.Location, &e.StartDate, &e.EndDate,
			&e.IsCurrent, &e.Active, &e.Description); err != nil {
			return nil, err
		}
		return &e, nil
	},
	values: func(e *model.Experience) []any {
		return []any{e.JobTitle, e.CompanyName, e.Location, e.StartDate, e.EndDate, e.IsCurrent, e.Active, e.Description}
	},
}

var feedbackTable = table[model.Feedback]{
	name:         "feedbacks",
	columns:      []string{"name", "role", "quote", "thumbnail_key", "is_active"},
	orderBy:      "name, id",
	activeColumn: "is_active",
	scan: func(s scanner) (*model.Feedback, error) {
		var f model.Feedback
		if err := s.Scan(&f.ID, &f.Name, &f.Role, &f.Quote, &f.ThumbnailKey, &f.IsActive); err != nil {
			return nil, err
		}
		return &f, nil
	},
	values: func(f *model.Feedback) []any {
		return []any{f.Name, f.Role, f.Quote, f.ThumbnailKey, f.IsActive}
	},
}

var projectImageTable = table[model.ProjectImage]{
	name:    "project_images",
	columns: []string{"portfolio_id", "name", "url", "image_key", "is_image"},
	orderBy: "name, id",
	scan: func(s scanner) (*model.ProjectImage, error) {
		var i model.ProjectImage
		if err := s.Scan(&i.ID, &i.PortfolioID, &i.Name, &i.URL, &i.ImageKey, &i.IsImage); err != nil {
			return nil, err
		}
		return &i, nil
	},
	values: func(i *model.ProjectImage) []any {
		return []any{i.PortfolioID, i.Name, i.URL, i.ImageKey, i.IsImage}
	},
}

var videoTable = table[model.Video]{
	name:    "videos",
	columns: []string{"name", "url", "video_key", "uploaded_at", "is_video"},
	orderBy: "name, id",
	scan: func(s scanner) (*model.Video, error) {
		var v model.Video
		if err := s.Scan(&v.ID, &v.Name, &v.URL, &v.VideoKey, &v.UploadedAt, &v.IsVideo); err != nil {
			return nil, err
		}
		return &v, nil
	},
	values: func(v *model.Video) []any {
		return []any{v.Name, v.URL, v.VideoKey, v.UploadedAt, v.IsVideo}
	},
}

// NewEducationPostgres creates the education repository.
func NewEducationPostgres(db *sql.DB) repository.CRUD[model.Education] {
	return newCRUD(db, educationTable)
}

// NewSkillPostgres creates the skill repository.
func NewSkillPostgres(db *sql.DB) repository.CRUD[model.Skill] {
	return newCRUD(db, skillTable)
}

// NewCoursePostgres creates the course repository.
func NewCoursePostgres(db *sql.DB) repository.CRUD[model.Course] {
	return newCRUD(db, courseTable)
}

// NewLeadershipPostgres creates the leadership repository.
func NewLeadershipPostgres(db *sql.DB) repository.CRUD[model.Leadership] {
	return newCRUD(db, leadershipTable)
}

// NewMyContactPostgres creates the external link repository.
func NewMyContactPostgres(db *sql.DB) repository.CRUD[model.MyContact] {
	return newCRUD(db, myContactTable)
}

// NewExperiencePostgres creates the experience repository.
func NewExperiencePostgres(db *sql.DB) repository.CRUD[model.Experience] {
	return newCRUD(db, experienceTable)
}

// NewFeedbackPostgres creates the feedback repository.
func NewFeedbackPostgres(db *sql.DB) repository.CRUD[model.Feedback] {
	return newCRUD(db, feedbackTable)
}

// NewProjectImagePostgres creates the project image repository.
func NewProjectImagePostgres(db *sql.DB) repository.CRUD[model.ProjectImage] {
	return newCRUD(db, projectImageTable)
}

// NewVideoPostgres creates the video repository.
func NewVideoPostgres(db *sql.DB) repository.CRUD[model.Video] {
	return newCRUD(db, videoTable)
}

// PortfolioPostgres is the project repository; it adds slug lookups to the shared CRUD.
type PortfolioPostgres struct {
	*crudPostgres[model.Portfolio]
}

var _ repository.PortfolioRepository = (*PortfolioPostgres)(nil)

// NewPortfolioPostgres creates the project repository.
func NewPortfolioPostgres(db *sql.DB) *PortfolioPostgres {
	return &PortfolioPostgres{crudPostgres: newCRUD(db, portfolioTable)}
}

// FindBySlug fetches a project by its slug.
func (r *PortfolioPostgres) FindBySlug(ctx context.Context, slug string) (*model.Portfolio, error) {
	q := "SELECT " + r.t.selectList() + " FROM " + r.t.name + " WHERE slug = $1 ORDER BY id LIMIT 1"
	return r.t.scan(r.db.QueryRowContext(ctx, q, slug))
}
