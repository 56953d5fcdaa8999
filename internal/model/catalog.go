package model

import (
	"encoding/json"
	"time"
)

// Education is one entry of educational background.
type Education struct {
	ID          string     `json:"id"`
	Degree      *string    `json:"degree" validate:"omitempty,max=250"`
	School      *string    `json:"school" validate:"omitempty,max=250"`
	Major       *string    `json:"major" validate:"omitempty,max=250"`
	Minor       *string    `json:"minor" validate:"omitempty,max=250"`
	FocusArea   *string    `json:"focus_area" validate:"omitempty,max=250"`
	IsActive    bool       `json:"is_active"`
	Date        *time.Time `json:"date"`
	Year        *string    `json:"year" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=250"`
}

// Skill is a technical or soft skill shown on the skills page.
type Skill struct {
	ID          string  `json:"id"`
	Name        *string `json:"name" validate:"omitempty,max=25"`
	ImageKey    *string `json:"image"`
	Rating      *int    `json:"rating" validate:"omitempty,min=0,max=5"`
	IsKeySkill  bool    `json:"is_key_skill"`
	IsHardSkill bool    `json:"is_hard_skill"`
	IsSoftSkill bool    `json:"is_soft_skill"`
	IsActive    bool    `json:"is_active"`
	Category    *string `json:"category" validate:"omitempty,max=70"`
}

// Course is a completed or ongoing course.
type Course struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	IsActive    bool       `json:"is_active"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description" validate:"omitempty,max=250"`
}

// Leadership is campus involvement or leadership experience. Description holds rich text.
type Leadership struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name" validate:"omitempty,max=500"`
	IsActive    bool       `json:"is_active"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
}

// MyContact is an external link of the owner (LinkedIn, GitHub, ...).
type MyContact struct {
	ID       string  `json:"id"`
	Name     *string `json:"name" validate:"omitempty,max=250"`
	Data     *string `json:"data" validate:"omitempty,max=250"`
	IconKey  *string `json:"icon"`
	Category *string `json:"category" validate:"omitempty,max=250"`
	IsActive bool    `json:"is_active"`
	URL      *string `json:"url" validate:"omitempty,url"`
}

// Portfolio is a project. Slug is derived from Name when the project is created and
// never changes afterwards.
type Portfolio struct {
	ID            string          `json:"id"`
	Name          *string         `json:"name" validate:"omitempty,max=250"`
	ImageKey      *string         `json:"image"`
	IsActive      bool            `json:"is_active"`
	Slug          string          `json:"slug"`
	Description   *string         `json:"description" validate:"omitempty,max=250"`
	Body          string          `json:"body"`
	Date          *time.Time      `json:"date"`
	IsSideProject *bool           `json:"is_side_project"`
	ForResume     bool            `json:"for_resume"`
	URL           *string         `json:"url" validate:"omitempty,url"`
	Year          *string         `json:"year" validate:"omitempty,max=70"`
	Technology    json.RawMessage `json:"technology" swaggertype:"object"`
}

// AbsoluteURL is the public detail page path.
func (p *Portfolio) AbsoluteURL() string {
	return "/portfolio/" + p.Slug
}

// Experience is a job held by the owner.
type Experience struct {
	ID          string     `json:"id"`
	JobTitle    string     `json:"job_title" validate:"required,max=250"`
	CompanyName string     `json:"company_name" validate:"required,max=250"`
	Location    *string    `json:"location" validate:"omitempty,max=250"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	IsCurrent   bool       `json:"is_current"`
	Active      bool       `json:"active"`
	Description string     `json:"description"`
}

// Feedback is a testimonial quote.
type Feedback struct {
	ID           string  `json:"id"`
	Name         *string `json:"name" validate:"omitempty,max=250"`
	Role         *string `json:"role" validate:"omitempty,max=250"`
	Quote        *string `json:"quote" validate:"omitempty,max=250"`
	ThumbnailKey *string `json:"thumbnail"`
	IsActive     bool    `json:"is_active"`
}

// ProjectImage is an image or external link attached to a portfolio project.
type ProjectImage struct {
	ID          string  `json:"id"`
	PortfolioID string  `json:"portfolio" validate:"required,uuid"`
	Name        *string `json:"name" validate:"omitempty,max=250"`
	URL         *string `json:"url" validate:"omitempty,url"`
	ImageKey    *string `json:"image"`
	IsImage     bool    `json:"is_image"`
}

// Video is an uploaded video or a link to an external one.
type Video struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required,max=100"`
	URL        *string   `json:"url" validate:"omitempty,url"`
	VideoKey   *string   `json:"video_file"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsVideo    bool      `json:"is_video"`
}
