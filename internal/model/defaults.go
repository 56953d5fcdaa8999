package model

import "strings"

// Fallback media URLs used when an entity has no uploaded file.
const (
	DefaultThumbURL  = "https://res.cloudinary.com/dh13i9dce/image/upload/v1642216413/media/logos/default-thumb_dn1xzg.png"
	DefaultAvatarURL = "https://res.cloudinary.com/dh13i9dce/image/upload/v1642216377/media/avatars/defaultprofile_vad1ub.png"
	DefaultResumeURL = "https://res.cloudinary.com/dh13i9dce/image/upload/v1657859552/media/resumes/online_resume_kn1apo.pdf"
)

// Default profile copy applied when a profile is created without it.
const (
	DefaultBiography               = "Passionate about building clean, scalable software that solves real-world problems."
	DefaultWelcomeSummary          = "My passion..."
	DefaultIntroSummary            = "Passionate about building clean, scalable solutions."
	DefaultResumeSummary           = "A quick overview of my experience, skills, and education."
	DefaultAcademicProjectsSummary = "Projects built during my studies, focused on applying core concepts."
	DefaultSideProjectsSummary     = "Independent work exploring new tools and solving real problems."
	DefaultContactSummary          = "Let’s connect. I’m open to opportunities, ideas and questions."
)

// MediaURL resolves a stored object key against base. An empty key yields fallback.
func MediaURL(base string, key *string, fallback string) string {
	if key == nil || *key == "" {
		return fallback
	}
	if base == "" {
		return "/" + strings.TrimPrefix(*key, "/")
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(*key, "/")
}
