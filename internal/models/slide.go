package models

// SlideResult is the normalized slide payload returned by the analysis
// pipeline. Field names match the wire format consumed by the slide
// renderer; profile strings are empty when unknown, never null.
type SlideResult struct {
	CandidateProfile  CandidateProfile   `json:"candidate_profile"`
	SlideContent      SlideContent       `json:"slide_content"`
	DesignSuggestions *DesignSuggestions `json:"design_suggestions,omitempty"`
}

type CandidateProfile struct {
	FullName    string      `json:"full_name"`
	TargetTitle string      `json:"target_title"`
	Location    string      `json:"location"`
	ContactInfo ContactInfo `json:"contact_info"`
}

type ContactInfo struct {
	Email     string `json:"email"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type SlideContent struct {
	ProfessionalSummary  string                `json:"professional_summary"`
	CoreCompetencies     []string              `json:"core_competencies"`
	ExperienceHighlights []ExperienceHighlight `json:"experience_highlights"`
	EducationShort       []EducationShort      `json:"education_short"`
}

type ExperienceHighlight struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	BulletPoints []string `json:"bullet_points"`
}

type EducationShort struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// DesignSuggestions is optional; the model may omit it entirely.
type DesignSuggestions struct {
	SuggestedThemeColor     string `json:"suggested_theme_color"`
	CandidateSeniorityLevel string `json:"candidate_seniority_level"`
}
