package services

import "fmt"

// systemInstructionV1 is the fixed instruction sent with every analysis. It
// spells out the target JSON shape in natural language; the length limits it
// asks for are requested of the model, not enforced downstream.
const systemInstructionV1 = `You are an expert resume analyzer and presentation designer. Your task is to extract key information from a resume and structure it into a JSON format suitable for a professional slide.

Output JSON Schema:
{
  "candidate_profile": {
    "full_name": "String",
    "target_title": "String",
    "location": "String",
    "contact_info": { "email": "String", "linkedin": "String", "portfolio": "String" }
  },
  "slide_content": {
    "professional_summary": "String (Max 2 sentences, punchy and impressive)",
    "core_competencies": ["String", "String", "String" ... max 8 skills],
    "experience_highlights": [
      { "company": "String", "role": "String", "duration": "String", "bullet_points": ["String", "String"] }
      ... max 3 roles
    ],
    "education_short": [ { "degree": "String", "institution": "String", "year": "String" } ... max 2 items ]
  }
}
Rules: Return ONLY valid JSON, no markdown fencing. Use empty strings for unknown fields, never null.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt returns the system instruction and the user message
// for one analysis. The resume text is passed through whole, however long.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText string) (string, string) {
	return systemInstructionV1, fmt.Sprintf("Here is the resume text:\n\n%s", resumeText)
}
