package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// slideResultSchema is the declared SlideResult shape. It validates structure
// and types only; the soft length limits (sentence counts, array caps) are
// requested in the prompt and deliberately not enforced here.
const slideResultSchema = `{
  "type": "object",
  "required": ["candidate_profile", "slide_content"],
  "properties": {
    "candidate_profile": {
      "type": "object",
      "required": ["full_name", "target_title", "location", "contact_info"],
      "properties": {
        "full_name": {"type": "string"},
        "target_title": {"type": "string"},
        "location": {"type": "string"},
        "contact_info": {
          "type": "object",
          "required": ["email", "linkedin", "portfolio"],
          "properties": {
            "email": {"type": "string"},
            "linkedin": {"type": "string"},
            "portfolio": {"type": "string"}
          }
        }
      }
    },
    "slide_content": {
      "type": "object",
      "required": ["professional_summary", "core_competencies", "experience_highlights", "education_short"],
      "properties": {
        "professional_summary": {"type": "string"},
        "core_competencies": {
          "type": "array",
          "items": {"type": "string"}
        },
        "experience_highlights": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["company", "role", "duration", "bullet_points"],
            "properties": {
              "company": {"type": "string"},
              "role": {"type": "string"},
              "duration": {"type": "string"},
              "bullet_points": {"type": "array", "items": {"type": "string"}}
            }
          }
        },
        "education_short": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["degree", "institution", "year"],
            "properties": {
              "degree": {"type": "string"},
              "institution": {"type": "string"},
              "year": {"type": "string"}
            }
          }
        }
      }
    },
    "design_suggestions": {
      "type": "object",
      "properties": {
        "suggested_theme_color": {"type": "string"},
        "candidate_seniority_level": {"type": "string"}
      }
    }
  }
}`

// ValidateSlideResult checks a parsed model response against the declared
// SlideResult shape.
func ValidateSlideResult(jsonDoc string) error {
	schemaLoader := gojsonschema.NewStringLoader(slideResultSchema)
	docLoader := gojsonschema.NewStringLoader(jsonDoc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
