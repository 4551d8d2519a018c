package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeslide/internal/apperrors"
)

const validResultJSON = `{
  "candidate_profile": {
    "full_name": "John Doe",
    "target_title": "Software Engineer",
    "location": "Berlin",
    "contact_info": {"email": "john@example.com", "linkedin": "", "portfolio": ""}
  },
  "slide_content": {
    "professional_summary": "Backend engineer with a decade of experience.",
    "core_competencies": ["Go", "Distributed Systems"],
    "experience_highlights": [
      {"company": "Acme", "role": "Staff Engineer", "duration": "2019-2024", "bullet_points": ["Led the platform team."]}
    ],
    "education_short": [{"degree": "BSc CS", "institution": "TU Berlin", "year": "2012"}]
  }
}`

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAnalyzeParsesValidResponse(t *testing.T) {
	gen := &stubGenerator{response: validResultJSON}
	analyzer := NewAnalyzerService(gen)

	result, err := analyzer.Analyze(context.Background(), "some resume text")

	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "John Doe", result.CandidateProfile.FullName)
	assert.Equal(t, []string{"Go", "Distributed Systems"}, result.SlideContent.CoreCompetencies)
	assert.Len(t, result.SlideContent.ExperienceHighlights, 1)
	assert.Nil(t, result.DesignSuggestions)
}

func TestAnalyzeStripsMarkdownFencing(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" + validResultJSON + "\n```"}
	analyzer := NewAnalyzerService(gen)

	result, err := analyzer.Analyze(context.Background(), "some resume text")

	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", result.CandidateProfile.TargetTitle)
}

func TestAnalyzeMalformedJSONFails(t *testing.T) {
	gen := &stubGenerator{response: `{"candidate_profile": {"full_name": "John`}
	analyzer := NewAnalyzerService(gen)

	_, err := analyzer.Analyze(context.Background(), "some resume text")

	require.Error(t, err)
	var analysisErr *apperrors.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestAnalyzeSchemaViolationFails(t *testing.T) {
	// Syntactically valid JSON, wrong shape: competencies must be an array.
	gen := &stubGenerator{response: `{
		"candidate_profile": {
			"full_name": "John Doe",
			"target_title": "Engineer",
			"location": "",
			"contact_info": {"email": "", "linkedin": "", "portfolio": ""}
		},
		"slide_content": {
			"professional_summary": "Summary.",
			"core_competencies": "Go, Kubernetes",
			"experience_highlights": [],
			"education_short": []
		}
	}`}
	analyzer := NewAnalyzerService(gen)

	_, err := analyzer.Analyze(context.Background(), "some resume text")

	require.Error(t, err)
	var analysisErr *apperrors.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestAnalyzeMissingSlideContentFails(t *testing.T) {
	gen := &stubGenerator{response: `{"candidate_profile": {"full_name": "John Doe", "target_title": "", "location": "", "contact_info": {"email": "", "linkedin": "", "portfolio": ""}}}`}
	analyzer := NewAnalyzerService(gen)

	_, err := analyzer.Analyze(context.Background(), "some resume text")

	require.Error(t, err)
	var analysisErr *apperrors.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
}

func TestAnalyzeGeneratorFailureFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	analyzer := NewAnalyzerService(gen)

	_, err := analyzer.Analyze(context.Background(), "some resume text")

	require.Error(t, err)
	var analysisErr *apperrors.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExtractJSONBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced object", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around object", `Sure, here you go: {"a": 1} hope it helps`, `{"a": 1}`},
		{"no braces", "not json at all", "not json at all"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.input))
		})
	}
}
