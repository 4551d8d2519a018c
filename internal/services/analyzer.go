package services

import (
	"context"
	"encoding/json"
	"strings"

	"resumeslide/internal/apperrors"
	"resumeslide/internal/models"
)

// AnalyzerService normalizes extracted resume text into a SlideResult via
// one model call. A transport failure, an empty or non-JSON body, or a body
// that does not match the declared shape all surface as AnalysisError.
type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText string) (*models.SlideResult, error)
}

type analyzerService struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(generator TextGenerator) AnalyzerService {
	return &analyzerService{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *analyzerService) Analyze(ctx context.Context, resumeText string) (*models.SlideResult, error) {
	systemInstruction, userMessage := a.promptBuilder.BuildAnalysisPrompt(resumeText)

	response, err := a.generator.GenerateJSON(ctx, systemInstruction, userMessage)
	if err != nil {
		return nil, &apperrors.AnalysisError{Message: "model call failed", Err: err}
	}

	return parseSlideResult(response)
}

// parseSlideResult strips any markdown fencing the model wrapped around its
// output, then unmarshals and validates it against the SlideResult shape.
func parseSlideResult(response string) (*models.SlideResult, error) {
	jsonDoc := extractJSON(response)

	var result models.SlideResult
	if err := json.Unmarshal([]byte(jsonDoc), &result); err != nil {
		return nil, &apperrors.AnalysisError{Message: "model returned invalid JSON", Err: err}
	}

	if err := ValidateSlideResult(jsonDoc); err != nil {
		return nil, &apperrors.AnalysisError{Message: "model response does not match slide shape", Err: err}
	}

	return &result, nil
}

// extractJSON trims markdown code fences and anything outside the outermost
// JSON object boundaries.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
