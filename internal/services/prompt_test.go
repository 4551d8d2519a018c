package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	system, user := pb.BuildAnalysisPrompt("John Doe\nSoftware Engineer")

	assert.Contains(t, system, "candidate_profile")
	assert.Contains(t, system, "slide_content")
	assert.Contains(t, system, "Return ONLY valid JSON")
	assert.True(t, strings.HasPrefix(user, "Here is the resume text:\n\n"))
	assert.Contains(t, user, "John Doe\nSoftware Engineer")
}

func TestBuildAnalysisPromptNoTruncation(t *testing.T) {
	pb := NewPromptBuilder()
	long := strings.Repeat("experience ", 20000)

	_, user := pb.BuildAnalysisPrompt(long)

	assert.Contains(t, user, long)
}
