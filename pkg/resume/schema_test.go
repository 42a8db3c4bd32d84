package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyamitra/backend/pkg/llm"
)

const validExtraction = `{
	"candidates": {"phone": "555-0100", "bio": "Backend engineer", "resume_json": {"sections": []}, "domain": "Web Development"},
	"education": [{"degree": "B.Tech", "field_of_study": "CS", "college_name": "IIT", "university_name": null, "gpa": 8.5, "start_year": 2018, "end_year": 2022}],
	"certificates": null,
	"projects": [{"project_name": "shop", "project_description": "an online shop", "project_link": null}],
	"skills": [{"skill_name": "Go"}, {"skill_name": "Postgres"}],
	"analysis": "clear and focused",
	"resume_score": 84,
	"domain": "Web Development",
	"skill_analysis": "You are good to go.",
	"suggested_projects": "You are good to go."
}`

func TestDecodeExtractionValid(t *testing.T) {
	result, err := DecodeExtraction([]byte(validExtraction))
	require.NoError(t, err)
	assert.False(t, result.Empty())
	assert.Equal(t, "Web Development", result.Domain)
	assert.Equal(t, 84, result.ResumeScore)
	require.Len(t, result.Education, 1)
	assert.Equal(t, "B.Tech", result.Education[0].Degree)
	assert.Nil(t, result.Certificates)
	require.Len(t, result.Skills, 2)
}

func TestDecodeExtractionEmptyObjectIsNotResume(t *testing.T) {
	for _, raw := range []string{`{}`, ` {} `} {
		result, err := DecodeExtraction([]byte(raw))
		require.NoError(t, err, "empty object is a successful outcome, not an error")
		assert.True(t, result.Empty())
	}
}

func TestDecodeExtractionScoreOutOfRangeClamped(t *testing.T) {
	raw := []byte(`{
		"candidates": {"bio": "b", "domain": "AI/ML"},
		"analysis": "a", "resume_score": 150, "domain": "AI/ML",
		"skill_analysis": "s", "suggested_projects": "p"
	}`)
	result, err := DecodeExtraction(raw)
	require.NoError(t, err)
	assert.Equal(t, 100, result.ResumeScore, "out-of-range score must never pass through unchanged")
}

func TestDecodeExtractionEmptyListCoercedToAbsent(t *testing.T) {
	raw := []byte(`{
		"candidates": {"bio": "b", "domain": "AI/ML"},
		"certificates": [],
		"analysis": "a", "resume_score": 10, "domain": "AI/ML",
		"skill_analysis": "s", "suggested_projects": "p"
	}`)
	result, err := DecodeExtraction(raw)
	require.NoError(t, err)
	assert.Nil(t, result.Certificates)
}

func TestDecodeExtractionUnknownDomainFallsBack(t *testing.T) {
	raw := []byte(`{
		"candidates": {"bio": "b", "domain": "Astrology"},
		"analysis": "a", "resume_score": 10, "domain": "Astrology",
		"skill_analysis": "s", "suggested_projects": "p"
	}`)
	result, err := DecodeExtraction(raw)
	require.NoError(t, err)
	assert.Equal(t, FallbackDomain, result.Domain)
	assert.Equal(t, FallbackDomain, result.Candidate.Domain)
}

func TestDecodeExtractionMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Not JSON", "here is your resume analysis!"},
		{"JSON array", `[1, 2, 3]`},
		{"Missing required fields", `{"analysis": "a"}`},
		{"Wrong score type", `{
			"candidates": {"bio": "b", "domain": "AI/ML"},
			"analysis": "a", "resume_score": "85", "domain": "AI/ML",
			"skill_analysis": "s", "suggested_projects": "p"
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeExtraction([]byte(tt.raw))
			assert.ErrorIs(t, err, llm.ErrMalformed)
		})
	}
}
