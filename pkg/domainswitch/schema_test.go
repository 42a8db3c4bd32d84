package domainswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyamitra/backend/pkg/llm"
)

const validAnalysis = `{
  "target_domain": "Data Science & Analytics",
  "is_switch_recommended": true,
  "recommendation_summary": "Strong quantitative background makes this switch viable.",
  "current_strengths": ["Python", "SQL"],
  "transferable_skills": ["Data modeling", "Statistics"],
  "skills_to_develop": [
    {
      "skill": "Machine Learning",
      "importance": "High",
      "why_this_matters": "Core requirement for analytics roles.",
      "suggested_resources": ["Hands-On ML", "fast.ai"]
    }
  ],
  "learning_roadmap": [
    {
      "step": 1,
      "title": "Foundations",
      "description": "Refresh linear algebra and statistics.",
      "estimated_time": "4 weeks"
    }
  ],
  "job_opportunities": [
    {
      "role": "Data Analyst",
      "demand_level": "high",
      "average_salary": "8-12 LPA",
      "description": "Entry path into the domain."
    }
  ],
  "market_outlook": "Growing steadily.",
  "transition_difficulty": "Moderate",
  "estimated_transition_time": "6-9 months",
  "long_term_growth_potential": "Excellent",
  "final_guidance": "Start with a portfolio project."
}`

func TestDecodeAnalysis(t *testing.T) {
	a, err := DecodeAnalysis(validAnalysis)
	require.NoError(t, err)

	assert.Equal(t, "Data Science & Analytics", a.TargetDomain)
	assert.True(t, a.IsSwitchRecommended)
	require.Len(t, a.SkillsToDevelop, 1)
	assert.Equal(t, LevelHigh, a.SkillsToDevelop[0].Importance)
	require.Len(t, a.JobOpportunities, 1)
	assert.Equal(t, LevelHigh, a.JobOpportunities[0].DemandLevel)
	assert.Equal(t, DifficultyModerate, a.TransitionDifficulty)
}

func TestDecodeAnalysisMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"Not JSON", "here is my advice"},
		{"Empty object", "{}"},
		{"Missing guidance", `{"target_domain":"AI/ML"}`},
		{"Boolean as string", `{"target_domain":"AI/ML","is_switch_recommended":"yes"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAnalysis(tc.raw)
			assert.ErrorIs(t, err, llm.ErrMalformed)
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("  HIGH ")
	require.NoError(t, err)
	assert.Equal(t, LevelHigh, lvl)

	_, err = ParseLevel("critical")
	assert.Error(t, err)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("Challenging")
	require.NoError(t, err)
	assert.Equal(t, DifficultyChallenging, d)

	_, err = ParseDifficulty("impossible")
	assert.Error(t, err)
}
