// Package domainswitch advises a candidate on moving into a different
// career domain based on their stored profile.
package domainswitch

import (
	"fmt"
	"strings"
)

// Level is the closed 3-step priority/demand scale the contract uses.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// ParseLevel normalizes a generator-provided level into the closed set.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelHigh:
		return LevelHigh, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelLow:
		return LevelLow, nil
	default:
		return "", fmt.Errorf("unknown level %q", s)
	}
}

// Difficulty is the closed transition-difficulty scale.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyModerate:
		return DifficultyModerate, nil
	case DifficultyChallenging:
		return DifficultyChallenging, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

type SkillToDevelop struct {
	Skill              string   `json:"skill"`
	Importance         Level    `json:"importance"`
	WhyThisMatters     string   `json:"why_this_matters"`
	SuggestedResources []string `json:"suggested_resources"`
}

type RoadmapStep struct {
	Step          int    `json:"step"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
}

type JobRole struct {
	Role          string `json:"role"`
	DemandLevel   Level  `json:"demand_level"`
	AverageSalary string `json:"average_salary"`
	Description   string `json:"description"`
}

// Analysis is the full advisory returned to the caller verbatim; unlike the
// extraction result it is never persisted.
type Analysis struct {
	TargetDomain            string           `json:"target_domain"`
	IsSwitchRecommended     bool             `json:"is_switch_recommended"`
	RecommendationSummary   string           `json:"recommendation_summary"`
	CurrentStrengths        []string         `json:"current_strengths"`
	TransferableSkills      []string         `json:"transferable_skills"`
	SkillsToDevelop         []SkillToDevelop `json:"skills_to_develop"`
	LearningRoadmap         []RoadmapStep    `json:"learning_roadmap"`
	JobOpportunities        []JobRole        `json:"job_opportunities"`
	MarketOutlook           string           `json:"market_outlook"`
	TransitionDifficulty    Difficulty       `json:"transition_difficulty"`
	EstimatedTransitionTime string           `json:"estimated_transition_time"`
	LongTermGrowthPotential string           `json:"long_term_growth_potential"`
	FinalGuidance           string           `json:"final_guidance"`
}

// Normalize canonicalizes the closed string scales; an unknown value means
// the generator broke the contract.
func (a *Analysis) Normalize() error {
	for i := range a.SkillsToDevelop {
		lvl, err := ParseLevel(string(a.SkillsToDevelop[i].Importance))
		if err != nil {
			return fmt.Errorf("skills_to_develop[%d].importance: %w", i, err)
		}
		a.SkillsToDevelop[i].Importance = lvl
	}
	for i := range a.JobOpportunities {
		lvl, err := ParseLevel(string(a.JobOpportunities[i].DemandLevel))
		if err != nil {
			return fmt.Errorf("job_opportunities[%d].demand_level: %w", i, err)
		}
		a.JobOpportunities[i].DemandLevel = lvl
	}
	diff, err := ParseDifficulty(string(a.TransitionDifficulty))
	if err != nil {
		return fmt.Errorf("transition_difficulty: %w", err)
	}
	a.TransitionDifficulty = diff
	return nil
}
