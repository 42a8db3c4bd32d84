package domainswitch

import (
	"encoding/json"

	"github.com/vidyamitra/backend/pkg/contract"
	"github.com/vidyamitra/backend/pkg/llm"
)

const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": [
    "target_domain",
    "is_switch_recommended",
    "recommendation_summary",
    "current_strengths",
    "transferable_skills",
    "skills_to_develop",
    "learning_roadmap",
    "job_opportunities",
    "market_outlook",
    "transition_difficulty",
    "estimated_transition_time",
    "long_term_growth_potential",
    "final_guidance"
  ],
  "properties": {
    "target_domain": {"type": "string"},
    "is_switch_recommended": {"type": "boolean"},
    "recommendation_summary": {"type": "string"},
    "current_strengths": {
      "type": "array",
      "items": {"type": "string"}
    },
    "transferable_skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "skills_to_develop": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "importance", "why_this_matters", "suggested_resources"],
        "properties": {
          "skill": {"type": "string"},
          "importance": {"type": "string"},
          "why_this_matters": {"type": "string"},
          "suggested_resources": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    },
    "learning_roadmap": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["step", "title", "description", "estimated_time"],
        "properties": {
          "step": {"type": "integer"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "estimated_time": {"type": "string"}
        }
      }
    },
    "job_opportunities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["role", "demand_level", "average_salary", "description"],
        "properties": {
          "role": {"type": "string"},
          "demand_level": {"type": "string"},
          "average_salary": {"type": "string"},
          "description": {"type": "string"}
        }
      }
    },
    "market_outlook": {"type": "string"},
    "transition_difficulty": {"type": "string"},
    "estimated_transition_time": {"type": "string"},
    "long_term_growth_potential": {"type": "string"},
    "final_guidance": {"type": "string"}
  }
}`

var analysisContract = contract.MustCompile(analysisSchema)

// DecodeAnalysis validates a raw generator reply against the advisory
// contract and normalizes the closed scales. Any contract breach maps to
// llm.ErrMalformed.
func DecodeAnalysis(raw string) (Analysis, error) {
	doc := []byte(raw)
	if !json.Valid(doc) {
		return Analysis{}, llm.ErrMalformed
	}
	if verr := analysisContract.Validate(doc); verr != nil {
		return Analysis{}, llm.ErrMalformed
	}
	var a Analysis
	if err := json.Unmarshal(doc, &a); err != nil {
		return Analysis{}, llm.ErrMalformed
	}
	if err := a.Normalize(); err != nil {
		return Analysis{}, llm.ErrMalformed
	}
	return a, nil
}
