package resume

import (
	"encoding/json"
	"fmt"

	"github.com/vidyamitra/backend/pkg/contract"
	"github.com/vidyamitra/backend/pkg/llm"
)

// extractionSchema is the structural half of the extraction contract.
// Semantic rules (score clamp, domain fallback, empty-list coercion) live in
// Coerce; bounds that would reject a fixable reply are deliberately absent.
const extractionSchema = `{
	"type": "object",
	"required": ["candidates", "analysis", "resume_score", "domain", "skill_analysis", "suggested_projects"],
	"properties": {
		"candidates": {
			"type": "object",
			"required": ["bio", "domain"],
			"properties": {
				"phone":       {"type": ["string", "null"]},
				"bio":         {"type": "string"},
				"resume_json": {"type": ["object", "null"]},
				"domain":      {"type": "string"}
			}
		},
		"education": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["degree", "college_name"],
				"properties": {
					"degree":          {"type": "string"},
					"field_of_study":  {"type": ["string", "null"]},
					"college_name":    {"type": "string"},
					"university_name": {"type": ["string", "null"]},
					"gpa":             {"type": ["number", "null"]},
					"start_year":      {"type": ["integer", "null"]},
					"end_year":        {"type": ["integer", "null"]}
				}
			}
		},
		"certificates": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["certificate_name", "certificate_issuer"],
				"properties": {
					"certificate_name":   {"type": "string"},
					"certificate_issuer": {"type": "string"},
					"certificate_date":   {"type": ["string", "null"]}
				}
			}
		},
		"projects": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["project_name", "project_description"],
				"properties": {
					"project_name":        {"type": "string"},
					"project_description": {"type": "string"},
					"project_link":        {"type": ["string", "null"]}
				}
			}
		},
		"skills": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["skill_name"],
				"properties": {
					"skill_name": {"type": "string"}
				}
			}
		},
		"analysis":           {"type": "string"},
		"resume_score":       {"type": "integer"},
		"domain":             {"type": "string"},
		"skill_analysis":     {"type": "string"},
		"suggested_projects": {"type": "string"}
	}
}`

var extractionContract = contract.MustCompile(extractionSchema)

// DecodeExtraction turns a raw generator reply into a validated, coerced
// ExtractionResult. An empty object is the successful "not a resume" outcome
// and is detected before structural validation, which would otherwise reject
// it for missing required fields.
func DecodeExtraction(raw []byte) (ExtractionResult, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: reply is not a JSON object: %v", llm.ErrMalformed, err)
	}
	if len(probe) == 0 {
		return ExtractionResult{}, nil
	}
	if err := extractionContract.Validate(raw); err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: %v", llm.ErrMalformed, err)
	}
	var result ExtractionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ExtractionResult{}, fmt.Errorf("%w: %v", llm.ErrMalformed, err)
	}
	result.Coerce()
	return result, nil
}
