package quiz

import (
	"encoding/json"

	"github.com/vidyamitra/backend/pkg/contract"
	"github.com/vidyamitra/backend/pkg/llm"
)

const quizSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 10,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": ["question", "options", "correct_answer", "explanation"],
        "properties": {
          "question": {"type": "string"},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {
              "type": "object",
              "required": ["key", "text"],
              "properties": {
                "key": {"type": "string", "enum": ["A", "B", "C", "D"]},
                "text": {"type": "string"}
              }
            }
          },
          "correct_answer": {"type": "string", "enum": ["A", "B", "C", "D"]},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

var quizContract = contract.MustCompile(quizSchema)

// DecodeQuiz validates a raw generator reply against the quiz contract,
// including the answer-key consistency the schema alone cannot enforce.
func DecodeQuiz(raw string) (Quiz, error) {
	doc := []byte(raw)
	if !json.Valid(doc) {
		return Quiz{}, llm.ErrMalformed
	}
	if verr := quizContract.Validate(doc); verr != nil {
		return Quiz{}, llm.ErrMalformed
	}
	var q Quiz
	if err := json.Unmarshal(doc, &q); err != nil {
		return Quiz{}, llm.ErrMalformed
	}
	if err := q.checkAnswers(); err != nil {
		return Quiz{}, llm.ErrMalformed
	}
	return q, nil
}
