// Package quiz generates topic-scoped multiple-choice quizzes.
package quiz

import "fmt"

// QuestionCount is the fixed number of questions per quiz.
const QuestionCount = 10

// OptionKeys is the fixed, ordered set of valid option identifiers. Prompt
// construction and answer validation both read from it so they cannot drift.
var OptionKeys = []string{"A", "B", "C", "D"}

type Option struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	Questions []Question `json:"questions"`
}

// checkAnswers verifies that every question's correct_answer names one of
// that question's own option keys. The schema cannot express this.
func (q *Quiz) checkAnswers() error {
	for i, question := range q.Questions {
		found := false
		for _, opt := range question.Options {
			if opt.Key == question.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("questions[%d]: correct_answer %q matches no option key", i, question.CorrectAnswer)
		}
	}
	return nil
}
