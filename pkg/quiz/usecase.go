package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/vidyamitra/backend/pkg/llm"
)

var quizInstruction = fmt.Sprintf(`You are an expert technical interviewer preparing a practice quiz.

Generate exactly %d multiple-choice questions on the given topic.

Rules:
1. Each question has exactly %d options with keys %s in that order.
2. "correct_answer" must be the key of exactly one of that question's options.
3. Provide a short "explanation" for why the correct answer is right.
4. Questions should range from fundamentals to advanced usage of the topic.
5. Do not repeat questions or options.

Return a single valid JSON object of the form
{"questions": [{"question": "...", "options": [{"key": "A", "text": "..."}],
"correct_answer": "A", "explanation": "..."}]}
with no surrounding prose or markdown.`,
	QuestionCount, len(OptionKeys), strings.Join(OptionKeys, ", "))

// UseCase generates a fixed-size quiz for a topic.
type UseCase interface {
	Generate(ctx context.Context, topic string) (Quiz, error)
}

type generator struct {
	gen llm.Generator
}

func NewGenerator(gen llm.Generator) UseCase {
	return &generator{gen: gen}
}

func (g *generator) Generate(ctx context.Context, topic string) (Quiz, error) {
	if g.gen == nil {
		return Quiz{}, llm.ErrUnavailable
	}
	raw, err := g.gen.GenerateJSON(ctx, quizInstruction, "topic: "+topic)
	if err != nil {
		return Quiz{}, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}
	return DecodeQuiz(raw)
}
