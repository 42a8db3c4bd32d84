package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyamitra/backend/pkg/llm"
)

func buildQuiz(t *testing.T, mutate func(*Quiz)) string {
	t.Helper()

	q := Quiz{}
	for i := 0; i < QuestionCount; i++ {
		question := Question{
			Question:      fmt.Sprintf("Question %d?", i+1),
			CorrectAnswer: "B",
			Explanation:   "Because of how the runtime works.",
		}
		for _, key := range OptionKeys {
			question.Options = append(question.Options, Option{Key: key, Text: "Option " + key})
		}
		q.Questions = append(q.Questions, question)
	}
	if mutate != nil {
		mutate(&q)
	}

	raw, err := json.Marshal(q)
	require.NoError(t, err)
	return string(raw)
}

func TestDecodeQuiz(t *testing.T) {
	q, err := DecodeQuiz(buildQuiz(t, nil))
	require.NoError(t, err)

	require.Len(t, q.Questions, QuestionCount)
	assert.Equal(t, "B", q.Questions[0].CorrectAnswer)
	assert.Len(t, q.Questions[0].Options, len(OptionKeys))
}

func TestDecodeQuizMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"Not JSON", "ten questions coming right up"},
		{"Empty object", "{}"},
		{"Too few questions", buildQuiz(t, func(q *Quiz) {
			q.Questions = q.Questions[:9]
		})},
		{"Unknown option key", buildQuiz(t, func(q *Quiz) {
			q.Questions[3].Options[0].Key = "E"
		})},
		{"Answer outside closed set", buildQuiz(t, func(q *Quiz) {
			q.Questions[0].CorrectAnswer = "Z"
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeQuiz(tc.raw)
			assert.ErrorIs(t, err, llm.ErrMalformed)
		})
	}
}

func TestDecodeQuizAnswerNotAmongOptions(t *testing.T) {
	// "D" is a valid key in general but question 5 only offers A-C plus a
	// duplicate, so the reference check has to reject it.
	raw := buildQuiz(t, func(q *Quiz) {
		q.Questions[5].Options[3] = Option{Key: "A", Text: "Duplicate"}
		q.Questions[5].CorrectAnswer = "D"
	})

	_, err := DecodeQuiz(raw)
	assert.ErrorIs(t, err, llm.ErrMalformed)
}

type fakeGenerator struct {
	reply string
	err   error
	input string
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, instruction, input string) (string, error) {
	g.input = input
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestGenerateQuiz(t *testing.T) {
	gen := &fakeGenerator{reply: buildQuiz(t, nil)}
	uc := NewGenerator(gen)

	q, err := uc.Generate(context.Background(), "Golang")
	require.NoError(t, err)

	assert.Len(t, q.Questions, QuestionCount)
	assert.Equal(t, "topic: Golang", gen.input)
}

func TestGenerateQuizGeneratorDown(t *testing.T) {
	uc := NewGenerator(&fakeGenerator{err: context.DeadlineExceeded})

	_, err := uc.Generate(context.Background(), "Golang")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestGenerateQuizNilGenerator(t *testing.T) {
	uc := NewGenerator(nil)

	_, err := uc.Generate(context.Background(), "Golang")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestGenerateQuizMalformedReply(t *testing.T) {
	uc := NewGenerator(&fakeGenerator{reply: `{"questions": []}`})

	_, err := uc.Generate(context.Background(), "Golang")
	assert.ErrorIs(t, err, llm.ErrMalformed)
}
