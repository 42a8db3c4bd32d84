package domainswitch

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/resume"
)

type fakeStore struct {
	profile []byte
	err     error
}

func (s *fakeStore) UpsertFullResume(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return nil
}

func (s *fakeStore) GetFullCandidateProfile(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
	input string
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, instruction, input string) (string, error) {
	g.calls++
	g.input = input
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func TestAdvisorAnalyze(t *testing.T) {
	store := &fakeStore{profile: []byte(`{"candidates":{"name":"Asha"}}`)}
	gen := &fakeGenerator{reply: validAnalysis}
	uc := NewAdvisor(store, gen)

	a, err := uc.Analyze(context.Background(), uuid.New(), "Data Science & Analytics")
	require.NoError(t, err)

	assert.Equal(t, "Data Science & Analytics", a.TargetDomain)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.input, `{"candidates":{"name":"Asha"}}`)
	assert.Contains(t, gen.input, "TARGET DOMAIN:\nData Science & Analytics")
}

func TestAdvisorAnalyzeProfileNotFound(t *testing.T) {
	store := &fakeStore{err: resume.ErrProfileNotFound}
	gen := &fakeGenerator{reply: validAnalysis}
	uc := NewAdvisor(store, gen)

	_, err := uc.Analyze(context.Background(), uuid.New(), "AI/ML")
	assert.ErrorIs(t, err, resume.ErrProfileNotFound)
	assert.Zero(t, gen.calls)
}

func TestAdvisorAnalyzeGeneratorDown(t *testing.T) {
	store := &fakeStore{profile: []byte(`{}`)}
	gen := &fakeGenerator{err: context.DeadlineExceeded}
	uc := NewAdvisor(store, gen)

	_, err := uc.Analyze(context.Background(), uuid.New(), "AI/ML")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestAdvisorAnalyzeNilGenerator(t *testing.T) {
	uc := NewAdvisor(&fakeStore{profile: []byte(`{}`)}, nil)

	_, err := uc.Analyze(context.Background(), uuid.New(), "AI/ML")
	assert.ErrorIs(t, err, llm.ErrUnavailable)
}

func TestAdvisorAnalyzeNilStore(t *testing.T) {
	uc := NewAdvisor(nil, &fakeGenerator{reply: validAnalysis})

	_, err := uc.Analyze(context.Background(), uuid.New(), "AI/ML")
	assert.ErrorIs(t, err, resume.ErrStoreUnavailable)
}

func TestAdvisorAnalyzeMalformedReply(t *testing.T) {
	store := &fakeStore{profile: []byte(`{}`)}
	gen := &fakeGenerator{reply: "not json at all"}
	uc := NewAdvisor(store, gen)

	_, err := uc.Analyze(context.Background(), uuid.New(), "AI/ML")
	assert.ErrorIs(t, err, llm.ErrMalformed)
}
