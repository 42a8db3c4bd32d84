package domainswitch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/resume"
)

// UseCase produces a domain-switch advisory for a stored candidate profile.
type UseCase interface {
	Analyze(ctx context.Context, userID uuid.UUID, targetDomain string) (Analysis, error)
}

type advisor struct {
	store resume.ProfileStore
	gen   llm.Generator
}

func NewAdvisor(store resume.ProfileStore, gen llm.Generator) UseCase {
	return &advisor{store: store, gen: gen}
}

func (a *advisor) Analyze(ctx context.Context, userID uuid.UUID, targetDomain string) (Analysis, error) {
	if a.store == nil {
		return Analysis{}, resume.ErrStoreUnavailable
	}
	profile, err := a.store.GetFullCandidateProfile(ctx, userID)
	if err != nil {
		return Analysis{}, err
	}
	if a.gen == nil {
		return Analysis{}, llm.ErrUnavailable
	}

	input := fmt.Sprintf("USER PROFILE (JSON):\n%s\n\nTARGET DOMAIN:\n%s", profile, targetDomain)
	raw, err := a.gen.GenerateJSON(ctx, advisoryInstruction, input)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}
	return DecodeAnalysis(raw)
}
