package resume

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/nlp"
)

// Upload is the outcome of one processed document: the full validated result
// (persisted) and its caller-facing projection.
type Upload struct {
	Result     ExtractionResult
	Projection Projection
}

// UseCase describes the resume extraction pipeline.
type UseCase interface {
	Process(ctx context.Context, userID uuid.UUID, filename string, data []byte) (Upload, error)
}

type pipeline struct {
	store          ProfileStore
	gen            llm.Generator
	maxPromptChars int
}

// NewPipeline creates the default extraction pipeline. Either collaborator
// may be nil when its credentials are missing; the pipeline then fails at
// call time instead of at startup.
func NewPipeline(store ProfileStore, gen llm.Generator) UseCase {
	return &pipeline{
		store:          store,
		gen:            gen,
		maxPromptChars: 12_000,
	}
}

func (p *pipeline) Process(ctx context.Context, userID uuid.UUID, filename string, data []byte) (Upload, error) {
	text, err := ExtractText(filename, data)
	if err != nil {
		return Upload{}, err
	}
	cleaned := nlp.CleanText(text)
	if len(cleaned) > p.maxPromptChars {
		cleaned = cleaned[:p.maxPromptChars]
	}

	if p.gen == nil {
		return Upload{}, fmt.Errorf("%w: generator not configured", llm.ErrUnavailable)
	}
	raw, err := p.gen.GenerateJSON(ctx, extractionInstruction, "resume_text:"+cleaned)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	result, err := DecodeExtraction([]byte(raw))
	if err != nil {
		return Upload{}, err
	}

	// At-most-once persist attempt; a failure here is reported but the
	// extraction itself is not rolled back or retried.
	if p.store == nil {
		return Upload{}, ErrStoreUnavailable
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if err := p.store.UpsertFullResume(ctx, userID, payload); err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	return Upload{Result: result, Projection: result.Projection()}, nil
}
