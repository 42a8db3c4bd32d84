package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidyamitra/backend/pkg/resume"
)

// ProfileRepository implements resume.ProfileStore on top of the database's
// stored procedures. The procedures own the candidate table layout; this
// repository only moves JSON documents across the boundary.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) UpsertFullResume(ctx context.Context, userID uuid.UUID, payload []byte) error {
	_, err := r.pool.Exec(ctx, `SELECT upsert_full_resume($1, $2::jsonb)`, userID, payload)
	if err != nil {
		return fmt.Errorf("upsert_full_resume: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetFullCandidateProfile(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	row := r.pool.QueryRow(ctx, `SELECT get_full_candidate_profile($1)`, userID)
	var profile []byte
	if err := row.Scan(&profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get_full_candidate_profile: %w", err)
	}
	// The procedure returns SQL NULL for users that never uploaded a resume.
	if len(profile) == 0 || string(profile) == "null" {
		return nil, resume.ErrProfileNotFound
	}
	return profile, nil
}
