package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type profileRepository struct {
	base
}

func NewProfileRepository(db *sqlx.DB, timeout time.Duration) repository.ProfileRepository {
	return &profileRepository{base{db: db, timeout: timeout}}
}

const profileColumns = `
	p.user_id, p.name, p.bio, to_char(p.birthdate, 'YYYY-MM-DD') AS birthdate,
	p.pronouns, p.gender, p.sexuality, p.height, p.job, p.company, p.school,
	p.ethnicity, p.politics, p.religion, p.relationship_type, p.dating_intention,
	p.drinks, p.smokes, p.is_complete, p.created_at, p.updated_at`

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles p WHERE p.user_id = $1`
	err := sqlx.GetContext(ctx, r.ext(ctx), &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, classify(err)
	}
	return &profile, nil
}

// Upsert creates the profile or merges the non-nil fields into the stored one
// in a single statement.
func (r *profileRepository) Upsert(ctx context.Context, userID uuid.UUID, f *domain.ProfileFields) (*domain.Profile, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		WITH upserted AS (
			INSERT INTO profiles AS cur (
				user_id, name, bio, birthdate, pronouns, gender, sexuality, height,
				job, company, school, ethnicity, politics, religion,
				relationship_type, dating_intention, drinks, smokes
			)
			VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			ON CONFLICT (user_id) DO UPDATE SET
				name = COALESCE(EXCLUDED.name, cur.name),
				bio = COALESCE(EXCLUDED.bio, cur.bio),
				birthdate = COALESCE(EXCLUDED.birthdate, cur.birthdate),
				pronouns = COALESCE(EXCLUDED.pronouns, cur.pronouns),
				gender = COALESCE(EXCLUDED.gender, cur.gender),
				sexuality = COALESCE(EXCLUDED.sexuality, cur.sexuality),
				height = COALESCE(EXCLUDED.height, cur.height),
				job = COALESCE(EXCLUDED.job, cur.job),
				company = COALESCE(EXCLUDED.company, cur.company),
				school = COALESCE(EXCLUDED.school, cur.school),
				ethnicity = COALESCE(EXCLUDED.ethnicity, cur.ethnicity),
				politics = COALESCE(EXCLUDED.politics, cur.politics),
				religion = COALESCE(EXCLUDED.religion, cur.religion),
				relationship_type = COALESCE(EXCLUDED.relationship_type, cur.relationship_type),
				dating_intention = COALESCE(EXCLUDED.dating_intention, cur.dating_intention),
				drinks = COALESCE(EXCLUDED.drinks, cur.drinks),
				smokes = COALESCE(EXCLUDED.smokes, cur.smokes),
				updated_at = CURRENT_TIMESTAMP
			RETURNING *
		)
		SELECT ` + profileColumns + ` FROM upserted p
	`
	var profile domain.Profile
	err := sqlx.GetContext(
		ctx, r.ext(ctx), &profile, query,
		userID, f.Name, f.Bio, f.Birthdate, f.Pronouns, f.Gender, f.Sexuality, f.Height,
		f.Job, f.Company, f.School, f.Ethnicity, f.Politics, f.Religion,
		f.RelationshipType, f.DatingIntention, f.Drinks, f.Smokes,
	)
	if err != nil {
		return nil, classify(err)
	}
	return &profile, nil
}

func (r *profileRepository) UpdateCompletionStatus(ctx context.Context, userID uuid.UUID, isComplete bool) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `
		UPDATE profiles
		SET is_complete = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2
	`
	result, err := r.ext(ctx).ExecContext(ctx, query, isComplete, userID)
	if err != nil {
		return classify(err)
	}
	return expectAffected(result, domain.ErrProfileNotFound)
}

func (r *profileRepository) ListCandidates(ctx context.Context, userID uuid.UUID, filter domain.FeedFilter, limit int) ([]*domain.Profile, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	query := `SELECT ` + profileColumns + `
		FROM profiles p
		WHERE p.user_id <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM interactions i
			WHERE i.from_user_id = $1 AND i.to_user_id = p.user_id
		  )`
	args := []interface{}{userID}
	argCount := 2

	if len(filter.Genders) > 0 {
		query += fmt.Sprintf(" AND p.gender = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Genders))
		argCount++
	}

	if len(filter.Ethnicities) > 0 {
		query += fmt.Sprintf(" AND p.ethnicity = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Ethnicities))
		argCount++
	}

	if len(filter.Religions) > 0 {
		query += fmt.Sprintf(" AND p.religion = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.Religions))
		argCount++
	}

	if filter.BornAfter != nil {
		query += fmt.Sprintf(" AND p.birthdate > $%d::date", argCount)
		args = append(args, *filter.BornAfter)
		argCount++
	}

	if filter.BornBefore != nil {
		query += fmt.Sprintf(" AND p.birthdate <= $%d::date", argCount)
		args = append(args, *filter.BornBefore)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY p.created_at, p.user_id LIMIT $%d", argCount)
	args = append(args, limit)

	profiles := []*domain.Profile{}
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &profiles, query, args...); err != nil {
		return nil, classify(err)
	}
	return profiles, nil
}
