package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type preferencesRepository struct {
	base
}

func NewPreferencesRepository(db *sqlx.DB, timeout time.Duration) repository.PreferencesRepository {
	return &preferencesRepository{base{db: db, timeout: timeout}}
}

type preferencesRow struct {
	UserID              uuid.UUID      `db:"user_id"`
	AgeMin              *int           `db:"age_min"`
	AgeMax              *int           `db:"age_max"`
	DistanceMaxKm       *int           `db:"distance_max_km"`
	GenderPreference    pq.StringArray `db:"gender_preference"`
	EthnicityPreference pq.StringArray `db:"ethnicity_preference"`
	ReligionPreference  pq.StringArray `db:"religion_preference"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (row *preferencesRow) toDomain() *domain.Preferences {
	prefs := &domain.Preferences{
		UserID:              row.UserID,
		DistanceMax:         row.DistanceMaxKm,
		GenderPreference:    []string(row.GenderPreference),
		EthnicityPreference: []string(row.EthnicityPreference),
		ReligionPreference:  []string(row.ReligionPreference),
		UpdatedAt:           row.UpdatedAt,
	}
	if row.AgeMin != nil || row.AgeMax != nil {
		prefs.AgeRange = &domain.AgeRange{Min: row.AgeMin, Max: row.AgeMax}
	}
	return prefs
}

func (r *preferencesRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Preferences, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var row preferencesRow
	query := `
		SELECT user_id, age_min, age_max, distance_max_km,
		       gender_preference, ethnicity_preference, religion_preference, updated_at
		FROM user_preferences WHERE user_id = $1
	`
	err := sqlx.GetContext(ctx, r.ext(ctx), &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferencesRequired
		}
		return nil, classify(err)
	}
	return row.toDomain(), nil
}

func (r *preferencesRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	ctx, cancel := r.bound(ctx)
	defer cancel()

	var ageMin, ageMax *int
	if prefs.AgeRange != nil {
		ageMin, ageMax = prefs.AgeRange.Min, prefs.AgeRange.Max
	}

	query := `
		INSERT INTO user_preferences (
			user_id, age_min, age_max, distance_max_km,
			gender_preference, ethnicity_preference, religion_preference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			age_min = EXCLUDED.age_min,
			age_max = EXCLUDED.age_max,
			distance_max_km = EXCLUDED.distance_max_km,
			gender_preference = EXCLUDED.gender_preference,
			ethnicity_preference = EXCLUDED.ethnicity_preference,
			religion_preference = EXCLUDED.religion_preference,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	err := r.ext(ctx).QueryRowxContext(
		ctx, query,
		prefs.UserID, ageMin, ageMax, prefs.DistanceMax,
		pq.Array(nonNil(prefs.GenderPreference)),
		pq.Array(nonNil(prefs.EthnicityPreference)),
		pq.Array(nonNil(prefs.ReligionPreference)),
	).Scan(&prefs.UpdatedAt)
	return classify(err)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
