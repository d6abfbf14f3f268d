package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchRowColumns = []string{"id", "user1_id", "user2_id", "last_message", "last_message_at", "created_at"}

func TestMatchCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	u1, u2 := domain.OrderedPair(a, b)
	matchID := uuid.New()
	now := time.Now().UTC()

	t.Run("inserts ordered pair", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchRepository(db, time.Second)

		mock.ExpectQuery("INSERT INTO matches").
			WithArgs(u1, u2).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).AddRow(matchID.String(), u1.String(), u2.String(), nil, nil, now))

		// argument order must not matter
		match, created, err := repo.CreateIfAbsent(ctx, b, a)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, matchID, match.ID)
		assert.Equal(t, u1, match.User1ID)
	})

	t.Run("existing pair is returned", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchRepository(db, time.Second)

		mock.ExpectQuery("INSERT INTO matches").
			WithArgs(u1, u2).
			WillReturnRows(sqlmock.NewRows(matchRowColumns))
		mock.ExpectQuery("SELECT (.+) FROM matches WHERE user1_id = \\$1 AND user2_id = \\$2").
			WithArgs(u1, u2).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).AddRow(matchID.String(), u1.String(), u2.String(), "hi", now, now))

		match, created, err := repo.CreateIfAbsent(ctx, a, b)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, matchID, match.ID)
		require.NotNil(t, match.LastMessage)
		assert.Equal(t, "hi", *match.LastMessage)
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMatchRepository(db, time.Second)

		mock.ExpectQuery("INSERT INTO matches").
			WithArgs(u1, u2).
			WillReturnError(&pq.Error{Code: "23503"})

		_, _, err := repo.CreateIfAbsent(ctx, a, b)
		assert.ErrorIs(t, err, domain.ErrInvalidReference)
	})
}

func TestMatchGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db, time.Second)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM matches WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(matchRowColumns))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestMatchUpdateLastMessageMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db, time.Second)
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec("UPDATE matches SET last_message").
		WithArgs("hello", at, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLastMessage(context.Background(), id, "hello", at)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInteractionLockPairUsesUnorderedKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db, time.Second)
	a, b := uuid.New(), uuid.New()

	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(domain.PairKey(a, b)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs(domain.PairKey(a, b)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.LockPair(context.Background(), a, b))
	require.NoError(t, repo.LockPair(context.Background(), b, a))
}

func TestInteractionUpsertUnknownTarget(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db, time.Second)
	i := &domain.Interaction{FromUserID: uuid.New(), ToUserID: uuid.New(), Action: domain.ActionLike}

	mock.ExpectQuery("INSERT INTO interactions").
		WillReturnError(&pq.Error{Code: "23503"})

	assert.ErrorIs(t, repo.Upsert(context.Background(), i), domain.ErrInvalidReference)
}

func TestInteractionExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInteractionRepository(db, time.Second)
	from, to := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(from, to, domain.ActionLike).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), from, to, domain.ActionLike)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImageDeleteByOrderCompacts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("shifts later images", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewImageRepository(db, time.Second)
		imageID := uuid.New()

		mock.ExpectQuery("DELETE FROM user_images").
			WithArgs(userID, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "url", "object_key", "display_order", "created_at"}).
				AddRow(imageID.String(), userID.String(), "http://cdn/k", "k", 2, time.Now()))
		mock.ExpectExec("UPDATE user_images SET display_order = display_order - 1").
			WithArgs(userID, 2).
			WillReturnResult(sqlmock.NewResult(0, 3))

		image, err := repo.DeleteByOrder(ctx, userID, 2)
		require.NoError(t, err)
		assert.Equal(t, imageID, image.ID)
		assert.Equal(t, "k", image.ObjectKey)
	})

	t.Run("empty slot", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewImageRepository(db, time.Second)

		mock.ExpectQuery("DELETE FROM user_images").
			WithArgs(userID, 4).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.DeleteByOrder(ctx, userID, 4)
		assert.ErrorIs(t, err, domain.ErrImageNotFound)
	})
}

func TestImageListByUsersSkipsEmptyInput(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewImageRepository(db, time.Second)

	images, err := repo.ListByUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}

func TestPreferencesGet(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	columns := []string{
		"user_id", "age_min", "age_max", "distance_max_km",
		"gender_preference", "ethnicity_preference", "religion_preference", "updated_at",
	}

	t.Run("missing row requires preferences", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPreferencesRepository(db, time.Second)

		mock.ExpectQuery("FROM user_preferences").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrPreferencesRequired)
	})

	t.Run("decodes arrays and age range", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPreferencesRepository(db, time.Second)

		mock.ExpectQuery("FROM user_preferences").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(userID.String(), 25, nil, nil, "{Woman,Non-binary}", "{}", "{}", time.Now()))

		prefs, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Woman", "Non-binary"}, prefs.GenderPreference)
		assert.Empty(t, prefs.EthnicityPreference)
		require.NotNil(t, prefs.AgeRange)
		assert.Equal(t, 25, *prefs.AgeRange.Min)
		assert.Nil(t, prefs.AgeRange.Max)
	})
}

// sqlTail matches a query whose whitespace-collapsed text ends with tail.
func sqlTail(tail string) string {
	return regexp.QuoteMeta(tail) + "$"
}

var profileRowColumns = []string{
	"user_id", "name", "bio", "birthdate", "pronouns", "gender", "sexuality", "height",
	"job", "company", "school", "ethnicity", "politics", "religion", "relationship_type",
	"dating_intention", "drinks", "smokes", "is_complete", "created_at", "updated_at",
}

func profileRow(rows *sqlmock.Rows, userID uuid.UUID, name, gender string) *sqlmock.Rows {
	now := time.Now().UTC()
	return rows.AddRow(userID.String(), name, nil, "1995-04-02", nil, gender, nil, nil,
		nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, true, now, now)
}

func TestProfileListCandidates(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()

	t.Run("excludes self and already interacted users", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db, time.Second)
		candidate := uuid.New()

		mock.ExpectQuery(sqlTail(`FROM profiles p WHERE p.user_id <> $1 AND NOT EXISTS ( ` +
			`SELECT 1 FROM interactions i WHERE i.from_user_id = $1 AND i.to_user_id = p.user_id ) ` +
			`ORDER BY p.created_at, p.user_id LIMIT $2`)).
			WithArgs(viewer, 20).
			WillReturnRows(profileRow(sqlmock.NewRows(profileRowColumns), candidate, "Sam", "Man"))

		profiles, err := repo.ListCandidates(ctx, viewer, domain.FeedFilter{}, 20)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, candidate, profiles[0].UserID)
		require.NotNil(t, profiles[0].Name)
		assert.Equal(t, "Sam", *profiles[0].Name)
		assert.True(t, profiles[0].IsComplete)
	})

	t.Run("gender preference keeps only matching candidates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db, time.Second)
		woman := uuid.New()

		mock.ExpectQuery(sqlTail(`i.to_user_id = p.user_id ) AND p.gender = ANY($2) ORDER BY p.created_at, p.user_id LIMIT $3`)).
			WithArgs(viewer, pq.Array([]string{"Woman"}), 20).
			WillReturnRows(profileRow(sqlmock.NewRows(profileRowColumns), woman, "Yara", "Woman"))

		profiles, err := repo.ListCandidates(ctx, viewer, domain.FeedFilter{Genders: []string{"Woman"}}, 20)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, woman, profiles[0].UserID)
		assert.Equal(t, "Woman", *profiles[0].Gender)
	})

	t.Run("combined filters number placeholders in order", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db, time.Second)
		bornAfter := time.Date(1993, 6, 15, 0, 0, 0, 0, time.UTC)
		bornBefore := time.Date(1999, 6, 15, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(sqlTail(`i.to_user_id = p.user_id ) ` +
			`AND p.gender = ANY($2) AND p.ethnicity = ANY($3) AND p.religion = ANY($4) ` +
			`AND p.birthdate > $5::date AND p.birthdate <= $6::date ` +
			`ORDER BY p.created_at, p.user_id LIMIT $7`)).
			WithArgs(viewer, pq.Array([]string{"Woman", "Non-binary"}), pq.Array([]string{"Asian"}),
				pq.Array([]string{"Buddhist"}), bornAfter, bornBefore, 20).
			WillReturnRows(sqlmock.NewRows(profileRowColumns))

		profiles, err := repo.ListCandidates(ctx, viewer, domain.FeedFilter{
			Genders:     []string{"Woman", "Non-binary"},
			Ethnicities: []string{"Asian"},
			Religions:   []string{"Buddhist"},
			BornAfter:   &bornAfter,
			BornBefore:  &bornBefore,
		}, 20)
		require.NoError(t, err)
		assert.NotNil(t, profiles)
		assert.Empty(t, profiles)
	})

	t.Run("single age bound skips the other filters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db, time.Second)
		bornBefore := time.Date(2006, 2, 28, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(sqlTail(`i.to_user_id = p.user_id ) AND p.birthdate <= $2::date ORDER BY p.created_at, p.user_id LIMIT $3`)).
			WithArgs(viewer, bornBefore, 20).
			WillReturnRows(sqlmock.NewRows(profileRowColumns))

		_, err := repo.ListCandidates(ctx, viewer, domain.FeedFilter{Genders: []string{}, BornBefore: &bornBefore}, 20)
		require.NoError(t, err)
	})
}

var messageRowColumns = []string{"id", "match_id", "sender_id", "text", "created_at", "is_read"}

func TestMessageListAfter(t *testing.T) {
	ctx := context.Background()
	matchID, sender := uuid.New(), uuid.New()
	first := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("no cursor starts at the beginning", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db, time.Second)

		mock.ExpectQuery(sqlTail(`FROM messages WHERE match_id = $1 ORDER BY created_at ASC, id ASC LIMIT $2`)).
			WithArgs(matchID, 50).
			WillReturnRows(sqlmock.NewRows(messageRowColumns).
				AddRow(uuid.NewString(), matchID.String(), sender.String(), "hi", first, false).
				AddRow(uuid.NewString(), matchID.String(), sender.String(), "there", first.Add(time.Second), true))

		messages, err := repo.ListAfter(ctx, matchID, nil, 50)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "hi", messages[0].Text)
		assert.Equal(t, "there", messages[1].Text)
		assert.True(t, messages[1].IsRead)
	})

	t.Run("cursor is strictly after", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewMessageRepository(db, time.Second)

		mock.ExpectQuery(sqlTail(`FROM messages WHERE match_id = $1 AND created_at > $2 ORDER BY created_at ASC, id ASC LIMIT $3`)).
			WithArgs(matchID, first, 10).
			WillReturnRows(sqlmock.NewRows(messageRowColumns))

		messages, err := repo.ListAfter(ctx, matchID, &first, 10)
		require.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})
}

func TestMatchGetUserMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMatchRepository(db, time.Second)
	userID := uuid.New()
	chatting, silent := uuid.New(), uuid.New()
	withMessage, withoutMessage := uuid.New(), uuid.New()
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lastAt := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	columns := []string{"id", "created_at", "other_user_id", "other_name", "other_photo_url",
		"last_message", "last_message_at", "last_message_is_read"}
	mock.ExpectQuery(`WHERE m\.user1_id = \$1 OR m\.user2_id = \$1 .*` +
		sqlTail(`ORDER BY mine.last_message_at DESC NULLS LAST, mine.created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(withMessage.String(), created, chatting.String(), "Ana", "http://cdn/a0", "see you", lastAt, false).
			AddRow(withoutMessage.String(), created.Add(time.Hour), silent.String(), nil, nil, nil, nil, nil))

	summaries, err := repo.GetUserMatches(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, withMessage, summaries[0].ID)
	assert.Equal(t, chatting, summaries[0].WithUser.ID)
	require.NotNil(t, summaries[0].WithUser.PhotoURL)
	assert.Equal(t, "http://cdn/a0", *summaries[0].WithUser.PhotoURL)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, "see you", summaries[0].LastMessage.Text)
	assert.Equal(t, lastAt, summaries[0].LastMessage.CreatedAt)
	assert.False(t, summaries[0].LastMessage.IsRead)

	assert.Equal(t, withoutMessage, summaries[1].ID)
	assert.Equal(t, silent, summaries[1].WithUser.ID)
	assert.Nil(t, summaries[1].WithUser.Name)
	assert.Nil(t, summaries[1].LastMessage)
}
