package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

func newResetToken(userID string, ttl time.Duration) *model.ResetPasswordToken {
	now := time.Now().UTC()
	return &model.ResetPasswordToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestResetTokenRepo_CreateAndGet(t *testing.T) {
	repo := repository.NewResetTokenRepo(newTestDB(t))

	tok := newResetToken(uuid.NewString(), 10*time.Minute)
	require.NoError(t, repo.Create(ctx(), tok))

	got, err := repo.GetByToken(ctx(), tok.Token)
	require.NoError(t, err)
	assert.Equal(t, tok.UserID, got.UserID)
	assert.Nil(t, got.ConsumedAt)
	assert.False(t, got.Consumed())
	assert.False(t, got.Expired(time.Now().UTC()))

	_, err = repo.GetByToken(ctx(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResetTokenRepo_ConsumeIsSingleShot(t *testing.T) {
	repo := repository.NewResetTokenRepo(newTestDB(t))

	tok := newResetToken(uuid.NewString(), 10*time.Minute)
	require.NoError(t, repo.Create(ctx(), tok))

	at := time.Now().UTC()
	require.NoError(t, repo.Consume(ctx(), tok.Token, at))

	got, err := repo.GetByToken(ctx(), tok.Token)
	require.NoError(t, err)
	assert.True(t, got.Consumed())

	// Second consume loses the conditional update.
	assert.ErrorIs(t, repo.Consume(ctx(), tok.Token, at), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Consume(ctx(), "missing", at), repository.ErrNotFound)
}

func TestResetTokenRepo_DeleteExpired(t *testing.T) {
	repo := repository.NewResetTokenRepo(newTestDB(t))

	expired := newResetToken(uuid.NewString(), -time.Minute)
	live := newResetToken(uuid.NewString(), 10*time.Minute)
	require.NoError(t, repo.Create(ctx(), expired))
	require.NoError(t, repo.Create(ctx(), live))

	require.NoError(t, repo.DeleteExpired(ctx(), time.Now().UTC()))

	_, err := repo.GetByToken(ctx(), expired.Token)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.GetByToken(ctx(), live.Token)
	assert.NoError(t, err)
}
