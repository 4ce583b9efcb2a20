package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/database"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

func setupPresenceRepo(t *testing.T) (*PresenceRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := &models.Config{Chat: models.ChatConfig{PresenceTTLSec: 120}}

	return NewPresenceRepo(cfg, database.NewRedisClientFromConn(client)), mr
}

func TestPresence_AddListRemove(t *testing.T) {
	repo, _ := setupPresenceRepo(t)
	ctx := context.Background()

	groupID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, repo.AddPresence(ctx, groupID, first))
	require.NoError(t, repo.AddPresence(ctx, groupID, second))

	online, err := repo.ListPresence(ctx, groupID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, online)

	require.NoError(t, repo.RemovePresence(ctx, groupID, first))

	online, err = repo.ListPresence(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second}, online)
}

func TestPresence_SetsTTL(t *testing.T) {
	repo, mr := setupPresenceRepo(t)
	ctx := context.Background()

	groupID := uuid.New()
	require.NoError(t, repo.AddPresence(ctx, groupID, uuid.New()))

	key := fmt.Sprintf(constants.KeyGroupPresence, groupID)
	assert.Greater(t, mr.TTL(key).Seconds(), float64(0))

	mr.FastForward(repo.ttl * 2)
	assert.False(t, mr.Exists(key))
}

func TestPresence_SkipsMalformedEntries(t *testing.T) {
	repo, mr := setupPresenceRepo(t)
	ctx := context.Background()

	groupID := uuid.New()
	valid := uuid.New()

	key := fmt.Sprintf(constants.KeyGroupPresence, groupID)
	mr.SAdd(key, valid.String(), "not-a-uuid")

	online, err := repo.ListPresence(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{valid}, online)
}

func TestPresence_EmptyGroup(t *testing.T) {
	repo, _ := setupPresenceRepo(t)

	online, err := repo.ListPresence(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, online)
}
