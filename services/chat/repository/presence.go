package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/database"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

// PresenceRepo tracks online group members in Redis sets
type PresenceRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewPresenceRepo creates a new presence repository
func NewPresenceRepo(cfg *models.Config, redisClient *database.RedisClient) *PresenceRepo {
	ttl := time.Duration(cfg.Chat.PresenceTTLSec) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PresenceRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func presenceKey(groupID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyGroupPresence, groupID)
}

// AddPresence marks a member online in the group
func (r *PresenceRepo) AddPresence(ctx context.Context, groupID, userID uuid.UUID) error {
	key := presenceKey(groupID)
	if err := r.redisClient.SAdd(ctx, key, userID.String()); err != nil {
		return fmt.Errorf("failed to add presence: %w", err)
	}
	// Keep a TTL on the set so dropped connections do not linger forever.
	if err := r.redisClient.Expire(ctx, key, r.ttl); err != nil {
		return fmt.Errorf("failed to refresh presence ttl: %w", err)
	}
	return nil
}

// RemovePresence marks a member offline in the group
func (r *PresenceRepo) RemovePresence(ctx context.Context, groupID, userID uuid.UUID) error {
	if err := r.redisClient.SRem(ctx, presenceKey(groupID), userID.String()); err != nil {
		return fmt.Errorf("failed to remove presence: %w", err)
	}
	return nil
}

// ListPresence returns the online members of a group
func (r *PresenceRepo) ListPresence(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	raw, err := r.redisClient.SMembers(ctx, presenceKey(groupID))
	if err != nil {
		return nil, fmt.Errorf("failed to list presence: %w", err)
	}

	members := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			logger.Warn("Skipping malformed presence entry",
				logger.String("group_id", groupID.String()),
				logger.String("entry", s))
			continue
		}
		members = append(members, id)
	}

	return members, nil
}
