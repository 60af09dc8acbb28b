package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/redis/go-redis/v9"
)

const boardTTL = 60 * time.Second

const keyBoard = "games:board"

// GameCache keeps the upcoming games board in Redis so every balance
// poll does not hit Postgres. A nil client disables caching entirely.
type GameCache struct {
	client *redis.Client
}

func New(client *redis.Client) *GameCache {
	return &GameCache{client: client}
}

func (c *GameCache) GetBoard(ctx context.Context) ([]domain.Game, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}
	b, err := c.client.Get(ctx, keyBoard).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var games []domain.Game
	if err := json.Unmarshal(b, &games); err != nil {
		return nil, false, err
	}
	return games, true, nil
}

func (c *GameCache) SetBoard(ctx context.Context, games []domain.Game) error {
	if c.client == nil {
		return nil
	}
	b, err := json.Marshal(games)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyBoard, b, boardTTL).Err()
}

// InvalidateBoard drops the cached board, called after a score sync
// changes game rows.
func (c *GameCache) InvalidateBoard(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keyBoard).Err()
}
