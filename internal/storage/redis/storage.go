package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Players are stored as JSON values; filtering and sorting happen in the
// application after loading the indexed set.
type Storage struct {
	client *redis.Client
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) FindPlayers(ctx context.Context, filter model.PlayerFilter, page model.Page, order model.SortOrder) ([]*model.Player, error) {
	matched, err := s.matchPlayers(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		return order.Less(matched[i], matched[j])
	})

	return page.Slice(matched), nil
}

func (s *Storage) CountPlayers(ctx context.Context, filter model.PlayerFilter) (int, error) {
	matched, err := s.matchPlayers(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	if player.ID == 0 {
		id, err := s.client.Incr(ctx, idSequenceKey()).Result()
		if err != nil {
			return err
		}
		player.ID = id
	}

	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.SAdd(ctx, playerIndexKey(), player.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) DeletePlayer(ctx context.Context, id int64) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.SRem(ctx, playerIndexKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}

// matchPlayers loads every indexed player and applies the filter
func (s *Storage) matchPlayers(ctx context.Context, filter model.PlayerFilter) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playerIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Player, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			continue
		}

		player, err := s.GetPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				// Index entry without a value; skip
				continue
			}
			return nil, err
		}

		if filter.Matches(player) {
			matched = append(matched, player)
		}
	}
	return matched, nil
}
