package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/DenysFlnk/playerroster/internal/services/player"
	"github.com/DenysFlnk/playerroster/internal/storage"
	"github.com/DenysFlnk/playerroster/internal/storage/memory"
	postgresstorage "github.com/DenysFlnk/playerroster/internal/storage/postgres"
	redisstorage "github.com/DenysFlnk/playerroster/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypePostgres = "postgres"
	StorageTypeRedis    = "redis"
)

// App contains all wired application components
type App struct {
	Storage       storage.Storage
	PlayerService *player.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "postgres" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// PostgresConfig holds Postgres connection settings (required if StorageType is "postgres")
	PostgresConfig *postgresstorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:       store,
		PlayerService: player.New(store, logger),
	}, nil
}

func newStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		store, err := postgresstorage.New(ctx, *cfg.PostgresConfig)
		if err != nil {
			return nil, err
		}
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'postgres' or 'redis'")
	}
}
