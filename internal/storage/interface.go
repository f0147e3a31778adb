package storage

import (
	"context"

	"github.com/DenysFlnk/playerroster/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// GetPlayer returns the player with the given id, or model.ErrPlayerNotFound
	GetPlayer(ctx context.Context, id int64) (*model.Player, error)

	// FindPlayers returns the page of players matching the filter,
	// sorted ascending by the order field with id as tiebreaker
	FindPlayers(ctx context.Context, filter model.PlayerFilter, page model.Page, order model.SortOrder) ([]*model.Player, error)

	// CountPlayers returns the number of players matching the filter
	CountPlayers(ctx context.Context, filter model.PlayerFilter) (int, error)

	// SavePlayer persists a player, assigning an id on first save
	SavePlayer(ctx context.Context, player *model.Player) error

	// DeletePlayer removes the player with the given id
	DeletePlayer(ctx context.Context, id int64) error
}
