package player

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/storage"
)

// Service orchestrates player CRUD over the storage collaborator.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new player service
func New(store storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// List returns the selected page of players matching the filter,
// sorted ascending by the order field. An empty result is not an error.
func (s *Service) List(ctx context.Context, filter model.PlayerFilter, page model.Page, order model.SortOrder) ([]*model.Player, error) {
	return s.storage.FindPlayers(ctx, filter, page, order)
}

// Count returns the number of players matching the filter.
// Paging does not apply; an empty filter counts every player.
func (s *Service) Count(ctx context.Context, filter model.PlayerFilter) (int, error) {
	return s.storage.CountPlayers(ctx, filter)
}

// Create validates a full create payload, derives level fields and persists
// the new player. The returned player carries its storage-assigned id.
func (s *Service) Create(ctx context.Context, patch model.PlayerPatch) (*model.Player, error) {
	player, err := model.NewPlayer(patch)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("id", player.ID),
		slog.String("name", player.Name),
	)
	return player, nil
}

// Get returns the player with the given id text
func (s *Service) Get(ctx context.Context, idText string) (*model.Player, error) {
	id, err := ParseID(idText)
	if err != nil {
		return nil, err
	}
	return s.storage.GetPlayer(ctx, id)
}

// Update applies the present fields of a patch to an existing player,
// recomputing derived fields when experience changes, and persists it.
// An empty patch is a no-op.
func (s *Service) Update(ctx context.Context, idText string, patch model.PlayerPatch) (*model.Player, error) {
	id, err := ParseID(idText)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := existing.Apply(patch)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SavePlayer(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info("player updated", slog.Int64("id", updated.ID))
	return updated, nil
}

// Delete removes the player with the given id text
func (s *Service) Delete(ctx context.Context, idText string) error {
	id, err := ParseID(idText)
	if err != nil {
		return err
	}

	// Load first so a missing id reports NotFound
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.Int64("id", id))
	return nil
}

// ParseID parses an id text. The text must parse as a positive 64-bit
// integer: no '.' or '-', not zero, not fractional.
func ParseID(idText string) (int64, error) {
	if strings.ContainsAny(idText, ".-") {
		return 0, model.NewValidationError("id", "must be a positive integer")
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return 0, model.NewValidationError("id", "must be a positive integer")
	}
	if id == 0 {
		return 0, model.NewValidationError("id", "must not be zero")
	}
	return id, nil
}
