package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[int64]*model.Player
	nextID  int64
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[int64]*model.Player),
		nextID:  1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	c := *player
	return &c, nil
}

func (s *Storage) FindPlayers(ctx context.Context, filter model.PlayerFilter, page model.Page, order model.SortOrder) ([]*model.Player, error) {
	s.mu.RLock()
	matched := s.match(filter)
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return order.Less(matched[i], matched[j])
	})

	return page.Slice(matched), nil
}

func (s *Storage) CountPlayers(ctx context.Context, filter model.PlayerFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, player := range s.players {
		if filter.Matches(player) {
			count++
		}
	}
	return count, nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player.ID == 0 {
		player.ID = s.nextID
		s.nextID++
	}
	c := *player
	s.players[player.ID] = &c
	return nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// match returns copies of all players satisfying the filter.
// Callers must hold at least a read lock.
func (s *Storage) match(filter model.PlayerFilter) []*model.Player {
	matched := make([]*model.Player, 0)
	for _, player := range s.players {
		if filter.Matches(player) {
			c := *player
			matched = append(matched, &c)
		}
	}
	return matched
}
