package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DenysFlnk/playerroster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func ptr[T any](v T) *T {
	return &v
}

func (s *StorageSuite) savePlayer(name string, experience int32) *model.Player {
	player := &model.Player{
		Name:       name,
		Title:      "Adventurer",
		Race:       model.RaceHuman,
		Profession: model.ProfessionWarrior,
		Birthday:   1_000_000_000_000,
		Experience: experience,
		Level:      model.LevelForExperience(experience),
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	return player
}

func (s *StorageSuite) TestSaveAssignsID() {
	first := s.savePlayer("Alice", 0)
	second := s.savePlayer("Bob", 0)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
}

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := s.savePlayer("Alice", 500)

	retrieved, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(player, retrieved)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetReturnsCopy() {
	player := s.savePlayer("Alice", 0)

	retrieved, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	retrieved.Name = "Mallory"

	again, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("Alice", again.Name)
}

func (s *StorageSuite) TestSaveExistingOverwrites() {
	player := s.savePlayer("Alice", 0)

	player.Experience = 777
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(int32(777), retrieved.Experience)

	count, err := s.storage.CountPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := s.savePlayer("Alice", 0)

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, player.ID))

	_, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestFindPlayersFilters() {
	s.savePlayer("Alice", 100)
	s.savePlayer("Bob", 20_000)
	s.savePlayer("Albert", 30_000)

	players, err := s.storage.FindPlayers(s.ctx,
		model.PlayerFilter{Name: ptr("Al")},
		model.DefaultPage(), model.OrderID)
	s.Require().NoError(err)

	s.Require().Len(players, 2)
	s.Equal("Alice", players[0].Name)
	s.Equal("Albert", players[1].Name)
}

func (s *StorageSuite) TestFindPlayersSortsAscendingWithIDTiebreak() {
	s.savePlayer("Carol", 500)
	s.savePlayer("Alice", 500)
	s.savePlayer("Bob", 100)

	players, err := s.storage.FindPlayers(s.ctx, model.PlayerFilter{},
		model.Page{Number: 0, Size: 10}, model.OrderExperience)
	s.Require().NoError(err)

	s.Require().Len(players, 3)
	s.Equal("Bob", players[0].Name)
	// Same experience: earlier id first
	s.Equal("Carol", players[1].Name)
	s.Equal("Alice", players[2].Name)
}

func (s *StorageSuite) TestFindPlayersPaging() {
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		s.savePlayer(name, 0)
	}

	page, err := s.storage.FindPlayers(s.ctx, model.PlayerFilter{},
		model.Page{Number: 1, Size: 2}, model.OrderName)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("C", page[0].Name)
	s.Equal("D", page[1].Name)

	last, err := s.storage.FindPlayers(s.ctx, model.PlayerFilter{},
		model.Page{Number: 2, Size: 2}, model.OrderName)
	s.Require().NoError(err)
	s.Require().Len(last, 1)
	s.Equal("E", last[0].Name)

	beyond, err := s.storage.FindPlayers(s.ctx, model.PlayerFilter{},
		model.Page{Number: 3, Size: 2}, model.OrderName)
	s.Require().NoError(err)
	s.Empty(beyond)
}

func (s *StorageSuite) TestFindPlayersInvalidPageIsEmpty() {
	s.savePlayer("Alice", 0)
	s.savePlayer("Bob", 0)

	for _, page := range []model.Page{
		{Number: -1, Size: 3},
		{Number: 0, Size: -1},
		{Number: 0, Size: 0},
	} {
		players, err := s.storage.FindPlayers(s.ctx, model.PlayerFilter{}, page, model.OrderID)
		s.Require().NoError(err)
		s.Empty(players)
	}
}

func (s *StorageSuite) TestCountPlayers() {
	s.savePlayer("Alice", 100)
	s.savePlayer("Bob", 20_000)

	total, err := s.storage.CountPlayers(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Equal(2, total)

	filtered, err := s.storage.CountPlayers(s.ctx,
		model.PlayerFilter{MinExperience: ptr(int32(1_000))})
	s.Require().NoError(err)
	s.Equal(1, filtered)
}
