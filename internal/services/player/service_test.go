package player

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DenysFlnk/playerroster/internal/model"
	"github.com/DenysFlnk/playerroster/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.service = New(memory.New(), logger)
	s.ctx = context.Background()
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ServiceSuite) createPlayer(name string, experience int32) *model.Player {
	created, err := s.service.Create(s.ctx, model.PlayerPatch{
		Name:       ptr(name),
		Title:      ptr("Adventurer"),
		Race:       ptr(model.RaceHuman),
		Profession: ptr(model.ProfessionWarrior),
		Birthday:   ptr(int64(946_684_800_001)),
		Experience: ptr(experience),
	})
	s.Require().NoError(err)
	return created
}

// Create

func (s *ServiceSuite) TestCreateAssignsIDAndDerivesLevel() {
	created := s.createPlayer("Aragorn", 1_000_000)

	s.Positive(created.ID)
	s.Equal(int32(44), created.Level)
	s.Equal(int32(100_000), created.UntilNextLevel)
	s.False(created.Banned)
}

func (s *ServiceSuite) TestCreateThenGetRoundTrip() {
	created := s.createPlayer("Aragorn", 500)

	got, err := s.service.Get(s.ctx, fmt.Sprintf("%d", created.ID))
	s.Require().NoError(err)
	s.Equal(created, got)
}

func (s *ServiceSuite) TestCreateInvalidPayload() {
	_, err := s.service.Create(s.ctx, model.PlayerPatch{Name: ptr("Aragorn")})
	var ve *model.ValidationError
	s.ErrorAs(err, &ve)
}

// Id parsing

func (s *ServiceSuite) TestParseID() {
	id, err := ParseID("42")
	s.Require().NoError(err)
	s.Equal(int64(42), id)

	for _, bad := range []string{"0", "abc", "3.14", "-1", "1-1", ""} {
		_, err := ParseID(bad)
		var ve *model.ValidationError
		s.ErrorAs(err, &ve, "id %q", bad)
	}
}

func (s *ServiceSuite) TestGetWellFormedAbsentID() {
	_, err := s.service.Get(s.ctx, "99999999")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Update

func (s *ServiceSuite) TestUpdatePartialPatch() {
	created := s.createPlayer("Frodo", 0)
	idText := fmt.Sprintf("%d", created.ID)

	updated, err := s.service.Update(s.ctx, idText, model.PlayerPatch{Experience: ptr(int32(10_000))})
	s.Require().NoError(err)

	s.Equal(int32(10_000), updated.Experience)
	s.Equal(int32(4), updated.Level)
	s.Equal(int32(150), updated.UntilNextLevel)
	s.Equal(created.Name, updated.Name)
	s.Equal(created.Birthday, updated.Birthday)
	s.Equal(created.ID, updated.ID)
}

func (s *ServiceSuite) TestUpdateEmptyPatchIsNoOp() {
	created := s.createPlayer("Frodo", 300)
	idText := fmt.Sprintf("%d", created.ID)

	updated, err := s.service.Update(s.ctx, idText, model.PlayerPatch{})
	s.Require().NoError(err)
	s.Equal(created, updated)

	got, err := s.service.Get(s.ctx, idText)
	s.Require().NoError(err)
	s.Equal(created, got)
}

func (s *ServiceSuite) TestUpdateMissingPlayer() {
	_, err := s.service.Update(s.ctx, "12345", model.PlayerPatch{Name: ptr("Sam")})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdateInvalidValue() {
	created := s.createPlayer("Frodo", 0)

	_, err := s.service.Update(s.ctx, fmt.Sprintf("%d", created.ID), model.PlayerPatch{
		Experience: ptr(int32(10_000_001)),
	})
	var ve *model.ValidationError
	s.ErrorAs(err, &ve)
}

// Delete

func (s *ServiceSuite) TestDelete() {
	created := s.createPlayer("Boromir", 0)
	idText := fmt.Sprintf("%d", created.ID)

	s.Require().NoError(s.service.Delete(s.ctx, idText))

	_, err := s.service.Get(s.ctx, idText)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteMissingPlayer() {
	err := s.service.Delete(s.ctx, "54321")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// List and count

func (s *ServiceSuite) TestListEmptyStorage() {
	players, err := s.service.List(s.ctx, model.PlayerFilter{}, model.DefaultPage(), model.OrderID)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *ServiceSuite) TestListPagingByName() {
	for _, name := range []string{"C", "A", "J", "B", "E", "D", "H", "F", "I", "G"} {
		s.createPlayer(name, 0)
	}

	players, err := s.service.List(s.ctx, model.PlayerFilter{},
		model.Page{Number: 1, Size: 3}, model.OrderName)
	s.Require().NoError(err)

	s.Require().Len(players, 3)
	s.Equal("D", players[0].Name)
	s.Equal("E", players[1].Name)
	s.Equal("F", players[2].Name)
}

func (s *ServiceSuite) TestCountMatchesListLength() {
	for i, exp := range []int32{0, 5_000, 10_000, 200_000, 1_000_000} {
		s.createPlayer(fmt.Sprintf("Player%d", i), exp)
	}

	filter := model.PlayerFilter{MinExperience: ptr(int32(10_000))}

	count, err := s.service.Count(s.ctx, filter)
	s.Require().NoError(err)

	players, err := s.service.List(s.ctx, filter, model.Page{Number: 0, Size: 1000}, model.OrderID)
	s.Require().NoError(err)

	s.Equal(count, len(players))
	s.Equal(3, count)
}

func (s *ServiceSuite) TestAddingClauseNeverEnlargesResult() {
	for i, exp := range []int32{0, 5_000, 10_000, 200_000, 1_000_000} {
		s.createPlayer(fmt.Sprintf("Player%d", i), exp)
	}

	base := model.PlayerFilter{MinExperience: ptr(int32(5_000))}
	narrowed := base
	narrowed.MaxLevel = ptr(int32(10))

	baseCount, err := s.service.Count(s.ctx, base)
	s.Require().NoError(err)
	narrowedCount, err := s.service.Count(s.ctx, narrowed)
	s.Require().NoError(err)

	s.LessOrEqual(narrowedCount, baseCount)
}

func (s *ServiceSuite) TestCountWithoutFilterIsTotal() {
	for i := 0; i < 4; i++ {
		s.createPlayer(fmt.Sprintf("P%d", i), 0)
	}

	count, err := s.service.Count(s.ctx, model.PlayerFilter{})
	s.Require().NoError(err)
	s.Equal(4, count)
}
