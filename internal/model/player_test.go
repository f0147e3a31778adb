package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func ptr[T any](v T) *T {
	return &v
}

func validPatch() PlayerPatch {
	return PlayerPatch{
		Name:       ptr("Gandalf"),
		Title:      ptr("Grey"),
		Race:       ptr(RaceHobbit),
		Profession: ptr(ProfessionSorcerer),
		Birthday:   ptr(int64(946_684_800_001)),
		Experience: ptr(int32(0)),
	}
}

// Derivation

func (s *PlayerSuite) TestLevelForZeroExperience() {
	s.Equal(int32(0), LevelForExperience(0))
	s.Equal(int32(100), ExperienceToNextLevel(0, 0))
}

func (s *PlayerSuite) TestLevelForMillionExperience() {
	level := LevelForExperience(1_000_000)
	s.Equal(int32(44), level)
	s.Equal(int32(100_000), ExperienceToNextLevel(level, 1_000_000))
}

func (s *PlayerSuite) TestLevelMatchesFormula() {
	for _, exp := range []int32{0, 1, 99, 100, 101, 5000, 123_456, 1_000_000, 9_999_999, 10_000_000} {
		want := int32(math.Floor((math.Sqrt(float64(2500+200*int64(exp))) - 50) / 100))
		s.Equal(want, LevelForExperience(exp), "experience %d", exp)
	}
}

func (s *PlayerSuite) TestUntilNextLevelNeverNegative() {
	for exp := int32(0); exp <= MaxExperience; exp += 997 {
		level := LevelForExperience(exp)
		s.GreaterOrEqual(ExperienceToNextLevel(level, exp), int32(0), "experience %d", exp)
	}
}

// Creation

func (s *PlayerSuite) TestNewPlayer() {
	player, err := NewPlayer(validPatch())
	s.Require().NoError(err)

	s.Equal("Gandalf", player.Name)
	s.Equal("Grey", player.Title)
	s.Equal(RaceHobbit, player.Race)
	s.Equal(ProfessionSorcerer, player.Profession)
	s.Equal(int64(946_684_800_001), player.Birthday)
	s.False(player.Banned)
	s.Equal(int32(0), player.Experience)
	s.Equal(int32(0), player.Level)
	s.Equal(int32(100), player.UntilNextLevel)
}

func (s *PlayerSuite) TestNewPlayerDerivesLevel() {
	patch := validPatch()
	patch.Experience = ptr(int32(1_000_000))

	player, err := NewPlayer(patch)
	s.Require().NoError(err)
	s.Equal(int32(44), player.Level)
	s.Equal(int32(100_000), player.UntilNextLevel)
}

func (s *PlayerSuite) TestNewPlayerMissingField() {
	for _, strip := range []func(*PlayerPatch){
		func(p *PlayerPatch) { p.Name = nil },
		func(p *PlayerPatch) { p.Title = nil },
		func(p *PlayerPatch) { p.Race = nil },
		func(p *PlayerPatch) { p.Profession = nil },
		func(p *PlayerPatch) { p.Birthday = nil },
		func(p *PlayerPatch) { p.Experience = nil },
	} {
		patch := validPatch()
		strip(&patch)

		_, err := NewPlayer(patch)
		var ve *ValidationError
		s.ErrorAs(err, &ve)
	}
}

func (s *PlayerSuite) TestNewPlayerBannedDefaultsFalse() {
	patch := validPatch()
	patch.Banned = nil

	player, err := NewPlayer(patch)
	s.Require().NoError(err)
	s.False(player.Banned)
}

func (s *PlayerSuite) TestNewPlayerEmptyName() {
	patch := validPatch()
	patch.Name = ptr("")

	_, err := NewPlayer(patch)
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("name", ve.Field)
}

func (s *PlayerSuite) TestNewPlayerWhitespaceNameAccepted() {
	patch := validPatch()
	patch.Name = ptr("  ")

	_, err := NewPlayer(patch)
	s.NoError(err)
}

func (s *PlayerSuite) TestNewPlayerNameTooLong() {
	patch := validPatch()
	patch.Name = ptr("ThirteenChars")

	_, err := NewPlayer(patch)
	s.Error(err)
}

func (s *PlayerSuite) TestNewPlayerEmptyTitleAccepted() {
	patch := validPatch()
	patch.Title = ptr("")

	_, err := NewPlayer(patch)
	s.NoError(err)
}

func (s *PlayerSuite) TestNewPlayerTitleTooLong() {
	patch := validPatch()
	patch.Title = ptr("0123456789012345678901234567890")

	_, err := NewPlayer(patch)
	s.Error(err)
}

func (s *PlayerSuite) TestNewPlayerNegativeBirthday() {
	patch := validPatch()
	patch.Birthday = ptr(int64(-5))

	_, err := NewPlayer(patch)
	var ve *ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Equal("birthday", ve.Field)
}

func (s *PlayerSuite) TestNewPlayerBirthdayBounds() {
	cases := []struct {
		millis int64
		valid  bool
	}{
		{MinBirthdayMillis, false},
		{MinBirthdayMillis + 1, true},
		{MaxBirthdayMillis - 1, true},
		{MaxBirthdayMillis, false},
	}
	for _, tc := range cases {
		patch := validPatch()
		patch.Birthday = ptr(tc.millis)

		_, err := NewPlayer(patch)
		if tc.valid {
			s.NoError(err, "millis %d", tc.millis)
		} else {
			s.Error(err, "millis %d", tc.millis)
		}
	}
}

func (s *PlayerSuite) TestNewPlayerExperienceBounds() {
	for _, tc := range []struct {
		exp   int32
		valid bool
	}{
		{-1, false},
		{0, true},
		{MaxExperience, true},
		{MaxExperience + 1, false},
	} {
		patch := validPatch()
		patch.Experience = ptr(tc.exp)

		_, err := NewPlayer(patch)
		if tc.valid {
			s.NoError(err, "experience %d", tc.exp)
		} else {
			s.Error(err, "experience %d", tc.exp)
		}
	}
}

// Updates

func (s *PlayerSuite) TestApplyEmptyPatchIsNoOp() {
	player, err := NewPlayer(validPatch())
	s.Require().NoError(err)
	player.ID = 7

	updated, err := player.Apply(PlayerPatch{})
	s.Require().NoError(err)
	s.Equal(player, updated)
}

func (s *PlayerSuite) TestApplyRecomputesDerivedFields() {
	player, err := NewPlayer(validPatch())
	s.Require().NoError(err)

	updated, err := player.Apply(PlayerPatch{Experience: ptr(int32(10_000))})
	s.Require().NoError(err)
	s.Equal(int32(10_000), updated.Experience)
	s.Equal(int32(4), updated.Level)
	s.Equal(int32(150), updated.UntilNextLevel)

	// Other fields untouched
	s.Equal(player.Name, updated.Name)
	s.Equal(player.Birthday, updated.Birthday)

	// Receiver value unchanged
	s.Equal(int32(0), player.Experience)
}

func (s *PlayerSuite) TestApplyInvalidFieldFails() {
	player, err := NewPlayer(validPatch())
	s.Require().NoError(err)

	_, err = player.Apply(PlayerPatch{Experience: ptr(int32(-1))})
	s.Error(err)

	_, err = player.Apply(PlayerPatch{Name: ptr("")})
	s.Error(err)
}

// Enums

func (s *PlayerSuite) TestParseRace() {
	race, err := ParseRace("ORC")
	s.Require().NoError(err)
	s.Equal(RaceOrc, race)

	_, err = ParseRace("GOBLIN")
	s.Error(err)
}

func (s *PlayerSuite) TestParseProfession() {
	profession, err := ParseProfession("NAZGUL")
	s.Require().NoError(err)
	s.Equal(ProfessionNazgul, profession)

	_, err = ParseProfession("BARD")
	s.Error(err)
}
