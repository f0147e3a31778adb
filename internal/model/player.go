package model

import (
	"math"
	"unicode/utf8"
)

// Race is a player's race
type Race string

// Valid races
const (
	RaceHuman  Race = "HUMAN"
	RaceDwarf  Race = "DWARF"
	RaceElf    Race = "ELF"
	RaceGiant  Race = "GIANT"
	RaceOrc    Race = "ORC"
	RaceTroll  Race = "TROLL"
	RaceHobbit Race = "HOBBIT"
)

var races = map[Race]bool{
	RaceHuman:  true,
	RaceDwarf:  true,
	RaceElf:    true,
	RaceGiant:  true,
	RaceOrc:    true,
	RaceTroll:  true,
	RaceHobbit: true,
}

// ParseRace parses a race name
func ParseRace(s string) (Race, error) {
	r := Race(s)
	if !races[r] {
		return "", NewValidationError("race", "unknown race")
	}
	return r, nil
}

// Profession is a player's profession
type Profession string

// Valid professions
const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
)

var professions = map[Profession]bool{
	ProfessionWarrior:  true,
	ProfessionRogue:    true,
	ProfessionSorcerer: true,
	ProfessionCleric:   true,
	ProfessionPaladin:  true,
	ProfessionNazgul:   true,
	ProfessionWarlock:  true,
	ProfessionDruid:    true,
}

// ParseProfession parses a profession name
func ParseProfession(s string) (Profession, error) {
	p := Profession(s)
	if !professions[p] {
		return "", NewValidationError("profession", "unknown profession")
	}
	return p, nil
}

// Field constraints. Birthday bounds are exclusive epoch-millis instants:
// 2000-01-01T00:00:00Z and 3000-12-31T23:59:59Z.
const (
	MaxNameLength  = 12
	MaxTitleLength = 30
	MaxExperience  = 10_000_000

	MinBirthdayMillis int64 = 946_684_800_000
	MaxBirthdayMillis int64 = 32_535_215_999_000
)

// Player is a game character record. Birthday is an epoch-millis instant.
// Level and UntilNextLevel are derived from Experience and stored.
type Player struct {
	ID             int64
	Name           string
	Title          string
	Race           Race
	Profession     Profession
	Birthday       int64
	Banned         bool
	Experience     int32
	Level          int32
	UntilNextLevel int32
}

// PlayerPatch is a partial player payload. Nil fields mean "leave unchanged"
// on update and "missing" on create. Level and until-next-level are never
// accepted from callers.
type PlayerPatch struct {
	Name       *string
	Title      *string
	Race       *Race
	Profession *Profession
	Birthday   *int64
	Banned     *bool
	Experience *int32
}

// LevelForExperience derives a player's level from experience.
// Integer truncation after the division is part of the contract.
func LevelForExperience(exp int32) int32 {
	return (int32(math.Sqrt(float64(2500+200*int64(exp)))) - 50) / 100
}

// ExperienceToNextLevel derives the experience remaining to the next level
func ExperienceToNextLevel(level, exp int32) int32 {
	return 50*(level+1)*(level+2) - exp
}

// NewPlayer validates a full create payload and builds a Player with derived
// fields populated. Banned defaults to false when absent; every other field
// is required. Validation stops at the first violation.
func NewPlayer(patch PlayerPatch) (*Player, error) {
	if patch.Name == nil || patch.Title == nil || patch.Race == nil ||
		patch.Profession == nil || patch.Birthday == nil || patch.Experience == nil {
		return nil, NewValidationError("player", "missing required field")
	}

	if err := validateName(*patch.Name); err != nil {
		return nil, err
	}
	if err := validateTitle(*patch.Title); err != nil {
		return nil, err
	}

	// Raw negative instants are rejected before the range check
	if *patch.Birthday < 0 {
		return nil, NewValidationError("birthday", "must not be negative")
	}
	if err := validateBirthday(*patch.Birthday); err != nil {
		return nil, err
	}

	banned := false
	if patch.Banned != nil {
		banned = *patch.Banned
	}

	if err := validateExperience(*patch.Experience); err != nil {
		return nil, err
	}

	p := &Player{
		Name:       *patch.Name,
		Title:      *patch.Title,
		Race:       *patch.Race,
		Profession: *patch.Profession,
		Birthday:   *patch.Birthday,
		Banned:     banned,
		Experience: *patch.Experience,
	}
	p.derive()
	return p, nil
}

// Apply validates the present fields of a patch and returns an updated copy
// of the player. Absent fields are untouched. Level and until-next-level are
// recomputed whenever experience changes.
func (p Player) Apply(patch PlayerPatch) (*Player, error) {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return nil, err
		}
		p.Title = *patch.Title
	}
	if patch.Race != nil {
		p.Race = *patch.Race
	}
	if patch.Profession != nil {
		p.Profession = *patch.Profession
	}
	if patch.Birthday != nil {
		if err := validateBirthday(*patch.Birthday); err != nil {
			return nil, err
		}
		p.Birthday = *patch.Birthday
	}
	if patch.Banned != nil {
		p.Banned = *patch.Banned
	}
	if patch.Experience != nil {
		if err := validateExperience(*patch.Experience); err != nil {
			return nil, err
		}
		p.Experience = *patch.Experience
		p.derive()
	}
	return &p, nil
}

func (p *Player) derive() {
	p.Level = LevelForExperience(p.Experience)
	p.UntilNextLevel = ExperienceToNextLevel(p.Level, p.Experience)
}

// Whitespace is intentionally not trimmed; "  " is a valid name
func validateName(name string) error {
	if name == "" {
		return NewValidationError("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return NewValidationError("name", "must be at most 12 characters")
	}
	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 30 characters")
	}
	return nil
}

// Bounds are exclusive; the boundary millisecond itself is rejected
func validateBirthday(millis int64) error {
	if millis <= MinBirthdayMillis || millis >= MaxBirthdayMillis {
		return NewValidationError("birthday", "must be between years 2000 and 3000")
	}
	return nil
}

func validateExperience(exp int32) error {
	if exp < 0 || exp > MaxExperience {
		return NewValidationError("experience", "must be between 0 and 10000000")
	}
	return nil
}
