package model

import "strings"

// PlayerFilter is the AND-composition of optional clauses over the player
// collection. Nil fields contribute no clause.
type PlayerFilter struct {
	Name          *string
	Title         *string
	Race          *Race
	Profession    *Profession
	After         *int64
	Before        *int64
	Banned        *bool
	MinExperience *int32
	MaxExperience *int32
	MinLevel      *int32
	MaxLevel      *int32
}

// Matches reports whether a player satisfies every present clause.
// Substring matches are case-sensitive; range bounds are inclusive.
func (f PlayerFilter) Matches(p *Player) bool {
	if f.Name != nil && !strings.Contains(p.Name, *f.Name) {
		return false
	}
	if f.Title != nil && !strings.Contains(p.Title, *f.Title) {
		return false
	}
	if f.Race != nil && p.Race != *f.Race {
		return false
	}
	if f.Profession != nil && p.Profession != *f.Profession {
		return false
	}
	if f.After != nil && p.Birthday < *f.After {
		return false
	}
	if f.Before != nil && p.Birthday > *f.Before {
		return false
	}
	if f.Banned != nil && p.Banned != *f.Banned {
		return false
	}
	if f.MinExperience != nil && p.Experience < *f.MinExperience {
		return false
	}
	if f.MaxExperience != nil && p.Experience > *f.MaxExperience {
		return false
	}
	if f.MinLevel != nil && p.Level < *f.MinLevel {
		return false
	}
	if f.MaxLevel != nil && p.Level > *f.MaxLevel {
		return false
	}
	return true
}

// SortOrder selects the field the list operation sorts by.
// Direction is always ascending.
type SortOrder string

// Valid sort orders
const (
	OrderID         SortOrder = "ID"
	OrderName       SortOrder = "NAME"
	OrderExperience SortOrder = "EXPERIENCE"
	OrderBirthday   SortOrder = "BIRTHDAY"
	OrderLevel      SortOrder = "LEVEL"
)

var orderFields = map[SortOrder]string{
	OrderID:         "id",
	OrderName:       "name",
	OrderExperience: "experience",
	OrderBirthday:   "birthday",
	OrderLevel:      "level",
}

// ParseSortOrder parses an order name
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(s)
	if _, ok := orderFields[o]; !ok {
		return "", NewValidationError("order", "unknown order")
	}
	return o, nil
}

// Field returns the sort field's column name
func (o SortOrder) Field() string {
	return orderFields[o]
}

// Less compares two players by the sort field, ascending, with id as
// tiebreaker so that paging is deterministic.
func (o SortOrder) Less(a, b *Player) bool {
	switch o {
	case OrderName:
		if a.Name != b.Name {
			return a.Name < b.Name
		}
	case OrderExperience:
		if a.Experience != b.Experience {
			return a.Experience < b.Experience
		}
	case OrderBirthday:
		if a.Birthday != b.Birthday {
			return a.Birthday < b.Birthday
		}
	case OrderLevel:
		if a.Level != b.Level {
			return a.Level < b.Level
		}
	}
	return a.ID < b.ID
}

// Default paging values
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// Page selects a slice of a sorted result set. Number is 0-based.
type Page struct {
	Number int
	Size   int
}

// DefaultPage returns the default paging values
func DefaultPage() Page {
	return Page{Number: DefaultPageNumber, Size: DefaultPageSize}
}

// Offset returns the index of the first row of the page
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Slice returns the window of players covered by the page. Pages past the
// end, a negative number or a non-positive size yield an empty result.
func (p Page) Slice(players []*Player) []*Player {
	if p.Number < 0 || p.Size < 1 {
		return []*Player{}
	}
	start := p.Offset()
	if start >= len(players) {
		return []*Player{}
	}
	end := start + p.Size
	if end > len(players) {
		end = len(players)
	}
	return players[start:end]
}
