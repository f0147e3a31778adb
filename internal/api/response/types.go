package response

import "github.com/DenysFlnk/playerroster/internal/model"

// Player represents a player in API responses. Birthday is epoch millis.
type Player struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Birthday       int64  `json:"birthday"`
	Banned         bool   `json:"banned"`
	Experience     int32  `json:"experience"`
	Level          int32  `json:"level"`
	UntilNextLevel int32  `json:"untilNextLevel"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:             p.ID,
		Name:           p.Name,
		Title:          p.Title,
		Race:           string(p.Race),
		Profession:     string(p.Profession),
		Birthday:       p.Birthday,
		Banned:         p.Banned,
		Experience:     p.Experience,
		Level:          p.Level,
		UntilNextLevel: p.UntilNextLevel,
	}
}

// PlayersFromModel converts a list of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}
