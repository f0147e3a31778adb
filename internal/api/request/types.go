package request

import "github.com/DenysFlnk/playerroster/internal/model"

// PlayerPayload is the request body for creating or updating a player.
// Pointer fields distinguish absent from present, so a partial update
// leaves absent fields untouched. Level and untilNextLevel are never
// accepted; the service derives them.
type PlayerPayload struct {
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Race       *string `json:"race"`
	Profession *string `json:"profession"`
	Birthday   *int64  `json:"birthday"`
	Banned     *bool   `json:"banned"`
	Experience *int32  `json:"experience"`
}

// ToPatch converts the payload into a typed patch, rejecting enum values
// outside the Race or Profession sets
func (p PlayerPayload) ToPatch() (model.PlayerPatch, error) {
	patch := model.PlayerPatch{
		Name:       p.Name,
		Title:      p.Title,
		Birthday:   p.Birthday,
		Banned:     p.Banned,
		Experience: p.Experience,
	}

	if p.Race != nil {
		race, err := model.ParseRace(*p.Race)
		if err != nil {
			return model.PlayerPatch{}, err
		}
		patch.Race = &race
	}
	if p.Profession != nil {
		profession, err := model.ParseProfession(*p.Profession)
		if err != nil {
			return model.PlayerPatch{}, err
		}
		patch.Profession = &profession
	}
	return patch, nil
}
