package request

import (
	"net/url"
	"strconv"

	"github.com/DenysFlnk/playerroster/internal/model"
)

// ParseFilter builds the typed player filter from query parameters.
// Absent keys contribute no clause.
func ParseFilter(q url.Values) (model.PlayerFilter, error) {
	var filter model.PlayerFilter

	if v := q.Get("name"); v != "" {
		filter.Name = &v
	}
	if v := q.Get("title"); v != "" {
		filter.Title = &v
	}
	if v := q.Get("race"); v != "" {
		race, err := model.ParseRace(v)
		if err != nil {
			return model.PlayerFilter{}, err
		}
		filter.Race = &race
	}
	if v := q.Get("profession"); v != "" {
		profession, err := model.ParseProfession(v)
		if err != nil {
			return model.PlayerFilter{}, err
		}
		filter.Profession = &profession
	}

	var err error
	if filter.After, err = int64Param(q, "after"); err != nil {
		return model.PlayerFilter{}, err
	}
	if filter.Before, err = int64Param(q, "before"); err != nil {
		return model.PlayerFilter{}, err
	}
	if v := q.Get("banned"); v != "" {
		switch v {
		case "true":
			banned := true
			filter.Banned = &banned
		case "false":
			banned := false
			filter.Banned = &banned
		default:
			return model.PlayerFilter{}, model.NewValidationError("banned", "must be 'true' or 'false'")
		}
	}
	if filter.MinExperience, err = int32Param(q, "minExperience"); err != nil {
		return model.PlayerFilter{}, err
	}
	if filter.MaxExperience, err = int32Param(q, "maxExperience"); err != nil {
		return model.PlayerFilter{}, err
	}
	if filter.MinLevel, err = int32Param(q, "minLevel"); err != nil {
		return model.PlayerFilter{}, err
	}
	if filter.MaxLevel, err = int32Param(q, "maxLevel"); err != nil {
		return model.PlayerFilter{}, err
	}

	return filter, nil
}

// ParsePage normalizes the paging keys, applying defaults for absent ones
func ParsePage(q url.Values) (model.Page, error) {
	page := model.DefaultPage()

	if v := q.Get("pageNumber"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return model.Page{}, model.NewValidationError("pageNumber", "must be a non-negative integer")
		}
		page.Number = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return model.Page{}, model.NewValidationError("pageSize", "must be a positive integer")
		}
		page.Size = n
	}
	return page, nil
}

// ParseOrder parses the order key, defaulting to ID
func ParseOrder(q url.Values) (model.SortOrder, error) {
	v := q.Get("order")
	if v == "" {
		return model.OrderID, nil
	}
	return model.ParseSortOrder(v)
}

func int64Param(q url.Values, key string) (*int64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, model.NewValidationError(key, "must be an integer")
	}
	return &n, nil
}

func int32Param(q url.Values, key string) (*int32, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil, model.NewValidationError(key, "must be an integer")
	}
	n32 := int32(n)
	return &n32, nil
}
