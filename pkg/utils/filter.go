package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// Filter carries list-view query parameters shared by every search endpoint.
type Filter struct {
	Search    string
	CompanyID string
	Status    string
	Limit     int
	Offset    int
}

func ParseFilterFromQuery(values url.Values) Filter {
	f := Filter{
		Search:    values.Get("search"),
		CompanyID: values.Get("company_id"),
		Status:    values.Get("status"),
		Limit:     DefaultLimit,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				f.Limit = MaxLimit
			} else {
				f.Limit = l
			}
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			f.Offset = o
		}
	}

	return f
}

// Page applies limit/offset to an already filtered slice.
func Page[T any](items []T, f Filter) []T {
	if f.Offset >= len(items) {
		return []T{}
	}
	end := f.Offset + f.Limit
	if f.Limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[f.Offset:end]
}
