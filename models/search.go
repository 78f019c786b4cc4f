// File: models/search.go
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SortOption selects the ordering of search results.
type SortOption string

const (
	SortStarRating        SortOption = "starRating"
	SortPricePerNightAsc  SortOption = "pricePerNightAsc"
	SortPricePerNightDesc SortOption = "pricePerNightDesc"
)

// ParseSortOption maps a raw sortOptions value; anything unknown sorts by star rating.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortPricePerNightAsc, SortPricePerNightDesc:
		return SortOption(raw)
	default:
		return SortStarRating
	}
}

// SearchParams is the parsed form of the hotel search query string.
// Nil pointers and empty slices mean "no constraint on this dimension".
type SearchParams struct {
	Destination string
	AdultCount  *int
	ChildCount  *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *int
	Sort        SortOption
	Page        int
}

// Matches applies the same predicate the store filter expresses, for stores
// that evaluate in process.
func (p SearchParams) Matches(h Hotel) bool {
	return p.matchesDestination(h) &&
		(p.AdultCount == nil || h.AdultCount >= *p.AdultCount) &&
		(p.ChildCount == nil || h.ChildCount >= *p.ChildCount) &&
		p.matchesFacilities(h.Facilities) &&
		p.matchesType(h.Type) &&
		p.matchesStars(h.StarRating) &&
		(p.MaxPrice == nil || h.PricePerNight <= float64(*p.MaxPrice))
}

func (p SearchParams) matchesDestination(h Hotel) bool {
	if p.Destination == "" {
		return true
	}
	d := strings.ToLower(p.Destination)
	return strings.Contains(strings.ToLower(h.City), d) ||
		strings.Contains(strings.ToLower(h.Country), d)
}

// matchesFacilities requires every requested facility to be present.
func (p SearchParams) matchesFacilities(have []string) bool {
	for _, want := range p.Facilities {
		found := false
		for _, f := range have {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (p SearchParams) matchesType(t string) bool {
	if len(p.Types) == 0 {
		return true
	}
	for _, want := range p.Types {
		if t == want {
			return true
		}
	}
	return false
}

func (p SearchParams) matchesStars(rating int) bool {
	if len(p.Stars) == 0 {
		return true
	}
	for _, s := range p.Stars {
		if rating == s {
			return true
		}
	}
	return false
}

// Less orders two hotels by the sort option, breaking ties on id so that
// pagination is deterministic.
func (s SortOption) Less(a, b Hotel) bool {
	switch s {
	case SortPricePerNightAsc:
		if a.PricePerNight != b.PricePerNight {
			return a.PricePerNight < b.PricePerNight
		}
	case SortPricePerNightDesc:
		if a.PricePerNight != b.PricePerNight {
			return a.PricePerNight > b.PricePerNight
		}
	default:
		if a.StarRating != b.StarRating {
			return a.StarRating > b.StarRating
		}
	}
	return a.ID < b.ID
}

// SearchPlan is a store-ready search: the typed params plus the compiled
// MongoDB filter and sort documents and the pagination window.
type SearchPlan struct {
	Params SearchParams
	Filter bson.M
	Sort   bson.D
	Skip   int64
	Limit  int64
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// HotelSearchResponse is the body of GET /api/hotels/search.
type HotelSearchResponse struct {
	Data       []Hotel    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
