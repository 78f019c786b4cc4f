package search

import (
	"math"
	"regexp"

	"hotelbooking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSize is the fixed number of hotels per search page.
const PageSize = 5

// MaxPage caps the requested page so the skip offset fits in any int.
const MaxPage = math.MaxInt32 / PageSize

// BuildFilter compiles params into a MongoDB filter. Constraints are ANDed;
// an unset dimension contributes nothing.
func BuildFilter(p models.SearchParams) bson.M {
	filter := bson.M{}

	if p.Destination != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(p.Destination), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"city": re},
			bson.M{"country": re},
		}
	}
	if p.AdultCount != nil {
		filter["adultCount"] = bson.M{"$gte": *p.AdultCount}
	}
	if p.ChildCount != nil {
		filter["childCount"] = bson.M{"$gte": *p.ChildCount}
	}
	if len(p.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": p.Facilities}
	}
	if len(p.Types) > 0 {
		filter["type"] = bson.M{"$in": p.Types}
	}
	if len(p.Stars) > 0 {
		filter["starRating"] = bson.M{"$in": p.Stars}
	}
	if p.MaxPrice != nil {
		filter["pricePerNight"] = bson.M{"$lte": *p.MaxPrice}
	}
	return filter
}

// BuildSort returns the sort document for s, with id as the tiebreaker.
func BuildSort(s models.SortOption) bson.D {
	var primary bson.E
	switch s {
	case models.SortPricePerNightAsc:
		primary = bson.E{Key: "pricePerNight", Value: 1}
	case models.SortPricePerNightDesc:
		primary = bson.E{Key: "pricePerNight", Value: -1}
	default:
		primary = bson.E{Key: "starRating", Value: -1}
	}
	return bson.D{primary, {Key: "id", Value: 1}}
}

// BuildSearchPlan is pure: same params, same plan.
func BuildSearchPlan(p models.SearchParams) models.SearchPlan {
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	p.Page = page
	return models.SearchPlan{
		Params: p,
		Filter: BuildFilter(p),
		Sort:   BuildSort(p.Sort),
		Skip:   int64(page-1) * PageSize,
		Limit:  PageSize,
	}
}

// TotalPages is ceil(total / PageSize).
func TotalPages(total int64) int {
	return int((total + PageSize - 1) / PageSize)
}
