package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"hotelbooking/models"
	"hotelbooking/utils"
)

// ParseSearchParams turns raw query values into typed search params. Each key
// may be absent, single or repeated, in plain or "key[]" form. Malformed
// numeric filters are rejected; a malformed page falls back to 1.
func ParseSearchParams(q url.Values) (models.SearchParams, error) {
	var (
		p      models.SearchParams
		fields []utils.FieldError
	)

	p.Destination = strings.TrimSpace(first(q, "destination"))

	p.AdultCount = parseCount(q, "adultCount", &fields)
	p.ChildCount = parseCount(q, "childCount", &fields)
	p.MaxPrice = parseCount(q, "maxPrice", &fields)

	p.Facilities = values(q, "facilities")
	p.Types = values(q, "types")

	for _, raw := range values(q, "stars") {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			fields = append(fields, utils.FieldError{
				Field:   "stars",
				Message: fmt.Sprintf("stars must be whole numbers between 1 and 5, got %q", raw),
			})
			continue
		}
		p.Stars = append(p.Stars, n)
	}

	p.Sort = models.ParseSortOption(first(q, "sortOptions"))
	p.Page = parsePage(first(q, "page"))

	if len(fields) > 0 {
		return models.SearchParams{}, utils.NewValidationError("Invalid search parameters", fields...)
	}
	return p, nil
}

// values collects every non-empty value of key and key[].
func values(q url.Values, key string) []string {
	var out []string
	for _, k := range []string{key, key + "[]"} {
		for _, v := range q[k] {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func first(q url.Values, key string) string {
	if vs := values(q, key); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func parseCount(q url.Values, key string, fields *[]utils.FieldError) *int {
	raw := first(q, key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*fields = append(*fields, utils.FieldError{
			Field:   key,
			Message: fmt.Sprintf("%s must be a non-negative whole number, got %q", key, raw),
		})
		return nil
	}
	return &n
}

// parsePage falls back to 1 for anything that is not a positive integer and
// clamps oversized pages to MaxPage.
func parsePage(raw string) int {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	switch {
	case n < 1:
		return 1
	case n > MaxPage:
		return MaxPage
	}
	return int(n)
}
