package models

import "strings"

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// FilterSpec holds the optional catalog-browsing constraints for one query.
// All string fields are optional; empty means "no constraint". MaxPrice is
// the raw decimal major-unit string from the request, parsed by the query
// builder so a malformed value drops only that filter.
type FilterSpec struct {
	Category string
	Size     string
	MaxPrice string
	Search   string
	Sort     string
}

// NewFilterSpec builds a FilterSpec from raw query parameter values.
// Unknown sort values fall back to newest.
func NewFilterSpec(category, size, maxPrice, search, sort string) FilterSpec {
	f := FilterSpec{
		Category: strings.TrimSpace(category),
		Size:     strings.TrimSpace(size),
		MaxPrice: strings.TrimSpace(maxPrice),
		Search:   strings.TrimSpace(search),
		Sort:     SortNewest,
	}
	switch sort {
	case SortPriceAsc, SortPriceDesc:
		f.Sort = sort
	}
	return f
}

// IsEmpty reports whether no filter or non-default sort is set, i.e. the
// query is the plain catalog listing.
func (f FilterSpec) IsEmpty() bool {
	return f.Category == "" && f.Size == "" && f.MaxPrice == "" &&
		f.Search == "" && f.Sort == SortNewest
}
