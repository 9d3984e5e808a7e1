package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFilterSpecDefaultsToNewest(t *testing.T) {
	f := NewFilterSpec("", "", "", "", "")
	assert.Equal(t, SortNewest, f.Sort)
	assert.True(t, f.IsEmpty())
}

func TestNewFilterSpecUnknownSortFallsBack(t *testing.T) {
	f := NewFilterSpec("", "", "", "", "name-asc")
	assert.Equal(t, SortNewest, f.Sort)
}

func TestNewFilterSpecAcceptsPriceSorts(t *testing.T) {
	assert.Equal(t, SortPriceAsc, NewFilterSpec("", "", "", "", SortPriceAsc).Sort)
	assert.Equal(t, SortPriceDesc, NewFilterSpec("", "", "", "", SortPriceDesc).Sort)
}

func TestNewFilterSpecTrimsValues(t *testing.T) {
	f := NewFilterSpec(" men ", " M ", " 5000 ", " shirt ", "")
	assert.Equal(t, "men", f.Category)
	assert.Equal(t, "M", f.Size)
	assert.Equal(t, "5000", f.MaxPrice)
	assert.Equal(t, "shirt", f.Search)
	assert.False(t, f.IsEmpty())
}

func TestIsEmptyConsidersNonDefaultSort(t *testing.T) {
	f := NewFilterSpec("", "", "", "", SortPriceAsc)
	assert.False(t, f.IsEmpty())
}
