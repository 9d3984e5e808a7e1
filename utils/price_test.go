package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{299900, "Rs. 2,999.00"},
		{799900, "Rs. 7,999.00"},
		{0, "Rs. 0.00"},
		{5, "Rs. 0.05"},
		{100, "Rs. 1.00"},
		{99999, "Rs. 999.99"},
		{123456789, "Rs. 1,234,567.89"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.cents))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(299900), ToMinorUnits(2999.00))
	assert.Equal(t, int64(2999), ToMinorUnits(29.99))
	assert.Equal(t, int64(0), ToMinorUnits(0))
	assert.Equal(t, int64(1), ToMinorUnits(0.01))
}

func TestMinorToMajor(t *testing.T) {
	assert.Equal(t, 2999.0, MinorToMajor(299900))
	assert.Equal(t, 29.99, MinorToMajor(2999))
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 2999, 299900, 799900, 123456789} {
		t.Run(fmt.Sprintf("%d", cents), func(t *testing.T) {
			assert.Equal(t, cents, ToMinorUnits(MinorToMajor(cents)))
		})
	}
}
