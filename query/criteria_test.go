package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hearth-home-server/models"
)

func intPtr(v int) *int { return &v }

func TestParseBedroomParam(t *testing.T) {
	fourPlus, exact := ParseBedroomParam("4+")
	assert.True(t, fourPlus)
	assert.Nil(t, exact)

	fourPlus, exact = ParseBedroomParam("0")
	assert.False(t, fourPlus)
	if assert.NotNil(t, exact) {
		assert.Equal(t, 0, *exact)
	}

	fourPlus, exact = ParseBedroomParam("3")
	assert.False(t, fourPlus)
	if assert.NotNil(t, exact) {
		assert.Equal(t, 3, *exact)
	}

	// Unparseable and negative values impose no constraint.
	for _, raw := range []string{"", "abc", "-1", "2.5"} {
		fourPlus, exact = ParseBedroomParam(raw)
		assert.False(t, fourPlus, "raw=%q", raw)
		assert.Nil(t, exact, "raw=%q", raw)
	}
}

func TestSelectBedroomsPrecedence(t *testing.T) {
	// Sentinel wins over everything.
	sel := SelectBedrooms(true, intPtr(2), intPtr(1))
	assert.Equal(t, BedroomFourPlus, sel.Mode)

	// Exact wins over the minimum bound.
	sel = SelectBedrooms(false, intPtr(2), intPtr(1))
	assert.Equal(t, BedroomExact, sel.Mode)
	assert.Equal(t, 2, sel.Count)

	// Minimum bound applies only on its own.
	sel = SelectBedrooms(false, nil, intPtr(3))
	assert.Equal(t, BedroomAtLeast, sel.Mode)
	assert.Equal(t, 3, sel.Count)

	sel = SelectBedrooms(false, nil, nil)
	assert.Equal(t, BedroomAny, sel.Mode)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, models.KindSale, ParseKind("sale"))
	assert.Equal(t, models.KindRent, ParseKind(" Rent "))
	assert.Equal(t, models.ListingKind(""), ParseKind(""))
	assert.Equal(t, models.ListingKind(""), ParseKind("search"))
}
