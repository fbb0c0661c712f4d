package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYearRange(t *testing.T) {
	lo, hi := YearRange(2026)
	assert.Equal(t, int64(20260000), lo)
	assert.Equal(t, int64(20270000), hi)

	// ids are always year-prefixed; the first id of a year is lo+1
	assert.Less(t, lo, lo+1)
	assert.Greater(t, hi, lo+9999)
}
