package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFilterNormalized(t *testing.T) {
	f := LocationFilter{
		Region:       "all",
		Province:     "ALL",
		Municipality: "  Baybay  ",
		Barangay:     "",
	}.Normalized()

	assert.Empty(t, f.Region, `"all" means unfiltered`)
	assert.Empty(t, f.Province)
	assert.Equal(t, "Baybay", f.Municipality)
	assert.Empty(t, f.Barangay)
}
