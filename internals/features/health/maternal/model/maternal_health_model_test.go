package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryListRoundTrip(t *testing.T) {
	encoded := EncodeHistoryList([]string{"Anemia", "Hypertension"}, "frequent headaches")
	assert.Equal(t, "Anemia,Hypertension, frequent headaches", encoded)

	items, other := DecodeHistoryList(encoded)
	assert.Equal(t, []string{"Anemia", "Hypertension"}, items)
	assert.Equal(t, "frequent headaches", other)
}

func TestHistoryListNoOther(t *testing.T) {
	encoded := EncodeHistoryList([]string{"Anemia"}, "")
	assert.Equal(t, "Anemia", encoded)

	items, other := DecodeHistoryList(encoded)
	assert.Equal(t, []string{"Anemia"}, items)
	assert.Empty(t, other)
}

func TestHistoryListOtherOnly(t *testing.T) {
	encoded := EncodeHistoryList(nil, "dizziness")
	assert.Equal(t, " dizziness", encoded)

	items, other := DecodeHistoryList(encoded)
	assert.Empty(t, items)
	assert.Equal(t, "dizziness", other)
}

func TestHistoryListDropsBlankEntries(t *testing.T) {
	encoded := EncodeHistoryList([]string{" Anemia ", "", "  "}, "  ")
	assert.Equal(t, "Anemia", encoded)
}

func TestDecodeHistoryListEmpty(t *testing.T) {
	items, other := DecodeHistoryList("")
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, other)
}

func TestSupportListRoundTrip(t *testing.T) {
	encoded := EncodeSupportList([]string{"Financial", "Medical", ""})
	assert.Equal(t, "Financial,Medical", encoded)
	assert.Equal(t, []string{"Financial", "Medical"}, DecodeSupportList(encoded))
	assert.Empty(t, DecodeSupportList(""))
}
