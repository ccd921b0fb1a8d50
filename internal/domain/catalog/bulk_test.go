package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPriceChangePercentRange(t *testing.T) {
	// Values in (0, 100) read as a percentage increase.
	assert.Equal(t, int64(110000), applyPriceChange(100000, 10))
	assert.Equal(t, int64(8500000+425000), applyPriceChange(8500000, 5))

	// Everything else replaces the price outright.
	assert.Equal(t, int64(500000), applyPriceChange(100000, 500000))
	assert.Equal(t, int64(100), applyPriceChange(100000, 100))
	assert.Equal(t, int64(0), applyPriceChange(100000, 0))
	assert.Equal(t, int64(-5), applyPriceChange(100000, -5))
}

func TestApplyStockChangeDeltaRange(t *testing.T) {
	// Non-zero values in (-100, 100) read as a delta.
	assert.Equal(t, 15, applyStockChange(10, 5))
	assert.Equal(t, 5, applyStockChange(10, -5))
	assert.Equal(t, 0, applyStockChange(10, -50))

	// Everything else is an absolute count.
	assert.Equal(t, 0, applyStockChange(10, 0))
	assert.Equal(t, 100, applyStockChange(10, 100))
	assert.Equal(t, 250, applyStockChange(10, 250))
	assert.Equal(t, 0, applyStockChange(10, -100))
}

func TestBuildBulkApplyValidation(t *testing.T) {
	cases := []struct {
		action string
		value  string
		ok     bool
	}{
		{BulkSetStatus, "active", true},
		{BulkSetStatus, "sold", false},
		{BulkSetCategory, "lighting", true},
		{BulkSetCategory, "plants", false},
		{BulkSetPrice, "10", true},
		{BulkSetPrice, "ten", false},
		{BulkSetStock, "-5", true},
		{BulkSetStock, "", false},
		{BulkSetFeatured, "true", true},
		{BulkSetFeatured, "yes", false},
		{"rename", "x", false},
	}

	for _, tc := range cases {
		apply, err := buildBulkApply(tc.action, tc.value)
		if tc.ok {
			assert.NoError(t, err, "%s %s", tc.action, tc.value)
			assert.NotNil(t, apply)
		} else {
			assert.ErrorIs(t, err, ErrInvalidBulkEdit, "%s %s", tc.action, tc.value)
		}
	}
}

func TestBuildBulkApplyFeatured(t *testing.T) {
	apply, err := buildBulkApply(BulkSetFeatured, "true")
	assert.NoError(t, err)

	p := Product{ID: "product-1"}
	apply(&p)
	assert.True(t, p.Featured)
}
