package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	offset, limit := Calculate(1, 10)
	require.Equal(t, 0, offset)
	require.Equal(t, 10, limit)

	offset, limit = Calculate(3, 5)
	require.Equal(t, 10, offset)
	require.Equal(t, 5, limit)

	offset, limit = Calculate(0, 500)
	require.Equal(t, 0, offset)
	require.Equal(t, DefaultPageSize, limit)
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "EGP 1850", FormatPrice(1850))
	require.Equal(t, "EGP 0", FormatPrice(0))
}

func TestValidEmail(t *testing.T) {
	require.True(t, ValidEmail("hello@dxlr.eg"))
	require.False(t, ValidEmail("hello@dxlr"))
	require.False(t, ValidEmail("not an email"))
	require.False(t, ValidEmail(""))
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "premium-wool-overcoat", Slugify("Premium Wool Overcoat"))
	require.Equal(t, "shirts", Slugify("  Shirts  "))
	require.Equal(t, "new-sale", Slugify("New & Sale!"))
}
