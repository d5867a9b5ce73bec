package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	start, end, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), end)

	start, end, err = ParseMonth("2023-12")
	require.NoError(t, err)
	assert.Equal(t, time.December, start.Month())
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), end)

	for _, invalid := range []string{"", "2024", "2024-13", "02-2024", "2024-2"} {
		_, _, err := ParseMonth(invalid)
		assert.Error(t, err, invalid)
	}
}
