// file: internals/helpers/month_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidMonth(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	for _, s := range valid {
		assert.True(t, ValidMonth(s), s)
	}

	invalid := []string{"", "2024-13", "2024-00", "2024-1", "2024/01", "2024-01-15", "abcd-01"}
	for _, s := range invalid {
		assert.False(t, ValidMonth(s), s)
	}
}

func TestMonthOfDate(t *testing.T) {
	assert.Equal(t, "2024-03", MonthOfDate("2024-03-15"))
	assert.Equal(t, "2024-12", MonthOfDate("2024-12-01"))
	assert.Equal(t, "", MonthOfDate("2024"))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	for _, s := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "15-03-2024", "2024-3-5", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestMonthToken(t *testing.T) {
	assert.Equal(t, "2024-01", MonthToken(2024, 1))
	assert.Equal(t, "2024-12", MonthToken(2024, 12))
	assert.Equal(t, "0999-07", MonthToken(999, 7))
}

func TestCurrentMonthShape(t *testing.T) {
	assert.True(t, ValidMonth(CurrentMonth()))
}
