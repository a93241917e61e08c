package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	birth := date(2018, time.June, 15)

	assert.Equal(t, 7, CalculateAge(birth, date(2025, time.June, 15)))
	assert.Equal(t, 6, CalculateAge(birth, date(2025, time.June, 14)))
	assert.Equal(t, 6, CalculateAge(birth, date(2025, time.May, 30)))
	assert.Equal(t, 7, CalculateAge(birth, date(2025, time.July, 1)))
	assert.Equal(t, 0, CalculateAge(birth, date(2018, time.December, 31)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2020-02-29")
	require.NoError(t, err)
	assert.Equal(t, date(2020, time.February, 29), d)

	d, err = ParseDate("2020-03-01T10:00:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, 13, d.UTC().Hour())

	_, err = ParseDate("01/03/2020")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDates(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatDate(ts))
	assert.Equal(t, "05/03/2024 09:07:03", FormatDateTime(ts))
	assert.Equal(t, "09:07", FormatTime(ts))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("tio@igreja.org"))
	assert.True(t, ValidateEmail("a.b+c@d.com.br"))
	assert.False(t, ValidateEmail("sem-arroba.com"))
	assert.False(t, ValidateEmail("a @b.com"))
	assert.False(t, ValidateEmail("a@b"))
	assert.False(t, ValidateEmail(""))
}
