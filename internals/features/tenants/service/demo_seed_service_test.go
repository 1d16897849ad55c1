package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsAgo(t *testing.T) {
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	month, year := monthsAgo(at(2026, time.October, 15), 0)
	assert.Equal(t, 10, month)
	assert.Equal(t, 2026, year)

	// month-end start must not collapse into the current month
	month, year = monthsAgo(at(2026, time.October, 31), 1)
	assert.Equal(t, 9, month)
	assert.Equal(t, 2026, year)

	month, year = monthsAgo(at(2026, time.March, 31), 1)
	assert.Equal(t, 2, month)
	assert.Equal(t, 2026, year)

	// year boundary
	month, year = monthsAgo(at(2026, time.January, 15), 1)
	assert.Equal(t, 12, month)
	assert.Equal(t, 2025, year)
}

func TestMonthsAgoKeysDistinct(t *testing.T) {
	// the fee seed writes one row per (month, year) per student; the keys for
	// back=0 and back=1 must differ on every calendar day
	days := []time.Time{
		time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
	}
	for _, now := range days {
		m0, y0 := monthsAgo(now, 0)
		m1, y1 := monthsAgo(now, 1)
		assert.False(t, m0 == m1 && y0 == y1, "duplicate fee key for now=%s", now.Format("2006-01-02"))
	}
}
