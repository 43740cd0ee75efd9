package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	ny := time.FixedZone("UTC-5", -5*3600)
	// 23:30 local is already the next day in UTC.
	at := time.Date(2026, 3, 14, 23, 30, 0, 0, ny)
	assert.Equal(t, "2026-03-15", DateKey(at))
}

func TestWordIndexDeterministic(t *testing.T) {
	at := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	a := WordIndex(at, "salt", 1000)
	b := WordIndex(at.Add(3*time.Hour), "salt", 1000)
	assert.Equal(t, a, b)

	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)

	// Salt changes the schedule.
	c := WordIndex(at, "other", 1000)
	d := WordIndex(at.AddDate(0, 0, 1), "salt", 1000)
	assert.True(t, a != c || a != d)
}

func TestWordIndexEmptyCorpus(t *testing.T) {
	assert.Zero(t, WordIndex(time.Now(), "salt", 0))
}
