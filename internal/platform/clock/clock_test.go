package clock

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(48 * time.Hour)
	assert.Equal(t, start.Add(48*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestSystemIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, System{}.Now().Location())
}

func TestInLocation_YearFollowsZone(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	// 02:00 on Jan 1 in Manila is still Dec 31 in UTC.
	base := NewManual(time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, 2024, InLocation(base, nil).Now().Year())
	now := InLocation(base, manila).Now()
	assert.Equal(t, 2025, now.Year())
	assert.True(t, now.Equal(base.Now()), "same instant, different zone")
}
