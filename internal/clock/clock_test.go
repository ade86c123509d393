package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_ReturnsUTC(t *testing.T) {
	now := NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixedClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, loc)

	c := NewFixed(at)
	assert.True(t, at.Equal(c.Now()))
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.Equal(t, c.Now(), c.Now())
}
