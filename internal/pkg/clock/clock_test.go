package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	in := time.Date(2026, time.March, 4, 23, 59, 59, 0, time.FixedZone("EAT", 3*3600))
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), Date(in))
}

func TestFixedAdvanceDays(t *testing.T) {
	c := &Fixed{T: time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)}
	c.AdvanceDays(366)
	assert.Equal(t, time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC), Today(c))
}
