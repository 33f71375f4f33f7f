package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoman(t *testing.T) {
	assert.Equal(t, "", Roman(0))
	assert.Equal(t, "IV", Roman(4))
	assert.Equal(t, "XIV", Roman(14))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(-time.Second))
	assert.Equal(t, "0:05", FormatClock(5*time.Second))
	assert.Equal(t, "0:05", FormatClock(4200*time.Millisecond))
	assert.Equal(t, "1:30", FormatClock(90*time.Second))
}
