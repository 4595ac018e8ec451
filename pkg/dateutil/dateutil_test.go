package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAge(t *testing.T) {
	birth := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 33, Age(birth, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, Age(birth, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, Age(birth, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestYearAtAge(t *testing.T) {
	assert.Equal(t, 2055, YearAtAge(1990, 65))
}
