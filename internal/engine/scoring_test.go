package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineClearScore(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{0, 0},
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, LineClearScore(tc.rows), "rows=%d", tc.rows)
	}
	assert.Panics(t, func() { LineClearScore(5) })
	assert.Panics(t, func() { LineClearScore(-1) })
}

func TestLevelForLines(t *testing.T) {
	tests := []struct {
		lines    int
		expected int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{49, 10},
		{50, 11},
		{120, 25},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, LevelForLines(tc.lines), "lines=%d", tc.lines)
	}
}

func TestTimingPeriod(t *testing.T) {
	timing := DefaultTiming()
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{1, 600 * time.Millisecond},
		{2, 550 * time.Millisecond},
		{5, 400 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{12, 100 * time.Millisecond},
		{20, 100 * time.Millisecond},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, timing.Period(tc.level), "level=%d", tc.level)
	}
}

func TestTimingValidate(t *testing.T) {
	assert.NoError(t, DefaultTiming().Validate())
	assert.NoError(t, Timing{Base: time.Second}.Validate(), "constant speed")

	assert.Error(t, Timing{Base: 500 * time.Millisecond, Step: 50 * time.Millisecond, CapLevel: 10}.Validate())
	assert.Error(t, Timing{Base: time.Second, Step: -time.Millisecond}.Validate())
	assert.Error(t, Timing{Base: time.Second, CapLevel: -1}.Validate())
}
