package buildlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntriesAndReset(t *testing.T) {
	c := New(true)
	c.Progressf("loaded %d triangles", 10)
	c.Warningf("group %q has no surface settings", "ice")

	assert.Equal(t, 2, c.LogCount())
	assert.Contains(t, c.LogText(0), "PROG loaded 10 triangles")
	assert.Contains(t, c.LogText(1), "WARN group \"ice\"")

	c.ResetLog()
	assert.Equal(t, 0, c.LogCount())
}

func TestDisabledLoggingDropsMessages(t *testing.T) {
	c := New(false)
	c.Progressf("should not be recorded")
	assert.Equal(t, 0, c.LogCount())
}

func TestTimerAccumulates(t *testing.T) {
	c := New(true)
	c.StartTimer(TimerBuildOctree)
	c.StopTimer(TimerBuildOctree)
	assert.GreaterOrEqual(t, c.AccumulatedTime(TimerBuildOctree), int64(0))
}

func TestDisabledTimerReturnsZero(t *testing.T) {
	c := New(false)
	c.StartTimer(TimerBuildOctree)
	c.StopTimer(TimerBuildOctree)
	assert.Equal(t, int64(0), int64(c.AccumulatedTime(TimerBuildOctree)))
}
