// Package buildlog provides the compiler's progress/warning/error log and
// stage timers, the same role recast.BuildContext plays for the navmesh
// build pipeline: a single object threaded through the whole build, with
// logging and timing each independently toggleable.
package buildlog

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

// The three message categories.
const (
	Progress LogCategory = 1 + iota
	Warning
	Error
)

const maxMessages = 1000

// TimerLabel identifies one build stage's accumulated timer.
type TimerLabel int

// Build stages a caller can time with StartTimer/StopTimer; Pack itself
// does not start or stop any of them.
const (
	TimerTotal TimerLabel = iota
	TimerLoadMesh
	TimerWeldVertices
	TimerWeldNormals
	TimerBuildOctree
	TimerPackOctree
	TimerWriteBCSV
	maxTimers
)

// Context is the build log: accumulated messages plus accumulated per-stage
// timers. Both logging and timers can be disabled independently, matching
// the teacher's BuildContext.
type Context struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages    [maxMessages]string
	numMessages int

	logEnabled   bool
	timerEnabled bool
}

// New returns a Context with logging and timers both set to enabled.
func New(enabled bool) *Context {
	return &Context{logEnabled: enabled, timerEnabled: enabled}
}

// EnableLog toggles message logging.
func (c *Context) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer toggles timers.
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

// ResetLog clears all log entries. It does nothing while logging is
// disabled.
func (c *Context) ResetLog() {
	if c.logEnabled {
		c.numMessages = 0
	}
}

// ResetTimers zeroes every accumulated timer. It does nothing while timers
// are disabled.
func (c *Context) ResetTimers() {
	if c.timerEnabled {
		for i := range c.accTime {
			c.accTime[i] = 0
		}
	}
}

// Progressf logs a progress message.
func (c *Context) Progressf(format string, v ...interface{}) { c.log(Progress, format, v...) }

// Warningf logs a warning message.
func (c *Context) Warningf(format string, v ...interface{}) { c.log(Warning, format, v...) }

// Errorf logs an error message.
func (c *Context) Errorf(format string, v ...interface{}) { c.log(Error, format, v...) }

func (c *Context) log(category LogCategory, format string, v ...interface{}) {
	if !c.logEnabled || c.numMessages >= maxMessages {
		return
	}
	msg := fmt.Sprintf(format, v...)
	switch category {
	case Progress:
		c.messages[c.numMessages] = "PROG " + msg
	case Warning:
		c.messages[c.numMessages] = "WARN " + msg
	case Error:
		c.messages[c.numMessages] = "ERR " + msg
	}
	c.numMessages++
}

// DumpLog prints header, then every logged message, to stdout.
func (c *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < c.numMessages; i++ {
		fmt.Println(c.messages[i])
	}
}

// LogCount returns the number of messages logged so far.
func (c *Context) LogCount() int { return c.numMessages }

// LogText returns the i'th logged message.
func (c *Context) LogText(i int) string { return c.messages[i] }

// StartTimer starts the timer identified by label.
func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer stops the timer identified by label, adding the elapsed
// duration to its accumulator.
func (c *Context) StopTimer(label TimerLabel) {
	if !c.timerEnabled {
		return
	}
	c.accTime[label] += time.Since(c.startTime[label])
}

// AccumulatedTime returns the total time spent in label so far, or zero if
// timers are disabled.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}
