package motion

import (
	"math"
	"strconv"
	"time"
)

// FrameInterval is the nominal frame period the counter interpolation is
// derived from. The step count is duration/FrameInterval regardless of how
// frames are actually delivered; drift under irregular delivery is an
// accepted imprecision for decorative UI.
const FrameInterval = 16 * time.Millisecond

// Counter animates an integer readout from zero to a target over a fixed
// duration using per-frame linear interpolation. Callers drive it by calling
// Step once per frame and writing the returned text to the display.
type Counter struct {
	target    float64
	suffix    string
	increment float64
	value     float64
	done      bool
}

// NewCounter creates a counter for the given target value, animation
// duration, and optional display suffix (e.g. "+" or "%")
func NewCounter(target int, duration time.Duration, suffix string) *Counter {
	frames := float64(duration / FrameInterval)
	if frames < 1 {
		frames = 1
	}
	return &Counter{
		target:    float64(target),
		suffix:    suffix,
		increment: float64(target) / frames,
	}
}

// Step advances one frame and returns the text to display and whether the
// counter reached its target. Intermediate frames show the floored running
// value; the final frame shows the exact target. After completion Step keeps
// returning the final text.
func (c *Counter) Step() (string, bool) {
	if c.done {
		return c.format(int(c.target)), true
	}

	c.value += c.increment
	if c.value >= c.target {
		c.done = true
		return c.format(int(c.target)), true
	}
	return c.format(int(math.Floor(c.value))), false
}

// Done returns whether the counter reached its target
func (c *Counter) Done() bool {
	return c.done
}

func (c *Counter) format(value int) string {
	return strconv.Itoa(value) + c.suffix
}
