package scene

// Clock accumulates animation time from per-frame wall-clock deltas.
// While paused the accumulator is frozen; delta bookkeeping stays with the
// caller, so resuming never produces a time jump.
type Clock struct {
	elapsed float64
	paused  bool
}

// Advance adds dt seconds of wall-clock time. Ignored while paused.
func (c *Clock) Advance(dt float64) {
	if c.paused {
		return
	}
	c.elapsed += dt
}

// TogglePause flips between running and paused. Callers are expected to
// invoke this on a press edge, not while a key is held.
func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool {
	return c.paused
}

// Time returns the accumulated animation time in seconds.
func (c *Clock) Time() float32 {
	return float32(c.elapsed)
}
