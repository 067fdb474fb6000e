package animations

// Animation steps through sheet frame indices on scaled time, so it freezes
// with the simulation.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameDuration    float64 // seconds each frame stays on screen, 0 never advances
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update(dt float64) {
	if a.FrameDuration <= 0 || dt <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.elapsed = 0
				return
			}
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Done reports whether a frozen animation reached its last frame.
func (a *Animation) Done() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
}

func NewAnimation(first, last, step int, frameDuration float64) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		FrameDuration: frameDuration,
		frame:         first,
		Looped:        false,
	}
}
