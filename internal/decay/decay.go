// Package decay maps session progress onto the visual corruption of the
// world. Compute is a pure function of the current frame; the fragment,
// static and skyline helpers are cosmetic and draw from an injected
// *rand.Rand so frames can be replayed from a seed.
package decay

import "github.com/vovakirdan/entropy/internal/core"

// Renderer thresholds on the decay factor.
const (
	WindowsFailing = 0.4  // Windows start going dark
	Crumbling      = 0.6  // Buildings split into falling sections
	WindowsGone    = 0.75 // No windows drawn on crumbling buildings
	Cracking       = 0.8  // Sections jitter sideways
	Rubble         = 0.85 // Sections can be missing, replaced by rubble
)

// Glitch thresholds and the grid fragments snap to.
const (
	PlatformGlitchOn = 0.2
	ObstacleGlitchOn = 0.3
	Grid             = 4
)

// Signals are the per-frame corruption intensities, each in [0, 1].
type Signals struct {
	Decay  float64 // Structural decay of scenery
	Glitch float64 // Fragmentation of platforms and obstacles
	Static float64 // Full-screen static overlay
}

// Compute derives the frame's signals from the furthest x reached, the
// level's distance target and the seconds remaining. Static only appears
// inside the final window seconds.
func Compute(furthestX, target, remaining, window float64) Signals {
	d := Progress(furthestX, target)
	return Signals{
		Decay:  d,
		Glitch: d,
		Static: TimePressure(remaining, window),
	}
}

// Progress returns furthestX/target clamped to [0, 1].
func Progress(furthestX, target float64) float64 {
	if target <= 0 {
		return 1
	}
	return core.ClampF(furthestX/target, 0, 1)
}

// TimePressure ramps linearly from 0 at the start of the window to 1 when
// no time remains.
func TimePressure(remaining, window float64) float64 {
	if window <= 0 {
		if remaining <= 0 {
			return 1
		}
		return 0
	}
	if remaining > window {
		return 0
	}
	return core.ClampF((window-remaining)/window, 0, 1)
}
