package animator

import (
	"fyne.io/fyne/v2"
	"github.com/charmbracelet/harmonica"
)

const (
	springSamples = 120
	// springFrequency is the angular frequency over a normalized duration of 1;
	// a critically damped spring is within 0.1% of rest at t=1
	springFrequency = 12.0
)

// SpringCurve returns an animation curve following a spring with the given
// damping ratio, normalized so the curve starts at 0 and ends exactly at 1.
// Ratios below 1 overshoot before settling.
func SpringCurve(dampingRatio float32) fyne.AnimationCurve {
	if dampingRatio <= 0 {
		dampingRatio = CriticalDamping
	}
	spring := harmonica.NewSpring(1.0/springSamples, springFrequency, float64(dampingRatio))

	table := make([]float32, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = float32(pos)
	}
	if end := table[springSamples]; end != 0 {
		for i := range table {
			table[i] /= end
		}
	}

	return func(t float32) float32 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		at := t * springSamples
		i := int(at)
		frac := at - float32(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}
