package geom

import "math"

// The handful of trigonometric helpers used only by Arc.Sample, which
// is itself confined to the hull builder's offset-band construction.
// Keeping them in one file documents the one place this package
// touches math.Sin/Cos.

func angleOf(center, p Point) float64 {
	return math.Atan2(float64(p.Y-center.Y), float64(p.X-center.X))
}

func cosApprox(a float64) float64 { return math.Cos(a) }
func sinApprox(a float64) float64 { return math.Sin(a) }

// unwrapThrough adjusts a1 by +/- 2*pi so that walking linearly from
// a0 to a1 passes through am, matching the requested winding
// direction. This is what makes Sample follow the arc's actual minor
// or major sweep instead of always taking the short way around.
func unwrapThrough(a0, am, a1 float64, dir Direction) float64 {
	const twoPi = 2 * math.Pi
	norm := func(a float64) float64 {
		for a < 0 {
			a += twoPi
		}
		for a >= twoPi {
			a -= twoPi
		}
		return a
	}
	a0n, amn, a1n := norm(a0), norm(am), norm(a1)

	// Candidate sweep increasing from a0n.
	upSweep := amn - a0n
	if upSweep < 0 {
		upSweep += twoPi
	}
	upEnd := a1n - a0n
	if upEnd < upSweep {
		upEnd += twoPi
	}

	if dir == CCW {
		return a0 + upEnd
	}
	// CW: mirror by negating the sweep.
	downSweep := a0n - amn
	if downSweep < 0 {
		downSweep += twoPi
	}
	downEnd := a0n - a1n
	if downEnd < downSweep {
		downEnd += twoPi
	}
	return a0 - downEnd
}
