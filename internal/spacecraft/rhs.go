package spacecraft

import (
	"math"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

// Config selects which force terms the companion RHS combines and the
// physical parameters needed to evaluate them.
type Config struct {
	// GeopotentialDegree truncates the zonal-harmonic expansion: 0 for
	// point-mass gravity only, up to 4 for J2 through J4.
	GeopotentialDegree int

	// EnableDrag toggles the exponential-atmosphere drag term.
	EnableDrag bool
	// BallisticCoefficient is cd*area/mass, in km^2/kg.
	BallisticCoefficient float64

	// EnableRotation toggles the centrifugal/Coriolis pseudo-force term
	// for integration in an Earth-fixed rotating frame.
	EnableRotation bool

	// MinAltitude is the reentry/singularity guard, in km above the
	// reference ellipsoid; the RHS returns false below it.
	MinAltitude float64
}

// NewRHS returns an [ivp.RHSFunc] for the six-dimensional state
// [x, y, z, vx, vy, vz] (km, km/s), combining the force terms cfg
// selects (D8). parm is accepted but unused, matching the RHS
// contract's opaque-passthrough convention; per-call configuration
// lives in cfg, captured by the closure.
func NewRHS(cfg Config) ivp.RHSFunc {
	return func(t float64, y ivp.State, fOut ivp.State, parm any) bool {
		pos := [3]float64{y[0], y[1], y[2]}
		vel := [3]float64{y[3], y[4], y[5]}

		r := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
		if r-earthRadi < cfg.MinAltitude {
			return false
		}

		accel := geopotentialAccel(pos, cfg.GeopotentialDegree)

		if cfg.EnableDrag {
			drag := dragAccel(pos, vel, cfg.BallisticCoefficient)
			accel[0] += drag[0]
			accel[1] += drag[1]
			accel[2] += drag[2]
		}

		if cfg.EnableRotation {
			pf := rotationPseudoForces(pos, vel, earthOmega)
			accel[0] += pf[0]
			accel[1] += pf[1]
			accel[2] += pf[2]
		}

		fOut[0] = vel[0]
		fOut[1] = vel[1]
		fOut[2] = vel[2]
		fOut[3] = accel[0]
		fOut[4] = accel[1]
		fOut[5] = accel[2]
		return true
	}
}
