// Package spacecraft implements the companion six-dimensional
// orbital-mechanics right-hand side (spec.md §1): position and
// velocity under a simplified zonal geopotential, exponential
// atmospheric drag, and Earth-rotation pseudo-forces. It is a worked
// example RHS satisfying the ivp.RHSFunc contract, not a full
// geopotential/atmosphere calculator.
package spacecraft

import "math"

// Standard Earth constants, km/s units throughout.
const (
	muEarth    = 398600.4418 // km^3/s^2
	earthRadi  = 6378.137    // km, equatorial radius
	j2         = 1.08262668e-3
	j3         = -2.53265649e-6
	j4         = -1.61962159e-6
	earthOmega = 7.2921159e-5 // rad/s, sidereal rotation rate
)

// geopotentialAccel returns the gravitational acceleration at pos
// (ECI/ECEF, km) including zonal harmonics up to J4, truncated at
// degree (0 or 1 = point mass; 2, 3, or 4 add the zonal terms J2
// through J<degree>).
func geopotentialAccel(pos [3]float64, degree int) [3]float64 {
	x, y, z := pos[0], pos[1], pos[2]
	r2 := x*x + y*y + z*z
	r := math.Sqrt(r2)
	r3 := r2 * r

	pointMass := -muEarth / r3
	a := [3]float64{pointMass * x, pointMass * y, pointMass * z}
	if degree < 2 || r == 0 {
		return a
	}

	zr := z / r
	reR2 := (earthRadi / r) * (earthRadi / r)
	common := -1.5 * muEarth * j2 * reR2 / r3

	a[0] += common * x * (1 - 5*zr*zr)
	a[1] += common * y * (1 - 5*zr*zr)
	a[2] += common * z * (3 - 5*zr*zr)

	if degree >= 3 {
		reR3 := reR2 * (earthRadi / r)
		k3 := -2.5 * muEarth * j3 * reR3 / r3
		zr2 := zr * zr
		a[0] += k3 * x * zr * (3 - 7*zr2)
		a[1] += k3 * y * zr * (3 - 7*zr2)
		a[2] += k3 * (6*zr2 - 7*zr2*zr2 - 0.6) * r
	}

	if degree >= 4 {
		reR4 := reR2 * reR2
		k4 := 0.625 * muEarth * j4 * reR4 / r3
		zr2 := zr * zr
		a[0] += k4 * x * (3 - 42*zr2 + 63*zr2*zr2)
		a[1] += k4 * y * (3 - 42*zr2 + 63*zr2*zr2)
		a[2] += k4 * z * (15 - 70*zr2 + 63*zr2*zr2)
	}

	return a
}
