package spacecraft

import "math"

// Exponential atmosphere reference point and scale height, a coarse
// stand-in for a full density table (spec.md §1 excludes the real
// atmosphere model as an external collaborator).
const (
	refAltitude  = 400.0   // km
	refDensity   = 1.0e-8  // kg/km^3 at refAltitude (10^-17 kg/m^3)
	scaleHeight  = 60.0    // km
	earthAngular = earthOmega
)

// atmosphereDensity returns the exponential-model density at the given
// altitude above the reference ellipsoid, in kg/km^3.
func atmosphereDensity(altitudeKm float64) float64 {
	return refDensity * math.Exp(-(altitudeKm-refAltitude)/scaleHeight)
}

// dragAccel returns the deceleration from atmospheric drag, in
// km/s^2, given position (km), inertial velocity (km/s), and the
// ballistic coefficient cd*area/mass (km^2/kg). The atmosphere is
// modeled as co-rotating with Earth, so the relevant velocity is
// relative to the rotating frame.
func dragAccel(pos, vel [3]float64, ballistic float64) [3]float64 {
	r := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	altitude := r - earthRadi
	if altitude < 0 {
		altitude = 0
	}
	rho := atmosphereDensity(altitude)

	relVel := [3]float64{
		vel[0] + earthAngular*pos[1],
		vel[1] - earthAngular*pos[0],
		vel[2],
	}
	speed := math.Sqrt(relVel[0]*relVel[0] + relVel[1]*relVel[1] + relVel[2]*relVel[2])
	if speed == 0 {
		return [3]float64{}
	}

	coeff := -0.5 * rho * ballistic * speed
	return [3]float64{coeff * relVel[0], coeff * relVel[1], coeff * relVel[2]}
}
