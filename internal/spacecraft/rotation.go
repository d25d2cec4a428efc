package spacecraft

// rotationPseudoForces returns the centrifugal and Coriolis
// accelerations (km/s^2) seen by a body integrated in an Earth-fixed
// rotating frame with angular rate omega about the z-axis:
//
//	a_centrifugal = -omega x (omega x r)
//	a_coriolis    = -2 omega x v
//
// Both reduce to zero when integrating in an inertial frame; callers
// gate this term behind a configuration flag (spec.md §1, D8) rather
// than baking the frame choice into the RHS unconditionally.
func rotationPseudoForces(pos, vel [3]float64, omega float64) [3]float64 {
	centrifugal := [3]float64{
		omega * omega * pos[0],
		omega * omega * pos[1],
		0,
	}
	coriolis := [3]float64{
		2 * omega * vel[1],
		-2 * omega * vel[0],
		0,
	}
	return [3]float64{
		centrifugal[0] + coriolis[0],
		centrifugal[1] + coriolis[1],
		centrifugal[2] + coriolis[2],
	}
}
