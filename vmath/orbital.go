package vmath

import "math"

// CircularSpeed returns the tangential speed of a circular orbit, v = sqrt(G*M/r)
// r is clamped to minRadius
func CircularSpeed(G, mass, r, minRadius float64) float64 {
	if r < minRadius {
		r = minRadius
	}
	if r <= 0 || mass <= 0 {
		return 0
	}
	return math.Sqrt(G * mass / r)
}

// BinaryAngularSpeed returns the shared angular speed of a bound multi-star set at separation a
// Simplified vis-viva, omega = sqrt(G*M/a^3)
func BinaryAngularSpeed(G, totalMass, a float64) float64 {
	if a <= 0 || totalMass <= 0 {
		return 0
	}
	return math.Sqrt(G * totalMass / (a * a * a))
}

// OrbitalInsert returns the velocity for a counter-clockwise circular orbit about +Y
// offset is the position relative to the attracting center
func OrbitalInsert(offset Vec3F, speed float64) Vec3F {
	return V3FScale(V3FTangentY(offset), speed)
}

// GravitationalAccel returns acceleration on a body at pos toward center
// Distance is clamped to minRadius to prevent the singularity
func GravitationalAccel(pos, center Vec3F, mass, G, minRadius float64) Vec3F {
	delta := V3FSub(center, pos)
	dist := V3FMag(delta)
	if dist == 0 {
		return Vec3F{}
	}
	r := dist
	if r < minRadius {
		r = minRadius
	}
	accelMag := G * mass / (r * r)
	return V3FScale(delta, accelMag/dist)
}
