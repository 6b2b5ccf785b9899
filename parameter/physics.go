package parameter

// Orbital integrator constants, empirical scene units rather than SI
const (
	// GravitationalConstant is the empirical G used by vis-viva and the planet integrator
	GravitationalConstant = 1.0

	// SystemMassScale converts solar masses to scene mass units at the system tier
	SystemMassScale = 4000.0

	// MinOrbitRadius clamps radius in the inverse-square term to avoid runaway velocities
	MinOrbitRadius = 2.0

	// IntegratorSubsteps is the number of half-dt kick-drift passes per Advance call
	IntegratorSubsteps = 2
)

// Galaxy kinematics
const (
	// GalaxyRotationSpeed is the flat rotation-curve tangential speed
	GalaxyRotationSpeed = 220.0

	// GalaxyCoreRadius is the solid-body core below which angular speed stops growing
	GalaxyCoreRadius = 800.0
)

// Stellar aging
const (
	// UniverseAgeGyr bounds drawn body ages
	UniverseAgeGyr = 13.8

	// AgeGyrPerSimSecond ages every body as simulation time advances
	AgeGyrPerSimSecond = 0.0005
)
