package parameter

// Universe tier
const (
	// UniverseRadius is the characteristic half-span of the universe tier
	UniverseRadius = 5e7

	// AnchorPowerLaw shapes filament anchor radii as R*u^p, p>1 concentrates toward center
	AnchorPowerLaw = 2.0

	// FilamentJitterFraction scales jitter by segment length at FilamentScatter=1
	FilamentJitterFraction = 0.08

	// FilamentJitterFloor is the minimum jitter as a fraction of UniverseRadius at FilamentScatter=1
	FilamentJitterFloor = 0.002

	// GasThreshold is the palette draw above which a body is gas-like
	GasThreshold = 0.82

	// MinClusterCount is the fewest anchors that form a filament segment
	MinClusterCount = 2
)

// Universe palette endpoints blended in Lab space
const (
	PaletteStarCool = "#9bb0ff"
	PaletteStarWarm = "#ffd2a1"
	PaletteGas      = "#c04ad0"
)

// Galaxy tier
const (
	// GalaxyRadius is the characteristic disk radius
	GalaxyRadius = 2e4

	// GalaxyThickness is disk scale height as a fraction of radius
	GalaxyThickness = 0.04

	// SpiralShare and EllipticalShare split morphologies, the remainder is proto/quasar
	SpiralShare     = 0.6
	EllipticalShare = 0.3

	// Spiral component weights, the remainder is arm population
	SpiralBulgeShare = 0.18
	SpiralHaloShare  = 0.07

	// BulgeRadiusFraction is bulge radius as a fraction of GalaxyRadius
	BulgeRadiusFraction = 0.15

	// ArmScatter is angular scatter around the arm spine (radians)
	ArmScatter = 0.35

	// ArmInnerRadiusFraction is where the logarithmic spiral starts
	ArmInnerRadiusFraction = 0.05

	// EllipticalPowerLaw shapes elliptical radii as R*u^p
	EllipticalPowerLaw = 1.8

	// PerlinFrequency and PerlinAmplitude drive irregular galaxy displacement
	PerlinFrequency = 3.0
	PerlinAmplitude = 0.25

	// QuasarJetShare is the fraction of proto/quasar bodies placed in polar jets
	QuasarJetShare = 0.12

	// QuasarCoreFraction is quasar core radius as a fraction of GalaxyRadius
	QuasarCoreFraction = 0.3

	// QuasarMaxAgeGyr caps ages in proto/quasar galaxies
	QuasarMaxAgeGyr = 1.0
)

// System tier
const (
	// SingleStarShare and BinaryStarShare split multiplicity, the remainder is trinary
	SingleStarShare = 0.5
	BinaryStarShare = 0.4

	// StarSeparation is the star spacing in multi-star systems
	StarSeparation = 14.0

	// PlanetCountMin and PlanetCountMax bound planets per system
	PlanetCountMin = 3
	PlanetCountMax = 8

	// PlanetInnerRadius, PlanetSpacing and PlanetRadiusJitter lay out orbits
	PlanetInnerRadius  = 40.0
	PlanetSpacing      = 35.0
	PlanetRadiusJitter = 6.0

	// GasGiantBias is the gas-giant probability of the outermost planet
	GasGiantBias = 0.85

	// SystemRadius is the characteristic span used for camera framing
	SystemRadius = PlanetInnerRadius + PlanetSpacing*PlanetCountMax
)

// Planet and tint palettes
const (
	PaletteRockyDark  = "#6e6259"
	PaletteRockyLight = "#c9b79c"
	PaletteGasWarm    = "#d9a066"
	PaletteGasCool    = "#7fa6d9"
	PaletteBulgeTint  = "#ffc27a"
	PaletteQuasarTint = "#a8c8ff"
)
