package parameter

// Camera framing on arrival
// Distances are multiples of the arrival tier's characteristic radius
const (
	// CameraViewDistanceFactor is the horizontal stand-off from the tier center
	CameraViewDistanceFactor = 1.6

	// CameraElevationFactor lifts the camera above the orbital plane
	CameraElevationFactor = 0.45
)

// Terminal camera control, applied only while camera input is enabled
const (
	// CameraOrbitStep is yaw change per key press (radians)
	CameraOrbitStep = 0.08

	// CameraZoomStep is the multiplicative zoom per key press
	CameraZoomStep = 1.15

	// CameraZoomMin and CameraZoomMax bound the zoom factor
	CameraZoomMin = 0.05
	CameraZoomMax = 20.0

	// CameraFocalLength scales projected coordinates to cells
	CameraFocalLength = 1.1

	// CameraNearPlane drops points closer than this fraction of view distance
	CameraNearPlane = 0.001
)
