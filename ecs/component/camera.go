package component

// Camera centres the view on its transform. OffsetX/OffsetY keep the spawn
// distance between the camera and its target while following.
type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64
	ScreenW    float64
	ScreenH    float64
	OffsetX    float64
	OffsetY    float64
}

var CameraComponent = NewComponent[Camera]()
