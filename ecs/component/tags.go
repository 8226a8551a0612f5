package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// TileTag marks entities built from a level layer.
type TileTag struct {
	Layer string
}

var TileTagComponent = NewComponent[TileTag]()
