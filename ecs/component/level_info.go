package component

// LevelInfo is a singleton describing the loaded level.
type LevelInfo struct {
	Name     string
	TileSize float64
	Width    int
	Height   int
}

var LevelInfoComponent = NewComponent[LevelInfo]()
