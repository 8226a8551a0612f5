package component

// ReloadRequest asks the game loop to rebuild the world from the current
// level file. Systems create a short-lived entity carrying it; the loop owns
// the IO.
type ReloadRequest struct {
	Reason string
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
