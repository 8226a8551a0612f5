package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	mu     sync.RWMutex
	images = map[string]*ebiten.Image{}
	sheets = map[string]*Sheet{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	mu.Lock()
	images[key] = img
	mu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return images[key]
}

// Forget drops every cached image and sheet so the next load re-reads
// them from disk.
func Forget() {
	mu.Lock()
	images = map[string]*ebiten.Image{}
	sheets = map[string]*Sheet{}
	mu.Unlock()
}
