package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// NoTile marks an empty cell.
const NoTile = -1

var ErrLayerNotFound = errors.New("levels: layer not found")

// Level is a level file. Each layer is a grid encoded as text: rows are
// separated by ';' and cells by ','. The first row is the top of the map.
// Positions are in tiles.
type Level struct {
	Name      string            `yaml:"name"`
	Layers    map[string]string `yaml:"layers"`
	Character Position          `yaml:"character"`
	Camera    Position          `yaml:"camera"`
}

type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Tile is a placed, non-empty cell. Y counts up from the bottom row.
type Tile struct {
	X  int
	Y  int
	ID int
}

// FileName maps a level reference to its file name: "1", "level_1" and
// "level_1.yaml" all name level_1.yaml.
func FileName(ref string) string {
	ref = strings.TrimSpace(filepath.ToSlash(ref))
	ref = strings.TrimPrefix(ref, "levels/")
	if _, err := strconv.Atoi(ref); err == nil {
		ref = "level_" + ref
	}
	if filepath.Ext(ref) == "" {
		ref += ".yaml"
	}
	return ref
}

// DiskPath is where a level is looked up before the embedded copy.
func DiskPath(ref string) string {
	return filepath.Join("levels", filepath.FromSlash(FileName(ref)))
}

// Load reads a level, preferring ./levels on disk over the embedded files.
func Load(ref string) (*Level, error) {
	name := FileName(ref)
	data, err := os.ReadFile(DiskPath(ref))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}

// ParseLayer decodes a layer string into rows of tile ids, top row first.
// Cells that do not parse as integers become NoTile. A trailing ';' does not
// add an empty row.
func ParseLayer(s string) [][]int {
	lines := strings.Split(s, ";")
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}
	rows := make([][]int, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, ",")
		row := make([]int, 0, len(cells))
		for _, cell := range cells {
			id, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				id = NoTile
			}
			row = append(row, id)
		}
		rows = append(rows, row)
	}
	return rows
}

// Tiles returns the non-empty cells of a layer in world tile coordinates.
func (l *Level) Tiles(layer string) ([]Tile, error) {
	raw, ok := l.Layers[layer]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, layer)
	}
	rows := ParseLayer(raw)
	var tiles []Tile
	for y, row := range rows {
		for x, id := range row {
			if id < 0 {
				continue
			}
			tiles = append(tiles, Tile{X: x, Y: len(rows) - y - 1, ID: id})
		}
	}
	return tiles, nil
}

// Size returns the widest row and the tallest layer, in tiles.
func (l *Level) Size() (w, h int) {
	for _, raw := range l.Layers {
		rows := ParseLayer(raw)
		if len(rows) > h {
			h = len(rows)
		}
		for _, row := range rows {
			if len(row) > w {
				w = len(row)
			}
		}
	}
	return w, h
}
