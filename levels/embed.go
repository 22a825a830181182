package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is the declarative description of one map. Sizes are in tiles,
// positions in pixels.
type Level struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Solids are tile rectangles that block movement.
	Solids []TileRect `json:"solids,omitempty"`
	// Layers are optional flat row-major tile layers; non-zero tiles on a
	// layer with Physics set are solid.
	Layers    [][]int     `json:"layers,omitempty"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`

	Spawn Point          `json:"spawn"`
	Enemy *EnemyPlacement `json:"enemy,omitempty"`
	Cars  []Box          `json:"cars,omitempty"`

	// Exit is the fraction of the map width the player's right edge must
	// reach to finish the level. Zero means the default.
	Exit float64 `json:"exit,omitempty"`
	Next string  `json:"next,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

type TileRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type EnemyPlacement struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Range float64 `json:"range,omitempty"`
}

type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Validate checks the description is self-consistent.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	for i, r := range l.Solids {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("solid %d has non-positive size %dx%d", i, r.W, r.H)
		}
	}
	for i, c := range l.Cars {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("car %d has non-positive size %vx%v", i, c.W, c.H)
		}
	}
	if l.Exit < 0 || l.Exit > 1 {
		return fmt.Errorf("exit fraction %v outside [0, 1]", l.Exit)
	}
	return nil
}

// Cells rasterizes Solids and physics layers into a row-major occupancy
// buffer. Solid rects are clipped to the map.
func (l *Level) Cells() []bool {
	cells := make([]bool, l.Width*l.Height)
	for _, r := range l.Solids {
		for y := max(r.Y, 0); y < min(r.Y+r.H, l.Height); y++ {
			for x := max(r.X, 0); x < min(r.X+r.W, l.Width); x++ {
				cells[y*l.Width+x] = true
			}
		}
	}
	for i, layer := range l.Layers {
		if i >= len(l.LayerMeta) || !l.LayerMeta[i].Physics || len(layer) != len(cells) {
			continue
		}
		for idx, v := range layer {
			if v != 0 {
				cells[idx] = true
			}
		}
	}
	return cells
}

// Parse decodes and validates a level description.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadLevelFromFS loads an embedded level by name; the .json suffix is
// optional.
func LoadLevelFromFS(name string) (*Level, error) {
	clean := path.Base(strings.TrimSpace(name))
	if !strings.HasSuffix(clean, ".json") {
		clean += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return lvl, nil
}
