package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"log"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the ECS layer all renderers register on.
const Default = ecs.LayerDefault

// PlayerConfig contains the playable character tunables.
type PlayerConfig struct {
	WalkSpeed float64 `yaml:"walkSpeed"` // pixels per tick
	RunSpeed  float64 `yaml:"runSpeed"`

	// Dimensions
	FrameWidth      int `yaml:"frameWidth"`
	FrameHeight     int `yaml:"frameHeight"`
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// PaletteConfig holds the character colors as hex strings so the yaml file
// stays hand-editable.
type PaletteConfig struct {
	Skin   string `yaml:"skin"`
	Hair   string `yaml:"hair"`
	Shirt  string `yaml:"shirt"`
	Sleeve string `yaml:"sleeve"`
	Pants  string `yaml:"pants"`
	Shoes  string `yaml:"shoes"`
	Eyes   string `yaml:"eyes"`
}

// GameConfig contains window and world configuration values.
type GameConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	TileSize int    `yaml:"tileSize"`

	Player  PlayerConfig  `yaml:"player"`
	Palette PaletteConfig `yaml:"palette"`
}

//go:embed config.yaml
var configYAML []byte

// C is the global game configuration, loaded from the embedded yaml at
// startup on top of the compiled-in defaults.
var C GameConfig

func init() {
	C = GameConfig{
		Width:    640,
		Height:   384,
		Title:    "tinywalker",
		TileSize: 32,
		Player: PlayerConfig{
			WalkSpeed:       1.25,
			RunSpeed:        2.25,
			FrameWidth:      32,
			FrameHeight:     32,
			CollisionWidth:  14,
			CollisionHeight: 10,
		},
	}
	if err := yaml.Unmarshal(configYAML, &C); err != nil {
		log.Fatalf("Failed to parse embedded config: %v", err)
	}
}

// ParseHexColor decodes "#RRGGBB" into an opaque RGBA color. Empty strings
// report ok=false so callers can keep their default.
func ParseHexColor(s string) (color.RGBA, bool) {
	if s == "" {
		return color.RGBA{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		log.Printf("Warning: bad color %q in config, keeping default", s)
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, true
}
