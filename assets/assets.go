package assets

import (
	"embed"
	"fmt"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// WallRect is a solid collision rectangle from the map's Walls layer.
type WallRect struct {
	X, Y, Width, Height float64
}

// PlayerSpawn is the player start position from the map.
type PlayerSpawn struct {
	X float64
	Y float64
}

// Level is the parsed demo map: pixel bounds, wall rectangles and the spawn
// point. Only object layers are used; the ground is generated procedurally.
type Level struct {
	Name        string
	Width       int
	Height      int
	Walls       []WallRect
	PlayerSpawn PlayerSpawn
}

// MustLoadLevel parses an embedded Tiled map. Panics on a malformed map
// since the maps ship inside the binary.
func MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", levelPath, err))
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Walls:  []WallRect{},
	}

	spawnSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
				spawnSeen = true
			}
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, WallRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	if !spawnSeen {
		// Fall back to the map center so a spawn-less map still runs.
		level.PlayerSpawn = PlayerSpawn{
			X: float64(level.Width) / 2,
			Y: float64(level.Height) / 2,
		}
	}

	return level
}

// MeadowLevel loads the stock demo map.
func MeadowLevel() Level {
	return MustLoadLevel("levels/meadow.tmx")
}
