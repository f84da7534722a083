package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Object group names read from TMX files.
const (
	GroupWalls   = "Walls"
	GroupPlayer  = "Player"
	GroupGoblins = "Goblins"
	GroupChests  = "Chests"
	GroupPortal  = "Portal"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Tiled's y-down pixel space is flipped so y points up.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				c := level.center(o)
				level.Walls = append(level.Walls, Rect{X: c.X, Y: c.Y, W: o.Width, H: o.Height})
			}
		case GroupPlayer:
			if len(og.Objects) > 0 {
				level.Player = level.center(og.Objects[0])
				foundPlayer = true
			}
		case GroupGoblins:
			for _, o := range og.Objects {
				level.Goblins = append(level.Goblins, level.center(o))
			}
		case GroupChests:
			for _, o := range og.Objects {
				level.Chests = append(level.Chests, ChestSpawn{
					Point:   level.center(o),
					Cost:    o.Properties.GetInt("cost"),
					Upgrade: o.Properties.GetString("upgrade"),
				})
			}
		case GroupPortal:
			if len(og.Objects) > 0 {
				p := level.center(og.Objects[0])
				level.Portal = &p
			}
		default:
			log.Printf("leveldata: %s: ignoring object group %q", tmxPath, og.Name)
		}
	}

	if !foundPlayer {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return level, nil
}

func (l *Level) center(o *tiled.Object) Point {
	return Point{
		X: o.X + o.Width/2,
		Y: l.Height - (o.Y + o.Height/2),
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them sorted by name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := "*.tmx"
	if levelsDir != "" && levelsDir != "." {
		pattern = levelsDir + "/" + pattern
	}
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// DefaultLevel is a walled room with two goblins, two chests and an exit.
func DefaultLevel() *Level {
	const tile = 16.0
	const w, h = 20 * tile, 15 * tile
	exit := Point{X: w / 2, Y: h - 3*tile}
	return &Level{
		Name:   "default",
		Width:  w,
		Height: h,
		Walls: []Rect{
			{X: w / 2, Y: tile / 2, W: w, H: tile},
			{X: w / 2, Y: h - tile/2, W: w, H: tile},
			{X: tile / 2, Y: h / 2, W: tile, H: h - 2*tile},
			{X: w - tile/2, Y: h / 2, W: tile, H: h - 2*tile},
			{X: w / 2, Y: h / 2, W: 2 * tile, H: 2 * tile},
		},
		Player:  Point{X: w / 2, Y: 3 * tile},
		Goblins: []Point{{X: 4 * tile, Y: h - 4*tile}, {X: w - 4*tile, Y: h - 5*tile}},
		Chests: []ChestSpawn{
			{Point: Point{X: 3 * tile, Y: 3 * tile}, Cost: 1, Upgrade: "heart_bracelet"},
			{Point: Point{X: w - 3*tile, Y: 3 * tile}, Cost: 2, Upgrade: "golden_aegis"},
		},
		Portal: &exit,
	}
}
