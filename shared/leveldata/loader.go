package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// OrbitGroup is the object group orbit rectangles are read from.
const OrbitGroup = "OrbitPaths"

var ErrNoPaths = errors.New("no orbit paths")

// LoadOrbitMap parses a TMX file and returns the orbit rectangles in its
// OrbitPaths group. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadOrbitMap(fsys fs.FS, tmxPath string) (*OrbitMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &OrbitMap{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != OrbitGroup {
			continue
		}
		for i, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("%s: orbit object %d (%q) has no size", tmxPath, o.ID, o.Name)
			}
			name := o.Name
			if name == "" {
				name = fmt.Sprintf("orbit-%d", i)
			}
			path := OrbitPath{
				Name:    name,
				CenterX: o.X + o.Width/2,
				CenterY: o.Y + o.Height/2,
				RadiusX: o.Width / 2,
				RadiusZ: o.Height / 2,
				Floats:  map[string]float64{},
				Ints:    map[string]int{},
				Strings: map[string]string{},
				Bools:   map[string]bool{},
			}
			readProperties(&path, o.Properties)
			path.Preset = path.Strings[PropPreset]
			data.Paths = append(data.Paths, path)
		}
	}

	if len(data.Paths) == 0 {
		return nil, fmt.Errorf("%s: %w in group %q", tmxPath, ErrNoPaths, OrbitGroup)
	}
	return data, nil
}

func readProperties(p *OrbitPath, props tiled.Properties) {
	set := make(map[string]bool, len(props))
	for _, prop := range props {
		set[prop.Name] = true
	}
	for _, name := range floatProps {
		if set[name] {
			p.Floats[name] = props.GetFloat(name)
		}
	}
	for _, name := range intProps {
		if set[name] {
			p.Ints[name] = props.GetInt(name)
		}
	}
	for _, name := range stringProps {
		if set[name] {
			p.Strings[name] = props.GetString(name)
		}
	}
	for _, name := range boolProps {
		if set[name] {
			p.Bools[name] = props.GetBool(name)
		}
	}
}

// LoadAllMaps discovers all .tmx files in dir within fsys, loads each one and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllMaps(fsys fs.FS, dir string) (map[string]*OrbitMap, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*OrbitMap, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadOrbitMap(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		maps[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return maps, names, nil
}
