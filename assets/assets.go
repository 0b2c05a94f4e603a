package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/doomerang-orbit/shared/leveldata"
)

//go:embed all:maps
var mapFS embed.FS

// MapsDir is the directory of bundled TMX orbit layouts inside Maps.
const MapsDir = "maps"

// DemoMap is the layout shown when no map or preset is requested.
const DemoMap = "maps/orbits.tmx"

// Maps exposes the bundled layouts.
func Maps() fs.FS {
	return mapFS
}

// LoadMaps parses every bundled layout.
func LoadMaps() (map[string]*leveldata.OrbitMap, []string, error) {
	return leveldata.LoadAllMaps(mapFS, MapsDir)
}
