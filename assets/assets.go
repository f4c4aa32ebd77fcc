// Package assets embeds the bundled demo map and its tilesets.
package assets

import (
	"embed"

	"gridcaster/level"
)

//go:embed maps/*.tmx maps/*.tsx
var FS embed.FS

// DemoMap is the path of the bundled map inside FS.
const DemoMap = "maps/demo.tmx"

// LoadMap reads the TMX map at filename, or the bundled demo map when filename is empty.
func LoadMap(filename string) (*level.Map, error) {
	if filename == "" {
		return level.LoadTMXFS(FS, DemoMap)
	}
	return level.LoadTMX(filename)
}
