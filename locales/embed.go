// Package locales embeds the bundled message catalogs, one JSON file per
// (language, namespace) pair.
package locales

import (
	"embed"
	"io/fs"
)

//go:embed en id de ja
var files embed.FS

// FS returns the embedded locale tree, laid out as <lang>/<namespace>.json.
func FS() fs.FS {
	return files
}
