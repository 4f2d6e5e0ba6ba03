// Package static holds the site's fixed assets, embedded so the binary is
// self-contained in both serve and export modes.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// FS exposes the asset tree rooted at the asset names themselves, so
// "site.css" resolves directly.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
