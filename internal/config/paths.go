package config

import (
	"fmt"
	"path/filepath"
)

const (
	// DistDir is the root of the extension build output, shared with the
	// web bundle.
	DistDir = "dist"

	IconsDir = "icons"

	// ICOName is the bundled multi-size Windows icon.
	ICOName = "icon.ico"
)

// IconSizes are the raster sizes the extension manifest declares, smallest
// first (toolbar, extensions page, web store).
var IconSizes = []int{16, 48, 128}

// Build tree:
// dist/
//  └── icons/
//       ├── icon16.png
//       ├── icon48.png
//       └── icon128.png

func DefaultIconsDir() string {
	return filepath.Join(DistDir, IconsDir)
}

func IconFileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

func IconPath(dir string, size int) string {
	return filepath.Join(dir, IconFileName(size))
}
