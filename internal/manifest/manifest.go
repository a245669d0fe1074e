package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"updraft-extension/internal/config"
)

// Update points a WebExtension manifest's icon entries at the generated
// set. The icon directory is rewritten relative to the manifest's own
// directory so the manifest stays portable; every other key passes
// through untouched.
func Update(path string, iconsDir string, sizes []int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	var manifest map[string]interface{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}

	manifest["icons"] = iconEntries(path, iconsDir, sizes)

	// MV3 keeps a second copy on the toolbar action.
	if action, ok := manifest["action"].(map[string]interface{}); ok {
		action["default_icon"] = iconEntries(path, iconsDir, sizes)
		manifest["action"] = action
	}

	newData, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return os.WriteFile(path, newData, 0644)
}

// iconEntries maps each size to a manifest-relative slash path.
func iconEntries(manifestPath, iconsDir string, sizes []int) map[string]interface{} {
	rel, err := filepath.Rel(filepath.Dir(manifestPath), iconsDir)
	if err != nil {
		rel = iconsDir
	}
	entries := make(map[string]interface{}, len(sizes))
	for _, size := range sizes {
		entries[strconv.Itoa(size)] = filepath.ToSlash(filepath.Join(rel, config.IconFileName(size)))
	}
	return entries
}
