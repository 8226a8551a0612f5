package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab. A copy under ./prefabs wins over the embedded one so
// edits show up without a rebuild.
func Load(name string) ([]byte, error) {
	return readOverride(PrefabsFS, trimPrefixes(name, "prefabs/"))
}

// LoadScript reads a tengo script by bare name ("square"), file name or any
// path under prefabs/scripts.
func LoadScript(name string) ([]byte, error) {
	rel := trimPrefixes(name, "prefabs/", "scripts/")
	if path.Ext(rel) == "" {
		rel += ".tengo"
	}
	data, err := readOverride(ScriptsFS, path.Join("scripts", rel))
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return data, nil
}

func readOverride(fsys embed.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(rel)
}

// trimPrefixes strips each prefix in order, at most once.
func trimPrefixes(name string, prefixes ...string) string {
	s := filepath.ToSlash(name)
	for _, p := range prefixes {
		s = strings.TrimPrefix(s, p)
	}
	return s
}
