package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is where edited prefabs are looked up before the embedded copies.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab spec, preferring the copy under Dir so edits apply
// without a rebuild.
func Load(name string) ([]byte, error) {
	return readOverride(PrefabsFS, trimPrefixes(name, Dir+"/"))
}

// LoadScript reads a tengo script by base name or by path under Dir.
func LoadScript(name string) ([]byte, error) {
	base := trimPrefixes(name, Dir+"/scripts/", Dir+"/", "scripts/")
	return readOverride(ScriptsFS, path.Join("scripts", base))
}

// Names lists the embedded spec files.
func Names() []string {
	entries, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func readOverride(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

// trimPrefixes strips the first matching prefix after normalizing slashes.
func trimPrefixes(name string, prefixes ...string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	for _, p := range prefixes {
		if after, ok := strings.CutPrefix(s, p); ok {
			return after
		}
	}
	return s
}
