package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// panelDirs holds optional images for the gallery preset's image panels.
var panelDirs = []string{"assets/panels", "../../assets/panels"}

var panelExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// findPanelImages lists image files in the first panel directory that has any.
func findPanelImages() []string {
	for _, dir := range panelDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		var out []string
		for _, e := range entries {
			if e.IsDir() || !panelExts[strings.ToLower(filepath.Ext(e.Name()))] {
				continue
			}
			out = append(out, filepath.Join(dir, e.Name()))
		}
		if len(out) > 0 {
			sort.Strings(out)
			return out
		}
	}
	return nil
}

// panels lazily loads panel textures on first draw, like the skybox.
type panels struct {
	paths  []string
	tex    []rl.Texture2D
	loaded bool
}

func (p *panels) ensureLoaded() {
	if p.loaded {
		return
	}
	p.loaded = true
	for _, path := range p.paths {
		t := rl.LoadTexture(path)
		if rl.IsTextureValid(t) {
			p.tex = append(p.tex, t)
		}
	}
}

// texture returns the texture for the n-th image panel, cycling through the
// loaded images. ok is false when no images are available.
func (p *panels) texture(n int) (rl.Texture2D, bool) {
	if len(p.tex) == 0 {
		return rl.Texture2D{}, false
	}
	return p.tex[n%len(p.tex)], true
}

func (p *panels) unload() {
	for _, t := range p.tex {
		rl.UnloadTexture(t)
	}
	p.tex = nil
	p.loaded = false
}
