package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// Preferred are the overlay font families tried in order by Overlay.
var Preferred = []string{"Inter", "Helvetica", "Arial"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type candidate struct{ rel, full string }

func scanAll() []candidate {
	var out []candidate
	for _, base := range BaseDirs() {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			out = append(out, candidate{rel, base + "/" + rel})
		}
	}
	return out
}

// FindFont searches BaseDirs for a font file whose path matches search, a name like "Inter"
// or a partial path like "Inter-Regular". When several match, one containing "Regular" wins.
func FindFont(search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	var matches []candidate
	for _, c := range scanAll() {
		if strings.Contains(normalizeForMatch(c.rel), norm) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return "", "", os.ErrNotExist
	}
	for _, c := range matches {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return matches[0].rel, matches[0].full, nil
}

// Overlay returns the font file for the UI overlay: the first Preferred family found,
// else any font under BaseDirs. ok is false when there are no fonts; raylib's default is used then.
func Overlay() (fullPath string, ok bool) {
	for _, name := range Preferred {
		if _, full, err := FindFont(name); err == nil {
			return full, true
		}
	}
	if all := scanAll(); len(all) > 0 {
		return all[0].full, true
	}
	return "", false
}
