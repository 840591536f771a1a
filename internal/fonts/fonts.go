package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf"),
// sorted, using forward slashes. A missing dir yields no fonts and no error.
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
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	sort.Strings(out)
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Find returns the full path of a font under dir whose relative path matches search
// (e.g. "Inter", "Open Sans", "Inter-Bold"). An empty search matches any font.
// When several match, a path containing "Bold" is preferred for the HUD, then "Regular".
func Find(dir, search string) (string, error) {
	list, err := ScanDir(dir)
	if err != nil {
		return "", err
	}
	norm := normalizeForMatch(search)
	var matches []string
	for _, rel := range list {
		if strings.Contains(normalizeForMatch(rel), norm) {
			matches = append(matches, rel)
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, pref := range []string{"bold", "regular"} {
		for _, rel := range matches {
			if strings.Contains(strings.ToLower(rel), pref) {
				return filepath.Join(dir, filepath.FromSlash(rel)), nil
			}
		}
	}
	return filepath.Join(dir, filepath.FromSlash(matches[0])), nil
}
