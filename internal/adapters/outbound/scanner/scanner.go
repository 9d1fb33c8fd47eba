package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".bundle":      true,
	"tmp":          true,
	"log":          true,
}

// FileScanner implements domain.ManifestFinder by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// FindManifests walks root and returns every dependency manifest under
// it: files named Gemfile or gems.rb plus anything ending in .gemfile.
// The walk is lexical, so the order is stable across runs. Vendored and
// generated directories are skipped unless root itself is one.
func (s *FileScanner) FindManifests(root string) ([]string, error) {
	var manifests []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if isManifestName(d.Name()) {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return manifests, nil
}

func isManifestName(name string) bool {
	return name == "Gemfile" || name == "gems.rb" || strings.HasSuffix(name, ".gemfile")
}
