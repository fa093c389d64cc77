// Package fsutil locates and reads model files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/simplemodel/internal/mdsource"
)

// ModelExtensions are the file extensions recognised as model sources.
var ModelExtensions = []string{".simple", ".md"}

// FindFilesByExtension recursively searches the given root path for all files
// ending with one of the extensions. It returns their full paths, sorted.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ResolveModelPath returns path itself when it is a file. A directory must
// hold exactly one model file, which is returned.
func ResolveModelPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	files, err := FindFilesByExtension(path, ModelExtensions...)
	if err != nil {
		return "", err
	}
	switch len(files) {
	case 0:
		return "", fmt.Errorf("no model file (%s) found in %s", strings.Join(ModelExtensions, ", "), path)
	case 1:
		return files[0], nil
	}
	return "", fmt.Errorf("%d model files found in %s, name one of them: %s", len(files), path, strings.Join(files, ", "))
}

// ReadModel reads the model at path. Markdown documents are reduced to
// their model blocks with line numbers preserved.
func ReadModel(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	if mdsource.IsMarkdown(path) {
		return mdsource.Extract(src), nil
	}
	return src, nil
}
