// Package emit derives output paths for journey artifacts and writes them
// under the project root.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Slug converts a journey identifier into its filesystem form: the J-
// prefix is stripped, letters lowercased, hyphens mapped to underscores.
// J-DEMO-FLOW becomes demo_flow.
func Slug(id string) string {
	s := strings.TrimPrefix(id, "J-")
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "-", "_")
}

// Layout names the target directories and file extensions for the two
// artifacts, relative to the project root.
type Layout struct {
	ContractsDir string
	TestsDir     string
	ContractExt  string
	StubExt      string
}

// ContractPath returns the root-relative contract path for a journey id.
func (l Layout) ContractPath(id string) string {
	return filepath.Join(l.ContractsDir, fmt.Sprintf("journey_%s.%s", Slug(id), l.ContractExt))
}

// StubPath returns the root-relative stub path for a journey id.
func (l Layout) StubPath(id string) string {
	return filepath.Join(l.TestsDir, fmt.Sprintf("journey_%s.%s", Slug(id), l.StubExt))
}

// File is one artifact ready to be written.
type File struct {
	Path    string // relative to the project root
	Content string
}

// Write creates any missing directories and writes each file under root,
// overwriting existing files unconditionally. It returns the root-relative
// paths written in order and stops at the first failure.
func Write(root string, files []File) ([]string, error) {
	var written []string
	for _, f := range files {
		full := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(full, []byte(f.Content), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}
