// Package fs walks project trees and digests their files.
package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/reso/internal/core/domain"
)

// DefaultSkipDirs are never part of a project's files: the metadata folder
// and the exported descriptor layers.
var DefaultSkipDirs = []string{domain.ResoDirName, domain.LayerDirName}

// DefaultSkipFiles are file name suffixes that are never archived.
var DefaultSkipFiles = []string{".DS_Store", ".tmp"}

// Walker lists the regular files of a project tree.
type Walker struct {
	fs        afero.Fs
	skipDirs  []string
	skipFiles []string
}

// NewWalker creates a Walker using the default skip lists.
func NewWalker(fs afero.Fs) *Walker {
	return &Walker{fs: fs, skipDirs: DefaultSkipDirs, skipFiles: DefaultSkipFiles}
}

// WalkFiles yields the paths of regular files below root, relative to root
// and slash-separated, in lexical order. Top-level skip directories are
// pruned. Symlinks and other special files are not yielded.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = afero.Walk(w.fs, root, func(path string, info iofs.FileInfo, err error) error {
			if err != nil {
				if !yield("", err) {
					return filepath.SkipAll
				}
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				yield("", relErr)
				return filepath.SkipAll
			}
			if rel == "." {
				return nil
			}

			if info.IsDir() {
				if w.skipDir(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.Mode().IsRegular() || w.skipFile(info.Name()) {
				return nil
			}
			if !yield(filepath.ToSlash(rel), nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) skipDir(rel string) bool {
	if strings.ContainsRune(rel, filepath.Separator) {
		return false
	}
	for _, d := range w.skipDirs {
		if rel == d {
			return true
		}
	}
	return false
}

func (w *Walker) skipFile(name string) bool {
	for _, suffix := range w.skipFiles {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
