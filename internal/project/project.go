// Package project expands command-line paths into lumo source files.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Ext is the file extension of lumo sources.
const Ext = ".lm"

// Collect returns the source files named by paths. Files are kept as
// given; directories are walked and contribute every *.lm file below
// them, in lexical order. Hidden directories are skipped. Standard
// input ("-") is listed at most once.
func Collect(paths []string) ([]string, error) {
	var files []string
	stdin := false
	for _, p := range paths {
		if p == "-" {
			if !stdin {
				files = append(files, p)
				stdin = true
			}
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("collect sources: %w", err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := walk(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func walk(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Ext {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(found)
	return found, nil
}
